// Package pool provides sync.Pool backed buffers shared by the cipher streams.
package pool

import (
	"math/bits"
	"sync"
)

const (
	// number of size classes, powers of two from 1 byte to maxsize.
	num     = 17
	maxsize = 1 << (num - 1)
)

var (
	sizes [num]int
	pools [num]sync.Pool
)

func init() {
	for i := 0; i < num; i++ {
		size := 1 << i
		sizes[i] = size
		pools[i].New = func() any {
			return make([]byte, size)
		}
	}
}

// GetBuffer gets a buffer of length size from the pool. Sizes outside
// [1, 64KiB] are allocated directly.
func GetBuffer(size int) []byte {
	if size >= 1 && size <= maxsize {
		i := bits.Len32(uint32(size)) - 1
		if sizes[i] < size {
			i++
		}
		return pools[i].Get().([]byte)[:size]
	}
	return make([]byte, size)
}

// PutBuffer returns buf to the pool. Buffers not obtained from GetBuffer
// are dropped.
func PutBuffer(buf []byte) {
	if size := cap(buf); size >= 1 && size <= maxsize {
		i := bits.Len32(uint32(size)) - 1
		if sizes[i] == size {
			pools[i].Put(buf[:size])
		}
	}
}
