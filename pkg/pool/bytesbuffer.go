package pool

import (
	"bytes"
	"sync"
)

// buffers grown beyond this are left to the garbage collector.
const maxBytesBufferCap = 1 << 20

var bytesBufPool = sync.Pool{
	New: func() any { return &bytes.Buffer{} },
}

// GetBytesBuffer returns an empty bytes.Buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	return bytesBufPool.Get().(*bytes.Buffer)
}

// PutBytesBuffer resets buf and puts it back into the pool.
func PutBytesBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxBytesBufferCap {
		buf.Reset()
		bytesBufPool.Put(buf)
	}
}
