package feistel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// number of goroutines used to process large buffers.
var numWorkers = int32(runtime.NumCPU())

// SetWorkers sets the number of goroutines used to process large buffers.
// Values below 2 disable parallel processing. It is safe to call while
// other goroutines encrypt; calls already running keep their worker count.
func SetWorkers(n int) {
	atomic.StoreInt32(&numWorkers, int32(n))
}

// Workers returns the current worker count.
func Workers() int {
	return int(atomic.LoadInt32(&numWorkers))
}

// buffers smaller than this many blocks are processed on the calling goroutine.
const parallelThreshold = 1024

// cryptBlocks runs cryptBlock over every block of src in ECB fashion. Each
// worker owns a contiguous range of blocks and writes only that range of dst.
func cryptBlocks(dst, src []byte, k *RoundKeys) {
	n := len(src) / BlockSize

	workers := Workers()
	if n < parallelThreshold {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	if workers <= 1 {
		cryptRange(dst, src, k, 0, n)
		return
	}

	per := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += per {
		end := start + per
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			cryptRange(dst, src, k, start, end)
		}(start, end)
	}
	wg.Wait()
}

func cryptRange(dst, src []byte, k *RoundKeys, start, end int) {
	for i := start; i < end; i++ {
		off := i * BlockSize
		cryptBlock(dst[off:off+BlockSize], src[off:off+BlockSize], k)
	}
}
