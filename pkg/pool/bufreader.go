package pool

import (
	"bufio"
	"io"
	"sync"
)

// readers are sized for file input.
const bufReaderSize = 64 << 10

var bufReaderPool sync.Pool

// GetBufReader returns a *bufio.Reader reading from r.
func GetBufReader(r io.Reader) *bufio.Reader {
	if v := bufReaderPool.Get(); v != nil {
		br := v.(*bufio.Reader)
		br.Reset(r)
		return br
	}
	return bufio.NewReaderSize(r, bufReaderSize)
}

// PutBufReader puts br back into the pool and drops its reference to the source.
func PutBufReader(br *bufio.Reader) {
	br.Reset(nil)
	bufReaderPool.Put(br)
}
