// Package streamio applies a cipher.Stream to io.Reader and io.Writer.
package streamio

import (
	"crypto/cipher"
	"io"

	"github.com/fcrypt/fcrypt/pkg/pool"
)

const bufSize = 32 * 1024

type writer struct {
	io.Writer
	cipher.Stream
}

// NewWriter wraps w so that everything written is xored with s first.
func NewWriter(w io.Writer, s cipher.Stream) io.Writer {
	return &writer{Writer: w, Stream: s}
}

func (w *writer) Write(p []byte) (n int, err error) {
	buf := pool.GetBuffer(bufSize)
	defer pool.PutBuffer(buf)

	for nw := 0; n < len(p) && err == nil; n += nw {
		end := n + len(buf)
		if end > len(p) {
			end = len(p)
		}
		w.XORKeyStream(buf, p[n:end])
		nw, err = w.Writer.Write(buf[:end-n])
	}
	return
}

type reader struct {
	io.Reader
	cipher.Stream
}

// NewReader wraps r so that everything read is xored with s.
func NewReader(r io.Reader, s cipher.Stream) io.Reader {
	return &reader{Reader: r, Stream: s}
}

func (r *reader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if n > 0 {
		r.XORKeyStream(p[:n], p[:n])
	}
	return n, err
}
