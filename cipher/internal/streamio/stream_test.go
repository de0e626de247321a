package streamio

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"io"
	"testing"
	"testing/iotest"
)

func newCTR(t *testing.T) cipher.Stream {
	blk, err := aes.NewCipher(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	return cipher.NewCTR(blk, make([]byte, 16))
}

func TestWriterReader(t *testing.T) {
	plain := bytes.Repeat([]byte("0123456789"), 10000)

	var ct bytes.Buffer
	n, err := NewWriter(&ct, newCTR(t)).Write(plain)
	if err != nil || n != len(plain) {
		t.Fatalf("Write = %d, %v", n, err)
	}

	want := make([]byte, len(plain))
	newCTR(t).XORKeyStream(want, plain)
	if !bytes.Equal(ct.Bytes(), want) {
		t.Fatal("writer output differs from direct XORKeyStream")
	}

	// one byte reads with data returned alongside io.EOF
	r := NewReader(iotest.DataErrReader(iotest.OneByteReader(&ct)), newCTR(t))
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("reader did not restore the plaintext")
	}
}
