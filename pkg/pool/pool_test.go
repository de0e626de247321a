package pool

import (
	"strings"
	"testing"
)

func TestGetBuffer(t *testing.T) {
	for _, size := range []int{0, 1, 2, 3, 16, 17, 1000, maxsize, maxsize + 1} {
		buf := GetBuffer(size)
		if len(buf) != size {
			t.Fatalf("len(GetBuffer(%d)) = %d", size, len(buf))
		}
		if size >= 1 && size <= maxsize && cap(buf)&(cap(buf)-1) != 0 {
			t.Fatalf("cap(GetBuffer(%d)) = %d, not a size class", size, cap(buf))
		}
		PutBuffer(buf)
	}
}

func TestPutBufferForeign(t *testing.T) {
	// a buffer whose capacity is not a size class is silently dropped
	PutBuffer(make([]byte, 3))
	if buf := GetBuffer(3); len(buf) != 3 || cap(buf) != 4 {
		t.Fatalf("GetBuffer(3) len %d cap %d", len(buf), cap(buf))
	}
}

func TestBufReader(t *testing.T) {
	br := GetBufReader(strings.NewReader("first"))
	line, _ := br.ReadString('\n')
	if line != "first" {
		t.Fatalf("read %q", line)
	}
	PutBufReader(br)

	br = GetBufReader(strings.NewReader("second"))
	defer PutBufReader(br)
	line, _ = br.ReadString('\n')
	if line != "second" {
		t.Fatalf("reused reader read %q", line)
	}
}

func TestBytesBuffer(t *testing.T) {
	buf := GetBytesBuffer()
	buf.WriteString("data")
	PutBytesBuffer(buf)

	if buf := GetBytesBuffer(); buf.Len() != 0 {
		t.Fatalf("pooled buffer not reset: %q", buf.String())
	}
}
