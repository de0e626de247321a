package cipher

import (
	"crypto/md5"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// kdf is OpenSSL's EVP_BytesToKey with md5 and no salt.
func kdf(password string, keyLen int) []byte {
	var b, prev []byte
	h := md5.New()
	for len(b) < keyLen {
		h.Write(prev)
		h.Write([]byte(password))
		b = h.Sum(b)
		prev = b[len(b)-h.Size():]
		h.Reset()
	}
	return b[:keyLen]
}

// aeadKey stretches the kdf output through HKDF-SHA256.
func aeadKey(password string, keyLen int) []byte {
	key := make([]byte, keyLen)
	r := hkdf.New(sha256.New, kdf(password, keyLen), nil, []byte("fcrypt-aead"))
	if _, err := io.ReadFull(r, key); err != nil {
		panic(err) // should never happen
	}
	return key
}
