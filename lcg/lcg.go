// Package lcg implements the byte-wise lcg stream ciphers scrypt and vcrypt.
//
// Every output byte is the input byte xored with the next state of
//
//	x = (109*x + 57) mod 256
//
// seeded from the sdbm hash of the password.
package lcg

import (
	"crypto/cipher"

	"github.com/fcrypt/fcrypt/feistel"
)

type stream struct {
	current byte
}

// NewStream returns a keystream starting from seed.
// The seed itself is never used as key material, only its successors.
func NewStream(seed byte) cipher.Stream {
	return &stream{current: seed}
}

func (s *stream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("lcg: output smaller than input")
	}
	for i, b := range src {
		s.current = 109*s.current + 57
		dst[i] = b ^ s.current
	}
}

// ScryptSeed returns the scrypt keystream seed for password.
func ScryptSeed(password []byte) byte {
	return byte(feistel.Hash(password))
}

// Scrypt xors src with the scrypt keystream of password.
// Encryption and decryption are the same operation.
func Scrypt(password, src []byte) []byte {
	dst := make([]byte, len(src))
	NewStream(ScryptSeed(password)).XORKeyStream(dst, src)
	return dst
}
