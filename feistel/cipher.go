// Package feistel implements a password keyed 128-bit Feistel block cipher.
//
// It is an obfuscation grade cipher: sdbm hashed password, lcg key schedule
// and a multiply-rotate round function. Do not use it to protect anything.
package feistel

import (
	"crypto/cipher"
	"encoding/binary"
)

// BlockSize is the cipher block size in bytes.
const BlockSize = 16

// Cipher is a Feistel cipher instance with its derived key schedules.
// It is safe for concurrent use.
type Cipher struct {
	enc RoundKeys
	dec RoundKeys
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher returns a Cipher keyed by password.
func NewCipher(password []byte) *Cipher {
	return NewCipherFromSeed(Hash(password))
}

// NewCipherFromSeed returns a Cipher whose first round key is seed.
func NewCipherFromSeed(seed uint64) *Cipher {
	k := Expand(seed)
	return &Cipher{enc: k, dec: k.Reverse()}
}

// RoundKeys returns the forward key schedule.
func (c *Cipher) RoundKeys() RoundKeys { return c.enc }

// BlockSize returns the cipher's block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block in src into dst.
// Dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("feistel: input not full block")
	}
	if len(dst) < BlockSize {
		panic("feistel: output not full block")
	}
	cryptBlock(dst, src, &c.enc)
}

// Decrypt decrypts the first block in src into dst.
// Dst and src may overlap entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("feistel: input not full block")
	}
	if len(dst) < BlockSize {
		panic("feistel: output not full block")
	}
	cryptBlock(dst, src, &c.dec)
}

// cryptBlock runs the round loop over one block. The halves are written
// back swapped, so running it again with the reversed schedule inverts it.
func cryptBlock(dst, src []byte, k *RoundKeys) {
	left := binary.BigEndian.Uint64(src[0:8])
	right := binary.BigEndian.Uint64(src[8:16])

	for _, rk := range k {
		left, right = right, left^mix(right, rk)
	}

	binary.BigEndian.PutUint64(dst[0:8], right)
	binary.BigEndian.PutUint64(dst[8:16], left)
}
