package cipher

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// List of AEAD ciphers: key size in bytes and constructor
var aeadList = map[string]struct {
	KeySize int
	New     func([]byte) (cipher.AEAD, error)
}{
	"AES-256-GCM":        {32, aesGCM},
	"CHACHA20-POLY1305":  {chacha20poly1305.KeySize, chacha20poly1305.New},
	"XCHACHA20-POLY1305": {chacha20poly1305.KeySize, chacha20poly1305.NewX},
}

func aesGCM(key []byte) (cipher.AEAD, error) {
	blk, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(blk)
}

// aeadCipher seals the whole input under a random nonce written in front.
type aeadCipher struct{ cipher.AEAD }

func (c *aeadCipher) Encrypt(plain []byte) ([]byte, error) {
	nonce, err := randomIV(c.NonceSize())
	if err != nil {
		return nil, err
	}
	return c.Seal(nonce, nonce, plain, nil), nil
}

func (c *aeadCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < c.NonceSize()+c.Overhead() {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortCiphertext, len(ciphertext))
	}
	nonce, sealed := ciphertext[:c.NonceSize()], ciphertext[c.NonceSize():]
	plain, err := c.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return plain, nil
}
