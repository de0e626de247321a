package feistel

import "fmt"

// EncryptStream pads plain and encrypts it block by block with the key
// derived from password. The result is a positive multiple of BlockSize.
func EncryptStream(password, plain []byte) []byte {
	c := NewCipher(password)

	buf := Pad(plain)
	cryptBlocks(buf, buf, &c.enc)
	return buf
}

// DecryptStream decrypts a ciphertext produced by EncryptStream and strips
// its padding. Nothing is returned on error.
func DecryptStream(password, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrTruncatedInput, len(ciphertext), BlockSize)
	}

	c := NewCipher(password)

	buf := make([]byte, len(ciphertext))
	cryptBlocks(buf, ciphertext, &c.dec)

	plain, err := Unpad(buf)
	if err != nil {
		return nil, err
	}
	return plain, nil
}
