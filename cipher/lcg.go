package cipher

import (
	"fmt"
	"io"

	"github.com/fcrypt/fcrypt/cipher/internal/streamio"
	"github.com/fcrypt/fcrypt/lcg"
)

// scryptCipher has no header, encryption and decryption are the same.
type scryptCipher struct{ seed byte }

func newScrypt(password []byte) *scryptCipher {
	return &scryptCipher{seed: lcg.ScryptSeed(password)}
}

func (c *scryptCipher) Encrypt(plain []byte) ([]byte, error)      { return encryptBytes(c, plain) }
func (c *scryptCipher) Decrypt(ciphertext []byte) ([]byte, error) { return decryptBytes(c, ciphertext) }

func (c *scryptCipher) EncryptTo(w io.Writer, r io.Reader) error {
	_, err := io.Copy(streamio.NewWriter(w, lcg.NewStream(c.seed)), r)
	return err
}

func (c *scryptCipher) DecryptTo(w io.Writer, r io.Reader) error {
	return c.EncryptTo(w, r)
}

// vcryptCipher prefixes a random 8-byte IV.
type vcryptCipher struct{ password []byte }

func (c *vcryptCipher) Encrypt(plain []byte) ([]byte, error)      { return encryptBytes(c, plain) }
func (c *vcryptCipher) Decrypt(ciphertext []byte) ([]byte, error) { return decryptBytes(c, ciphertext) }

func (c *vcryptCipher) EncryptTo(w io.Writer, r io.Reader) error {
	iv, err := randomIV(lcg.IVSize)
	if err != nil {
		return err
	}
	if _, err := w.Write(iv); err != nil {
		return err
	}
	_, err = io.Copy(streamio.NewWriter(w, lcg.NewStream(lcg.VcryptSeed(c.password, iv))), r)
	return err
}

func (c *vcryptCipher) DecryptTo(w io.Writer, r io.Reader) error {
	iv := make([]byte, lcg.IVSize)
	if _, err := io.ReadFull(r, iv); err != nil {
		return fmt.Errorf("%w: %v", lcg.ErrShortIV, err)
	}
	_, err := io.Copy(w, streamio.NewReader(r, lcg.NewStream(lcg.VcryptSeed(c.password, iv))))
	return err
}
