package lcg

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/fcrypt/fcrypt/feistel"
)

// IVSize is the length of the random vcrypt header.
const IVSize = 8

// ErrShortIV occurs when a vcrypt ciphertext is shorter than its IV header.
var ErrShortIV = errors.New("invalid IV size")

// VcryptSeed returns the vcrypt keystream seed for password and iv. The iv is
// read as a little-endian uint64 and xored into the password hash.
func VcryptSeed(password, iv []byte) byte {
	return byte(feistel.Hash(password) ^ binary.LittleEndian.Uint64(iv))
}

// EncryptVcrypt draws an IV from rand and returns iv || keystream^plain.
func EncryptVcrypt(password, plain []byte, rand io.Reader) ([]byte, error) {
	out := make([]byte, IVSize+len(plain))
	if _, err := io.ReadFull(rand, out[:IVSize]); err != nil {
		return nil, fmt.Errorf("read iv: %w", err)
	}
	NewStream(VcryptSeed(password, out[:IVSize])).XORKeyStream(out[IVSize:], plain)
	return out, nil
}

// DecryptVcrypt reverses EncryptVcrypt.
func DecryptVcrypt(password, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < IVSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortIV, len(ciphertext))
	}
	out := make([]byte, len(ciphertext)-IVSize)
	NewStream(VcryptSeed(password, ciphertext[:IVSize])).XORKeyStream(out, ciphertext[IVSize:])
	return out, nil
}
