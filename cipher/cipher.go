// Package cipher picks a file cipher by method name and password.
package cipher

import (
	"bytes"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/fcrypt/fcrypt/feistel"
	"github.com/fcrypt/fcrypt/pkg/pool"
)

// DefaultMethod is used when no method is given.
const DefaultMethod = "FEISTEL"

// Cipher encrypts and decrypts whole buffers.
type Cipher interface {
	Encrypt(plain []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// StreamCipher is implemented by ciphers that can process their input
// incrementally instead of holding it in memory.
type StreamCipher interface {
	Cipher
	EncryptTo(w io.Writer, r io.Reader) error
	DecryptTo(w io.Writer, r io.Reader) error
}

var (
	// ErrCipherNotSupported occurs when a method name is unknown.
	ErrCipherNotSupported = errors.New("cipher not supported")

	// ErrEmptyPassword occurs when a method that derives its key with the md5 kdf gets no password.
	ErrEmptyPassword = errors.New("empty password")

	// ErrShortCiphertext occurs when a ciphertext is shorter than its IV or nonce header.
	ErrShortCiphertext = errors.New("ciphertext too short")
)

// PickCipher returns the Cipher of the given method keyed by password.
// Method names are case insensitive.
func PickCipher(method, password string) (Cipher, error) {
	name := strings.ToUpper(method)
	if name == "" {
		name = DefaultMethod
	}

	switch name {
	case "NONE", "DUMMY":
		return dummy{}, nil
	case "FEISTEL":
		return &feistelCipher{password: []byte(password)}, nil
	case "SCRYPT":
		return newScrypt([]byte(password)), nil
	case "VCRYPT":
		return &vcryptCipher{password: []byte(password)}, nil
	}

	if choice, ok := streamList[name]; ok {
		key := []byte(password)
		if choice.KeySize > 0 {
			if password == "" {
				return nil, ErrEmptyPassword
			}
			key = kdf(password, choice.KeySize)
		}
		return &streamCipher{info: choice, key: key}, nil
	}

	if choice, ok := aeadList[name]; ok {
		if password == "" {
			return nil, ErrEmptyPassword
		}
		aead, err := choice.New(aeadKey(password, choice.KeySize))
		if err != nil {
			return nil, err
		}
		return &aeadCipher{aead}, nil
	}

	if choice, ok := packetList[name]; ok {
		if password == "" {
			return nil, ErrEmptyPassword
		}
		crypt, err := choice.New(kdf(password, choice.KeySize))
		if err != nil {
			return nil, err
		}
		return &packetCipher{crypt: crypt}, nil
	}

	return nil, ErrCipherNotSupported
}

// ListCipher returns the supported method names separated by spaces.
func ListCipher() string {
	names := []string{"FEISTEL", "SCRYPT", "VCRYPT", "NONE"}
	for name := range streamList {
		names = append(names, name)
	}
	for name := range aeadList {
		names = append(names, name)
	}
	for name := range packetList {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// feistelCipher is the raw block format: padded ECB blocks, no header.
type feistelCipher struct{ password []byte }

func (c *feistelCipher) Encrypt(plain []byte) ([]byte, error) {
	return feistel.EncryptStream(c.password, plain), nil
}

func (c *feistelCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	return feistel.DecryptStream(c.password, ciphertext)
}

// dummy cipher does not encrypt.
type dummy struct{}

func (dummy) Encrypt(plain []byte) ([]byte, error) {
	return append([]byte(nil), plain...), nil
}

func (dummy) Decrypt(ciphertext []byte) ([]byte, error) {
	return append([]byte(nil), ciphertext...), nil
}

// encryptBytes runs a stream cipher over an in-memory buffer.
func encryptBytes(sc StreamCipher, plain []byte) ([]byte, error) {
	buf := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(buf)

	if err := sc.EncryptTo(buf, bytes.NewReader(plain)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.Bytes()...), nil
}

func decryptBytes(sc StreamCipher, ciphertext []byte) ([]byte, error) {
	buf := pool.GetBytesBuffer()
	defer pool.PutBytesBuffer(buf)

	if err := sc.DecryptTo(buf, bytes.NewReader(ciphertext)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.Bytes()...), nil
}
