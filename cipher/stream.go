package cipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"crypto/rc4"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/aead/chacha20"
	"github.com/aead/chacha20/chacha"
	"github.com/dgryski/go-camellia"
	"github.com/dgryski/go-idea"
	"github.com/dgryski/go-rc2"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
	"golang.org/x/crypto/salsa20/salsa"

	"github.com/fcrypt/fcrypt/cipher/internal/streamio"
	"github.com/fcrypt/fcrypt/feistel"
	"github.com/fcrypt/fcrypt/pkg/pool"
)

// KeySizeError is an error about the key size.
type KeySizeError int

func (e KeySizeError) Error() string {
	return "key size error: need " + strconv.Itoa(int(e)) + " bytes"
}

// DecOrEnc is the direction a stream is created for.
type DecOrEnc int

const (
	Decrypt DecOrEnc = iota
	Encrypt
)

type streamInfo struct {
	// KeySize 0 keys the cipher with the raw password.
	KeySize   int
	IVSize    int
	newStream func(key, iv []byte, doe DecOrEnc) (cipher.Stream, error)
}

// List of stream ciphers: key size, iv size and constructor
var streamList = map[string]*streamInfo{
	"FEISTEL-CFB": {0, feistel.BlockSize, newFeistelCFBStream},
	"FEISTEL-CTR": {0, feistel.BlockSize, newFeistelCTRStream},

	"AES-128-CFB":      {16, 16, newAESCFBStream},
	"AES-192-CFB":      {24, 16, newAESCFBStream},
	"AES-256-CFB":      {32, 16, newAESCFBStream},
	"AES-128-CTR":      {16, 16, newAESCTRStream},
	"AES-192-CTR":      {24, 16, newAESCTRStream},
	"AES-256-CTR":      {32, 16, newAESCTRStream},
	"CAMELLIA-128-CFB": {16, 16, newCamelliaStream},
	"CAMELLIA-192-CFB": {24, 16, newCamelliaStream},
	"CAMELLIA-256-CFB": {32, 16, newCamelliaStream},
	"IDEA-CFB":         {16, 8, newIdeaStream},
	"RC2-CFB":          {16, 8, newRC2Stream},
	"BF-CFB":           {16, 8, newBlowfishStream},
	"CAST5-CFB":        {16, 8, newCast5Stream},
	"SALSA20":          {32, 8, newSalsa20Stream},
	"CHACHA20":         {chacha.KeySize, chacha.NonceSize, newChaCha20Stream},
	"CHACHA20-IETF":    {chacha.KeySize, chacha.INonceSize, newChaCha20Stream},
	"XCHACHA20":        {chacha.KeySize, chacha.XNonceSize, newChaCha20Stream},
	"RC4-MD5":          {16, 16, newRC4MD5Stream},
}

func newCFBStream(block cipher.Block, err error, iv []byte, doe DecOrEnc) (cipher.Stream, error) {
	if err != nil {
		return nil, err
	}
	if doe == Encrypt {
		return cipher.NewCFBEncrypter(block, iv), nil
	}
	return cipher.NewCFBDecrypter(block, iv), nil
}

func newCTRStream(block cipher.Block, err error, iv []byte) (cipher.Stream, error) {
	if err != nil {
		return nil, err
	}
	return cipher.NewCTR(block, iv), nil
}

func newFeistelCFBStream(key, iv []byte, doe DecOrEnc) (cipher.Stream, error) {
	return newCFBStream(feistel.NewCipher(key), nil, iv, doe)
}

func newFeistelCTRStream(key, iv []byte, _ DecOrEnc) (cipher.Stream, error) {
	return newCTRStream(feistel.NewCipher(key), nil, iv)
}

func newAESCFBStream(key, iv []byte, doe DecOrEnc) (cipher.Stream, error) {
	block, err := aes.NewCipher(key)
	return newCFBStream(block, err, iv, doe)
}

func newAESCTRStream(key, iv []byte, _ DecOrEnc) (cipher.Stream, error) {
	block, err := aes.NewCipher(key)
	return newCTRStream(block, err, iv)
}

func newCamelliaStream(key, iv []byte, doe DecOrEnc) (cipher.Stream, error) {
	block, err := camellia.New(key)
	return newCFBStream(block, err, iv, doe)
}

func newIdeaStream(key, iv []byte, doe DecOrEnc) (cipher.Stream, error) {
	block, err := idea.NewCipher(key)
	return newCFBStream(block, err, iv, doe)
}

func newRC2Stream(key, iv []byte, doe DecOrEnc) (cipher.Stream, error) {
	block, err := rc2.New(key, 16)
	return newCFBStream(block, err, iv, doe)
}

func newBlowfishStream(key, iv []byte, doe DecOrEnc) (cipher.Stream, error) {
	block, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return newCFBStream(block, nil, iv, doe)
}

func newCast5Stream(key, iv []byte, doe DecOrEnc) (cipher.Stream, error) {
	block, err := cast5.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return newCFBStream(block, nil, iv, doe)
}

func newChaCha20Stream(key, iv []byte, _ DecOrEnc) (cipher.Stream, error) {
	if len(key) != chacha.KeySize {
		return nil, KeySizeError(chacha.KeySize)
	}
	return chacha20.NewCipher(iv, key)
}

func newRC4MD5Stream(key, iv []byte, _ DecOrEnc) (cipher.Stream, error) {
	h := md5.New()
	h.Write(key)
	h.Write(iv)
	return rc4.NewCipher(h.Sum(nil))
}

// salsaStream keeps the byte offset so that calls need not be 64-byte aligned.
type salsaStream struct {
	nonce   [8]byte
	key     [32]byte
	counter int
}

func newSalsa20Stream(key, iv []byte, _ DecOrEnc) (cipher.Stream, error) {
	if len(key) != 32 {
		return nil, KeySizeError(32)
	}
	var c salsaStream
	copy(c.nonce[:], iv[:8])
	copy(c.key[:], key)
	return &c, nil
}

func (c *salsaStream) XORKeyStream(dst, src []byte) {
	padLen := c.counter % 64
	buf := pool.GetBuffer(len(src) + padLen)
	defer pool.PutBuffer(buf)

	var subNonce [16]byte
	copy(subNonce[:], c.nonce[:])
	binary.LittleEndian.PutUint64(subNonce[len(c.nonce):], uint64(c.counter/64))

	copy(buf[padLen:], src)
	salsa.XORKeyStream(buf, buf, &subNonce, &c.key)
	copy(dst, buf[padLen:])

	c.counter += len(src)
}

// streamCipher writes a random IV in front of the keystream output.
type streamCipher struct {
	info *streamInfo
	key  []byte
}

func (c *streamCipher) Encrypt(plain []byte) ([]byte, error)      { return encryptBytes(c, plain) }
func (c *streamCipher) Decrypt(ciphertext []byte) ([]byte, error) { return decryptBytes(c, ciphertext) }

func (c *streamCipher) EncryptTo(w io.Writer, r io.Reader) error {
	iv, err := randomIV(c.info.IVSize)
	if err != nil {
		return err
	}
	s, err := c.info.newStream(c.key, iv, Encrypt)
	if err != nil {
		return err
	}
	if _, err := w.Write(iv); err != nil {
		return err
	}
	_, err = io.Copy(streamio.NewWriter(w, s), r)
	return err
}

func (c *streamCipher) DecryptTo(w io.Writer, r io.Reader) error {
	iv := make([]byte, c.info.IVSize)
	if _, err := io.ReadFull(r, iv); err != nil {
		return fmt.Errorf("%w: reading %d byte iv: %v", ErrShortCiphertext, c.info.IVSize, err)
	}
	s, err := c.info.newStream(c.key, iv, Decrypt)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, streamio.NewReader(r, s))
	return err
}

func randomIV(n int) ([]byte, error) {
	iv := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("read iv: %w", err)
	}
	return iv, nil
}
