package cipher

import (
	"fmt"

	kcp "github.com/xtaci/kcp-go/v5"
)

// kcp block crypts run CFB over a whole buffer from a fixed IV, so every
// message starts with a random nonce block that is encrypted with it.
const packetNonceSize = 16

// List of kcp packet ciphers: key size in bytes and constructor
var packetList = map[string]struct {
	KeySize int
	New     func([]byte) (kcp.BlockCrypt, error)
}{
	"SM4-CFB":     {16, kcp.NewSM4BlockCrypt},
	"TEA-CFB":     {16, kcp.NewTEABlockCrypt},
	"XTEA-CFB":    {16, kcp.NewXTEABlockCrypt},
	"TWOFISH-CFB": {32, kcp.NewTwofishBlockCrypt},
	"3DES-CFB":    {24, kcp.NewTripleDESBlockCrypt},
}

type packetCipher struct {
	crypt kcp.BlockCrypt
}

func (c *packetCipher) Encrypt(plain []byte) ([]byte, error) {
	nonce, err := randomIV(packetNonceSize)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, packetNonceSize+len(plain))
	copy(buf, nonce)
	copy(buf[packetNonceSize:], plain)
	c.crypt.Encrypt(buf, buf)
	return buf, nil
}

func (c *packetCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < packetNonceSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortCiphertext, len(ciphertext))
	}

	buf := make([]byte, len(ciphertext))
	c.crypt.Decrypt(buf, ciphertext)
	return buf[packetNonceSize:], nil
}
