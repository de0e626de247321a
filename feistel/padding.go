package feistel

import "fmt"

// Pad returns a copy of b extended to a whole number of blocks. Every pad
// byte holds the pad length; aligned input gets a full extra block.
func Pad(b []byte) []byte {
	n := BlockSize - len(b)%BlockSize

	padded := make([]byte, len(b)+n)
	copy(padded, b)
	for i := len(b); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// Unpad validates and strips the padding added by Pad.
// The returned slice shares memory with b.
func Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidPadding)
	}

	n := int(b[len(b)-1])
	if n < 1 || n > BlockSize || n > len(b) {
		return nil, fmt.Errorf("%w: pad length %d", ErrInvalidPadding, n)
	}

	for i := len(b) - n; i < len(b); i++ {
		if b[i] != byte(n) {
			return nil, fmt.Errorf("%w: byte %d is 0x%02x, want 0x%02x", ErrPaddingCorruption, i, b[i], n)
		}
	}
	return b[:len(b)-n], nil
}
