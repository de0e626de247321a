package feistel

import "errors"

var (
	// ErrInvalidPadding occurs when the trailing pad length is outside [1,16]
	// or larger than the buffer.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrPaddingCorruption occurs when the pad bytes do not all hold the pad length.
	ErrPaddingCorruption = errors.New("padding corrupted")

	// ErrTruncatedInput occurs when a ciphertext is empty or not a whole number of blocks.
	ErrTruncatedInput = errors.New("truncated input")
)
