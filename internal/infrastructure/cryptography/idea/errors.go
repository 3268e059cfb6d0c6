package idea

import "errors"

var (
	// ErrInvalidBlockLength is returned when a block is not exactly BlockBits wide.
	ErrInvalidBlockLength = errors.New("idea: invalid block length")

	// ErrInvalidKeyLength is returned when a key is not exactly KeyBits wide.
	ErrInvalidKeyLength = errors.New("idea: invalid key length")

	// ErrUnknownMulConvention is returned by ParseMulConvention for names it
	// does not know.
	ErrUnknownMulConvention = errors.New("idea: unknown multiplication convention")
)
