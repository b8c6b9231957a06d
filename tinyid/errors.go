package tinyid

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDecode matches every error returned by Decode and UnmarshalText.
	ErrDecode = errors.New("tinyid: decode failed")

	// ErrInvalidLength is the reason given when the input does not have the encoded length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCharacter is the reason given when the input holds a symbol outside the alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrRandomSource is returned when the generator's source cannot supply bytes.
	ErrRandomSource = errors.New("tinyid: random source failed")
)

// DecodeError describes text that could not be turned into an ID.
type DecodeError struct {
	Input  string
	Offset int // byte offset of the offending symbol, -1 for length errors
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("tinyid: decode %q: %v: want %d symbols, got %d", e.Input, e.Err, EncodedLen, len(e.Input))
	}

	return fmt.Sprintf("tinyid: decode %q: %v %q at offset %d", e.Input, e.Err, e.Input[e.Offset], e.Offset)
}

// Unwrap returns the reason, ErrInvalidLength or ErrInvalidCharacter.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports ErrDecode as a match so callers need not know the reason.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode //nolint:errorlint
}
