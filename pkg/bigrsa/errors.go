package bigrsa

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/modarith"
	"github.com/hsiuhsiu/bigrsa-go/pkg/bigrsa/primes"
)

var (
	// ErrMessageOutOfRange indicates the message integer is not below the modulus.
	ErrMessageOutOfRange = errors.New("bigrsa: message out of range")

	// ErrInvalidKeypair indicates a keypair failed validation.
	ErrInvalidKeypair = errors.New("bigrsa: invalid keypair")

	// ErrInvalidConfig indicates a Config field is out of range.
	ErrInvalidConfig = errors.New("bigrsa: invalid config")

	// ErrIntegerTooLarge indicates an integer does not fit the requested byte length.
	ErrIntegerTooLarge = errors.New("bigrsa: integer too large for encoding")

	// ErrNegativeInteger indicates an attempt to encode a negative integer.
	ErrNegativeInteger = errors.New("bigrsa: negative integer")
)

// Errors surfaced from the subpackages, re-exported so callers can match them
// without importing primes or modarith.
var (
	ErrInvalidBitLength  = primes.ErrInvalidBitLength
	ErrAttemptsExhausted = primes.ErrAttemptsExhausted
	ErrInvalidModulus    = modarith.ErrInvalidModulus
	ErrNotInvertible     = modarith.ErrNotInvertible
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("bigrsa.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error
func errorf(op string, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
