package rsakit

import (
	"errors"
	"fmt"

	"github.com/primelab/rsakit/pkg/rsakit/mathx"
)

var (
	// ErrMessageTooLarge indicates a plaintext that does not fit below the
	// modulus once the terminator and filler bytes are accounted for. The
	// caller must shorten the message or use a larger modulus; there is no
	// retry.
	ErrMessageTooLarge = errors.New("rsakit: message too large for modulus")

	// ErrNotInvertible mirrors mathx.ErrNotInvertible. Key generation
	// recovers from it internally by advancing the public exponent, so
	// callers should only ever observe it when deriving inverses themselves.
	ErrNotInvertible = mathx.ErrNotInvertible

	// ErrInvalidKeyPair indicates key components that cannot form a usable
	// key pair (nil or non-positive integers).
	ErrInvalidKeyPair = errors.New("rsakit: invalid key pair components")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // operation that failed, e.g. "Generate"
	Err error  // underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rsakit.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// opError wraps err with op unless err is nil.
func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
