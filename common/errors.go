package common

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Kind is the taxonomy of errors this module can return.
type Kind int

const (
	// InvalidBits: bits is not a positive multiple of 32, or is below the
	// minimum modulus size.
	InvalidBits Kind = iota
	// InvalidSeed: the seed buffer is shorter than 32 bytes.
	InvalidSeed
	// NotCoprime: the chosen public exponent shares a factor with phi.
	NotCoprime
	// ModulusLengthMismatch: p*q does not have the requested bit length.
	// Unreachable in a correct implementation; kept as a debugging aid.
	ModulusLengthMismatch
	// DegeneratePrimes: the two independently-seeded searches produced the
	// same prime. Reachable when bits splits evenly and both seed halves are
	// byte-identical (e.g. an all-0xFF seed at bits=256).
	DegeneratePrimes
)

func (k Kind) String() string {
	switch k {
	case InvalidBits:
		return "InvalidBits"
	case InvalidSeed:
		return "InvalidSeed"
	case NotCoprime:
		return "NotCoprime"
	case ModulusLengthMismatch:
		return "ModulusLengthMismatch"
	case DegeneratePrimes:
		return "DegeneratePrimes"
	default:
		return "Unknown"
	}
}

// KeyGenError wraps a Kind with the cause that triggered it, in the style
// this repository uses pkg/errors to carry context up the call stack.
type KeyGenError struct {
	Kind  Kind
	cause error
}

func NewKeyGenError(kind Kind, format string, args ...interface{}) *KeyGenError {
	return &KeyGenError{Kind: kind, cause: errors.Errorf(format, args...)}
}

func (e *KeyGenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.cause)
}

func (e *KeyGenError) Cause() error {
	return e.cause
}

func (e *KeyGenError) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is a *KeyGenError of the given Kind.
func IsKind(err error, kind Kind) bool {
	kgErr, ok := err.(*KeyGenError)
	return ok && kgErr.Kind == kind
}

// AggregateErrors combines zero or more errors (some of which may be nil)
// into a single error, folding per-call failures together with
// hashicorp/go-multierror.
// Returns nil if every argument is nil.
func AggregateErrors(errs ...error) error {
	var result *multierror.Error
	for _, err := range errs {
		if err == nil {
			continue
		}
		result = multierror.Append(result, err)
	}
	if result == nil {
		return nil
	}
	return result
}
