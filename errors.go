package numlit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrSyntax matches, via errors.Is, every failure whose cause is SyntaxError.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange matches, via errors.Is, both signed and unsigned range failures.
	ErrRange = errors.New("value out of range")
)

// CauseKind enumerates the closed set of conversion failure causes.
type CauseKind uint8

const (
	// KindInvalidBase means the base was outside {0, 2..36}.
	KindInvalidBase CauseKind = iota + 1
	// KindInvalidBitSize means the bit size was outside {0..64}.
	KindInvalidBitSize
	// KindInvalidSyntax means the text was empty, held an illegal byte,
	// or placed underscores illegally.
	KindInvalidSyntax
	// KindOutOfRangeSigned means the value does not fit the signed width.
	KindOutOfRangeSigned
	// KindOutOfRangeUnsigned means the value does not fit the unsigned width.
	KindOutOfRangeUnsigned
)

// String returns a stable snake_case name for the kind.
func (k CauseKind) String() string {
	switch k {
	case KindInvalidBase:
		return "invalid_base"
	case KindInvalidBitSize:
		return "invalid_bit_size"
	case KindInvalidSyntax:
		return "invalid_syntax"
	case KindOutOfRangeSigned:
		return "out_of_range_signed"
	case KindOutOfRangeUnsigned:
		return "out_of_range_unsigned"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cause is the reason a conversion failed.
//
// The set of implementations is closed: BaseError, BitSizeError,
// SyntaxError, RangeSignedError and RangeUnsignedError.
type Cause interface {
	error
	// Kind identifies the concrete cause.
	Kind() CauseKind
	cause()
}

// BaseError reports a base outside {0, 2..36}.
type BaseError struct {
	Base int
}

func (e BaseError) Error() string { return "invalid base " + strconv.Itoa(e.Base) }
func (BaseError) Kind() CauseKind { return KindInvalidBase }
func (BaseError) cause()          {}

// BitSizeError reports a bit size outside {0..64}.
type BitSizeError struct {
	BitSize int
}

func (e BitSizeError) Error() string { return "invalid bit size " + strconv.Itoa(e.BitSize) }
func (BitSizeError) Kind() CauseKind { return KindInvalidBitSize }
func (BitSizeError) cause()          {}

// SyntaxError reports empty input, an illegal byte or bad underscore placement.
type SyntaxError struct{}

func (SyntaxError) Error() string        { return ErrSyntax.Error() }
func (SyntaxError) Kind() CauseKind      { return KindInvalidSyntax }
func (SyntaxError) Is(target error) bool { return target == ErrSyntax }
func (SyntaxError) cause()               {}

// RangeSignedError reports a value outside the signed range of the
// requested width. BoundHint is the nearest representable value.
type RangeSignedError struct {
	BoundHint int64
}

func (e RangeSignedError) Error() string {
	return "signed value out of range: " + strconv.FormatInt(e.BoundHint, 10)
}
func (RangeSignedError) Kind() CauseKind      { return KindOutOfRangeSigned }
func (RangeSignedError) Is(target error) bool { return target == ErrRange }
func (RangeSignedError) cause()               {}

// RangeUnsignedError reports a value above the unsigned range of the
// requested width. BoundHint is the largest representable value.
type RangeUnsignedError struct {
	BoundHint uint64
}

func (e RangeUnsignedError) Error() string {
	return "unsigned value out of range: " + strconv.FormatUint(e.BoundHint, 10)
}
func (RangeUnsignedError) Kind() CauseKind      { return KindOutOfRangeUnsigned }
func (RangeUnsignedError) Is(target error) bool { return target == ErrRange }
func (RangeUnsignedError) cause()               {}

// NumError records a failed conversion.
//
// Func names the entry point that reported the failure, Num is a copy of
// the complete argument it was given, and Cause says what went wrong.
// The cause can be reached with errors.As or errors.Unwrap.
type NumError struct {
	Func  string
	Num   string
	Cause Cause
}

func (e *NumError) Error() string {
	return fmt.Sprintf("numlit.%s: parsing %s: %s", e.Func, strconv.Quote(e.Num), e.Cause)
}

func (e *NumError) Unwrap() error { return e.Cause }

// Kind is shorthand for e.Cause.Kind().
func (e *NumError) Kind() CauseKind { return e.Cause.Kind() }

func newNumError(fn, s string, c Cause) *NumError {
	// Num must not alias the caller's buffer, which may be a mapped file.
	return &NumError{Func: fn, Num: strings.Clone(s), Cause: c}
}

func syntaxError(fn, s string) *NumError {
	return newNumError(fn, s, SyntaxError{})
}

func baseError(fn, s string, base int) *NumError {
	return newNumError(fn, s, BaseError{Base: base})
}

func bitSizeError(fn, s string, bitSize int) *NumError {
	return newNumError(fn, s, BitSizeError{BitSize: bitSize})
}

func rangeSignedError(fn, s string, hint int64) *NumError {
	return newNumError(fn, s, RangeSignedError{BoundHint: hint})
}

func rangeUnsignedError(fn, s string, hint uint64) *NumError {
	return newNumError(fn, s, RangeUnsignedError{BoundHint: hint})
}

// ErrInvalidNativeBitSize indicates a Parser was configured with a native
// width other than 32 or 64.
type ErrInvalidNativeBitSize struct {
	BitSize int
}

func (e *ErrInvalidNativeBitSize) Error() string {
	return fmt.Sprintf("invalid native bit size: %d (want 32 or 64)", e.BitSize)
}
