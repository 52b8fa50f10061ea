// Package numlit converts integer literals into fixed-width Go integers.
//
// It follows the integer literal rules of the Go language: an optional
// sign, a radix that is either explicit (2 to 36) or implied by a prefix,
// a result width of 0 to 64 bits, and underscores as digit separators when
// the radix is implied. Failures are reported as *NumError values that say
// exactly which rule was broken.
//
// # Quick Start
//
//	v, err := numlit.ParseInt("-0x_7f", 0, 8)     // -127
//	u, err := numlit.ParseUint("0b1010", 0, 0)   // 10
//	n, err := numlit.ParseSigned[int16]("300", 10)
//
// # Radix
//
// With base 0 the prefix picks the radix:
//
//	"0b101"  -> 2
//	"0o377"  -> 8
//	"0377"   -> 8
//	"0x1F"   -> 16
//	"1_000"  -> 10
//
// An explicit base never strips a prefix and never accepts underscores.
//
// # Errors
//
// Every failure is a *NumError whose Cause is one of BaseError,
// BitSizeError, SyntaxError, RangeSignedError or RangeUnsignedError:
//
//	_, err := numlit.ParseInt("9223372036854775808", 10, 64)
//	var nerr *numlit.NumError
//	if errors.As(err, &nerr) {
//	    switch c := nerr.Cause.(type) {
//	    case numlit.RangeSignedError:
//	        fmt.Println("clamped to", c.BoundHint) // 9223372036854775807
//	    }
//	}
//
// errors.Is(err, numlit.ErrSyntax) and errors.Is(err, numlit.ErrRange)
// match the syntax and range causes.
//
// # Native width
//
// A bit size of 0 resolves to NativeBitSize (64) regardless of platform.
// Use NewParser with WithNativeBitSize(32) for 32-bit semantics.
//
// # Concurrency
//
// All functions are pure. A Parser may be shared between goroutines.
// The batch and scan packages build concurrent bulk conversion on top.
package numlit
