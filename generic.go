package numlit

import "unsafe"

type (
	// Signed is the set of Go signed integer types.
	Signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}

	// Unsigned is the set of Go unsigned integer types.
	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
	}
)

// ParseSigned parses s into T, taking the bit size from T's width.
//
//	v, err := numlit.ParseSigned[int16]("0x7fff", 0)
//
// Errors are the same as ParseInt's; on a range failure the returned
// value is the clamped bound, which always fits T.
func ParseSigned[T Signed](s string, base int) (T, error) {
	var zero T
	v, err := ParseInt(s, base, int(unsafe.Sizeof(zero))*8)
	return T(v), err
}

// ParseUnsigned parses s into T, taking the bit size from T's width.
//
// Errors are the same as ParseUint's.
func ParseUnsigned[T Unsigned](s string, base int) (T, error) {
	var zero T
	v, err := ParseUint(s, base, int(unsafe.Sizeof(zero))*8)
	return T(v), err
}
