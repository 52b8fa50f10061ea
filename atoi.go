package numlit

import (
	"math"

	"github.com/hupe1980/numlit/internal/conv"
	"github.com/hupe1980/numlit/internal/literal"
)

const (
	fnParseUint = "ParseUint"
	fnParseInt  = "ParseInt"
	fnAtoi      = "Atoi"
)

// ParseUint interprets s in the given base (0, 2 to 36) and bit size
// (0 to 64) and returns the corresponding unsigned value.
//
// A sign prefix is not permitted.
//
// If base is 0, the base is implied by the prefix of s: 2 for "0b",
// 8 for "0" or "0o", 16 for "0x", and 10 otherwise. For base 0 only,
// underscores may separate digits: each one must sit between two digits,
// or between a radix prefix and a digit.
//
// bitSize names the width the result must fit into. 0 means NativeBitSize.
//
// Errors are *NumError with Func "ParseUint" and Num set to s. When the
// value does not fit, the cause is RangeUnsignedError and the returned
// value is the largest value of the requested width; otherwise the
// returned value is 0.
func ParseUint(s string, base, bitSize int) (uint64, error) {
	return defaultParser.ParseUint(s, base, bitSize)
}

// ParseInt interprets s like ParseUint but accepts a leading "+" or "-"
// and checks the result against the signed range of bitSize.
//
// Errors are *NumError with Func "ParseInt" and Num set to s. When the
// value does not fit, the cause is RangeSignedError and the returned value
// is the representable bound nearest to it.
//
// Unlike strconv.ParseInt, a negative magnitude that saturates the
// unsigned range is always out of range. This only matters at bit size 1,
// where ParseInt("-2", 10, 1) fails with bound -1 instead of returning -1.
func ParseInt(s string, base, bitSize int) (int64, error) {
	return defaultParser.ParseInt(s, base, bitSize)
}

// Atoi is ParseInt(s, 10, 0) converted to int.
//
// When the result does not fit an int on the running platform the error
// is a range failure bounded by math.MinInt or math.MaxInt.
func Atoi(s string) (int, error) {
	v, nerr := defaultParser.parseInt(s, 10, 0)
	if nerr != nil {
		nerr.Func = fnAtoi
		if rs, ok := nerr.Cause.(RangeSignedError); ok {
			return clampInt(rs.BoundHint), nerr
		}
		return 0, nerr
	}

	i, err := conv.Int64ToInt(v)
	if err != nil {
		hint := clampInt(v)
		return hint, rangeSignedError(fnAtoi, s, int64(hint))
	}
	return i, nil
}

func clampInt(v int64) int {
	if i, err := conv.Int64ToInt(v); err == nil {
		return i
	}
	if v < 0 {
		return math.MinInt
	}
	return math.MaxInt
}

func (p *Parser) parseUint(s string, base, bitSize int) (uint64, *NumError) {
	if s == "" {
		return 0, syntaxError(fnParseUint, s)
	}

	// Underscores are allowed only when the radix comes from the prefix.
	base0 := base == 0

	s0 := s
	switch {
	case literal.ValidBase(base):
		// nothing to do
	case base == 0:
		base, s = literal.DetectRadix(s)
	default:
		return 0, baseError(fnParseUint, s0, base)
	}

	if bitSize < 0 || bitSize > 64 {
		return 0, bitSizeError(fnParseUint, s0, bitSize)
	}
	bitSize = p.resolveBitSize(bitSize)

	// cutoff is the smallest number such that cutoff*base > MaxUint64.
	var cutoff uint64
	switch base {
	case 10:
		cutoff = math.MaxUint64/10 + 1
	case 16:
		cutoff = math.MaxUint64/16 + 1
	default:
		cutoff = math.MaxUint64/uint64(base) + 1
	}

	maxVal := uint64(1)<<uint(bitSize) - 1

	underscores := false
	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' && base0 {
			underscores = true
			continue
		}

		d, ok := literal.DigitValue(c)
		if !ok || d >= base {
			return 0, syntaxError(fnParseUint, s0)
		}

		if n >= cutoff {
			// n*base overflows
			return maxVal, rangeUnsignedError(fnParseUint, s0, maxVal)
		}
		n *= uint64(base)

		n1 := n + uint64(d)
		if n1 < n || n1 > maxVal {
			// n+d overflows
			return maxVal, rangeUnsignedError(fnParseUint, s0, maxVal)
		}
		n = n1
	}

	if underscores && !literal.UnderscoreOK(s0) {
		return 0, syntaxError(fnParseUint, s0)
	}

	return n, nil
}

func (p *Parser) parseInt(s string, base, bitSize int) (int64, *NumError) {
	if s == "" {
		return 0, syntaxError(fnParseInt, s)
	}

	// Pick off leading sign.
	s0 := s
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}

	// Convert unsigned and check range.
	un, nerr := p.parseUint(s, base, bitSize)
	saturated := false
	if nerr != nil {
		rs, ok := nerr.Cause.(RangeUnsignedError)
		if !ok {
			return 0, newNumError(fnParseInt, s0, nerr.Cause)
		}
		// The magnitude saturated; the signed check below reports it.
		un = rs.BoundHint
		saturated = true
	}

	bitSize = p.resolveBitSize(bitSize)

	cutoff := uint64(1) << uint(bitSize-1)
	if !neg && un >= cutoff {
		hint := int64(cutoff - 1)
		return hint, rangeSignedError(fnParseInt, s0, hint)
	}
	// At bit size 1 the saturated magnitude equals cutoff, so it must be
	// rejected explicitly.
	if neg && (un > cutoff || saturated) {
		hint := negateMagnitude(cutoff)
		return hint, rangeSignedError(fnParseInt, s0, hint)
	}

	return negateIf(neg, un), nil
}

// negateMagnitude returns -m for a magnitude m <= 1<<63.
func negateMagnitude(m uint64) int64 {
	if m == 1<<63 {
		return math.MinInt64
	}
	return -int64(m)
}

// negateIf reinterprets un as signed, negating it when neg is set.
// un must already be range checked.
func negateIf(neg bool, un uint64) int64 {
	if !neg {
		return int64(un)
	}
	return negateMagnitude(un)
}
