package literal

const (
	// MinBase is the smallest explicit radix.
	MinBase = 2
	// MaxBase is the largest explicit radix (digits 0-9 and a-z).
	MaxBase = 36
)

// ValidBase reports whether base is usable as an explicit radix.
func ValidBase(base int) bool {
	return MinBase <= base && base <= MaxBase
}

// DetectRadix resolves the radix of a literal written without an explicit base.
//
// "0b", "0o" and "0x" (any case) select 2, 8 and 16 when at least one more
// byte follows the prefix. A lone leading zero selects octal and is dropped.
// Anything else is decimal. The returned string is s without its prefix.
func DetectRadix(s string) (int, string) {
	if s == "" || s[0] != '0' {
		return 10, s
	}
	if len(s) >= 3 {
		switch lower(s[1]) {
		case 'b':
			return 2, s[2:]
		case 'o':
			return 8, s[2:]
		case 'x':
			return 16, s[2:]
		}
	}
	return 8, s[1:]
}

// DigitValue maps c to its digit value in 0..35.
// Letters are case-insensitive. ok is false for bytes outside the alphabet.
func DigitValue(c byte) (d int, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= lower(c) && lower(c) <= 'z':
		return int(lower(c)-'a') + 10, true
	}
	return 0, false
}

// lower folds ASCII letters to lowercase. Callers only compare the result
// against letter ranges, which no folded non-letter can reach.
func lower(c byte) byte {
	return c | ('x' - 'X')
}
