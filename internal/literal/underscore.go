package literal

// scanState is the state of the underscore placement scanner.
type scanState uint8

const (
	stateStart      scanState = iota // nothing consumed yet, or only a sign
	stateDigit                       // last byte was a digit or a radix prefix
	stateUnderscore                  // last byte was an underscore
	stateOther                       // last byte was anything else
)

// UnderscoreOK reports whether the underscores in s are placed legally.
//
// s is the whole literal, optionally signed and prefixed. Each underscore
// must sit between two digits, where a radix prefix ("0b", "0o", "0x")
// counts as a digit on its left. So "0x_1" is accepted while "_0x1",
// "0_x1", "1__2" and "12_" are not.
//
// Only underscore placement is judged here; a literal with misplaced
// non-digit bytes but well placed underscores still passes.
func UnderscoreOK(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}

	state := stateStart
	hex := false
	i := 0
	if len(s) >= 2 && s[0] == '0' {
		switch lower(s[1]) {
		case 'b', 'o', 'x':
			i = 2
			state = stateDigit
			hex = lower(s[1]) == 'x'
		}
	}

	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case isDecimal(c) || (hex && isHexLetter(c)):
			state = stateDigit
		case c == '_':
			if state != stateDigit {
				return false
			}
			state = stateUnderscore
		default:
			if state == stateUnderscore {
				return false
			}
			state = stateOther
		}
	}
	return state != stateUnderscore
}

func isDecimal(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexLetter(c byte) bool {
	return 'a' <= lower(c) && lower(c) <= 'f'
}
