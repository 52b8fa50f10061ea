package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectRadix(t *testing.T) {
	tests := []struct {
		in    string
		radix int
		rest  string
	}{
		{"", 10, ""},
		{"12345", 10, "12345"},
		{"0", 8, ""},
		{"012345", 8, "12345"},
		{"0x12345", 16, "12345"},
		{"0X12345", 16, "12345"},
		{"0b101", 2, "101"},
		{"0B101", 2, "101"},
		{"0o377", 8, "377"},
		{"0O377", 8, "377"},
		// A prefix needs at least one byte after it.
		{"0x", 8, "x"},
		{"0b", 8, "b"},
		{"0o", 8, "o"},
		{"0_1", 8, "_1"},
		{"0x_1", 16, "_1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			radix, rest := DetectRadix(tt.in)
			assert.Equal(t, tt.radix, radix)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestDigitValue(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		d, ok := DigitValue(c)
		assert.True(t, ok)
		assert.Equal(t, int(c-'0'), d)
	}
	for c := byte('a'); c <= 'z'; c++ {
		d, ok := DigitValue(c)
		assert.True(t, ok)
		assert.Equal(t, int(c-'a')+10, d)

		upper, ok := DigitValue(c - 'a' + 'A')
		assert.True(t, ok)
		assert.Equal(t, d, upper)
	}

	for _, c := range []byte{'_', '-', '+', ' ', '@', '[', '`', '{', '/', ':', 0, 0x80, 0xff} {
		_, ok := DigitValue(c)
		assert.False(t, ok, "byte %q", c)
	}
}

func TestValidBase(t *testing.T) {
	assert.False(t, ValidBase(0))
	assert.False(t, ValidBase(1))
	assert.True(t, ValidBase(2))
	assert.True(t, ValidBase(36))
	assert.False(t, ValidBase(37))
	assert.False(t, ValidBase(-10))
}

func TestUnderscoreOK(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1_2_3_4_5", true},
		{"0x_1_2_3_4_5", true},
		{"-0x_1_2_3_4_5", true},
		{"+0x_f", true},
		{"0b_1_0_1", true},
		{"0o_1_2", true},
		{"0_1_2_3_4_5", true},
		{"0xA_B_c", true},
		{"12345", true},
		{"", true},

		{"_12345", false},
		{"-_12345", false},
		{"_-12345", false},
		{"1__2345", false},
		{"12345_", false},
		{"_0x12345", false},
		{"0_x1", false},
		{"0x__12345", false},
		{"0x1234__5", false},
		{"0x12345_", false},
		{"0b101_", false},
		{"0__12345", false},
		// hex letters only count as digits after a hex prefix
		{"1_a", false},
		{"_", false},
		{"-_", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, UnderscoreOK(tt.in))
		})
	}
}
