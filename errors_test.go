package numlit

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "syntax",
			err:  func() error { _, err := ParseInt("12a", 10, 64); return err }(),
			want: `numlit.ParseInt: parsing "12a": invalid syntax`,
		},
		{
			name: "base",
			err:  func() error { _, err := ParseUint("1", 1, 64); return err }(),
			want: `numlit.ParseUint: parsing "1": invalid base 1`,
		},
		{
			name: "bit size",
			err:  func() error { _, err := ParseInt("1", 10, 65); return err }(),
			want: `numlit.ParseInt: parsing "1": invalid bit size 65`,
		},
		{
			name: "signed range",
			err:  func() error { _, err := ParseInt("-129", 10, 8); return err }(),
			want: `numlit.ParseInt: parsing "-129": signed value out of range: -128`,
		},
		{
			name: "unsigned range",
			err:  func() error { _, err := ParseUint("256", 10, 8); return err }(),
			want: `numlit.ParseUint: parsing "256": unsigned value out of range: 255`,
		},
		{
			name: "quoted",
			err:  func() error { _, err := ParseInt("1\n", 10, 64); return err }(),
			want: `numlit.ParseInt: parsing "1\n": invalid syntax`,
		},
		{
			name: "atoi",
			err:  func() error { _, err := Atoi(""); return err }(),
			want: `numlit.Atoi: parsing "": invalid syntax`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorsIs(t *testing.T) {
	_, err := ParseInt("x", 10, 64)
	assert.ErrorIs(t, err, ErrSyntax)
	assert.NotErrorIs(t, err, ErrRange)

	_, err = ParseInt("1000", 10, 8)
	assert.ErrorIs(t, err, ErrRange)
	assert.NotErrorIs(t, err, ErrSyntax)

	_, err = ParseUint("1000", 10, 8)
	assert.ErrorIs(t, err, ErrRange)

	_, err = ParseUint("1", 99, 8)
	assert.NotErrorIs(t, err, ErrSyntax)
	assert.NotErrorIs(t, err, ErrRange)
}

func TestErrorsAs(t *testing.T) {
	_, err := ParseInt("9223372036854775808", 10, 64)

	var nerr *NumError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "ParseInt", nerr.Func)
	assert.Equal(t, "9223372036854775808", nerr.Num)
	assert.Equal(t, KindOutOfRangeSigned, nerr.Kind())

	var rs RangeSignedError
	require.ErrorAs(t, err, &rs)
	assert.Equal(t, int64(math.MaxInt64), rs.BoundHint)

	assert.Equal(t, RangeSignedError{BoundHint: math.MaxInt64}, errors.Unwrap(err))
}

func TestCauseKinds(t *testing.T) {
	tests := []struct {
		cause Cause
		kind  CauseKind
		name  string
	}{
		{BaseError{Base: 37}, KindInvalidBase, "invalid_base"},
		{BitSizeError{BitSize: -1}, KindInvalidBitSize, "invalid_bit_size"},
		{SyntaxError{}, KindInvalidSyntax, "invalid_syntax"},
		{RangeSignedError{BoundHint: 127}, KindOutOfRangeSigned, "out_of_range_signed"},
		{RangeUnsignedError{BoundHint: 255}, KindOutOfRangeUnsigned, "out_of_range_unsigned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.cause.Kind())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}

	assert.Equal(t, "unknown(0)", CauseKind(0).String())
}

func TestNumErrorCopiesInput(t *testing.T) {
	buf := []byte("12x")
	s := string(buf[:3])

	_, err := ParseInt(s, 10, 64)

	var nerr *NumError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "12x", nerr.Num)
	assert.NotSame(t, unsafe.StringData(s), unsafe.StringData(nerr.Num))
}

func TestErrInvalidNativeBitSize(t *testing.T) {
	err := &ErrInvalidNativeBitSize{BitSize: 16}
	assert.Equal(t, "invalid native bit size: 16 (want 32 or 64)", err.Error())
}
