package numlit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type port uint16

func TestParseSigned(t *testing.T) {
	v8, err := ParseSigned[int8]("-0x80", 0)
	require.NoError(t, err)
	assert.Equal(t, int8(math.MinInt8), v8)

	v8, err = ParseSigned[int8]("128", 10)
	assert.ErrorIs(t, err, ErrRange)
	assert.Equal(t, int8(math.MaxInt8), v8)

	v16, err := ParseSigned[int16]("-32_768", 0)
	require.NoError(t, err)
	assert.Equal(t, int16(math.MinInt16), v16)

	v32, err := ParseSigned[int32]("2147483648", 10)
	assert.ErrorIs(t, err, ErrRange)
	assert.Equal(t, int32(math.MaxInt32), v32)

	v64, err := ParseSigned[int64]("-9223372036854775808", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), v64)

	_, err = ParseSigned[int]("z", 10)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseUnsigned(t *testing.T) {
	u8, err := ParseUnsigned[uint8]("0b1111_1111", 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(math.MaxUint8), u8)

	u8, err = ParseUnsigned[uint8]("256", 10)
	assert.ErrorIs(t, err, ErrRange)
	assert.Equal(t, uint8(math.MaxUint8), u8)

	p, err := ParseUnsigned[port]("8080", 10)
	require.NoError(t, err)
	assert.Equal(t, port(8080), p)

	u64, err := ParseUnsigned[uint64]("0xffff_ffff_ffff_ffff", 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u64)

	_, err = ParseUnsigned[uint32]("-1", 10)
	var nerr *NumError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "ParseUint", nerr.Func)
	assert.Equal(t, KindInvalidSyntax, nerr.Kind())
}
