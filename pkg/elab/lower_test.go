package elab

import (
	"errors"
	"fmt"
	"testing"

	"github.com/brightclark/moore/pkg/svlog"
	"github.com/brightclark/moore/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Convenience constructors for hand-built source types.  Spans are irrelevant
// for the lowering rules themselves.

func bit(kind svlog.ScalarKind) svlog.Type {
	return svlog.NewBitType(kind, source.NewSpan(0, 1))
}

func vector(kind svlog.ScalarKind, msb int, lsb int) svlog.Type {
	return svlog.NewVectorType(kind, msb, lsb, source.NewSpan(0, 1))
}

func integer(kind svlog.IntKind) svlog.Type {
	return svlog.NewIntType(kind, source.NewSpan(0, 1))
}

func packed(members ...svlog.Member) svlog.Type {
	return svlog.NewStructType(members, source.NewSpan(0, 1))
}

func member(name string, datatype svlog.Type) svlog.Member {
	return svlog.NewMember(name, datatype, datatype.Span())
}

func TestLowerBit(t *testing.T) {
	for _, kind := range []svlog.ScalarKind{svlog.BIT, svlog.LOGIC} {
		actual, err := Lower(bit(kind))
		//
		require.Nil(t, err)
		assert.Equal(t, "i1", actual.String())
		assert.Equal(t, uint(1), actual.BitWidth())
	}
}

func TestLowerInt(t *testing.T) {
	for _, kind := range []svlog.IntKind{svlog.INT, svlog.INTEGER} {
		actual, err := Lower(integer(kind))
		//
		require.Nil(t, err)
		assert.Equal(t, "i32", actual.String())
	}
}

func TestLowerVectorWidths(t *testing.T) {
	tests := []struct {
		msb, lsb int
		expected uint
	}{
		{0, 0, 1},
		{1, 0, 2},
		{5, 5, 1},
		{7, 4, 4},
		{41, 0, 42},
		{127, 64, 64},
	}
	//
	for _, tt := range tests {
		t.Run(fmt.Sprintf("[%d:%d]", tt.msb, tt.lsb), func(t *testing.T) {
			actual, err := Lower(vector(svlog.BIT, tt.msb, tt.lsb))
			//
			require.Nil(t, err)
			assert.Equal(t, tt.expected, actual.BitWidth())
			assert.Equal(t, fmt.Sprintf("i%d", tt.expected), actual.String())
		})
	}
}

func TestLowerInvalidRange(t *testing.T) {
	var rangeError *InvalidRangeError
	//
	_, err := Lower(vector(svlog.LOGIC, 3, 5))
	//
	require.NotNil(t, err)
	require.True(t, errors.As(err, &rangeError))
	assert.Equal(t, 3, rangeError.Msb)
	assert.Equal(t, 5, rangeError.Lsb)
	assert.Equal(t, "invalid packed range [3:5]", rangeError.Message())
}

func TestLowerStructNested(t *testing.T) {
	datatype := packed(
		member("a", bit(svlog.LOGIC)),
		member("b", integer(svlog.INT)),
		member("c", packed(
			member("x", bit(svlog.BIT)),
			member("y", integer(svlog.INTEGER)))))
	//
	actual, err := Lower(datatype)
	//
	require.Nil(t, err)
	assert.Equal(t, "{i1, i32, {i1, i32}}", actual.String())
	assert.Equal(t, uint(66), actual.BitWidth())
}

func TestLowerStructEmpty(t *testing.T) {
	actual, err := Lower(packed())
	//
	require.Nil(t, err)
	assert.Equal(t, "{}", actual.String())
	assert.Equal(t, uint(0), actual.BitWidth())
}

func TestLowerStructOrder(t *testing.T) {
	forward, err1 := Lower(packed(member("a", bit(svlog.BIT)), member("b", integer(svlog.INT))))
	reverse, err2 := Lower(packed(member("b", integer(svlog.INT)), member("a", bit(svlog.BIT))))
	//
	require.Nil(t, err1)
	require.Nil(t, err2)
	// Member order is semantically significant
	assert.Equal(t, "{i1, i32}", forward.String())
	assert.Equal(t, "{i32, i1}", reverse.String())
}

func TestLowerStructMemberClash(t *testing.T) {
	var clash *DuplicateDeclarationError
	//
	_, err := Lower(packed(member("a", bit(svlog.BIT)), member("a", integer(svlog.INT))))
	//
	require.NotNil(t, err)
	require.True(t, errors.As(err, &clash))
	assert.Equal(t, "a", clash.Name)
}

func TestLowerStructNestedError(t *testing.T) {
	var rangeError *InvalidRangeError
	// An invalid range buried inside a nested struct still surfaces
	_, err := Lower(packed(member("a", packed(member("x", vector(svlog.BIT, 0, 7))))))
	//
	require.NotNil(t, err)
	require.True(t, errors.As(err, &rangeError))
}

func TestLowerEnumUnsupported(t *testing.T) {
	var unsupported *UnsupportedTypeError
	//
	_, err := Lower(svlog.NewEnumType([]string{"e0", "e1"}, source.NewSpan(0, 1)))
	//
	require.NotNil(t, err)
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "unsupported enum type", unsupported.Message())
}

func TestLowerDeterministic(t *testing.T) {
	datatype := packed(
		member("a", vector(svlog.LOGIC, 41, 0)),
		member("b", integer(svlog.INTEGER)))
	// Lowering the same type twice yields identical results
	first, err1 := Lower(datatype)
	second, err2 := Lower(datatype)
	//
	require.Nil(t, err1)
	require.Nil(t, err2)
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first.BitWidth(), second.BitWidth())
}
