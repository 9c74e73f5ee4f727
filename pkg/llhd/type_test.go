package llhd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntTypeWidth(t *testing.T) {
	assert.Equal(t, uint(1), NewIntType(1).BitWidth())
	assert.Equal(t, uint(32), NewIntType(32).BitWidth())
	assert.Equal(t, uint(42), NewIntType(42).BitWidth())
}

func TestIntTypeString(t *testing.T) {
	assert.Equal(t, "i1", NewIntType(1).String())
	assert.Equal(t, "i32", NewIntType(32).String())
	assert.Equal(t, "i42", NewIntType(42).String())
}

func TestIntTypeZeroWidth(t *testing.T) {
	assert.Panics(t, func() { NewIntType(0) })
}

func TestStructTypeEmpty(t *testing.T) {
	empty := NewStructType(nil)
	//
	assert.Equal(t, uint(0), empty.BitWidth())
	assert.Equal(t, "{}", empty.String())
}

func TestStructTypeFlat(t *testing.T) {
	product := NewStructType([]Type{NewIntType(1), NewIntType(32)})
	//
	assert.Equal(t, uint(33), product.BitWidth())
	assert.Equal(t, "{i1, i32}", product.String())
}

func TestStructTypeNested(t *testing.T) {
	inner := NewStructType([]Type{NewIntType(1), NewIntType(32)})
	outer := NewStructType([]Type{NewIntType(1), NewIntType(32), inner})
	//
	assert.Equal(t, uint(66), outer.BitWidth())
	assert.Equal(t, "{i1, i32, {i1, i32}}", outer.String())
}

func TestStructTypeElementsOrdered(t *testing.T) {
	elements := []Type{NewIntType(8), NewIntType(16), NewIntType(24)}
	product := NewStructType(elements)
	//
	for i, e := range product.Elements() {
		assert.Equal(t, elements[i], e)
	}
}
