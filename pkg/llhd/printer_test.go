package llhd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintEmptyEntity(t *testing.T) {
	entity := NewEntityBuilder("empty").Build()
	//
	assert.Equal(t, "entity @empty () () {\n}\n", entity.String())
}

func TestPrintEntitySignals(t *testing.T) {
	entity := NewEntityBuilder("foo").
		AddSignal("a0", NewIntType(1)).
		AddSignal("a1", NewIntType(32)).
		AddSignal("a2", NewStructType([]Type{NewIntType(1), NewIntType(32)})).
		Build()
	//
	expected := "entity @foo () () {\n" +
		"  %a0 = sig i1\n" +
		"  %a1 = sig i32\n" +
		"  %a2 = sig {i1, i32}\n" +
		"}\n"
	//
	assert.Equal(t, expected, entity.String())
}

func TestPrintEntityWithInit(t *testing.T) {
	datatype := NewIntType(8)
	entity := NewEntityBuilder("foo").
		AddSignalWithInit("a0", datatype, DefaultValue(datatype)).
		AddSignalWithInit("a1", datatype, NewValue(8, *big.NewInt(255))).
		Build()
	//
	expected := "entity @foo () () {\n" +
		"  %a0 = sig i8 0\n" +
		"  %a1 = sig i8 255\n" +
		"}\n"
	//
	assert.Equal(t, expected, entity.String())
}

func TestPrintDeterministic(t *testing.T) {
	entity := NewEntityBuilder("foo").
		AddSignal("x", NewIntType(4)).
		Build()
	// Repeated rendering yields identical text
	assert.Equal(t, entity.String(), entity.String())
}

func TestDefaultValueWidth(t *testing.T) {
	product := NewStructType([]Type{NewIntType(1), NewIntType(32)})
	value := DefaultValue(product)
	//
	assert.Equal(t, uint(33), value.BitWidth())
	assert.Equal(t, "0", value.String())
}
