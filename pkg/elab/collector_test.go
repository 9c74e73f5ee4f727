package elab

import (
	"errors"
	"testing"

	"github.com/brightclark/moore/pkg/svlog"
	"github.com/brightclark/moore/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declaration(name string, datatype svlog.Type, at int) svlog.Declaration {
	return svlog.NewDeclaration(name, datatype, source.NewSpan(at, at+1))
}

func module(name string, decls ...svlog.Declaration) *svlog.Module {
	return svlog.NewModule(name, decls, source.NewSpan(0, 1))
}

func TestCollectPreservesOrder(t *testing.T) {
	input := module("m",
		declaration("c", bit(svlog.BIT), 0),
		declaration("a", integer(svlog.INT), 1),
		declaration("b", bit(svlog.LOGIC), 2))
	//
	decls, errs := CollectDeclarations(input)
	//
	require.Empty(t, errs)
	require.Len(t, decls, 3)
	assert.Equal(t, "c", decls[0].Name)
	assert.Equal(t, "a", decls[1].Name)
	assert.Equal(t, "b", decls[2].Name)
}

func TestCollectEmptyModule(t *testing.T) {
	decls, errs := CollectDeclarations(module("m"))
	//
	assert.Empty(t, errs)
	assert.Empty(t, decls)
}

func TestCollectDuplicate(t *testing.T) {
	var clash *DuplicateDeclarationError
	//
	input := module("m",
		declaration("a", bit(svlog.BIT), 0),
		declaration("a", integer(svlog.INT), 1))
	//
	decls, errs := CollectDeclarations(input)
	// No declarations on error
	assert.Empty(t, decls)
	require.Len(t, errs, 1)
	require.True(t, errors.As(errs[0], &clash))
	assert.Equal(t, "a", clash.Name)
	// Both positions reported
	first, second := clash.First(), clash.Second()
	assert.Equal(t, 0, first.Start())
	assert.Equal(t, 1, second.Start())
}

func TestCollectDuplicateRegardlessOfType(t *testing.T) {
	// Identical types clash just the same
	input := module("m",
		declaration("a", bit(svlog.BIT), 0),
		declaration("a", bit(svlog.BIT), 1))
	//
	_, errs := CollectDeclarations(input)
	//
	assert.Len(t, errs, 1)
}

func TestCollectReportsAllClashes(t *testing.T) {
	input := module("m",
		declaration("a", bit(svlog.BIT), 0),
		declaration("b", bit(svlog.BIT), 1),
		declaration("a", bit(svlog.BIT), 2),
		declaration("b", bit(svlog.BIT), 3))
	//
	_, errs := CollectDeclarations(input)
	//
	assert.Len(t, errs, 2)
}
