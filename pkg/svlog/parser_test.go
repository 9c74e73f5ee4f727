package svlog

import (
	"testing"

	"github.com/brightclark/moore/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Parse a given string, expecting success.
func CheckParse(t *testing.T, input string) Program {
	program, errs := Parse(source.NewSourceFile("test.sv", []byte(input)))
	//
	for _, err := range errs {
		t.Errorf("unexpected syntax error: %s", err.Error())
	}
	//
	return program
}

// Parse a given string, expecting a syntax error.
func CheckParseFails(t *testing.T, input string) {
	_, errs := Parse(source.NewSourceFile("test.sv", []byte(input)))
	//
	if len(errs) == 0 {
		t.Errorf("expected syntax error parsing \"%s\"", input)
	}
}

func TestParse_EmptyFile(t *testing.T) {
	program := CheckParse(t, "")
	assert.Empty(t, program.Modules)
}

func TestParse_EmptyModule(t *testing.T) {
	program := CheckParse(t, "module foo; endmodule")
	//
	require.Len(t, program.Modules, 1)
	assert.Equal(t, "foo", program.Modules[0].Name)
	assert.Empty(t, program.Modules[0].Decls)
}

func TestParse_EmptyPortList(t *testing.T) {
	program := CheckParse(t, "module foo(); endmodule")
	//
	require.Len(t, program.Modules, 1)
	assert.Equal(t, "foo", program.Modules[0].Name)
}

func TestParse_Scalars(t *testing.T) {
	program := CheckParse(t, `
module foo;
  bit a0;
  logic b0;
  int a1;
  integer b1;
endmodule`)
	//
	require.Len(t, program.Modules, 1)
	decls := program.Modules[0].Decls
	require.Len(t, decls, 4)
	//
	assert.Equal(t, "a0", decls[0].Name)
	assert.Equal(t, "bit", decls[0].Type.String())
	assert.Equal(t, "logic", decls[1].Type.String())
	assert.Equal(t, "int", decls[2].Type.String())
	assert.Equal(t, "integer", decls[3].Type.String())
}

func TestParse_Vectors(t *testing.T) {
	program := CheckParse(t, `
module foo;
  bit [41:0] a2;
  logic [7:4] b2;
endmodule`)
	//
	decls := program.Modules[0].Decls
	require.Len(t, decls, 2)
	//
	vec, ok := decls[0].Type.(*VectorType)
	require.True(t, ok)
	assert.Equal(t, BIT, vec.Kind)
	assert.Equal(t, 41, vec.Msb)
	assert.Equal(t, 0, vec.Lsb)
	//
	assert.Equal(t, "logic [7:4]", decls[1].Type.String())
}

func TestParse_NestedStruct(t *testing.T) {
	program := CheckParse(t, `
module foo;
  struct packed {
    logic a;
    int b;
    struct packed {
      bit x;
      integer y;
    } c;
  } c2;
endmodule`)
	//
	decls := program.Modules[0].Decls
	require.Len(t, decls, 1)
	assert.Equal(t, "c2", decls[0].Name)
	//
	outer, ok := decls[0].Type.(*StructType)
	require.True(t, ok)
	require.Len(t, outer.Members, 3)
	assert.Equal(t, "a", outer.Members[0].Name)
	assert.Equal(t, "b", outer.Members[1].Name)
	assert.Equal(t, "c", outer.Members[2].Name)
	//
	inner, ok := outer.Members[2].Type.(*StructType)
	require.True(t, ok)
	require.Len(t, inner.Members, 2)
	assert.Equal(t, "x", inner.Members[0].Name)
	assert.Equal(t, "y", inner.Members[1].Name)
}

func TestParse_EmptyStruct(t *testing.T) {
	program := CheckParse(t, "module foo; struct packed {} s; endmodule")
	//
	datatype, ok := program.Modules[0].Decls[0].Type.(*StructType)
	require.True(t, ok)
	assert.Empty(t, datatype.Members)
}

func TestParse_Enum(t *testing.T) {
	program := CheckParse(t, "module foo; enum { e0, e1 } c0; endmodule")
	//
	datatype, ok := program.Modules[0].Decls[0].Type.(*EnumType)
	require.True(t, ok)
	assert.Equal(t, []string{"e0", "e1"}, datatype.Variants)
}

func TestParse_MultipleModules(t *testing.T) {
	program := CheckParse(t, `
module a; bit x; endmodule
module b; int y; endmodule`)
	//
	require.Len(t, program.Modules, 2)
	assert.Equal(t, "a", program.Modules[0].Name)
	assert.Equal(t, "b", program.Modules[1].Name)
}

func TestParse_Comments(t *testing.T) {
	program := CheckParse(t, `
// A module with comments everywhere.
module foo;
  /* a multi-line
     comment */
  bit a0; // trailing
endmodule`)
	//
	require.Len(t, program.Modules[0].Decls, 1)
}

func TestParse_DeclarationSpans(t *testing.T) {
	input := "module foo; bit a0; endmodule"
	program := CheckParse(t, input)
	// Span of "bit a0;" covers exactly that text
	span := program.Modules[0].Decls[0].Span()
	assert.Equal(t, "bit a0;", input[span.Start():span.End()])
}

func TestParse_MissingSemicolon(t *testing.T) {
	CheckParseFails(t, "module foo endmodule")
}

func TestParse_MissingEndmodule(t *testing.T) {
	CheckParseFails(t, "module foo; bit a0;")
}

func TestParse_UnknownType(t *testing.T) {
	CheckParseFails(t, "module foo; wire a0; endmodule")
}

func TestParse_MalformedRange(t *testing.T) {
	CheckParseFails(t, "module foo; bit [41];")
}

func TestParse_UnpackedStruct(t *testing.T) {
	// Only packed structs are part of the subset
	CheckParseFails(t, "module foo; struct { bit x; } s; endmodule")
}

func TestParse_UnterminatedStruct(t *testing.T) {
	CheckParseFails(t, "module foo; struct packed { bit x;")
}
