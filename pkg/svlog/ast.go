// Copyright Brightclark Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package svlog

import (
	"fmt"
	"strings"

	"github.com/brightclark/moore/pkg/util/source"
)

// ScalarKind distinguishes the source keyword behind a single-bit type.  The
// distinction is purely lexical at this level: both kinds resolve to a width
// of one bit.
type ScalarKind uint8

const (
	// BIT signals the two-state "bit" keyword.
	BIT ScalarKind = iota
	// LOGIC signals the four-state "logic" keyword.
	LOGIC
)

// String returns the source keyword for this kind.
func (k ScalarKind) String() string {
	if k == BIT {
		return "bit"
	}
	//
	return "logic"
}

// IntKind distinguishes the source keyword behind a 32-bit integer type.
// Again, both kinds resolve to the same width.
type IntKind uint8

const (
	// INT signals the two-state "int" keyword.
	INT IntKind = iota
	// INTEGER signals the four-state "integer" keyword.
	INTEGER
)

// String returns the source keyword for this kind.
func (k IntKind) String() string {
	if k == INT {
		return "int"
	}
	//
	return "integer"
}

// ============================================================================
// Types
// ============================================================================

// Type represents a source-level data type as declared in a module.  This is a
// closed union: the complete set of implementations lives in this file, and
// consumers dispatch over them exhaustively with a type switch.
type Type interface {
	// Span returns the range of source text this type was parsed from.
	Span() source.Span
	// String returns a source-like rendering of this type.
	String() string
}

// BitType represents a single-bit scalar declared as either "bit" or "logic".
type BitType struct {
	// Kind records which keyword introduced this type.
	Kind ScalarKind
	//
	span source.Span
}

// NewBitType constructs a new single-bit scalar type.
func NewBitType(kind ScalarKind, span source.Span) *BitType {
	return &BitType{kind, span}
}

// Span returns the range of source text this type was parsed from.
func (p *BitType) Span() source.Span {
	return p.span
}

func (p *BitType) String() string {
	return p.Kind.String()
}

// VectorType represents a packed range "[msb:lsb]" over a single-bit base
// kind.  Only descending ranges are meaningful; an ascending range is rejected
// during lowering rather than silently reordered.
type VectorType struct {
	// Kind records which keyword introduced the base type.
	Kind ScalarKind
	// Msb is the most significant bit of the packed range.
	Msb int
	// Lsb is the least significant bit of the packed range.
	Lsb int
	//
	span source.Span
}

// NewVectorType constructs a new packed vector type.
func NewVectorType(kind ScalarKind, msb int, lsb int, span source.Span) *VectorType {
	return &VectorType{kind, msb, lsb, span}
}

// Span returns the range of source text this type was parsed from.
func (p *VectorType) Span() source.Span {
	return p.span
}

func (p *VectorType) String() string {
	return fmt.Sprintf("%s [%d:%d]", p.Kind, p.Msb, p.Lsb)
}

// IntType represents a 32-bit scalar declared as either "int" or "integer".
type IntType struct {
	// Kind records which keyword introduced this type.
	Kind IntKind
	//
	span source.Span
}

// NewIntType constructs a new 32-bit integer type.
func NewIntType(kind IntKind, span source.Span) *IntType {
	return &IntType{kind, span}
}

// Span returns the range of source text this type was parsed from.
func (p *IntType) Span() source.Span {
	return p.span
}

func (p *IntType) String() string {
	return p.Kind.String()
}

// StructType represents a packed struct whose members are laid out as a
// contiguous sequence of bits.  Member order is semantically significant and
// members can themselves be packed structs, to arbitrary depth.
type StructType struct {
	// Members of this struct, in declaration order.
	Members []Member
	//
	span source.Span
}

// NewStructType constructs a new packed struct type.
func NewStructType(members []Member, span source.Span) *StructType {
	return &StructType{members, span}
}

// Span returns the range of source text this type was parsed from.
func (p *StructType) Span() source.Span {
	return p.span
}

func (p *StructType) String() string {
	var builder strings.Builder
	//
	builder.WriteString("struct packed { ")
	//
	for _, m := range p.Members {
		builder.WriteString(fmt.Sprintf("%s %s; ", m.Type, m.Name))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Member is a single named field of a packed struct.
type Member struct {
	// Name of this member.
	Name string
	// Type of this member.
	Type Type
	//
	span source.Span
}

// NewMember constructs a new struct member.
func NewMember(name string, datatype Type, span source.Span) Member {
	return Member{name, datatype, span}
}

// Span returns the range of source text this member was parsed from.
func (p *Member) Span() source.Span {
	return p.span
}

// EnumType represents an enumeration type.  Enumerations are recognised by the
// parser but sit outside the supported elaboration subset: lowering reports
// them as unsupported rather than guessing an encoding.
type EnumType struct {
	// Variants of this enumeration, in declaration order.
	Variants []string
	//
	span source.Span
}

// NewEnumType constructs a new enumeration type.
func NewEnumType(variants []string, span source.Span) *EnumType {
	return &EnumType{variants, span}
}

// Span returns the range of source text this type was parsed from.
func (p *EnumType) Span() source.Span {
	return p.span
}

func (p *EnumType) String() string {
	return fmt.Sprintf("enum { %s }", strings.Join(p.Variants, ", "))
}

// ============================================================================
// Declarations
// ============================================================================

// Declaration is a single named signal declaration within a module.
type Declaration struct {
	// Name of the declared signal.
	Name string
	// Type of the declared signal.
	Type Type
	//
	span source.Span
}

// NewDeclaration constructs a new declaration.
func NewDeclaration(name string, datatype Type, span source.Span) Declaration {
	return Declaration{name, datatype, span}
}

// Span returns the range of source text this declaration was parsed from.
func (p *Declaration) Span() source.Span {
	return p.span
}

// Module is a single source-level module holding an ordered list of signal
// declarations.  Modules in the supported subset carry no port list.
type Module struct {
	// Name of this module.
	Name string
	// Declarations of this module, in source order.
	Decls []Declaration
	//
	span source.Span
}

// NewModule constructs a new module.
func NewModule(name string, decls []Declaration, span source.Span) *Module {
	return &Module{name, decls, span}
}

// Span returns the range of source text this module was parsed from.
func (p *Module) Span() source.Span {
	return p.span
}

// Program is an ordered collection of modules, typically those parsed from a
// single source file.
type Program struct {
	// Modules of this program, in source order.
	Modules []*Module
}
