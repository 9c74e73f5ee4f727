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
package llhd

import (
	"fmt"
	"strings"
)

// Type represents a concrete, width-resolved type in the intermediate
// representation.  This is a closed union of exactly two forms: opaque
// fixed-width integers, and ordered positional products of types.  Types are
// immutable values, hence safe to share between entities.
type Type interface {
	// BitWidth returns the total packed width of this type in bits.
	BitWidth() uint
	// String returns the canonical textual spelling of this type.  This
	// spelling is part of the external compatibility contract and must remain
	// stable across runs.
	String() string
}

// IntType is an opaque scalar of a given bit width.  All source-level scalar
// distinctions (two-state vs four-state, signedness keywords) have been
// collapsed away by the time a value of this type exists.
type IntType struct {
	// The number of bits this type represents.
	width uint
}

// NewIntType constructs a new integer type of the given (non-zero) width.
func NewIntType(width uint) *IntType {
	if width == 0 {
		panic("zero-width integer type")
	}
	//
	return &IntType{width}
}

// BitWidth returns the bitwidth of this type.  For example, the bitwidth of
// i8 is 8.
func (p *IntType) BitWidth() uint {
	return p.width
}

func (p *IntType) String() string {
	return fmt.Sprintf("i%d", p.width)
}

// StructType is an ordered positional product of types.  Field names are not
// retained at this level; only the order of the elements matters.
type StructType struct {
	// Element types, in field order.
	elements []Type
}

// NewStructType constructs a new product type over the given elements.  An
// empty product is legal.
func NewStructType(elements []Type) *StructType {
	return &StructType{elements}
}

// Elements returns the element types of this product, in field order.
func (p *StructType) Elements() []Type {
	return p.elements
}

// BitWidth returns the total packed width of this product, which is simply
// the sum of the widths of its elements.
func (p *StructType) BitWidth() uint {
	width := uint(0)
	//
	for _, e := range p.elements {
		width += e.BitWidth()
	}
	//
	return width
}

func (p *StructType) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, e := range p.elements {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(e.String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
