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
package elab

import (
	"github.com/brightclark/moore/pkg/llhd"
	"github.com/brightclark/moore/pkg/svlog"
	"github.com/brightclark/moore/pkg/util/source"
)

// Lower maps a source type to its width-resolved counterpart in the
// intermediate representation.  The mapping is a pure function: deterministic,
// free of global state, and total over the supported subset.  The rules are:
//
//	bit, logic          -> i1
//	bit/logic [msb:lsb] -> i(msb-lsb+1), requiring msb >= lsb
//	int, integer        -> i32
//	packed struct       -> product of the lowered member types, in order
//
// Two source types with different resolved widths never collapse to the same
// integer type.  Enumerations (and any other construct outside the subset)
// yield an UnsupportedTypeError.
func Lower(datatype svlog.Type) (llhd.Type, Error) {
	switch t := datatype.(type) {
	case *svlog.BitType:
		return llhd.NewIntType(1), nil
	case *svlog.VectorType:
		if t.Msb < t.Lsb {
			return nil, &InvalidRangeError{t.Msb, t.Lsb, t.Span()}
		}
		//
		return llhd.NewIntType(uint(t.Msb-t.Lsb) + 1), nil
	case *svlog.IntType:
		return llhd.NewIntType(32), nil
	case *svlog.StructType:
		return lowerStruct(t)
	case *svlog.EnumType:
		return nil, &UnsupportedTypeError{"enum", t.Span()}
	default:
		return nil, &UnsupportedTypeError{"unknown", datatype.Span()}
	}
}

// Lower a packed struct into an ordered product.  Member names are dropped at
// this level (only positional order survives), but they still form a scope:
// two members sharing a name is an error.  An empty struct is legal and
// lowers to an empty product.
func lowerStruct(datatype *svlog.StructType) (llhd.Type, Error) {
	var (
		seen     = make(map[string]source.Span)
		elements = make([]llhd.Type, len(datatype.Members))
	)
	//
	for i := range datatype.Members {
		member := &datatype.Members[i]
		// Check member name unused
		if first, ok := seen[member.Name]; ok {
			return nil, &DuplicateDeclarationError{member.Name, first, member.Span()}
		}
		//
		seen[member.Name] = member.Span()
		// Lower member type
		element, err := Lower(member.Type)
		if err != nil {
			return nil, err
		}
		//
		elements[i] = element
	}
	//
	return llhd.NewStructType(elements), nil
}
