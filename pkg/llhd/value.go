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
	"math/big"
)

// Value is a constant of a given bit width, as used for the initial value of
// a signal.  Values are flat: a product-typed signal takes its initial value
// over the full packed width.
type Value struct {
	// Width of this value in bits.
	width uint
	// Actual (unsigned) value.
	number big.Int
}

// NewValue constructs a constant of the given width.  The number is taken
// modulo nothing: callers are expected to supply a number representable in
// the given width.
func NewValue(width uint, number big.Int) Value {
	return Value{width, number}
}

// DefaultValue returns the implicit initial value for a signal of the given
// type, which is the all-zero value over the type's packed width.
func DefaultValue(datatype Type) Value {
	var zero big.Int
	return Value{datatype.BitWidth(), zero}
}

// BitWidth returns the width of this value in bits.
func (p *Value) BitWidth() uint {
	return p.width
}

// Number returns the numeric value of this constant.
func (p *Value) Number() big.Int {
	return p.number
}

func (p *Value) String() string {
	return p.number.String()
}
