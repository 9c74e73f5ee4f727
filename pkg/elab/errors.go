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
	"fmt"

	"github.com/brightclark/moore/pkg/util/source"
)

// Error is the common interface of all classified elaboration errors.  Every
// error is fatal to the module being elaborated: no partial entity is ever
// produced for a failing module.  Errors carry the span of the offending
// source text so the driver can point at it; this package itself never logs.
type Error interface {
	error
	// Span identifies the source text responsible for this error.
	Span() source.Span
	// Message returns the description of this error, without any position
	// prefix.
	Message() string
}

// InvalidRangeError indicates a packed range whose most significant bit lies
// below its least significant bit.  Such a range is never silently reordered.
type InvalidRangeError struct {
	// Bounds of the offending range.
	Msb, Lsb int
	//
	span source.Span
}

// Span identifies the source text responsible for this error.
func (p *InvalidRangeError) Span() source.Span {
	return p.span
}

// Message returns the description of this error.
func (p *InvalidRangeError) Message() string {
	return fmt.Sprintf("invalid packed range [%d:%d]", p.Msb, p.Lsb)
}

// Error implements the error interface.
func (p *InvalidRangeError) Error() string {
	return errorString(p)
}

// DuplicateDeclarationError indicates two declarations in the same scope
// sharing a name.  Both declaration positions are retained for diagnostics.
type DuplicateDeclarationError struct {
	// Name shared by both declarations.
	Name string
	// Position of the original declaration.
	first source.Span
	// Position of the clashing declaration.
	second source.Span
}

// First returns the position of the original declaration.
func (p *DuplicateDeclarationError) First() source.Span {
	return p.first
}

// Second returns the position of the clashing declaration.
func (p *DuplicateDeclarationError) Second() source.Span {
	return p.second
}

// Span identifies the source text responsible for this error, which is the
// clashing (second) declaration.
func (p *DuplicateDeclarationError) Span() source.Span {
	return p.second
}

// Message returns the description of this error.
func (p *DuplicateDeclarationError) Message() string {
	return fmt.Sprintf("duplicate declaration \"%s\"", p.Name)
}

// Error implements the error interface.
func (p *DuplicateDeclarationError) Error() string {
	return errorString(p)
}

// UnsupportedTypeError indicates a source construct outside the supported
// elaboration subset (e.g. an enum).  Surfacing this is always preferred over
// inventing a lowering.
type UnsupportedTypeError struct {
	// Description of the unsupported construct.
	Description string
	//
	span source.Span
}

// Span identifies the source text responsible for this error.
func (p *UnsupportedTypeError) Span() source.Span {
	return p.span
}

// Message returns the description of this error.
func (p *UnsupportedTypeError) Message() string {
	return fmt.Sprintf("unsupported %s type", p.Description)
}

// Error implements the error interface.
func (p *UnsupportedTypeError) Error() string {
	return errorString(p)
}

// Render an error in the same "start:end:message" form used by syntax errors,
// so that errors read consistently whichever phase produced them.
func errorString(err Error) string {
	span := err.Span()
	return fmt.Sprintf("%d:%d:%s", span.Start(), span.End(), err.Message())
}
