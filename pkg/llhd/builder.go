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

// EntityBuilder provides a mechanism for constructing an entity one signal at
// a time.  The builder never mutates anything handed to it, and the entity it
// produces is a value which can safely be shared read-only.
type EntityBuilder struct {
	// Name of the entity being constructed.
	name string
	// Signals added so far, in order.
	signals []Signal
}

// NewEntityBuilder constructs a new builder for an entity of the given name.
// A module without an explicit port list lowers to an entity with empty input
// and output lists, which is exactly what this builder produces.
func NewEntityBuilder(name string) *EntityBuilder {
	return &EntityBuilder{name, nil}
}

// AddSignal appends a signal with no initial value.
func (p *EntityBuilder) AddSignal(name string, datatype Type) *EntityBuilder {
	p.signals = append(p.signals, NewSignal(name, datatype))
	return p
}

// AddSignalWithInit appends a signal carrying an initial value.
func (p *EntityBuilder) AddSignalWithInit(name string, datatype Type, init Value) *EntityBuilder {
	p.signals = append(p.signals, NewSignalWithInit(name, datatype, init))
	return p
}

// Build finalises the entity.  The builder should not be used afterwards.
func (p *EntityBuilder) Build() Entity {
	return Entity{p.name, nil, nil, p.signals}
}
