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

// Signal is a named, typed wire location declared within an entity, with an
// optional initial value.
type Signal struct {
	// Name of this signal, as declared in the source module.
	name string
	// Resolved type of this signal.
	datatype Type
	// Optional initial value (nil when none was given).
	init *Value
}

// NewSignal constructs a new signal with no initial value.
func NewSignal(name string, datatype Type) Signal {
	return Signal{name, datatype, nil}
}

// NewSignalWithInit constructs a new signal carrying an initial value.
func NewSignalWithInit(name string, datatype Type, init Value) Signal {
	return Signal{name, datatype, &init}
}

// Name returns the name of this signal.
func (p *Signal) Name() string {
	return p.name
}

// Type returns the resolved type of this signal.
func (p *Signal) Type() Type {
	return p.datatype
}

// Init returns the initial value of this signal, or nil when there is none.
func (p *Signal) Init() *Value {
	return p.init
}

// Entity is the elaborated unit corresponding to one source module.  It holds
// the module's ports and internal signals with fully resolved types.  An
// entity is constructed once (via EntityBuilder) and immutable thereafter.
type Entity struct {
	// Name of this entity, matching the source module name.
	name string
	// Input ports, in declaration order.
	inputs []Signal
	// Output ports, in declaration order.
	outputs []Signal
	// Internal signals, in declaration order.
	signals []Signal
}

// Name returns the name of this entity.
func (p *Entity) Name() string {
	return p.name
}

// Inputs returns the input ports of this entity.
func (p *Entity) Inputs() []Signal {
	return p.inputs
}

// Outputs returns the output ports of this entity.
func (p *Entity) Outputs() []Signal {
	return p.outputs
}

// Signals returns the internal signals of this entity, in declaration order.
func (p *Entity) Signals() []Signal {
	return p.signals
}
