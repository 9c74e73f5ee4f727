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
	"io"
	"strings"
)

// WriteEntity renders an entity in its canonical textual form:
//
//	entity @<name> (<inputs>) (<outputs>) {
//	  %<signal> = sig <type>
//	}
//
// Signals appear in declaration order, and a signal carrying an initial value
// is rendered as "%<signal> = sig <type> <value>".  Indentation is cosmetic;
// the ordering of signals and the spelling of types are not, since golden
// comparisons against this output are exact.
func WriteEntity(w io.Writer, entity *Entity) error {
	header := fmt.Sprintf("entity @%s (%s) (%s) {\n",
		entity.Name(), portString(entity.Inputs()), portString(entity.Outputs()))
	//
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	//
	for _, signal := range entity.Signals() {
		if _, err := io.WriteString(w, signalString(signal)); err != nil {
			return err
		}
	}
	//
	_, err := io.WriteString(w, "}\n")
	//
	return err
}

// String returns the canonical textual form of this entity, as written by
// WriteEntity.
func (p *Entity) String() string {
	var builder strings.Builder
	// Cannot fail on a strings.Builder
	_ = WriteEntity(&builder, p)
	//
	return builder.String()
}

func signalString(signal Signal) string {
	if init := signal.Init(); init != nil {
		return fmt.Sprintf("  %%%s = sig %s %s\n", signal.Name(), signal.Type(), init)
	}
	//
	return fmt.Sprintf("  %%%s = sig %s\n", signal.Name(), signal.Type())
}

func portString(ports []Signal) string {
	var builder strings.Builder
	//
	for i, port := range ports {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%s %%%s", port.Type(), port.Name()))
	}
	//
	return builder.String()
}
