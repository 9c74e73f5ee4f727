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

// Package elab lowers parsed SystemVerilog module declarations into entities
// of the intermediate representation.  Elaboration of a module is a pure
// function of its declaration list: declarations are lowered independently of
// one another, so their order affects only the position of the resulting
// signals, never their types.
package elab

import (
	"sync"

	"github.com/brightclark/moore/pkg/llhd"
	"github.com/brightclark/moore/pkg/svlog"
	"github.com/brightclark/moore/pkg/util/source"
)

// Config controls aspects of elaboration not fixed by the source text.
type Config struct {
	// DefaultInitials, when set, gives every signal of non-zero width an
	// explicit all-zero initial value over its packed width.  Declarations
	// in the supported subset carry no initialiser expressions, so without
	// this signals have no initial value at all.
	DefaultInitials bool
}

// ElaborateModule lowers a single module into an entity whose signals carry
// concrete, width-resolved types, one per declaration and in declaration
// order.  On error, no entity is produced; as many independent errors as
// possible are reported in one pass.
func ElaborateModule(config Config, module *svlog.Module) (*llhd.Entity, []Error) {
	decls, errors := CollectDeclarations(module)
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	builder := llhd.NewEntityBuilder(module.Name)
	//
	for i := range decls {
		decl := &decls[i]
		// Lower this declaration (independently of all others)
		datatype, err := Lower(decl.Type)
		//
		if err != nil {
			errors = append(errors, err)
			continue
		}
		//
		// A zero-width signal has no bits to initialise
		if config.DefaultInitials && datatype.BitWidth() > 0 {
			builder.AddSignalWithInit(decl.Name, datatype, llhd.DefaultValue(datatype))
		} else {
			builder.AddSignal(decl.Name, datatype)
		}
	}
	// Fail without partial entity if anything went wrong
	if len(errors) > 0 {
		return nil, errors
	}
	//
	entity := builder.Build()
	//
	return &entity, nil
}

// ElaborateProgram elaborates every module of a program.  Modules are
// entirely independent of each other, hence they are elaborated in parallel;
// a failing module contributes its errors without suppressing the entities of
// its siblings.  Entities are returned in program order (minus any failing
// modules).  Module names must be unique across the program.
func ElaborateProgram(config Config, program *svlog.Program) ([]*llhd.Entity, []Error) {
	var (
		errors   []Error
		seen     = make(map[string]source.Span)
		entities = make([]*llhd.Entity, len(program.Modules))
		errs     = make([][]Error, len(program.Modules))
		wg       sync.WaitGroup
	)
	// Check module names are unique
	for _, module := range program.Modules {
		if first, ok := seen[module.Name]; ok {
			errors = append(errors, &DuplicateDeclarationError{module.Name, first, module.Span()})
		} else {
			seen[module.Name] = module.Span()
		}
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	// Elaborate modules in parallel
	for i, module := range program.Modules {
		wg.Add(1)
		//
		go func(i int, module *svlog.Module) {
			defer wg.Done()
			entities[i], errs[i] = ElaborateModule(config, module)
		}(i, module)
	}
	//
	wg.Wait()
	// Gather results in program order
	result := make([]*llhd.Entity, 0, len(entities))
	//
	for i := range entities {
		if entities[i] != nil {
			result = append(result, entities[i])
		}
		//
		errors = append(errors, errs[i]...)
	}
	//
	return result, errors
}
