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
	"github.com/brightclark/moore/pkg/svlog"
	"github.com/brightclark/moore/pkg/util/source"
)

// CollectDeclarations walks a module's declaration list, producing the
// ordered sequence of declarations to be elaborated.  Source order is
// preserved exactly.  Declarations sharing a name are rejected (never
// silently overwritten); every clash in the module is reported, each carrying
// the positions of both offending declarations.
func CollectDeclarations(module *svlog.Module) ([]svlog.Declaration, []Error) {
	var (
		errors []Error
		seen   = make(map[string]source.Span)
	)
	//
	for i := range module.Decls {
		decl := &module.Decls[i]
		//
		if first, ok := seen[decl.Name]; ok {
			errors = append(errors, &DuplicateDeclarationError{decl.Name, first, decl.Span()})
		} else {
			seen[decl.Name] = decl.Span()
		}
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return module.Decls, nil
}
