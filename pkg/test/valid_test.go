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
package test

import (
	"testing"

	"github.com/brightclark/moore/pkg/elab"
)

func Test_Valid_Scalar_01(t *testing.T) {
	Check(t, elab.Config{}, "scalar_01")
}

func Test_Valid_Vector_01(t *testing.T) {
	Check(t, elab.Config{}, "vector_01")
}

func Test_Valid_Struct_01(t *testing.T) {
	Check(t, elab.Config{}, "struct_01")
}

func Test_Valid_EmptyStruct_01(t *testing.T) {
	Check(t, elab.Config{}, "empty_struct_01")
}

func Test_Valid_EmptyModule_01(t *testing.T) {
	Check(t, elab.Config{}, "empty_module_01")
}

func Test_Valid_MultiModule_01(t *testing.T) {
	Check(t, elab.Config{}, "multi_module_01")
}

func Test_Valid_DefaultInit_01(t *testing.T) {
	Check(t, elab.Config{DefaultInitials: true}, "default_init_01")
}
