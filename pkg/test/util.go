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
	"fmt"
	"strings"
	"testing"

	"github.com/brightclark/moore/pkg/elab"
	"github.com/brightclark/moore/pkg/svlog"
	"github.com/brightclark/moore/pkg/util/source"
	"github.com/sebdah/goldie/v2"
)

// TestDir determines the (relative) location of the test fixtures.
const TestDir = "testdata"

// Check reads a given source file from the test directory, elaborates every
// module it contains and compares the resulting textual entities against the
// golden file of the same name.
func Check(t *testing.T, config elab.Config, name string) {
	t.Helper()
	//
	srcfile := readSourceFile(t, name)
	// Parse into a program
	program, syntaxErrs := svlog.Parse(srcfile)
	//
	for _, err := range syntaxErrs {
		t.Errorf("%s.sv: %s", name, err.Error())
	}
	//
	if len(syntaxErrs) > 0 {
		return
	}
	// Elaborate every module
	entities, errs := elab.ElaborateProgram(config, &program)
	//
	for _, err := range errs {
		t.Errorf("%s.sv: %s", name, err.Error())
	}
	//
	if len(errs) > 0 {
		return
	}
	// Render entities in program order
	var builder strings.Builder
	//
	for _, entity := range entities {
		builder.WriteString(entity.String())
	}
	// Compare against golden output
	g := goldie.New(t, goldie.WithFixtureDir(TestDir), goldie.WithNameSuffix(".golden"))
	g.Assert(t, name, []byte(builder.String()))
}

// CheckInvalid reads a given source file from the test directory, attempts to
// elaborate it and compares the reported errors against the golden file of the
// same name.  Elaboration must fail for every module in the file.
func CheckInvalid(t *testing.T, name string) {
	t.Helper()
	//
	srcfile := readSourceFile(t, name)
	//
	program, syntaxErrs := svlog.Parse(srcfile)
	//
	for _, err := range syntaxErrs {
		t.Fatalf("%s.sv: %s", name, err.Error())
	}
	//
	entities, errs := elab.ElaborateProgram(elab.Config{}, &program)
	//
	if len(errs) == 0 {
		t.Fatalf("%s.sv: expected elaboration to fail", name)
	} else if len(entities) != 0 {
		t.Errorf("%s.sv: expected no entities, got %d", name, len(entities))
	}
	// Render errors, one per line
	var builder strings.Builder
	//
	for _, err := range errs {
		builder.WriteString(fmt.Sprintf("%s\n", err.Error()))
	}
	//
	g := goldie.New(t, goldie.WithFixtureDir(TestDir), goldie.WithNameSuffix(".golden"))
	g.Assert(t, name, []byte(builder.String()))
}

func readSourceFile(t *testing.T, name string) *source.File {
	t.Helper()
	//
	filename := fmt.Sprintf("%s/%s.sv", TestDir, name)
	//
	files, err := source.ReadFiles(filename)
	if err != nil {
		t.Fatal(err)
	}
	//
	return &files[0]
}
