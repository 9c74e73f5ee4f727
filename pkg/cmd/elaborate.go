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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/brightclark/moore/pkg/elab"
	"github.com/brightclark/moore/pkg/llhd"
	"github.com/brightclark/moore/pkg/svlog"
	"github.com/brightclark/moore/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var elaborateCmd = &cobra.Command{
	Use:   "elaborate [flags] source_file(s)",
	Short: "elaborate module declarations into entities.",
	Long: `Elaborate the module declarations of one or more SystemVerilog source files
	 into entities with concrete, width-resolved signal types, and print those
	 entities in their canonical textual form.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var elabConfig elab.Config
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Determine configuration (file first, then flags on top)
		config := readConfig(GetString(cmd, "config"))
		//
		elabConfig.DefaultInitials = defaultInitials(config, cmd)
		//
		if output := GetString(cmd, "output"); output != "" {
			config.Output = output
		}
		// Determine output writer
		out, closer := openOutput(config.Output)
		defer closer()
		// Process each file independently: a failing module never suppresses
		// its siblings.
		failed := false
		//
		for _, filename := range args {
			if !elaborateSourceFile(filename, elabConfig, out) {
				failed = true
			}
		}
		//
		if failed {
			os.Exit(4)
		}
	},
}

// Elaborate a single source file, writing every successfully elaborated
// entity to the given writer and reporting errors for the rest.  Returns
// false if any module failed.
func elaborateSourceFile(filename string, config elab.Config, out io.Writer) bool {
	srcfiles, err := source.ReadFiles(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	srcfile := &srcfiles[0]
	log.Debug(fmt.Sprintf("parsing source file %s", filename))
	// Parse into a program
	program, syntaxErrors := svlog.Parse(srcfile)
	//
	if len(syntaxErrors) > 0 {
		for i := range syntaxErrors {
			printSyntaxError(&syntaxErrors[i])
		}
		//
		return false
	}
	//
	log.Debug(fmt.Sprintf("elaborating %d module(s) from %s", len(program.Modules), filename))
	// Elaborate all modules of this file
	entities, errors := elab.ElaborateProgram(config, &program)
	// Report errors of failing modules
	for _, e := range errors {
		printSyntaxError(srcfile.SyntaxError(e.Span(), e.Message()))
	}
	// Print entities of succeeding modules
	for _, entity := range entities {
		if err := llhd.WriteEntity(out, entity); err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
	}
	//
	return len(errors) == 0
}

// Determine whether signals receive default initial values.  A flag given
// explicitly wins over the configuration file, in either direction.
func defaultInitials(config Config, cmd *cobra.Command) bool {
	if cmd.Flags().Changed("default-init") {
		return GetFlag(cmd, "default-init")
	}
	//
	return config.DefaultInitials
}

// Open the output destination, defaulting to stdout.
func openOutput(output string) (io.Writer, func()) {
	if output == "" {
		return os.Stdout, func() {}
	}
	//
	file, err := os.Create(output)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return file, func() { _ = file.Close() }
}

func init() {
	rootCmd.AddCommand(elaborateCmd)
	elaborateCmd.Flags().StringP("output", "o", "", "write entities to the given file instead of stdout")
	elaborateCmd.Flags().Bool("default-init", false, "give every signal an all-zero initial value")
}
