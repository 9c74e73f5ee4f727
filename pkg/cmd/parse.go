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
	"os"

	"github.com/brightclark/moore/pkg/svlog"
	"github.com/brightclark/moore/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] source_file(s)",
	Short: "parse source files and dump their declaration trees.",
	Long: `Parse one or more SystemVerilog source files and print the resulting
	 declaration trees, without elaborating them.  Useful for debugging the
	 front end.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		srcfiles, err := source.ReadFiles(args...)
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		for i := range srcfiles {
			program, errs := svlog.Parse(&srcfiles[i])
			//
			if len(errs) > 0 {
				for j := range errs {
					printSyntaxError(&errs[j])
				}
				//
				os.Exit(4)
			}
			//
			for _, module := range program.Modules {
				printModule(module)
			}
		}
	},
}

func printModule(module *svlog.Module) {
	fmt.Printf("module %s\n", module.Name)
	//
	for i := range module.Decls {
		decl := &module.Decls[i]
		fmt.Printf("  %s : %s\n", decl.Name, decl.Type)
	}
	//
	fmt.Println("endmodule")
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
