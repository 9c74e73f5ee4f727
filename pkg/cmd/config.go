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

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the per-project configuration file picked up from the
// working directory when no explicit --config is given.
const DefaultConfigFile = "moore.yaml"

// Config holds per-project settings.  Command line flags take precedence over
// anything set here.
type Config struct {
	// Output file for printed entities (empty means stdout).
	Output string `yaml:"output"`
	// DefaultInitials gives every signal an all-zero initial value.
	DefaultInitials bool `yaml:"default_init"`
}

// Read the configuration, either from an explicitly given file (an error if
// missing), or from the default file in the working directory (silently
// absent).
func readConfig(filename string) Config {
	var (
		config   Config
		explicit = filename != ""
	)
	//
	if !explicit {
		filename = DefaultConfigFile
	}
	//
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		if explicit {
			fmt.Println(err)
			os.Exit(3)
		}
		// Default file simply absent
		return config
	}
	//
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(3)
	}
	//
	log.Debug(fmt.Sprintf("read configuration from %s", filename))
	//
	return config
}
