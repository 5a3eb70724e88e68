// Copyright Consensys Software Inc.
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

	"github.com/consensys/go-intwidth/pkg/cmd/generate"
	"github.com/consensys/go-intwidth/pkg/decl"
	"github.com/consensys/go-intwidth/pkg/typepath"
	"github.com/consensys/go-intwidth/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] decl_file",
	Short: "generate a struct declaration with qualified integer field types.",
	Long: `Generate a struct declaration from a declaration file, where each field is given the
smallest integer type able to hold its declared width.  Field types are fully qualified,
so the generated declaration does not depend on what is in scope where it is used.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			filename  = GetString(cmd, "output")
			namespace = GetNamespace(cmd)
			config    = generate.Config{
				License: GetFlag(cmd, "license"),
				Source:  args[0],
				Derives: GetStringArray(cmd, "derive"),
			}
		)
		// Parse and resolve declarations
		s, fields := ReadDeclarationFile(args[0], namespace)
		// Generate appropriate source
		src := generate.StructDeclaration(config, s, fields)
		// Write out
		if filename == "" {
			fmt.Print(src)
		} else if err := os.WriteFile(filename, []byte(src), 0644); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		} else {
			log.Infof("Wrote %s (%d fields)", filename, len(fields))
		}
	},
}

// ReadDeclarationFile reads and parses a given declaration file, resolving the
// type of every field within.  Any errors arising are printed with appropriate
// highlighting, and the process exits.
func ReadDeclarationFile(filename string, namespace typepath.Path) (*decl.Struct, []decl.TypedField) {
	log.Debug(fmt.Sprintf("reading declaration file %s", filename))
	// Read source file
	srcfiles, err := source.ReadFiles(filename)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	s, _, errors := decl.Parse(&srcfiles[0])
	//
	if len(errors) == 0 {
		var fields []decl.TypedField
		//
		if fields, errors = decl.Resolve(s, namespace); len(errors) == 0 {
			log.Debugf("resolved %d field(s) of struct %s", len(fields), s.Name)
			//
			return s, fields
		}
	}
	// Report errors
	for _, err := range errors {
		printSyntaxError(&err)
	}
	// Fail
	os.Exit(4)
	// unreachable
	return nil, nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "", "specify output file (default is stdout).")
	generateCmd.Flags().Bool("license", false, "include license header in generated source.")
	generateCmd.Flags().StringArray("derive", nil, "trait(s) to derive for the generated struct.")
}
