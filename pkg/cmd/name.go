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
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/consensys/go-intwidth/pkg/typepath"
	"github.com/consensys/go-intwidth/pkg/width"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name [flags] bits...",
	Short: "print the short name of the integer type for each given bit width.",
	Long: `Print the short name (e.g. u8 or i32) of the smallest integer type which can hold
each given number of bits.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runNameCmd(cmd, args, false)
	},
}

var qualifyCmd = &cobra.Command{
	Use:   "qualify [flags] bits...",
	Short: "print the qualified integer type for each given bit width.",
	Long: `Print the fully qualified name (e.g. core::primitive::u8) of the smallest integer type
which can hold each given number of bits.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runNameCmd(cmd, args, true)
	},
}

func runNameCmd(cmd *cobra.Command, args []string, qualified bool) {
	configureLogging(cmd)
	//
	var (
		signed    = GetFlag(cmd, "signed")
		namespace = GetNamespace(cmd)
		failed    = false
	)
	//
	for _, arg := range args {
		name, err := typeNameOf(arg, signed, qualified, namespace)
		//
		if err != nil {
			fmt.Printf("%s: %s\n", arg, err)
			//
			failed = true
		} else {
			fmt.Println(name)
		}
	}
	//
	if failed {
		os.Exit(4)
	}
}

// Determine the (short or qualified) type name for a bit width given as a
// command-line argument.
func typeNameOf(arg string, signed bool, qualified bool, namespace typepath.Path) (string, error) {
	n, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		return "", errors.New("invalid bit width (expected 0..255)")
	}
	//
	bits := width.NewBits(uint8(n))
	//
	log.Debugf("resolving %d bits (signed=%t)", n, signed)
	//
	if !qualified {
		return width.TypeName(bits, signed)
	}
	//
	path, err := width.QualifiedTypeIn(namespace, bits, signed)
	if err != nil {
		return "", err
	}
	//
	return path.String(), nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(qualifyCmd)
	nameCmd.Flags().BoolP("signed", "s", false, "use signed integer types")
	qualifyCmd.Flags().BoolP("signed", "s", false, "use signed integer types")
}
