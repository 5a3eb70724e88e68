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
	"strings"

	"github.com/consensys/go-intwidth/pkg/typepath"
	"github.com/consensys/go-intwidth/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or panic if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level, based on the verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// GetNamespace parses the namespace used to qualify integer types.  If this is
// malformed, then an error is reported and the process exits.
func GetNamespace(cmd *cobra.Command) typepath.Path {
	text := GetString(cmd, "namespace")
	//
	located, err := typepath.ParseLocated([]rune(text))
	if err != nil {
		// Report error against the flag itself
		srcfile := source.NewSourceFile("--namespace", []byte(text))
		printSyntaxError(srcfile.SyntaxError(err.Span(), err.Message()))
		os.Exit(2)
	}
	//
	log.Debugf("qualifying types with namespace %s", located.Path.String())
	//
	return located.Path
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, highlight(err.Message(), bold))
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight (at least one caret, even for empty spans)
	fmt.Println(highlight(strings.Repeat("^", max(1, length)), red))
}

// ANSI escapes used for highlighting
const (
	bold  = "\033[1m"
	red   = "\033[31m"
	reset = "\033[0m"
)

// Apply an ANSI escape to some text, provided stdout is a terminal.  Otherwise
// the text is returned unchanged.
func highlight(text string, escape string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	//
	return escape + text + reset
}
