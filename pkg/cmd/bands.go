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
	"io"
	"os"

	"github.com/consensys/go-intwidth/pkg/typepath"
	"github.com/consensys/go-intwidth/pkg/width"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "print the supported integer widths.",
	Long:  `Print the range of bit widths which round up to each supported integer type.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		writeBands(os.Stdout, GetNamespace(cmd))
	},
}

// Write the band table to a given writer, using types qualified by a given
// namespace.
func writeBands(out io.Writer, namespace typepath.Path) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Bits", "Unsigned", "Signed"})
	//
	for _, b := range width.Bands() {
		table.Append([]string{
			fmt.Sprintf("%d..%d", b.Min, b.Max),
			namespace.Join(fmt.Sprintf("%c%d", width.Prefix(false), b.Width())).String(),
			namespace.Join(fmt.Sprintf("%c%d", width.Prefix(true), b.Width())).String(),
		})
	}
	//
	table.Render()
}

func init() {
	rootCmd.AddCommand(bandsCmd)
}
