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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// maxBits is the width of the largest standard integer type.
const maxBits = 64

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-intwidth")
	//
	cfg, err := bandsConfig(8, maxBits)
	assertNoError(err, "for widths 8..%d", maxBits)
	//
	assertNoError(bgen.Generate(cfg, "width", "templates",
		bavard.Entry{
			File:      "../../pkg/width/bands.go",
			Templates: []string{"bands.go.tmpl"},
		},
	), "for \"bands.go\"")
	// run gofmt on generated file
	runCmd("gofmt", "-w", "../../pkg/width/bands.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type band struct {
	Min uint
	Max uint
}

type widthConfig struct {
	MaxBits uint
	Bands   []band
}

// Construct the bands for all power-of-two widths between a given smallest and
// largest width (inclusive).  Each band starts immediately after the previous
// one, with the first starting from zero.
func bandsConfig(smallest uint, largest uint) (*widthConfig, error) {
	var (
		cfg   = widthConfig{MaxBits: largest}
		start uint
	)
	//
	if smallest == 0 || smallest&(smallest-1) != 0 {
		return nil, fmt.Errorf("smallest width %d is not a power of two", smallest)
	} else if largest > 255 {
		return nil, fmt.Errorf("largest width %d exceeds 255", largest)
	}
	//
	for w := smallest; w <= largest; w *= 2 {
		cfg.Bands = append(cfg.Bands, band{start, w})
		start = w + 1
	}
	//
	return &cfg, nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
