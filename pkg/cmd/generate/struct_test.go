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
package generate

import (
	"fmt"
	"testing"

	"github.com/consensys/go-intwidth/pkg/decl"
	"github.com/consensys/go-intwidth/pkg/util/assert"
	"github.com/consensys/go-intwidth/pkg/util/source"
	"github.com/consensys/go-intwidth/pkg/width"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

func Test_Struct_01(t *testing.T) {
	input := "struct packed_header\nflags : u3\ndeltaValue : i17\nlength : u64\n"
	expected := `
// WARNING: This code is generated automatically.
//
// Any modifications to this code may be overwritten and could lead to unexpected behavior.
// Please DO NOT ATTEMPT TO MODIFY this code directly.

/// Generated from header.decl
pub struct PackedHeader {
    pub flags: core::primitive::u8,
    pub delta_value: core::primitive::i32,
    pub length: core::primitive::u64,
}
`
	checkStruct(t, Config{Source: "defs/header.decl"}, input, expected)
}

func Test_Struct_02(t *testing.T) {
	input := "struct Unit\n"
	expected := `
// WARNING: This code is generated automatically.
//
// Any modifications to this code may be overwritten and could lead to unexpected behavior.
// Please DO NOT ATTEMPT TO MODIFY this code directly.

#[derive(Clone, Debug)]
pub struct Unit;
`
	checkStruct(t, Config{Derives: []string{"Clone", "Debug"}}, input, expected)
}

func Test_Struct_03(t *testing.T) {
	config := Config{License: true}
	s, fields := resolve(t, "struct S\nx : i8")
	actual := StructDeclaration(config, s, fields)
	//
	assert.True(t, len(actual) > len(license))
	assert.Equal(t, license, actual[:len(license)])
}

func Test_CaseConversion_01(t *testing.T) {
	assert.Equal(t, "PackedHeader", toPascalCase("packed_header"))
	assert.Equal(t, "PackedHeader", toPascalCase("packed-header"))
	assert.Equal(t, "Header", toPascalCase("Header"))
	assert.Equal(t, "delta_value", toSnakeCase("deltaValue"))
	assert.Equal(t, "delta_value", toSnakeCase("DELTA__VALUE"))
	assert.Equal(t, "x", toSnakeCase("x"))
}

func checkStruct(t *testing.T, config Config, input string, expected string) {
	s, fields := resolve(t, input)
	actual := StructDeclaration(config, s, fields)
	//
	if actual != expected {
		edits := myers.ComputeEdits(span.URIFromPath("expected"), expected, actual)
		diff := fmt.Sprint(gotextdiff.ToUnified("expected", "actual", expected, edits))
		t.Errorf("generated source differs:\n%s", diff)
	}
}

func resolve(t *testing.T, input string) (*decl.Struct, []decl.TypedField) {
	srcfile := source.NewSourceFile("test.decl", []byte(input))
	s, _, errs := decl.Parse(srcfile)
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Message())
	}
	//
	fields, errs := decl.Resolve(s, width.Primitive)
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Message())
	}
	//
	return s, fields
}
