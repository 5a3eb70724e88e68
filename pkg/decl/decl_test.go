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
package decl

import (
	"testing"

	"github.com/consensys/go-intwidth/pkg/util/assert"
	"github.com/consensys/go-intwidth/pkg/util/source"
	"github.com/consensys/go-intwidth/pkg/width"
)

func Test_Parse_01(t *testing.T) {
	s := checkParse(t, "struct Empty")
	//
	assert.Equal(t, "Empty", s.Name)
	assert.Equal(t, 0, len(s.Fields))
}

func Test_Parse_02(t *testing.T) {
	s := checkParse(t, "; a header\n\nstruct Header\nflags : u3\n  delta:i17 ; signed\n")
	//
	assert.Equal(t, "Header", s.Name)
	assert.Equal(t, 2, len(s.Fields))
	checkField(t, s.Fields[0], "flags", 3, false)
	checkField(t, s.Fields[1], "delta", 17, true)
}

func Test_Parse_03(t *testing.T) {
	s := checkParse(t, "struct S\nzero : u0\nmost : i255")
	//
	checkField(t, s.Fields[0], "zero", 0, false)
	checkField(t, s.Fields[1], "most", 255, true)
}

func Test_Parse_Origin(t *testing.T) {
	srcfile := source.NewSourceFile("test.decl", []byte("struct S\nx : u12\n"))
	s, _, errs := Parse(srcfile)
	//
	assert.Equal(t, 0, len(errs))
	//
	origin := s.Fields[0].Bits.Origin().Unwrap()
	assert.Equal(t, "u12", srcfile.Text(origin.Span()))
}

func Test_ParseError_01(t *testing.T) {
	checkParseError(t, "", "expected \"struct\"", "")
}

func Test_ParseError_02(t *testing.T) {
	checkParseError(t, "structure S", "expected \"struct\"", "structure")
}

func Test_ParseError_03(t *testing.T) {
	checkParseError(t, "struct S T", "expected end of line", "T")
}

func Test_ParseError_04(t *testing.T) {
	checkParseError(t, "struct S\nx u8", "expected \":\"", "u8")
}

func Test_ParseError_05(t *testing.T) {
	checkParseError(t, "struct S\nx : f32", "expected integer type (e.g. u8 or i16)", "f32")
}

func Test_ParseError_06(t *testing.T) {
	checkParseError(t, "struct S\nx : u256", "bit width out of range", "u256")
}

func Test_ParseError_07(t *testing.T) {
	checkParseError(t, "struct S\nx : u8\nx : i8", "duplicate field \"x\"", "x")
}

func Test_ParseError_08(t *testing.T) {
	checkParseError(t, "struct S\nx : u8 = 1", "unexpected character '='", "=")
}

func Test_ParseError_09(t *testing.T) {
	// Errors on separate lines are all reported.
	srcfile := source.NewSourceFile("test.decl", []byte("struct S\nx : q\ny u8\nz : u8"))
	_, _, errs := Parse(srcfile)
	//
	assert.Equal(t, 2, len(errs))
	assert.Equal(t, "expected integer type (e.g. u8 or i16)", errs[0].Message())
	assert.Equal(t, "expected \":\"", errs[1].Message())
}

func Test_Resolve_01(t *testing.T) {
	s := checkParse(t, "struct S\na : u1\nb : i9\nc : u17\nd : i64")
	fields, errs := Resolve(s, width.Primitive)
	//
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, 4, len(fields))
	//
	expected := []string{
		"core::primitive::u8", "core::primitive::i16", "core::primitive::u32", "core::primitive::i64",
	}
	//
	for i, f := range fields {
		assert.Equal(t, expected[i], f.Type.String())
	}
}

func Test_Resolve_02(t *testing.T) {
	srcfile := source.NewSourceFile("test.decl", []byte("struct S\na : u65\nb : u8\nc : i128\n"))
	s, _, errs := Parse(srcfile)
	assert.Equal(t, 0, len(errs))
	//
	_, errs = Resolve(s, width.Primitive)
	//
	assert.Equal(t, 2, len(errs))
	assert.Equal(t, "u64 is the largest supported type", errs[0].Message())
	assert.Equal(t, "u65", srcfile.Text(errs[0].Span()))
	assert.Equal(t, "i64 is the largest supported type", errs[1].Message())
	assert.Equal(t, "i128", srcfile.Text(errs[1].Span()))
	// Errors are reported on the originating line
	line := errs[1].FirstEnclosingLine()
	assert.Equal(t, 4, line.Number())
}

func checkParse(t *testing.T, input string) *Struct {
	srcfile := source.NewSourceFile("test.decl", []byte(input))
	s, _, errs := Parse(srcfile)
	//
	for _, err := range errs {
		t.Errorf("unexpected error: %s", err.Message())
	}
	//
	if s == nil {
		t.FailNow()
	}
	//
	return s
}

func checkParseError(t *testing.T, input string, msg string, text string) {
	srcfile := source.NewSourceFile("test.decl", []byte(input))
	s, _, errs := Parse(srcfile)
	//
	assert.True(t, s == nil)
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, msg, errs[0].Message())
	assert.Equal(t, text, srcfile.Text(errs[0].Span()))
}

func checkField(t *testing.T, f *Field, name string, bits uint8, signed bool) {
	assert.Equal(t, name, f.Name)
	assert.Equal(t, bits, f.Bits.Value())
	assert.Equal(t, signed, f.Signed)
}
