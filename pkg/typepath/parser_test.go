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
package typepath

import (
	"testing"

	"github.com/consensys/go-intwidth/pkg/util/assert"
	"github.com/consensys/go-intwidth/pkg/util/source"
)

func Test_Parse_01(t *testing.T) {
	checkParse(t, "u8", NewPath(false, "u8"))
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "core::primitive::u32", NewPath(false, "core", "primitive", "u32"))
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "::core::primitive::i64", NewPath(true, "core", "primitive", "i64"))
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, "  core :: primitive\t:: u16 ", NewPath(false, "core", "primitive", "u16"))
}

func Test_Parse_05(t *testing.T) {
	checkParse(t, "_x::Y9", NewPath(false, "_x", "Y9"))
}

func Test_ParseError_01(t *testing.T) {
	checkParseError(t, "", 0, 0, "expected identifier")
}

func Test_ParseError_02(t *testing.T) {
	checkParseError(t, "core::", 6, 6, "expected identifier")
}

func Test_ParseError_03(t *testing.T) {
	checkParseError(t, "core primitive", 5, 14, "expected \"::\"")
}

func Test_ParseError_04(t *testing.T) {
	checkParseError(t, "core::8u", 6, 7, "unexpected character '8'")
}

func Test_ParseError_05(t *testing.T) {
	checkParseError(t, "core::::u8", 6, 8, "expected identifier")
}

func Test_ParseError_06(t *testing.T) {
	checkParseError(t, "core::u8<T>", 8, 9, "unexpected character '<'")
}

func Test_ParseLocated_01(t *testing.T) {
	located, err := ParseLocated([]rune("a::bc"))
	//
	assert.True(t, err == nil)
	assert.Equal(t, []source.Span{source.NewSpan(0, 1), source.NewSpan(3, 5)}, located.Spans)
}

func Test_Path_01(t *testing.T) {
	p := NewPath(false, "core", "primitive")
	q := p.Join("u8")
	// Join must not modify the original
	assert.Equal(t, "core::primitive", p.String())
	assert.Equal(t, "core::primitive::u8", q.String())
	assert.Equal(t, "u8", q.Last())
	assert.Equal(t, 3, q.Len())
}

func Test_Path_02(t *testing.T) {
	p := NewPath(true, "core", "primitive", "u8")
	//
	assert.Equal(t, "::core::primitive::u8", p.String())
	assert.True(t, p.Equals(NewPath(true, "core", "primitive", "u8")))
	assert.False(t, p.Equals(NewPath(false, "core", "primitive", "u8")))
	assert.False(t, p.Equals(NewPath(true, "core", "primitive", "i8")))
	assert.Equal(t, "", NewPath(false).Last())
}

func Test_Path_03(t *testing.T) {
	// Round trip through the printer
	for _, text := range []string{"u8", "a::b", "::a::b::c"} {
		p, err := Parse(text)
		assert.NoError(t, err)
		assert.Equal(t, text, p.String())
	}
}

func checkParse(t *testing.T, input string, expected Path) {
	actual, err := Parse(input)
	//
	if err != nil {
		t.Errorf("unexpected error parsing \"%s\": %s", input, err)
	} else if !actual.Equals(expected) {
		t.Errorf("parsing \"%s\" gave %s, expected %s", input, actual.String(), expected.String())
	}
}

func checkParseError(t *testing.T, input string, start int, end int, msg string) {
	_, err := ParseLocated([]rune(input))
	//
	if err == nil {
		t.Fatalf("expected error parsing \"%s\"", input)
	}
	//
	span := err.Span()
	assert.Equal(t, start, span.Start(), "start of error")
	assert.Equal(t, end, span.End(), "end of error")
	assert.Equal(t, msg, err.Message())
}
