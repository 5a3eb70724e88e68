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
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-intwidth/pkg/typepath"
	"github.com/consensys/go-intwidth/pkg/util/assert"
	"github.com/consensys/go-intwidth/pkg/width"
)

func Test_TypeNameOf_01(t *testing.T) {
	checkTypeNameOf(t, "12", false, false, "u16")
	checkTypeNameOf(t, "0", true, false, "i8")
	checkTypeNameOf(t, "32", true, true, "core::primitive::i32")
	checkTypeNameOf(t, "33", false, true, "core::primitive::u64")
}

func Test_TypeNameOf_02(t *testing.T) {
	_, err := typeNameOf("65", false, true, width.Primitive)
	//
	assert.ErrorIs(t, err, width.ErrUnsupportedWidth)
	assert.Equal(t, "u64 is the largest supported type", err.Error())
}

func Test_TypeNameOf_03(t *testing.T) {
	for _, arg := range []string{"256", "-1", "x", ""} {
		_, err := typeNameOf(arg, false, false, width.Primitive)
		assert.Equal(t, "invalid bit width (expected 0..255)", err.Error())
	}
}

func Test_TypeNameOf_04(t *testing.T) {
	ns := typepath.NewPath(true, "core", "primitive")
	checkTypeNameOfIn(t, "7", false, ns, "::core::primitive::u8")
}

func Test_Bands_01(t *testing.T) {
	var buffer bytes.Buffer
	//
	writeBands(&buffer, width.Primitive)
	//
	text := buffer.String()
	//
	for _, expected := range []string{"0..8", "9..16", "17..32", "33..64",
		"core::primitive::u8", "core::primitive::i16", "core::primitive::u32", "core::primitive::i64"} {
		assert.True(t, strings.Contains(text, expected), "missing %s", expected)
	}
}

func checkTypeNameOf(t *testing.T, arg string, signed bool, qualified bool, expected string) {
	name, err := typeNameOf(arg, signed, qualified, width.Primitive)
	//
	assert.NoError(t, err)
	assert.Equal(t, expected, name)
}

func checkTypeNameOfIn(t *testing.T, arg string, signed bool, ns typepath.Path, expected string) {
	name, err := typeNameOf(arg, signed, true, ns)
	//
	assert.NoError(t, err)
	assert.Equal(t, expected, name)
}
