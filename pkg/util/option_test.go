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
package util

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/consensys/go-intwidth/pkg/util/assert"
)

func Test_Option_01(t *testing.T) {
	some := Some[uint8](0)
	none := None[uint8]()
	// A zero value is still a value
	assert.True(t, some.HasValue())
	assert.False(t, some.IsEmpty())
	assert.Equal(t, 0, some.Unwrap())
	assert.True(t, none.IsEmpty())
	assert.Equal(t, 8, none.UnwrapOr(8))
	assert.Equal(t, 0, some.UnwrapOr(8))
}

func Test_Option_02(t *testing.T) {
	v, ok := Some("u8").Get()
	assert.True(t, ok)
	assert.Equal(t, "u8", v)
	//
	_, ok = None[string]().Get()
	assert.False(t, ok)
	//
	assert.Equal(t, "Some(16)", Some(16).String())
	assert.Equal(t, "None", None[int]().String())
}

func Test_Option_03(t *testing.T) {
	defer func() {
		assert.True(t, recover() != nil, "unwrap of empty option did not panic")
	}()
	//
	None[uint8]().Unwrap()
}

func Test_Option_Gob(t *testing.T) {
	for _, o := range []Option[uint8]{Some[uint8](0), Some[uint8](64), None[uint8]()} {
		var (
			buffer  bytes.Buffer
			decoded Option[uint8]
		)
		//
		assert.NoError(t, gob.NewEncoder(&buffer).Encode(&o))
		assert.NoError(t, gob.NewDecoder(&buffer).Decode(&decoded))
		assert.Equal(t, o, decoded)
	}
}
