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
package width

import (
	"fmt"

	"github.com/consensys/go-intwidth/pkg/util"
	"github.com/consensys/go-intwidth/pkg/util/source"
)

// Bits represents a requested bit width (i.e. the number of bits a value must
// be able to hold), optionally annotated with the origin of the expression
// which supplied it.  The origin is used only for attributing errors.
type Bits struct {
	value  uint8
	origin util.Option[source.Origin]
}

// NewBits constructs a request for a given number of bits which has no known
// origin.
func NewBits(value uint8) Bits {
	return Bits{value, util.None[source.Origin]()}
}

// NewBitsAt constructs a request for a given number of bits which originated
// from a given place in some source file.
func NewBitsAt(value uint8, origin source.Origin) Bits {
	return Bits{value, util.Some(origin)}
}

// Value returns the number of bits requested.
func (b Bits) Value() uint8 {
	return b.value
}

// Origin returns the origin of this request, if known.
func (b Bits) Origin() util.Option[source.Origin] {
	return b.origin
}

func (b Bits) String() string {
	return fmt.Sprintf("%d", b.value)
}

// Resolve returns the smallest canonical width (8, 16, 32 or 64) which is at
// least the given number of bits.  A request of 0 bits resolves to 8.  Requests
// beyond MaxBits have no canonical width, in which case an empty option is
// returned.
func Resolve(bits uint8) util.Option[uint8] {
	for _, b := range bands {
		if bits <= b.Max {
			return util.Some(b.Width())
		}
	}
	//
	return util.None[uint8]()
}
