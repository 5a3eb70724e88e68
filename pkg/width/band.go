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

import "fmt"

// Band is a contiguous (inclusive) range of requested bit widths which all
// round up to the same canonical width.  The canonical width is the upper
// bound of the band.
type Band struct {
	Min uint8
	Max uint8
}

// Contains checks whether a given request falls within this band.
func (b Band) Contains(bits uint8) bool {
	return b.Min <= bits && bits <= b.Max
}

// Width returns the canonical width of all requests in this band.
func (b Band) Width() uint8 {
	return b.Max
}

func (b Band) String() string {
	return fmt.Sprintf("[%d,%d]", b.Min, b.Max)
}

// Bands returns the supported bands in ascending order.  The returned slice is
// a copy and can be freely modified.
func Bands() []Band {
	return append([]Band(nil), bands[:]...)
}

// Widths returns the canonical widths in ascending order (i.e. 8, 16, 32, 64).
func Widths() []uint8 {
	widths := make([]uint8, len(bands))
	//
	for i, b := range bands {
		widths[i] = b.Width()
	}
	//
	return widths
}
