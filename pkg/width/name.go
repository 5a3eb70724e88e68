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

// Prefix returns the single character used to prefix short type names of the
// given signedness.
func Prefix(signed bool) byte {
	if signed {
		return 'i'
	}
	//
	return 'u'
}

// TypeName returns the short name (e.g. "u8" or "i32") of the smallest standard
// integer type of the given signedness which can hold the requested number of
// bits.  If no such type exists then an ErrUnsupportedWidth error is returned,
// attributed to the origin of the request.
func TypeName(bits Bits, signed bool) (string, error) {
	prefix := Prefix(signed)
	//
	if width, ok := Resolve(bits.value).Get(); ok {
		return fmt.Sprintf("%c%d", prefix, width), nil
	}
	//
	msg := fmt.Sprintf("%c%d is the largest supported type", prefix, MaxBits)
	//
	return "", newError(ErrUnsupportedWidth, msg, bits.origin, nil)
}

// SignedName is a convenience for TypeName(bits, true).
func SignedName(bits Bits) (string, error) {
	return TypeName(bits, true)
}

// UnsignedName is a convenience for TypeName(bits, false).
func UnsignedName(bits Bits) (string, error) {
	return TypeName(bits, false)
}
