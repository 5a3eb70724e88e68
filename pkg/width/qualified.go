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

	"github.com/consensys/go-intwidth/pkg/typepath"
)

// Primitive is the namespace in which the standard integer types live.
// Referring to them through this path means generated code does not depend on
// any imports or aliases in scope where it is expanded.
var Primitive = typepath.NewPath(false, "core", "primitive")

// QualifiedType returns the fully qualified path (e.g. "core::primitive::i32")
// of the smallest standard integer type of the given signedness which can hold
// the requested number of bits.
func QualifiedType(bits Bits, signed bool) (typepath.Path, error) {
	return QualifiedTypeIn(Primitive, bits, signed)
}

// QualifiedTypeIn is as QualifiedType, but qualifies the short type name with a
// given namespace rather than Primitive.
func QualifiedTypeIn(namespace typepath.Path, bits Bits, signed bool) (typepath.Path, error) {
	name, err := TypeName(bits, signed)
	if err != nil {
		return typepath.Path{}, err
	}
	// Construct qualified string
	text := namespace.Join(name).String()
	// Check it parses as a type
	path, err := typepath.Parse(text)
	if err != nil {
		msg := fmt.Sprintf("malformed type \"%s\"", text)
		return typepath.Path{}, newError(ErrMalformedTypeSyntax, msg, bits.origin, err)
	}
	//
	return path, nil
}

// SignedQualified returns the qualified signed integer type for a given request.
func SignedQualified(bits Bits) (typepath.Path, error) {
	return QualifiedType(bits, true)
}

// UnsignedQualified returns the qualified unsigned integer type for a given
// request.
func UnsignedQualified(bits Bits) (typepath.Path, error) {
	return QualifiedType(bits, false)
}
