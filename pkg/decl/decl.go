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
	"github.com/consensys/go-intwidth/pkg/width"
)

// Struct is a named collection of integer fields, as described by a
// declaration file.  For example:
//
//	; packed header
//	struct Header
//	flags : u3
//	delta : i17
type Struct struct {
	// Name of the struct
	Name string
	// Fields in declaration order
	Fields []*Field
}

// Field is a single named field of some requested width and signedness.  The
// requested width retains its origin so that errors arising when it is
// resolved can be reported against the declaration.
type Field struct {
	Name   string
	Bits   width.Bits
	Signed bool
}
