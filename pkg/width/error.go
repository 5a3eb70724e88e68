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
	"errors"
	"fmt"

	"github.com/consensys/go-intwidth/pkg/util"
	"github.com/consensys/go-intwidth/pkg/util/source"
)

// ErrUnsupportedWidth indicates a request for more bits than the largest
// standard integer type provides.
var ErrUnsupportedWidth = errors.New("unsupported width")

// ErrMalformedTypeSyntax indicates that a constructed type name could not be
// parsed as a type.
var ErrMalformedTypeSyntax = errors.New("malformed type syntax")

// Error is returned by the operations of this package.  It records which kind
// of failure arose (matched with errors.Is), a human readable message and,
// where known, the origin of the width request responsible.
type Error struct {
	kind   error
	msg    string
	origin util.Option[source.Origin]
	// underlying error (if any)
	cause error
}

func newError(kind error, msg string, origin util.Option[source.Origin], cause error) *Error {
	return &Error{kind, msg, origin, cause}
}

// Kind returns the sentinel identifying this kind of error.
func (e *Error) Kind() error {
	return e.kind
}

// Message returns the message to be reported, excluding any location.
func (e *Error) Message() string {
	return e.msg
}

// Origin returns the origin of the width request to which this error is
// attributed, if known.
func (e *Error) Origin() util.Option[source.Origin] {
	return e.origin
}

// SyntaxError converts this error into a syntax error positioned at the origin
// of the width request.  If the origin is unknown, nil is returned.
func (e *Error) SyntaxError() *source.SyntaxError {
	if origin, ok := e.origin.Get(); ok {
		return origin.SyntaxError(e.msg)
	}
	//
	return nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	if origin, ok := e.origin.Get(); ok {
		return fmt.Sprintf("%s: %s", origin.String(), e.msg)
	}
	//
	return e.msg
}

// Unwrap exposes both the kind and the underlying cause (if any) to errors.Is
// and errors.As.
func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	//
	return []error{e.kind}
}
