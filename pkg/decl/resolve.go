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
	"errors"

	"github.com/consensys/go-intwidth/pkg/typepath"
	"github.com/consensys/go-intwidth/pkg/util/source"
	"github.com/consensys/go-intwidth/pkg/width"
)

// TypedField is a field whose requested width has been resolved to a concrete
// (qualified) integer type.
type TypedField struct {
	Name string
	Type typepath.Path
}

// Resolve the type of every field in a given struct, using types qualified by
// the given namespace.  Errors are reported for every field which cannot be
// resolved (rather than just the first), positioned at the width which caused
// them.
func Resolve(s *Struct, namespace typepath.Path) ([]TypedField, []source.SyntaxError) {
	var (
		fields = make([]TypedField, 0, len(s.Fields))
		errs   []source.SyntaxError
	)
	//
	for _, f := range s.Fields {
		path, err := width.QualifiedTypeIn(namespace, f.Bits, f.Signed)
		//
		if err != nil {
			errs = append(errs, *toSyntaxError(err))
		} else {
			fields = append(fields, TypedField{f.Name, path})
		}
	}
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return fields, nil
}

func toSyntaxError(err error) *source.SyntaxError {
	var werr *width.Error
	//
	if errors.As(err, &werr) {
		if serr := werr.SyntaxError(); serr != nil {
			return serr
		}
	}
	// Should be unreachable, since every field width has a known origin.
	return source.NewSyntaxError(source.NewSpan(0, 0), err.Error())
}
