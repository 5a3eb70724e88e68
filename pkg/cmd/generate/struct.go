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
package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/consensys/go-intwidth/pkg/decl"
)

// Config determines how a struct declaration is generated.
type Config struct {
	// Include the license header at the top of the generated source.
	License bool
	// Name of the file from which the struct was declared (for documentation
	// only).
	Source string
	// Traits to derive (e.g. "Clone", "Debug"), if any.
	Derives []string
}

// StructDeclaration generates the source of a struct declaration whose fields
// have the given (resolved) types.  Every field type is fully qualified, so
// the declaration can be embedded anywhere regardless of what is in scope.
func StructDeclaration(config Config, s *decl.Struct, fields []decl.TypedField) string {
	var builder strings.Builder
	//
	generateHeader(config, &builder)
	generateStruct(config, s, fields, indentBuilder{0, &builder})
	//
	return builder.String()
}

func generateHeader(config Config, builder *strings.Builder) {
	if config.License {
		builder.WriteString(license)
	}
	//
	builder.WriteString(warning)
	builder.WriteString("\n")
}

func generateStruct(config Config, s *decl.Struct, fields []decl.TypedField, builder indentBuilder) {
	if config.Source != "" {
		builder.WriteIndentedString("/// Generated from ", filepath.Base(config.Source), "\n")
	}
	//
	if len(config.Derives) > 0 {
		builder.WriteIndentedString(fmt.Sprintf("#[derive(%s)]\n", strings.Join(config.Derives, ", ")))
	}
	//
	builder.WriteIndentedString("pub struct ", toPascalCase(s.Name))
	// Unit structs have no body
	if len(fields) == 0 {
		builder.WriteString(";\n")
		return
	}
	//
	builder.WriteString(" {\n")
	//
	for _, f := range fields {
		generateField(f, builder.Indent())
	}
	//
	builder.WriteIndentedString("}\n")
}

func generateField(field decl.TypedField, builder indentBuilder) {
	builder.WriteIndentedString("pub ", toSnakeCase(field.Name), ": ", field.Type.String(), ",\n")
}
