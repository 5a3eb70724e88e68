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
package typepath

import (
	"strings"

	"github.com/consensys/go-intwidth/pkg/util/source"
)

// Separator delimits the segments of a path.
const Separator = "::"

// Path is a structured reference to a named type, such as
// "core::primitive::u32".  An absolute path begins with the separator (e.g.
// "::core::primitive::u32") and is resolved from the crate root, rather than
// relative to whatever happens to be in scope.
type Path struct {
	absolute bool
	segments []string
}

// NewPath constructs a path from one or more segments.  This does not check
// that the segments are valid identifiers; use Parse for that.
func NewPath(absolute bool, segments ...string) Path {
	return Path{absolute, append([]string(nil), segments...)}
}

// Absolute indicates whether or not this path is anchored at the root.
func (p Path) Absolute() bool {
	return p.absolute
}

// Segments returns a copy of the segments making up this path.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Len returns the number of segments in this path.
func (p Path) Len() uint {
	return uint(len(p.segments))
}

// Last returns the final segment of this path, or the empty string for an
// empty path.
func (p Path) Last() string {
	if len(p.segments) == 0 {
		return ""
	}
	//
	return p.segments[len(p.segments)-1]
}

// Join constructs a new path by appending zero or more segments onto this
// path.  This path is not modified.
func (p Path) Join(segments ...string) Path {
	nsegments := make([]string, 0, len(p.segments)+len(segments))
	nsegments = append(nsegments, p.segments...)
	nsegments = append(nsegments, segments...)
	//
	return Path{p.absolute, nsegments}
}

// Equals determines whether two paths are textually identical.
func (p Path) Equals(other Path) bool {
	if p.absolute != other.absolute || len(p.segments) != len(other.segments) {
		return false
	}
	//
	for i, s := range p.segments {
		if s != other.segments[i] {
			return false
		}
	}
	//
	return true
}

func (p Path) String() string {
	var builder strings.Builder
	//
	if p.absolute {
		builder.WriteString(Separator)
	}
	//
	builder.WriteString(strings.Join(p.segments, Separator))
	//
	return builder.String()
}

// Located pairs a path with the span of each of its segments in the text from
// which it was parsed.
type Located struct {
	Path
	// Span of each segment
	Spans []source.Span
}
