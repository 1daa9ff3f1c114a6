// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package astutil

import (
	"go/ast"
	"regexp"
)

// Directive is a parsed //bitmask: comment.
//
// The marker form `//bitmask:` and `//bitmask:auto` tag a type declaration as
// a bitmask definition; `//bitmask:compound(expr)` attaches a compound
// expression to a variant.
type Directive struct {
	// Verb is the directive verb, empty for the bare type marker.
	Verb string

	// Args is the text between the directive's parentheses, if any.
	Args string
}

// Like all Go directives, //bitmask: comments have no space after the slashes
// and extend to the end of the line.
var directivePattern = regexp.MustCompile(`^//bitmask:([a-z]*)(?:\((.*)\))?\s*$`)

// ParseDirective parses a //bitmask: comment. The second return value
// reports whether the comment is a bitmask directive at all.
func ParseDirective(comment *ast.Comment) (Directive, bool) {
	matches := directivePattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return Directive{}, false
	}

	return Directive{Verb: matches[1], Args: matches[2]}, true
}

// FindDirective returns the first bitmask directive of a comment group.
func FindDirective(doc *ast.CommentGroup) (Directive, bool) {
	if doc == nil {
		return Directive{}, false
	}

	for _, comment := range doc.List {
		if d, ok := ParseDirective(comment); ok {
			return d, true
		}
	}

	return Directive{}, false
}
