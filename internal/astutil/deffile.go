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
	"go/build/constraint"
)

// DefTag is the build tag that excludes bitmask definition files from
// ordinary builds.
const DefTag = "bitmaskdef"

// IsDefinitionFile reports whether the file is a bitmask definition file,
// i.e. carries a //go:build constraint that requires the bitmaskdef tag.
func IsDefinitionFile(file *ast.File) bool {
	for _, group := range file.Comments {
		// Build constraints precede the package clause.
		if group.Pos() >= file.Package {
			break
		}

		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}

			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}

			if expr.Eval(func(tag string) bool { return tag == DefTag }) {
				return true
			}
		}
	}

	return false
}
