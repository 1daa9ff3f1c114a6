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

package analyzer

import (
	"errors"
	"fmt"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/bitmask"
	"fillmore-labs.com/bitmask/internal/astutil"
	"fillmore-labs.com/bitmask/internal/config"
	"fillmore-labs.com/bitmask/internal/parse"
)

// run executes the bitmask analyzer's pipeline.
//
// Definition files are excluded from ordinary builds by their build tag, so
// they arrive through the pass's IgnoredFiles and are parsed here with the
// pass's FileSet, giving diagnostics valid positions inside them.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	for _, filename := range p.IgnoredFiles {
		if !strings.HasSuffix(filename, ".go") {
			continue
		}

		file, err := parser.ParseFile(p.Fset, filename, nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			// Ignored files may be excluded for unrelated reasons and
			// are allowed to be arbitrarily broken.
			continue
		}

		if !astutil.IsDefinitionFile(file) {
			continue
		}

		defs, err := parse.File(file)
		if err != nil {
			var perr *parse.Error
			if !errors.As(err, &perr) {
				astutil.InternalError(p, file.Pos(), "parsing %s: %v", filename, err)

				continue
			}

			r.reportDefinitionError(p, perr.Pos, err)

			continue
		}

		for _, def := range defs {
			r.checkDefinition(p, def)
		}
	}

	return nil, nil
}

// checkDefinition resolves one definition and compares it against the
// checked-in generated code.
func (r *runOptions) checkDefinition(p *analysis.Pass, def *parse.Definition) {
	mapping, err := bitmask.Resolve(def.Enum)
	if err != nil {
		if pos, ok := resolvePos(def, err); ok {
			r.reportDefinitionError(p, pos, err)
		} else {
			astutil.InternalError(p, def.Pos, "resolving %s: %v", def.Enum.Name, err)
		}

		return
	}

	if r.checks.Enabled(config.StaleCheck) {
		checkStale(p, def, mapping)
	}
}

// reportDefinitionError reports a definition error at its position.
func (r *runOptions) reportDefinitionError(p *analysis.Pass, pos token.Pos, err error) {
	if !r.checks.Enabled(config.DefinitionsCheck) {
		return
	}

	p.Report(analysis.Diagnostic{Pos: pos, Message: err.Error()})
}

// resolvePos maps a resolution error to the declaration it concerns. The
// second result is false for errors no definition can produce.
func resolvePos(def *parse.Definition, err error) (token.Pos, bool) {
	var (
		invalid   *bitmask.InvalidRepresentationError
		missing   *bitmask.MissingAssignmentError
		conflict  *bitmask.ConflictingAssignmentError
		cyclic    *bitmask.CyclicDefinitionError
		overflow  *bitmask.AutoAssignOverflowError
		unknown   *bitmask.UnknownVariantError
		duplicate *bitmask.DuplicateVariantError
	)

	var variant string

	switch {
	case errors.As(err, &invalid):
		return def.Pos, true
	case errors.As(err, &missing):
		variant = missing.Variant
	case errors.As(err, &conflict):
		variant = conflict.Variant
	case errors.As(err, &cyclic):
		variant = cyclic.Chain[0]
	case errors.As(err, &overflow):
		variant = overflow.Variant
	case errors.As(err, &unknown):
		variant = unknown.Variant
	case errors.As(err, &duplicate):
		variant = duplicate.Variant
	default:
		return token.NoPos, false
	}

	if pos, ok := def.VariantPos[variant]; ok {
		return pos, true
	}

	return def.Pos, true
}

// checkStale verifies that the compiled package contains up-to-date generated
// code for the definition.
func checkStale(p *analysis.Pass, def *parse.Definition, mapping bitmask.Mapping) {
	scope := p.Pkg.Scope()

	if scope.Lookup(def.Enum.Name+"Bits") == nil {
		p.Report(analysis.Diagnostic{
			Pos:     def.Pos,
			Message: fmt.Sprintf("missing generated code for bitmask %s; run bitmask", def.Enum.Name),
		})

		return
	}

	for _, v := range def.Enum.Variants {
		cnst, ok := scope.Lookup(v.Name).(*types.Const)
		if !ok {
			p.Report(analysis.Diagnostic{
				Pos:     def.VariantPos[v.Name],
				Message: fmt.Sprintf("variant %s is missing from the generated code; run bitmask", v.Name),
			})

			continue
		}

		if value, exact := constant.Uint64Val(cnst.Val()); !exact || value != mapping[v.Name] {
			p.Report(analysis.Diagnostic{
				Pos: cnst.Pos(),
				Message: fmt.Sprintf("stale value %#x for variant %s, want %#x; run bitmask",
					value, v.Name, mapping[v.Name]),
			})
		}
	}
}
