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

// Package parse extracts bitmask definitions from Go definition files.
//
// A definition file is ordinary Go syntax excluded from builds by the
// bitmaskdef build tag. The flag type carries a //bitmask: directive, its
// const blocks declare the variants: a const with a value expression is
// explicit (or compound, when the expression references other variants), a
// const with a //bitmask:compound(...) doc directive is compound, and a bare
// name is eligible for auto-assignment.
package parse

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"

	"fillmore-labs.com/bitmask"
	"fillmore-labs.com/bitmask/internal/astutil"
)

// Definition is one bitmask definition found in a definition file.
type Definition struct {
	// Enum is the extracted definition, ready for [bitmask.Resolve].
	Enum *bitmask.Enum

	// Pos is the position of the flag type's declaration.
	Pos token.Pos

	// VariantPos maps variant names to their declaration positions, for
	// precise diagnostics on resolution errors.
	VariantPos map[string]token.Pos
}

// Error is a definition error with its source position.
type Error struct {
	Pos token.Pos
	Err error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// File extracts all bitmask definitions declared in file. Extraction fails
// fast: the first malformed declaration aborts the whole file.
func File(file *ast.File) ([]*Definition, error) {
	defs, err := collectTypes(file)
	if err != nil {
		return nil, err
	}

	if len(defs) == 0 {
		return nil, nil
	}

	byName := make(map[string]*Definition, len(defs))
	for _, def := range defs {
		byName[def.Enum.Name] = def
	}

	if err := collectVariants(file, byName); err != nil {
		return nil, err
	}

	return defs, nil
}

// collectTypes finds the type declarations marked with a //bitmask:
// directive.
func collectTypes(file *ast.File) ([]*Definition, error) {
	var defs []*Definition

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)

			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}

			directive, ok := astutil.FindDirective(doc)
			if !ok {
				continue
			}

			def, err := newDefinition(file, ts, directive)
			if err != nil {
				return nil, err
			}

			defs = append(defs, def)
		}
	}

	return defs, nil
}

// newDefinition builds the empty definition for one marked type declaration.
func newDefinition(file *ast.File, ts *ast.TypeSpec, directive astutil.Directive) (*Definition, error) {
	var auto bool

	switch directive.Verb {
	case "":
	case "auto":
		auto = true
	default:
		return nil, &Error{
			Pos: ts.Pos(),
			Err: fmt.Errorf("unknown bitmask directive %q on type %s", directive.Verb, ts.Name.Name),
		}
	}

	width, err := parseWidth(ts.Type)
	if err != nil {
		return nil, &Error{Pos: ts.Pos(), Err: err}
	}

	return &Definition{
		Enum: &bitmask.Enum{
			Package:    file.Name.Name,
			Name:       ts.Name.Name,
			Width:      width,
			AutoAssign: auto,
		},
		Pos:        ts.Pos(),
		VariantPos: make(map[string]token.Pos),
	}, nil
}

// parseWidth maps the declared underlying type to a representation width.
func parseWidth(expr ast.Expr) (bitmask.Width, error) {
	ident, ok := expr.(*ast.Ident)
	if !ok {
		return 0, &bitmask.InvalidRepresentationError{Repr: types.ExprString(expr)}
	}

	return bitmask.ParseWidth(ident.Name)
}

// collectVariants walks the const declarations and attaches every variant to
// its definition, in declaration order.
//
// Within one const block, a bare name inherits the most recently declared
// type, mirroring Go's own implicit repetition rule.
func collectVariants(file *ast.File, defs map[string]*Definition) error {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}

		current := ""

		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)

			if ident, ok := vs.Type.(*ast.Ident); ok {
				current = ident.Name
			} else if vs.Type != nil || len(vs.Values) > 0 {
				// A valued spec without a type declares new untyped
				// constants; only a bare name repeats the previous type.
				current = ""
			}

			def, ok := defs[current]
			if !ok {
				continue
			}

			if err := addVariants(def, vs); err != nil {
				return err
			}
		}
	}

	return nil
}

// addVariants classifies the variants of one const spec and appends them to
// the definition.
func addVariants(def *Definition, vs *ast.ValueSpec) error {
	directive, hasCompound := astutil.FindDirective(vs.Doc)
	if hasCompound && directive.Verb != "compound" {
		return &Error{
			Pos: vs.Pos(),
			Err: fmt.Errorf("unknown bitmask directive %q on variant %s", directive.Verb, vs.Names[0].Name),
		}
	}

	if hasCompound && len(vs.Names) > 1 {
		return &Error{
			Pos: vs.Pos(),
			Err: fmt.Errorf("bitmask:compound applies to a single variant, found %d", len(vs.Names)),
		}
	}

	for i, name := range vs.Names {
		if name.Name == "_" {
			continue
		}

		var value ast.Expr
		if i < len(vs.Values) {
			value = vs.Values[i]
		}

		variant, err := classify(name, value, directive, hasCompound)
		if err != nil {
			return err
		}

		def.Enum.Variants = append(def.Enum.Variants, variant)
		def.VariantPos[name.Name] = name.Pos()
	}

	return nil
}

// classify constructs the variant's single assignment mode from the payloads
// attached to its declaration.
func classify(name *ast.Ident, value ast.Expr, directive astutil.Directive, hasCompound bool) (bitmask.Variant, error) {
	switch {
	case value != nil && hasCompound:
		return bitmask.Variant{}, &Error{
			Pos: name.Pos(),
			Err: &bitmask.ConflictingAssignmentError{Variant: name.Name},
		}

	case value != nil:
		expr, err := convertExpr(value)
		if err != nil {
			return bitmask.Variant{}, &Error{Pos: value.Pos(), Err: err}
		}

		mode := bitmask.ModeExplicit
		if hasRefs(expr) {
			mode = bitmask.ModeCompound
		}

		return bitmask.Variant{Name: name.Name, Mode: mode, Value: expr}, nil

	case hasCompound:
		parsed, err := parser.ParseExpr(directive.Args)
		if err != nil {
			return bitmask.Variant{}, &Error{
				Pos: name.Pos(),
				Err: fmt.Errorf("invalid compound expression for %s: %w", name.Name, err),
			}
		}

		expr, err := convertExpr(parsed)
		if err != nil {
			return bitmask.Variant{}, &Error{Pos: name.Pos(), Err: err}
		}

		return bitmask.Variant{Name: name.Name, Mode: bitmask.ModeCompound, Value: expr}, nil

	default:
		return bitmask.Variant{Name: name.Name, Mode: bitmask.ModeAuto}, nil
	}
}
