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

// Command bitmask generates the compiled companions of bitmask definition
// files.
//
// It loads the packages named by its arguments (defaulting to the package in
// the current directory), picks up definition files carrying the bitmaskdef
// build tag, resolves every definition and writes a <type>_bitmask.go file
// next to its definition file:
//
//	bitmask ./...
//
// The command is suitable for go:generate:
//
//	//go:generate go run fillmore-labs.com/bitmask/cmd/bitmask
package main

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/bitmask"
	"fillmore-labs.com/bitmask/gen"
	"fillmore-labs.com/bitmask/internal/astutil"
	"fillmore-labs.com/bitmask/internal/parse"
)

func main() {
	verbose := flag.Bool("v", false, "log generated files")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		logger = zap.Must(zap.NewDevelopment())
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	if err := generate(logger, patterns); err != nil {
		_ = logger.Sync()

		fmt.Fprintln(os.Stderr, "bitmask:", err)
		os.Exit(1)
	}

	_ = logger.Sync()
}

// generate loads the named packages and writes the companion of every
// definition found in their ignored files.
func generate(logger *zap.Logger, patterns []string) error {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedFiles}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return err
	}

	if packages.PrintErrors(pkgs) > 0 {
		return errors.New("packages contain errors")
	}

	fset := token.NewFileSet()

	for _, pkg := range pkgs {
		for _, filename := range pkg.IgnoredFiles {
			if !strings.HasSuffix(filename, ".go") {
				continue
			}

			if err := generateFile(logger, fset, filename); err != nil {
				return err
			}
		}
	}

	return nil
}

// generateFile writes the companions of all definitions in one candidate
// file. Ignored files that do not carry the definition tag are skipped.
func generateFile(logger *zap.Logger, fset *token.FileSet, filename string) error {
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		// Files may be ignored for unrelated reasons, broken ones included.
		logger.Debug("skipping unparseable file", zap.String("file", filename), zap.Error(err))

		return nil
	}

	if !astutil.IsDefinitionFile(file) {
		return nil
	}

	defs, err := parse.File(file)
	if err != nil {
		return positionedError(fset, file, err)
	}

	for _, def := range defs {
		mapping, err := bitmask.Resolve(def.Enum)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", fset.Position(def.Pos), def.Enum.Name, err)
		}

		src, err := gen.Source(def.Enum, mapping)
		if err != nil {
			return err
		}

		out := filepath.Join(filepath.Dir(filename), gen.FileName(def.Enum))
		if err := os.WriteFile(out, src, 0o600); err != nil {
			return err
		}

		logger.Info("generated",
			zap.String("file", out),
			zap.String("type", def.Enum.Name),
			zap.Int("variants", len(def.Enum.Variants)),
		)
	}

	return nil
}

// positionedError prefixes a definition error with its source position.
func positionedError(fset *token.FileSet, file *ast.File, err error) error {
	pos := file.Pos()

	var perr *parse.Error
	if errors.As(err, &perr) {
		pos = perr.Pos
	}

	return fmt.Errorf("%s: %w", fset.Position(pos), err)
}
