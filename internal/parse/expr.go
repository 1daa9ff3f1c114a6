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

package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	"fillmore-labs.com/bitmask"
)

// errIota is returned for iota in a variant value. Auto-assignment covers the
// sequential case, and iota's block-position semantics would fight the
// resolver's declaration-order rule.
var errIota = errors.New("iota is not supported in bitmask definitions, use auto-assignment")

// convertExpr converts a Go expression to a bit expression. The supported
// grammar is integer literals, variant references, |, <<, unary ^ and
// parentheses.
func convertExpr(x ast.Expr) (bitmask.Expr, error) {
	switch x := x.(type) {
	case *ast.BasicLit:
		if x.Kind != token.INT {
			return nil, fmt.Errorf("unsupported literal %s in bitmask expression", x.Value)
		}

		value, err := strconv.ParseUint(x.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer literal %s: %w", x.Value, err)
		}

		return bitmask.Lit{Value: value}, nil

	case *ast.Ident:
		if x.Name == "iota" {
			return nil, errIota
		}

		return bitmask.Ref{Name: x.Name}, nil

	case *ast.BinaryExpr:
		a, err := convertExpr(x.X)
		if err != nil {
			return nil, err
		}

		b, err := convertExpr(x.Y)
		if err != nil {
			return nil, err
		}

		switch x.Op {
		case token.OR:
			return bitmask.Or{X: a, Y: b}, nil

		case token.SHL:
			return bitmask.Shl{X: a, Y: b}, nil

		default:
			return nil, fmt.Errorf("unsupported operator %s in bitmask expression", x.Op)
		}

	case *ast.UnaryExpr:
		if x.Op != token.XOR {
			return nil, fmt.Errorf("unsupported operator %s in bitmask expression", x.Op)
		}

		a, err := convertExpr(x.X)
		if err != nil {
			return nil, err
		}

		return bitmask.Not{X: a}, nil

	case *ast.ParenExpr:
		a, err := convertExpr(x.X)
		if err != nil {
			return nil, err
		}

		return bitmask.Paren{X: a}, nil

	default:
		return nil, fmt.Errorf("unsupported expression %T in bitmask definition", x)
	}
}

// hasRefs reports whether the expression references other variants,
// distinguishing explicit values from compound expressions.
func hasRefs(x bitmask.Expr) bool {
	switch x := x.(type) {
	case bitmask.Ref:
		return true

	case bitmask.Or:
		return hasRefs(x.X) || hasRefs(x.Y)

	case bitmask.Shl:
		return hasRefs(x.X) || hasRefs(x.Y)

	case bitmask.Not:
		return hasRefs(x.X)

	case bitmask.Paren:
		return hasRefs(x.X)

	default:
		return false
	}
}
