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

package bitmask

// Expr is a bit expression over the variants of an [Enum]. Expressions are
// produced by the parsing front end and never mutated after construction.
//
// The grammar covers integer literals, variant references, bitwise or,
// left shift, bitwise complement and grouping parentheses.
type Expr interface{ isExpr() }

// Lit is an unsigned integer literal.
type Lit struct{ Value uint64 }

func (Lit) isExpr() {}

// Ref references another variant of the same definition by name.
type Ref struct{ Name string }

func (Ref) isExpr() {}

// Or is the bitwise or of two expressions.
type Or struct{ X, Y Expr }

func (Or) isExpr() {}

// Shl shifts X left by Y bits.
type Shl struct{ X, Y Expr }

func (Shl) isExpr() {}

// Not is the width-masked bitwise complement of an expression.
type Not struct{ X Expr }

func (Not) isExpr() {}

// Paren groups an expression. It has no semantic effect.
type Paren struct{ X Expr }

func (Paren) isExpr() {}
