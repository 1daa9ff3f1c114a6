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

// Enum is one complete bitmask definition.
//
// Variant names are unique within an Enum and keep their declaration order,
// which determines the bit index of auto-assigned variants.
type Enum struct {
	// Package is the Go package the definition was declared in.
	Package string

	// Name is the name of the flag type, e.g. "Permission".
	Name string

	// Width is the unsigned storage width backing the definition.
	Width Width

	// AutoAssign enables sequential single-bit values for variants without
	// an explicit value or compound expression.
	AutoAssign bool

	// Variants lists the declared flags in declaration order.
	Variants []Variant
}

// Variant is one declared flag within an [Enum].
type Variant struct {
	// Name is the flag's identifier.
	Name string

	// Mode selects how the variant receives its value.
	Mode Mode

	// Value is the variant's value expression. It is nil exactly when Mode
	// is [ModeAuto].
	Value Expr
}

// Mode describes the assignment mode of a [Variant]. The parsing front end
// constructs exactly one mode per variant; a declaration carrying more than
// one payload is rejected there with [ConflictingAssignmentError].
type Mode uint8

//go:generate go tool stringer -type Mode -linecomment
const (
	// ModeExplicit marks a variant with an explicit, reference-free value.
	ModeExplicit Mode = iota // explicit
	// ModeCompound marks a variant defined as an expression over other variants.
	ModeCompound // compound
	// ModeAuto marks a variant eligible for auto-assignment.
	ModeAuto // auto
)
