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

import (
	"fmt"
	"strings"
)

// Resolution errors are terminal for the whole definition: no partial mapping
// is ever exposed, and no error is downgraded to a default value. Each error
// carries enough context for the caller to point at the offending declaration.

// InvalidRepresentationError reports a declared storage width that is absent,
// unrecognized, signed or platform-dependent.
type InvalidRepresentationError struct {
	// Repr is the declared representation, e.g. "int32".
	Repr string
}

func (e *InvalidRepresentationError) Error() string {
	if e.Repr == "" {
		return "bitmask requires an explicit unsigned representation (uint8, uint16, uint32 or uint64)"
	}

	return fmt.Sprintf("invalid bitmask representation %s: must be uint8, uint16, uint32 or uint64", e.Repr)
}

// MissingAssignmentError reports a variant that has neither an explicit value
// nor a compound expression while auto-assignment is disabled.
type MissingAssignmentError struct {
	// Variant is the name of the unassigned variant.
	Variant string
}

func (e *MissingAssignmentError) Error() string {
	return fmt.Sprintf("variant %s needs an explicit value or a compound expression, or enable auto-assignment", e.Variant)
}

// ConflictingAssignmentError reports a variant declared with more than one
// assignment mode, such as an explicit value combined with a compound
// directive.
type ConflictingAssignmentError struct {
	// Variant is the name of the conflicting variant.
	Variant string
}

func (e *ConflictingAssignmentError) Error() string {
	return fmt.Sprintf("variant %s has both an explicit value and a compound expression", e.Variant)
}

// CyclicDefinitionError reports a compound expression that transitively
// references itself.
type CyclicDefinitionError struct {
	// Chain holds the variant names forming the cycle, from the entry point
	// back to the repeated variant.
	Chain []string
}

func (e *CyclicDefinitionError) Error() string {
	return "cyclic compound definition: " + strings.Join(e.Chain, " -> ")
}

// AutoAssignOverflowError reports that more auto-assigned variants were
// requested than bits available in the representation.
type AutoAssignOverflowError struct {
	// Variant is the first variant that does not fit.
	Variant string

	// Width is the representation width.
	Width Width
}

func (e *AutoAssignOverflowError) Error() string {
	return fmt.Sprintf("no bit left for auto-assigned variant %s in %s", e.Variant, e.Width.Type())
}

// UnknownVariantError reports a compound expression referencing a name that is
// not declared in the definition.
type UnknownVariantError struct {
	// Variant is the variant whose expression holds the reference.
	Variant string

	// Ref is the unknown name.
	Ref string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("variant %s references unknown variant %s", e.Variant, e.Ref)
}

// DuplicateVariantError reports a variant name declared twice within one
// definition.
type DuplicateVariantError struct {
	// Variant is the duplicated name.
	Variant string
}

func (e *DuplicateVariantError) Error() string {
	return fmt.Sprintf("variant %s is declared twice", e.Variant)
}
