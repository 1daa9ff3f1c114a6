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
	"slices"
)

// Resolve produces the total name→value mapping for a definition.
//
// The representation width is validated first. Auto-assigned variants receive
// `1 << k` where k counts auto-assigned variants in declaration order;
// explicit and compound variants do not consume bit indices. Compound
// expressions are resolved lazily with memoization, so every variant is
// evaluated at most once and cycles surface as [CyclicDefinitionError].
//
// Any failure aborts the whole pass; no partial mapping is returned. Apart
// from the declaration-order rule for auto-assigned bits, the result is a
// pure function of the definition.
func Resolve(e *Enum) (Mapping, error) {
	if !e.Width.Valid() {
		return nil, &InvalidRepresentationError{Repr: fmt.Sprintf("%d-bit", e.Width)}
	}

	r := &resolver{
		enum:   e,
		mask:   e.Width.Mask(),
		index:  make(map[string]int, len(e.Variants)),
		states: make([]state, len(e.Variants)),
		values: make(Mapping, len(e.Variants)),
	}

	if err := r.classify(); err != nil {
		return nil, err
	}

	for i := range e.Variants {
		if err := r.resolve(i); err != nil {
			return nil, err
		}
	}

	return r.values, nil
}

// state tracks per-variant resolution progress. inProgress marks a variant
// currently being expanded and exists solely for cycle detection.
type state uint8

const (
	notStarted state = iota
	inProgress
	resolved
)

// resolver holds the transient bookkeeping of one resolution pass.
type resolver struct {
	enum   *Enum
	mask   uint64
	index  map[string]int
	auto   map[int]uint64
	states []state
	stack  []string
	values Mapping
}

// classify checks that exactly one assignment mode applies to every variant
// and allocates the single-bit values of auto-assigned variants in
// declaration order.
func (r *resolver) classify() error {
	shift := 0

	for i, v := range r.enum.Variants {
		if _, ok := r.index[v.Name]; ok {
			return &DuplicateVariantError{Variant: v.Name}
		}

		r.index[v.Name] = i

		switch {
		case v.Mode == ModeAuto:
			if !r.enum.AutoAssign {
				return &MissingAssignmentError{Variant: v.Name}
			}

			if shift >= r.enum.Width.Bits() {
				return &AutoAssignOverflowError{Variant: v.Name, Width: r.enum.Width}
			}

			if r.auto == nil {
				r.auto = make(map[int]uint64)
			}

			r.auto[i] = 1 << shift
			shift++

		case v.Value == nil:
			return &MissingAssignmentError{Variant: v.Name}
		}
	}

	return nil
}

// resolve records the value of variant i, resolving its dependencies first.
func (r *resolver) resolve(i int) error {
	v := &r.enum.Variants[i]

	switch r.states[i] {
	case resolved:
		return nil

	case inProgress:
		// Normally caught one step earlier in eval.
		return &CyclicDefinitionError{Chain: r.chain(v.Name)}
	}

	r.states[i] = inProgress
	r.stack = append(r.stack, v.Name)

	var value uint64

	if v.Mode == ModeAuto {
		value = r.auto[i]
	} else {
		var err error
		if value, err = r.eval(v.Name, v.Value); err != nil {
			return err
		}
	}

	r.stack = r.stack[:len(r.stack)-1]
	r.states[i] = resolved
	r.values[v.Name] = value & r.mask

	return nil
}

// eval evaluates a bit expression against the mapping resolved so far,
// resolving referenced variants on demand.
func (r *resolver) eval(name string, x Expr) (uint64, error) {
	switch x := x.(type) {
	case Lit:
		return x.Value & r.mask, nil

	case Ref:
		i, ok := r.index[x.Name]
		if !ok {
			return 0, &UnknownVariantError{Variant: name, Ref: x.Name}
		}

		if r.states[i] == inProgress {
			return 0, &CyclicDefinitionError{Chain: r.chain(x.Name)}
		}

		if err := r.resolve(i); err != nil {
			return 0, err
		}

		return r.values[x.Name], nil

	case Or:
		a, b, err := r.eval2(name, x.X, x.Y)

		return a | b, err

	case Shl:
		a, b, err := r.eval2(name, x.X, x.Y)

		return (a << b) & r.mask, err

	case Not:
		a, err := r.eval(name, x.X)

		return ^a & r.mask, err

	case Paren:
		return r.eval(name, x.X)

	default:
		return 0, fmt.Errorf("bitmask: unsupported expression type %T", x)
	}
}

// eval2 evaluates both operands of a binary expression.
func (r *resolver) eval2(name string, x, y Expr) (uint64, uint64, error) {
	a, err := r.eval(name, x)
	if err != nil {
		return 0, 0, err
	}

	b, err := r.eval(name, y)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

// chain returns the in-progress variant names from the cycle's entry point
// back to name.
func (r *resolver) chain(name string) []string {
	i := max(slices.Index(r.stack, name), 0)

	return append(slices.Clone(r.stack[i:]), name)
}
