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
	"math/bits"
	"slices"
	"strconv"
	"strings"
)

// Mapping maps every variant of a definition to its resolved, width-masked
// value. It is built append-only by a single resolution pass and read-only
// afterwards.
type Mapping map[string]uint64

// Entry is one name→value pair of a [Mapping].
type Entry struct {
	Name  string
	Value uint64
}

// Entries returns the mapping ordered most-specific first: descending bit
// count, then descending value, then name. This is the match order of the
// decomposition formatter and of generated String methods.
func (m Mapping) Entries() []Entry {
	entries := make([]Entry, 0, len(m))
	for name, value := range m {
		entries = append(entries, Entry{Name: name, Value: value})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := bits.OnesCount64(b.Value) - bits.OnesCount64(a.Value); c != 0 {
			return c
		}

		if a.Value != b.Value {
			if a.Value > b.Value {
				return -1
			}

			return 1
		}

		return strings.Compare(a.Name, b.Name)
	})

	return entries
}

// Decompose renders a bit pattern as a combination of known variant names.
//
// Known values are matched greedily against the remaining unexplained bits,
// most-specific first, and joined with " | ". Leftover bits are appended as a
// hexadecimal literal; a value of zero renders as "0x0" unless a variant is
// itself defined as zero. The rendering is best-effort display only and does
// not round-trip.
func Decompose(m Mapping, value uint64) string {
	var (
		parts     []string
		remaining = value
	)

	for _, e := range m.Entries() {
		if e.Value == 0 {
			if value == 0 {
				return e.Name
			}

			continue
		}

		if remaining&e.Value == e.Value {
			parts = append(parts, e.Name)
			remaining &^= e.Value
		}
	}

	if remaining != 0 || len(parts) == 0 {
		parts = append(parts, "0x"+strconv.FormatUint(remaining, 16))
	}

	return strings.Join(parts, " | ")
}
