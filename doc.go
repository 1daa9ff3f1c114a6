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

// Package bitmask resolves symbolic bit-flag definitions to concrete
// unsigned values.
//
// # Overview
//
// A bitmask definition is an ordered list of named variants. Each variant
// either carries an explicit value, is defined as a compound expression over
// other variants, or is left unassigned and picks up the next single-bit
// value in sequence when auto-assignment is enabled:
//
//	//go:build bitmaskdef
//
//	//bitmask:auto
//	type Permission uint8
//
//	const (
//		Read  Permission = 0b0100
//		Write Permission = 0b1000
//		//bitmask:compound(Read | Write)
//		ReadWrite
//		Exec
//	)
//
// [Resolve] turns such a definition into a total name→value [Mapping],
// rejecting conflicting assignment modes and cyclic compound references
// before any value is emitted. The [fillmore-labs.com/bitmask/gen] package
// consumes the mapping and generates a compiled companion file containing the
// materialized constants and a transparent bits wrapper type.
//
// Definition files are ordinary Go syntax excluded from builds by the
// bitmaskdef build tag. They are picked up by the bundled bitmask command and
// checked by the [fillmore-labs.com/bitmask/analyzer] linter.
//
// # Semantics
//
// The resolver is deliberately low-level. It does not model permissions,
// states, or invariants, and it does not cross-check auto-assigned bits
// against explicitly assigned ones. A definition is a named catalog of bit
// patterns, not a closed set of states.
package bitmask
