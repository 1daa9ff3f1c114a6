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

// Package config holds the configuration flags of the bitmask analyzer.
package config

// Check represents specific analyzer checks.
type Check uint8

const (
	// DefinitionsCheck enables resolution of bitmask definition files and
	// reporting of definition errors.
	DefinitionsCheck Check = 1 << iota

	// StaleCheck enables comparison of definitions against the checked-in
	// generated code.
	StaleCheck
)

// Checks is the set of enabled analyzer checks.
type Checks = FlagSet[Check]

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() Checks {
	return New(DefinitionsCheck | StaleCheck)
}
