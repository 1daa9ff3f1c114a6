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

// Package analyzer implements the bitmask static analysis pass.
//
// # Overview
//
// The analyzer picks up bitmask definition files (build-tag-excluded Go files
// carrying the bitmaskdef tag) from the packages under analysis and reports
//
//   - definition errors (invalid representation widths, variants without an
//     assignment mode, conflicting assignment modes, unknown references and
//     cyclic compound definitions) at the offending declaration, and
//   - stale generated companions, where the checked-in constants no longer
//     match the resolved definition.
//
// # Example
//
// Given a definition
//
//	//bitmask:
//	type Permission uint8
//
//	const (
//		Read Permission = 0b0001
//		Write
//	)
//
// the analyzer reports that Write needs an explicit value or a compound
// expression.
package analyzer
