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

package config

// FlagSet is a generic bitmask over binary option flags.
type FlagSet[T ~uint8 | ~uint16 | ~uint32 | ~uint64] struct { // constraints.Integer would be fine, but it lives in golang.org/x/exp
	value T
}

// New creates a typed [FlagSet] with the specified flags enabled.
func New[T ~uint8 | ~uint16 | ~uint32 | ~uint64](flags ...T) FlagSet[T] {
	var s FlagSet[T]
	for _, flag := range flags {
		s.Enable(flag)
	}

	return s
}

// Set adjusts the flag set by enabling or disabling the specified option.
func (s *FlagSet[T]) Set(flag T, value bool) {
	if value {
		s.Enable(flag)
	} else {
		s.Disable(flag)
	}
}

// Enable sets the given flag, enabling the specified option.
func (s *FlagSet[T]) Enable(flag T) {
	s.value |= flag
}

// Disable removes the specified flag, disabling the associated option.
func (s *FlagSet[T]) Disable(flag T) {
	s.value &^= flag
}

// Enabled checks if the specified option is enabled.
func (s FlagSet[T]) Enabled(flag T) bool {
	return s.value&flag != 0
}
