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

// Width is the unsigned integer storage width backing a bitmask definition.
type Width uint8

// Supported representation widths. Bitmasks are defined in terms of unsigned
// bitwise operations only; signed representations are not supported, and
// platform-dependent widths are rejected so that generated constants stay
// portable.
const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// ParseWidth maps a Go type name to its [Width].
// It fails with [InvalidRepresentationError] for anything but
// uint8, uint16, uint32 and uint64.
func ParseWidth(name string) (Width, error) {
	switch name {
	case "uint8", "byte":
		return Width8, nil
	case "uint16":
		return Width16, nil
	case "uint32":
		return Width32, nil
	case "uint64":
		return Width64, nil
	default:
		return 0, &InvalidRepresentationError{Repr: name}
	}
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	default:
		return false
	}
}

// Bits returns the number of bits available in the representation.
func (w Width) Bits() int { return int(w) }

// Mask returns the all-ones bit pattern of the representation. Every resolved
// value is masked with it, so complements never set bits above the width.
func (w Width) Mask() uint64 {
	if w == Width64 {
		return ^uint64(0)
	}

	return 1<<w - 1
}

// Type returns the Go type name of the representation.
func (w Width) Type() string {
	switch w {
	case Width8:
		return "uint8"
	case Width16:
		return "uint16"
	case Width32:
		return "uint32"
	case Width64:
		return "uint64"
	default:
		return "invalid"
	}
}
