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

package parse

import (
	"errors"
	"go/parser"
	"go/token"
	"testing"

	"fillmore-labs.com/bitmask"
)

const permissions = `//go:build bitmaskdef

package perms

//bitmask:auto
type Permission uint8

const (
	Read  Permission = 0b0100
	Write Permission = 0b1000
	//bitmask:compound(Read | Write)
	ReadWrite
	Exec
)
`

func parseFile(t *testing.T, src string) []*Definition {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "def.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("ParseFile() failed: %v", err)
	}

	defs, err := File(file)
	if err != nil {
		t.Fatalf("File() failed: %v", err)
	}

	return defs
}

func TestFile(t *testing.T) {
	t.Parallel()

	defs := parseFile(t, permissions)

	if len(defs) != 1 {
		t.Fatalf("File() found %d definitions, want 1", len(defs))
	}

	enum := defs[0].Enum

	if enum.Package != "perms" || enum.Name != "Permission" {
		t.Errorf("definition = %s.%s, want perms.Permission", enum.Package, enum.Name)
	}

	if enum.Width != bitmask.Width8 {
		t.Errorf("Width = %v, want %v", enum.Width, bitmask.Width8)
	}

	if !enum.AutoAssign {
		t.Error("AutoAssign = false, want true")
	}

	want := []struct {
		name string
		mode bitmask.Mode
	}{
		{name: "Read", mode: bitmask.ModeExplicit},
		{name: "Write", mode: bitmask.ModeExplicit},
		{name: "ReadWrite", mode: bitmask.ModeCompound},
		{name: "Exec", mode: bitmask.ModeAuto},
	}

	if len(enum.Variants) != len(want) {
		t.Fatalf("got %d variants, want %d", len(enum.Variants), len(want))
	}

	for i, w := range want {
		v := enum.Variants[i]
		if v.Name != w.name || v.Mode != w.mode {
			t.Errorf("variant %d = %s (%d), want %s (%d)", i, v.Name, v.Mode, w.name, w.mode)
		}

		if _, ok := defs[0].VariantPos[w.name]; !ok {
			t.Errorf("missing position for variant %s", w.name)
		}
	}
}

func TestFileResolves(t *testing.T) {
	t.Parallel()

	defs := parseFile(t, permissions)

	mapping, err := bitmask.Resolve(defs[0].Enum)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	// Exec is the only auto-assigned variant, so it receives the first bit.
	want := bitmask.Mapping{"Read": 0b0100, "Write": 0b1000, "ReadWrite": 0b1100, "Exec": 0b0001}
	for name, value := range want {
		if mapping[name] != value {
			t.Errorf("%s = %#x, want %#x", name, mapping[name], value)
		}
	}
}

func TestFileMixedConstBlock(t *testing.T) {
	t.Parallel()

	// maxPerm declares a new untyped constant, so it is not a Permission
	// variant, and the bare alias after it repeats maxPerm, not ReadWrite.
	const src = `//go:build bitmaskdef

package perms

//bitmask:auto
type Permission uint8

const (
	Read  Permission = 0b0100
	Write Permission = 0b1000
	ReadWrite
	maxPerm = 0x40
	alias
)
`

	defs := parseFile(t, src)

	if len(defs) != 1 {
		t.Fatalf("File() found %d definitions, want 1", len(defs))
	}

	enum := defs[0].Enum

	want := []string{"Read", "Write", "ReadWrite"}
	if len(enum.Variants) != len(want) {
		t.Fatalf("got %d variants, want %d", len(enum.Variants), len(want))
	}

	for i, name := range want {
		if enum.Variants[i].Name != name {
			t.Errorf("variant %d = %s, want %s", i, enum.Variants[i].Name, name)
		}
	}

	for _, name := range []string{"maxPerm", "alias"} {
		if _, ok := defs[0].VariantPos[name]; ok {
			t.Errorf("unexpected variant %s", name)
		}
	}
}

func TestFileValueExpressions(t *testing.T) {
	t.Parallel()

	const src = `//go:build bitmaskdef

package flags

//bitmask:
type Flag uint16

const (
	A   Flag = 1 << 0
	B   Flag = 1 << 1
	All Flag = A | (B | 0x100)
	Rest Flag = ^All
)
`

	defs := parseFile(t, src)

	enum := defs[0].Enum
	if enum.AutoAssign {
		t.Error("AutoAssign = true, want false")
	}

	// Value expressions referencing other variants classify as compound.
	modes := map[string]bitmask.Mode{}
	for _, v := range enum.Variants {
		modes[v.Name] = v.Mode
	}

	if modes["A"] != bitmask.ModeExplicit || modes["B"] != bitmask.ModeExplicit {
		t.Error("shift literals should classify as explicit")
	}

	if modes["All"] != bitmask.ModeCompound || modes["Rest"] != bitmask.ModeCompound {
		t.Error("referencing expressions should classify as compound")
	}

	mapping, err := bitmask.Resolve(enum)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	if mapping["All"] != 0x103 {
		t.Errorf("All = %#x, want 0x103", mapping["All"])
	}

	if mapping["Rest"] != 0xFEFC {
		t.Errorf("Rest = %#x, want 0xfefc", mapping["Rest"])
	}
}

func TestFileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "ConflictingAssignment",
			src: `//go:build bitmaskdef

package p

//bitmask:
type F uint8

const (
	A F = 1
	//bitmask:compound(A)
	B F = 2
)
`,
			want: &bitmask.ConflictingAssignmentError{Variant: "B"},
		},
		{
			name: "SignedRepresentation",
			src: `//go:build bitmaskdef

package p

//bitmask:
type F int8

const A F = 1
`,
			want: &bitmask.InvalidRepresentationError{Repr: "int8"},
		},
		{
			name: "PlatformRepresentation",
			src: `//go:build bitmaskdef

package p

//bitmask:
type F uint

const A F = 1
`,
			want: &bitmask.InvalidRepresentationError{Repr: "uint"},
		},
		{
			name: "Iota",
			src: `//go:build bitmaskdef

package p

//bitmask:
type F uint8

const A F = 1 << iota
`,
			want: errIota,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file, err := parser.ParseFile(token.NewFileSet(), "def.go", tt.src, parser.ParseComments|parser.SkipObjectResolution)
			if err != nil {
				t.Fatalf("ParseFile() failed: %v", err)
			}

			if _, err := File(file); !matches(err, tt.want) {
				t.Errorf("File() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func matches(err, want error) bool {
	switch want := want.(type) {
	case *bitmask.ConflictingAssignmentError:
		var e *bitmask.ConflictingAssignmentError

		return errors.As(err, &e) && e.Variant == want.Variant

	case *bitmask.InvalidRepresentationError:
		var e *bitmask.InvalidRepresentationError

		return errors.As(err, &e) && e.Repr == want.Repr

	default:
		return errors.Is(err, want)
	}
}

func TestFileSkipsUnmarkedTypes(t *testing.T) {
	t.Parallel()

	const src = `package p

type Plain uint8

const A Plain = 1
`

	file, err := parser.ParseFile(token.NewFileSet(), "plain.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("ParseFile() failed: %v", err)
	}

	defs, err := File(file)
	if err != nil {
		t.Fatalf("File() failed: %v", err)
	}

	if len(defs) != 0 {
		t.Errorf("File() found %d definitions, want 0", len(defs))
	}
}
