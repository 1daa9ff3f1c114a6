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

package gen

import "text/template"

var companion = template.Must(template.New("companion").Parse(companionSource))

// companionSource renders the compiled half of a definition. Mixed
// flag/combination operands normalize through Bits, so every operator is
// implemented once against the combination type.
const companionSource = `// Code generated by bitmask. DO NOT EDIT.

package {{.Package}}

import (
	"strconv"
	"strings"
)

// {{.Name}} names one bit pattern per flag.
type {{.Name}} {{.Repr}}

{{if .Variants}}const (
{{- range .Variants}}
	{{.Name}} {{$.Name}} = {{.Value}}
{{- end}}
)
{{end}}
// {{.BitsName}} is a transparent combination of {{.Name}} flags. Any {{.Repr}}
// bit pattern is a legal value: convert with {{.BitsName}}(raw) and back with
// {{.Repr}}(bits). Values are copyable, comparable and usable as map keys.
type {{.BitsName}} {{.Repr}}

// Bits converts the flag to its combinable representation.
func (v {{.Name}}) Bits() {{.BitsName}} { return {{.BitsName}}(v) }

// Or returns the union of two flags.
func (v {{.Name}}) Or(o {{.Name}}) {{.BitsName}} { return v.Bits() | o.Bits() }

// And returns the intersection of two flags.
func (v {{.Name}}) And(o {{.Name}}) {{.BitsName}} { return v.Bits() & o.Bits() }

// Xor returns the symmetric difference of two flags.
func (v {{.Name}}) Xor(o {{.Name}}) {{.BitsName}} { return v.Bits() ^ o.Bits() }

// AndNot returns v with o's bits cleared.
func (v {{.Name}}) AndNot(o {{.Name}}) {{.BitsName}} { return v.Bits() &^ o.Bits() }

// Not returns the flag's complement.
func (v {{.Name}}) Not() {{.BitsName}} { return ^v.Bits() }

// String renders the flag's bit pattern.
func (v {{.Name}}) String() string { return v.Bits().String() }

// Or returns the union of two combinations.
func (b {{.BitsName}}) Or(o {{.BitsName}}) {{.BitsName}} { return b | o }

// And returns the intersection of two combinations.
func (b {{.BitsName}}) And(o {{.BitsName}}) {{.BitsName}} { return b & o }

// Xor returns the symmetric difference of two combinations.
func (b {{.BitsName}}) Xor(o {{.BitsName}}) {{.BitsName}} { return b ^ o }

// AndNot returns b with o's bits cleared.
func (b {{.BitsName}}) AndNot(o {{.BitsName}}) {{.BitsName}} { return b &^ o }

// Not returns the combination's complement.
func (b {{.BitsName}}) Not() {{.BitsName}} { return ^b }

// Enable sets o's bits.
func (b *{{.BitsName}}) Enable(o {{.BitsName}}) { *b |= o }

// Disable clears o's bits.
func (b *{{.BitsName}}) Disable(o {{.BitsName}}) { *b &^= o }

// Toggle flips o's bits.
func (b *{{.BitsName}}) Toggle(o {{.BitsName}}) { *b ^= o }

// Mask intersects the combination with o.
func (b *{{.BitsName}}) Mask(o {{.BitsName}}) { *b &= o }

// Invert replaces the combination with its complement.
func (b *{{.BitsName}}) Invert() { *b = ^*b }

// Set enables or disables o's bits.
func (b *{{.BitsName}}) Set(o {{.BitsName}}, value bool) {
	if value {
		b.Enable(o)
	} else {
		b.Disable(o)
	}
}

// Enabled reports whether any of o's bits are set.
func (b {{.BitsName}}) Enabled(o {{.BitsName}}) bool { return b&o != 0 }

// {{.Table}} is the String match table, most-specific first.
var {{.Table}} = []struct {
	name string
	bits {{.BitsName}}
}{
{{- range .Entries}}
	{name: {{printf "%q" .Name}}, bits: {{.Value}}},
{{- end}}
}

// String renders the combination as known flag names joined by " | ",
// with any leftover bits appended as a hexadecimal literal. The rendering
// is best-effort display only and does not round-trip.
func (b {{.BitsName}}) String() string {
	if b == 0 {
		return "{{with .ZeroVariant}}{{.}}{{else}}0x0{{end}}"
	}

	rest := b

	var parts []string
	for _, e := range {{.Table}} {
		if e.bits == 0 || rest&e.bits != e.bits {
			continue
		}

		parts = append(parts, e.name)
		rest &^= e.bits
	}

	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}

	return strings.Join(parts, " | ")
}
`
