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

// Package gen emits the compiled companion of a resolved bitmask definition:
// the materialized constant block, a transparent bits wrapper type with the
// full operator and conversion surface, and a decomposition-based String
// method.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"fillmore-labs.com/bitmask"
)

// Source generates the formatted Go source of the companion file for one
// resolved definition.
func Source(enum *bitmask.Enum, mapping bitmask.Mapping) ([]byte, error) {
	var buf bytes.Buffer
	if err := companion.Execute(&buf, newData(enum, mapping)); err != nil {
		return nil, fmt.Errorf("generating %s: %w", enum.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Points at a template bug, not at the definition.
		return nil, fmt.Errorf("formatting %s: %w", enum.Name, err)
	}

	return src, nil
}

// FileName returns the conventional name of the generated companion file.
func FileName(enum *bitmask.Enum) string {
	return strings.ToLower(enum.Name) + "_bitmask.go"
}

// data is the template payload for one definition.
type data struct {
	Package  string
	Name     string
	BitsName string
	Table    string
	Repr     string
	Variants []value

	// Entries is the String method's match table, most-specific first.
	Entries []value

	// ZeroVariant names the variant defined as zero, if any.
	ZeroVariant string
}

// value is one name→value pair rendered as Go source.
type value struct {
	Name  string
	Value string
}

func newData(enum *bitmask.Enum, mapping bitmask.Mapping) *data {
	d := &data{
		Package:  enum.Package,
		Name:     enum.Name,
		BitsName: enum.Name + "Bits",
		Table:    unexported(enum.Name) + "Entries",
		Repr:     enum.Width.Type(),
	}

	for _, v := range enum.Variants {
		d.Variants = append(d.Variants, value{Name: v.Name, Value: hex(mapping[v.Name])})

		if d.ZeroVariant == "" && mapping[v.Name] == 0 {
			d.ZeroVariant = v.Name
		}
	}

	for _, e := range mapping.Entries() {
		d.Entries = append(d.Entries, value{Name: e.Name, Value: hex(e.Value)})
	}

	return d
}

func hex(v uint64) string {
	return fmt.Sprintf("%#x", v)
}

func unexported(name string) string {
	return strings.ToLower(name[:1]) + name[1:]
}
