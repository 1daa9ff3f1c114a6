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

package gclplugin

import bitmask "fillmore-labs.com/bitmask/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Definitions enables checking definition files for resolution errors.
	Definitions *bool `json:"definitions,omitzero"`
	// Stale enables checking generated companions for drift.
	Stale *bool `json:"stale,omitzero"`
}

// Options converts [Settings] into a list of [bitmask.Option] for the bitmask analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []bitmask.Option {
	var opts []bitmask.Option

	opts = appendOption(opts, s.Definitions, bitmask.WithDefinitions)
	opts = appendOption(opts, s.Stale, bitmask.WithStale)

	return opts
}

// appendOption appends a non-nil setting to a [bitmask.Option] list.
func appendOption[T any](opts []bitmask.Option, value *T, constructor func(T) bitmask.Option) []bitmask.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
