// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package scenario

import (
	"github.com/specialistvlad/randscenario/internal/distribution"
)

// VariableSpec is one validated variable declaration.
type VariableSpec struct {
	Name         string
	Distribution distribution.Distribution
	SampleCount  int
}

// Model is a validated scenario. It is immutable once built and safe for
// concurrent read access.
type Model struct {
	name      string
	seed      uint64
	hasSeed   bool
	variables []VariableSpec
}

// Name returns the scenario's declared name, which may be empty.
func (m *Model) Name() string {
	return m.name
}

// Seed returns the base seed declared by the scenario, if any.
func (m *Model) Seed() (uint64, bool) {
	return m.seed, m.hasSeed
}

// Len returns the number of variables.
func (m *Model) Len() int {
	return len(m.variables)
}

// Variable returns the i-th variable in declaration order.
func (m *Model) Variable(i int) VariableSpec {
	return m.variables[i]
}

// Variables returns a copy of the variables in declaration order.
func (m *Model) Variables() []VariableSpec {
	out := make([]VariableSpec, len(m.variables))
	copy(out, m.variables)
	return out
}

// SamplesPerRealization is the total number of values one realization holds.
func (m *Model) SamplesPerRealization() int {
	total := 0
	for _, v := range m.variables {
		total += v.SampleCount
	}
	return total
}
