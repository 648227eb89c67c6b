// SPDX-License-Identifier: MIT

// Package integral - per-configuration memo of integration weights.
//
// Purpose:
//   - Issue one stable, 1-based code per distinct Key; never reuse a code.
//   - Build the weights of a configuration once, on first request.
//   - Reduce an integral to one dot product of parameter values and weights.
//
// Complexity quicksheet:
//   - Request: O(|vars|·log|vars|) hit, plus one Builder call on miss.
//   - Evaluate: O(cells), no allocation.

package integral

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// NoAnalytic is the code meaning "no analytic integral, integrate numerically".
const NoAnalytic = 0

// Builder computes the per-cell weights for a key, aligned with the order
// of the parameter values later passed to Evaluate.
type Builder func(Key) []float64

// Element is the cached state of one configuration.
type Element struct {
	key     Key
	volumes []float64 // nil until built or after Invalidate
}

// Key returns the configuration the element belongs to.
func (e *Element) Key() Key { return e.key }

// Volumes returns a copy of the cached weights (nil if not built).
func (e *Element) Volumes() []float64 {
	if e.volumes == nil {
		return nil
	}

	return append([]float64(nil), e.volumes...)
}

// Manager maps Keys to Elements and codes. It is not safe for concurrent
// use; callers serialise access per instance.
type Manager struct {
	build Builder
	codes map[Key]int
	elems []*Element // elems[code-1]
}

// NewManager returns an empty manager that builds weights with build.
func NewManager(build Builder) *Manager {
	return &Manager{build: build, codes: make(map[Key]int)}
}

// Len returns the number of issued codes.
func (m *Manager) Len() int { return len(m.elems) }

// Request returns the code for (intVars, normVars). An empty intVars yields
// NoAnalytic. On a miss the weights are built and the next code is issued;
// on a hit the existing code is returned and nothing is rebuilt.
// The bool reports whether the call created a new element.
func (m *Manager) Request(intVars, normVars []string) (code int, created bool) {
	if len(intVars) == 0 {
		return NoAnalytic, false
	}
	key := NewKey(intVars, normVars)
	if code, ok := m.codes[key]; ok {
		return code, false
	}
	m.elems = append(m.elems, &Element{key: key, volumes: m.build(key)})
	code = len(m.elems)
	m.codes[key] = code

	return code, true
}

// Element returns the element behind code, rebuilding its weights if they
// were invalidated.
//
// Errors: ErrUnknownCacheCode.
func (m *Manager) Element(code int) (*Element, error) {
	if code < 1 || code > len(m.elems) {
		return nil, fmt.Errorf("Manager.Element(%d): %d codes issued: %w", code, len(m.elems), ErrUnknownCacheCode)
	}
	e := m.elems[code-1]
	if e.volumes == nil {
		e.volumes = m.build(e.key)
	}

	return e, nil
}

// Evaluate returns Σ values[c]·volumes[c] for the element behind code.
//
// Errors: ErrUnknownCacheCode, ErrLengthMismatch.
func (m *Manager) Evaluate(code int, values []float64) (float64, error) {
	e, err := m.Element(code)
	if err != nil {
		return 0, err
	}
	if len(values) != len(e.volumes) {
		return 0, fmt.Errorf("Manager.Evaluate(%d): %d values for %d cells: %w", code, len(values), len(e.volumes), ErrLengthMismatch)
	}

	return floats.Dot(values, e.volumes), nil
}

// Invalidate drops every cached weight vector. Issued codes stay valid and
// keep their keys; weights are rebuilt on next use. Call it after the
// underlying binning changes.
func (m *Manager) Invalidate() {
	for _, e := range m.elems {
		e.volumes = nil
	}
}

// Clone returns an independent copy that builds with build. Codes issued so
// far are preserved; later codes diverge between the two managers.
func (m *Manager) Clone(build Builder) *Manager {
	out := &Manager{
		build: build,
		codes: make(map[Key]int, len(m.codes)),
		elems: make([]*Element, len(m.elems)),
	}
	for k, c := range m.codes {
		out.codes[k] = c
	}
	for i, e := range m.elems {
		// weights are never mutated in place, so sharing the slice is safe
		out.elems[i] = &Element{key: e.key, volumes: e.volumes}
	}

	return out
}
