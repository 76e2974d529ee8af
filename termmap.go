/*
Copyright © 2026 the unitexpr authors.
This file is part of unitexpr.

unitexpr is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

unitexpr is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with unitexpr.  If not, see <http://www.gnu.org/licenses/>.
*/

package unitexpr

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// TermMap maps unit terms to accumulated exponents. Keys are kept in order
// of first insertion so that expressions render deterministically.
//
// The arithmetic methods (Add, Sub, Scale, Negate and FilterValue) never
// modify the receiver; they return a new map that is frozen if and only if
// the receiver is frozen. The mutating methods fail with an error wrapping
// ErrImmutable on a frozen map.
type TermMap struct {
	keys   []*Unit
	values map[*Unit]float64
	frozen bool
}

// NewTermMap returns an empty, mutable TermMap.
func NewTermMap() *TermMap {
	return &TermMap{values: make(map[*Unit]float64)}
}

// Len returns the number of entries in m.
func (m *TermMap) Len() int { return len(m.keys) }

// Frozen reports whether m is immutable.
func (m *TermMap) Frozen() bool { return m.frozen }

// Keys returns the terms of m in insertion order.
func (m *TermMap) Keys() []*Unit {
	o := make([]*Unit, len(m.keys))
	copy(o, m.keys)
	return o
}

// Get returns the exponent stored for u and whether u is present.
func (m *TermMap) Get(u *Unit) (float64, bool) {
	v, ok := m.values[u]
	return v, ok
}

// Each calls f for every entry of m in insertion order.
func (m *TermMap) Each(f func(u *Unit, exponent float64)) {
	for _, k := range m.keys {
		f(k, m.values[k])
	}
}

func (m *TermMap) checkMutable(op string) error {
	if m.frozen {
		return errors.Wrapf(ErrImmutable, "TermMap.%s", op)
	}
	return nil
}

// set stores v under u without checking mutability.
func (m *TermMap) set(u *Unit, v float64) {
	if _, ok := m.values[u]; !ok {
		m.keys = append(m.keys, u)
	}
	m.values[u] = v
}

// del removes u without checking mutability.
func (m *TermMap) del(u *Unit) {
	if _, ok := m.values[u]; !ok {
		return
	}
	delete(m.values, u)
	for i, k := range m.keys {
		if k == u {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Set stores exponent under u.
func (m *TermMap) Set(u *Unit, exponent float64) error {
	if err := m.checkMutable("Set"); err != nil {
		return err
	}
	m.set(u, exponent)
	return nil
}

// Accumulate adds exponent to the value stored under u, inserting u if it
// is not present yet.
func (m *TermMap) Accumulate(u *Unit, exponent float64) error {
	if err := m.checkMutable("Accumulate"); err != nil {
		return err
	}
	m.set(u, m.values[u]+exponent)
	return nil
}

// Delete removes u from m. Deleting a missing key is a no-op.
func (m *TermMap) Delete(u *Unit) error {
	if err := m.checkMutable("Delete"); err != nil {
		return err
	}
	m.del(u)
	return nil
}

// Clear removes every entry from m.
func (m *TermMap) Clear() error {
	if err := m.checkMutable("Clear"); err != nil {
		return err
	}
	m.keys = nil
	m.values = make(map[*Unit]float64)
	return nil
}

// Update copies every entry of o into m, overwriting existing values.
func (m *TermMap) Update(o *TermMap) error {
	if err := m.checkMutable("Update"); err != nil {
		return err
	}
	for _, k := range o.keys {
		m.set(k, o.values[k])
	}
	return nil
}

// SetDefault returns the value stored under u, storing def first if u is
// not present.
func (m *TermMap) SetDefault(u *Unit, def float64) (float64, error) {
	if err := m.checkMutable("SetDefault"); err != nil {
		return 0, err
	}
	if v, ok := m.values[u]; ok {
		return v, nil
	}
	m.set(u, def)
	return def, nil
}

// Pop removes u and returns its value. The boolean result is false if u
// was not present.
func (m *TermMap) Pop(u *Unit) (float64, bool, error) {
	if err := m.checkMutable("Pop"); err != nil {
		return 0, false, err
	}
	v, ok := m.values[u]
	m.del(u)
	return v, ok, nil
}

// PopItem removes and returns the most recently inserted entry. It returns
// a nil unit if m is empty.
func (m *TermMap) PopItem() (*Unit, float64, error) {
	if err := m.checkMutable("PopItem"); err != nil {
		return nil, 0, err
	}
	if len(m.keys) == 0 {
		return nil, 0, nil
	}
	k := m.keys[len(m.keys)-1]
	v := m.values[k]
	m.del(k)
	return k, v, nil
}

// clone returns a mutable copy of m.
func (m *TermMap) clone() *TermMap {
	o := &TermMap{
		keys:   make([]*Unit, len(m.keys)),
		values: make(map[*Unit]float64, len(m.keys)),
	}
	copy(o.keys, m.keys)
	for k, v := range m.values {
		o.values[k] = v
	}
	return o
}

// derived returns o carrying the mutability of m.
func (m *TermMap) derived(o *TermMap) *TermMap {
	o.frozen = m.frozen
	return o
}

// Freeze returns an immutable copy of m.
func (m *TermMap) Freeze() *TermMap {
	o := m.clone()
	o.frozen = true
	return o
}

// Add returns the key-wise sum of m and o. Entries of o that sum to zero
// are removed from the result.
func (m *TermMap) Add(o *TermMap) *TermMap {
	r := m.clone()
	for _, k := range o.keys {
		if v := r.values[k] + o.values[k]; v == 0 {
			r.del(k)
		} else {
			r.set(k, v)
		}
	}
	return m.derived(r)
}

// Sub returns the key-wise difference of m and o. Entries of o whose
// difference is zero are removed from the result.
func (m *TermMap) Sub(o *TermMap) *TermMap {
	r := m.clone()
	for _, k := range o.keys {
		if v := r.values[k] - o.values[k]; v == 0 {
			r.del(k)
		} else {
			r.set(k, v)
		}
	}
	return m.derived(r)
}

// Scale returns m with every value multiplied by k. Scaling by zero
// returns an empty map.
func (m *TermMap) Scale(k float64) *TermMap {
	if k == 0 {
		return m.derived(NewTermMap())
	}
	r := m.clone()
	for key := range r.values {
		r.values[key] *= k
	}
	return m.derived(r)
}

// Negate returns m with every value multiplied by -1.
func (m *TermMap) Negate() *TermMap {
	r := m.clone()
	for key := range r.values {
		r.values[key] = -r.values[key]
	}
	return m.derived(r)
}

// FilterValue returns m without the entries equal to v.
func (m *TermMap) FilterValue(v float64) *TermMap {
	r := m.clone()
	for _, k := range m.keys {
		if r.values[k] == v {
			r.del(k)
		}
	}
	return m.derived(r)
}

// Equal reports whether m and o hold the same entries, regardless of
// insertion order and mutability.
func (m *TermMap) Equal(o *TermMap) bool {
	if len(m.keys) != len(o.keys) {
		return false
	}
	for k, v := range m.values {
		ov, ok := o.values[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

func (m *TermMap) String() string {
	b := new(bytes.Buffer)
	b.WriteString("{")
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s: %s", k, formatFactor(m.values[k]))
	}
	b.WriteString("}")
	return b.String()
}
