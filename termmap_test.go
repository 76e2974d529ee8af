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
	"testing"

	"github.com/pkg/errors"
)

func TestTermMapInsertionOrder(t *testing.T) {
	u := newMKS(t)
	m := NewTermMap()
	m.Set(u.s, -1)
	m.Accumulate(u.m, 1)
	m.Accumulate(u.s, -1)
	if m.String() != "{s: -2.0, m: 1.0}" {
		t.Errorf("have %s", m)
	}
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != u.s || keys[1] != u.m {
		t.Errorf("keys: %v", keys)
	}
	if v, ok := m.Get(u.s); !ok || v != -2 {
		t.Errorf("s: %g %v", v, ok)
	}
	if _, ok := m.Get(u.kg); ok {
		t.Error("kg should be missing")
	}
}

func TestTermMapMutation(t *testing.T) {
	u := newMKS(t)
	m := NewTermMap()
	m.Set(u.m, 1)
	m.Set(u.s, 2)
	m.Set(u.kg, 3)

	if v, err := m.SetDefault(u.m, 10); err != nil || v != 1 {
		t.Errorf("SetDefault existing: %g %v", v, err)
	}
	if v, err := m.SetDefault(u.cm, 10); err != nil || v != 10 {
		t.Errorf("SetDefault missing: %g %v", v, err)
	}
	if v, ok, err := m.Pop(u.s); err != nil || !ok || v != 2 {
		t.Errorf("Pop: %g %v %v", v, ok, err)
	}
	if _, ok, _ := m.Pop(u.s); ok {
		t.Error("s was already removed")
	}
	k, v, err := m.PopItem()
	if err != nil || k != u.cm || v != 10 {
		t.Errorf("PopItem: %v %g %v", k, v, err)
	}
	if err := m.Delete(u.N); err != nil {
		t.Errorf("deleting a missing key: %v", err)
	}
	if err := m.Delete(u.m); err != nil {
		t.Fatal(err)
	}
	if m.String() != "{kg: 3.0}" {
		t.Errorf("have %s", m)
	}

	o := NewTermMap()
	o.Set(u.kg, -1)
	o.Set(u.m, 4)
	if err := m.Update(o); err != nil {
		t.Fatal(err)
	}
	if m.String() != "{kg: -1.0, m: 4.0}" {
		t.Errorf("after update: %s", m)
	}
	if err := m.Clear(); err != nil || m.Len() != 0 {
		t.Errorf("Clear: %d %v", m.Len(), err)
	}
	if k, _, err := m.PopItem(); err != nil || k != nil {
		t.Errorf("PopItem on an empty map: %v %v", k, err)
	}
}

func TestTermMapFrozen(t *testing.T) {
	u := newMKS(t)
	m := NewTermMap()
	m.Set(u.m, 1)
	f := m.Freeze()
	if !f.Frozen() || m.Frozen() {
		t.Fatal("only the copy should be frozen")
	}

	tests := []struct {
		name string
		op   func() error
	}{
		{"Set", func() error { return f.Set(u.s, 1) }},
		{"Accumulate", func() error { return f.Accumulate(u.s, 1) }},
		{"Delete", func() error { return f.Delete(u.m) }},
		{"Clear", func() error { return f.Clear() }},
		{"Update", func() error { return f.Update(m) }},
		{"SetDefault", func() error { _, err := f.SetDefault(u.s, 1); return err }},
		{"Pop", func() error { _, _, err := f.Pop(u.m); return err }},
		{"PopItem", func() error { _, _, err := f.PopItem(); return err }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.op(); errors.Cause(err) != ErrImmutable {
				t.Errorf("want ErrImmutable, have %v", err)
			}
		})
	}
	if f.String() != "{m: 1.0}" {
		t.Errorf("frozen map was modified: %s", f)
	}

	// Derived maps keep the mutability of their receiver.
	if !f.Add(m).Frozen() || !f.Scale(2).Frozen() || !f.Negate().Frozen() || !f.FilterValue(1).Frozen() {
		t.Error("maps derived from a frozen map should be frozen")
	}
	if m.Sub(f).Frozen() {
		t.Error("maps derived from a mutable map should be mutable")
	}
}

func TestTermMapArithmetic(t *testing.T) {
	u := newMKS(t)
	a := NewTermMap()
	a.Set(u.m, 1)
	a.Set(u.s, -1)
	b := NewTermMap()
	b.Set(u.s, 1)
	b.Set(u.kg, 2)

	tests := []struct {
		name string
		have *TermMap
		want string
	}{
		{"add", a.Add(b), "{m: 1.0, kg: 2.0}"},
		{"sub", a.Sub(b), "{m: 1.0, s: -2.0, kg: -2.0}"},
		{"scale", a.Scale(3), "{m: 3.0, s: -3.0}"},
		{"scale zero", a.Scale(0), "{}"},
		{"negate", a.Negate(), "{m: -1.0, s: 1.0}"},
		{"filter", a.FilterValue(-1), "{m: 1.0}"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.have.String() != test.want {
				t.Errorf("have %s, want %s", test.have, test.want)
			}
		})
	}
	if a.String() != "{m: 1.0, s: -1.0}" {
		t.Errorf("receiver was modified: %s", a)
	}
}

func TestTermMapEqual(t *testing.T) {
	u := newMKS(t)
	a := NewTermMap()
	a.Set(u.m, 1)
	a.Set(u.s, -1)
	b := NewTermMap()
	b.Set(u.s, -1)
	b.Set(u.m, 1)
	if !a.Equal(b) || !a.Equal(b.Freeze()) {
		t.Error("maps with the same entries should be equal")
	}
	b.Set(u.m, 2)
	if a.Equal(b) {
		t.Error("maps with different values should differ")
	}
	if a.Equal(NewTermMap()) {
		t.Error("maps with different lengths should differ")
	}
}
