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
	"github.com/pkg/errors"
	"github.com/spatialmodel/unitexpr/internal/hash"
	"gonum.org/v1/gonum/floats"
)

// System is a closed algebra of units built on a fixed, ordered set of
// orthogonal base dimensions. It is created once with NewSystem and is never
// modified afterwards. Units and expressions from different systems can not
// be combined.
type System struct {
	symbols     []Symbol
	base        []*Unit
	zero        []float64
	one         Expr
	fingerprint string
}

// NewSystem creates a unit system with one base unit per symbol, in the
// given order. The i-th base unit has a base-exponent vector with a 1 at
// position i and a base factor of 1.
func NewSystem(symbols ...Symbol) (*System, error) {
	if len(symbols) == 0 {
		return nil, errors.New("unitexpr: a unit system needs at least one base unit")
	}
	seen := make(map[string]struct{}, len(symbols))
	for _, sym := range symbols {
		if !IsValidSymbol(sym.symbol) {
			return nil, errors.Wrapf(ErrInvalidSymbol, "%q is not a valid identifier", sym.symbol)
		}
		if _, ok := seen[sym.symbol]; ok {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "%q", sym.symbol)
		}
		seen[sym.symbol] = struct{}{}
	}

	n := len(symbols)
	s := &System{
		symbols: make([]Symbol, n),
		base:    make([]*Unit, n),
		zero:    make([]float64, n),
	}
	copy(s.symbols, symbols)

	key := make([][3]string, n)
	for i, sym := range s.symbols {
		e := make([]float64, n)
		e[i] = 1
		u := &Unit{
			sys:           s,
			sym:           sym,
			baseExponents: e,
			baseFactor:    1,
			subExponents:  []float64{1},
			subFactor:     1,
		}
		u.subTerms = []*Unit{u}
		s.base[i] = u
		key[i] = [3]string{sym.symbol, sym.name, sym.quantity}
	}
	s.one = Expr{sys: s, factor: 1, baseExponents: s.zero, baseFactor: 1}
	s.fingerprint = hash.Hash(key)
	return s, nil
}

// Dim returns the number of base dimensions.
func (s *System) Dim() int { return len(s.symbols) }

// Symbols returns the base unit symbols in declaration order.
func (s *System) Symbols() []Symbol {
	o := make([]Symbol, len(s.symbols))
	copy(o, s.symbols)
	return o
}

// BaseUnits returns the base units in declaration order.
func (s *System) BaseUnits() []*Unit {
	o := make([]*Unit, len(s.base))
	copy(o, s.base)
	return o
}

// BaseUnit returns the base unit with the given symbol.
func (s *System) BaseUnit(symbol string) (*Unit, bool) {
	for _, u := range s.base {
		if u.sym.symbol == symbol {
			return u, true
		}
	}
	return nil, false
}

// IsBaseUnit reports whether u is one of the base units of s.
func (s *System) IsBaseUnit(u *Unit) bool {
	for _, b := range s.base {
		if b == u {
			return true
		}
	}
	return false
}

// One returns the identity expression: no terms, a factor of 1 and a
// dimensionless base form.
func (s *System) One() Expr { return s.one }

// ZeroExponents returns the all-zero base-exponent vector.
func (s *System) ZeroExponents() []float64 { return cloneFloats(s.zero) }

// Fingerprint returns a string identifying the base symbols of s.
// Systems declared with the same symbols share a fingerprint but remain
// distinct systems.
func (s *System) Fingerprint() string { return s.fingerprint }

// NewExpr returns the expression factor*terms[0]**exponents[0]*... and
// resolves its base form from the base forms of the terms. Terms may repeat.
func (s *System) NewExpr(terms []*Unit, exponents []float64, factor float64) (Expr, error) {
	if len(terms) != len(exponents) {
		return Expr{}, errors.Errorf("unitexpr: %d terms but %d exponents", len(terms), len(exponents))
	}
	e := Expr{
		sys:           s,
		terms:         make([]*Unit, len(terms)),
		exponents:     cloneFloats(exponents),
		factor:        factor,
		baseExponents: make([]float64, len(s.symbols)),
		baseFactor:    factor,
	}
	for i, t := range terms {
		if err := s.checkTerm(t); err != nil {
			return Expr{}, err
		}
		e.terms[i] = t
		floats.AddScaled(e.baseExponents, exponents[i], t.baseExponents)
		p, err := power(t.baseFactor, exponents[i])
		if err != nil {
			return Expr{}, errors.Wrapf(err, "unitexpr: resolving term %s", t)
		}
		e.baseFactor *= p
	}
	return e, nil
}

// FromTermMap returns the expression factor*term**exponent*... for the
// entries of m, in insertion order.
func (s *System) FromTermMap(m *TermMap, factor float64) (Expr, error) {
	exponents := make([]float64, len(m.keys))
	for i, k := range m.keys {
		exponents[i] = m.values[k]
	}
	return s.NewExpr(m.keys, exponents, factor)
}

// NewUnit declares a derived unit defined by def. The unit stores the
// terms, exponents and factor of def (one level of unfolding) and the base
// form of def.
//
//	cm, err := sys.NewUnit("cm", "centimeter", "length", Must(Mul(Number(0.01), m)))
func (s *System) NewUnit(symbol, name, quantity string, def UnitLike) (*Unit, error) {
	sym, err := NewSymbol(symbol, name, quantity)
	if err != nil {
		return nil, err
	}
	d, ok := s.member(def)
	if !ok {
		return nil, &InvalidTermError{Term: def, Reason: "the definition of unit " + symbol + " does not belong to this unit system"}
	}
	return &Unit{
		sys:           s,
		sym:           sym,
		baseExponents: d.baseExponents,
		baseFactor:    d.baseFactor,
		subTerms:      d.terms,
		subExponents:  d.exponents,
		subFactor:     d.factor,
	}, nil
}

func (s *System) checkTerm(t *Unit) error {
	if t == nil {
		return &InvalidTermError{Term: t, Reason: "nil unit"}
	}
	if t.sys != s {
		return &InvalidTermError{Term: t, Reason: "unit belongs to a different unit system"}
	}
	return nil
}

// member returns o as an expression if it is a valid value of s.
func (s *System) member(o UnitLike) (Expr, bool) {
	e, _, k := resolve(o)
	if k != kindUnitLike || e.sys != s {
		return Expr{}, false
	}
	return e, true
}

func cloneFloats(s []float64) []float64 {
	o := make([]float64, len(s))
	copy(o, s)
	return o
}
