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

import "math"

// Expr is a unit expression: a product of unit terms raised to exponents,
// scaled by a factor. Alongside this display form it carries its base form:
// one exponent per base dimension of its System and a base factor.
//
// Expr is an immutable value. The zero Expr belongs to no system and is
// rejected by every operator.
type Expr struct {
	sys       *System
	terms     []*Unit
	exponents []float64
	factor    float64

	baseExponents []float64
	baseFactor    float64
}

func (e Expr) isOperand() {}

func (e Expr) toExpr() Expr { return e }

// System returns the unit system e belongs to.
func (e Expr) System() *System { return e.sys }

// Terms returns the terms of e. Terms may repeat.
func (e Expr) Terms() []*Unit {
	o := make([]*Unit, len(e.terms))
	copy(o, e.terms)
	return o
}

// Exponents returns the exponent of each term of e.
func (e Expr) Exponents() []float64 { return cloneFloats(e.exponents) }

// Factor returns the display factor of e.
func (e Expr) Factor() float64 { return e.factor }

// BaseExponents returns the exponent of each base dimension of e.
func (e Expr) BaseExponents() []float64 { return cloneFloats(e.baseExponents) }

// BaseFactor returns the factor of e written in terms of base units.
func (e Expr) BaseFactor() float64 { return e.baseFactor }

// IsDimensionless reports whether every base exponent of e is zero.
func (e Expr) IsDimensionless() bool {
	for _, x := range e.baseExponents {
		if x != 0 {
			return false
		}
	}
	return true
}

// Dexpr returns the terms of e collapsed into a frozen TermMap: repeated
// terms have their exponents summed and terms with a zero exponent are
// dropped.
func (e Expr) Dexpr() *TermMap {
	m := NewTermMap()
	for i, t := range e.terms {
		m.set(t, m.values[t]+e.exponents[i])
	}
	return m.FilterValue(0).Freeze()
}

// BaseExpr returns e written in terms of the base units of its system.
// Only base units with a nonzero exponent appear as terms.
func (e Expr) BaseExpr() Expr {
	o := Expr{
		sys:           e.sys,
		factor:        e.baseFactor,
		baseExponents: e.baseExponents,
		baseFactor:    e.baseFactor,
	}
	if e.sys == nil {
		return o
	}
	for i, x := range e.baseExponents {
		if x == 0 {
			continue
		}
		o.terms = append(o.terms, e.sys.base[i])
		o.exponents = append(o.exponents, x)
	}
	return o
}

// Neg returns e with negated factors.
func (e Expr) Neg() Expr { return e.withFactors(-e.factor, -e.baseFactor) }

// Abs returns e with the absolute value of its factors.
func (e Expr) Abs() Expr { return e.withFactors(math.Abs(e.factor), math.Abs(e.baseFactor)) }

// Pos returns e.
func (e Expr) Pos() Expr { return e }

// Equal reports whether e and o have the same base form.
func (e Expr) Equal(o Operand) bool { return Equal(e, o) }

// ProportionalTo reports whether e can be converted to o by a constant
// factor.
func (e Expr) ProportionalTo(o Operand) bool { return ProportionalTo(e, o) }

// ScalingFactor returns the factor converting a magnitude expressed in e
// into a magnitude expressed in o.
func (e Expr) ScalingFactor(o Operand) (float64, bool) { return ScalingFactor(e, o) }

// withFactors returns e with new display and base factors.
func (e Expr) withFactors(factor, baseFactor float64) Expr {
	e.factor = factor
	e.baseFactor = baseFactor
	return e
}

// rescaled returns e with base factor baseFactor, keeping the terms of e
// and adjusting the display factor in proportion.
func (e Expr) rescaled(baseFactor float64) Expr {
	return e.withFactors(baseFactor/e.baseFactor*e.factor, baseFactor)
}

// scalar returns the dimensionless expression with no terms and factor f,
// in the system of e.
func (e Expr) scalar(f float64) Expr {
	return e.sys.one.withFactors(f, f)
}
