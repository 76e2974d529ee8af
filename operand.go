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

// Operand is a value accepted by the operators of this package: a *Unit, an
// Expr or a Number. The set is closed.
type Operand interface {
	isOperand()
}

// UnitLike is an Operand carrying units: a *Unit or an Expr.
type UnitLike interface {
	Operand
	System() *System
	Terms() []*Unit
	Exponents() []float64
	Factor() float64
	BaseExponents() []float64
	BaseFactor() float64
	BaseExpr() Expr
	Dexpr() *TermMap
	String() string
	BaseString() string
	toExpr() Expr
}

// Number is a plain, dimensionless real number.
type Number float64

func (n Number) isOperand() {}

func (n Number) String() string { return formatFactor(float64(n)) }

type kind int

const (
	kindInvalid kind = iota
	kindUnitLike
	kindNumber
)

// resolve classifies o. Unit-like operands are returned in expression form,
// numbers as a float64.
func resolve(o Operand) (Expr, float64, kind) {
	switch v := o.(type) {
	case *Unit:
		if v == nil || v.sys == nil {
			return Expr{}, 0, kindInvalid
		}
		return v.SelfExpr(), 0, kindUnitLike
	case Expr:
		if v.sys == nil {
			return Expr{}, 0, kindInvalid
		}
		return v, 0, kindUnitLike
	case Number:
		return Expr{}, float64(v), kindNumber
	}
	return Expr{}, 0, kindInvalid
}

// Must returns e, panicking if err is not nil. It is intended for unit
// definitions that are known to be valid.
func Must(e Expr, err error) Expr {
	if err != nil {
		panic(err)
	}
	return e
}
