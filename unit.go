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

// Unit is a named unit. It is also an expression: as an operand it stands
// for 1*unit**1. Base units are created by NewSystem; derived units are
// declared with System.NewUnit. Units are immutable and compared by their
// base form.
type Unit struct {
	sys *System
	sym Symbol

	baseExponents []float64
	baseFactor    float64

	// The defining expression, one level deep.
	subTerms     []*Unit
	subExponents []float64
	subFactor    float64
}

// UnitInfo holds the detailed description of a unit.
type UnitInfo struct {
	Symbol, Name, Quantity string

	Terms     []*Unit
	Exponents []float64
	Factor    float64

	BaseExponents []float64
	BaseFactor    float64

	SubTerms     []*Unit
	SubExponents []float64
	SubFactor    float64
}

func (u *Unit) isOperand() {}

// System returns the unit system u belongs to.
func (u *Unit) System() *System { return u.sys }

// UnitSymbol returns the symbol, name and quantity of u.
func (u *Unit) UnitSymbol() Symbol { return u.sym }

// Symbol returns the display symbol of u.
func (u *Unit) Symbol() string { return u.sym.symbol }

// Name returns the name of u.
func (u *Unit) Name() string { return u.sym.name }

// Quantity returns the quantity measured by u.
func (u *Unit) Quantity() string { return u.sym.quantity }

// Terms returns a slice holding only u.
func (u *Unit) Terms() []*Unit { return []*Unit{u} }

// Exponents returns a slice holding only 1.
func (u *Unit) Exponents() []float64 { return []float64{1} }

// Factor always returns 1.
func (u *Unit) Factor() float64 { return 1 }

// BaseExponents returns the exponent of each base dimension of u.
func (u *Unit) BaseExponents() []float64 { return cloneFloats(u.baseExponents) }

// BaseFactor returns the factor relating u to the product of base units it
// decomposes into.
func (u *Unit) BaseFactor() float64 { return u.baseFactor }

// SubTerms returns the terms of the expression u was defined with.
// For base units it returns a slice holding only u.
func (u *Unit) SubTerms() []*Unit {
	o := make([]*Unit, len(u.subTerms))
	copy(o, u.subTerms)
	return o
}

// SubExponents returns the exponents of the expression u was defined with.
func (u *Unit) SubExponents() []float64 { return cloneFloats(u.subExponents) }

// SubFactor returns the factor of the expression u was defined with.
func (u *Unit) SubFactor() float64 { return u.subFactor }

// Expr returns the expression u was defined with.
//
//	J, _ := sys.NewUnit("J", "joule", "energy", Must(Mul(N, m)))
//	fmt.Println(J.Expr()) // N*m
func (u *Unit) Expr() Expr {
	return Expr{
		sys:           u.sys,
		terms:         u.subTerms,
		exponents:     u.subExponents,
		factor:        u.subFactor,
		baseExponents: u.baseExponents,
		baseFactor:    u.baseFactor,
	}
}

// SelfExpr returns the expression 1*u**1.
func (u *Unit) SelfExpr() Expr {
	return Expr{
		sys:           u.sys,
		terms:         []*Unit{u},
		exponents:     []float64{1},
		factor:        1,
		baseExponents: u.baseExponents,
		baseFactor:    u.baseFactor,
	}
}

// BaseExpr returns u written in terms of base units.
func (u *Unit) BaseExpr() Expr { return u.SelfExpr().BaseExpr() }

// Dexpr returns the frozen term map of u, which holds u with exponent 1.
func (u *Unit) Dexpr() *TermMap { return u.SelfExpr().Dexpr() }

// IsDimensionless reports whether every base exponent of u is zero.
func (u *Unit) IsDimensionless() bool { return u.SelfExpr().IsDimensionless() }

// Info returns the detailed description of u.
func (u *Unit) Info() UnitInfo {
	return UnitInfo{
		Symbol:        u.sym.symbol,
		Name:          u.sym.name,
		Quantity:      u.sym.quantity,
		Terms:         u.Terms(),
		Exponents:     u.Exponents(),
		Factor:        u.Factor(),
		BaseExponents: u.BaseExponents(),
		BaseFactor:    u.baseFactor,
		SubTerms:      u.SubTerms(),
		SubExponents:  u.SubExponents(),
		SubFactor:     u.subFactor,
	}
}

// Neg returns -1*u.
func (u *Unit) Neg() Expr { return u.SelfExpr().Neg() }

// Abs returns u with the absolute value of its factors.
func (u *Unit) Abs() Expr { return u.SelfExpr().Abs() }

// Pos returns u as an expression.
func (u *Unit) Pos() Expr { return u.SelfExpr() }

// Equal reports whether u and o have the same base form.
func (u *Unit) Equal(o Operand) bool { return Equal(u, o) }

// ProportionalTo reports whether u can be converted to o by a constant
// factor.
func (u *Unit) ProportionalTo(o Operand) bool { return ProportionalTo(u, o) }

// ScalingFactor returns the factor converting a magnitude expressed in u
// into a magnitude expressed in o.
func (u *Unit) ScalingFactor(o Operand) (float64, bool) { return ScalingFactor(u, o) }

// String returns the symbol of u.
func (u *Unit) String() string { return u.sym.symbol }

// BaseString returns u rendered in terms of base unit symbols.
func (u *Unit) BaseString() string { return u.SelfExpr().BaseString() }

func (u *Unit) toExpr() Expr { return u.SelfExpr() }
