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

import "gonum.org/v1/gonum/floats"

// Equal reports whether a and b represent the same value once resolved in
// terms of base units: equal base exponents and equal base factors. The
// display forms are not compared. A Number equals a dimensionless operand
// with the same base factor. Values from different unit systems are equal
// only if they are the same unit.
func Equal(a, b Operand) bool {
	x, p, ka := resolve(a)
	y, q, kb := resolve(b)
	switch {
	case ka == kindUnitLike && kb == kindUnitLike:
		if x.sys != y.sys {
			return sameUnit(a, b)
		}
		return x.baseFactor == y.baseFactor && floats.Equal(x.baseExponents, y.baseExponents)
	case ka == kindUnitLike && kb == kindNumber:
		return x.IsDimensionless() && x.baseFactor == q
	case ka == kindNumber && kb == kindUnitLike:
		return y.IsDimensionless() && y.baseFactor == p
	case ka == kindNumber && kb == kindNumber:
		return p == q
	}
	return sameUnit(a, b)
}

// NotEqual returns !Equal(a, b).
func NotEqual(a, b Operand) bool { return !Equal(a, b) }

// sameUnit is the identity fallback for operands that can not be compared
// by value.
func sameUnit(a, b Operand) bool {
	ua, ok := a.(*Unit)
	if !ok {
		return false
	}
	ub, ok := b.(*Unit)
	return ok && ua == ub
}

// Less reports whether a < b, comparing base factors. The operands must
// have the same base exponents.
func Less(a, b Operand) (bool, error) {
	l, r, err := commonFactors(a, b, "<")
	return l < r, err
}

// LessEqual reports whether a <= b, comparing base factors.
func LessEqual(a, b Operand) (bool, error) {
	l, r, err := commonFactors(a, b, "<=")
	return l <= r, err
}

// Greater reports whether a > b, comparing base factors.
func Greater(a, b Operand) (bool, error) {
	l, r, err := commonFactors(a, b, ">")
	return l > r, err
}

// GreaterEqual reports whether a >= b, comparing base factors.
func GreaterEqual(a, b Operand) (bool, error) {
	l, r, err := commonFactors(a, b, ">=")
	return l >= r, err
}

// commonFactors returns the base factors of a and b if they are comparable.
func commonFactors(a, b Operand, operator string) (float64, float64, error) {
	x, p, ka := resolve(a)
	y, q, kb := resolve(b)
	switch {
	case ka == kindUnitLike && kb == kindUnitLike:
		if err := compatible(a, b, x, y, operator); err != nil {
			return 0, 0, err
		}
		return x.baseFactor, y.baseFactor, nil
	case ka == kindUnitLike && kb == kindNumber:
		if !x.IsDimensionless() {
			return 0, 0, notSupported(a, b, operator, dimensionsDetail(x.sys, x.baseExponents, x.sys.zero))
		}
		return x.baseFactor, q, nil
	case ka == kindNumber && kb == kindUnitLike:
		if !y.IsDimensionless() {
			return 0, 0, notSupported(a, b, operator, dimensionsDetail(y.sys, y.sys.zero, y.baseExponents))
		}
		return p, y.baseFactor, nil
	case ka == kindNumber && kb == kindNumber:
		return p, q, nil
	}
	return 0, 0, notSupported(a, b, operator, "")
}

// ProportionalTo reports whether a can be converted to b by multiplication
// with a constant: both have the same base exponents, or one is a Number
// and the other is dimensionless.
func ProportionalTo(a, b Operand) bool {
	_, ok := ScalingFactor(a, b)
	return ok
}

// ScalingFactor returns the factor converting a magnitude expressed in a
// into a magnitude expressed in b, i.e. the base factor of a divided by
// the base factor of b. For example, with cm defined as 0.01*m,
// ScalingFactor(m, cm) is 100: 1 m is 100 cm. The boolean result is false
// if a and b are not proportional.
func ScalingFactor(a, b Operand) (float64, bool) {
	x, p, ka := resolve(a)
	y, q, kb := resolve(b)
	switch {
	case ka == kindUnitLike && kb == kindUnitLike:
		if x.sys != y.sys || !floats.Equal(x.baseExponents, y.baseExponents) {
			return 0, false
		}
		return x.baseFactor / y.baseFactor, true
	case ka == kindUnitLike && kb == kindNumber:
		if !x.IsDimensionless() {
			return 0, false
		}
		return x.baseFactor / q, true
	case ka == kindNumber && kb == kindUnitLike:
		if !y.IsDimensionless() {
			return 0, false
		}
		return p / y.baseFactor, true
	}
	return 0, false
}
