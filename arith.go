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
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

const mixedSystems = "the operands belong to different unit systems."

// Mul returns a*b. Multiplying unit-like operands concatenates their terms
// and multiplies their factors; multiplying by a Number scales the factors.
func Mul(a, b Operand) (Expr, error) {
	x, p, ka := resolve(a)
	y, q, kb := resolve(b)
	switch {
	case ka == kindUnitLike && kb == kindUnitLike:
		if x.sys != y.sys {
			return Expr{}, notSupported(a, b, "*", mixedSystems)
		}
		e := Expr{
			sys:           x.sys,
			terms:         concatUnits(x.terms, y.terms),
			exponents:     concatFloats(x.exponents, y.exponents),
			factor:        x.factor * y.factor,
			baseExponents: cloneFloats(x.baseExponents),
			baseFactor:    x.baseFactor * y.baseFactor,
		}
		floats.Add(e.baseExponents, y.baseExponents)
		return e, nil
	case ka == kindUnitLike && kb == kindNumber:
		return x.withFactors(x.factor*q, x.baseFactor*q), nil
	case ka == kindNumber && kb == kindUnitLike:
		return y.withFactors(p*y.factor, p*y.baseFactor), nil
	}
	return Expr{}, notSupported(a, b, "*", "")
}

// Div returns a/b. The terms of a unit-like divisor are appended with
// negated exponents. Dividing by an operand with a zero factor returns an
// error wrapping ErrDivisionByZero.
func Div(a, b Operand) (Expr, error) {
	x, p, ka := resolve(a)
	y, q, kb := resolve(b)
	switch {
	case ka == kindUnitLike && kb == kindUnitLike:
		if x.sys != y.sys {
			return Expr{}, notSupported(a, b, "/", mixedSystems)
		}
		if y.factor == 0 || y.baseFactor == 0 {
			return Expr{}, divByZero(a, b)
		}
		e := Expr{
			sys:           x.sys,
			terms:         concatUnits(x.terms, y.terms),
			exponents:     concatFloats(x.exponents, negated(y.exponents)),
			factor:        x.factor / y.factor,
			baseExponents: cloneFloats(x.baseExponents),
			baseFactor:    x.baseFactor / y.baseFactor,
		}
		floats.Sub(e.baseExponents, y.baseExponents)
		return e, nil
	case ka == kindUnitLike && kb == kindNumber:
		if q == 0 {
			return Expr{}, divByZero(a, b)
		}
		return x.withFactors(x.factor/q, x.baseFactor/q), nil
	case ka == kindNumber && kb == kindUnitLike:
		if y.factor == 0 || y.baseFactor == 0 {
			return Expr{}, divByZero(a, b)
		}
		return Expr{
			sys:           y.sys,
			terms:         y.terms,
			exponents:     negated(y.exponents),
			factor:        p / y.factor,
			baseExponents: negated(y.baseExponents),
			baseFactor:    p / y.baseFactor,
		}, nil
	}
	return Expr{}, notSupported(a, b, "/", "")
}

// Pow returns a**n. Exponents and base exponents are multiplied by n;
// factors are raised to n.
func Pow(a Operand, n float64) (Expr, error) {
	x, _, k := resolve(a)
	if k != kindUnitLike {
		return Expr{}, notSupported(a, Number(n), "**", "")
	}
	factor, err := power(x.factor, n)
	if err != nil {
		return Expr{}, errors.Wrapf(err, "unitexpr: %s ** %s", operandString(a), formatFactor(n))
	}
	baseFactor, err := power(x.baseFactor, n)
	if err != nil {
		return Expr{}, errors.Wrapf(err, "unitexpr: %s ** %s", operandString(a), formatFactor(n))
	}
	e := Expr{
		sys:           x.sys,
		terms:         x.terms,
		exponents:     cloneFloats(x.exponents),
		factor:        factor,
		baseExponents: cloneFloats(x.baseExponents),
		baseFactor:    baseFactor,
	}
	floats.Scale(n, e.exponents)
	floats.Scale(n, e.baseExponents)
	return e, nil
}

// Add returns a+b. The operands must have the same base exponents; a Number
// is compatible with dimensionless operands only.
//
// The result is expressed in the terms of the left operand: m+cm renders as
// 1.01*m and cm+m as 101.0*cm. A left operand that is zero or has no terms
// yields a result expressed in the terms of the right operand.
func Add(a, b Operand) (Expr, error) {
	x, p, ka := resolve(a)
	y, q, kb := resolve(b)
	switch {
	case ka == kindUnitLike && kb == kindUnitLike:
		if err := compatible(a, b, x, y, "+"); err != nil {
			return Expr{}, err
		}
		if x.baseFactor == 0 {
			return y, nil
		}
		if len(x.terms) == 0 {
			return inTermsOf(y, x.baseFactor+y.baseFactor), nil
		}
		return x.rescaled(x.baseFactor + y.baseFactor), nil
	case ka == kindUnitLike && kb == kindNumber:
		if !x.IsDimensionless() {
			return Expr{}, notSupported(a, b, "+", dimensionsDetail(x.sys, x.baseExponents, x.sys.zero))
		}
		return inTermsOf(x, x.baseFactor+q), nil
	case ka == kindNumber && kb == kindUnitLike:
		if !y.IsDimensionless() {
			return Expr{}, notSupported(a, b, "+", dimensionsDetail(y.sys, y.sys.zero, y.baseExponents))
		}
		if p == 0 {
			return y, nil
		}
		return inTermsOf(y, p+y.baseFactor), nil
	}
	return Expr{}, notSupported(a, b, "+", "")
}

// Sub returns a-b, following the same rules as Add.
func Sub(a, b Operand) (Expr, error) {
	x, p, ka := resolve(a)
	y, q, kb := resolve(b)
	switch {
	case ka == kindUnitLike && kb == kindUnitLike:
		if err := compatible(a, b, x, y, "-"); err != nil {
			return Expr{}, err
		}
		if x.baseFactor == 0 {
			return y.Neg(), nil
		}
		if len(x.terms) == 0 {
			return inTermsOf(y, x.baseFactor-y.baseFactor), nil
		}
		return x.rescaled(x.baseFactor - y.baseFactor), nil
	case ka == kindUnitLike && kb == kindNumber:
		if !x.IsDimensionless() {
			return Expr{}, notSupported(a, b, "-", dimensionsDetail(x.sys, x.baseExponents, x.sys.zero))
		}
		return inTermsOf(x, x.baseFactor-q), nil
	case ka == kindNumber && kb == kindUnitLike:
		if !y.IsDimensionless() {
			return Expr{}, notSupported(a, b, "-", dimensionsDetail(y.sys, y.sys.zero, y.baseExponents))
		}
		return inTermsOf(y, p-y.baseFactor), nil
	}
	return Expr{}, notSupported(a, b, "-", "")
}

// inTermsOf returns the value baseFactor expressed in the terms of e, or as
// a plain scalar if e is zero or has no terms.
func inTermsOf(e Expr, baseFactor float64) Expr {
	if e.baseFactor == 0 || len(e.terms) == 0 {
		return e.scalar(baseFactor)
	}
	return e.rescaled(baseFactor)
}

// compatible returns an error unless x and y belong to the same system and
// have the same base exponents.
func compatible(a, b Operand, x, y Expr, operator string) error {
	if x.sys != y.sys {
		return notSupported(a, b, operator, mixedSystems)
	}
	if !floats.Equal(x.baseExponents, y.baseExponents) {
		return notSupported(a, b, operator, dimensionsDetail(x.sys, x.baseExponents, y.baseExponents))
	}
	return nil
}

func dimensionsDetail(s *System, left, right []float64) string {
	return "Incompatible dimensions: " + dimensionString(s, left) + " and " + dimensionString(s, right) + "."
}

func divByZero(a, b Operand) error {
	return errors.Wrapf(ErrDivisionByZero, "unitexpr: %s / %s", operandString(a), operandString(b))
}

// power returns x**n, failing for a zero base and a negative exponent.
func power(x, n float64) (float64, error) {
	if x == 0 && n < 0 {
		return 0, ErrDivisionByZero
	}
	return math.Pow(x, n), nil
}

func concatUnits(a, b []*Unit) []*Unit {
	o := make([]*Unit, 0, len(a)+len(b))
	o = append(o, a...)
	return append(o, b...)
}

func concatFloats(a, b []float64) []float64 {
	o := make([]float64, 0, len(a)+len(b))
	o = append(o, a...)
	return append(o, b...)
}

func negated(s []float64) []float64 {
	o := cloneFloats(s)
	floats.Scale(-1, o)
	return o
}
