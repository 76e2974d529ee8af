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

package siunit

import (
	"math"

	"github.com/ctessum/unit"
	"github.com/pkg/errors"
	"github.com/spatialmodel/unitexpr"
)

// dimensions maps the base dimensions of System, in order, to the
// dimensions of package unit. Amount of substance has no counterpart.
var dimensions = []struct {
	d  unit.Dimension
	ok bool
}{
	{unit.LengthDim, true},
	{unit.TimeDim, true},
	{unit.MassDim, true},
	{unit.CurrentDim, true},
	{unit.TemperatureDim, true},
	{0, false},
	{unit.LuminousIntensityDim, true},
}

// Dimensions returns the dimensions of u in the form used by package
// github.com/ctessum/unit. u must be an SI value whose base exponents are
// integers and that does not involve amount of substance.
func Dimensions(u unitexpr.UnitLike) (unit.Dimensions, error) {
	if u.System() != System {
		return nil, errors.Errorf("siunit: %s is not an SI value", u)
	}
	d := make(unit.Dimensions)
	for i, x := range u.BaseExponents() {
		if x == 0 {
			continue
		}
		if !dimensions[i].ok {
			return nil, errors.Errorf("siunit: dimension %s of %s is not supported by package unit",
				System.Symbols()[i].Quantity(), u)
		}
		if x != math.Trunc(x) {
			return nil, errors.Errorf("siunit: %s has a non-integer exponent of %s", u, System.Symbols()[i])
		}
		d[dimensions[i].d] = int(x)
	}
	return d, nil
}

// ToUnit converts value, expressed in u, to a *unit.Unit holding the same
// magnitude in SI base units.
//
//	v, err := ToUnit(3, kmPerHour) // 0.8333 m s-1
func ToUnit(value float64, u unitexpr.UnitLike) (*unit.Unit, error) {
	d, err := Dimensions(u)
	if err != nil {
		return nil, err
	}
	return unit.New(value*u.BaseFactor(), d), nil
}

// FromUnit returns v as an expression in terms of the SI base units, with
// the value of v as its factor.
func FromUnit(v *unit.Unit) (unitexpr.Expr, error) {
	exponents := System.ZeroExponents()
	for dim, x := range v.Dimensions() {
		i := -1
		for j, s := range dimensions {
			if s.ok && s.d == dim {
				i = j
				break
			}
		}
		if i < 0 {
			return unitexpr.Expr{}, errors.Errorf("siunit: dimension %s has no SI base unit", dim)
		}
		exponents[i] = float64(x)
	}
	var terms []*unitexpr.Unit
	var exps []float64
	base := System.BaseUnits()
	for i, x := range exponents {
		if x != 0 {
			terms = append(terms, base[i])
			exps = append(exps, x)
		}
	}
	return System.NewExpr(terms, exps, v.Value())
}
