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

// Package unitexpr implements an algebra of physical units and unit
// expressions.
//
// A System is created once from an ordered list of base unit symbols. It owns
// one base Unit per symbol and every Unit and Expr built from those base
// units. Each value keeps two forms: a display form (terms, exponents and a
// factor, e.g. 10.0*m*s**-1) and a base form (a vector of base-dimension
// exponents and a base factor). Operators combine the base forms to decide
// whether an operation is dimensionally legal and which scaling it implies:
//
//	mks, _ := unitexpr.NewSystem(meter, second, kilogram)
//	m, _ := mks.BaseUnit("m")
//	s, _ := mks.BaseUnit("s")
//	v, _ := unitexpr.Div(unitexpr.Must(unitexpr.Mul(unitexpr.Number(10), m)), s)
//	fmt.Println(v) // 10.0*m*s**-1
//
// All values are immutable and safe for concurrent use.
package unitexpr // import "github.com/spatialmodel/unitexpr"

// Version gives the version number.
const Version = "0.1.0"
