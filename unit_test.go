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

	"gonum.org/v1/gonum/floats"
)

func TestUnitAccessors(t *testing.T) {
	u := newMKS(t)
	cm := u.cm
	if cm.Symbol() != "cm" || cm.Name() != "centimeter" || cm.Quantity() != "length" || cm.String() != "cm" {
		t.Errorf("symbol: %v", cm.UnitSymbol())
	}
	if cm.System() != u.sys {
		t.Error("system")
	}
	if terms := cm.Terms(); len(terms) != 1 || terms[0] != cm {
		t.Errorf("terms: %v", terms)
	}
	if !floats.Equal(cm.Exponents(), []float64{1}) || cm.Factor() != 1 {
		t.Errorf("exponents %v factor %g", cm.Exponents(), cm.Factor())
	}
	if sub := cm.SubTerms(); len(sub) != 1 || sub[0] != u.m || !floats.Equal(cm.SubExponents(), []float64{1}) {
		t.Errorf("sub expression: %v %v", sub, cm.SubExponents())
	}
	if cm.Expr().String() != "0.01*m" || cm.SelfExpr().String() != "cm" {
		t.Errorf("expr %s self %s", cm.Expr(), cm.SelfExpr())
	}
	if cm.IsDimensionless() || !u.zero.IsDimensionless() {
		t.Error("dimensionless")
	}

	// Accessors return copies.
	e := cm.BaseExponents()
	e[1] = 5
	if cm.BaseExponents()[1] != 1 {
		t.Error("BaseExponents should return a copy")
	}
	v := Must(Mul(u.m, u.s))
	terms := v.Terms()
	terms[0] = u.kg
	if v.Terms()[0] != u.m {
		t.Error("Terms should return a copy")
	}
}

func TestUnitOperandForms(t *testing.T) {
	u := newMKS(t)
	// A unit and its self expression behave identically as operands.
	a := Must(Mul(u.km, u.s))
	b := Must(Mul(u.km.SelfExpr(), u.s))
	if a.String() != b.String() || !Equal(a, b) {
		t.Errorf("%s != %s", a, b)
	}
	if !Equal(u.N, u.N.Expr()) || !Equal(u.N, u.N.BaseExpr()) {
		t.Error("a unit should equal its definition and its base form")
	}
	if f, ok := u.km.ScalingFactor(u.km.Expr()); !ok || f != 1 {
		t.Errorf("km to its definition: %g %v", f, ok)
	}
}
