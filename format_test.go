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
	"testing"
)

func TestFormatFactor(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{10, "10.0"},
		{1, "1.0"},
		{-2.5, "-2.5"},
		{0.01, "0.01"},
		{1.01, "1.01"},
		{0.0001, "0.0001"},
		{1e-5, "1e-05"},
		{123456789012345, "123456789012345.0"},
		{1e16, "1e+16"},
		{1.5e16, "1.5e+16"},
		{6.02214076e23, "6.02214076e+23"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, test := range tests {
		if have := formatFactor(test.f); have != test.want {
			t.Errorf("%g: have %s, want %s", test.f, have, test.want)
		}
	}
}

func TestFormatExponent(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{2, "2"},
		{-1, "-1"},
		{0.5, "0.5"},
		{-1.5, "-1.5"},
	}
	for _, test := range tests {
		if have := formatExponent(test.x); have != test.want {
			t.Errorf("%g: have %s, want %s", test.x, have, test.want)
		}
	}
}

func TestString(t *testing.T) {
	u := newMKS(t)
	tests := []struct {
		name string
		e    UnitLike
		want string
		base string
	}{
		{"base unit", u.m, "m", "m"},
		{"derived unit", u.cm, "cm", "0.01*m"},
		{"newton", u.N, "N", "kg*m*s**-2"},
		{"collapsed terms", Must(Mul(u.m, Must(Div(u.m, u.s)))), "m**2*s**-1", "m**2*s**-1"},
		{"cancelled terms", Must(Mul(Number(2), Must(Div(u.s, u.s)))), "2.0", "2.0"},
		{"fractional", Must(Pow(u.km, 0.5)), "km**0.5", "31.622776601683793*m**0.5"},
		{"one", u.sys.One(), "1.0", "1.0"},
		{"dimensionless unit", u.zero, "zero", "0.0"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if have := test.e.String(); have != test.want {
				t.Errorf("String: have %s, want %s", have, test.want)
			}
			if have := test.e.BaseString(); have != test.base {
				t.Errorf("BaseString: have %s, want %s", have, test.base)
			}
		})
	}
}

func TestDexpr(t *testing.T) {
	u := newMKS(t)
	e := Must(Mul(Must(Div(u.m, u.s)), Must(Mul(u.m, u.s))))
	d := e.Dexpr()
	if !d.Frozen() {
		t.Error("Dexpr should be frozen")
	}
	if d.String() != "{m: 2.0}" {
		t.Errorf("have %s", d)
	}
	if err := u.m.Dexpr().Set(u.s, 1); err == nil {
		t.Error("unit Dexpr should be frozen")
	}
}
