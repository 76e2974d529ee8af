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

// Package siunit provides the International System of Units: the seven SI
// base units, the named derived units and the defining constants of the SI.
//
// The units are created when the package is initialized and are never
// modified afterwards.
package siunit

import (
	"math"

	"github.com/spatialmodel/unitexpr"
	"github.com/spatialmodel/unitexpr/unitdef"
)

// System is the SI unit system. Its base dimensions are, in order, length,
// time, mass, electric current, temperature, amount of substance and
// luminous intensity.
var System *unitexpr.System

// Base units.
var (
	Meter, Second, Kilogram, Ampere, Kelvin, Mole, Candela *unitexpr.Unit
)

// Derived units.
var (
	AstronomicalUnit *unitexpr.Unit
	Steradian        *unitexpr.Unit
	Newton           *unitexpr.Unit
	Joule            *unitexpr.Unit
	Electronvolt     *unitexpr.Unit
	Watt             *unitexpr.Unit
	Coulomb          *unitexpr.Unit
	Volt             *unitexpr.Unit
	Farad            *unitexpr.Unit
	Ohm              *unitexpr.Unit
	Pascal           *unitexpr.Unit
	Siemens          *unitexpr.Unit
	Weber            *unitexpr.Unit
	Tesla            *unitexpr.Unit
	Henry            *unitexpr.Unit
	Lumen            *unitexpr.Unit
	Becquerel        *unitexpr.Unit
	Lux              *unitexpr.Unit
	Gray             *unitexpr.Unit
)

// Constants with exact values, except for ElectronMass, which is measured.
var (
	HyperfineCs      *unitexpr.Unit // Δν(Cs), hyperfine transition frequency of caesium 133
	SpeedOfLight     *unitexpr.Unit
	Planck           *unitexpr.Unit
	ReducedPlanck    *unitexpr.Unit
	ElementaryCharge *unitexpr.Unit
	Boltzmann        *unitexpr.Unit
	ElectronMass     *unitexpr.Unit
	Avogadro         *unitexpr.Unit
	LuminousEfficacy *unitexpr.Unit // K_cd, of 540 THz radiation
)

// units holds every unit above in declaration order.
var units []*unitexpr.Unit

func init() {
	symbols := []unitexpr.Symbol{
		symbol("m", "meter", "length"),
		symbol("s", "second", "time"),
		symbol("kg", "kilogram", "mass"),
		symbol("A", "ampere", "electric current"),
		symbol("K", "kelvin", "temperature"),
		symbol("mol", "mole", "amount of substance"),
		symbol("cd", "candela", "luminous intensity"),
	}
	var err error
	if System, err = unitexpr.NewSystem(symbols...); err != nil {
		panic(err)
	}
	base := System.BaseUnits()
	Meter, Second, Kilogram, Ampere, Kelvin, Mole, Candela = base[0], base[1], base[2], base[3], base[4], base[5], base[6]
	units = append(units, base...)

	m, s, kg, A, K, mol, cd := Meter, Second, Kilogram, Ampere, Kelvin, Mole, Candela

	AstronomicalUnit = define("au", "astronomical unit", "length", mul(149597870700, m))
	Steradian = define("sr", "steradian", "solid angle", System.One())
	Newton = define("N", "newton", "force", mul(1, kg, m, pow(s, -2)))
	Joule = define("J", "joule", "energy", mul(1, Newton, m))
	Electronvolt = define("eV", "electronvolt", "energy", mul(1.602176634e-19, Joule))
	Watt = define("W", "watt", "power", div(Joule, s))
	Coulomb = define("C", "coulomb", "charge", mul(1, A, s))
	Volt = define("V", "volt", "electric potential difference", div(Joule, Coulomb))
	Farad = define("F", "farad", "capacitance", div(Coulomb, Volt))
	Ohm = define("ohm", "ohm", "resistance", div(Volt, A))
	Pascal = define("Pa", "pascal", "pressure", mul(1, Newton, pow(m, -2)))
	Siemens = define("S", "siemens", "electrical conductance", div(unitexpr.Number(1), Ohm))
	Weber = define("Wb", "weber", "magnetic flux", mul(1, Volt, s))
	Tesla = define("T", "tesla", "magnetic flux density", mul(1, Weber, pow(m, -2)))
	Henry = define("H", "henry", "inductance", div(Weber, A))
	Lumen = define("lm", "lumen", "luminous flux", div(cd, Steradian))
	Becquerel = define("Bq", "becquerel", "radioactivity", div(unitexpr.Number(1), s))
	Lux = define("lx", "lux", "illuminance", mul(1, Lumen, pow(m, -2)))
	Gray = define("Gy", "gray", "absorbed dose of ionizing radiation", div(Joule, kg))

	HyperfineCs = define("delta_nu_Cs", "hyperfine transition frequency of Cs", "frequency", div(unitexpr.Number(9192631770), s))
	SpeedOfLight = define("c", "speed of light", "velocity", div(mul(299792458, m), s))
	Planck = define("h", "Planck constant", "action", mul(6.62607015e-34, Joule, s))
	ReducedPlanck = define("h_bar", "reduced Planck constant", "action", mul(1/(2*math.Pi), Planck))
	ElementaryCharge = define("e", "elementary charge", "charge", mul(1.602176634e-19, Coulomb))
	Boltzmann = define("k", "Boltzmann constant", "heat capacity", div(mul(1.380649e-23, Joule), K))
	ElectronMass = define("m_e", "electron mass", "mass", mul(9.1093837015e-31, kg))
	Avogadro = define("N_A", "Avogadro constant", "amount of substance", div(unitexpr.Number(6.02214076e23), mol))
	LuminousEfficacy = define("K_cd", "luminous efficacy", "luminous efficacy", div(mul(683, Lumen), Watt))
}

// Units returns every unit of the package: the base units, the derived
// units and the constants, in declaration order.
func Units() []*unitexpr.Unit {
	o := make([]*unitexpr.Unit, len(units))
	copy(o, units)
	return o
}

// Catalog returns a new catalog named "SI" holding every unit of the
// package. Callers may register additional units in it.
func Catalog() *unitdef.Catalog {
	c := unitdef.NewCatalog("SI", System)
	for _, u := range units[System.Dim():] {
		if err := c.Add(u); err != nil {
			panic(err)
		}
	}
	return c
}

func symbol(s, name, quantity string) unitexpr.Symbol {
	sym, err := unitexpr.NewSymbol(s, name, quantity)
	if err != nil {
		panic(err)
	}
	return sym
}

func define(s, name, quantity string, def unitexpr.UnitLike) *unitexpr.Unit {
	u, err := System.NewUnit(s, name, quantity, def)
	if err != nil {
		panic(err)
	}
	units = append(units, u)
	return u
}

// mul returns factor*terms[0]*terms[1]*...
func mul(factor float64, terms ...unitexpr.Operand) unitexpr.Expr {
	e := unitexpr.Must(unitexpr.Mul(unitexpr.Number(factor), System.One()))
	for _, t := range terms {
		e = unitexpr.Must(unitexpr.Mul(e, t))
	}
	return e
}

func div(a, b unitexpr.Operand) unitexpr.Expr { return unitexpr.Must(unitexpr.Div(a, b)) }

func pow(a unitexpr.Operand, n float64) unitexpr.Expr { return unitexpr.Must(unitexpr.Pow(a, n)) }
