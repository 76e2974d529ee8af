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

package unitdef

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spatialmodel/unitexpr"
	"gonum.org/v1/gonum/floats"
)

const testTolerance = 1e-12

func loadSC(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load("testdata/sc.toml")
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestLoad(t *testing.T) {
	c := loadSC(t)
	if c.Name != "semiconductor" {
		t.Errorf("name: %s", c.Name)
	}
	if c.System().Dim() != 7 {
		t.Errorf("dim: %d", c.System().Dim())
	}
	if c.Len() != 7+16 {
		t.Errorf("units: %d", c.Len())
	}
	units := c.Units()
	if units[0].Symbol() != "nm" || units[7].Symbol() != "m" {
		t.Errorf("order: %s %s", units[0], units[7])
	}

	tests := []struct {
		symbol     string
		base       string // empty if the base factor is not exact
		baseFactor float64
	}{
		{"m", "1000000000.0*nm", 1e9},
		{"s", "1000000000000.0*ps", 1e12},
		{"kg", "1.0977691057577633e+30*m_e", 1.0977691057577633e30},
		{"sr", "1.0", 1},
		{"N", "", 1.0977691057577633e15},
		{"c", "", 299792.458},
		{"delta_nu_Cs", "0.00919263177*ps**-1", 0.00919263177},
	}
	for _, test := range tests {
		t.Run(test.symbol, func(t *testing.T) {
			u, err := c.Lookup(test.symbol)
			if err != nil {
				t.Fatal(err)
			}
			if !floats.EqualWithinAbsOrRel(u.BaseFactor(), test.baseFactor, testTolerance, testTolerance) {
				t.Errorf("base factor: have %g, want %g", u.BaseFactor(), test.baseFactor)
			}
			if test.base != "" && u.BaseString() != test.base {
				t.Errorf("base: have %s, want %s", u.BaseString(), test.base)
			}
		})
	}

	N := c.MustLookup("N")
	if !floats.Equal(N.BaseExponents(), []float64{1, -2, 1, 0, 0, 0, 0}) {
		t.Errorf("N: %v", N.BaseExponents())
	}
	if f, ok := unitexpr.ScalingFactor(c.MustLookup("s"), c.MustLookup("ps")); !ok || f != 1e12 {
		t.Errorf("s to ps: %g %v", f, ok)
	}
	if c.MustLookup("h_bar").Expr().String() != "0.15915494309189535*h" {
		t.Errorf("h_bar: %s", c.MustLookup("h_bar").Expr())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("testdata/bad_term.toml"); errors.Cause(err) != ErrUnknownUnit {
		t.Errorf("unknown term: %v", err)
	}
	if _, err := Load("testdata/missing.toml"); !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("missing file: %v", err)
	}
	tests := []struct {
		name, file string
	}{
		{"no base", "name = \"empty\"\n"},
		{"invalid symbol", "[[base]]\nsymbol = \"2m\"\n"},
		{"duplicate base", "[[base]]\nsymbol = \"m\"\n[[base]]\nsymbol = \"m\"\n"},
		{"bad factor", "[[base]]\nsymbol = \"m\"\n[[unit]]\nsymbol = \"x\"\nfactor = \"ten\"\n"},
		{"bad exponent", "[[base]]\nsymbol = \"m\"\n[[unit]]\nsymbol = \"x\"\nterms = [{unit = \"m\", exponent = \"x\"}]\n"},
		{"duplicate unit", "[[base]]\nsymbol = \"m\"\n[[unit]]\nsymbol = \"m\"\n"},
		{"syntax", "[[base]\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(test.file)); err == nil {
				t.Error("should fail")
			}
		})
	}
}

func TestExtend(t *testing.T) {
	m, _ := unitexpr.NewSymbol("m", "meter", "length")
	s, _ := unitexpr.NewSymbol("s", "second", "time")
	sys, err := unitexpr.NewSystem(m, s)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCatalog("ms", sys)
	f, err := os.Open("testdata/extra.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	logger, hook := logtest.NewNullLogger()
	logger.Level = logrus.DebugLevel
	l := &Loader{Log: logger}
	if err := l.Extend(c, f); err != nil {
		t.Fatal(err)
	}
	kmh := c.MustLookup("kmh")
	if !floats.EqualWithinAbsOrRel(kmh.BaseFactor(), 1/3.6, testTolerance, testTolerance) {
		t.Errorf("kmh: %g", kmh.BaseFactor())
	}
	entries := hook.Entries
	if len(entries) != 2 {
		t.Fatalf("log entries: %d", len(entries))
	}
	if entries[1].Data["symbol"] != "kmh" || entries[1].Data["base"] != kmh.BaseString() {
		t.Errorf("log fields: %# v", pretty.Formatter(entries[1].Data))
	}

	if err := l.Extend(c, strings.NewReader("[[base]]\nsymbol = \"kg\"\n")); err == nil {
		t.Error("extending with base units should fail")
	}
}

func TestCatalog(t *testing.T) {
	c := loadSC(t)
	if _, err := c.Lookup("furlong"); errors.Cause(err) != ErrUnknownUnit {
		t.Errorf("lookup: %v", err)
	}
	m := c.MustLookup("m")
	if _, err := c.Define("m", "meter", "length", m); errors.Cause(err) != ErrDuplicateUnit {
		t.Errorf("define: %v", err)
	}
	if err := c.Add(m); errors.Cause(err) != ErrDuplicateUnit {
		t.Errorf("add: %v", err)
	}
	other := loadSC(t)
	if err := c.Add(other.MustLookup("J")); err == nil {
		t.Error("a unit of another system should be rejected")
	}
	km, err := c.Define("km", "kilometer", "length", unitexpr.Must(unitexpr.Mul(unitexpr.Number(1000), m)))
	if err != nil {
		t.Fatal(err)
	}
	if c.MustLookup("km") != km || c.Units()[c.Len()-1] != km {
		t.Error("km should be registered last")
	}
}

func TestEncode(t *testing.T) {
	c := loadSC(t)
	var b bytes.Buffer
	if err := c.Encode(&b); err != nil {
		t.Fatal(err)
	}
	c2, err := Decode(&b)
	if err != nil {
		t.Fatalf("%v\n%s", err, b.String())
	}
	if diff := pretty.Diff(summary(c), summary(c2)); len(diff) > 0 {
		t.Errorf("round trip: %v", diff)
	}
}

type unitSummary struct {
	Symbol, Name, Quantity string
	Definition, Base       string
}

func summary(c *Catalog) []unitSummary {
	var o []unitSummary
	for _, u := range c.Units() {
		o = append(o, unitSummary{
			Symbol:     u.Symbol(),
			Name:       u.Name(),
			Quantity:   u.Quantity(),
			Definition: u.Expr().String(),
			Base:       u.BaseString(),
		})
	}
	return o
}
