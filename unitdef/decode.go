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
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/unitexpr"
	"github.com/spf13/cast"
)

// File is the layout of a TOML catalog file:
//
//	name = "semiconductor"
//
//	[[base]]
//	symbol = "nm"
//	name = "nanometer"
//	quantity = "length"
//
//	[[unit]]
//	symbol = "m"
//	name = "meter"
//	quantity = "length"
//	factor = 1.0e9
//	terms = [{unit = "nm", exponent = 1}]
//
// Units may only refer to base units and to units declared before them.
type File struct {
	Name string    `toml:"name"`
	Base []BaseDef `toml:"base"`
	Unit []UnitDef `toml:"unit"`
}

// BaseDef declares one base unit.
type BaseDef struct {
	Symbol   string `toml:"symbol"`
	Name     string `toml:"name"`
	Quantity string `toml:"quantity"`
}

// UnitDef declares a derived unit as factor*term1**exponent1*...
// Factor defaults to 1. Factor and exponents may be written as TOML
// integers or floats.
type UnitDef struct {
	Symbol   string      `toml:"symbol"`
	Name     string      `toml:"name"`
	Quantity string      `toml:"quantity"`
	Factor   interface{} `toml:"factor,omitempty"`
	Terms    []TermDef   `toml:"terms,omitempty"`
}

// TermDef is one term of a unit definition. Exponent defaults to 1.
type TermDef struct {
	Unit     string      `toml:"unit"`
	Exponent interface{} `toml:"exponent,omitempty"`
}

// Loader builds catalogs from catalog files.
type Loader struct {
	// Log receives one debug entry per registered unit.
	Log logrus.FieldLogger
}

// NewLoader returns a Loader logging to the standard logrus logger.
func NewLoader() *Loader {
	return &Loader{Log: logrus.StandardLogger()}
}

// Load reads the catalog file at path. Environment variables in path are
// expanded.
func (l *Loader) Load(path string) (*Catalog, error) {
	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, errors.Wrap(err, "unitdef: opening catalog")
	}
	defer f.Close()
	c, err := l.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unitdef: loading %s", path)
	}
	return c, nil
}

// Decode reads a catalog file declaring a new unit system.
func (l *Loader) Decode(r io.Reader) (*Catalog, error) {
	var f File
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, errors.Wrap(err, "unitdef: decoding catalog")
	}
	if len(f.Base) == 0 {
		return nil, errors.Errorf("unitdef: catalog %q declares no base units", f.Name)
	}
	symbols := make([]unitexpr.Symbol, len(f.Base))
	for i, b := range f.Base {
		s, err := unitexpr.NewSymbol(b.Symbol, b.Name, b.Quantity)
		if err != nil {
			return nil, err
		}
		symbols[i] = s
	}
	sys, err := unitexpr.NewSystem(symbols...)
	if err != nil {
		return nil, err
	}
	c := NewCatalog(f.Name, sys)
	l.log().WithFields(logrus.Fields{
		"catalog":     c.Name,
		"base":        len(symbols),
		"fingerprint": sys.Fingerprint(),
	}).Debug("unitdef created unit system")
	return c, l.define(c, f.Unit)
}

// Extend reads the units of a catalog file into c. The file must not
// declare base units.
func (l *Loader) Extend(c *Catalog, r io.Reader) error {
	var f File
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return errors.Wrap(err, "unitdef: decoding catalog")
	}
	if len(f.Base) != 0 {
		return errors.Errorf("unitdef: can not add base units to catalog %s", c.Name)
	}
	return l.define(c, f.Unit)
}

func (l *Loader) define(c *Catalog, defs []UnitDef) error {
	for _, d := range defs {
		def, err := l.resolve(c, d)
		if err != nil {
			return err
		}
		u, err := c.Define(d.Symbol, d.Name, d.Quantity, def)
		if err != nil {
			return err
		}
		l.log().WithFields(logrus.Fields{
			"catalog":    c.Name,
			"symbol":     u.Symbol(),
			"definition": def.String(),
			"base":       u.BaseString(),
		}).Debug("unitdef registered unit")
	}
	return nil
}

// resolve returns the defining expression of d.
func (l *Loader) resolve(c *Catalog, d UnitDef) (unitexpr.Expr, error) {
	factor := 1.0
	if d.Factor != nil {
		var err error
		if factor, err = cast.ToFloat64E(d.Factor); err != nil {
			return unitexpr.Expr{}, errors.Wrapf(err, "unitdef: factor of %s", d.Symbol)
		}
	}
	terms := make([]*unitexpr.Unit, len(d.Terms))
	exponents := make([]float64, len(d.Terms))
	for i, t := range d.Terms {
		u, err := c.Lookup(t.Unit)
		if err != nil {
			return unitexpr.Expr{}, errors.Wrapf(err, "unitdef: definition of %s", d.Symbol)
		}
		terms[i] = u
		exponents[i] = 1
		if t.Exponent != nil {
			if exponents[i], err = cast.ToFloat64E(t.Exponent); err != nil {
				return unitexpr.Expr{}, errors.Wrapf(err, "unitdef: exponent of %s in %s", t.Unit, d.Symbol)
			}
		}
	}
	e, err := c.System().NewExpr(terms, exponents, factor)
	if err != nil {
		return unitexpr.Expr{}, errors.Wrapf(err, "unitdef: definition of %s", d.Symbol)
	}
	return e, nil
}

func (l *Loader) log() logrus.FieldLogger {
	if l.Log == nil {
		return logrus.StandardLogger()
	}
	return l.Log
}

// Load reads the catalog file at path using a default Loader.
func Load(path string) (*Catalog, error) { return NewLoader().Load(path) }

// Decode reads a catalog file from r using a default Loader.
func Decode(r io.Reader) (*Catalog, error) { return NewLoader().Decode(r) }
