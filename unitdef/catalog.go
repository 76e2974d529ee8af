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

// Package unitdef holds catalogs of named units and reads them from TOML
// catalog files.
package unitdef

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spatialmodel/unitexpr"
)

var (
	// ErrUnknownUnit is returned when a symbol is not registered in a
	// catalog.
	ErrUnknownUnit = errors.New("unitdef: unknown unit")

	// ErrDuplicateUnit is returned when a symbol is registered twice.
	ErrDuplicateUnit = errors.New("unitdef: unit already registered")
)

// Catalog is an ordered registry of the units of one unit system, keyed by
// symbol. The base units of the system are always registered first.
type Catalog struct {
	// Name describes the catalog, e.g. "SI".
	Name string

	sys      *unitexpr.System
	units    []*unitexpr.Unit
	bySymbol map[string]*unitexpr.Unit
}

// NewCatalog returns a catalog holding the base units of sys.
func NewCatalog(name string, sys *unitexpr.System) *Catalog {
	c := &Catalog{
		Name:     name,
		sys:      sys,
		bySymbol: make(map[string]*unitexpr.Unit),
	}
	for _, u := range sys.BaseUnits() {
		c.units = append(c.units, u)
		c.bySymbol[u.Symbol()] = u
	}
	return c
}

// System returns the unit system of c.
func (c *Catalog) System() *unitexpr.System { return c.sys }

// Len returns the number of registered units.
func (c *Catalog) Len() int { return len(c.units) }

// Units returns the registered units in registration order.
func (c *Catalog) Units() []*unitexpr.Unit {
	o := make([]*unitexpr.Unit, len(c.units))
	copy(o, c.units)
	return o
}

// Lookup returns the unit registered under symbol.
func (c *Catalog) Lookup(symbol string) (*unitexpr.Unit, error) {
	u, ok := c.bySymbol[symbol]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownUnit, "%q in catalog %s", symbol, c.Name)
	}
	return u, nil
}

// MustLookup is like Lookup but panics if symbol is not registered.
func (c *Catalog) MustLookup(symbol string) *unitexpr.Unit {
	u, err := c.Lookup(symbol)
	if err != nil {
		panic(err)
	}
	return u
}

// Add registers u. u must belong to the system of c and its symbol must not
// be registered yet.
func (c *Catalog) Add(u *unitexpr.Unit) error {
	if u == nil || u.System() != c.sys {
		return fmt.Errorf("unitdef: unit %v does not belong to the system of catalog %s", u, c.Name)
	}
	if _, ok := c.bySymbol[u.Symbol()]; ok {
		return errors.Wrapf(ErrDuplicateUnit, "%q in catalog %s", u.Symbol(), c.Name)
	}
	c.units = append(c.units, u)
	c.bySymbol[u.Symbol()] = u
	return nil
}

// Define declares a derived unit from def and registers it.
func (c *Catalog) Define(symbol, name, quantity string, def unitexpr.UnitLike) (*unitexpr.Unit, error) {
	if _, ok := c.bySymbol[symbol]; ok {
		return nil, errors.Wrapf(ErrDuplicateUnit, "%q in catalog %s", symbol, c.Name)
	}
	u, err := c.sys.NewUnit(symbol, name, quantity, def)
	if err != nil {
		return nil, errors.Wrapf(err, "unitdef: defining %s", symbol)
	}
	return u, c.Add(u)
}
