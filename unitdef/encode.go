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

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// File returns the catalog file layout of c. Every derived unit is written
// with its defining expression, so its terms must be registered in c
// before it.
func (c *Catalog) File() (*File, error) {
	f := &File{Name: c.Name}
	for _, s := range c.sys.Symbols() {
		f.Base = append(f.Base, BaseDef{Symbol: s.Symbol(), Name: s.Name(), Quantity: s.Quantity()})
	}
	seen := make(map[string]bool, len(c.units))
	for _, u := range c.units {
		seen[u.Symbol()] = true
		if c.sys.IsBaseUnit(u) {
			continue
		}
		d := UnitDef{
			Symbol:   u.Symbol(),
			Name:     u.Name(),
			Quantity: u.Quantity(),
			Factor:   u.SubFactor(),
		}
		exponents := u.SubExponents()
		for i, t := range u.SubTerms() {
			if !seen[t.Symbol()] {
				return nil, errors.Wrapf(ErrUnknownUnit, "%q used by %s in catalog %s", t.Symbol(), u.Symbol(), c.Name)
			}
			d.Terms = append(d.Terms, TermDef{Unit: t.Symbol(), Exponent: exponents[i]})
		}
		f.Unit = append(f.Unit, d)
	}
	return f, nil
}

// Encode writes c to w as a catalog file that Decode reads back.
func (c *Catalog) Encode(w io.Writer) error {
	f, err := c.File()
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return errors.Wrap(err, "unitdef: encoding catalog")
	}
	return nil
}
