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
	"regexp"

	"github.com/pkg/errors"
)

var symbolRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Symbol identifies one unit: the symbol displayed in unit expressions,
// the unit name, and the physical quantity it measures.
// Symbols are comparable values.
type Symbol struct {
	symbol, name, quantity string
}

// NewSymbol returns a new Symbol. symbol must be a bare identifier: a letter
// or underscore followed by letters, digits or underscores.
//
//	m, err := NewSymbol("m", "meter", "length")
func NewSymbol(symbol, name, quantity string) (Symbol, error) {
	if !IsValidSymbol(symbol) {
		return Symbol{}, errors.Wrapf(ErrInvalidSymbol, "%q is not a valid identifier", symbol)
	}
	return Symbol{symbol: symbol, name: name, quantity: quantity}, nil
}

// IsValidSymbol reports whether s can be used as a unit symbol.
func IsValidSymbol(s string) bool { return symbolRegexp.MatchString(s) }

// Symbol returns the symbol used when displaying unit expressions.
func (s Symbol) Symbol() string { return s.symbol }

// Name returns the unit name, e.g. "meter".
func (s Symbol) Name() string { return s.name }

// Quantity returns the measured quantity, e.g. "length".
func (s Symbol) Quantity() string { return s.quantity }

func (s Symbol) String() string { return s.symbol }
