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
	"bytes"
	"math"
	"strconv"
	"strings"
)

// String renders e as factor*term1**exp1*term2**exp2..., collapsing
// repeated terms. Exponents equal to 1 and a factor equal to 1 are omitted.
// An expression whose terms all cancel renders as its factor alone.
func (e Expr) String() string {
	b := new(bytes.Buffer)
	e.Dexpr().Each(func(u *Unit, x float64) {
		writeTerm(b, u.sym.symbol, x)
	})
	return withFactor(b, e.factor)
}

// BaseString renders e in terms of the base unit symbols of its system,
// scaled by its base factor.
func (e Expr) BaseString() string {
	if e.sys == nil {
		return formatFactor(e.baseFactor)
	}
	return withFactor(baseTerms(e.sys, e.baseExponents), e.baseFactor)
}

// dimensionString renders a base-exponent vector, using 1 for the
// dimensionless vector.
func dimensionString(s *System, exponents []float64) string {
	b := baseTerms(s, exponents)
	if b.Len() == 0 {
		return "1"
	}
	return b.String()[1:]
}

func baseTerms(s *System, exponents []float64) *bytes.Buffer {
	b := new(bytes.Buffer)
	for i, x := range exponents {
		if x != 0 {
			writeTerm(b, s.symbols[i].symbol, x)
		}
	}
	return b
}

// writeTerm appends *symbol or *symbol**exponent to b.
func writeTerm(b *bytes.Buffer, symbol string, exponent float64) {
	b.WriteByte('*')
	b.WriteString(symbol)
	if exponent != 1 {
		b.WriteString("**")
		b.WriteString(formatExponent(exponent))
	}
}

// withFactor prefixes the terms in b, which start with '*', with factor.
func withFactor(b *bytes.Buffer, factor float64) string {
	if b.Len() == 0 {
		return formatFactor(factor)
	}
	terms := b.String()[1:]
	if factor == 1 {
		return terms
	}
	return formatFactor(factor) + "*" + terms
}

// formatFactor returns the shortest text representing f exactly, always
// marked as a real number: 10.0, 0.01, 1e-05, 1.5e+16.
func formatFactor(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(s[strings.LastIndexByte(s, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return s
	}
	s = strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// formatExponent renders integral exponents without a decimal point.
func formatExponent(x float64) string {
	if x == math.Trunc(x) && math.Abs(x) < 1e15 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return formatFactor(x)
}
