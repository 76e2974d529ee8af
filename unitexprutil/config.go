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

package unitexprutil

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/unitexpr"
	"github.com/spatialmodel/unitexpr/siunit"
	"github.com/spatialmodel/unitexpr/unitdef"
)

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("unitexpr: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// setLogLevel sets the level of the standard logger.
func setLogLevel(level string) error {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "unitexpr: invalid LogLevel")
	}
	logrus.SetLevel(l)
	return nil
}

// loadCatalog returns the catalog stored at path, or the SI catalog if
// path is empty.
func loadCatalog(path string) (*unitdef.Catalog, error) {
	if path == "" {
		return siunit.Catalog(), nil
	}
	l := &unitdef.Loader{Log: logrus.StandardLogger()}
	c, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"catalog": c.Name,
		"path":    path,
		"units":   c.Len(),
	}).Info("unitexpr loaded catalog")
	return c, nil
}

func lookupPair(c *unitdef.Catalog, a, b string) (*unitexpr.Unit, *unitexpr.Unit, error) {
	ua, err := c.Lookup(a)
	if err != nil {
		return nil, nil, err
	}
	ub, err := c.Lookup(b)
	if err != nil {
		return nil, nil, err
	}
	return ua, ub, nil
}

// convert returns the factor converting magnitudes expressed in from into
// magnitudes expressed in to.
func convert(from, to *unitexpr.Unit) (float64, error) {
	f, ok := unitexpr.ScalingFactor(from, to)
	if !ok {
		return 0, &unitexpr.OperationNotSupportedError{
			Left:     from,
			Right:    to,
			Operator: "->",
			Detail:   "The units are not proportional.",
		}
	}
	return f, nil
}

// order returns the operator relating the magnitudes of a and b.
func order(a, b *unitexpr.Unit) (string, error) {
	if unitexpr.Equal(a, b) {
		return "==", nil
	}
	less, err := unitexpr.Less(a, b)
	if err != nil {
		return "", err
	}
	if less {
		return "<", nil
	}
	return ">", nil
}

// formatValue formats v with prec significant digits, or with the
// shortest exact representation if prec is negative.
func formatValue(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}

// A Table holds a text representation of tabular data.
type Table [][]string

// Tabbed writes t as aligned columns.
func (t Table) Tabbed(w io.Writer) (n int, err error) {
	ww := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	var nn int
	for _, l := range t {
		for _, r := range l {
			nn, err = fmt.Fprint(ww, r+"\t")
			if err != nil {
				return
			}
			n += nn
		}
		nn, err = fmt.Fprint(ww, "\n")
		if err != nil {
			return
		}
		n += nn
	}
	return n, ww.Flush()
}

// unitTable describes every unit of c.
func unitTable(c *unitdef.Catalog) Table {
	t := Table{{"Symbol", "Name", "Quantity", "Definition", "Base"}}
	for _, u := range c.Units() {
		def := ""
		if !c.System().IsBaseUnit(u) {
			def = u.Expr().String()
		}
		t = append(t, []string{u.Symbol(), u.Name(), u.Quantity(), def, u.BaseString()})
	}
	return t
}
