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

// Package unitexprutil contains the command-line interface to the unit
// catalogs of package unitexpr.
package unitexprutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/unitexpr"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to unitexpr.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Catalog",
			usage: `
              Catalog specifies the path to a TOML unit catalog file. If it
              is empty, the built-in SI catalog is used. Environment
              variables in the path are expanded.`,
			shorthand:  "c",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel specifies the minimum severity of log messages:
              one of panic, fatal, error, warning, info or debug.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Precision",
			usage: `
              Precision specifies the number of significant digits of
              converted values. Negative values print the shortest
              representation that reads back exactly.`,
			shorthand:  "p",
			defaultVal: -1,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "format",
			usage: `
              format specifies the output format of the units command:
              "table" or "toml".`,
			defaultVal: "table",
			flagsets:   []*pflag.FlagSet{unitsCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("UNITEXPR")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(unitsCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(compareCmd)
	Root.AddCommand(baseCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "unitexpr",
	Short: "Inspect and convert units.",
	Long: `unitexpr inspects the units of a unit catalog and converts between them.
Use the subcommands specified below to access the functionality.

Units are referred to by their catalog symbols. The built-in catalog holds
the SI base units, the named derived SI units and the defining constants of
the SI. Other catalogs can be loaded from TOML files with the --Catalog flag.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'UNITEXPR_var' where 'var'
is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		if err := setConfig(); err != nil {
			return err
		}
		return setLogLevel(Cfg.GetString("LogLevel"))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of unitexpr.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "unitexpr v%s\n", unitexpr.Version)
	},
	DisableAutoGenTag: true,
}

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the units of the catalog.",
	Long: `units lists every unit of the catalog with its name, the quantity it
measures, its definition and its decomposition into base units. With
--format=toml, the catalog is written as a catalog file instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(Cfg.GetString("Catalog"))
		if err != nil {
			return err
		}
		switch f := Cfg.GetString("format"); f {
		case "table":
			_, err = unitTable(c).Tabbed(cmd.OutOrStdout())
			return err
		case "toml":
			return c.Encode(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unitexpr: invalid output format %q", f)
		}
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert FROM TO [VALUE]",
	Short: "Convert a value between two units.",
	Long: `convert prints the factor converting a magnitude expressed in unit FROM
into a magnitude expressed in unit TO, followed by VALUE (1 by default)
converted from FROM to TO. The units must be proportional.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(Cfg.GetString("Catalog"))
		if err != nil {
			return err
		}
		from, to, err := lookupPair(c, args[0], args[1])
		if err != nil {
			return err
		}
		value := 1.0
		if len(args) == 3 {
			if value, err = cast.ToFloat64E(args[2]); err != nil {
				return fmt.Errorf("unitexpr: invalid value %q", args[2])
			}
		}
		f, err := convert(from, to)
		if err != nil {
			return err
		}
		prec := Cfg.GetInt("Precision")
		fmt.Fprintf(cmd.OutOrStdout(), "1 %s = %s %s\n", from, formatValue(f, prec), to)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", formatValue(value, -1), from, formatValue(value*f, prec), to)
		return nil
	},
	DisableAutoGenTag: true,
}

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compare two units.",
	Long: `compare prints whether units A and B are proportional and, if they are,
how they are ordered by magnitude.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(Cfg.GetString("Catalog"))
		if err != nil {
			return err
		}
		a, b, err := lookupPair(c, args[0], args[1])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !unitexpr.ProportionalTo(a, b) {
			fmt.Fprintf(out, "%s and %s are not proportional: %s and %s\n", a, b, a.BaseString(), b.BaseString())
			return nil
		}
		op, err := order(a, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s and %s are proportional\n", a, b)
		fmt.Fprintf(out, "%s %s %s\n", a, op, b)
		return nil
	},
	DisableAutoGenTag: true,
}

var baseCmd = &cobra.Command{
	Use:   "base UNIT",
	Short: "Print the decomposition of a unit into base units.",
	Long: `base prints the definition of UNIT and its decomposition into the base
units of the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(Cfg.GetString("Catalog"))
		if err != nil {
			return err
		}
		u, err := c.Lookup(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s, %s)\n", u, u.Name(), u.Quantity())
		if !c.System().IsBaseUnit(u) {
			fmt.Fprintf(out, "  = %s\n", u.Expr())
		}
		fmt.Fprintf(out, "  = %s\n", u.BaseString())
		return nil
	},
	DisableAutoGenTag: true,
}
