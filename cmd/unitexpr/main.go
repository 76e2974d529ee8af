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

// Command unitexpr inspects and converts the units of a unit catalog.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/unitexpr/unitexprutil"
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:  true,
		DisableSorting: true,
	})
}

func main() {
	if err := unitexprutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
