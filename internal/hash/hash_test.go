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

package hash

import "testing"

func TestHash(t *testing.T) {
	a := [][3]string{{"m", "meter", "length"}, {"s", "second", "time"}}
	b := [][3]string{{"m", "meter", "length"}, {"s", "second", "time"}}
	c := [][3]string{{"s", "second", "time"}, {"m", "meter", "length"}}
	if Hash(a) != Hash(b) {
		t.Errorf("equal values: %s != %s", Hash(a), Hash(b))
	}
	if Hash(a) == Hash(c) {
		t.Errorf("order should change the fingerprint: %s", Hash(a))
	}
	if len(Hash(a)) != 16 {
		t.Errorf("fingerprint %q should have 16 hex digits", Hash(a))
	}
}

func TestHashUnencodable(t *testing.T) {
	type private struct{ x int }
	h1 := Hash(private{x: 1})
	h2 := Hash(private{x: 2})
	if h1 == h2 {
		t.Errorf("spew fallback should distinguish values: %s", h1)
	}
}
