/*
Package astrocal provides the time-scale and physical-unit foundations used to
evaluate VSOP2013 and LEA-406 series for Solar System bodies.

The package has two independent halves:

  - Time: an Instant is a Julian Day tagged with a time scale (UTC, TAI, TT or
    TDB). Instants convert between scales in place and to and from civil
    calendar fields. UTC and TAI are related through a historical ΔT model,
    TAI and TT through a fixed offset, TT and TDB through the periodic
    relativistic correction.
  - Units: a Value is a magnitude bound to a Unit built from named dimensions
    (Degree, Kilometer, Day, ...). Arithmetic on values checks dimensional
    consistency and folds conversion factors into the magnitude.

Usage:

 1. Build an instant and convert it for a series evaluator:
    ```go
    jd, err := astrocal.FromCalendar(astrocal.Calendar{Year: 2025, Month: 8, Day: 8})
    if err != nil {
        log.Fatal(err)
    }
    if _, err := jd.Convert(astrocal.TDB); err != nil {
        log.Fatal(err)
    }
    t := jd.JulianMillennia() // argument for VSOP2013
    ```

 2. Combine physical values:
    ```go
    d, err := astrocal.Of(1, astrocal.UnitOf(astrocal.Kilometer)).Add(astrocal.Of(500, astrocal.UnitOf(astrocal.Meter)))
    if err != nil {
        log.Fatal(err)
    }
    fmt.Println(d) // 1500 (Meter)
    ```

License:
This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.
*/

// Package astrocal provides time-scale conversion and unit-checked physical values for ephemeris work.
package astrocal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRange is returned when a year, date or argument lies outside the modeled domain.
var ErrRange = errors.New("value outside modeled range")

// ErrInvalidCalendar is returned when civil calendar fields do not name a real instant.
var ErrInvalidCalendar = errors.New("invalid calendar fields")

// ErrUnknownScale is returned when a time scale name or value is not recognized.
var ErrUnknownScale = errors.New("unknown time scale")

// ErrNumericDivergence is returned when an iterative solver exceeds its iteration budget.
var ErrNumericDivergence = errors.New("numeric solver did not converge")

// ErrDimensionMismatch is returned when two terms of different kinds are cast into each other.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrUnitConflict is returned when one operand holds two differently named dimensions of the same kind.
var ErrUnitConflict = errors.New("conflicting units of the same kind")

// ErrExponentMismatch is returned when additive operands carry a kind with different exponents.
var ErrExponentMismatch = errors.New("exponent mismatch")

// ErrExtraUnit is returned when one additive operand carries a kind the other lacks.
var ErrExtraUnit = errors.New("extra unit")

// ErrUnknownUnit is returned when a dimension name is not registered.
var ErrUnknownUnit = errors.New("unknown unit")

// Scale identifies the time scale under which an Instant's Julian Day is interpreted.
type Scale int

const (
	// UTC is Coordinated Universal Time, the civil leap-second-adjusted scale.
	UTC Scale = iota
	// TAI is International Atomic Time.
	TAI
	// TT is Terrestrial Time, TAI plus a fixed 32.184 seconds.
	TT
	// TDB is Barycentric Dynamical Time, TT plus a periodic relativistic correction.
	TDB
)

var scaleNames = [...]string{UTC: "UTC", TAI: "TAI", TT: "TT", TDB: "TDB"}

// Valid reports whether s is one of the four defined scales.
func (s Scale) Valid() bool {
	return s >= UTC && s <= TDB
}

func (s Scale) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scale(%d)", int(s))
	}
	return scaleNames[s]
}

// ParseScale returns the Scale named by name, ignoring case.
//
// Returns:
//   - Scale: the matching scale.
//   - error: ErrUnknownScale if name matches no scale.
func ParseScale(name string) (Scale, error) {
	for i, n := range scaleNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Scale(i), nil
		}
	}
	return 0, fmt.Errorf("parse scale %q: %w", name, ErrUnknownScale)
}

// Kind is the physical kind of a dimension. Only dimensions of equal kind convert into each other.
type Kind int

const (
	// Angle covers Radian, Degree, Arcminute and Arcsecond.
	Angle Kind = iota + 1
	// Distance covers Meter, Kilometer and AU.
	Distance
	// Time covers Second through Century.
	Time
)

func (k Kind) String() string {
	switch k {
	case Angle:
		return "Angle"
	case Distance:
		return "Distance"
	case Time:
		return "Time"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
