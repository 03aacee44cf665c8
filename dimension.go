package astrocal

/*
Package astrocal provides named physical dimensions.

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

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Dimension is a named base unit of one Kind, with its exact ratio to the kind's canonical
// unit (Radian, Meter or Second). Dimensions are immutable and compared by name, kind and ratio.
type Dimension struct {
	kind  Kind     // kind is the physical kind.
	ratio *big.Rat // ratio is the size of one unit in canonical units; never exposed.
	name  string   // name identifies the dimension in conflicts, equality and output.
}

// Named dimensions. The canonical unit of each kind has ratio 1.
var (
	Radian    = mustDimension(Angle, big.NewRat(1, 1), "Radian")
	Degree    = mustDimension(Angle, new(big.Rat).SetFloat64(math.Pi/180), "Degree")
	Arcminute = mustDimension(Angle, new(big.Rat).SetFloat64(math.Pi/10800), "Arcminute")
	Arcsecond = mustDimension(Angle, new(big.Rat).SetFloat64(math.Pi/648000), "Arcsecond")

	Meter     = mustDimension(Distance, big.NewRat(1, 1), "Meter")
	Kilometer = mustDimension(Distance, big.NewRat(1000, 1), "Kilometer")
	AU        = mustDimension(Distance, big.NewRat(149597870700, 1), "AU")

	Second  = mustDimension(Time, big.NewRat(1, 1), "Second")
	Minute  = mustDimension(Time, big.NewRat(60, 1), "Minute")
	Hour    = mustDimension(Time, big.NewRat(3600, 1), "Hour")
	Day     = mustDimension(Time, big.NewRat(86400, 1), "Day")
	Year    = mustDimension(Time, big.NewRat(31557600, 1), "Year")
	Century = mustDimension(Time, big.NewRat(3155760000, 1), "Century")
)

var namedDimensions = []*Dimension{
	Radian, Degree, Arcminute, Arcsecond,
	Meter, Kilometer, AU,
	Second, Minute, Hour, Day, Year, Century,
}

// NewDimension defines a dimension outside the named set.
//
// Parameters:
//   - kind: the physical kind.
//   - ratio: size of one unit in the kind's canonical unit; copied.
//   - name: identifier; must not reuse the name of a named dimension, ignoring case.
//
// Returns:
//   - *Dimension: the new dimension.
//   - error: ErrDimensionMismatch for an unknown kind, ErrRange for a non-positive ratio or empty name,
//     ErrUnitConflict for a name already taken by a named dimension.
func NewDimension(kind Kind, ratio *big.Rat, name string) (*Dimension, error) {
	if d, err := DimensionByName(name); err == nil {
		return nil, fmt.Errorf("new dimension %q: %w: name taken by %v %s", name, ErrUnitConflict, d.kind, d.name)
	}
	return newDimension(kind, ratio, name)
}

func newDimension(kind Kind, ratio *big.Rat, name string) (*Dimension, error) {
	if kind < Angle || kind > Time {
		return nil, fmt.Errorf("new dimension %q: %w: %v", name, ErrDimensionMismatch, kind)
	}
	if ratio == nil || ratio.Sign() <= 0 || name == "" {
		return nil, fmt.Errorf("new dimension %q: ratio must be positive and name set: %w", name, ErrRange)
	}
	return &Dimension{kind: kind, ratio: new(big.Rat).Set(ratio), name: name}, nil
}

// mustDimension builds the named dimensions. It bypasses the name registry, which is
// built from its results.
func mustDimension(kind Kind, ratio *big.Rat, name string) *Dimension {
	d, err := newDimension(kind, ratio, name)
	if err != nil {
		panic(err)
	}
	return d
}

// DimensionByName returns the named dimension (case-insensitive), e.g. "kilometer".
func DimensionByName(name string) (*Dimension, error) {
	for _, d := range namedDimensions {
		if strings.EqualFold(d.name, strings.TrimSpace(name)) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("dimension %q: %w", name, ErrUnknownUnit)
}

// Kind returns the dimension's physical kind.
func (d *Dimension) Kind() Kind { return d.kind }

// Name returns the dimension's name.
func (d *Dimension) Name() string { return d.name }

// Ratio returns a copy of the dimension's ratio to its canonical unit.
func (d *Dimension) Ratio() *big.Rat { return new(big.Rat).Set(d.ratio) }

func (d *Dimension) String() string { return d.name }

// Pow returns the term d^exp.
func (d *Dimension) Pow(exp int) Term { return Term{Dimension: d, Exp: exp} }

// Term is one factor d^Exp of a derived unit.
type Term struct {
	Dimension *Dimension
	Exp       int
}

// ratio returns the term's ratio to canonical units, the dimension ratio raised to Exp.
func (t Term) ratio() *big.Rat {
	return ratPow(t.Dimension.ratio, t.Exp)
}

// sameDimension reports whether both terms hold the same unit: same name, kind and ratio.
// Two user dimensions sharing a name but not a ratio are different units.
func (t Term) sameDimension(o Term) bool {
	a, b := t.Dimension, o.Dimension
	return a == b || (a.name == b.name && a.kind == b.kind && a.ratio.Cmp(b.ratio) == 0)
}

func (t Term) String() string {
	if t.Exp == 1 {
		return t.Dimension.name
	}
	return fmt.Sprintf("%s^%d", t.Dimension.name, t.Exp)
}

// ratPow returns r^n for any integer n; r must be non-zero when n is negative.
func ratPow(r *big.Rat, n int) *big.Rat {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	if n < 0 {
		num, den, n = den, num, -n
	}
	e := big.NewInt(int64(n))
	num.Exp(num, e, nil)
	den.Exp(den, e, nil)
	return new(big.Rat).SetFrac(num, den)
}
