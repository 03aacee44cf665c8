package astrocal

/*
Package astrocal provides unit-checked physical values.

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

	"github.com/soniakeys/unit"
	"golang.org/x/exp/constraints"
)

// Number is the set of Go numeric types a Value can be built from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Value is a magnitude in a Unit. The unit's factor is always 1: any pending factor is
// multiplied into the magnitude when the Value is built.
type Value struct {
	mag  float64 // mag is the magnitude in unit.
	unit Unit    // unit has factor 1.
}

// Of returns a Value of magnitude n in u, folding u's pending factor into the magnitude.
func Of[N Number](n N, u Unit) Value {
	f, u := u.split()
	return Value{mag: float64(n) * f, unit: u}
}

// OfRat returns a Value from an exact rational magnitude; the product with u's factor is
// formed exactly before rounding to float64.
func OfRat(r *big.Rat, u Unit) Value {
	m, _ := new(big.Rat).Mul(r, u.Factor()).Float64()
	return Value{mag: m, unit: Unit{num: u.num, den: u.den}}
}

// AngleValue returns a in Radian.
func AngleValue(a unit.Angle) Value {
	return Of(a.Rad(), UnitOf(Radian))
}

// TimeValue returns t in Second.
func TimeValue(t unit.Time) Value {
	return Of(t.Sec(), UnitOf(Second))
}

// Magnitude returns the magnitude in the value's unit.
func (v Value) Magnitude() float64 { return v.mag }

// Unit returns the value's unit (factor 1).
func (v Value) Unit() Unit { return v.unit }

// fold builds a Value from a magnitude expressed before r's factor was applied.
func fold(mag float64, r Unit) Value {
	f, r := r.split()
	return Value{mag: mag * f, unit: r}
}

// Add returns v + o in o's unit.
func (v Value) Add(o Value) (Value, error) {
	r, err := v.unit.Add(o.unit)
	if err != nil {
		return Value{}, err
	}
	f, r := r.split()
	return Value{mag: v.mag*f + o.mag, unit: r}, nil
}

// Sub returns v - o in o's unit.
func (v Value) Sub(o Value) (Value, error) {
	r, err := v.unit.Sub(o.unit)
	if err != nil {
		return Value{}, err
	}
	f, r := r.split()
	return Value{mag: v.mag*f - o.mag, unit: r}, nil
}

// Mul returns v * o.
func (v Value) Mul(o Value) (Value, error) {
	r, err := v.unit.Mul(o.unit)
	if err != nil {
		return Value{}, err
	}
	return fold(v.mag*o.mag, r), nil
}

// Div returns v / o.
func (v Value) Div(o Value) (Value, error) {
	r, err := v.unit.Div(o.unit)
	if err != nil {
		return Value{}, err
	}
	return fold(v.mag/o.mag, r), nil
}

// Scale returns v with its magnitude multiplied by the dimensionless k.
func (v Value) Scale(k float64) Value {
	return Value{mag: v.mag * k, unit: v.unit}
}

// Shrink returns v with its magnitude divided by the dimensionless k.
func (v Value) Shrink(k float64) Value {
	return Value{mag: v.mag / k, unit: v.unit}
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{mag: -v.mag, unit: v.unit}
}

// Pow returns v^n, raising both magnitude and unit.
func (v Value) Pow(n int) Value {
	return fold(math.Pow(v.mag, float64(n)), v.unit.Pow(n))
}

// In converts v into u, which must be additive-compatible with v's unit.
func (v Value) In(u Unit) (Value, error) {
	return v.Add(Of(0, u))
}

// Equal reports whether v and o have equal magnitudes and structurally equal units.
func (v Value) Equal(o Value) bool {
	return v.mag == o.mag && v.unit.Equal(o.unit)
}

// Equivalent reports whether v and o denote the same quantity within a relative tolerance,
// converting v into o's unit first. Incompatible units are never equivalent.
func (v Value) Equivalent(o Value, tol float64) bool {
	c, err := v.In(o.unit)
	if err != nil {
		return false
	}
	return math.Abs(c.mag-o.mag) <= tol*math.Max(1, math.Abs(o.mag))
}

// Angle returns v as a unit.Angle, converting to radians.
func (v Value) Angle() (unit.Angle, error) {
	c, err := v.In(UnitOf(Radian))
	if err != nil {
		return 0, fmt.Errorf("angle of %s: %w", v, err)
	}
	return unit.Angle(c.mag), nil
}

// Duration returns v as a unit.Time, converting to seconds.
func (v Value) Duration() (unit.Time, error) {
	c, err := v.In(UnitOf(Second))
	if err != nil {
		return 0, fmt.Errorf("duration of %s: %w", v, err)
	}
	return unit.Time(c.mag), nil
}

func (v Value) String() string {
	if v.unit.IsDimensionless() {
		return fmt.Sprintf("%g", v.mag)
	}
	return fmt.Sprintf("%g (%s)", v.mag, v.unit)
}
