package astrocal

/*
Package astrocal provides internal definitions shared by the time and unit code.

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

// Internal definitions.
//
// This file contains data structures used by the package that are not part of its API.

// ΔT model notes:
//
// The model is an ordered list of segments, each owning the years strictly below its
// bound that no earlier segment claims. The last bound is +Inf so every finite year is
// covered exactly once. A segment evaluates a chain of functions, feeding the year to the
// first and each result to the next; the chain is typically an argument transform
// followed by a polynomial:
//
//	year < -500          u = (year-1820)/100   ΔT = -20 + 32u²
//	-500 <= year < 500   u = year/100          6th degree polynomial
//	500 <= year < 1600   u = (year-1000)/100   6th degree polynomial
//	1600 ... 2050        u = year - origin     polynomials of degree 2 to 7
//	2050 <= year < 2150  single expression in year
//	year >= 2150         u = (year-1820)/100   ΔT = -20 + 32u²

// yearFunc is one link of a ΔT segment's chain.
type yearFunc func(float64) float64

// deltaTSegment is one bucket of the ΔT model.
type deltaTSegment struct {
	until float64    // until is the exclusive upper bound of the segment, in decimal years.
	chain []yearFunc // chain is applied in order to the year; the last result is ΔT in seconds.
}

// scaleStep moves an instant one scale along the UTC-TAI-TT-TDB chain.
// The instant is base+off days; the step returns the new offset so that the full
// Julian Day is only rounded once, when the conversion ends.
type scaleStep func(base, off float64) (float64, error)

// Unit merge notes:
//
// Binary unit operations first reduce both operands to one slot per Kind. The source
// operand (left) is scanned first, numerator then denominator, then the target operand
// (right). Within one operand a repeated dimension adds its exponent to the slot, while a
// different dimension of an already filled kind is a conflict. The kinds are kept in
// first-appearance order so results are deterministic.

// mergeSlot holds the source and target terms of one Kind; either may be nil.
type mergeSlot struct {
	src *Term // src is the left operand's accumulated term of this kind.
	dst *Term // dst is the right operand's accumulated term of this kind.
}

// mergeTable is the result of merging two units.
type mergeTable struct {
	kinds []Kind              // kinds lists the kinds in first-appearance order.
	slots map[Kind]*mergeSlot // slots holds the pair of terms for every kind in kinds.
}
