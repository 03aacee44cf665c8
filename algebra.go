package astrocal

/*
Package astrocal provides arithmetic over units.

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
	"math/big"
)

// Cast returns the factor to.ratio / from.ratio relating two terms of the same kind,
// each ratio raised to its term's exponent.
//
// Returns:
//   - *big.Rat: the exact conversion ratio.
//   - error: ErrDimensionMismatch if the kinds differ.
func Cast(from, to Term) (*big.Rat, error) {
	if from.Dimension.kind != to.Dimension.kind {
		return nil, fmt.Errorf("cast %s to %s: %w: %v vs %v", from, to, ErrDimensionMismatch, from.Dimension.kind, to.Dimension.kind)
	}
	return new(big.Rat).Quo(to.ratio(), from.ratio()), nil
}

// merge reduces from and to into one slot per kind, scanning from before to.
func merge(from, to Unit) (*mergeTable, error) {
	tbl := &mergeTable{slots: make(map[Kind]*mergeSlot)}
	if err := tbl.collect(from, false); err != nil {
		return nil, fmt.Errorf("merge %s with %s: %w", from, to, err)
	}
	if err := tbl.collect(to, true); err != nil {
		return nil, fmt.Errorf("merge %s with %s: %w", from, to, err)
	}
	return tbl, nil
}

func (tbl *mergeTable) collect(u Unit, target bool) error {
	for _, t := range u.terms() {
		kind := t.Dimension.kind
		slot, ok := tbl.slots[kind]
		if !ok {
			slot = &mergeSlot{}
			tbl.slots[kind] = slot
			tbl.kinds = append(tbl.kinds, kind)
		}
		cur := &slot.src
		if target {
			cur = &slot.dst
		}
		switch {
		case *cur == nil:
			term := t
			*cur = &term
		case (*cur).sameDimension(t):
			(*cur).Exp += t.Exp
		default:
			return fmt.Errorf("%w: %s and %s are both %v", ErrUnitConflict, (*cur).Dimension, t.Dimension, kind)
		}
	}
	return nil
}

// Add returns the unit of a sum u + o. The result has o's terms; its factor is the
// multiplier that converts a magnitude in u into o. Every kind must appear on both sides
// with the same exponent. o's own pending factor is not carried.
//
// Returns:
//   - Unit: o's terms with the conversion factor.
//   - error: ErrUnitConflict, ErrExtraUnit or ErrExponentMismatch.
func (u Unit) Add(o Unit) (Unit, error) {
	return u.additive("+", o)
}

// Sub returns the unit of a difference u - o; see Add.
func (u Unit) Sub(o Unit) (Unit, error) {
	return u.additive("-", o)
}

func (u Unit) additive(op string, o Unit) (Unit, error) {
	tbl, err := merge(u, o)
	if err != nil {
		return Unit{}, err
	}
	factor := u.Factor()
	for _, kind := range tbl.kinds {
		slot := tbl.slots[kind]
		switch {
		case slot.src == nil:
			return Unit{}, fmt.Errorf("%s %s %s: %w %s", u, op, o, ErrExtraUnit, slot.dst)
		case slot.dst == nil:
			return Unit{}, fmt.Errorf("%s %s %s: %w %s", u, op, o, ErrExtraUnit, slot.src)
		case slot.src.Exp != slot.dst.Exp:
			return Unit{}, fmt.Errorf("%s %s %s: %w between %s and %s", u, op, o, ErrExponentMismatch, slot.src, slot.dst)
		}
		ratio, err := Cast(*slot.src, *slot.dst)
		if err != nil {
			return Unit{}, err
		}
		factor.Quo(factor, ratio)
	}
	return Unit{num: o.Numerator(), den: o.Denominator(), factor: factor}, nil
}

// Mul returns the unit of a product u * o. Terms of the same dimension combine by adding
// exponents. When both sides hold different dimensions of one kind, u's term is converted
// into o's dimension and the conversion lands in the factor. Kinds whose exponents cancel
// disappear.
//
// Returns:
//   - Unit: the product unit with its pending factor.
//   - error: ErrUnitConflict if an operand holds two dimensions of one kind.
func (u Unit) Mul(o Unit) (Unit, error) {
	tbl, err := merge(u, o)
	if err != nil {
		return Unit{}, err
	}
	factor := new(big.Rat).Mul(u.Factor(), o.Factor())
	terms := make([]Term, 0, len(tbl.kinds))
	for _, kind := range tbl.kinds {
		slot := tbl.slots[kind]
		switch {
		case slot.src == nil:
			terms = append(terms, *slot.dst)
		case slot.dst == nil:
			terms = append(terms, *slot.src)
		default:
			if !slot.src.sameDimension(*slot.dst) {
				ratio, err := Cast(*slot.src, slot.dst.Dimension.Pow(slot.src.Exp))
				if err != nil {
					return Unit{}, err
				}
				factor.Quo(factor, ratio)
			}
			terms = append(terms, slot.dst.Dimension.Pow(slot.src.Exp+slot.dst.Exp))
		}
	}
	return unitFromTerms(terms, factor), nil
}

// Div returns the unit of a quotient u / o, the product of u with o^-1.
func (u Unit) Div(o Unit) (Unit, error) {
	return u.Mul(o.Pow(-1))
}

// Pow returns u^n: every exponent is multiplied by n and the factor raised to n.
func (u Unit) Pow(n int) Unit {
	terms := u.terms()
	for i := range terms {
		terms[i].Exp *= n
	}
	return unitFromTerms(terms, ratPow(u.Factor(), n))
}
