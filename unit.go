package astrocal

/*
Package astrocal provides derived units built from named dimensions.

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
	"sort"
	"strconv"
	"strings"
)

// Unit is a product of dimension terms with integer exponents and a pending scalar factor.
//
// Numerator terms have positive exponents and denominator terms negative ones; both keep
// the order they were built in. The zero value is the dimensionless unit with factor 1.
// Units are immutable: operations return new units.
type Unit struct {
	num    []Term   // num holds the terms with positive exponent.
	den    []Term   // den holds the terms with negative exponent.
	factor *big.Rat // factor is the pending multiplier; nil means 1.
}

// Dimensionless returns the unit with no terms and factor 1.
func Dimensionless() Unit { return Unit{} }

// UnitOf returns the unit consisting of d alone.
func UnitOf(d *Dimension) Unit {
	return Unit{num: []Term{d.Pow(1)}}
}

// Per returns the unit num/den, e.g. Per(Kilometer, Hour).
func Per(num, den *Dimension) Unit {
	return Unit{num: []Term{num.Pow(1)}, den: []Term{den.Pow(-1)}}
}

// NewUnit builds a unit from numerator and denominator terms.
// A denominator term d^n divides by d^n, so Exp is given as a positive power there.
// Each term lands in the numerator or denominator by the sign of its effective exponent,
// zero exponents are dropped, and order is otherwise preserved.
func NewUnit(numerator, denominator []Term) Unit {
	terms := make([]Term, 0, len(numerator)+len(denominator))
	terms = append(terms, numerator...)
	for _, t := range denominator {
		terms = append(terms, Term{Dimension: t.Dimension, Exp: -t.Exp})
	}
	return unitFromTerms(terms, nil)
}

// ParseUnit reads a unit written the way String prints one without a factor, e.g.
// "Meter^2/Second" or "Kilometer*Hour^-1". "·" and "*" both separate terms, a numerator
// of "1" is empty, and names are looked up with DimensionByName.
//
// Returns:
//   - Unit: the parsed unit with factor 1.
//   - error: ErrUnknownUnit for an unknown name or a malformed exponent.
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Dimensionless(), nil
	}
	numPart, denPart, hasDen := strings.Cut(s, "/")
	num, err := parseTerms(numPart)
	if err != nil {
		return Unit{}, fmt.Errorf("parse unit %q: %w", s, err)
	}
	var den []Term
	if hasDen {
		if den, err = parseTerms(denPart); err != nil {
			return Unit{}, fmt.Errorf("parse unit %q: %w", s, err)
		}
	}
	return NewUnit(num, den), nil
}

func parseTerms(s string) ([]Term, error) {
	s = strings.TrimSpace(s)
	if s == "1" {
		return nil, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '*' || r == '·' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty term list: %w", ErrUnknownUnit)
	}
	terms := make([]Term, 0, len(fields))
	for _, f := range fields {
		name, exp, hasExp := strings.Cut(f, "^")
		n := 1
		if hasExp {
			var err error
			if n, err = strconv.Atoi(strings.TrimSpace(exp)); err != nil {
				return nil, fmt.Errorf("exponent %q: %w", exp, ErrUnknownUnit)
			}
		}
		d, err := DimensionByName(name)
		if err != nil {
			return nil, err
		}
		terms = append(terms, d.Pow(n))
	}
	return terms, nil
}

// unitFromTerms partitions terms by exponent sign into a new unit carrying factor.
func unitFromTerms(terms []Term, factor *big.Rat) Unit {
	u := Unit{factor: factor}
	for _, t := range terms {
		switch {
		case t.Exp > 0:
			u.num = append(u.num, t)
		case t.Exp < 0:
			u.den = append(u.den, t)
		}
	}
	return u
}

// Numerator returns a copy of the positive-exponent terms.
func (u Unit) Numerator() []Term { return append([]Term(nil), u.num...) }

// Denominator returns a copy of the negative-exponent terms.
func (u Unit) Denominator() []Term { return append([]Term(nil), u.den...) }

// Factor returns a copy of the pending factor.
func (u Unit) Factor() *big.Rat {
	if u.factor == nil {
		return big.NewRat(1, 1)
	}
	return new(big.Rat).Set(u.factor)
}

// IsDimensionless reports whether the unit has no terms. The factor is not considered.
func (u Unit) IsDimensionless() bool { return len(u.num) == 0 && len(u.den) == 0 }

// Scale returns u with its pending factor multiplied by r.
func (u Unit) Scale(r *big.Rat) Unit {
	return Unit{num: u.num, den: u.den, factor: new(big.Rat).Mul(u.Factor(), r)}
}

// terms returns numerator then denominator terms in a new slice.
func (u Unit) terms() []Term {
	return append(u.Numerator(), u.den...)
}

// split returns the pending factor as a float64 and u with factor reset to 1.
func (u Unit) split() (float64, Unit) {
	f, _ := u.Factor().Float64()
	return f, Unit{num: u.num, den: u.den}
}

// Equal reports whether u and o have the same numerator and denominator terms in the same order.
// Reordered but equivalent units are not equal; compare Canonical forms for that.
// Factors are ignored.
func (u Unit) Equal(o Unit) bool {
	return termsEqual(u.num, o.num) && termsEqual(u.den, o.den)
}

func termsEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Exp != b[i].Exp || !a[i].sameDimension(b[i]) {
			return false
		}
	}
	return true
}

// Canonical returns a copy of u with its numerator and denominator each sorted by kind then name.
func (u Unit) Canonical() Unit {
	c := Unit{num: u.Numerator(), den: u.Denominator(), factor: u.factor}
	for _, ts := range [][]Term{c.num, c.den} {
		sort.SliceStable(ts, func(i, j int) bool {
			if ts[i].Dimension.kind != ts[j].Dimension.kind {
				return ts[i].Dimension.kind < ts[j].Dimension.kind
			}
			return ts[i].Dimension.name < ts[j].Dimension.name
		})
	}
	return c
}

// String formats the unit as "Meter^2/Second", with any pending factor first ("1000 * Meter").
func (u Unit) String() string {
	var sb strings.Builder
	if u.factor != nil && u.factor.Cmp(big.NewRat(1, 1)) != 0 {
		sb.WriteString(u.factor.RatString())
		sb.WriteString(" * ")
	}
	for i, t := range u.num {
		if i > 0 {
			sb.WriteString("·")
		}
		sb.WriteString(t.String())
	}
	if len(u.den) > 0 {
		if len(u.num) == 0 {
			sb.WriteString("1")
		}
		sb.WriteString("/")
		for i, t := range u.den {
			if i > 0 {
				sb.WriteString("·")
			}
			sb.WriteString(Term{Dimension: t.Dimension, Exp: -t.Exp}.String())
		}
	}
	return sb.String()
}
