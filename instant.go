package astrocal

/*
Package astrocal provides the scale-tagged Julian Day type.

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
)

// Instant is a Julian Day interpreted under a time scale.
//
// The zero value is JD 0 UTC. Convert updates both the Julian Day and the scale of its
// receiver; copy the Instant first (it is a plain value) to keep the original.
// An Instant is not safe for concurrent mutation.
type Instant struct {
	jd    float64 // jd is the Julian Day under scale.
	scale Scale   // scale is the time scale jd is expressed in.
}

// NewInstant returns an Instant for a raw Julian Day in the given scale.
//
// Returns:
//   - Instant: the tagged Julian Day.
//   - error: ErrUnknownScale for an undefined scale, ErrRange if jd is NaN or infinite.
func NewInstant(jd float64, scale Scale) (Instant, error) {
	if !scale.Valid() {
		return Instant{}, fmt.Errorf("new instant: %w: %v", ErrUnknownScale, scale)
	}
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return Instant{}, fmt.Errorf("new instant: JD %v: %w", jd, ErrRange)
	}
	return Instant{jd: jd, scale: scale}, nil
}

// FromUnix returns the UTC Instant for a count of seconds since 1970-01-01 00:00 UTC.
func FromUnix(epochSeconds float64) Instant {
	return Instant{jd: UnixEpochJD + epochSeconds/SecondsPerDay, scale: UTC}
}

// JD returns the Julian Day under the instant's current scale.
func (t Instant) JD() float64 { return t.jd }

// Scale returns the time scale the Julian Day is expressed in.
func (t Instant) Scale() Scale { return t.scale }

// Unix returns the Julian Day as seconds since the Unix epoch, without any scale conversion.
func (t Instant) Unix() float64 {
	return (t.jd - UnixEpochJD) * SecondsPerDay
}

// Convert re-expresses the receiver in the target scale, updating its Julian Day and scale together.
// It is a no-op when the receiver is already in target. On error the receiver is left unchanged.
//
// Parameters:
//   - target: the scale to convert to.
//
// Returns:
//   - Instant: a copy of the updated receiver.
//   - error: ErrUnknownScale, ErrRange (ΔT outside the calendar range) or ErrNumericDivergence.
func (t *Instant) Convert(target Scale) (Instant, error) {
	if t.scale == target {
		return *t, nil
	}
	jd, err := convertJD(t.jd, t.scale, target)
	if err != nil {
		return *t, err
	}
	t.jd, t.scale = jd, target
	return *t, nil
}

// In returns a copy of t expressed in the target scale, leaving t untouched.
func (t Instant) In(target Scale) (Instant, error) {
	return t.Convert(target)
}

// Add returns t shifted by days in its own scale.
func (t Instant) Add(days float64) Instant {
	return Instant{jd: t.jd + days, scale: t.scale}
}

// Sub returns t - u in days, measured in t's scale. u is converted first when the scales differ.
func (t Instant) Sub(u Instant) (float64, error) {
	v, err := u.In(t.scale)
	if err != nil {
		return 0, fmt.Errorf("sub: %w", err)
	}
	return t.jd - v.jd, nil
}

// JulianCenturies returns the Julian centuries elapsed since J2000 under the instant's current scale.
// Series evaluators call it on a TDB instant.
func (t Instant) JulianCenturies() float64 {
	return (t.jd - J2000JD) / DaysPerCentury
}

// JulianMillennia returns the Julian millennia elapsed since J2000 under the instant's current scale,
// the time argument of VSOP2013.
func (t Instant) JulianMillennia() float64 {
	return (t.jd - J2000JD) / DaysPerMillennium
}

func (t Instant) String() string {
	return fmt.Sprintf("JD %.9f %s", t.jd, t.scale)
}
