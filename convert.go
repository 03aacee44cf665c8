package astrocal

/*
Package astrocal provides conversion between the UTC, TAI, TT and TDB time scales.

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

// The scales form a chain UTC <-> TAI <-> TT <-> TDB. forward[s] steps from s to s+1,
// backward[s] from s to s-1. Non-adjacent conversions walk the chain one step at a time.
var (
	forward = [...]scaleStep{
		UTC: utcToTAI,
		TAI: taiToTT,
		TT:  ttToTDB,
	}
	backward = [...]scaleStep{
		TAI: taiToUTC,
		TT:  ttToTAI,
		TDB: tdbToTT,
	}
)

// convertJD converts jd from one scale to another.
//
// The offsets of every step are summed separately and added to jd once at the end, so a
// round trip costs two roundings of the Julian Day instead of two per step.
func convertJD(jd float64, from, to Scale) (float64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, fmt.Errorf("convert %v to %v: %w", from, to, ErrUnknownScale)
	}
	off := 0.0
	for s := from; s != to; {
		var err error
		if s < to {
			off, err = forward[s](jd, off)
			s++
		} else {
			off, err = backward[s](jd, off)
			s--
		}
		if err != nil {
			return 0, fmt.Errorf("convert JD %v from %v to %v: %w", jd, from, to, err)
		}
	}
	return jd + off, nil
}

func utcToTAI(jd, off float64) (float64, error) {
	dt, err := deltaTAt(jd + off)
	if err != nil {
		return 0, err
	}
	return off + dt/SecondsPerDay, nil
}

// taiToUTC finds the UTC instant u with u + ΔT(u) = TAI by fixed-point iteration on the
// offset d = u - TAI. ΔT changes by well under a second per day, so each step shrinks the
// error by several orders of magnitude.
//
// ΔT jumps at some segment bounds, so u + ΔT(u) is not one-to-one there. After an upward
// jump some TAI instants have no preimage and the iteration alternates between one
// candidate on each side of the bound. After a downward jump some TAI instants have two
// preimages. Both cases resolve to the earlier UTC instant.
func taiToUTC(jd, off float64) (float64, error) {
	tai := jd + off
	next := func(d float64) (float64, error) {
		dt, err := deltaTAt(tai + d)
		if err != nil {
			return 0, err
		}
		return -dt / SecondsPerDay, nil
	}
	d, err := fixedPoint(next, 0, solverMaxIterations)
	if err != nil {
		return 0, fmt.Errorf("TAI to UTC: %w", err)
	}
	if e, ok := earlierPreimage(tai, d, next); ok {
		d = e
	}
	return off + d, nil
}

// earlierPreimage looks for a second solution of taiToUTC below the lower bound of the
// ΔT segment that holds tai+d. It only exists when ΔT drops at that bound.
func earlierPreimage(tai, d float64, next func(float64) (float64, error)) (float64, bool) {
	year, err := decimalYear(tai + d)
	if err != nil {
		return 0, false
	}
	bound, ok := segmentStart(year)
	if !ok {
		return 0, false
	}
	before, err := DeltaTForYear(math.Nextafter(bound, math.Inf(-1)))
	if err != nil {
		return 0, false
	}
	after, err := DeltaTForYear(bound)
	if err != nil || before <= after {
		return 0, false
	}
	e, err := fixedPoint(next, -before/SecondsPerDay, solverMaxIterations)
	if err != nil || tai+e >= calendarJD(int(bound), 1, 1) {
		return 0, false
	}
	return e, true
}

func taiToTT(_, off float64) (float64, error) {
	return off + TTMinusTAI/SecondsPerDay, nil
}

func ttToTAI(_, off float64) (float64, error) {
	return off - TTMinusTAI/SecondsPerDay, nil
}

func ttToTDB(jd, off float64) (float64, error) {
	return off + tdbMinusTT(jd+off), nil
}

// tdbToTT solves f(TT) = TT + g(TT) - TDB = 0 with Newton-Raphson, g being tdbMinusTT.
// The unknown is carried as the small offset d = TT - TDB so that the step size is not
// swamped by the rounding of a full Julian Day.
func tdbToTT(jd, off float64) (float64, error) {
	tdb := jd + off
	d, err := newton(func(d float64) (float64, float64) {
		tt := tdb + d
		return d + tdbMinusTT(tt), 1 + tdbMinusTTRate(tt)
	}, 0, solverMaxIterations)
	if err != nil {
		return 0, fmt.Errorf("TDB to TT: %w", err)
	}
	return off + d, nil
}

// fixedPoint iterates d = next(d) from d0 until two successive values agree within
// solverTolerance. An iteration that settles into alternating between two values
// returns the smaller one.
func fixedPoint(next func(float64) (float64, error), d0 float64, maxIter int) (float64, error) {
	d, prev := d0, math.NaN()
	for i := 0; i < maxIter; i++ {
		n, err := next(d)
		if err != nil {
			return 0, err
		}
		if math.Abs(n-d) < solverTolerance {
			return n, nil
		}
		if math.Abs(n-prev) < solverTolerance {
			return math.Min(n, d), nil
		}
		prev, d = d, n
	}
	return 0, fmt.Errorf("fixed point after %d iterations: %w", maxIter, ErrNumericDivergence)
}

// newton finds a root of f starting at d0. f returns the value and the derivative at d.
func newton(f func(float64) (float64, float64), d0 float64, maxIter int) (float64, error) {
	d := d0
	for i := 0; i < maxIter; i++ {
		v, slope := f(d)
		step := v / slope
		d -= step
		if math.Abs(step) < solverTolerance {
			return d, nil
		}
	}
	return 0, fmt.Errorf("newton after %d iterations: %w", maxIter, ErrNumericDivergence)
}

// earthAnomaly returns the Earth's mean anomaly in radians at TT Julian Day tt.
func earthAnomaly(tt float64) float64 {
	t := (tt - J2000JD) / DaysPerCentury
	return (tdbAnomaly0 + tdbAnomalyRate*t) * math.Pi / 180
}

// tdbMinusTT returns TDB - TT in days at TT Julian Day tt.
func tdbMinusTT(tt float64) float64 {
	g := earthAnomaly(tt)
	return tdbAmplitude * math.Sin(g+tdbEccentricity*math.Sin(g)) / SecondsPerDay
}

// tdbMinusTTRate returns the derivative of tdbMinusTT with respect to tt (days per day).
func tdbMinusTTRate(tt float64) float64 {
	g := earthAnomaly(tt)
	dg := tdbAnomalyRate * math.Pi / 180 / DaysPerCentury
	return tdbAmplitude / SecondsPerDay * math.Cos(g+tdbEccentricity*math.Sin(g)) * (1 + tdbEccentricity*math.Cos(g)) * dg
}
