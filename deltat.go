package astrocal

/*
Package astrocal provides the historical and predictive ΔT model.

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

// The ΔT segments follow the Espenak & Meeus polynomial expressions (Five Millennium Canon of Solar Eclipses).
// Each segment covers the years strictly below its bound and not covered by an earlier segment.
// Before 1600 the argument is in centuries, from 1600 to 2050 it is in years, matching the published coefficients.
var deltaTSegments = []deltaTSegment{
	{until: -500, chain: []yearFunc{centuriesFrom(1820), parabola}},
	{until: 500, chain: []yearFunc{centuriesFrom(0), polynomial(10583.6, -1014.41, 33.78311, -5.952053, -0.1798452, 0.022174192, 0.0090316521)}},
	{until: 1600, chain: []yearFunc{centuriesFrom(1000), polynomial(1574.2, -556.01, 71.23472, 0.319781, -0.8503463, -0.005050998, 0.0083572073)}},
	{until: 1700, chain: []yearFunc{yearsFrom(1600), polynomial(120, -0.9808, -0.01532, 1/7129.0)}},
	{until: 1800, chain: []yearFunc{yearsFrom(1700), polynomial(8.83, 0.1603, -0.0059285, 0.00013336, -1/1174000.0)}},
	{until: 1860, chain: []yearFunc{yearsFrom(1800), polynomial(13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436, 0.0000121272, -0.0000001699, 0.000000000875)}},
	{until: 1900, chain: []yearFunc{yearsFrom(1860), polynomial(7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624, 1/233174.0)}},
	{until: 1920, chain: []yearFunc{yearsFrom(1900), polynomial(-2.79, 1.494119, -0.0598939, 0.0061966, -0.000197)}},
	{until: 1941, chain: []yearFunc{yearsFrom(1920), polynomial(21.20, 0.84493, -0.076100, 0.0020936)}},
	{until: 1961, chain: []yearFunc{yearsFrom(1950), polynomial(29.07, 0.407, -1/233.0, 1/2547.0)}},
	{until: 1986, chain: []yearFunc{yearsFrom(1975), polynomial(45.45, 1.067, -1/260.0, -1/718.0)}},
	{until: 2005, chain: []yearFunc{yearsFrom(2000), polynomial(63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599)}},
	{until: 2050, chain: []yearFunc{yearsFrom(2000), polynomial(62.92, 0.32217, 0.005589)}},
	{until: 2150, chain: []yearFunc{func(y float64) float64 {
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	}}},
	{until: math.Inf(1), chain: []yearFunc{centuriesFrom(1820), parabola}},
}

// parabola is the long-term ΔT = -20 + 32u² with u in centuries since 1820.
var parabola = polynomial(-20, 0, 32)

func centuriesFrom(origin float64) yearFunc {
	return func(y float64) float64 { return (y - origin) / 100 }
}

func yearsFrom(origin float64) yearFunc {
	return func(y float64) float64 { return y - origin }
}

// polynomial returns c[0] + c[1]u + c[2]u² + ... evaluated with Horner's scheme.
func polynomial(c ...float64) yearFunc {
	return func(u float64) float64 {
		r := 0.0
		for i := len(c) - 1; i >= 0; i-- {
			r = r*u + c[i]
		}
		return r
	}
}

// DeltaTForYear returns the estimated ΔT in seconds for a decimal astronomical year
// (year 0 is 1 BC, -1 is 2 BC).
//
// Parameters:
//   - year: decimal year, e.g. 2000.5 for mid-2000.
//
// Returns:
//   - float64: ΔT in seconds.
//   - error: ErrRange if no segment covers year (only possible for NaN).
func DeltaTForYear(year float64) (float64, error) {
	for _, seg := range deltaTSegments {
		if year < seg.until {
			return seg.eval(year), nil
		}
	}
	return 0, fmt.Errorf("delta T for year %v: %w", year, ErrRange)
}

// DeltaSeconds returns the estimated ΔT in seconds at an instant given as seconds since the Unix epoch.
// The year used for segment selection is the continuous decimal year of that instant.
//
// Returns:
//   - float64: ΔT in seconds.
//   - error: ErrRange if epochSeconds is not finite or falls before the calendar's supported range.
func DeltaSeconds(epochSeconds float64) (float64, error) {
	return deltaTAt(UnixEpochJD + epochSeconds/SecondsPerDay)
}

// deltaTAt returns ΔT in seconds at Julian Day jd.
func deltaTAt(jd float64) (float64, error) {
	year, err := decimalYear(jd)
	if err != nil {
		return 0, fmt.Errorf("delta T at JD %v: %w", jd, err)
	}
	return DeltaTForYear(year)
}

func (s deltaTSegment) eval(year float64) float64 {
	v := year
	for _, f := range s.chain {
		v = f(v)
	}
	return v
}

// segmentStart returns the lower bound of the ΔT segment covering year, if it has one.
func segmentStart(year float64) (float64, bool) {
	for i, seg := range deltaTSegments {
		if year < seg.until {
			if i == 0 {
				return 0, false
			}
			return deltaTSegments[i-1].until, true
		}
	}
	return 0, false
}
