package astrocal

/*
Package astrocal provides constants for time-scale conversion.

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

// Epochs and fixed offsets, in Julian Days unless noted otherwise.
const (
	J2000JD           = 2451545.0 // Julian Day of the J2000.0 epoch (2000-01-01 12:00 TT)
	UnixEpochJD       = 2440587.5 // Julian Day of 1970-01-01 00:00 UTC
	GregorianJD       = 2299161   // First Julian Day number of the Gregorian calendar (1582-10-15)
	SecondsPerDay     = 86400.0   // SI seconds in one day
	DaysPerCentury    = 36525.0   // Days in a Julian century
	DaysPerMillennium = 365250.0  // Days in a Julian millennium
	TTMinusTAI        = 32.184    // TT - TAI in seconds
)

// Periodic TT->TDB correction: TDB - TT = tdbAmplitude * sin(g + tdbEccentricity*sin(g)) seconds,
// with g the mean anomaly of the Earth in degrees, g = tdbAnomaly0 + tdbAnomalyRate*T, T in Julian centuries of TT since J2000.
const (
	tdbAmplitude    = 0.001658
	tdbEccentricity = 0.0167
	tdbAnomaly0     = 357.5291092
	tdbAnomalyRate  = 35999.05034
)

// Solver limits.
const (
	solverTolerance     = 1e-12 // Stop once the Newton or fixed-point step is below this many days
	solverMaxIterations = 50    // Give up with ErrNumericDivergence after this many steps
)

// J2000 is the reference epoch JD 2451545.0 in TT. It is a value; converting a copy never alters it.
var J2000 = Instant{jd: J2000JD, scale: TT}
