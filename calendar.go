package astrocal

/*
Package astrocal provides conversion between Julian Days and civil calendar fields.

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
	"time"
)

// MinCalendarYear is the earliest civil year accepted by FromCalendar (4713 BC is one earlier and starts at JD -0.5).
const MinCalendarYear = -4712

// minCalendarJD is the Julian Day of MinCalendarYear-01-01 00:00.
const minCalendarJD = 365.5

// Calendar holds civil date and time fields.
//
// Dates before 1582-10-15 are in the proleptic Julian calendar, later dates are Gregorian.
// Year uses civil numbering: -1 is 1 BC and there is no year 0.
type Calendar struct {
	Year   int     // Civil year, negative for BC
	Month  int     // 1-12
	Day    int     // 1-31
	Hour   int     // 0-23
	Minute int     // 0-59
	Second float64 // [0, 60)
}

func (c Calendar) String() string {
	era := ""
	year := c.Year
	if year < 0 {
		era, year = " BC", -year
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%06.3f%s", year, c.Month, c.Day, c.Hour, c.Minute, c.Second, era)
}

// FromCalendar converts civil calendar fields to a UTC Instant.
//
// Parameters:
//   - c: civil date and time; see Calendar for the numbering rules.
//
// Returns:
//   - Instant: the Julian Day tagged UTC.
//   - error: ErrRange if the year is before MinCalendarYear, ErrInvalidCalendar if a field is out of bounds
//     or names one of the days 1582-10-05 to 1582-10-14 dropped by the Gregorian reform.
func FromCalendar(c Calendar) (Instant, error) {
	if err := c.validate(); err != nil {
		return Instant{}, err
	}
	secs := float64(c.Hour)*3600 + float64(c.Minute)*60 + c.Second
	return Instant{jd: calendarJD(astronomicalYear(c.Year), c.Month, c.Day) + secs/SecondsPerDay, scale: UTC}, nil
}

// Calendar returns the civil calendar fields of the instant under its own scale.
// Seconds are rounded to the millisecond; a rounding that reaches 60 s carries into the next minute.
//
// Returns:
//   - Calendar: the civil fields.
//   - error: ErrRange if the instant lies before MinCalendarYear or is not finite.
func (t Instant) Calendar() (Calendar, error) {
	if math.IsNaN(t.jd) || math.IsInf(t.jd, 0) || t.jd < minCalendarJD {
		return Calendar{}, fmt.Errorf("calendar of JD %v: %w", t.jd, ErrRange)
	}
	y, m, d, secs := calendarFromJD(t.jd)
	whole := int(secs)
	return Calendar{
		Year:   civilYear(y),
		Month:  m,
		Day:    d,
		Hour:   whole / 3600,
		Minute: whole % 3600 / 60,
		Second: secs - float64(whole/60*60),
	}, nil
}

// FromTime converts a time.Time to a UTC Instant.
func FromTime(tm time.Time) Instant {
	secs := float64(tm.Unix()) + float64(tm.Nanosecond())/1e9
	return Instant{jd: UnixEpochJD + secs/SecondsPerDay, scale: UTC}
}

// Time returns the instant's Julian Day as a time.Time in the UTC location, ignoring the instant's scale.
// Go's time package counts in the proleptic Gregorian calendar, so the fields of dates before 1582-10-15
// differ from those returned by Calendar.
func (t Instant) Time() time.Time {
	secs := (t.jd - UnixEpochJD) * SecondsPerDay
	whole := math.Floor(secs)
	return time.Unix(int64(whole), int64(math.Round((secs-whole)*1e6))*1e3).UTC()
}

func (c Calendar) validate() error {
	if c.Year < MinCalendarYear {
		return fmt.Errorf("calendar %s: year before %d: %w", c, MinCalendarYear, ErrRange)
	}
	if c.Year == 0 {
		return fmt.Errorf("calendar %s: there is no year 0: %w", c, ErrInvalidCalendar)
	}
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("calendar %s: month %d: %w", c, c.Month, ErrInvalidCalendar)
	}
	y := astronomicalYear(c.Year)
	if c.Day < 1 || c.Day > daysInMonth(y, c.Month) {
		return fmt.Errorf("calendar %s: day %d: %w", c, c.Day, ErrInvalidCalendar)
	}
	if y == 1582 && c.Month == 10 && c.Day > 4 && c.Day < 15 {
		return fmt.Errorf("calendar %s: dropped by the Gregorian reform: %w", c, ErrInvalidCalendar)
	}
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 {
		return fmt.Errorf("calendar %s: time of day: %w", c, ErrInvalidCalendar)
	}
	if !(c.Second >= 0 && c.Second < 60) {
		return fmt.Errorf("calendar %s: second %v: %w", c, c.Second, ErrInvalidCalendar)
	}
	return nil
}

// astronomicalYear maps civil years (no year 0) onto astronomical numbering (1 BC = 0).
func astronomicalYear(civil int) int {
	if civil < 0 {
		return civil + 1
	}
	return civil
}

func civilYear(astronomical int) int {
	if astronomical <= 0 {
		return astronomical - 1
	}
	return astronomical
}

func isGregorian(y, m, d int) bool {
	return y > 1582 || (y == 1582 && (m > 10 || (m == 10 && d >= 15)))
}

func isLeapYear(y int, gregorian bool) bool {
	if gregorian {
		return y%4 == 0 && (y%100 != 0 || y%400 == 0)
	}
	return floorMod(y, 4) == 0
}

func daysInMonth(y, m int) int {
	switch m {
	case 2:
		if isLeapYear(y, y > 1582) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

// calendarJD returns the Julian Day at 00:00 of an astronomical-year date.
// January and February count as months 13 and 14 of the previous year, and the
// Gregorian correction only applies from 1582-10-15 on.
func calendarJD(y, m, d int) float64 {
	gregorian := isGregorian(y, m, d)
	if m <= 2 {
		y--
		m += 12
	}
	b := 0
	if gregorian {
		a := floorDiv(y, 100)
		b = 2 - a + floorDiv(a, 4)
	}
	return math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + float64(d+b) - 1524.5
}

// calendarFromJD inverts calendarJD for jd >= -0.5, returning the astronomical year,
// month, day and the seconds elapsed since midnight rounded to the millisecond.
func calendarFromJD(jd float64) (year, month, day int, secs float64) {
	z := math.Floor(jd + 0.5)
	secs = math.Round((jd+0.5-z)*SecondsPerDay*1e3) / 1e3
	if secs >= SecondsPerDay {
		z++
		secs -= SecondsPerDay
	}

	a := z
	if z >= GregorianJD {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	month = int(e) - 1
	if e >= 14 {
		month = int(e) - 13
	}
	year = int(c) - 4715
	if month > 2 {
		year = int(c) - 4716
	}
	return year, month, day, secs
}

// decimalYear returns the continuous astronomical year of jd, e.g. 2000.5 near 2000-07-02.
func decimalYear(jd float64) (float64, error) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) || jd < -0.5 {
		return 0, fmt.Errorf("decimal year of JD %v: %w", jd, ErrRange)
	}
	y, _, _, _ := calendarFromJD(jd)
	start := calendarJD(y, 1, 1)
	end := calendarJD(y+1, 1, 1)
	if jd < start {
		// millisecond rounding pushed the date into the next year
		return float64(y), nil
	}
	return float64(y) + (jd-start)/(end-start), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
