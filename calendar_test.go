package astrocal

import (
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCalendarJ2000(t *testing.T) {
	jd, err := FromCalendar(Calendar{Year: 2000, Month: 1, Day: 1, Hour: 12})
	require.NoError(t, err)
	assert.Equal(t, 2451545.0, jd.JD())
	assert.Equal(t, UTC, jd.Scale())
}

func TestFromCalendarKnownDays(t *testing.T) {
	testCases := []struct {
		name string
		cal  Calendar
		want float64
	}{
		{name: "start of the Julian period range", cal: Calendar{Year: -4712, Month: 1, Day: 1}, want: 365.5},
		{name: "last Julian day", cal: Calendar{Year: 1582, Month: 10, Day: 4}, want: 2299159.5},
		{name: "first Gregorian day", cal: Calendar{Year: 1582, Month: 10, Day: 15}, want: 2299160.5},
		{name: "unix epoch", cal: Calendar{Year: 1970, Month: 1, Day: 1}, want: UnixEpochJD},
		{name: "Meeus example 7.a", cal: Calendar{Year: 1957, Month: 10, Day: 4, Hour: 19, Minute: 26, Second: 24}, want: 2436116.31},
		{name: "Meeus example 7.b", cal: Calendar{Year: 333, Month: 1, Day: 27, Hour: 12}, want: 1842713.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jd, err := FromCalendar(tc.cal)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, jd.JD(), 1e-9)
		})
	}
}

func TestFromCalendarMatchesMeeus(t *testing.T) {
	for y := 1; y < 3000; y += 7 {
		for m := 1; m <= 12; m++ {
			cal := Calendar{Year: y, Month: m, Day: 1 + (y+m)%28, Hour: 6, Minute: 30}
			if y == 1582 && m == 10 {
				continue
			}
			jd, err := FromCalendar(cal)
			require.NoError(t, err, "%s", cal)

			day := float64(cal.Day) + 6.5/24
			want := julian.CalendarJulianToJD(y, m, day)
			if isGregorian(y, m, cal.Day) {
				want = julian.CalendarGregorianToJD(y, m, day)
			}
			require.InDelta(t, want, jd.JD(), 1e-8, "%s", cal)
		}
	}
}

func TestCalendarRoundTrip(t *testing.T) {
	for y := MinCalendarYear; y < 3000; y += 37 {
		if y == 0 {
			continue
		}
		for m := 1; m <= 12; m++ {
			for _, d := range []int{1, 15, daysInMonth(astronomicalYear(y), m)} {
				in := Calendar{Year: y, Month: m, Day: d, Hour: floorMod(y, 24), Minute: 17, Second: 42.5}
				jd, err := FromCalendar(in)
				require.NoError(t, err, "%s", in)

				out, err := jd.Calendar()
				require.NoError(t, err, "%s", in)
				assert.Equal(t, in.Year, out.Year, "%s", in)
				assert.Equal(t, in.Month, out.Month, "%s", in)
				assert.Equal(t, in.Day, out.Day, "%s", in)
				assert.Equal(t, in.Hour, out.Hour, "%s", in)
				assert.Equal(t, in.Minute, out.Minute, "%s", in)
				assert.InDelta(t, in.Second, out.Second, 1e-6, "%s", in)
			}
		}
	}
}

func TestCalendarAcrossReformAndEra(t *testing.T) {
	oct4, err := FromCalendar(Calendar{Year: 1582, Month: 10, Day: 4})
	require.NoError(t, err)
	oct15, err := FromCalendar(Calendar{Year: 1582, Month: 10, Day: 15})
	require.NoError(t, err)
	assert.Equal(t, 1.0, oct15.JD()-oct4.JD())

	lastBC, err := FromCalendar(Calendar{Year: -1, Month: 12, Day: 31})
	require.NoError(t, err)
	firstAD, err := FromCalendar(Calendar{Year: 1, Month: 1, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, firstAD.JD()-lastBC.JD())

	cal, err := lastBC.Calendar()
	require.NoError(t, err)
	assert.Equal(t, -1, cal.Year)
	assert.Equal(t, "0001-12-31 00:00:00.000 BC", cal.String())
}

func TestFromCalendarInvalid(t *testing.T) {
	testCases := []struct {
		name string
		cal  Calendar
		want error
	}{
		{name: "before the supported range", cal: Calendar{Year: -4713, Month: 12, Day: 31}, want: ErrRange},
		{name: "year zero", cal: Calendar{Year: 0, Month: 1, Day: 1}, want: ErrInvalidCalendar},
		{name: "month 13", cal: Calendar{Year: 2000, Month: 13, Day: 1}, want: ErrInvalidCalendar},
		{name: "Gregorian 1900 is not leap", cal: Calendar{Year: 1900, Month: 2, Day: 29}, want: ErrInvalidCalendar},
		{name: "day dropped by the reform", cal: Calendar{Year: 1582, Month: 10, Day: 10}, want: ErrInvalidCalendar},
		{name: "hour 24", cal: Calendar{Year: 2000, Month: 1, Day: 1, Hour: 24}, want: ErrInvalidCalendar},
		{name: "second 60", cal: Calendar{Year: 2000, Month: 1, Day: 1, Second: 60}, want: ErrInvalidCalendar},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromCalendar(tc.cal)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestJulianLeapDayBeforeReform(t *testing.T) {
	_, err := FromCalendar(Calendar{Year: 1500, Month: 2, Day: 29})
	assert.NoError(t, err)
}

func TestCalendarSecondsCarry(t *testing.T) {
	jd, err := FromCalendar(Calendar{Year: 2024, Month: 3, Day: 10, Hour: 23, Minute: 59, Second: 59.9996})
	require.NoError(t, err)

	cal, err := jd.Calendar()
	require.NoError(t, err)
	assert.Equal(t, Calendar{Year: 2024, Month: 3, Day: 11}, cal)
}

func TestCalendarOutOfRange(t *testing.T) {
	_, err := Instant{jd: 100, scale: UTC}.Calendar()
	assert.ErrorIs(t, err, ErrRange)
}

func TestInstantCalendarUsesOwnScale(t *testing.T) {
	cal, err := J2000.Calendar()
	require.NoError(t, err)
	assert.Equal(t, Calendar{Year: 2000, Month: 1, Day: 1, Hour: 12}, cal)
}

func TestTimeInterop(t *testing.T) {
	tm := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	jd := FromTime(tm)
	assert.Equal(t, J2000JD, jd.JD())
	assert.Equal(t, UTC, jd.Scale())
	assert.True(t, tm.Equal(jd.Time()))

	assert.Equal(t, UnixEpochJD, FromUnix(0).JD())
	assert.InDelta(t, 946728000.0, jd.Unix(), 1e-4)
}
