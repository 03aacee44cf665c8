package astrocal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionByName(t *testing.T) {
	d, err := DimensionByName("kilometer")
	require.NoError(t, err)
	assert.Same(t, Kilometer, d)

	d, err = DimensionByName(" au ")
	require.NoError(t, err)
	assert.Same(t, AU, d)

	_, err = DimensionByName("parsec")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestNewDimension(t *testing.T) {
	parsec, err := NewDimension(Distance, big.NewRat(30856775814913673, 1), "Parsec")
	require.NoError(t, err)
	assert.Equal(t, Distance, parsec.Kind())
	assert.Equal(t, "Parsec", parsec.String())

	_, err = NewDimension(Kind(7), big.NewRat(1, 1), "Odd")
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = NewDimension(Time, big.NewRat(0, 1), "Never")
	assert.ErrorIs(t, err, ErrRange)

	_, err = NewDimension(Time, big.NewRat(1, 1), "")
	assert.ErrorIs(t, err, ErrRange)
}

func TestDimensionRatioIsCopied(t *testing.T) {
	r := Kilometer.Ratio()
	r.SetInt64(7)
	assert.Equal(t, 0, Kilometer.Ratio().Cmp(big.NewRat(1000, 1)))
}

func TestTermString(t *testing.T) {
	assert.Equal(t, "Meter", Meter.Pow(1).String())
	assert.Equal(t, "Second^-2", Second.Pow(-2).String())
}

func TestRatPow(t *testing.T) {
	assert.Equal(t, 0, ratPow(big.NewRat(2, 3), 3).Cmp(big.NewRat(8, 27)))
	assert.Equal(t, 0, ratPow(big.NewRat(2, 3), -2).Cmp(big.NewRat(9, 4)))
	assert.Equal(t, 0, ratPow(big.NewRat(5, 1), 0).Cmp(big.NewRat(1, 1)))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Angle", Angle.String())
	assert.Equal(t, "Distance", Distance.String())
	assert.Equal(t, "Time", Time.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestNewDimensionRejectsNamedDimensions(t *testing.T) {
	for _, name := range []string{"Meter", "kilometer", "AU"} {
		_, err := NewDimension(Distance, big.NewRat(2, 1), name)
		assert.ErrorIs(t, err, ErrUnitConflict, name)
	}
}

func TestSameNameDifferentRatioIsDifferentUnit(t *testing.T) {
	short, err := NewDimension(Distance, big.NewRat(200, 1), "Furlong")
	require.NoError(t, err)
	long, err := NewDimension(Distance, big.NewRat(201, 1), "Furlong")
	require.NoError(t, err)
	same, err := NewDimension(Distance, big.NewRat(200, 1), "Furlong")
	require.NoError(t, err)

	_, err = UnitOf(short).Mul(UnitOf(long))
	require.NoError(t, err)
	_, err = NewUnit([]Term{short.Pow(1), long.Pow(1)}, nil).Mul(Dimensionless())
	assert.ErrorIs(t, err, ErrUnitConflict)

	got, err := UnitOf(short).Mul(UnitOf(same))
	require.NoError(t, err)
	assert.True(t, got.Equal(NewUnit([]Term{short.Pow(2)}, nil)))
	assert.Equal(t, 0, got.Factor().Cmp(big.NewRat(1, 1)))

	v, err := Of(1, UnitOf(short)).Add(Of(0, UnitOf(long)))
	require.NoError(t, err)
	assert.InDelta(t, 200.0/201.0, v.Magnitude(), 1e-15)
}
