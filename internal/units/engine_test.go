package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/unitconv/internal/domain"
)

var lengthUnits = []string{"meters", "kilometers", "feet", "yards", "miles"}

func TestConvertLength_Scenarios(t *testing.T) {
	assert.Equal(t, 1000.0, ConvertLength(1.0, "kilometers", "meters"))
	assert.InDelta(t, 5279.987, ConvertLength(1.0, "miles", "feet"), 1e-3)
	assert.InDelta(t, 33.333, ConvertLength(100.0, "feet", "yards"), 1e-3)
	assert.Equal(t, 0.001, ConvertLength(1.0, "meters", "kilometers"))
}

func TestConvertLength_Identity(t *testing.T) {
	for _, u := range lengthUnits {
		for _, v := range []float64{0, 1, -2.5, 12345.678, 1e-9} {
			got := ConvertLength(v, u, u)
			assert.InDelta(t, v, got, math.Abs(v)*1e-12+1e-15, "unit %s value %v", u, v)
		}
	}
}

func TestConvertLength_RoundTrip(t *testing.T) {
	const v = 42.125
	for _, a := range lengthUnits {
		for _, b := range lengthUnits {
			back := ConvertLength(ConvertLength(v, a, b), b, a)
			assert.InEpsilon(t, v, back, 1e-4, "%s -> %s -> %s", a, b, a)
		}
	}
}

func TestConvertLength_UnknownUnitIsIdentityStage(t *testing.T) {
	// Unknown source is taken as meters.
	assert.Equal(t, 0.5, ConvertLength(500, "furlongs", "kilometers"))
	// Unknown target leaves the meters value.
	assert.Equal(t, 2000.0, ConvertLength(2, "kilometers", "furlongs"))
	assert.Equal(t, 7.0, ConvertLength(7, "x", "y"))
}

func TestToAndFromMeters(t *testing.T) {
	assert.Equal(t, 1609.34, ToMeters("miles", 1))
	assert.Equal(t, 3.28084, FromMeters("feet", 1))
	assert.Equal(t, 1.09361, FromMeters("yards", 1))
	assert.Equal(t, 5.0, ToMeters("meters", 5))
}

func TestEngineConvert_Length(t *testing.T) {
	res, err := NewEngine().Convert(domain.ConversionRequest{
		Value:    1,
		Source:   "kilometers",
		Target:   "meters",
		Category: domain.CategoryLength,
	}, domain.PolicyStrict)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, res.Value)
	assert.Equal(t, 1000.0, res.Canonical)
	assert.Equal(t, "meters", res.CanonicalUnit)
}

func TestEngineConvert_MatchesConvertLength(t *testing.T) {
	e := NewEngine()
	for _, a := range lengthUnits {
		for _, b := range lengthUnits {
			res, err := e.Convert(domain.ConversionRequest{Value: 3.7, Source: a, Target: b, Category: domain.CategoryLength}, domain.PolicyStrict)
			require.NoError(t, err)
			assert.Equal(t, ConvertLength(3.7, a, b), res.Value, "%s -> %s", a, b)
		}
	}
}

func TestEngineConvert_Temperature(t *testing.T) {
	e := NewEngine()
	cases := []struct {
		value  float64
		source string
		target string
		want   float64
	}{
		{100, "Celsius", "Fahrenheit", 212},
		{0, "Celsius", "Fahrenheit", 32},
		{-40, "Celsius", "Fahrenheit", -40},
		{-40, "Fahrenheit", "Celsius", -40},
		{212, "Fahrenheit", "Celsius", 100},
		{98.6, "Fahrenheit", "Celsius", 37},
		{21.5, "Celsius", "Celsius", 21.5},
	}
	for _, c := range cases {
		res, err := e.Convert(domain.ConversionRequest{
			Value:    c.value,
			Source:   c.source,
			Target:   c.target,
			Category: domain.CategoryTemperature,
		}, domain.PolicyStrict)
		require.NoError(t, err)
		assert.InDelta(t, c.want, res.Value, 1e-9, "%v %s -> %s", c.value, c.source, c.target)
		assert.Equal(t, "Celsius", res.CanonicalUnit)
	}
}

func TestEngineConvert_StrictRejectsUnknownUnit(t *testing.T) {
	e := NewEngine()
	for _, req := range []domain.ConversionRequest{
		{Value: 1, Source: "furlongs", Target: "meters", Category: domain.CategoryLength},
		{Value: 1, Source: "meters", Target: "furlongs", Category: domain.CategoryLength},
		{Value: 1, Source: "Celsius", Target: "meters", Category: domain.CategoryTemperature},
	} {
		_, err := e.Convert(req, domain.PolicyStrict)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindUnknownUnit), "got %v", err)
		assert.ErrorIs(t, err, domain.ErrUnknownUnit)
	}
}

func TestEngineConvert_LenientKeepsIdentityFallback(t *testing.T) {
	res, err := NewEngine().Convert(domain.ConversionRequest{
		Value:    500,
		Source:   "furlongs",
		Target:   "kilometers",
		Category: domain.CategoryLength,
	}, domain.PolicyLenient)
	require.NoError(t, err)
	assert.Equal(t, 0.5, res.Value)
}

func TestEngineConvert_CategoryErrors(t *testing.T) {
	e := NewEngine()

	_, err := e.Convert(domain.ConversionRequest{Value: 1, Category: domain.CategoryVolume}, domain.PolicyLenient)
	assert.True(t, domain.IsKind(err, domain.KindUnsupportedCategory), "got %v", err)

	_, err = e.Convert(domain.ConversionRequest{Value: 1, Category: domain.CategoryTime}, domain.PolicyStrict)
	assert.True(t, domain.IsKind(err, domain.KindUnsupportedCategory), "got %v", err)

	_, err = e.Convert(domain.ConversionRequest{Value: 1, Category: "mass"}, domain.PolicyStrict)
	assert.True(t, domain.IsKind(err, domain.KindInvalidCategory), "got %v", err)
}

func TestEngineConvert_RejectsNonFiniteValues(t *testing.T) {
	e := NewEngine()
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := e.Convert(domain.ConversionRequest{Value: v, Source: "meters", Target: "feet", Category: domain.CategoryLength}, domain.PolicyStrict)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindInvalidValue), "got %v", err)
	}
}

func TestEngineConvert_RejectsOverflow(t *testing.T) {
	e := NewEngine()

	_, err := e.Convert(domain.ConversionRequest{Value: 1e308, Source: "kilometers", Target: "meters", Category: domain.CategoryLength}, domain.PolicyStrict)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidValue), "got %v", err)
	assert.ErrorIs(t, err, domain.ErrInvalidValue)

	_, err = e.Convert(domain.ConversionRequest{Value: -1e308, Source: "Celsius", Target: "Fahrenheit", Category: domain.CategoryTemperature}, domain.PolicyStrict)
	assert.True(t, domain.IsKind(err, domain.KindInvalidValue), "got %v", err)

	res, err := e.Convert(domain.ConversionRequest{Value: 1e300, Source: "kilometers", Target: "meters", Category: domain.CategoryLength}, domain.PolicyStrict)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e303, res.Value, 1e-12)
}

func TestNegativeZeroPassesThrough(t *testing.T) {
	negZero := math.Copysign(0, -1)
	for _, u := range lengthUnits {
		got := ConvertLength(negZero, u, u)
		assert.True(t, math.Signbit(got), "%s -> %s lost the sign of -0", u, u)
	}

	res, err := NewEngine().Convert(domain.ConversionRequest{Value: negZero, Source: "Celsius", Target: "Celsius", Category: domain.CategoryTemperature}, domain.PolicyStrict)
	require.NoError(t, err)
	assert.True(t, math.Signbit(res.Value))
}
