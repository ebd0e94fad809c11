package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire_ListsEveryMissingField(t *testing.T) {
	err := Require("weather_conditions",
		Field{"wind_speed", nil},
		Field{"solar_irradiance", Float(800)},
		Field{"cloud_cover", nil},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrDivision)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "weather_conditions", ve.Record)
	assert.Equal(t, []string{"wind_speed", "cloud_cover"}, ve.Fields)
	assert.Contains(t, err.Error(), "wind_speed, cloud_cover")
}

func TestRequire_AllPresent(t *testing.T) {
	assert.NoError(t, Require("x", Field{"a", Float(0)}))
}

func TestPositive(t *testing.T) {
	assert.NoError(t, Positive("price", 0.01))
	for _, v := range []float64{0, -1} {
		err := Positive("price", v)
		assert.ErrorIs(t, err, ErrDivision)
	}
}

func TestStateClone_SharesNoPointers(t *testing.T) {
	s := State{
		Economic: EconomicConditions{InflationRate: Float(2.5), GDPGrowthRate: Float(1.5)},
		Market:   EnergyMarketConditions{ElectricityPrice: Float(100), GasPrice: Float(75)},
		Weather:  WeatherConditions{WindSpeed: Float(15)},
	}
	c := s.Clone()
	*c.Economic.InflationRate = 9
	*c.Market.GasPrice = 1

	assert.Equal(t, 2.5, *s.Economic.InflationRate)
	assert.Equal(t, 75.0, *s.Market.GasPrice)
	assert.Nil(t, c.Weather.CloudCover)
}

func TestState_RequireAll(t *testing.T) {
	s := State{
		Economic: EconomicConditions{InflationRate: Float(2.5), GDPGrowthRate: Float(1.5)},
		Market:   EnergyMarketConditions{ElectricityPrice: Float(100), GasPrice: Float(75)},
		Weather: WeatherConditions{
			AverageTemperature: Float(10),
			WindSpeed:          Float(15),
			SolarIrradiance:    Float(800),
		},
	}
	err := s.RequireAll()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"cloud_cover"}, ve.Fields)

	s.Weather.CloudCover = Float(0.2)
	assert.NoError(t, s.RequireAll())
}

func TestValidateGroupNames(t *testing.T) {
	ok := []GSPGroup{{Name: "GSP1"}, {Name: "GSP2"}}
	assert.NoError(t, ValidateGroupNames(ok))

	dup := []GSPGroup{{Name: "GSP1"}, {Name: "GSP2"}, {Name: "GSP1"}}
	err := ValidateGroupNames(dup)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), `duplicate name "GSP1"`)

	assert.ErrorIs(t, ValidateGroupNames([]GSPGroup{{}}), ErrValidation)
}

func TestSources_ClosedSet(t *testing.T) {
	all := Sources()
	assert.Len(t, all, 5)
	for _, s := range all {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Source("hydro").Valid())

	all[0] = "hydro"
	assert.Equal(t, SourceGas, Sources()[0])
}
