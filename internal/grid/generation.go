package grid

import (
	"grid-scenario/internal/model"

	"gonum.org/v1/gonum/floats"
)

const (
	// WindReferenceKmh is the wind speed at which wind output equals its baseline.
	WindReferenceKmh = 15.0

	// FullSunWm2 is the irradiance at which solar output equals its baseline.
	FullSunWm2 = 1000.0

	// ReferenceElectricityPrice is the price at which fossil output equals its baseline.
	ReferenceElectricityPrice = 100.0

	fossilPriceElasticity = 0.1
)

// BaselineCapacityMWh is the unadjusted output of a source.
func BaselineCapacityMWh(s model.Source) float64 {
	switch s {
	case model.SourceGas:
		return 30000
	case model.SourceCoal:
		return 10000
	case model.SourceWind:
		return 10000
	case model.SourceSolar:
		return 5000
	case model.SourceNuclear:
		return 9000
	default:
		return 0
	}
}

// FossilPriceFactor scales gas and coal output: it rises as the electricity
// price falls below the reference and falls as it rises above.
// The factor is not bounded below; it is negative above a price of 110.
func FossilPriceFactor(electricityPrice float64) float64 {
	return 1 + fossilPriceElasticity*(ReferenceElectricityPrice-electricityPrice)
}

// Generation computes the generation mix for one tick.
//
// econ is accepted so callers pass the full condition set; no adjustment
// reads it yet.
func Generation(econ model.EconomicConditions, weather model.WeatherConditions, market model.EnergyMarketConditions) (*model.GenerationResult, error) {
	_ = econ
	if err := model.Require("weather_conditions",
		model.Field{Name: "wind_speed", Value: weather.WindSpeed},
		model.Field{Name: "solar_irradiance", Value: weather.SolarIrradiance},
		model.Field{Name: "cloud_cover", Value: weather.CloudCover},
	); err != nil {
		return nil, err
	}
	if err := model.Require("energy_market_conditions",
		model.Field{Name: "electricity_price", Value: market.ElectricityPrice},
	); err != nil {
		return nil, err
	}
	price := *market.ElectricityPrice
	if err := model.Positive("electricity_price", price); err != nil {
		return nil, err
	}

	fossil := FossilPriceFactor(price)
	sources := model.Sources()
	bySource := make(map[model.Source]float64, len(sources))
	values := make([]float64, 0, len(sources))
	for _, s := range sources {
		v := BaselineCapacityMWh(s)
		switch {
		case s == model.SourceWind:
			v *= *weather.WindSpeed / WindReferenceKmh
		case s == model.SourceSolar:
			v *= (*weather.SolarIrradiance / FullSunWm2) * (1 - *weather.CloudCover)
		case s.Fossil():
			v *= fossil
		}
		bySource[s] = v
		values = append(values, v)
	}

	return &model.GenerationResult{
		BySource: bySource,
		Total:    floats.Sum(values),
	}, nil
}
