package grid

import (
	"math"

	"grid-scenario/internal/model"
)

const (
	// TransmissionCapacityMWh caps what the network can carry per tick.
	TransmissionCapacityMWh = 50000.0

	baseEfficiencyPct     = 95.0
	deratingThresholdC    = 25.0
	deratingPctPerDegreeC = 0.2
)

// TransmissionEfficiency returns the network efficiency in percent.
// Above 25 °C it falls by 0.2 points per degree with no floor.
func TransmissionEfficiency(temperatureC float64) float64 {
	return baseEfficiencyPct - deratingPctPerDegreeC*math.Max(temperatureC-deratingThresholdC, 0)
}

// Transmission caps generated electricity at network capacity and applies
// the temperature-dependent efficiency.
func Transmission(generatedMWh float64, weather model.WeatherConditions) (*model.TransmissionResult, error) {
	if err := model.Require("weather_conditions",
		model.Field{Name: "average_temperature", Value: weather.AverageTemperature},
	); err != nil {
		return nil, err
	}
	eff := TransmissionEfficiency(*weather.AverageTemperature)
	return &model.TransmissionResult{
		Capacity:           TransmissionCapacityMWh,
		Efficiency:         eff,
		ActualTransmission: math.Min(generatedMWh, TransmissionCapacityMWh) * (eff / 100),
	}, nil
}
