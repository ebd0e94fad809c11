package model

// EconomicConditions holds macro indicators, both in percent.
type EconomicConditions struct {
	InflationRate *float64 `yaml:"inflation_rate"`
	GDPGrowthRate *float64 `yaml:"gdp_growth_rate"`
}

// EnergyMarketConditions holds wholesale prices in currency/MWh.
// Reference prices are 100 for electricity and 75 for gas.
type EnergyMarketConditions struct {
	ElectricityPrice *float64 `yaml:"electricity_price"`
	GasPrice         *float64 `yaml:"gas_price"`
}

// WeatherConditions is the weather for one simulation tick.
// Units:
// - AverageTemperature: °C
// - WindSpeed: km/h
// - SolarIrradiance: W/m²
// - Humidity: %
// - CloudCover: fraction 0..1
type WeatherConditions struct {
	AverageTemperature *float64 `yaml:"average_temperature"`
	WindSpeed          *float64 `yaml:"wind_speed"`
	SolarIrradiance    *float64 `yaml:"solar_irradiance"`
	Humidity           *float64 `yaml:"humidity"`
	CloudCover         *float64 `yaml:"cloud_cover"`
}

// State bundles the conditions a simulation tick reads. The baseline of a
// scenario is a State built by the caller and passed explicitly.
type State struct {
	Economic EconomicConditions     `yaml:"economic_conditions"`
	Market   EnergyMarketConditions `yaml:"energy_market_conditions"`
	Weather  WeatherConditions      `yaml:"weather_conditions"`
}

// Trends are the per-tick drift applied to EconomicConditions.
type Trends struct {
	InflationChange float64 `yaml:"inflation_change"`
	GDPGrowthChange float64 `yaml:"gdp_growth_change"`
}

func (e EconomicConditions) Clone() EconomicConditions {
	return EconomicConditions{
		InflationRate: clone(e.InflationRate),
		GDPGrowthRate: clone(e.GDPGrowthRate),
	}
}

func (m EnergyMarketConditions) Clone() EnergyMarketConditions {
	return EnergyMarketConditions{
		ElectricityPrice: clone(m.ElectricityPrice),
		GasPrice:         clone(m.GasPrice),
	}
}

func (w WeatherConditions) Clone() WeatherConditions {
	return WeatherConditions{
		AverageTemperature: clone(w.AverageTemperature),
		WindSpeed:          clone(w.WindSpeed),
		SolarIrradiance:    clone(w.SolarIrradiance),
		Humidity:           clone(w.Humidity),
		CloudCover:         clone(w.CloudCover),
	}
}

// Clone returns a deep copy; the copy shares no pointers with s.
func (s State) Clone() State {
	return State{
		Economic: s.Economic.Clone(),
		Market:   s.Market.Clone(),
		Weather:  s.Weather.Clone(),
	}
}

// RequireAll checks every field a full simulation tick reads.
// Humidity is informational and not required.
func (s State) RequireAll() error {
	if err := Require("economic_conditions",
		Field{"inflation_rate", s.Economic.InflationRate},
		Field{"gdp_growth_rate", s.Economic.GDPGrowthRate},
	); err != nil {
		return err
	}
	if err := Require("energy_market_conditions",
		Field{"electricity_price", s.Market.ElectricityPrice},
		Field{"gas_price", s.Market.GasPrice},
	); err != nil {
		return err
	}
	return Require("weather_conditions",
		Field{"average_temperature", s.Weather.AverageTemperature},
		Field{"wind_speed", s.Weather.WindSpeed},
		Field{"solar_irradiance", s.Weather.SolarIrradiance},
		Field{"cloud_cover", s.Weather.CloudCover},
	)
}
