package grid

import "grid-scenario/internal/model"

var f = model.Float

func baselineEconomic() model.EconomicConditions {
	return model.EconomicConditions{InflationRate: f(2.5), GDPGrowthRate: f(1.5)}
}

func baselineMarket() model.EnergyMarketConditions {
	return model.EnergyMarketConditions{ElectricityPrice: f(100), GasPrice: f(75)}
}

func weather(windKmh, irradiance, cloud, tempC float64) model.WeatherConditions {
	return model.WeatherConditions{
		AverageTemperature: f(tempC),
		WindSpeed:          f(windKmh),
		SolarIrradiance:    f(irradiance),
		CloudCover:         f(cloud),
	}
}

func group(name string, elecImp, elecExp, gasImp, gasExp, elecDemand, gasDemand float64) model.GSPGroup {
	return model.GSPGroup{
		Name:              name,
		ElectricityImport: f(elecImp),
		ElectricityExport: f(elecExp),
		GasImport:         f(gasImp),
		GasExport:         f(gasExp),
		ElectricityDemand: f(elecDemand),
		GasDemand:         f(gasDemand),
	}
}
