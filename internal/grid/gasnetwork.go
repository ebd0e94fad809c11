package grid

import "grid-scenario/internal/model"

const (
	// ReferenceGasPrice is the price at which gas production equals its baseline.
	ReferenceGasPrice = 75.0

	baselineGasProduction = 500.0
	baselineGasImport     = 200.0
	baselineGasExport     = 100.0
	gasPriceElasticity    = 0.05
)

// GasNetwork computes the national gas balance. Imports follow GDP growth,
// exports follow inflation, production responds to the gas price.
func GasNetwork(econ model.EconomicConditions, market model.EnergyMarketConditions) (*model.GasNetworkResult, error) {
	if err := model.Require("economic_conditions",
		model.Field{Name: "inflation_rate", Value: econ.InflationRate},
		model.Field{Name: "gdp_growth_rate", Value: econ.GDPGrowthRate},
	); err != nil {
		return nil, err
	}
	if err := model.Require("energy_market_conditions",
		model.Field{Name: "gas_price", Value: market.GasPrice},
	); err != nil {
		return nil, err
	}
	price := *market.GasPrice
	if err := model.Positive("gas_price", price); err != nil {
		return nil, err
	}

	production := baselineGasProduction * (1 + gasPriceElasticity*(ReferenceGasPrice-price))
	imp := baselineGasImport * (1 + *econ.GDPGrowthRate/100)
	exp := baselineGasExport * (1 + *econ.InflationRate/100)
	return &model.GasNetworkResult{
		Production:      production,
		Import:          imp,
		Export:          exp,
		NetAvailability: production + imp - exp,
	}, nil
}
