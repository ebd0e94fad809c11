package grid

import "grid-scenario/internal/model"

// RegionalFlows scales each GSP group's import/export by the price factors
// (electricity price / 100, gas price / 75) and computes the net flows.
//
// Every group is validated before any result is produced. Group names must be
// unique; a duplicate is a ValidationError rather than an overwrite.
func RegionalFlows(groups []model.GSPGroup, econ model.EconomicConditions, market model.EnergyMarketConditions) (model.RegionalFlowResult, error) {
	_ = econ
	if err := model.Require("energy_market_conditions",
		model.Field{Name: "electricity_price", Value: market.ElectricityPrice},
		model.Field{Name: "gas_price", Value: market.GasPrice},
	); err != nil {
		return nil, err
	}
	if err := model.Positive("electricity_price", *market.ElectricityPrice); err != nil {
		return nil, err
	}
	if err := model.Positive("gas_price", *market.GasPrice); err != nil {
		return nil, err
	}
	if err := model.ValidateGroupNames(groups); err != nil {
		return nil, err
	}
	for _, g := range groups {
		if err := g.RequireFlows(); err != nil {
			return nil, err
		}
	}

	elecFactor := *market.ElectricityPrice / ReferenceElectricityPrice
	gasFactor := *market.GasPrice / ReferenceGasPrice

	out := make(model.RegionalFlowResult, len(groups))
	for _, g := range groups {
		f := model.RegionalFlow{
			ElectricityImport: *g.ElectricityImport * elecFactor,
			ElectricityExport: *g.ElectricityExport * elecFactor,
			GasImport:         *g.GasImport * gasFactor,
			GasExport:         *g.GasExport * gasFactor,
		}
		f.NetElectricity = f.ElectricityImport - f.ElectricityExport
		f.NetGas = f.GasImport - f.GasExport
		out[g.Name] = f
	}
	return out, nil
}
