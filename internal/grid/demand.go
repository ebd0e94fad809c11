package grid

import "grid-scenario/internal/model"

// NetDemand subtracts national supply from each GSP group's demand:
// electricity against total generation, gas against net gas availability.
// National totals accumulate in group order.
func NetDemand(groups []model.GSPGroup, gen *model.GenerationResult, gas *model.GasNetworkResult) (*model.NetDemandResult, error) {
	if gen == nil {
		return nil, &model.ValidationError{Record: "generation", Reason: "result is nil"}
	}
	if gas == nil {
		return nil, &model.ValidationError{Record: "gas_network", Reason: "result is nil"}
	}
	if err := model.ValidateGroupNames(groups); err != nil {
		return nil, err
	}
	for _, g := range groups {
		if err := g.RequireDemand(); err != nil {
			return nil, err
		}
	}

	res := &model.NetDemandResult{
		ByGroup: make(map[string]model.GroupNetDemand, len(groups)),
	}
	for _, g := range groups {
		d := model.GroupNetDemand{
			Electricity: *g.ElectricityDemand - gen.Total,
			Gas:         *g.GasDemand - gas.NetAvailability,
		}
		res.Total.Electricity += d.Electricity
		res.Total.Gas += d.Gas
		res.ByGroup[g.Name] = d
	}
	return res, nil
}
