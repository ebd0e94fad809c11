package grid

import (
	"sort"

	"grid-scenario/internal/model"

	"gonum.org/v1/gonum/floats"
)

// TotalElectricityExport sums electricity export across all regions.
// Regions are summed in name order so the result does not depend on map
// iteration.
func TotalElectricityExport(flows model.RegionalFlowResult) float64 {
	names := make([]string, 0, len(flows))
	for name := range flows {
		names = append(names, name)
	}
	sort.Strings(names)
	exports := make([]float64, len(names))
	for i, name := range names {
		exports[i] = flows[name].ElectricityExport
	}
	return floats.Sum(exports)
}

// AttributeExports allocates the national electricity export across
// generation sources in proportion to each source's share of generation.
func AttributeExports(gen *model.GenerationResult, flows model.RegionalFlowResult) (model.ExportAttribution, error) {
	if gen == nil {
		return nil, &model.ValidationError{Record: "generation", Reason: "result is nil"}
	}
	if err := model.Positive("total_generation", gen.Total); err != nil {
		return nil, err
	}

	exported := TotalElectricityExport(flows)
	out := make(model.ExportAttribution, len(gen.BySource))
	for _, s := range model.Sources() {
		out[s] = exported * (gen.BySource[s] / gen.Total)
	}
	return out, nil
}
