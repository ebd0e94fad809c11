package model

import "fmt"

// GSPGroup is a regional grid-supply-point grouping. Import/export figures
// are at reference prices; demand figures are the current tick's demand.
type GSPGroup struct {
	Name              string   `yaml:"name"`
	ElectricityImport *float64 `yaml:"electricity_import"`
	ElectricityExport *float64 `yaml:"electricity_export"`
	GasImport         *float64 `yaml:"gas_import"`
	GasExport         *float64 `yaml:"gas_export"`
	ElectricityDemand *float64 `yaml:"electricity_demand"`
	GasDemand         *float64 `yaml:"gas_demand"`
}

func (g GSPGroup) Clone() GSPGroup {
	return GSPGroup{
		Name:              g.Name,
		ElectricityImport: clone(g.ElectricityImport),
		ElectricityExport: clone(g.ElectricityExport),
		GasImport:         clone(g.GasImport),
		GasExport:         clone(g.GasExport),
		ElectricityDemand: clone(g.ElectricityDemand),
		GasDemand:         clone(g.GasDemand),
	}
}

func (g GSPGroup) record() string {
	return fmt.Sprintf("gsp_group %q", g.Name)
}

// RequireFlows checks the import/export fields.
func (g GSPGroup) RequireFlows() error {
	return Require(g.record(),
		Field{"electricity_import", g.ElectricityImport},
		Field{"electricity_export", g.ElectricityExport},
		Field{"gas_import", g.GasImport},
		Field{"gas_export", g.GasExport},
	)
}

// RequireDemand checks the demand fields.
func (g GSPGroup) RequireDemand() error {
	return Require(g.record(),
		Field{"electricity_demand", g.ElectricityDemand},
		Field{"gas_demand", g.GasDemand},
	)
}

// CloneGroups deep-copies a group slice.
func CloneGroups(groups []GSPGroup) []GSPGroup {
	out := make([]GSPGroup, len(groups))
	for i, g := range groups {
		out[i] = g.Clone()
	}
	return out
}

// ValidateGroupNames rejects empty and duplicate names. Results are keyed by
// name, so a duplicate would silently overwrite an earlier group.
func ValidateGroupNames(groups []GSPGroup) error {
	seen := make(map[string]int, len(groups))
	for i, g := range groups {
		if g.Name == "" {
			return &ValidationError{
				Record: fmt.Sprintf("gsp_groups[%d]", i),
				Fields: []string{"name"},
			}
		}
		if j, ok := seen[g.Name]; ok {
			return &ValidationError{
				Record: "gsp_groups",
				Reason: fmt.Sprintf("duplicate name %q at index %d and %d", g.Name, j, i),
			}
		}
		seen[g.Name] = i
	}
	return nil
}
