package simulate

import (
	"time"

	"grid-scenario/internal/grid"
	"grid-scenario/internal/model"

	"github.com/google/uuid"
)

// NationalScope names the per-tick row that aggregates every GSP group.
const NationalScope = "UK"

// TickResult holds every component output for one tick, plus a snapshot of
// the inputs that produced it.
type TickResult struct {
	Time   time.Time
	State  model.State
	Groups []model.GSPGroup

	Generation   *model.GenerationResult
	Transmission *model.TransmissionResult
	Gas          *model.GasNetworkResult
	Flows        model.RegionalFlowResult
	Exports      model.ExportAttribution
	Demand       *model.NetDemandResult
}

// LedgerRow is one row of per-tick output: one per GSP group, then one
// national row. National-only columns are repeated on group rows so each
// row stands alone.
type LedgerRow struct {
	RunID uuid.UUID
	Index int
	Time  time.Time
	Scope string

	ElectricityPrice float64
	GasPrice         float64

	ElectricityDemand float64
	GasDemand         float64

	ElectricityImport float64
	ElectricityExport float64
	GasImport         float64
	GasExport         float64
	NetElectricity    float64
	NetGas            float64

	NetElectricityDemand float64
	NetGasDemand         float64

	TotalGeneration        float64
	TransmissionEfficiency float64
	ActualTransmission     float64
	GasNetAvailability     float64

	// Exported is the national export attributed to each source; it is set
	// on the national row only.
	Exported map[model.Source]float64
}

type Result struct {
	RunID      uuid.UUID
	Ticks      []TickResult
	Ledger     []LedgerRow
	FinalState model.State
}

func ledgerRows(runID uuid.UUID, idx int, tr *TickResult) []LedgerRow {
	base := LedgerRow{
		RunID:                  runID,
		Index:                  idx,
		Time:                   tr.Time,
		ElectricityPrice:       model.Value(tr.State.Market.ElectricityPrice),
		GasPrice:               model.Value(tr.State.Market.GasPrice),
		TotalGeneration:        tr.Generation.Total,
		TransmissionEfficiency: tr.Transmission.Efficiency,
		ActualTransmission:     tr.Transmission.ActualTransmission,
		GasNetAvailability:     tr.Gas.NetAvailability,
	}

	rows := make([]LedgerRow, 0, len(tr.Groups)+1)
	national := base
	national.Scope = NationalScope
	for _, g := range tr.Groups {
		f := tr.Flows[g.Name]
		d := tr.Demand.ByGroup[g.Name]

		row := base
		row.Scope = g.Name
		row.ElectricityDemand = model.Value(g.ElectricityDemand)
		row.GasDemand = model.Value(g.GasDemand)
		row.ElectricityImport = f.ElectricityImport
		row.ElectricityExport = f.ElectricityExport
		row.GasImport = f.GasImport
		row.GasExport = f.GasExport
		row.NetElectricity = f.NetElectricity
		row.NetGas = f.NetGas
		row.NetElectricityDemand = d.Electricity
		row.NetGasDemand = d.Gas
		rows = append(rows, row)

		national.ElectricityDemand += row.ElectricityDemand
		national.GasDemand += row.GasDemand
		national.ElectricityImport += f.ElectricityImport
		national.GasImport += f.GasImport
		national.GasExport += f.GasExport
		national.NetElectricity += f.NetElectricity
		national.NetGas += f.NetGas
	}
	national.ElectricityExport = grid.TotalElectricityExport(tr.Flows)
	national.NetElectricityDemand = tr.Demand.Total.Electricity
	national.NetGasDemand = tr.Demand.Total.Gas
	national.Exported = make(map[model.Source]float64, len(tr.Exports))
	for s, v := range tr.Exports {
		national.Exported[s] = v
	}
	return append(rows, national)
}
