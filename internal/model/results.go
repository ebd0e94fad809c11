package model

// GenerationResult is the generation mix for one tick, in MWh.
type GenerationResult struct {
	BySource map[Source]float64
	Total    float64
}

// TransmissionResult describes how much generation reaches demand.
// Efficiency is a percentage.
type TransmissionResult struct {
	Capacity           float64
	Efficiency         float64
	ActualTransmission float64
}

// GasNetworkResult is the national gas balance.
type GasNetworkResult struct {
	Production      float64
	Import          float64
	Export          float64
	NetAvailability float64
}

// RegionalFlow is one GSP group's price-scaled import/export.
type RegionalFlow struct {
	ElectricityImport float64
	ElectricityExport float64
	GasImport         float64
	GasExport         float64
	// Net values are import minus export.
	NetElectricity float64
	NetGas         float64
}

// RegionalFlowResult is keyed by GSPGroup.Name.
type RegionalFlowResult map[string]RegionalFlow

// ExportAttribution is exported electricity allocated per source, in MWh.
type ExportAttribution map[Source]float64

// GroupNetDemand is demand left after national supply, for one GSP group.
type GroupNetDemand struct {
	Electricity float64
	Gas         float64
}

// NationalNetDemand sums GroupNetDemand over all groups.
type NationalNetDemand struct {
	Electricity float64
	Gas         float64
}

type NetDemandResult struct {
	ByGroup map[string]GroupNetDemand
	Total   NationalNetDemand
}
