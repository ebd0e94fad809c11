package model

// Source is a generation technology feeding the national grid.
// The set is closed; keep these values stable, they are used as CSV column
// suffixes.
type Source string

const (
	SourceGas     Source = "gas"
	SourceCoal    Source = "coal"
	SourceWind    Source = "wind"
	SourceSolar   Source = "solar"
	SourceNuclear Source = "nuclear"
)

// Sources returns every Source in reporting order.
func Sources() []Source {
	return []Source{SourceGas, SourceCoal, SourceWind, SourceSolar, SourceNuclear}
}

func (s Source) Valid() bool {
	switch s {
	case SourceGas, SourceCoal, SourceWind, SourceSolar, SourceNuclear:
		return true
	default:
		return false
	}
}

// Fossil reports whether the source responds to the electricity price.
func (s Source) Fossil() bool {
	return s == SourceGas || s == SourceCoal
}
