package evolution

import (
	"math/rand/v2"

	"grid-scenario/internal/model"

	"gonum.org/v1/gonum/stat/distuv"
)

// MaxPriceShock bounds the relative per-update price move.
const MaxPriceShock = 0.05

// Evolver drifts economic conditions between ticks. Its random source is
// injected so runs can be replayed; an Evolver is not safe for concurrent use.
type Evolver struct {
	shock distuv.Uniform
}

// NewEvolver draws price shocks from src. A nil src uses the global
// math/rand/v2 generator and is not reproducible.
func NewEvolver(src rand.Source) *Evolver {
	return &Evolver{
		shock: distuv.Uniform{Min: -MaxPriceShock, Max: MaxPriceShock, Src: src},
	}
}

// NewSeededEvolver is NewEvolver with a PCG source seeded from seed.
func NewSeededEvolver(seed uint64) *Evolver {
	return NewEvolver(rand.NewPCG(seed, seed))
}

// UpdateEconomicConditions applies trends to the economic indicators and a
// uniform random shock in [-5%, +5%) to each price, electricity first.
//
// The update is in place: the caller hands s to the Evolver for the duration
// of the call and observes the new values afterwards. s is returned for
// chaining. Nothing is modified when a required field is missing.
func (e *Evolver) UpdateEconomicConditions(s *model.State, trends model.Trends) (*model.State, error) {
	if s == nil {
		return nil, &model.ValidationError{Record: "state", Reason: "state is nil"}
	}
	if err := model.Require("economic_conditions",
		model.Field{Name: "inflation_rate", Value: s.Economic.InflationRate},
		model.Field{Name: "gdp_growth_rate", Value: s.Economic.GDPGrowthRate},
	); err != nil {
		return nil, err
	}
	if err := model.Require("energy_market_conditions",
		model.Field{Name: "electricity_price", Value: s.Market.ElectricityPrice},
		model.Field{Name: "gas_price", Value: s.Market.GasPrice},
	); err != nil {
		return nil, err
	}

	s.Economic.InflationRate = model.Float(*s.Economic.InflationRate + trends.InflationChange)
	s.Economic.GDPGrowthRate = model.Float(*s.Economic.GDPGrowthRate + trends.GDPGrowthChange)
	s.Market.ElectricityPrice = model.Float(*s.Market.ElectricityPrice * (1 + e.shock.Rand()))
	s.Market.GasPrice = model.Float(*s.Market.GasPrice * (1 + e.shock.Rand()))
	return s, nil
}
