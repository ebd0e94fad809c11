package simulate

import (
	"errors"
	"fmt"
	"time"

	"grid-scenario/internal/evolution"
	"grid-scenario/internal/grid"
	"grid-scenario/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scenario is everything a multi-tick run needs. Baseline and Groups are
// copied at the start of Run and never modified.
type Scenario struct {
	Baseline model.State
	Trends   model.Trends
	Groups   []model.GSPGroup

	Start time.Time
	Step  time.Duration
	Ticks int
}

type Engine struct {
	log     *zap.Logger
	evolver *evolution.Evolver
}

// New returns an Engine. A nil logger discards output. evolver may be nil
// for single ticks; Run requires it.
func New(log *zap.Logger, evolver *evolution.Evolver) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log, evolver: evolver}
}

// Tick runs one pass of the grid pipeline for the given conditions and
// groups. Inputs are read only. Any component error aborts the tick.
func (e *Engine) Tick(state model.State, groups []model.GSPGroup, ts time.Time) (*TickResult, error) {
	gen, err := grid.Generation(state.Economic, state.Weather, state.Market)
	if err != nil {
		return nil, fmt.Errorf("generation: %w", err)
	}
	gas, err := grid.GasNetwork(state.Economic, state.Market)
	if err != nil {
		return nil, fmt.Errorf("gas network: %w", err)
	}
	tx, err := grid.Transmission(gen.Total, state.Weather)
	if err != nil {
		return nil, fmt.Errorf("transmission: %w", err)
	}
	flows, err := grid.RegionalFlows(groups, state.Economic, state.Market)
	if err != nil {
		return nil, fmt.Errorf("regional flows: %w", err)
	}
	exports, err := grid.AttributeExports(gen, flows)
	if err != nil {
		return nil, fmt.Errorf("export attribution: %w", err)
	}
	demand, err := grid.NetDemand(groups, gen, gas)
	if err != nil {
		return nil, fmt.Errorf("net demand: %w", err)
	}

	if tx.Efficiency < 0 {
		e.log.Warn("transmission efficiency below zero",
			zap.Time("time", ts),
			zap.Float64("efficiency_pct", tx.Efficiency),
			zap.Float64("temperature_c", model.Value(state.Weather.AverageTemperature)))
	}
	if f := grid.FossilPriceFactor(*state.Market.ElectricityPrice); f < 0 {
		e.log.Warn("fossil price factor below zero",
			zap.Time("time", ts),
			zap.Float64("factor", f),
			zap.Float64("electricity_price", *state.Market.ElectricityPrice))
	}

	return &TickResult{
		Time:         ts,
		State:        state.Clone(),
		Groups:       model.CloneGroups(groups),
		Generation:   gen,
		Transmission: tx,
		Gas:          gas,
		Flows:        flows,
		Exports:      exports,
		Demand:       demand,
	}, nil
}

// Run executes sc.Ticks ticks starting at sc.Start. Each tick applies the
// time-of-day and seasonal demand multipliers to a fresh copy of the base
// groups, runs the pipeline, then drifts the economic conditions for the
// next tick.
func (e *Engine) Run(sc Scenario) (*Result, error) {
	if e.evolver == nil {
		return nil, errors.New("evolver is nil")
	}
	if sc.Ticks <= 0 {
		return nil, errors.New("no ticks")
	}
	if sc.Step <= 0 {
		return nil, fmt.Errorf("step must be > 0 (got %s)", sc.Step)
	}
	if len(sc.Groups) == 0 {
		return nil, errors.New("no gsp groups")
	}

	runID := uuid.New()
	log := e.log.With(zap.String("run_id", runID.String()))
	log.Info("run started",
		zap.Int("ticks", sc.Ticks),
		zap.Int("gsp_groups", len(sc.Groups)),
		zap.Time("start", sc.Start),
		zap.Duration("step", sc.Step))

	state := sc.Baseline.Clone()
	res := &Result{
		RunID: runID,
		Ticks: make([]TickResult, 0, sc.Ticks),
	}
	ledger := make([]LedgerRow, 0, sc.Ticks*(len(sc.Groups)+1))

	for idx := 0; idx < sc.Ticks; idx++ {
		ts := sc.Start.Add(time.Duration(idx) * sc.Step)

		groups := model.CloneGroups(sc.Groups)
		if err := evolution.SimulateDemandFluctuations(groups, ts); err != nil {
			return nil, fmt.Errorf("tick %d demand fluctuation: %w", idx, err)
		}
		tr, err := e.Tick(state, groups, ts)
		if err != nil {
			return nil, fmt.Errorf("tick %d: %w", idx, err)
		}
		res.Ticks = append(res.Ticks, *tr)
		ledger = append(ledger, ledgerRows(runID, idx, tr)...)

		log.Debug("tick",
			zap.Int("index", idx),
			zap.Time("time", ts),
			zap.Float64("total_generation_mwh", tr.Generation.Total),
			zap.Float64("actual_transmission_mwh", tr.Transmission.ActualTransmission),
			zap.Float64("gas_net_availability", tr.Gas.NetAvailability),
			zap.Float64("net_electricity_demand", tr.Demand.Total.Electricity),
			zap.Float64("net_gas_demand", tr.Demand.Total.Gas))

		if _, err := e.evolver.UpdateEconomicConditions(&state, sc.Trends); err != nil {
			return nil, fmt.Errorf("tick %d economic update: %w", idx, err)
		}
	}

	res.Ledger = ledger
	res.FinalState = state
	log.Info("run finished",
		zap.Int("ledger_rows", len(ledger)),
		zap.Float64("final_electricity_price", model.Value(state.Market.ElectricityPrice)),
		zap.Float64("final_gas_price", model.Value(state.Market.GasPrice)))
	return res, nil
}
