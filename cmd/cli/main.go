package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"grid-scenario/internal/config"
	"grid-scenario/internal/evolution"
	"grid-scenario/internal/model"
	"grid-scenario/internal/simulate"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "simulate":
		err = cmdSimulate(os.Args[2:])
	case "tick":
		err = cmdTick(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/scenario.yaml --out results/ledger.csv")
	fmt.Println("  cli tick [--config examples/scenario.yaml] [--at 2024-01-15T18:00:00Z]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate writes one CSV row per GSP group per tick plus a national (UK) row")
	fmt.Println("  - tick prints a single pipeline pass; without --config the built-in two-region scenario is used")
}

func cmdSimulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	outPath := fs.String("out", "results/ledger.csv", "Output CSV path")
	ticks := fs.Int("ticks", 0, "Optional: override run.ticks (0=config)")
	seed := fs.Uint64("seed", 0, "Optional: override run.seed (0=config)")
	verbose := fs.BoolP("verbose", "v", false, "Log every tick")
	_ = fs.Parse(args)

	log, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *ticks > 0 {
		cfg.Run.Ticks = *ticks
	}
	if *seed != 0 {
		cfg.Run.Seed = *seed
	}
	start, err := cfg.StartTime()
	if err != nil {
		return err
	}
	step, err := cfg.StepDuration()
	if err != nil {
		return err
	}

	engine := simulate.New(log, evolution.NewSeededEvolver(cfg.Run.Seed))
	res, err := engine.Run(simulate.Scenario{
		Baseline: cfg.Baseline,
		Trends:   cfg.Trends,
		Groups:   cfg.GSPGroups,
		Start:    start,
		Step:     step,
		Ticks:    cfg.Run.Ticks,
	})
	if err != nil {
		return err
	}

	if err := simulate.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		return err
	}

	fmt.Printf("Run %s: wrote %d rows to %s\n", res.RunID, len(res.Ledger), *outPath)
	fmt.Printf("Final electricity price=%.2f gas price=%.2f\n",
		model.Value(res.FinalState.Market.ElectricityPrice),
		model.Value(res.FinalState.Market.GasPrice))
	return nil
}

func cmdTick(args []string) error {
	fs := flag.NewFlagSet("tick", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario (optional)")
	at := fs.String("at", "", "Tick time, RFC3339 (default: run.start)")
	_ = fs.Parse(args)

	log, err := newLogger(false)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	ts, err := cfg.StartTime()
	if err != nil {
		return err
	}
	if *at != "" {
		if ts, err = time.Parse(time.RFC3339, *at); err != nil {
			return fmt.Errorf("--at: %w", err)
		}
	}

	groups := model.CloneGroups(cfg.GSPGroups)
	if err := evolution.SimulateDemandFluctuations(groups, ts); err != nil {
		return err
	}
	tr, err := simulate.New(log, nil).Tick(cfg.Baseline, groups, ts)
	if err != nil {
		return err
	}
	printTick(tr)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func printTick(tr *simulate.TickResult) {
	fmt.Printf("Tick at %s\n\n", tr.Time.Format(time.RFC3339))

	fmt.Printf("%-10s %14s %14s\n", "source", "generation", "exported")
	for _, s := range model.Sources() {
		fmt.Printf("%-10s %14.2f %14.2f\n", s, tr.Generation.BySource[s], tr.Exports[s])
	}
	fmt.Printf("%-10s %14.2f\n\n", "total", tr.Generation.Total)

	fmt.Printf("transmission: capacity=%.0f efficiency=%.2f%% actual=%.2f\n",
		tr.Transmission.Capacity, tr.Transmission.Efficiency, tr.Transmission.ActualTransmission)
	fmt.Printf("gas network:  production=%.2f import=%.2f export=%.2f net=%.2f\n\n",
		tr.Gas.Production, tr.Gas.Import, tr.Gas.Export, tr.Gas.NetAvailability)

	names := make([]string, 0, len(tr.Flows))
	for name := range tr.Flows {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("%-10s %12s %12s %16s %16s\n", "gsp", "net elec i/e", "net gas i/e", "net elec demand", "net gas demand")
	for _, name := range names {
		fl := tr.Flows[name]
		d := tr.Demand.ByGroup[name]
		fmt.Printf("%-10s %12.2f %12.2f %16.2f %16.2f\n", name, fl.NetElectricity, fl.NetGas, d.Electricity, d.Gas)
	}
	fmt.Printf("%-10s %12s %12s %16.2f %16.2f\n", simulate.NationalScope, "", "", tr.Demand.Total.Electricity, tr.Demand.Total.Gas)
}
