package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"grid-scenario/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTicks = 24
	DefaultStep  = time.Hour
)

// DefaultStart is the first tick of a run when run.start is omitted.
var DefaultStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	// Optional: load the baseline from a separate YAML (e.g. examples/baseline.yaml).
	// Fields set in Baseline override the file.
	BaselineFile string      `yaml:"baseline_file"`
	Baseline     model.State `yaml:"baseline"`

	Trends model.Trends `yaml:"trends"`

	// Optional: load GSP groups from a separate YAML. Inline groups override
	// file groups with the same name and are appended otherwise.
	GSPGroupsFile string           `yaml:"gsp_groups_file"`
	GSPGroups     []model.GSPGroup `yaml:"gsp_groups"`

	Run RunConfig `yaml:"run"`
}

type RunConfig struct {
	Ticks int    `yaml:"ticks"`
	Start string `yaml:"start"` // RFC3339
	Step  string `yaml:"step"`  // time.ParseDuration syntax
	Seed  uint64 `yaml:"seed"`
}

// DefaultBaseline returns the reference conditions: 2.5% inflation, 1.5% GDP
// growth, electricity at 100 and gas at 75 per MWh, 10 °C and 15 km/h wind.
// Solar irradiance and cloud cover have no reference value and must be
// supplied by the caller.
func DefaultBaseline() model.State {
	return model.State{
		Economic: model.EconomicConditions{
			InflationRate: model.Float(2.5),
			GDPGrowthRate: model.Float(1.5),
		},
		Market: model.EnergyMarketConditions{
			ElectricityPrice: model.Float(100),
			GasPrice:         model.Float(75),
		},
		Weather: model.WeatherConditions{
			AverageTemperature: model.Float(10),
			WindSpeed:          model.Float(15),
		},
	}
}

// Default is a complete two-region scenario built on DefaultBaseline,
// used when no config file is given.
func Default() *Config {
	b := DefaultBaseline()
	b.Weather.WindSpeed = model.Float(20)
	b.Weather.SolarIrradiance = model.Float(800)
	b.Weather.CloudCover = model.Float(0)
	return &Config{
		Baseline: b,
		GSPGroups: []model.GSPGroup{
			{
				Name:              "GSP1",
				ElectricityImport: model.Float(120),
				ElectricityExport: model.Float(80),
				GasImport:         model.Float(60),
				GasExport:         model.Float(40),
				ElectricityDemand: model.Float(150),
				GasDemand:         model.Float(180),
			},
			{
				Name:              "GSP2",
				ElectricityImport: model.Float(90),
				ElectricityExport: model.Float(110),
				GasImport:         model.Float(30),
				GasExport:         model.Float(55),
				ElectricityDemand: model.Float(130),
				GasDemand:         model.Float(160),
			},
		},
		Run: RunConfig{
			Ticks: DefaultTicks,
			Start: DefaultStart.Format(time.RFC3339),
			Step:  DefaultStep.String(),
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyRunDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.BaselineFile != "" {
		var w baselineFileWrapper
		if err := loadYAML(resolve(path, c.BaselineFile), &w); err != nil {
			return nil, err
		}
		c.Baseline = MergeState(w.Baseline, c.Baseline)
	}
	if c.GSPGroupsFile != "" {
		var w groupsFileWrapper
		if err := loadYAML(resolve(path, c.GSPGroupsFile), &w); err != nil {
			return nil, err
		}
		c.GSPGroups = MergeGroups(w.GSPGroups, c.GSPGroups)
	}
	return &c, nil
}

func (c *Config) applyRunDefaults() {
	if c.Run.Ticks == 0 {
		c.Run.Ticks = DefaultTicks
	}
	if c.Run.Start == "" {
		c.Run.Start = DefaultStart.Format(time.RFC3339)
	}
	if c.Run.Step == "" {
		c.Run.Step = DefaultStep.String()
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Baseline.RequireAll(); err != nil {
		return fmt.Errorf("baseline invalid: %w", err)
	}
	if err := requireFinite(c.Baseline, c.GSPGroups); err != nil {
		return err
	}
	if len(c.GSPGroups) == 0 {
		return errors.New("gsp_groups: at least one group is required")
	}
	if err := model.ValidateGroupNames(c.GSPGroups); err != nil {
		return err
	}
	for _, g := range c.GSPGroups {
		if err := g.RequireFlows(); err != nil {
			return err
		}
		if err := g.RequireDemand(); err != nil {
			return err
		}
	}
	if c.Run.Ticks < 0 {
		return errors.New("run.ticks must be >= 0")
	}
	if _, err := c.StartTime(); err != nil {
		return err
	}
	if _, err := c.StepDuration(); err != nil {
		return err
	}
	return nil
}

// StartTime parses run.start.
func (c *Config) StartTime() (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, c.Run.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("run.start: %w", err)
	}
	return ts, nil
}

// StepDuration parses run.step; it must be positive.
func (c *Config) StepDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Run.Step)
	if err != nil {
		return 0, fmt.Errorf("run.step: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("run.step must be > 0 (got %s)", d)
	}
	return d, nil
}

type baselineFileWrapper struct {
	Baseline model.State `yaml:"baseline"`
}

type groupsFileWrapper struct {
	GSPGroups []model.GSPGroup `yaml:"gsp_groups"`
}

func loadYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// resolve interprets a relative path as relative to the config file
// directory, falling back to the provided path (relative to cwd) if that
// doesn't exist.
func resolve(configPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(filepath.Dir(configPath), p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}

// MergeState overlays the non-nil fields of override onto base.
func MergeState(base, override model.State) model.State {
	out := base.Clone()
	o := override.Clone()
	overlay(&out.Economic.InflationRate, o.Economic.InflationRate)
	overlay(&out.Economic.GDPGrowthRate, o.Economic.GDPGrowthRate)
	overlay(&out.Market.ElectricityPrice, o.Market.ElectricityPrice)
	overlay(&out.Market.GasPrice, o.Market.GasPrice)
	overlay(&out.Weather.AverageTemperature, o.Weather.AverageTemperature)
	overlay(&out.Weather.WindSpeed, o.Weather.WindSpeed)
	overlay(&out.Weather.SolarIrradiance, o.Weather.SolarIrradiance)
	overlay(&out.Weather.Humidity, o.Weather.Humidity)
	overlay(&out.Weather.CloudCover, o.Weather.CloudCover)
	return out
}

// MergeGroups returns base with each override group replacing the base
// group of the same name field by field; unmatched overrides are appended.
func MergeGroups(base, override []model.GSPGroup) []model.GSPGroup {
	out := model.CloneGroups(base)
	index := make(map[string]int, len(out))
	for i, g := range out {
		index[g.Name] = i
	}
	for _, o := range override {
		o = o.Clone()
		i, ok := index[o.Name]
		if !ok {
			index[o.Name] = len(out)
			out = append(out, o)
			continue
		}
		g := &out[i]
		overlay(&g.ElectricityImport, o.ElectricityImport)
		overlay(&g.ElectricityExport, o.ElectricityExport)
		overlay(&g.GasImport, o.GasImport)
		overlay(&g.GasExport, o.GasExport)
		overlay(&g.ElectricityDemand, o.ElectricityDemand)
		overlay(&g.GasDemand, o.GasDemand)
	}
	return out
}

func overlay(dst **float64, v *float64) {
	if v != nil {
		*dst = v
	}
}

func requireFinite(s model.State, groups []model.GSPGroup) error {
	check := func(record string, fields ...model.Field) error {
		for _, f := range fields {
			if f.Value != nil && (math.IsNaN(*f.Value) || math.IsInf(*f.Value, 0)) {
				return &model.ValidationError{
					Record: record,
					Reason: fmt.Sprintf("%s must be finite", f.Name),
				}
			}
		}
		return nil
	}
	if err := check("baseline",
		model.Field{Name: "inflation_rate", Value: s.Economic.InflationRate},
		model.Field{Name: "gdp_growth_rate", Value: s.Economic.GDPGrowthRate},
		model.Field{Name: "electricity_price", Value: s.Market.ElectricityPrice},
		model.Field{Name: "gas_price", Value: s.Market.GasPrice},
		model.Field{Name: "average_temperature", Value: s.Weather.AverageTemperature},
		model.Field{Name: "wind_speed", Value: s.Weather.WindSpeed},
		model.Field{Name: "solar_irradiance", Value: s.Weather.SolarIrradiance},
		model.Field{Name: "humidity", Value: s.Weather.Humidity},
		model.Field{Name: "cloud_cover", Value: s.Weather.CloudCover},
	); err != nil {
		return err
	}
	for _, g := range groups {
		if err := check(fmt.Sprintf("gsp_group %q", g.Name),
			model.Field{Name: "electricity_import", Value: g.ElectricityImport},
			model.Field{Name: "electricity_export", Value: g.ElectricityExport},
			model.Field{Name: "gas_import", Value: g.GasImport},
			model.Field{Name: "gas_export", Value: g.GasExport},
			model.Field{Name: "electricity_demand", Value: g.ElectricityDemand},
			model.Field{Name: "gas_demand", Value: g.GasDemand},
		); err != nil {
			return err
		}
	}
	return nil
}
