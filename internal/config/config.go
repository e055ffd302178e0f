// Package config loads the gridpath run configuration from YAML.
//
// A document is first validated against an embedded JSON schema, then
// decoded over Default(), so every key is optional.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrInvalid wraps every schema or semantic validation failure.
var ErrInvalid = errors.New("config: invalid")

//go:embed config.schema.json
var schemaJSON string

const schemaURL = "config.schema.json"

// Config is the whole run configuration, one field per YAML section.
type Config struct {
	Grid        Grid        `yaml:"grid"`
	Search      Search      `yaml:"search"`
	Driver      Driver      `yaml:"driver"`
	Observer    Observer    `yaml:"observer"`
	Persistence Persistence `yaml:"persistence"`
}

// Grid sizes the grid and generates its walls.
type Grid struct {
	Columns       int     `yaml:"columns"`
	Rows          int     `yaml:"rows"`
	Connectivity  int     `yaml:"connectivity"`
	WallDensity   float64 `yaml:"wall_density"`
	Seed          int64   `yaml:"seed"`
	EnsurePassage bool    `yaml:"ensure_passage"`
}

// Point is a grid coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Search selects endpoints, cost model, heuristic and step budget.
type Search struct {
	// Start defaults to the top-left corner, End to the bottom-right one.
	Start      *Point `yaml:"start"`
	End        *Point `yaml:"end"`
	CostModel  string `yaml:"cost_model"`
	Heuristic  string `yaml:"heuristic"`
	StepBudget int    `yaml:"step_budget"`
}

// Driver paces the tick loop.
type Driver struct {
	TickRateHz float64 `yaml:"tick_rate_hz"`
	MaxTicks   int     `yaml:"max_ticks"`
	Smoothing  float64 `yaml:"smoothing"`
}

// Observer enables the websocket feed when Listen is set.
type Observer struct {
	Listen string `yaml:"listen"`
}

// Persistence names the optional snapshot file and run index database.
type Persistence struct {
	SnapshotPath string `yaml:"snapshot_path"`
	IndexDB      string `yaml:"index_db"`
}

// Default returns the stock configuration: a 50×50 8-connected grid, 30%
// walls, one full search per tick at 60 Hz.
func Default() Config {
	return Config{
		Grid: Grid{
			Columns:       50,
			Rows:          50,
			Connectivity:  8,
			WallDensity:   0.3,
			Seed:          1,
			EnsurePassage: false,
		},
		Search: Search{
			CostModel:  "uniform",
			Heuristic:  "chebyshev",
			StepBudget: 0,
		},
		Driver: Driver{
			TickRateHz: 60,
			MaxTicks:   0,
			Smoothing:  0.9,
		},
	}
}

// Load reads, schema-validates and decodes the YAML file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates and decodes a YAML document over Default().
func Parse(raw []byte) (Config, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if doc != nil {
		if err := validateSchema(doc); err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validateSchema round-trips the YAML tree through JSON so the validator
// sees the same value types a JSON document would produce.
func validateSchema(doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return err
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Validate checks constraints the schema cannot express.
func (c Config) Validate() error {
	g := c.Grid
	if g.Columns <= 0 || g.Rows <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, g.Columns, g.Rows)
	}
	if g.Connectivity != 4 && g.Connectivity != 8 {
		return fmt.Errorf("%w: connectivity %d", ErrInvalid, g.Connectivity)
	}
	if g.WallDensity < 0 || g.WallDensity > 1 {
		return fmt.Errorf("%w: wall_density %v", ErrInvalid, g.WallDensity)
	}
	for name, p := range map[string]Point{"start": c.StartPoint(), "end": c.EndPoint()} {
		if p.X < 0 || p.X >= g.Columns || p.Y < 0 || p.Y >= g.Rows {
			return fmt.Errorf("%w: %s (%d,%d) outside %dx%d", ErrInvalid, name, p.X, p.Y, g.Columns, g.Rows)
		}
	}
	if _, err := c.CostModel(); err != nil {
		return err
	}
	if _, ok := astar.HeuristicByName(c.Search.Heuristic); !ok {
		return fmt.Errorf("%w: heuristic %q", ErrInvalid, c.Search.Heuristic)
	}
	if c.Search.StepBudget < 0 {
		return fmt.Errorf("%w: step_budget %d", ErrInvalid, c.Search.StepBudget)
	}
	if c.Driver.TickRateHz <= 0 {
		return fmt.Errorf("%w: tick_rate_hz %v", ErrInvalid, c.Driver.TickRateHz)
	}
	if c.Driver.Smoothing < 0 || c.Driver.Smoothing >= 1 {
		return fmt.Errorf("%w: smoothing %v", ErrInvalid, c.Driver.Smoothing)
	}
	return nil
}

// StartPoint resolves the configured start, defaulting to (0,0).
func (c Config) StartPoint() Point {
	if c.Search.Start != nil {
		return *c.Search.Start
	}
	return Point{}
}

// EndPoint resolves the configured end, defaulting to the last cell.
func (c Config) EndPoint() Point {
	if c.Search.End != nil {
		return *c.Search.End
	}
	return Point{X: c.Grid.Columns - 1, Y: c.Grid.Rows - 1}
}

// GridOptions maps the grid section onto gridgraph options.
func (c Config) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if c.Grid.Connectivity == 4 {
		opts.Conn = gridgraph.Conn4
	}
	if c.Grid.WallDensity > 0 {
		opts.Walls = gridgraph.RandomWalls(c.Grid.Seed, c.Grid.WallDensity)
	}
	return opts
}

// CostModel resolves search.cost_model; an empty name means uniform.
func (c Config) CostModel() (astar.CostModel, error) {
	switch c.Search.CostModel {
	case "uniform", "":
		return astar.CostUniform, nil
	case "octile":
		return astar.CostOctile, nil
	}
	return 0, fmt.Errorf("%w: cost_model %q", ErrInvalid, c.Search.CostModel)
}

// SearchOptions maps the search section onto astar options.
func (c Config) SearchOptions() []astar.Option {
	h, _ := astar.HeuristicByName(c.Search.Heuristic)
	cm, _ := c.CostModel()
	return []astar.Option{
		astar.WithHeuristic(h),
		astar.WithCostModel(cm),
		astar.WithStepBudget(c.Search.StepBudget),
	}
}
