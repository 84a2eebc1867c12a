// Package config loads the starting state of a cafeteria run from an
// optional YAML file and command-line flags.
//
// Precedence: built-in defaults, then the YAML file, then flags that were
// explicitly set. Validate checks the merged result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cafeteria/facility"
	"github.com/katalvlaran/cafeteria/ledger"
	"github.com/katalvlaran/cafeteria/sim"
)

// Sentinel errors returned by Validate and Load.
var (
	ErrBadCapacity     = errors.New("config: trays.capacity out of range")
	ErrBadAvailability = errors.New("config: trays.available out of range")
	ErrBadWindow       = errors.New("config: window must be at least 1")
	ErrBadPolicy       = errors.New("config: return_policy must be clamp or allow")
	ErrBadNodes        = errors.New("config: facility.nodes must be at least 1 when edges are given")
	ErrBadLogLevel     = errors.New("config: unknown log level")
)

// Trays holds tray counter settings.
type Trays struct {
	Capacity  int `yaml:"capacity"`
	Available int `yaml:"available"`
}

// Log holds logger settings.
type Log struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// Edge is one corridor of the facility floor.
type Edge struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// Facility describes the floor graph. Zero nodes selects the reference floor.
type Facility struct {
	Nodes int    `yaml:"nodes"`
	Edges []Edge `yaml:"edges"`
}

// Config is the full run configuration.
type Config struct {
	Trays        Trays    `yaml:"trays"`
	Window       int      `yaml:"window"`
	ReturnPolicy string   `yaml:"return_policy"`
	Log          Log      `yaml:"log"`
	Facility     Facility `yaml:"facility"`

	// InteractiveSetup asks for capacity and availability on stdin at
	// startup, like the classic console flow. Flag only.
	InteractiveSetup bool `yaml:"-"`
}

// Default returns capacity 50, 30 trays available, a five-service window,
// clamping returns, info logging and the reference floor.
func Default() Config {
	return Config{
		Trays:        Trays{Capacity: 50, Available: 30},
		Window:       ledger.DefaultWindowSize,
		ReturnPolicy: sim.ClampOnReturn.String(),
		Log:          Log{Level: zerolog.InfoLevel.String(), Console: true},
	}
}

// Decode merges YAML from r into c.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode: %w", err)
	}

	return nil
}

// LoadFile merges the YAML file at path into c.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return c.Decode(f)
}

// Load parses args (without the program name), reads the -config file if
// given, applies explicitly set flags on top and validates the result.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("cafeteria", flag.ContinueOnError)
	path := fs.String("config", "", "path to a YAML configuration file")
	capacity := fs.Int("capacity", 0, "maximum tray capacity [1,500]")
	available := fs.Int("available", 0, "trays available at start [0,capacity]")
	level := fs.String("log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	window := fs.Int("window", 0, "number of recent waits in the rolling average")
	policy := fs.String("return-policy", "", "over-capacity returns: clamp or allow")
	interactive := fs.Bool("interactive-setup", false, "prompt for tray capacity and availability")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "capacity":
			cfg.Trays.Capacity = *capacity
		case "available":
			cfg.Trays.Available = *available
		case "log-level":
			cfg.Log.Level = *level
		case "window":
			cfg.Window = *window
		case "return-policy":
			cfg.ReturnPolicy = *policy
		case "interactive-setup":
			cfg.InteractiveSetup = *interactive
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Trays.Capacity < sim.MinCapacity || c.Trays.Capacity > sim.MaxCapacity {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrBadCapacity, c.Trays.Capacity, sim.MinCapacity, sim.MaxCapacity)
	}
	if c.Trays.Available < 0 || c.Trays.Available > c.Trays.Capacity {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrBadAvailability, c.Trays.Available, c.Trays.Capacity)
	}
	if c.Window < 1 {
		return fmt.Errorf("%w: %d", ErrBadWindow, c.Window)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Facility.Nodes < 0 || (c.Facility.Nodes == 0 && len(c.Facility.Edges) > 0) {
		return fmt.Errorf("%w: %d", ErrBadNodes, c.Facility.Nodes)
	}

	return nil
}

// Policy parses ReturnPolicy.
func (c Config) Policy() (sim.ReturnPolicy, error) {
	switch strings.ToLower(c.ReturnPolicy) {
	case "", "clamp":
		return sim.ClampOnReturn, nil
	case "allow":
		return sim.AllowOverReturn, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadPolicy, c.ReturnPolicy)
	}
}

// Level parses Log.Level.
func (c Config) Level() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrBadLogLevel, c.Log.Level)
	}

	return lvl, nil
}

// Sim converts c into a simulator configuration. c must be valid.
func (c Config) Sim() sim.Config {
	policy, _ := c.Policy()
	out := sim.Config{
		Capacity:   c.Trays.Capacity,
		Available:  c.Trays.Available,
		WindowSize: c.Window,
		Policy:     policy,
		Nodes:      c.Facility.Nodes,
	}
	for _, e := range c.Facility.Edges {
		out.Edges = append(out.Edges, sim.EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}

	return out
}

// SampleFacility returns the reference floor in configuration form, handy
// as a starting point for custom layouts.
func SampleFacility() Facility {
	f := Facility{Nodes: 6}
	for _, e := range facility.SampleEdges() {
		f.Edges = append(f.Edges, Edge{From: e[0], To: e[1], Weight: int64(e[2])})
	}

	return f
}
