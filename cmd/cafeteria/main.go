// Command cafeteria runs the interactive cafeteria self-service simulation.
//
// Usage:
//
//	cafeteria [-config file.yaml] [-capacity N] [-available N]
//	          [-window N] [-return-policy clamp|allow]
//	          [-log-level info] [-interactive-setup]
//
// Reports are written to stdout; structured logs go to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/cafeteria/config"
	"github.com/katalvlaran/cafeteria/internal/console"
	"github.com/katalvlaran/cafeteria/internal/logger"
	"github.com/katalvlaran/cafeteria/sim"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "cafeteria:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	log := logger.New(os.Stderr, level, cfg.Log.Console)

	ui := console.New(os.Stdin, os.Stdout, log)
	simCfg := cfg.Sim()
	if cfg.InteractiveSetup {
		if err := ui.SetupTrays(&simCfg); err != nil {
			return err
		}
	}

	s, err := sim.New(simCfg, sim.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info().
		Int("capacity", simCfg.Capacity).
		Int("available", simCfg.Available).
		Str("return_policy", simCfg.Policy.String()).
		Msg("cafeteria open")

	if err := ui.Run(s); err != nil {
		return err
	}
	st := s.Stats()
	log.Info().
		Int("served", st.Served).
		Int("waiting", st.Waiting).
		Int("trays_out", st.Out).
		Msg("cafeteria closed")

	return nil
}
