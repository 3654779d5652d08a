// Package config implements the Engine Configuration of SPEC_FULL.md's
// ambient stack: the step/state limits the parse and automaton packages
// take as arguments, loaded from an optional TOML file. Grounded on
// dekarrin/tunaq's internal/game/marshaling.go ParseWorldDataFromTOML,
// which decodes TOML bytes with BurntSushi/toml and wraps decode errors.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Engine holds the bounds spec.md §4.4/§4.5/§4.7 leave to the caller: how
// many driver steps to allow before giving up, and how many LR(0) states to
// allow before treating construction as exploded.
type Engine struct {
	LL1StepLimit int `toml:"ll1_step_limit"`
	LR0StepLimit int `toml:"lr0_step_limit"`
	LR0StateCap  int `toml:"lr0_state_cap"`
}

// Default returns the bounds used when no config file is given: generous
// enough for the example grammars of spec.md §8 (a handful of non-terminals,
// inputs of a few symbols) without letting a runaway grammar hang the
// process.
func Default() Engine {
	return Engine{
		LL1StepLimit: 50,
		LR0StepLimit: 20,
		LR0StateCap:  10000,
	}
}

// Load reads an Engine from a TOML file at path, filling any field the file
// omits from Default(). A missing file is not an error: Load returns
// Default() unchanged, since a config file is an optional override, not a
// required one.
func Load(path string) (Engine, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading engine config: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("decoding engine config: %w", err)
	}

	return cfg, nil
}
