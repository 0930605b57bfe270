package engine

import (
	"fmt"
	"os"

	"github.com/seekerror/stdlib/pkg/lang"
	"gopkg.in/yaml.v3"
)

// configFile is the on-disk shape of an optional YAML startup file: the
// same search knobs Options carries, plus the startup window guess the
// driver layer applies before the first search. A real CLI loads this kind
// of file instead of hand-rolling flag parsing for every knob.
//
// Grounded on SPEC_FULL.md §2's config-file ambient stack entry.
type configFile struct {
	Depth    uint `yaml:"depth"`
	Hash     uint `yaml:"hash"`
	Telomere bool `yaml:"telomere"`
	Guess    *int `yaml:"guess"`
}

// LoadOptions reads a YAML file of search options. The returned Guess is
// the driver's startup window guess, if the file set one; it is not part
// of Options since it configures the search window, not the engine.
func LoadOptions(path string) (Options, lang.Optional[int], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, lang.None[int](), fmt.Errorf("read config %v: %w", path, err)
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Options{}, lang.None[int](), fmt.Errorf("parse config %v: %w", path, err)
	}

	opts := Options{Depth: cfg.Depth, Hash: cfg.Hash, EnableTelomere: cfg.Telomere}

	guess := lang.None[int]()
	if cfg.Guess != nil {
		guess = lang.Some(*cfg.Guess)
	}
	return opts, guess, nil
}
