// Package driver defines the line-protocol interfaces a CLI (such as
// cmd/lgo) speaks to drive a search: parsed command forms and
// the startup options that configure a run. The core only ever consumes the
// parsed forms in this package; it does no I/O, argument parsing, or REPL
// looping itself -- that remains the driver's job.
//
// Grounded on morlock's pkg/engine/console and pkg/engine/uci Driver
// shape (ReadStdinLines/WriteStdoutLines-fed process loop dispatching on a
// parsed command), reduced here to the parsing/types layer alone: the
// interactive REPL loop, 2-D chess board rendering, and opening-book
// dependent command handling those packages implement are out of scope
// here.
package driver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/lgo/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Command is a parsed solver CLI command.
type Command interface {
	isCommand()
}

// Run starts a search from the root with the given move prefix applied.
type Run struct {
	Moves []board.Move
}

func (Run) isCommand() {}

// Halt requests the active search unwind cooperatively.
type Halt struct{}

func (Halt) isCommand() {}

// Inspect requests the nodes searched so far and the current best value,
// without halting the search.
type Inspect struct{}

func (Inspect) isCommand() {}

// ParseCommand parses one line of the solver CLI protocol: "r <move>...",
// "h", or "i".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	switch strings.ToLower(fields[0]) {
	case "r", "run":
		var moves []board.Move
		for _, f := range fields[1:] {
			m, err := board.ParseMove(f)
			if err != nil {
				return nil, fmt.Errorf("invalid move %q: %w", f, err)
			}
			moves = append(moves, m)
		}
		return Run{Moves: moves}, nil
	case "h", "halt":
		return Halt{}, nil
	case "i", "inspect":
		return Inspect{}, nil
	default:
		return nil, fmt.Errorf("unrecognized command: %q", line)
	}
}

// StartupOptions are the solver's startup configuration: initial window
// bounds, an optional MTD-style first guess that overrides them, and an
// optional prefix of moves to apply before searching.
type StartupOptions struct {
	Alpha, Beta int
	Guess       lang.Optional[int]
	Prefix      []board.Move
}

// Window resolves the effective initial (alpha, beta) window, applying
// Guess's override ([g-1, g+1]) if set.
func (o StartupOptions) Window() (alpha, beta int) {
	if g, ok := o.Guess.V(); ok {
		return g - 1, g + 1
	}
	return o.Alpha, o.Beta
}

// Validate reports an invalid-bounds error suitable for a nonzero driver
// exit code: alpha must not exceed beta in the resolved window.
func (o StartupOptions) Validate() error {
	alpha, beta := o.Window()
	if alpha > beta {
		return fmt.Errorf("invalid bounds: alpha=%v > beta=%v", alpha, beta)
	}
	return nil
}

// ParseStartupOptions parses the CLI startup flags form "alpha=<n>
// beta=<n> guess=<n> prefix=<move>,<move>,...", each field optional.
func ParseStartupOptions(args []string) (StartupOptions, error) {
	var opt StartupOptions
	for _, arg := range args {
		kv := strings.SplitN(arg, "=", 2)
		if len(kv) != 2 {
			return StartupOptions{}, fmt.Errorf("invalid option %q", arg)
		}
		key, value := strings.ToLower(kv[0]), kv[1]

		switch key {
		case "alpha":
			n, err := strconv.Atoi(value)
			if err != nil {
				return StartupOptions{}, fmt.Errorf("invalid alpha: %w", err)
			}
			opt.Alpha = n
		case "beta":
			n, err := strconv.Atoi(value)
			if err != nil {
				return StartupOptions{}, fmt.Errorf("invalid beta: %w", err)
			}
			opt.Beta = n
		case "guess":
			n, err := strconv.Atoi(value)
			if err != nil {
				return StartupOptions{}, fmt.Errorf("invalid guess: %w", err)
			}
			opt.Guess = lang.Some(n)
		case "prefix":
			for _, tok := range strings.Split(value, ",") {
				m, err := board.ParseMove(tok)
				if err != nil {
					return StartupOptions{}, fmt.Errorf("invalid prefix move %q: %w", tok, err)
				}
				opt.Prefix = append(opt.Prefix, m)
			}
		default:
			return StartupOptions{}, fmt.Errorf("unrecognized option %q", key)
		}
	}
	return opt, nil
}
