package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/herohde/lgo/pkg/driver"
	"github.com/herohde/lgo/pkg/engine"
	"github.com/herohde/lgo/pkg/search/searchctl"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

var (
	size     = flag.Int("size", 9, "Board size, in [1,16]")
	depth    = flag.Uint("depth", 0, "Search depth limit (0: unlimited)")
	hash     = flag.Uint("hash", 0, "Transposition table size in MB (0: disabled)")
	telomere = flag.Bool("telomere", false, "Enable the Telomere pruning conjecture")
	mtdf     = flag.Bool("mtdf", false, "Use the MTD(f) search driver instead of iterative deepening")
	seed     = flag.Int64("seed", 0, "Zobrist hash seed")
	config   = flag.String("config", "", "Optional YAML file of search options (depth/hash/telomere/guess)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: lgo [options] [startup option]...

lgo is a solver for Linear Go, a 1-D territory-scoring Go variant. Trailing
arguments are startup options in "key=value" form (alpha=<n>, beta=<n>,
guess=<n>, prefix=<move>,<move>,...); the board then reads driver commands
("r <move>...", "h", "i") from stdin, one per line, and writes
principal-variation updates to stdout.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	startup, err := driver.ParseStartupOptions(flag.Args())
	if err != nil {
		logw.Exitf(ctx, "invalid startup options: %v", err)
	}

	eopts := engine.Options{Depth: *depth, Hash: *hash, EnableTelomere: *telomere}
	if *config != "" {
		cfgOpts, guess, err := engine.LoadOptions(*config)
		if err != nil {
			logw.Exitf(ctx, "invalid config: %v", err)
		}
		eopts = cfgOpts
		if g, ok := guess.V(); ok {
			if _, set := startup.Guess.V(); !set {
				startup.Guess = guess
			}
			logw.Debugf(ctx, "Config guess: %v", g)
		}
	}

	if err := startup.Validate(); err != nil {
		logw.Exitf(ctx, "invalid startup options: %v", err)
	}
	alpha, beta := startup.Window()
	logw.Infof(ctx, "Startup window: [%v, %v], prefix=%v", alpha, beta, startup.Prefix)

	opts := []engine.Option{engine.WithOptions(eopts)}
	if *mtdf {
		opts = append(opts, engine.WithMTDf())
	}
	if *seed != 0 {
		opts = append(opts, engine.WithZobrist(*seed))
	}

	e := engine.New(ctx, "lgo", "herohde", *size, opts...)
	for _, m := range startup.Prefix {
		if err := e.Move(ctx, m.String()); err != nil {
			logw.Exitf(ctx, "invalid prefix move %v: %v", m, err)
		}
	}

	lines := engine.ReadStdinLines(ctx)
	out := make(chan string, 1)
	go engine.WriteStdoutLines(ctx, out)

	d := newDriverLoop(ctx, e, out)
	for line := range lines {
		if err := d.handle(line); err != nil {
			logw.Errorf(ctx, "Command %q failed: %v", line, err)
		}
	}
	d.haltIfActive()
}

// driverLoop dispatches parsed driver.Command values against an Engine,
// caching the most recent PV so Inspect can report on it without halting
// the active search, and writing PV/status lines to out rather than stdout
// directly.
//
// Grounded on morlock's cmd/morlock/main.go (protocol-line dispatch loop
// over a running engine, feeding output through engine.WriteStdoutLines),
// adapted from a two-protocol (UCI/console) switch to driver's single
// Run/Halt/Inspect command set. active is an atomic.Bool rather than a
// mutex-guarded bool, the same handle-flag pattern morlock's historical
// pkg/search.Iterative used for its initialized/done flags.
type driverLoop struct {
	ctx context.Context
	e   *engine.Engine
	out chan<- string

	active atomic.Bool

	mu     sync.Mutex
	latest searchctl.PV
}

func newDriverLoop(ctx context.Context, e *engine.Engine, out chan<- string) *driverLoop {
	return &driverLoop{ctx: ctx, e: e, out: out}
}

func (d *driverLoop) handle(line string) error {
	cmd, err := driver.ParseCommand(line)
	if err != nil {
		return err
	}

	switch c := cmd.(type) {
	case driver.Run:
		return d.run(c)
	case driver.Halt:
		return d.halt()
	case driver.Inspect:
		return d.inspect()
	default:
		return fmt.Errorf("unhandled command: %T", c)
	}
}

func (d *driverLoop) run(c driver.Run) error {
	d.haltIfActive()

	for _, m := range c.Moves {
		if err := d.e.Move(d.ctx, m.String()); err != nil {
			return err
		}
	}

	out, err := d.e.Analyze(d.ctx, searchctl.Options{})
	if err != nil {
		return err
	}

	d.active.Store(true)

	go func() {
		for pv := range out {
			d.mu.Lock()
			d.latest = pv
			d.mu.Unlock()
			d.out <- pv.String()
		}
		d.active.Store(false)
	}()
	return nil
}

func (d *driverLoop) halt() error {
	pv, err := d.e.Halt(d.ctx)
	if err != nil {
		return err
	}
	d.out <- pv.String()
	return nil
}

func (d *driverLoop) inspect() error {
	d.mu.Lock()
	pv := d.latest
	d.mu.Unlock()

	d.out <- fmt.Sprintf("position=%v active=%v %v", d.e.Position(), d.active.Load(), pv)
	return nil
}

func (d *driverLoop) haltIfActive() {
	if d.active.Load() {
		_, _ = d.e.Halt(d.ctx)
	}
}
