// Package engine wraps board.State and the search stack behind a
// synchronized, REPL-friendly API: reset/move/takeback/analyze/halt, the
// same shape a driving CLI or protocol adapter expects.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
	"github.com/herohde/lgo/pkg/search/searchctl"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are search creation options.
type Options struct {
	// Depth is the search depth limit. If zero, there is no limit. Overridden
	// by search options if provided.
	Depth uint
	// Hash is the transposition table size in MB. If zero, the engine will
	// not use a transposition table.
	Hash uint
	// EnableTelomere turns on the Telomere pruning conjecture. Off by
	// off unless explicitly enabled, since it needs further validation against deeper search.
	EnableTelomere bool
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%v, telomere=%v}", o.Depth, o.Hash, o.EnableTelomere)
}

// Engine encapsulates a line of Linear Go play and its search.
type Engine struct {
	name, author string

	newLauncher func(tt search.TranspositionTable, enableTelomere bool) searchctl.Launcher
	factory     search.TranspositionTableFactory
	zt          *board.ZobristTable
	seed        int64
	opts        Options

	size   int
	s      *board.State
	tt     search.TranspositionTable
	active searchctl.Handle
	mu     sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithTable configures the engine to use the given transposition table
// factory.
func WithTable(factory search.TranspositionTableFactory) Option {
	return func(e *Engine) {
		e.factory = factory
	}
}

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithZobrist configures the engine to use the given random seed instead of
// the default seed of zero.
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithMTDf switches the search driver from iterative deepening (the
// default) to MTD(f).
func WithMTDf() Option {
	return func(e *Engine) {
		e.newLauncher = func(tt search.TranspositionTable, enableTelomere bool) searchctl.Launcher {
			return &searchctl.MTDf{TT: tt, EnableTelomere: enableTelomere}
		}
	}
}

// New creates an engine for the given board size, Black to move from the
// empty position.
//
// Grounded on morlock's pkg/engine.New: construction-option pattern,
// logw lifecycle logging, build.NewVersion for the reported version string.
func New(ctx context.Context, name, author string, size int, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		newLauncher: func(tt search.TranspositionTable, enableTelomere bool) searchctl.Launcher {
			return &searchctl.Iterative{TT: tt, EnableTelomere: enableTelomere}
		},
		factory: search.NewTranspositionTable,
	}
	for _, fn := range opts {
		fn(e)
	}
	e.zt = board.NewZobristTable(e.seed)

	_ = e.Reset(ctx, size)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
}

func (e *Engine) SetHash(size uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Hash = size
}

func (e *Engine) SetEnableTelomere(v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.EnableTelomere = v
}

// Size returns the current board size.
func (e *Engine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.size
}

// State returns a forked, independently playable copy of the current state.
func (e *Engine) State() *board.State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.s.Fork()
}

// Position returns a textual rendering of the current position. Convenience
// function.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.s.String()
}

// Reset resets the engine to the empty starting position of the given size.
func (e *Engine) Reset(ctx context.Context, size int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if size < 1 || size > board.MaxSize {
		return fmt.Errorf("invalid board size: %v", size)
	}

	logw.Infof(ctx, "Reset size=%v, depth=%v, TT=%vMB", size, e.opts.Depth, e.opts.Hash)

	_, _ = e.haltSearchIfActive(ctx)

	e.size = size
	e.s = board.NewState(e.zt, size)

	e.tt = search.NoTranspositionTable{}
	if e.opts.Hash > 0 {
		e.tt = e.factory(uint64(e.opts.Hash) << 20)
	}

	logw.Infof(ctx, "New board: %v", e.s)
	return nil
}

// Move plays the given move, usually an opponent move.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Move %v", move)

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %v", err)
	}

	_, _ = e.haltSearchIfActive(ctx)

	if !candidate.IsPass {
		legal := e.s.LegalMoves(candidate.Color)
		if legal&(1<<uint(candidate.Position)) == 0 {
			return fmt.Errorf("illegal move: %v", candidate)
		}
	}

	e.s.Play(candidate)
	logw.Infof(ctx, "Move %v: %v", candidate, e.s)
	return nil
}

// TakeBack undoes the latest move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, _ = e.haltSearchIfActive(ctx)

	if e.s.Depth() == 0 {
		return fmt.Errorf("no move to take back")
	}

	last, _ := e.s.LastMove()
	e.s.Undo()

	logw.Infof(ctx, "Takeback %v", last)
	return nil
}

// Analyze analyzes the current position.
func (e *Engine) Analyze(ctx context.Context, opt searchctl.Options) (<-chan searchctl.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := opt.DepthLimit.V(); !ok && e.opts.Depth > 0 {
		opt.DepthLimit = lang.Some(e.opts.Depth)
	}

	logw.Infof(ctx, "Analyze %v, opt=%v", e.s, opt)

	if e.active != nil {
		return nil, fmt.Errorf("search already active")
	}

	launcher := e.newLauncher(e.tt, e.opts.EnableTelomere)
	handle, out := launcher.Launch(ctx, e.s.Fork(), opt)
	e.active = handle
	return out, nil
}

// Halt halts the active search and returns the principal variation, if any.
func (e *Engine) Halt(ctx context.Context) (searchctl.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Halt")

	pv, ok := e.haltSearchIfActive(ctx)
	if !ok {
		return searchctl.PV{}, fmt.Errorf("no active search")
	}
	return pv, nil
}

func (e *Engine) haltSearchIfActive(ctx context.Context) (searchctl.PV, bool) {
	if e.active != nil {
		pv := e.active.Halt()
		logw.Infof(ctx, "Search %v halted: %v", e.s, pv)

		e.active = nil
		return pv, true
	}
	return searchctl.PV{}, false
}
