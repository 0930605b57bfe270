package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// MTDf is a search harness implementing MTD(f) (Plaat): a sequence of
// minimal-window (null-window) searches that converges on the same minimax
// value an ordinary window search would find, but does so through many
// cheap, highly-pruned searches driven entirely off the transposition
// table. Combined here with the same depth-cutoff iterative deepening as
// Iterative, using each depth's result as the next depth's first guess.
//
// This driver has no morlock analog -- the retrieved corpus contains no
// MTD(f) implementation -- so it is grounded structurally on morlock's
// searchctl.Iterative harness (the same process-goroutine/AsyncCloser/PV
// channel shape) with the null-window loop following the standard published
// MTD(f) algorithm.
type MTDf struct {
	TT search.TranspositionTable
	// EnableTelomere turns on the Telomere pruning conjecture, off by
	// off unless explicitly enabled, since it needs further validation against deeper search.
	EnableTelomere bool
}

func NewMTDf(tt search.TranspositionTable) *MTDf {
	return &MTDf{TT: tt}
}

func (m *MTDf) Launch(ctx context.Context, s *board.State, opt Options) (Handle, <-chan PV) {
	out := make(chan PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go m.process(ctx, h, s, opt, out)
	return h, out
}

func (m *MTDf) process(ctx context.Context, h *handle, s *board.State, opt Options, out chan PV) {
	defer h.init.Close()
	defer close(out)

	tt := m.TT
	if tt == nil {
		tt = search.NoTranspositionTable{}
	}

	engine, cutoff := newEngine(tt, m.EnableTelomere)

	soft, useSoft := EnforceTimeControl(ctx, h, opt.TimeControl)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	guess := 0
	for depth := 1; ; depth++ {
		start := time.Now()
		cutoff.Cutoff = depth

		value, ok := mtdf(wctx, engine, s, guess, depth)
		if !ok {
			return // cancelled.
		}
		guess = value.Minimax

		pv := PV{
			Depth: depth,
			Moves: value.PV,
			Score: value.Minimax,
			Exact: value.Exact,
			Nodes: engine.Nodes(),
			Time:  time.Since(start),
			Hash:  tt.Used(),
		}

		logw.Debugf(ctx, "MTD(f) searched %v: %v", s, pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.init.Close()

		if value.Exact {
			return
		}
		if limit, ok := opt.DepthLimit.V(); ok && uint(depth) >= limit {
			return
		}
		if useSoft && soft < time.Since(start) {
			return
		}
		if h.quit.IsClosed() {
			return
		}
	}
}

// mtdf runs the null-window search loop at a fixed depth cutoff, starting
// from firstGuess, until the lower and upper bounds converge.
func mtdf(ctx context.Context, engine *search.Engine, s *board.State, firstGuess, depth int) (search.Node, bool) {
	g := firstGuess
	lower, upper := board.MaxSize*-2, board.MaxSize*2 // looser than any real minimax value.
	size := s.Size()
	if lower < -(size+1) {
		lower = -(size + 1)
	}
	if upper > size+1 {
		upper = size + 1
	}

	var last search.Node
	for lower < upper {
		beta := g
		if g == lower {
			beta = g + 1
		}

		last = engine.Search(ctx, s, beta-1, beta)
		if contextx.IsCancelled(ctx) {
			return search.Node{}, false
		}

		g = last.Minimax
		if g < beta {
			upper = g
		} else {
			lower = g
		}
	}
	return last, true
}
