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

// Iterative is a search harness that runs the Engine at increasing depth
// cutoffs, publishing a PV after each round, until a round returns an exact
// (fully proven) result or a configured limit is reached.
//
// Grounded on morlock's pkg/search/searchctl.Iterative (process
// goroutine, iox.AsyncCloser-based init/quit signaling, PV channel with a
// single buffered slot so a slow consumer only ever sees the latest PV).
type Iterative struct {
	TT search.TranspositionTable
	// EnableTelomere turns on the Telomere pruning conjecture, off by
	// off unless explicitly enabled, since it needs further validation against deeper search.
	EnableTelomere bool
}

func NewIterative(tt search.TranspositionTable) *Iterative {
	return &Iterative{TT: tt}
}

func (it *Iterative) Launch(ctx context.Context, s *board.State, opt Options) (Handle, <-chan PV) {
	out := make(chan PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go h.process(ctx, it.TT, it.EnableTelomere, s, opt, out)
	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	pv PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, tt search.TranspositionTable, enableTelomere bool, s *board.State, opt Options, out chan PV) {
	defer h.init.Close()
	defer close(out)

	if tt == nil {
		tt = search.NoTranspositionTable{}
	}

	engine, cutoff := newEngine(tt, enableTelomere)

	soft, useSoft := EnforceTimeControl(ctx, h, opt.TimeControl)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	for depth := 1; ; depth++ {
		start := time.Now()
		cutoff.Cutoff = depth

		value := engine.Search(wctx, s, search.AlphaInit(s.Size()), search.BetaInit(s.Size()))
		if contextx.IsCancelled(wctx) {
			return
		}

		pv := PV{
			Depth: depth,
			Moves: value.PV,
			Score: value.Minimax,
			Exact: value.Exact,
			Nodes: engine.Nodes(),
			Time:  time.Since(start),
			Hash:  tt.Used(),
		}

		logw.Debugf(ctx, "Searched %v: %v", s, pv)

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
			return // proven result.
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

func (h *handle) Halt() PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}
