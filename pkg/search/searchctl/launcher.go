// Package searchctl contains search drivers -- iterative deepening and
// MTD(f) -- and the time/depth controls that stop them.
package searchctl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/herohde/lgo/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// PV represents the result of a search to some depth (or the final, proven
// result once Exact is true).
type PV struct {
	Depth int
	Moves []board.Move
	Score int  // Black-relative minimax value.
	Exact bool // true once the value is a proven result, not a depth-cutoff heuristic.
	Nodes uint64
	Time  time.Duration
	Hash  float64 // transposition table utilization [0;1].
}

func (p PV) String() string {
	kind := "~"
	if p.Exact {
		kind = "="
	}
	return fmt.Sprintf("depth=%v score%v%v nodes=%v time=%v hash=%v%% pv=%v",
		p.Depth, kind, p.Score, p.Nodes, p.Time, int(100*p.Hash), board.FormatMoves(p.Moves))
}

// Options hold dynamic search options. The caller may change these between
// searches.
type Options struct {
	// DepthLimit, if set, stops iterative deepening at the given ply depth
	// even if the result is not yet exact.
	DepthLimit lang.Optional[uint]
	// TimeControl, if set, limits the search to the given time budget.
	TimeControl lang.Optional[TimeControl]
}

func (o Options) String() string {
	var ret []string
	if v, ok := o.DepthLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		ret = append(ret, fmt.Sprintf("time=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(ret, ", "))
}

// Launcher is a search generator.
//
// Grounded on morlock's pkg/search/searchctl.Launcher.
type Launcher interface {
	// Launch a new search from the given state. It expects an exclusive
	// (forked) State and returns a PV channel fed with progressively
	// deeper/more-certain results. The channel closes when the search is
	// exhausted (an exact result was found, or a limit was hit).
	Launch(ctx context.Context, s *board.State, opt Options) (Handle, <-chan PV)
}

// Handle manages a launched search. The caller is expected to spin off
// searches with forked states and Halt/abandon them when no longer needed.
type Handle interface {
	// Halt halts the search, if running, and returns the last PV found.
	// Idempotent.
	Halt() PV
}
