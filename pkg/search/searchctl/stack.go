package searchctl

import (
	"github.com/herohde/lgo/pkg/search"
	"github.com/herohde/lgo/pkg/search/conjecture"
)

// newEngine builds the standard policy stack shared by Iterative and MTDf:
// transposition table and depth cutoff on the outside (checked before
// anything else does real work), principal-variation tracking next, then
// the conjecture layers (each tried in turn before falling through to plain
// minimax), with Minimax itself at the base.
//
// Grounded on original_source/conjecture.hpp's PrunedSearch (conjectures
// wrap the base Impl, tried outside-in before it) composed with ab.hpp's
// IterativeDeepening<...>::ImplWrapper (depth-cutoff-then-TT wraps
// everything else).
func newEngine(tt search.TranspositionTable, enableTelomere bool) (*search.Engine, *search.DepthCutoffPolicy) {
	var base search.Policy = search.Minimax{}
	base = conjecture.Telomere{Inner: base, Enabled: enableTelomere}
	base = conjecture.Stability{Inner: base}
	base = conjecture.Full{Inner: base}

	cutoff := &search.DepthCutoffPolicy{Inner: search.PVTracking{Inner: base}}

	engine := search.NewEngine(nil)
	engine.Policy = search.NewTTPolicy(cutoff, tt, engine.NodesPtr())
	return engine, cutoff
}
