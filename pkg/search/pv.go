package search

import (
	"context"

	"github.com/herohde/lgo/pkg/board"
)

// PVTracking wraps a Policy to additionally record the principal variation
// (the move sequence realizing the node's minimax value) and the best move
// at each node, by prepending the child's move and PV whenever Update
// decides the child is part of the PV.
//
// Grounded on original_source/ab.hpp's PV<size,Impl> (move + shared_ptr
// child chain) and the best_move bookkeeping duplicated in its
// IterativeDeepening<size,...>::ImplWrapper::update; both are folded into
// one decorator here since Node already carries every field a wrapper layer
// in ab.hpp would otherwise introduce incrementally.
type PVTracking struct {
	Inner Policy
}

func (p PVTracking) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (Node, bool) {
	return p.Inner.InitNode(ctx, s, alpha, beta, depth)
}

func (p PVTracking) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {
	p.Inner.OnEnter(ctx, s, alpha, beta, depth)
}

func (p PVTracking) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	return p.Inner.GenMoves(ctx, s, depth)
}

func (p PVTracking) PreUpdate(move board.Move, alpha, beta *int, parent *Node, depth, index int) {
	p.Inner.PreUpdate(move, alpha, beta, parent, depth, index)
}

func (p PVTracking) Update(move board.Move, alpha, beta *int, parent *Node, child Node) {
	before := parent.Type
	p.Inner.Update(move, alpha, beta, parent, child)

	if child.Minimax > *alpha && child.Minimax < *beta {
		// Child fell strictly inside the window: it's on the PV.
		parent.BestMove = move
		parent.PV = append([]board.Move{move}, child.PV...)
	} else if parent.Type != before {
		// Update accepted the child as the new parent value without it
		// being a PV node (fail-high/fail-low): still the best move found
		// so far at this node.
		parent.BestMove = move
		parent.PV = append([]board.Move{move}, child.PV...)
	}
}

func (p PVTracking) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value Node, terminal bool) {
	p.Inner.OnExit(ctx, s, alpha, beta, depth, value, terminal)
}
