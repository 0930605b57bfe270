package search

import (
	"context"

	"github.com/herohde/lgo/pkg/board"
)

// DepthCutoffPolicy bounds how deep a single Engine.Search call recurses,
// returning the current board's raw minimax count (Exact: false, a
// heuristic rather than a proven value) once Cutoff is reached. Raising
// Cutoff and re-searching is how IterativeDeepening makes partial progress
// visible before the full game tree (which, unlike chess, has a definite
// end -- two consecutive passes -- but can still be deep) is exhausted.
//
// Grounded on original_source/ab.hpp's IterativeDeepening<size,...>::
// ImplWrapper::init_node (cutoff check ahead of the terminal-state check).
type DepthCutoffPolicy struct {
	Inner  Policy
	Cutoff int
}

func (p *DepthCutoffPolicy) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (Node, bool) {
	if depth >= p.Cutoff {
		return Node{Minimax: s.Board().Minimax(), Exact: false}, true
	}
	return p.Inner.InitNode(ctx, s, alpha, beta, depth)
}

func (p *DepthCutoffPolicy) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {
	p.Inner.OnEnter(ctx, s, alpha, beta, depth)
}

func (p *DepthCutoffPolicy) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	return p.Inner.GenMoves(ctx, s, depth)
}

func (p *DepthCutoffPolicy) PreUpdate(move board.Move, alpha, beta *int, parent *Node, depth, index int) {
	p.Inner.PreUpdate(move, alpha, beta, parent, depth, index)
}

func (p *DepthCutoffPolicy) Update(move board.Move, alpha, beta *int, parent *Node, child Node) {
	p.Inner.Update(move, alpha, beta, parent, child)
}

func (p *DepthCutoffPolicy) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value Node, terminal bool) {
	p.Inner.OnExit(ctx, s, alpha, beta, depth, value, terminal)
}
