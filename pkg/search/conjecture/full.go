// Package conjecture contains domain-specific pruning theorems for Linear
// Go search: recognized positions whose exact minimax value is known
// without exploring their subtree. Each is a search.Policy decorator that
// overrides InitNode to short-circuit recognized positions as terminal.
package conjecture

import (
	"context"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
)

// Full recognizes a position already at the maximum possible score for one
// side (minimax == +-size) where the opponent has no legal replies that
// could improve it: no search can do better, so the position is exact.
//
// Grounded on original_source/conjectures/full.hpp's Full<size,Impl>.
type Full struct {
	Inner search.Policy
}

func (p Full) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (search.Node, bool) {
	minimax := s.Board().Minimax()
	size := s.Size()
	if (minimax == size || minimax == -size) && s.LegalMoves(s.Turn().Flip()) == 0 {
		return search.Node{Minimax: minimax, Exact: true, Type: search.PV}, true
	}
	return p.Inner.InitNode(ctx, s, alpha, beta, depth)
}

func (p Full) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {
	p.Inner.OnEnter(ctx, s, alpha, beta, depth)
}

func (p Full) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	return p.Inner.GenMoves(ctx, s, depth)
}

func (p Full) PreUpdate(move board.Move, alpha, beta *int, parent *search.Node, depth, index int) {
	p.Inner.PreUpdate(move, alpha, beta, parent, depth, index)
}

func (p Full) Update(move board.Move, alpha, beta *int, parent *search.Node, child search.Node) {
	p.Inner.Update(move, alpha, beta, parent, child)
}

func (p Full) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value search.Node, terminal bool) {
	p.Inner.OnExit(ctx, s, alpha, beta, depth, value, terminal)
}
