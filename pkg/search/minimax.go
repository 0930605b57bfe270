package search

import (
	"context"

	"github.com/herohde/lgo/pkg/board"
)

// Minimax is the base Policy: exact minimax search with alpha-beta pruning,
// no transposition table, no principal-variation tracking, no move
// conjectures beyond GoodPlayer's fixed ordering. Other layers wrap it to
// add those concerns.
//
// Grounded on original_source/ab.hpp's Minimax<size> Impl, the base of its
// template-inheritance policy chain.
type Minimax struct {
	Gen MoveGenerator
}

// MoveGenerator produces the moves to try at a position, in priority order.
type MoveGenerator interface {
	Moves(s *board.State, color board.Cell) []board.Move
}

// AlphaInit and BetaInit are the window bounds a fresh search should start
// with. They are ±(size+1), not ±size: using ±size causes the engine to
// fail to recover a principal variation when the true minimax value is
// exactly ±size, since the update hooks only record a child as part of the
// PV when its value lies strictly inside (alpha, beta). original_source/
// ab.hpp documents the bug and recommends this fix in a comment on
// alpha_init/beta_init without applying it; this port applies it.
func AlphaInit(size int) int { return -(size + 1) }
func BetaInit(size int) int  { return size + 1 }

func (p Minimax) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (Node, bool) {
	if s.Terminal() {
		return Node{Minimax: s.Board().Minimax(), Exact: true}, true
	}
	init := AlphaInit(s.Size())
	if s.Turn() == board.White {
		init = BetaInit(s.Size())
	}
	return Node{Minimax: init, Exact: true}, false
}

func (p Minimax) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {}

func (p Minimax) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	gen := p.Gen
	if gen == nil {
		gen = GoodPlayer{}
	}
	return gen.Moves(s, s.Turn())
}

func (p Minimax) PreUpdate(move board.Move, alpha, beta *int, parent *Node, depth, index int) {}

func (p Minimax) Update(move board.Move, alpha, beta *int, parent *Node, child Node) {
	if child.Minimax > *alpha && child.Minimax < *beta {
		parent.Exact = parent.Exact && child.Exact
		parent.Type = PV
	}
	if move.Color == board.Black && child.Minimax >= parent.Minimax {
		if child.Minimax > parent.Minimax {
			parent.Minimax = child.Minimax
		}
		if parent.Minimax > *alpha {
			*alpha = parent.Minimax
		}
		parent.Exact = parent.Exact && child.Exact
		if parent.Type != PV {
			parent.Type = Min
		}
	}
	if move.Color == board.White && child.Minimax <= parent.Minimax {
		if child.Minimax < parent.Minimax {
			parent.Minimax = child.Minimax
		}
		if parent.Minimax < *beta {
			*beta = parent.Minimax
		}
		parent.Exact = parent.Exact && child.Exact
		if parent.Type != PV {
			parent.Type = Max
		}
	}
}

func (p Minimax) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value Node, terminal bool) {
}
