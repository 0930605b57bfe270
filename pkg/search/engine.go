package search

import (
	"context"

	"github.com/herohde/lgo/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Engine runs a Policy-parameterized alpha-beta search over a board.State.
// It keeps a per-depth move-list slot, mirroring original_source/ab.hpp's
// AlphaBeta<size,Impl> `moves` member (there, reused across calls to avoid
// reallocation; Go's GC makes that optimization unnecessary here, but the
// per-depth indexing is kept).
//
// Grounded on original_source/ab.hpp's AlphaBeta<size,Impl>::search and the
// morlock's pkg/search/alphabeta.go (context cancellation via
// contextx.IsCancelled, node counting).
type Engine struct {
	Policy Policy

	moves [][]board.Move
	nodes uint64
}

// NewEngine returns an Engine running the given Policy.
func NewEngine(policy Policy) *Engine {
	return &Engine{Policy: policy}
}

// Nodes returns the number of nodes visited by the most recent Search call.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

// NodesPtr exposes the live node counter so a TTPolicy can measure subtree
// work as the node count consumed between a node's entry and exit.
func (e *Engine) NodesPtr() *uint64 {
	return &e.nodes
}

// Search explores s to find its exact or window-bounded minimax value,
// starting at depth 0 (the root of this call) with window (alpha, beta). It mutates and restores s via Play/Undo as it recurses, so
// the caller's State is unchanged on return.
func (e *Engine) Search(ctx context.Context, s *board.State, alpha, beta int) Node {
	e.nodes = 0
	return e.search(ctx, s, alpha, beta, 0)
}

func (e *Engine) search(ctx context.Context, s *board.State, alpha, beta int, depth int) Node {
	e.nodes++

	parent, terminal := e.Policy.InitNode(ctx, s, alpha, beta, depth)
	if terminal {
		e.Policy.OnExit(ctx, s, alpha, beta, depth, parent, true)
		return parent
	}
	if contextx.IsCancelled(ctx) {
		e.Policy.OnExit(ctx, s, alpha, beta, depth, parent, true)
		return parent
	}
	e.Policy.OnEnter(ctx, s, &alpha, &beta, depth)

	for len(e.moves) <= depth {
		e.moves = append(e.moves, nil)
	}
	e.moves[depth] = e.Policy.GenMoves(ctx, s, depth)

	if beta > alpha {
		for index, move := range e.moves[depth] {
			e.Policy.PreUpdate(move, &alpha, &beta, &parent, depth, index)

			s.Play(move)
			child := e.search(ctx, s, alpha, beta, depth+1)
			s.Undo()

			e.Policy.Update(move, &alpha, &beta, &parent, child)
			if beta <= alpha {
				break
			}
			if contextx.IsCancelled(ctx) {
				break
			}
		}
	}

	e.Policy.OnExit(ctx, s, alpha, beta, depth, parent, false)
	return parent
}
