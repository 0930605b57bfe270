package search

import (
	"context"

	"github.com/herohde/lgo/pkg/board"
)

// Policy is the hook set that parameterizes the alpha-beta Engine, mirroring
// original_source/ab.hpp's Impl template parameter (init_node, on_enter,
// pre_update, gen_moves, update, on_exit). Each hook corresponds 1:1 with a
// call site in Engine.Search. Layers compose by holding an Inner Policy and
// forwarding every hook to it, adding behavior only in the hooks they care
// about -- explicit forwarding standing in for the C++ template-inheritance
// chain.
type Policy interface {
	// InitNode is called on entry to a node, before move generation. It
	// returns the node's initial value and whether the node is already
	// terminal (a leaf; Engine.Search returns immediately without
	// generating moves).
	InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (Node, bool)

	// OnEnter is called once a node is known non-terminal, before move
	// generation. alpha/beta are mutable: a conjecture layer (see
	// conjecture.Telomere) may tighten the window before moves are
	// generated and explored.
	OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int)

	// GenMoves returns the moves to explore at this node, in priority order.
	GenMoves(ctx context.Context, s *board.State, depth int) []board.Move

	// PreUpdate is called immediately before a child is searched, with the
	// child's index in the move list.
	PreUpdate(move board.Move, alpha, beta *int, parent *Node, depth, index int)

	// Update folds a searched child's value into the parent, adjusting
	// alpha/beta as appropriate for the mover's color.
	Update(move board.Move, alpha, beta *int, parent *Node, child Node)

	// OnExit is called once a node's search is complete (or it was a leaf),
	// with the final value and whether it was terminal.
	OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value Node, terminal bool)
}
