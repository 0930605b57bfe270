package search

import "github.com/herohde/lgo/pkg/board"

// NodeType classifies how a Node's minimax value was established: Nil for a
// value not yet refined by any child, PV for a value strictly inside the
// (alpha, beta) window (part of the principal variation), Min/Max for a
// value that only improved one bound (fail-high/fail-low).
//
// Grounded on original_source/ab.hpp's NodeType enum.
type NodeType uint8

const (
	Nil NodeType = iota
	PV
	Min
	Max
)

func (t NodeType) String() string {
	switch t {
	case PV:
		return "pv"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "nil"
	}
}

// Node is the value produced at each step of the search recursion. A single
// flat struct carries every field any policy layer in the stack needs to
// read or write, rather than the growing chain of wrapper types
// original_source/ab.hpp builds via template inheritance (Minimax::Node <
// PV::Node < IterativeDeepening::Node) -- idiomatic Go favors one shape
// mutated in place over a tower of embeddings for this kind of accumulator.
type Node struct {
	Minimax int      // exact or heuristic minimax value, Black's perspective.
	Type    NodeType
	Exact   bool // false if Minimax came from a depth cutoff rather than a terminal or proven subtree.

	BestMove board.Move // move that produced the current best child.
	PV       []board.Move
}
