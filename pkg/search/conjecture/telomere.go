package conjecture

import (
	"context"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
)

// Telomere recognizes a "telomere": a move played at the fourth cell in from
// either board edge (position 3 or size-4) that leaves a fixed complement
// shape -- empty, opposing stone, empty -- in the three cells between the
// move and that edge. When the opponent has no legal move anywhere between the
// telomere and the far edge, and the telomere owner retains at least one
// liberty in that span, no further play in the span can change the eventual
// score: the window can be tightened to the current minimax value without
// searching the subtree.
//
// Disabled by default (Enabled must be set true): unlike Full and Stability,
// which only ever short-circuit a node outright, Telomere tightens alpha or
// beta by reference and is more delicate to get right, so it stays opt-in
// pending further validation against known LGO endgame positions.
//
// Grounded on original_source/conjectures/telomere.hpp's Telomere<size,Impl>,
// with the fixed-length complement-shape recognition restructured into a
// literal pattern table (telomereTable, keyed by pattern length and packed
// bit-pattern) instead of the original's inline cell-by-cell comparisons;
// the pattern's own window clears against the table, and
// the necessarily board-size-dependent legal-move/liberty scan beyond that
// window -- which cannot be expressed as fixed-length table data -- remains
// a runtime loop, exactly as telomere.hpp performs it. The cache
// invalidation on state.info_cache (a forced "no legal moves" override for
// the telomere owner's next turn, avoiding recomputation) is dropped, since
// board.State already recomputes its per-ply legality cache from scratch on
// every Play/Undo -- there is no stale cache to invalidate here.
type Telomere struct {
	Inner   search.Policy
	Enabled bool
}

func (p Telomere) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (search.Node, bool) {
	return p.Inner.InitNode(ctx, s, alpha, beta, depth)
}

func (p Telomere) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {
	if p.Enabled {
		tightenTelomere(s, alpha, beta)
	}
	p.Inner.OnEnter(ctx, s, alpha, beta, depth)
}

func (p Telomere) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	return p.Inner.GenMoves(ctx, s, depth)
}

func (p Telomere) PreUpdate(move board.Move, alpha, beta *int, parent *search.Node, depth, index int) {
	p.Inner.PreUpdate(move, alpha, beta, parent, depth, index)
}

func (p Telomere) Update(move board.Move, alpha, beta *int, parent *search.Node, child search.Node) {
	p.Inner.Update(move, alpha, beta, parent, child)
}

func (p Telomere) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value search.Node, terminal bool) {
	p.Inner.OnExit(ctx, s, alpha, beta, depth, value, terminal)
}

// telomereBound identifies which side of the search window a recognized
// telomere pattern authorizes tightening.
type telomereBound int

const (
	tightenNone telomereBound = iota
	tightenAlpha
	tightenBeta
)

// telomereResult is the value a pattern table entry yields: the window
// bound side to tighten, a Forced flag, and a ClearOverWindow flag that
// turns on the legal-move/liberty scan. Telomere never forces a terminal
// value from the pattern alone -- Forced is always false, since the
// opponent's-no-legal-move and owner's-liberty conditions depend on the
// live board beyond the table's fixed window -- but the field is kept for
// schema parity with the table-driven conjectures (Full, Stability) that do
// force outright.
type telomereResult struct {
	Bound           telomereBound
	Forced          bool
	ClearOverWindow bool // the span from the anchor to the far edge must show zero legal-move bits for the conjecture to hold.
}

// telomereKey packs a fixed-length run of board cells (2 bits each, MSB
// first) into a single comparable value, keyed alongside the run's length.
type telomereKey struct {
	length  int
	pattern uint16
}

func packTelomereKey(cells ...board.Cell) telomereKey {
	var bits uint16
	for _, c := range cells {
		bits = bits<<board.CellWidth | uint16(c)
	}
	return telomereKey{length: len(cells), pattern: bits}
}

// telomereTable is the fixed pattern table: keyed by
// pattern length and bit-pattern, yielding the bound a match authorizes
// tightening. The two entries are the empty/opponent/empty complement shape
// that closes off a telomere, one for each anchor color (the anchor itself
// is the move just played and is not part of the keyed pattern, since by
// construction it already equals that color).
var telomereTable = map[telomereKey]telomereResult{
	packTelomereKey(board.Empty, board.White, board.Empty): {Bound: tightenAlpha, ClearOverWindow: true}, // anchor Black
	packTelomereKey(board.Empty, board.Black, board.Empty): {Bound: tightenBeta, ClearOverWindow: true},   // anchor White
}

// telomereHistoryPrefixes are the three ways a telomere window, if any of
// its cells were ever captured, could have reached an indistinguishable
// complement shape by a different route: if the history contains any of
// these for the window's anchor color, this is not a *new* telomere and the
// table entry above does not apply. Keyed by anchor color; each prefix lists
// the window's cells from the board edge inward.
var telomereHistoryPrefixes = map[board.Cell][3][3]board.Cell{
	board.Black: {
		{board.Black, board.Empty, board.Empty},
		{board.Black, board.Black, board.Empty},
		{board.Empty, board.Black, board.Empty},
	},
	board.White: {
		{board.White, board.Empty, board.Empty},
		{board.White, board.White, board.Empty},
		{board.Empty, board.White, board.Empty},
	},
}

func tightenTelomere(s *board.State, alpha, beta *int) {
	last, ok := s.LastMove()
	if !ok || last.IsPass {
		return
	}

	size := s.Size()
	color := last.Color
	var dir, pos int
	switch last.Position {
	case 3:
		dir, pos = -1, 3
	case size - 4:
		dir, pos = 1, size - 4
	default:
		return
	}

	b := s.Board()
	result, ok := telomereTable[packTelomereKey(b.Get(pos+dir), b.Get(pos+2*dir), b.Get(pos+3*dir))]
	if !ok || result.Bound == tightenNone {
		return
	}

	if b.IsCaptured(pos) || b.IsCaptured(pos+dir) || b.IsCaptured(pos+2*dir) || b.IsCaptured(pos+3*dir) {
		// Some of the shape was captured earlier: confirm this exact
		// complement was never reached before, for each tabulated prefix.
		for _, prefix := range telomereHistoryPrefixes[color] {
			hypothetical := b
			for i := 0; i < 3; i++ {
				hypothetical = hypothetical.Set(pos+dir*(i+1), prefix[2-i])
			}
			if s.HistoryContains(hypothetical) {
				return
			}
		}
	}

	// The opponent must have no legal move and no stone of their own
	// anywhere from the telomere boundary to the far edge, and the telomere
	// owner must retain at least one liberty in that span. The span starts
	// at the anchor and runs away from the table's fixed 3-cell window, so
	// it cannot itself be tabulated at fixed length; result.ClearOverWindow
	// records that the table entry requires it regardless of span.
	if !result.ClearOverWindow {
		return
	}
	legal := s.LegalMoves(s.Turn())
	hasLiberty := false
	for i := pos; i >= 0 && i < size; i -= dir {
		if legal&(1<<uint(i)) != 0 {
			return
		}
		here := b.Get(i)
		if here == color.Flip() {
			return
		}
		if here == board.Empty && b.Get(i+dir) != board.Empty {
			hasLiberty = true
		}
	}
	if !hasLiberty {
		return
	}

	minimax := b.Minimax()
	switch result.Bound {
	case tightenBeta:
		if minimax < *beta {
			*beta = minimax
		}
	case tightenAlpha:
		if minimax > *alpha {
			*alpha = minimax
		}
	}
}
