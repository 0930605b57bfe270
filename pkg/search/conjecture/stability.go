package conjecture

import (
	"context"
	"sync"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
)

// Stability recognizes a fixed, precomputed set of board shapes known to be
// stable: no further play can change the eventual score, so the current
// minimax value is already exact. The set is computed once per board size
// by exhaustively enumerating a restricted class of alternating-color fills
// from the empty board, and cached for reuse across an entire search.
//
// A position captured at least once since the start of the game (Board has
// any IsCaptured bit set) is excluded: the stable-shape enumeration never
// produces or accounts for capture history, so it cannot vouch for a board
// that reached its current cells via a capture.
//
// Grounded on original_source/conjectures/stability.hpp's Stability<size,
// Impl> (compute_stable_boards, the captured==0 guard on lookup). The
// recursive enumeration is translated directly to operate on board.Board
// values rather than a full board.State, since only the resulting cell
// pattern (not history or side-to-play) determines membership.
type Stability struct {
	Inner search.Policy
}

var (
	stableMu    sync.Mutex
	stableCache = map[int]map[uint32]struct{}{}
)

func stableBoards(size int) map[uint32]struct{} {
	stableMu.Lock()
	defer stableMu.Unlock()

	if set, ok := stableCache[size]; ok {
		return set
	}
	set := map[uint32]struct{}{}
	if size >= 2 {
		fillStable(board.NewBoard(size), board.Black, 1, size, set)
		fillStable(board.NewBoard(size), board.White, 1, size, set)
	}
	stableCache[size] = set
	return set
}

func fillStable(b board.Board, color board.Cell, pos, size int, set map[uint32]struct{}) {
	if pos >= size {
		if b.Get(size-2) != board.Empty && b.Get(size-1) == board.Empty {
			set[b.Cells()] = struct{}{}
		}
		return
	}

	next := b.Set(pos, color)
	next, _ = next.ClearCaptured(pos)

	fillStable(next, color, pos+1, size, set)
	fillStable(next, color, pos+2, size, set)
	fillStable(next, color, pos+3, size, set)
	fillStable(next, color.Flip(), pos+2, size, set)
}

func (p Stability) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (search.Node, bool) {
	b := s.Board()
	if !b.AnyCaptured() {
		if _, ok := stableBoards(s.Size())[b.Cells()]; ok {
			return search.Node{Minimax: b.Minimax(), Exact: true, Type: search.PV}, true
		}
	}
	return p.Inner.InitNode(ctx, s, alpha, beta, depth)
}

func (p Stability) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {
	p.Inner.OnEnter(ctx, s, alpha, beta, depth)
}

func (p Stability) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	return p.Inner.GenMoves(ctx, s, depth)
}

func (p Stability) PreUpdate(move board.Move, alpha, beta *int, parent *search.Node, depth, index int) {
	p.Inner.PreUpdate(move, alpha, beta, parent, depth, index)
}

func (p Stability) Update(move board.Move, alpha, beta *int, parent *search.Node, child search.Node) {
	p.Inner.Update(move, alpha, beta, parent, child)
}

func (p Stability) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value search.Node, terminal bool) {
	p.Inner.OnExit(ctx, s, alpha, beta, depth, value, terminal)
}
