package search_test

import (
	"context"
	"testing"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
	"github.com/stretchr/testify/assert"
)

// allMoves is a MoveGenerator that tries every legal move plus a pass, in a
// fixed but otherwise unoptimized order -- used to test the core alpha-beta
// traversal independent of GoodPlayer's pruning heuristics.
type allMoves struct{}

func (allMoves) Moves(s *board.State, color board.Cell) []board.Move {
	moves := []board.Move{board.NewPass(color)}
	legal := s.LegalMoves(color)
	for i := 0; i < s.Size(); i++ {
		if legal&(1<<uint(i)) != 0 {
			moves = append(moves, board.NewMove(color, i))
		}
	}
	return moves
}

func searchExact(t *testing.T, size int) search.Node {
	t.Helper()

	zt := board.NewZobristTable(0)
	s := board.NewState(zt, size)
	e := search.NewEngine(search.Minimax{Gen: allMoves{}})

	value := e.Search(context.Background(), s, search.AlphaInit(size), search.BetaInit(size))
	assert.True(t, value.Exact)
	return value
}

func TestMinimaxSingleCell(t *testing.T) {
	// On a 1-cell board a stone has no liberty (both board edges are walls),
	// so placing one is suicide and neither side has a legal placement: both
	// pass, the game ends on the empty board, and the proven value is 0.
	value := searchExact(t, 1)
	assert.Equal(t, 0, value.Minimax)
	assert.Equal(t, search.PV, value.Type)
}

func TestMinimaxTwoCell(t *testing.T) {
	// A 2-cell board has a rich superko-driven game tree (each single-stone
	// placement is capturable, and capturing back can be barred by
	// repetition) -- rather than hand-derive the exact proven value here,
	// confirm the engine proves it exactly and the value is a reachable
	// score (the board holds at most 2 points total).
	value := searchExact(t, 2)
	assert.True(t, value.Exact)
	assert.GreaterOrEqual(t, value.Minimax, -2)
	assert.LessOrEqual(t, value.Minimax, 2)
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "nil", search.Nil.String())
	assert.Equal(t, "pv", search.PV.String())
	assert.Equal(t, "min", search.Min.String())
	assert.Equal(t, "max", search.Max.String())
}

func TestAlphaBetaInitWindow(t *testing.T) {
	assert.Equal(t, -4, search.AlphaInit(3))
	assert.Equal(t, 4, search.BetaInit(3))
}
