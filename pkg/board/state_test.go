package board_test

import (
	"testing"

	"github.com/herohde/lgo/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatePlayUndo(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 5)

	assert.Equal(t, board.Black, s.Turn())
	assert.Equal(t, 0, s.Depth())

	s.Play(board.NewMove(board.Black, 2))
	assert.Equal(t, board.White, s.Turn())
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, board.Black, s.Board().Get(2))

	last, ok := s.LastMove()
	require.True(t, ok)
	assert.True(t, last.Equals(board.NewMove(board.Black, 2)))

	s.Undo()
	assert.Equal(t, board.Black, s.Turn())
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, board.Empty, s.Board().Get(2))
}

func TestStateDoublePassEndsGame(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 3)

	assert.Equal(t, board.Normal, s.GameState())
	s.Play(board.NewPass(board.Black))
	assert.Equal(t, board.Passed, s.GameState())
	assert.False(t, s.Terminal())

	s.Play(board.NewPass(board.White))
	assert.Equal(t, board.Over, s.GameState())
	assert.True(t, s.Terminal())
}

func TestStatePlayAfterOverPanics(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 1)
	s.Play(board.NewPass(board.Black))
	s.Play(board.NewPass(board.White))

	assert.Panics(t, func() { s.Play(board.NewPass(board.Black)) })
}

func TestStateWrongSideToMovePanics(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 3)
	assert.Panics(t, func() { s.Play(board.NewMove(board.White, 0)) })
}

func TestStateLegalMovesExcludesOccupied(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 3)
	s.Play(board.NewMove(board.Black, 0))

	legal := s.LegalMoves(board.White)
	assert.Zero(t, legal&(1<<0), "occupied position must not be legal")
	assert.NotZero(t, legal&(1<<1))
}

func TestStateSuicideExcludedFromLegalMoves(t *testing.T) {
	// A lone stone placed between two solid opponent runs that each reach
	// the board edge has no liberty of its own and can only capture (1-D Go
	// has no true suicide against an edge-bound run); this confirms the
	// board-level suicide path (see board_test.go) never surfaces as a
	// legal move for the player it would vanish for.
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 3)
	s.Play(board.NewPass(board.Black))
	s.Play(board.NewMove(board.White, 0))
	s.Play(board.NewPass(board.Black))
	s.Play(board.NewMove(board.White, 2))

	legal := s.LegalMoves(board.Black)
	// Black at position 1 captures both White stones (their only liberty
	// was position 1), so it is legal, not suicide -- the true suicide case
	// (opponent chains with a liberty elsewhere) is exercised directly in
	// board_test.go's TestBoardClearCapturedSuicide.
	assert.NotZero(t, legal&(1<<1))
	// White at position 1 would fill the whole strip with one chain that has
	// no liberty: suicide, so it is not legal for White.
	assert.Zero(t, s.LegalMoves(board.White)&(1<<1))
}

func TestStateFork(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 4)
	s.Play(board.NewMove(board.Black, 0))

	fork := s.Fork()
	fork.Play(board.NewMove(board.White, 1))

	// The fork's mutation must not be visible on the original.
	assert.Equal(t, board.Empty, s.Board().Get(1))
	assert.Equal(t, board.White, fork.Board().Get(1))
}

func TestStateCaptureRemovesChain(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 4)

	s.Play(board.NewMove(board.Black, 0))
	s.Play(board.NewMove(board.White, 1))
	s.Play(board.NewMove(board.Black, 2))
	// White stone at 1 now flanked by Black on both sides: captured.
	assert.Equal(t, board.Empty, s.Board().Get(1))
	assert.True(t, s.Board().IsCaptured(1))
}

func TestStateHistoryContains(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 3)
	s.Play(board.NewMove(board.Black, 0))

	assert.True(t, s.HistoryContains(s.Board()))
	assert.False(t, s.HistoryContains(board.NewBoard(3)))
}
