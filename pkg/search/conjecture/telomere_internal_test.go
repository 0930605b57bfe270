package conjecture

import (
	"testing"

	"github.com/herohde/lgo/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestPackTelomereKeyDistinguishesLengthAndContent(t *testing.T) {
	a := packTelomereKey(board.Empty, board.White, board.Empty)
	b := packTelomereKey(board.Empty, board.Black, board.Empty)
	assert.NotEqual(t, a, b, "differing cell content must pack to different keys")

	c := packTelomereKey(board.Empty, board.White)
	assert.NotEqual(t, a, c, "differing run length must pack to different keys")
	assert.Equal(t, 3, a.length)
	assert.Equal(t, 2, c.length)
}

func TestTelomereTableEntries(t *testing.T) {
	black := telomereTable[packTelomereKey(board.Empty, board.White, board.Empty)]
	assert.Equal(t, tightenAlpha, black.Bound)
	assert.True(t, black.ClearOverWindow)
	assert.False(t, black.Forced)

	white := telomereTable[packTelomereKey(board.Empty, board.Black, board.Empty)]
	assert.Equal(t, tightenBeta, white.Bound)
	assert.True(t, white.ClearOverWindow)
	assert.False(t, white.Forced)
}

func TestTelomereTableLookupMiss(t *testing.T) {
	_, ok := telomereTable[packTelomereKey(board.Black, board.Black, board.Black)]
	assert.False(t, ok)
}

func TestTightenTelomereNoOpBeforeAnyMove(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 8)

	alpha, beta := -9, 9
	tightenTelomere(s, &alpha, &beta)
	assert.Equal(t, -9, alpha)
	assert.Equal(t, 9, beta)
}

func TestTightenTelomereNoOpAfterPass(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 8)
	s.Play(board.NewPass(board.Black))

	alpha, beta := -9, 9
	tightenTelomere(s, &alpha, &beta)
	assert.Equal(t, -9, alpha)
	assert.Equal(t, 9, beta)
}

func TestTightenTelomereNoOpAwayFromBoundary(t *testing.T) {
	// Last move at a position other than 3 or size-4 never matches either
	// switch case, so the function returns before touching the board at all.
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 8)
	s.Play(board.NewMove(board.Black, 0))

	alpha, beta := -9, 9
	tightenTelomere(s, &alpha, &beta)
	assert.Equal(t, -9, alpha)
	assert.Equal(t, 9, beta)
}
