package conjecture_test

import (
	"context"
	"testing"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
	"github.com/herohde/lgo/pkg/search/conjecture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicPolicy is a search.Policy stub that fails the test if any of its
// methods are invoked -- used to confirm a conjecture short-circuits a node
// without ever falling through to its Inner.
type panicPolicy struct{ t *testing.T }

func (p panicPolicy) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (search.Node, bool) {
	p.t.Fatal("InitNode should not have been reached")
	return search.Node{}, false
}
func (p panicPolicy) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {
	p.t.Fatal("OnEnter should not have been reached")
}
func (p panicPolicy) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	p.t.Fatal("GenMoves should not have been reached")
	return nil
}
func (p panicPolicy) PreUpdate(move board.Move, alpha, beta *int, parent *search.Node, depth, index int) {
	p.t.Fatal("PreUpdate should not have been reached")
}
func (p panicPolicy) Update(move board.Move, alpha, beta *int, parent *search.Node, child search.Node) {
	p.t.Fatal("Update should not have been reached")
}
func (p panicPolicy) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value search.Node, terminal bool) {
	p.t.Fatal("OnExit should not have been reached")
}

// fullBoard plays a sequence of moves building ".BB.BB." on a 7-cell strip:
// two Black pairs, each still touching an empty cell on its outer edge, so
// neither is in atari, yet the shared inner gap and both outer cells are
// suicide for White -- White has no legal move at all, and the whole strip
// already reads as Black territory (Score().Minimax() == size).
func fullBoard(t *testing.T) *board.State {
	t.Helper()

	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 7)
	for _, pos := range []int{1, 2, 4, 5} {
		s.Play(board.NewMove(board.Black, pos))
		s.Play(board.NewPass(board.White))
	}
	require.Equal(t, ".BB.BB.", s.Board().String())
	require.Equal(t, board.Black, s.Turn())
	require.Zero(t, s.LegalMoves(board.White))
	require.Equal(t, 7, s.Board().Minimax())
	return s
}

func TestFullShortCircuitsFullyEnclosedBoard(t *testing.T) {
	s := fullBoard(t)

	p := conjecture.Full{Inner: panicPolicy{t: t}}
	value, terminal := p.InitNode(context.Background(), s, search.AlphaInit(7), search.BetaInit(7), 0)

	assert.True(t, terminal)
	assert.True(t, value.Exact)
	assert.Equal(t, 7, value.Minimax)
	assert.Equal(t, search.PV, value.Type)
}

func TestFullFallsThroughWhenNotEnclosed(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 7)

	sentinel := search.Node{Minimax: 42}
	p := conjecture.Full{Inner: stubInitNode{value: sentinel}}

	value, terminal := p.InitNode(context.Background(), s, search.AlphaInit(7), search.BetaInit(7), 0)
	assert.False(t, terminal)
	assert.Equal(t, sentinel, value)
}

// stubInitNode forwards only InitNode with a fixed value, for testing that a
// conjecture correctly falls through to its Inner.
type stubInitNode struct {
	search.Policy
	value search.Node
}

func (s stubInitNode) InitNode(ctx context.Context, st *board.State, alpha, beta int, depth int) (search.Node, bool) {
	return s.value, false
}
