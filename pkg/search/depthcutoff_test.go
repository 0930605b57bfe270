package search_test

import (
	"context"
	"testing"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestDepthCutoffTerminatesAtCutoff(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 5)
	s.Play(board.NewMove(board.Black, 0))

	p := &search.DepthCutoffPolicy{Inner: nopPolicy{}, Cutoff: 1}
	value, terminal := p.InitNode(context.Background(), s, -6, 6, 1)

	assert.True(t, terminal)
	assert.False(t, value.Exact)
	assert.Equal(t, s.Board().Minimax(), value.Minimax)
}

func TestDepthCutoffFallsThroughBeforeCutoff(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 5)

	sentinel := search.Node{Minimax: 11}
	p := &search.DepthCutoffPolicy{Inner: stubInitNode{value: sentinel}, Cutoff: 3}

	value, terminal := p.InitNode(context.Background(), s, -6, 6, 1)
	assert.False(t, terminal)
	assert.Equal(t, sentinel, value)
}

// stubInitNode forwards only InitNode with a fixed value.
type stubInitNode struct {
	nopPolicy
	value search.Node
}

func (s stubInitNode) InitNode(ctx context.Context, st *board.State, alpha, beta int, depth int) (search.Node, bool) {
	return s.value, false
}
