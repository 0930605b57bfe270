package search_test

import (
	"context"
	"testing"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestMetricsPolicyCountsNodes(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 3)

	p := search.NewMetricsPolicy(nopPolicy{})
	p.OnExit(context.Background(), s, -4, 4, 0, search.Node{Minimax: 1}, true)
	p.OnExit(context.Background(), s, -4, 4, 0, search.Node{Minimax: 1}, true)

	assert.Equal(t, uint64(2), p.Nodes)
}

func TestMetricsPolicyTalliesExactPVResultsByBoardAndValue(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 3)
	s.Play(board.NewMove(board.Black, 0))

	p := search.NewMetricsPolicy(nopPolicy{})
	exact := search.Node{Minimax: 1, Type: search.PV, Exact: true}
	p.OnExit(context.Background(), s, -4, 4, 1, exact, false)
	p.OnExit(context.Background(), s, -4, 4, 1, exact, false)

	cells := s.Board().Cells()
	assert.Equal(t, 2, p.ByResult[cells][1])
}

func TestMetricsPolicyIgnoresNonExactOrNonPVResults(t *testing.T) {
	zt := board.NewZobristTable(0)
	s := board.NewState(zt, 3)

	p := search.NewMetricsPolicy(nopPolicy{})
	p.OnExit(context.Background(), s, -4, 4, 1, search.Node{Minimax: 1, Type: search.PV, Exact: false}, false)
	p.OnExit(context.Background(), s, -4, 4, 1, search.Node{Minimax: 1, Type: search.Max, Exact: true}, false)

	assert.Empty(t, p.ByResult)
	assert.Equal(t, uint64(2), p.Nodes, "both calls still count as visited nodes")
}
