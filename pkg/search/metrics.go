package search

import (
	"context"

	"github.com/herohde/lgo/pkg/board"
)

// MetricsPolicy wraps a Policy to count visited nodes and, for proven PV
// nodes, tally how many times each board/value pair was independently
// reached -- a rough measure of how transposition-heavy the game tree is.
//
// Grounded on original_source/ab.hpp's Metrics<size,Impl>.
type MetricsPolicy struct {
	Inner Policy

	Nodes    uint64
	ByResult map[uint32]map[int]int // board cells -> minimax value -> count.
}

func NewMetricsPolicy(inner Policy) *MetricsPolicy {
	return &MetricsPolicy{Inner: inner, ByResult: map[uint32]map[int]int{}}
}

func (p *MetricsPolicy) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (Node, bool) {
	return p.Inner.InitNode(ctx, s, alpha, beta, depth)
}

func (p *MetricsPolicy) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {
	p.Inner.OnEnter(ctx, s, alpha, beta, depth)
}

func (p *MetricsPolicy) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	return p.Inner.GenMoves(ctx, s, depth)
}

func (p *MetricsPolicy) PreUpdate(move board.Move, alpha, beta *int, parent *Node, depth, index int) {
	p.Inner.PreUpdate(move, alpha, beta, parent, depth, index)
}

func (p *MetricsPolicy) Update(move board.Move, alpha, beta *int, parent *Node, child Node) {
	p.Inner.Update(move, alpha, beta, parent, child)
}

func (p *MetricsPolicy) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value Node, terminal bool) {
	p.Nodes++
	if value.Type == PV && value.Exact {
		cells := s.Board().Cells()
		if p.ByResult[cells] == nil {
			p.ByResult[cells] = map[int]int{}
		}
		p.ByResult[cells][value.Minimax]++
	}
	p.Inner.OnExit(ctx, s, alpha, beta, depth, value, terminal)
}
