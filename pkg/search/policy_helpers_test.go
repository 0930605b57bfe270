package search_test

import (
	"context"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
)

// nopPolicy implements search.Policy with inert defaults, so a decorator
// under test can be exercised in isolation from Minimax's real logic.
type nopPolicy struct{}

func (nopPolicy) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (search.Node, bool) {
	return search.Node{}, false
}
func (nopPolicy) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {}
func (nopPolicy) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move      { return nil }
func (nopPolicy) PreUpdate(move board.Move, alpha, beta *int, parent *search.Node, depth, index int) {
}
func (nopPolicy) Update(move board.Move, alpha, beta *int, parent *search.Node, child search.Node) {}
func (nopPolicy) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value search.Node, terminal bool) {
}
