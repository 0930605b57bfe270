package conjecture

import (
	"context"

	"github.com/seekerror/logw"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
)

// Expectation checks a proven conjecture against the actual exhaustive
// search result at the same node, returning a failure message iff the
// conjecture's claim did not hold. Used to validate a conjecture's
// correctness against a node-by-node exact search rather than trusting the
// translation by inspection alone.
type Expectation func(s *board.State, alpha, beta, depth int, value search.Node) (msg string, failed bool)

// Prover wraps a Policy to log, rather than apply, a conjecture's verdict at
// every node: the wrapped Inner runs the real (unpruned) search to
// completion, and Check is evaluated against the result on the way out, so a
// conjecture under test can be validated across many positions without
// risking a wrong answer from a broken pruning rule.
//
// Grounded on original_source/conjecture.hpp's ConjectureProverImplWrapper
// (on_exit calls conj.expect and prints any returned message); this port
// routes the message through logw.Warningf instead of stdout, matching how
// the rest of this module reports anomalies.
type Prover struct {
	Inner search.Policy
	Check Expectation
}

func (p Prover) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (search.Node, bool) {
	return p.Inner.InitNode(ctx, s, alpha, beta, depth)
}

func (p Prover) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {
	p.Inner.OnEnter(ctx, s, alpha, beta, depth)
}

func (p Prover) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	return p.Inner.GenMoves(ctx, s, depth)
}

func (p Prover) PreUpdate(move board.Move, alpha, beta *int, parent *search.Node, depth, index int) {
	p.Inner.PreUpdate(move, alpha, beta, parent, depth, index)
}

func (p Prover) Update(move board.Move, alpha, beta *int, parent *search.Node, child search.Node) {
	p.Inner.Update(move, alpha, beta, parent, child)
}

func (p Prover) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value search.Node, terminal bool) {
	p.Inner.OnExit(ctx, s, alpha, beta, depth, value, terminal)

	if p.Check == nil {
		return
	}
	if msg, failed := p.Check(s, alpha, beta, depth, value); failed {
		logw.Warningf(ctx, "Conjecture mismatch at board %v with player %v at depth %v: %v", s.Board(), s.Turn(), depth, msg)
	}
}

// ExpectFull builds an Expectation verifying Full's claim: whenever the
// current position is already at the maximum score for one side with the
// opponent holding no legal replies, the exact minimax value must equal that
// extreme -- anything else means Full's InitNode translation is unsound.
func ExpectFull() Expectation {
	return func(s *board.State, alpha, beta, depth int, value search.Node) (string, bool) {
		minimax := s.Board().Minimax()
		size := s.Size()
		if (minimax == size || minimax == -size) && s.LegalMoves(s.Turn().Flip()) == 0 {
			if value.Exact && value.Minimax != minimax {
				return "Full conjecture predicted an extreme score that the exact search did not confirm", true
			}
		}
		return "", false
	}
}

// ExpectStability builds an Expectation verifying Stability's claim: every
// board recognized as stable must have an exact minimax value equal to its
// static board.Board.Minimax(), since Stability asserts no further play
// changes the outcome.
func ExpectStability() Expectation {
	return func(s *board.State, alpha, beta, depth int, value search.Node) (string, bool) {
		b := s.Board()
		if b.AnyCaptured() {
			return "", false
		}
		if _, ok := stableBoards(s.Size())[b.Cells()]; ok {
			if value.Exact && value.Minimax != b.Minimax() {
				return "Stability conjecture predicted the static score but the exact search disagreed", true
			}
		}
		return "", false
	}
}
