package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/herohde/lgo/pkg/board"
)

// NewickPolicy wraps a Policy to additionally render the explored search
// tree (down to a configurable depth) in Newick format, a textual tree
// notation of nested, comma-separated, parenthesized groups.
//
// Grounded on original_source/ab.hpp's NewickTree<size,Impl>, which streams
// directly to a file; this port buffers into memory instead (see Tree) and
// leaves writing the buffer anywhere -- file, log sink, HTTP response -- to
// the caller, since the engine package is not responsible for file I/O.
type NewickPolicy struct {
	Inner Policy

	DepthCutoff int // nodes deeper than this are not rendered; nodes at this depth are rendered without their children.

	out       strings.Builder
	needClose []bool
}

func NewNewickPolicy(inner Policy, depthCutoff int) *NewickPolicy {
	return &NewickPolicy{Inner: inner, DepthCutoff: depthCutoff}
}

// Tree returns the Newick-format rendering of the tree explored since
// construction (or the last call to Reset).
func (p *NewickPolicy) Tree() string {
	return p.out.String()
}

// Reset clears the buffered tree, e.g. before a fresh top-level search.
func (p *NewickPolicy) Reset() {
	p.out.Reset()
	p.needClose = nil
}

func (p *NewickPolicy) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (Node, bool) {
	return p.Inner.InitNode(ctx, s, alpha, beta, depth)
}

func (p *NewickPolicy) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {
	if depth < p.DepthCutoff && *beta > *alpha {
		p.out.WriteString("(")
		p.needClose = append(p.needClose, true)
	} else {
		p.needClose = append(p.needClose, false)
	}
	p.Inner.OnEnter(ctx, s, alpha, beta, depth)
}

func (p *NewickPolicy) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	return p.Inner.GenMoves(ctx, s, depth)
}

func (p *NewickPolicy) PreUpdate(move board.Move, alpha, beta *int, parent *Node, depth, index int) {
	if depth < p.DepthCutoff && index != 0 {
		p.out.WriteString(",")
	}
	p.Inner.PreUpdate(move, alpha, beta, parent, depth, index)
}

func (p *NewickPolicy) Update(move board.Move, alpha, beta *int, parent *Node, child Node) {
	p.Inner.Update(move, alpha, beta, parent, child)
}

func (p *NewickPolicy) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value Node, terminal bool) {
	if !terminal {
		n := len(p.needClose) - 1
		if p.needClose[n] {
			p.out.WriteString(")")
		}
		p.needClose = p.needClose[:n]
		if depth <= p.DepthCutoff {
			fmt.Fprintf(&p.out, "%v", s.Board())
		}
		if depth == 0 {
			p.out.WriteString(";\n")
		}
	} else if depth <= p.DepthCutoff {
		fmt.Fprintf(&p.out, "%v", s.Board())
	}
	p.Inner.OnExit(ctx, s, alpha, beta, depth, value, terminal)
}
