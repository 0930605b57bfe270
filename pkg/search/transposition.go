package search

import (
	"context"
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/herohde/lgo/pkg/board"
)

// TranspositionTable caches exact/bounded search results keyed by position
// hash, to avoid re-searching transposed lines. Must be thread-safe: the
// same table instance is shared by concurrent Fork'd searches.
//
// Unlike a chess TT (hash match is treated as sufficient, since Zobrist
// collisions are vanishingly rare relative to search error), a Linear Go TT
// entry must additionally match the full game state on lookup: the Zobrist
// hash here is depth-indexed (see board.ZobristTable), so two genuinely
// different states can collide at the same depth, and superko legality
// depends on the full history, not just the current board. Read therefore
// compares board cells, game state, and a history digest before accepting a
// hit.
//
// Grounded on morlock's pkg/search/transposition.go (lock-free
// unsafe.Pointer/atomic.CompareAndSwapPointer table, direct-mapped by hash
// mod table size); the stricter match and replacement-by-work policy are
// grounded on original_source/ab.hpp's TranspositionTable<size,T> (which
// additionally stores board/history/game_state for full comparison).
type TranspositionTable interface {
	// Read returns the cached Node for the state, if a full-state match is
	// found.
	Read(hash board.ZobristHash, cells uint32, state board.GameState, historyDigest uint64) (Node, bool)
	// Write stores the entry, subject to the replacement policy: kept iff
	// this entry has at least as much subtree work as what it replaces.
	Write(hash board.ZobristHash, cells uint32, state board.GameState, historyDigest uint64, value Node, work uint64)

	Size() uint64
	Used() float64
}

type entry struct {
	hash          board.ZobristHash
	cells         uint32
	state         board.GameState
	historyDigest uint64
	work          uint64
	value         Node
}

type table struct {
	slots []*entry
	mask  uint64
	used  uint64
}

// TranspositionTableFactory constructs a table of the given byte size.
// Grounded on morlock's pkg/search.TranspositionTableFactory, letting
// pkg/engine swap in alternate table constructions without depending on the
// concrete type.
type TranspositionTableFactory func(sizeBytes uint64) TranspositionTable

// NewTranspositionTable returns a table sized to the nearest power of two
// number of entries not exceeding sizeBytes.
func NewTranspositionTable(sizeBytes uint64) TranspositionTable {
	const approxEntryBytes = 64
	n := sizeBytes / approxEntryBytes
	if n < 1 {
		n = 1
	}
	pow := uint64(1) << uint(63-bits.LeadingZeros64(n))
	return &table{
		slots: make([]*entry, pow),
		mask:  pow - 1,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.slots)) * 64
}

func (t *table) Used() float64 {
	return float64(t.used) / float64(len(t.slots))
}

func (t *table) Read(hash board.ZobristHash, cells uint32, state board.GameState, historyDigest uint64) (Node, bool) {
	key := uint64(hash) & t.mask
	addr := (*unsafe.Pointer)(unsafe.Pointer(&t.slots[key]))

	ptr := (*entry)(atomic.LoadPointer(addr))
	if ptr != nil && ptr.hash == hash && ptr.cells == cells && ptr.state == state && ptr.historyDigest == historyDigest {
		return ptr.value, true
	}
	return Node{}, false
}

func (t *table) Write(hash board.ZobristHash, cells uint32, state board.GameState, historyDigest uint64, value Node, work uint64) {
	key := uint64(hash) & t.mask
	addr := (*unsafe.Pointer)(unsafe.Pointer(&t.slots[key]))

	fresh := &entry{hash: hash, cells: cells, state: state, historyDigest: historyDigest, work: work, value: value}

	for {
		ptr := (*entry)(atomic.LoadPointer(addr))
		if ptr != nil && ptr.work > fresh.work {
			return // keep the entry that cost more to compute
		}
		if atomic.CompareAndSwapPointer(addr, unsafe.Pointer(ptr), unsafe.Pointer(fresh)) {
			if ptr == nil {
				t.used++
			}
			return
		}
	}
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v @ %v%%]", t.Size(), int(100*t.Used()))
}

// NoTranspositionTable is a Nop implementation, used when the table is
// disabled.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Read(hash board.ZobristHash, cells uint32, state board.GameState, historyDigest uint64) (Node, bool) {
	return Node{}, false
}

func (NoTranspositionTable) Write(hash board.ZobristHash, cells uint32, state board.GameState, historyDigest uint64, value Node, work uint64) {
}

func (NoTranspositionTable) Size() uint64 { return 0 }
func (NoTranspositionTable) Used() float64 { return 0 }

// TTPolicy wraps a Policy with transposition table lookups, mirroring
// original_source/ab.hpp's IterativeDeepening<size,...>::ImplWrapper: a TT
// hit with a PV-typed value short-circuits the node as terminal; a
// one-sided (Min/Max) hit does not tighten alpha or beta and is treated as a
// miss; every exit with an exact value writes it back, weighted by the
// subtree work (node count) spent computing it.
type TTPolicy struct {
	Inner Policy
	TT    TranspositionTable
	Nodes *uint64 // points at the owning Engine's live node counter.

	workAtEntry map[int]uint64 // depth -> *Nodes at on-enter, to compute subtree work at on-exit.
}

// NewTTPolicy wraps inner with table-backed memoization. nodes must point at
// the Engine's live node counter (Engine.NodesPtr) so Write can record
// subtree work.
func NewTTPolicy(inner Policy, tt TranspositionTable, nodes *uint64) *TTPolicy {
	return &TTPolicy{Inner: inner, TT: tt, Nodes: nodes, workAtEntry: map[int]uint64{}}
}

func key(s *board.State) (board.ZobristHash, uint32, board.GameState, uint64) {
	return s.Hash(), s.Board().Cells(), s.GameState(), s.HistoryDigest()
}

func (p *TTPolicy) InitNode(ctx context.Context, s *board.State, alpha, beta int, depth int) (Node, bool) {
	p.workAtEntry[depth] = *p.Nodes

	value, terminal := p.Inner.InitNode(ctx, s, alpha, beta, depth)
	if terminal {
		return value, true
	}

	// Only an exact, in-window (PV) hit can short-circuit the node: a
	// fail-high/fail-low (Min/Max) entry only bounds one side of a window
	// that may differ at this visit, and original_source/ab.hpp's own
	// alpha/beta-tightening for that case relies on by-reference alpha/beta
	// threaded through init_node -- Policy.InitNode takes them by value, so
	// this simplification (documented in DESIGN.md) forgoes that refinement
	// and simply re-searches in that case.
	hash, cells, state, digest := key(s)
	if hit, ok := p.TT.Read(hash, cells, state, digest); ok && hit.Type == PV {
		return hit, true
	}
	return value, false
}

func (p *TTPolicy) OnEnter(ctx context.Context, s *board.State, alpha, beta *int, depth int) {
	p.Inner.OnEnter(ctx, s, alpha, beta, depth)
}

func (p *TTPolicy) GenMoves(ctx context.Context, s *board.State, depth int) []board.Move {
	return p.Inner.GenMoves(ctx, s, depth)
}

func (p *TTPolicy) PreUpdate(move board.Move, alpha, beta *int, parent *Node, depth, index int) {
	p.Inner.PreUpdate(move, alpha, beta, parent, depth, index)
}

func (p *TTPolicy) Update(move board.Move, alpha, beta *int, parent *Node, child Node) {
	p.Inner.Update(move, alpha, beta, parent, child)
}

func (p *TTPolicy) OnExit(ctx context.Context, s *board.State, alpha, beta int, depth int, value Node, terminal bool) {
	p.Inner.OnExit(ctx, s, alpha, beta, depth, value, terminal)

	if value.Exact {
		work := *p.Nodes - p.workAtEntry[depth]
		hash, cells, state, digest := key(s)
		p.TT.Write(hash, cells, state, digest, value, work)
	}
	delete(p.workAtEntry, depth)
}
