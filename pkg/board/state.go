package board

import "fmt"

// GameState is the three-valued status of a line of play: Normal (stones may
// still be placed), Passed (the side to move passed and the game ends if the
// other side passes too), or Over (both sides passed consecutively).
type GameState uint8

const (
	Normal GameState = iota
	Passed
	Over
)

func (s GameState) String() string {
	switch s {
	case Normal:
		return "normal"
	case Passed:
		return "passed"
	case Over:
		return "over"
	default:
		return "?"
	}
}

// info is a memoized, per-color snapshot of move legality derived from the
// current board and history, computed once per ply and reused by every
// caller (move generators, conjectures) that asks for it at that node.
type info struct {
	valid    bool
	legal    uint32 // bitmask of legal positions for the color.
	capturer uint32 // subset of legal that captures at least one chain.
}

// node links a played position back to its parent, mirroring morlock's
// board.node (current/prev linked-list undo chain) rather than a slice
// stack, so forked search branches can share tail history cheaply.
type node struct {
	state GameState
	board Board
	hash  ZobristHash
	turn  Cell

	move Move // move that produced this node; zero value at the root.
	prev *node
}

// State is a complete, replayable line of Linear Go play: the current board,
// superko history, side to move, incremental Zobrist hash, and an undo
// chain back to the root. Not safe for concurrent use; Fork for parallel
// exploration of sibling branches.
//
// Grounded on original_source/lgo.hpp's State<size> (game_state/board/history/
// past-stack, play/undo/legal_moves) translated to morlock's board.Board
// linked-node undo chain and Fork idiom.
type State struct {
	zt      *ZobristTable
	history History

	depth   int
	current *node
	cache   [3]info // indexed by Cell; Empty unused.
}

// NewState returns the empty starting position of the given size, Black to
// move.
func NewState(zt *ZobristTable, size int) *State {
	return &State{
		zt:      zt,
		history: NewHistory(size),
		current: &node{board: NewBoard(size), turn: Black},
	}
}

func (s *State) Size() int        { return s.current.board.Size }
func (s *State) Board() Board     { return s.current.board }
func (s *State) Turn() Cell       { return s.current.turn }
func (s *State) GameState() GameState { return s.current.state }
func (s *State) Depth() int       { return s.depth }
func (s *State) Hash() ZobristHash { return s.current.hash }

// HistoryDigest returns the superko history's order-independent fingerprint,
// used by the transposition table as a cheap full-state comparison proxy.
func (s *State) HistoryDigest() uint64 { return s.history.Digest() }

// HistoryContains reports whether b was already reached earlier along this
// line of play, without mutating the history. Exposed for conjectures (e.g.
// conjecture.Telomere) that need to test hypothetical board values that were
// never actually played.
func (s *State) HistoryContains(b Board) bool { return s.history.Contains(b) }

// Terminal returns true iff the game has ended (two consecutive passes).
func (s *State) Terminal() bool {
	return s.current.state == Over
}

// LastMove returns the move that produced the current position, if any.
func (s *State) LastMove() (Move, bool) {
	if s.current.prev == nil {
		return Move{}, false
	}
	return s.current.move, true
}

// Fork branches off an independent State sharing no mutable state with the
// receiver, suitable for exploring a sibling subtree concurrently. The
// history set is deep-copied since both branches will mutate it
// independently as they play and undo moves.
func (s *State) Fork() *State {
	fork := &State{
		zt:      s.zt,
		history: s.history.clone(),
		depth:   s.depth,
		current: s.current,
	}
	fork.cache = s.cache
	return fork
}

// Play applies move, which must be among LegalMoves(move.Color) or a pass,
// and must be made by the side to move. Panics if depth exceeds
// board.MaxDepth, mirroring morlock's assertion-style invariants on
// malformed input.
func (s *State) Play(move Move) {
	if s.current.state == Over {
		panic("state: play after game over")
	}
	if move.Color != s.current.turn {
		panic("state: move by side not to move")
	}

	next := &node{turn: move.Color.Flip(), move: move, prev: s.current}

	if move.IsPass {
		next.board = s.current.board
		switch s.current.state {
		case Normal:
			next.state = Passed
		case Passed:
			next.state = Over
		}
	} else {
		if s.current.board.Get(move.Position) != Empty {
			panic("state: position occupied")
		}
		b := s.current.board.Set(move.Position, move.Color)
		b, _ = b.ClearCaptured(move.Position)
		if s.history.Contains(b) {
			panic("state: move violates superko")
		}
		s.history.Add(b)
		next.board = b
		next.state = Normal
	}
	next.hash = s.current.hash ^ s.zt.Hash(s.depth, move)

	s.current = next
	s.depth++
	s.cache = [3]info{}
}

// Undo reverts the most recently played move. Panics if called at the root.
func (s *State) Undo() {
	if s.current.prev == nil {
		panic("state: undo at root")
	}
	if !s.current.move.IsPass && !boardsEqual(s.current.board, s.current.prev.board) {
		s.history.Remove(s.current.board)
	}
	s.current = s.current.prev
	s.depth--
	s.cache = [3]info{}
}

func boardsEqual(a, b Board) bool {
	return a.Cells() == b.Cells()
}

// LegalMoves returns a bitmask of positions at which color may place a stone
// without repeating a previously-seen position (superko) or resulting in an
// immediate self-capture (suicide). Passing is always legal and is not part
// of the mask.
func (s *State) LegalMoves(color Cell) uint32 {
	return s.infoFor(color).legal
}

// CapturingMoves returns the subset of LegalMoves(color) that remove at
// least one opposing chain when played.
func (s *State) CapturingMoves(color Cell) uint32 {
	return s.infoFor(color).capturer
}

func (s *State) infoFor(color Cell) info {
	if s.cache[color].valid {
		return s.cache[color]
	}

	board := s.current.board
	legal := board.EmptySet()
	var capturer uint32

	for i := 0; i < board.Size; i++ {
		bit := uint32(1) << uint(i)
		if legal&bit == 0 {
			continue
		}

		b := board.Set(i, color)
		b, captured := b.ClearCaptured(i)

		if b.Get(i) == Empty {
			// Suicide: the just-placed stone vanished without capturing.
			legal &^= bit
			continue
		}
		if s.history.Contains(b) {
			legal &^= bit
			continue
		}
		if captured > 0 {
			capturer |= bit
		}
	}

	result := info{valid: true, legal: legal, capturer: capturer}
	s.cache[color] = result
	return result
}

func (s *State) String() string {
	return fmt.Sprintf("%v [turn=%v, state=%v]", s.current.board, s.current.turn, s.current.state)
}
