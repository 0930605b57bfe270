package board

import "math/rand"

// MaxDepth bounds the usable search depth for the Zobrist table. Exceeding it
// is a fatal assertion (see State.Play).
const MaxDepth = 256

// ZobristHash is a depth-dependent position hash. The hash
// depends on depth, so equal positions reached at different depths hash
// differently; this is safe because the transposition table always follows
// up a hash match with a full-state comparison (see search.TranspositionTable).
type ZobristHash uint64

// ZobristTable is a pseudo-randomized table for computing a position hash,
// indexed by (depth, position+1 (0 means pass), color). Process-wide,
// populated once with a random seed.
//
// Grounded on morlock's board.ZobristTable (piece-square indexed,
// incremental XOR rehash on Move); reindexed here to (depth, position,
// color) so repeated positions at different depths never collide.
type ZobristTable struct {
	words [MaxDepth][MaxSize + 1][3]ZobristHash // [depth][position+1, 0=pass][color]
}

// NewZobristTable builds a new table from the given random seed.
func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))
	t := &ZobristTable{}
	for d := 0; d < MaxDepth; d++ {
		for p := 0; p <= MaxSize; p++ {
			for c := 0; c < 3; c++ {
				t.words[d][p][c] = ZobristHash(r.Uint64())
			}
		}
	}
	return t
}

// Hash computes the hash contribution of playing the given move at the given
// depth (the ply at which the move is made, i.e. before incrementing).
func (t *ZobristTable) Hash(depth int, m Move) ZobristHash {
	if depth < 0 || depth >= MaxDepth {
		panic("zobrist: depth overflow")
	}
	idx := 0
	if !m.IsPass {
		idx = m.Position + 1
	}
	return t.words[depth][idx][m.Color]
}
