package board

import (
	"math/bits"
	"strings"
)

// Board is a bit-packed row of Size cells (2 bits/cell) plus a parallel
// bitmap of positions that ever held a stone later removed by capture.
// Cells pack into a single uint32, so Size <= MaxSize (16).
//
// Grounded line-for-line on original_source/lgo.hpp's Board<size> (packed
// pos_t, clear_chain, clear_captured); Go surface (methods, String) follows
// morlock's Bitboard style.
type Board struct {
	Size     int
	cells    uint32
	captured uint32
}

// NewBoard returns an empty board of the given size.
func NewBoard(size int) Board {
	if size <= 0 || size > MaxSize {
		panic("board: invalid size")
	}
	return Board{Size: size}
}

// Cells returns the raw packed cell word. Used as a Board equality/hash key.
func (b Board) Cells() uint32 {
	return b.cells
}

// IsCaptured returns true iff the position ever held a stone that was
// removed by capture. The position is currently Empty if so, but the
// converse need not hold.
func (b Board) IsCaptured(pos int) bool {
	return b.captured&(1<<uint(pos)) != 0
}

// AnyCaptured returns true iff any position on the board was ever captured.
func (b Board) AnyCaptured() bool {
	return b.captured != 0
}

// Get returns the cell at pos.
func (b Board) Get(pos int) Cell {
	b.checkBounds(pos)
	return Cell((b.cells >> uint(pos*CellWidth)) & ((1 << CellWidth) - 1))
}

// Set places cell at pos and returns the updated board.
func (b Board) Set(pos int, c Cell) Board {
	b.checkBounds(pos)
	shift := uint(pos * CellWidth)
	mask := uint32((1 << CellWidth) - 1)
	b.cells = (b.cells &^ (mask << shift)) | (uint32(c) << shift)
	return b
}

func (b Board) checkBounds(pos int) {
	if pos < 0 || pos >= b.Size {
		panic("board: position out of range")
	}
}

// EmptySet returns a bitmask of Empty positions.
func (b Board) EmptySet() uint32 {
	var res uint32
	for i := 0; i < b.Size; i++ {
		if b.Get(i) == Empty {
			res |= 1 << uint(i)
		}
	}
	return res
}

// Score computes the territory score by smearing the last-seen nonempty
// color in from each end and counting positions where the enclosing color
// is unambiguous. See GLOSSARY "Smear".
func (b Board) Score() Score {
	var left, right [MaxSize]Cell

	lastLeft, lastRight := Empty, Empty
	for i := 0; i < b.Size; i++ {
		if c := b.Get(i); c != Empty {
			lastRight = c
		}
		right[i] = lastRight

		j := b.Size - i - 1
		if c := b.Get(j); c != Empty {
			lastLeft = c
		}
		left[j] = lastLeft
	}

	var sc Score
	for i := 0; i < b.Size; i++ {
		l, r := left[i], right[i]
		if (l == Black && (l == r || r == Empty)) || (r == Black && l == Empty) {
			sc.Black++
		}
		if (l == White && (l == r || r == Empty)) || (r == White && l == Empty) {
			sc.White++
		}
	}
	return sc
}

// Minimax is a convenience for Score().Minimax().
func (b Board) Minimax() int {
	return b.Score().Minimax()
}

// ClearChain sets cells in [start, end) to Empty and marks them captured.
func (b Board) ClearChain(start, end int) Board {
	for i := start; i < end; i++ {
		b = b.Set(i, Empty)
		b.captured |= 1 << uint(i)
	}
	return b
}

// ClearCaptured applies LGO capture rules after a stone was just placed at
// position. It removes any opponent chain(s) left without a liberty by the
// play, and then the just-placed chain itself if it is left without a
// liberty (suicide). Returns the updated board and the number of chains
// removed (0..3). The board edge acts as a wall with no liberty.
func (b Board) ClearCaptured(position int) (Board, int) {
	player := b.Get(position)
	opponent := player.Flip()
	captured := 0

	// (1) find the maximal same-color chain containing position: i, j are
	// the boundary indices of a cell that differs (or off the edge).

	i := position - 1
	for i >= 0 && b.Get(i) == player {
		i--
	}
	j := position + 1
	for j < b.Size && b.Get(j) == player {
		j++
	}

	// (2) find the opponent-colored runs immediately outside [i,j].

	s := i
	for s >= 0 && b.Get(s) == opponent {
		s--
	}
	t := j
	for t < b.Size && b.Get(t) == opponent {
		t++
	}

	// (3) capture left: opponent run (s, i] bounded outward by a same-color
	// stone or the board edge.
	if (s < 0 || b.Get(s) == player) && i != s {
		b = b.ClearChain(s+1, i+1)
		captured++
	}
	// (4) capture right: opponent run [j, t) bounded outward similarly.
	if (t >= b.Size || b.Get(t) == player) && t != j {
		b = b.ClearChain(j, t)
		captured++
	}
	// (5) suicide: the just-placed chain (i, j) has no liberty.
	if (i < 0 || b.Get(i) == opponent) && (j >= b.Size || b.Get(j) == opponent) && j != i {
		b = b.ClearChain(i+1, j)
		captured++
	}
	return b, captured
}

func (b Board) String() string {
	var sb strings.Builder
	for i := 0; i < b.Size; i++ {
		sb.WriteString(b.Get(i).String())
	}
	return sb.String()
}

// PopCount returns the number of set bits in a position bitmask. Convenience
// wrapper mirroring morlock's Bitboard.PopCount.
func PopCount(mask uint32) int {
	return bits.OnesCount32(mask)
}
