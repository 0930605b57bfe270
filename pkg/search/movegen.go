package search

import "github.com/herohde/lgo/pkg/board"

// GoodPlayer generates legal moves for a position in a fixed priority order:
// pass first, then the "cell-2" endgame shape (a pair of adjacent legal
// cells, checked pairwise inward from both edges), then
// capturing (atari) moves, then everything else -- center cells before the
// two edge cells, which are conventionally searched last. At the root (and,
// for odd sizes, at the reply to an opening center move) mirror-image moves
// are pruned, since a strip position is symmetric under reflection.
//
// Grounded line-for-line on original_source/player.hpp's GoodPlayer. The
// cell_2_conjecture_simple bucket is omitted: original_source/lgo.hpp's own
// State::moves (the baseline move function) likewise leaves it disabled in
// favor of cell_2_conjecture_full, which is a strict generalization of it.
type GoodPlayer struct{}

// Moves returns color's legal moves at s, in priority order.
func (GoodPlayer) Moves(s *board.State, color board.Cell) []board.Move {
	size := s.Size()
	legal := s.LegalMoves(color)

	if s.Depth() == 0 {
		legal &= symmetryMask(size)
		legal &^= 1
	}
	if size%2 == 1 && s.Depth() == 1 && s.Board().Get(size/2).IsStone() {
		legal &= symmetryMask(size)
	}

	moves := []board.Move{board.NewPass(color)}
	cell2ConjectureFull(color, size, &legal, &moves)
	atariMoves(s, color, size, &legal, &moves)
	otherMoves(color, size, &legal, &moves)
	return moves
}

func symmetryMask(size int) uint32 {
	return (uint32(1) << uint((size-1)/2+1)) - 1
}

func cell2ConjectureFull(color board.Cell, size int, legal *uint32, moves *[]board.Move) {
	if size < 4 {
		return
	}
	for i := 0; i < size-2; i += 2 {
		if *legal&(3<<uint(i)) == 3<<uint(i) {
			*moves = append(*moves, board.NewMove(color, i+1))
			*legal &^= 2 << uint(i)
		}
		if j := size - i - 2; *legal&(3<<uint(j)) == 3<<uint(j) {
			*moves = append(*moves, board.NewMove(color, j))
			*legal &^= 1 << uint(j)
		}
	}
}

func atariMoves(s *board.State, color board.Cell, size int, legal *uint32, moves *[]board.Move) {
	capturing := s.CapturingMoves(color)
	for i := 1; i < size-1; i++ {
		if *legal&(1<<uint(i)) != 0 && capturing&(1<<uint(i)) != 0 {
			*moves = append(*moves, board.NewMove(color, i))
			*legal &^= 1 << uint(i)
		}
	}
	if *legal&1 != 0 && capturing&1 != 0 {
		*moves = append(*moves, board.NewMove(color, 0))
		*legal &^= 1
	}
	if last := uint(size - 1); *legal&(1<<last) != 0 && capturing&(1<<last) != 0 {
		*moves = append(*moves, board.NewMove(color, size-1))
		*legal &^= 1 << last
	}
}

func otherMoves(color board.Cell, size int, legal *uint32, moves *[]board.Move) {
	for i := 1; i < size-1; i++ {
		if *legal&(1<<uint(i)) != 0 {
			*moves = append(*moves, board.NewMove(color, i))
		}
	}
	if *legal&1 != 0 {
		*moves = append(*moves, board.NewMove(color, 0))
	}
	if last := uint(size - 1); *legal&(1<<last) != 0 {
		*moves = append(*moves, board.NewMove(color, size-1))
	}
}
