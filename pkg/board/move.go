package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Move represents a move: either a pass or placing a stone of Color at
// Position. Position is meaningless if IsPass. Color is the mover, not the
// side to play after the move.
type Move struct {
	Color    Cell // Black or White.
	Position int
	IsPass   bool
}

// NewMove returns a non-pass move.
func NewMove(color Cell, position int) Move {
	return Move{Color: color, Position: position}
}

// NewPass returns a pass move for the given color.
func NewPass(color Cell) Move {
	return Move{Color: color, IsPass: true}
}

// ParseMove parses a move in "{color}{position}" notation, such as "b3" or
// "W12". Position is a 1-based integer; internally positions are 0-based.
func ParseMove(str string) (Move, error) {
	if len(str) < 2 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	color, ok := ParseCell(rune(str[0]))
	if !ok {
		return Move{}, fmt.Errorf("invalid color: %q", str)
	}

	rest := strings.ToLower(strings.TrimSpace(str[1:]))
	if rest == "pass" {
		return NewPass(color), nil
	}

	pos, err := strconv.Atoi(rest)
	if err != nil || pos < 1 {
		return Move{}, fmt.Errorf("invalid position: %q", str)
	}
	return NewMove(color, pos-1), nil
}

// Equals compares two moves for equality, ignoring the mover's color: two
// passes are equal, and two non-pass moves are equal iff their positions are.
func (m Move) Equals(o Move) bool {
	if m.IsPass || o.IsPass {
		return m.IsPass == o.IsPass
	}
	return m.Position == o.Position
}

func (m Move) String() string {
	if m.IsPass {
		return fmt.Sprintf("%vpass", m.Color)
	}
	return fmt.Sprintf("%v%v", m.Color, m.Position+1)
}

// FormatMoves renders a move list as a space-separated string.
func FormatMoves(moves []Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
