package board

import "fmt"

// Score is a territory score: the count of cells each side controls. Must
// satisfy Black+White <= board size.
type Score struct {
	Black, White int
}

// Minimax returns Black's score minus White's. Black maximizes; White
// minimizes.
func (s Score) Minimax() int {
	return s.Black - s.White
}

func (s Score) String() string {
	return fmt.Sprintf("{b=%v, w=%v}", s.Black, s.White)
}
