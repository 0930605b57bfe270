package proofstore_test

import (
	"testing"

	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/proofstore"
	"github.com/herohde/lgo/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *proofstore.Store {
	t.Helper()
	s, err := proofstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestLookupMissOnEmptyStore(t *testing.T) {
	s := openStore(t)
	zt := board.NewZobristTable(0)
	st := board.NewState(zt, 3)

	_, _, ok := s.Lookup(st)
	assert.False(t, ok)
}

func TestRecordThenLookupRoundTrip(t *testing.T) {
	s := openStore(t)
	zt := board.NewZobristTable(0)
	st := board.NewState(zt, 3)
	st.Play(board.NewMove(board.Black, 0))

	want := search.Node{Minimax: 3, Type: search.PV, Exact: true}
	require.NoError(t, s.Record(st, want, 42))

	got, nodes, ok := s.Lookup(st)
	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, uint64(42), nodes)
}

func TestRecordNonExactIsNoOp(t *testing.T) {
	s := openStore(t)
	zt := board.NewZobristTable(0)
	st := board.NewState(zt, 3)

	require.NoError(t, s.Record(st, search.Node{Minimax: 3, Exact: false}, 1))

	_, _, ok := s.Lookup(st)
	assert.False(t, ok, "a non-exact value must never be persisted")
}

func TestLookupDistinguishesPositionsBySameSizeDifferentCells(t *testing.T) {
	s := openStore(t)
	zt := board.NewZobristTable(0)

	a := board.NewState(zt, 3)
	a.Play(board.NewMove(board.Black, 0))

	b := board.NewState(zt, 3)
	b.Play(board.NewMove(board.Black, 1))

	require.NoError(t, s.Record(a, search.Node{Minimax: 1, Exact: true}, 1))

	_, _, ok := s.Lookup(b)
	assert.False(t, ok, "a differently-played position must not collide")

	got, _, ok := s.Lookup(a)
	assert.True(t, ok)
	assert.Equal(t, 1, got.Minimax)
}

func TestCloseIsIdempotentOnNilDB(t *testing.T) {
	assert.NoError(t, (&proofstore.Store{}).Close())
}
