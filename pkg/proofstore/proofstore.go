// Package proofstore persists proven exact search results across process
// runs: a disk-backed sibling of the in-memory transposition table, not a
// replacement for it. A solver re-run against a position already proven in
// an earlier run (or a conjecture sweep repeating across many boards) reads
// the stored result instead of reproving it.
//
// Grounded on hailam-chessplay's internal/storage/storage.go (badger-as-
// JSON-KV pattern: DefaultOptions with logging disabled, a txn.Update/View
// per operation, json.Marshal'd values), repurposed from user
// preferences/stats to proven search.Node results keyed on full game
// identity rather than a handful of fixed string keys.
package proofstore

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/herohde/lgo/pkg/board"
	"github.com/herohde/lgo/pkg/search"
)

// Store wraps a badger database of proven positions.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) a proof store at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open proof store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// record is the on-disk form of a proven result: the Node plus the subtree
// work (node count) spent proving it, for parity with the transposition
// table's replacement policy should the two ever be reconciled.
type record struct {
	Node  search.Node
	Nodes uint64
}

// key identifies a position by its full game identity: board size, packed
// cells, the superko history digest, and the game/turn state. Unlike the
// transposition table's Zobrist-hash-indexed lookup (a fast, collision-prone
// approximation meant to be read every node), a proof store entry is
// written rarely and must never misidentify a position, so it is keyed
// directly on the identity fields rather than a hash of them.
func key(s *board.State) []byte {
	return []byte(fmt.Sprintf("%d:%d:%x:%d:%d",
		s.Size(), s.Board().Cells(), s.HistoryDigest(), s.GameState(), s.Turn()))
}

// Lookup returns the proven Node and node count for s, if previously
// recorded as exact.
func (s *Store) Lookup(st *board.State) (search.Node, uint64, bool) {
	var rec record
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(st))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil || !found {
		return search.Node{}, 0, false
	}
	return rec.Node, rec.Nodes, true
}

// Record stores value as the proven result for st, provided value.Exact is
// true. A non-exact (depth-cutoff) value is never persisted: the whole
// point of the store is results that never need reproving.
func (s *Store) Record(st *board.State, value search.Node, nodes uint64) error {
	if !value.Exact {
		return nil
	}

	data, err := json.Marshal(record{Node: value, Nodes: nodes})
	if err != nil {
		return fmt.Errorf("marshal proof record: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(st), data)
	})
}
