// Package store persists session history: the FEN at each ply of games a
// chessuci process has played. It is deliberately not a transposition table
// or opening book — nothing here is consulted by search or move generation,
// only written after the fact and read back for review.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Ply is one recorded position in a session, keyed by session ID and ply
// index so a session's history can be range-scanned in order.
type Ply struct {
	FEN       string    `json:"fen"`
	Move      string    `json:"move,omitempty"`
	Recorded  time.Time `json:"recorded"`
	PlyNumber int       `json:"ply_number"`
}

// Store wraps an embedded key-value database for session logs.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database's file handles.
func (s *Store) Close() error {
	return s.db.Close()
}

func plyKey(sessionID string, plyNumber int) []byte {
	return []byte(fmt.Sprintf("session/%s/%06d", sessionID, plyNumber))
}

// RecordPly appends one ply to a session's history, stamping it with the
// current time.
func (s *Store) RecordPly(sessionID string, p Ply) error {
	p.Recorded = time.Now()
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("store: marshaling ply: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(plyKey(sessionID, p.PlyNumber), data)
	})
}

// Session returns every recorded ply for sessionID, in ply order.
func (s *Store) Session(sessionID string) ([]Ply, error) {
	var plies []Ply
	prefix := []byte(fmt.Sprintf("session/%s/", sessionID))

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if err := item.Value(func(val []byte) error {
				var p Ply
				if err := json.Unmarshal(val, &p); err != nil {
					return err
				}
				plies = append(plies, p)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: reading session %s: %w", sessionID, err)
	}
	return plies, nil
}
