// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package persist snapshots a finished cascade.Memo into a bolt database for
// offline inspection (an EXPLAIN-style dump of the search space a query
// landed in). It is a one-way writer: nothing in package cascade ever reads
// from it, and no in-progress search is ever backed by it -- the in-memory
// memo is always the authoritative state, matching spec.md section 6's
// "pluggable memo backend" carve-out.
package persist

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
	"github.com/pkg/errors"
)

var (
	bucketGroups  = []byte("groups")
	bucketExprs   = []byte("exprs")
	bucketPreds   = []byte("preds")
	bucketWinners = []byte("winners")
)

// GroupRecord is the JSON-serializable snapshot of one memo group.
type GroupRecord struct {
	Id       uint32   `json:"id"`
	ExprIds  []uint32 `json:"expr_ids"`
	Explored bool     `json:"explored"`
}

// ExprRecord is the JSON-serializable snapshot of one memoized expression.
type ExprRecord struct {
	Id       uint32   `json:"id"`
	Type     string   `json:"type"`
	Children []uint32 `json:"children"`
	Preds    []uint32 `json:"preds"`
}

// PredRecord is the JSON-serializable snapshot of one memoized predicate.
type PredRecord struct {
	Id       uint32   `json:"id"`
	Type     string   `json:"type"`
	Children []uint32 `json:"children"`
}

// WinnerRecord is the JSON-serializable snapshot of one group's winner
// under one required-signature key.
type WinnerRecord struct {
	GroupId uint32  `json:"group_id"`
	Key     uint64  `json:"key"`
	ExprId  uint32  `json:"expr_id"`
	Cost    float64 `json:"cost"`
}

// Writer snapshots memo contents into an open bolt database.
type Writer struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the bolt database at path for writing
// memo snapshots.
func Open(path string) (*Writer, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "opening memo snapshot database")
	}
	return &Writer{db: db}, nil
}

// Close closes the underlying bolt database.
func (w *Writer) Close() error {
	return w.db.Close()
}

// WriteGroup persists one group's snapshot under the given run id namespace.
func (w *Writer) WriteGroup(run string, rec GroupRecord) error {
	return w.put(run, bucketGroups, uint64(rec.Id), rec)
}

// WriteExpr persists one expression's snapshot.
func (w *Writer) WriteExpr(run string, rec ExprRecord) error {
	return w.put(run, bucketExprs, uint64(rec.Id), rec)
}

// WritePred persists one predicate's snapshot.
func (w *Writer) WritePred(run string, rec PredRecord) error {
	return w.put(run, bucketPreds, uint64(rec.Id), rec)
}

// WriteWinner persists one (group, required-signature-key) winner.
func (w *Writer) WriteWinner(run string, rec WinnerRecord) error {
	key := uint64(rec.GroupId)<<32 | uint64(uint32(rec.Key))
	return w.put(run, bucketWinners, key, rec)
}

func (w *Writer) put(run string, bucket []byte, id uint64, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling memo snapshot record")
	}
	return w.db.Update(func(tx *bolt.Tx) error {
		runBucket, err := tx.CreateBucketIfNotExists([]byte(run))
		if err != nil {
			return err
		}
		b, err := runBucket.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(fmt.Sprintf("%010d", id)), data)
	})
}
