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

package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func TestWriterPersistsGroupExprPredAndWinnerRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.db")
	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.WriteGroup("run1", GroupRecord{Id: 1, ExprIds: []uint32{1, 2}, Explored: true}))
	require.NoError(t, w.WriteExpr("run1", ExprRecord{Id: 1, Type: "Scan", Children: nil, Preds: nil}))
	require.NoError(t, w.WritePred("run1", PredRecord{Id: 1, Type: "ColumnRef"}))
	require.NoError(t, w.WriteWinner("run1", WinnerRecord{GroupId: 1, Key: 42, ExprId: 1, Cost: 1000}))

	require.NoError(t, w.db.View(func(tx *bolt.Tx) error {
		run := tx.Bucket([]byte("run1"))
		require.NotNil(t, run)
		require.NotNil(t, run.Bucket(bucketGroups).Get([]byte("0000000001")))
		require.NotNil(t, run.Bucket(bucketExprs).Get([]byte("0000000001")))
		require.NotNil(t, run.Bucket(bucketPreds).Get([]byte("0000000001")))
		return nil
	}))
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.db")
	w, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}
