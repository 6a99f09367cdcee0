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

package sample

import (
	"fmt"

	"github.com/cascadesql/cascadesql/cascade"
	"github.com/cascadesql/cascadesql/cascade/persist"
)

// DumpMemo snapshots every group, expression, predicate, and winner an
// optimizer run produced into the bolt database at path, under the given run
// label -- an EXPLAIN-style record of the search space a query landed in,
// kept entirely outside the live search (nothing here feeds back into o).
func DumpMemo(o *cascade.Optimizer[Kind], run, path string) error {
	w, err := persist.Open(path)
	if err != nil {
		return err
	}
	defer w.Close()

	memo := o.Memo()

	for _, g := range memo.GroupIds() {
		grp := memo.GroupById(g)
		rec := persist.GroupRecord{Id: uint32(g), Explored: grp.Explored}
		for _, e := range grp.Exprs {
			rec.ExprIds = append(rec.ExprIds, uint32(e))
		}
		if err := w.WriteGroup(run, rec); err != nil {
			return err
		}
		for key, win := range grp.Winners {
			wr := persist.WinnerRecord{GroupId: uint32(g), Key: key, ExprId: uint32(win.ExprId), Cost: 0}
			if len(win.Cost.Values) > 0 {
				wr.Cost = win.Cost.Values[0]
			}
			if err := w.WriteWinner(run, wr); err != nil {
				return err
			}
		}
	}

	for _, id := range memo.ExprIds() {
		e := memo.ExprById(id)
		rec := persist.ExprRecord{Id: uint32(id), Type: fmt.Sprint(e.Typ)}
		for _, c := range e.Children {
			rec.Children = append(rec.Children, uint32(c))
		}
		for _, p := range e.Preds {
			rec.Preds = append(rec.Preds, uint32(p))
		}
		if err := w.WriteExpr(run, rec); err != nil {
			return err
		}
	}

	for _, id := range memo.PredIds() {
		p := memo.PredById(id)
		rec := persist.PredRecord{Id: uint32(id), Type: fmt.Sprint(p.Typ)}
		for _, c := range p.Children {
			rec.Children = append(rec.Children, uint32(c))
		}
		if err := w.WritePred(run, rec); err != nil {
			return err
		}
	}

	return nil
}
