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

import "github.com/cascadesql/cascadesql/cascade"

// Rel is this package's concrete instantiation of cascade.Rel.
type Rel = cascade.Rel[Kind]

// Pred is this package's concrete instantiation of cascade.PredTree.
type Pred = cascade.PredTree[Kind]

// NewScan builds a base table scan over a table with an estimated row count
// and column count, both carried as node-level Data. SchemaPropertyBuilder
// reads the column count back out; RowCountCostModel does not read the row
// count and estimates every scan at 1000 rows.
func NewScan(table string, rows float64, cols int) *Rel {
	return cascade.NewRelWithData[Kind](KindScan, nil, nil, ScanData{Table: table, Rows: rows, Cols: cols})
}

// NewFilter wraps child with a predicate.
func NewFilter(child *Rel, cond *Pred) *Rel {
	return cascade.NewRel[Kind](KindFilter, []*Rel{child}, []*Pred{cond})
}

// NewProjection wraps child with a projection list of scalar expressions.
func NewProjection(child *Rel, exprs ...*Pred) *Rel {
	return cascade.NewRel[Kind](KindProjection, []*Rel{child}, exprs)
}

// NewJoin builds a logical join of left and right under joinType, with cond
// as its join predicate.
func NewJoin(left, right *Rel, joinType JoinType, cond *Pred) *Rel {
	rel := cascade.NewRel[Kind](KindJoin, []*Rel{left, right}, []*Pred{cond})
	rel.Data = joinType
	return rel
}

// NewSort wraps child, requiring it be returned in the given key order.
func NewSort(child *Rel, keys ...SortKey) *Rel {
	rel := cascade.NewRel[Kind](KindSort, []*Rel{child}, nil)
	rel.Data = SortSignature(keys)
	return rel
}

// NewLimit wraps child, keeping at most fetch rows after skipping skip.
func NewLimit(child *Rel, fetch, skip int64) *Rel {
	return cascade.NewRelWithData[Kind](KindLimit, []*Rel{child}, nil, LimitData{Fetch: fetch, Skip: skip})
}

// NewEmptyRelation builds a zero-row relation with the given column count.
func NewEmptyRelation(cols int) *Rel {
	return cascade.NewRelWithData[Kind](KindEmptyRelation, nil, nil, ScanData{Cols: cols})
}

// ColumnRef builds a predicate leaf referencing the column at index.
func ColumnRef(index int) *Pred {
	return cascade.NewPred[Kind](KindColumnRef, nil, ColumnRefData{Index: index})
}

// Constant builds a predicate leaf carrying a literal value.
func Constant(v any) *Pred {
	return cascade.NewPred[Kind](KindConstant, nil, ConstantData{Value: v})
}

// BinOp builds a binary-operator predicate over left and right.
func BinOp(op BinOpType, left, right *Pred) *Pred {
	return cascade.NewPred[Kind](KindBinOp, []*Pred{left, right}, op)
}

// LogOp builds an AND/OR predicate over its operands.
func LogOp(op LogOpType, operands ...*Pred) *Pred {
	return cascade.NewPred[Kind](KindLogOp, operands, op)
}
