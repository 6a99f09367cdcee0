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

// JoinType enumerates the join kinds a Join/PhysicalHashJoin node can carry
// as its Data payload.
type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
)

// BinOpType enumerates binary scalar operators a BinOp predicate carries.
type BinOpType int

const (
	BinOpEq BinOpType = iota
	BinOpNeq
	BinOpLt
	BinOpLte
	BinOpGt
	BinOpGte
	BinOpAdd
	BinOpSub
)

// LogOpType enumerates boolean connectives a LogOp predicate carries.
type LogOpType int

const (
	LogOpAnd LogOpType = iota
	LogOpOr
)

// UnOpType enumerates unary scalar operators a UnOp predicate carries.
type UnOpType int

const (
	UnOpNot UnOpType = iota
	UnOpNeg
)

// SortOrderType is ascending or descending for a single sort key.
type SortOrderType int

const (
	SortAsc SortOrderType = iota
	SortDesc
)

// ScanData is the node-level Data payload of a Scan/PhysicalScan node.
type ScanData struct {
	Table string
	Rows  float64
	Cols  int
}

// LimitData is the node-level Data payload of a Limit/PhysicalLimit node.
type LimitData struct {
	Fetch int64
	Skip  int64
}

// ColumnRefData is the Data payload of a ColumnRef predicate leaf.
type ColumnRefData struct {
	Index int
}

// ConstantData is the Data payload of a Constant predicate leaf.
type ConstantData struct {
	Value any
}

// SortKey is one entry of a Sort/PhysicalSort node's required ordering, and
// also the element type of the SortSignature physical property.
type SortKey struct {
	ColumnIndex int
	Order       SortOrderType
}

// SortSignature is the derived/required Signature value the
// SortPropertyBuilder produces and consumes: an ordered list of SortKeys, or
// nil/empty meaning "no particular order".
type SortSignature []SortKey
