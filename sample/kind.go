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

// Package sample is a toy relational plan vocabulary used to exercise
// package cascade end to end: a handful of logical/physical node kinds, one
// row-count cost model, and the rule set needed to reproduce the classic
// Cascades rewrites (join commutativity/associativity, limit elimination,
// projection merge, duplicate sort-key elimination, enforcer insertion).
package sample

import "fmt"

// Kind is the closed node-kind enum shared by relational (plan) nodes and
// scalar (predicate) nodes in this sample vocabulary.
type Kind int

const (
	// Logical relational kinds.
	KindScan Kind = iota
	KindFilter
	KindProjection
	KindJoin
	KindSort
	KindLimit
	KindEmptyRelation
	KindValues

	// Physical relational kinds.
	KindPhysicalScan
	KindPhysicalFilter
	KindPhysicalProjection
	KindPhysicalHashJoin
	KindPhysicalSort
	KindPhysicalLimit
	KindPhysicalEmptyRelation

	// Scalar/predicate kinds.
	KindColumnRef
	KindConstant
	KindBinOp
	KindLogOp
	KindUnOp
	KindFunc
	KindBetween
	KindLike
	KindInList
	KindCast
	KindDataType
	KindSortOrder
	KindList
	KindSubquery
)

var kindNames = map[Kind]string{
	KindScan:                  "Scan",
	KindFilter:                "Filter",
	KindProjection:            "Projection",
	KindJoin:                  "Join",
	KindSort:                  "Sort",
	KindLimit:                 "Limit",
	KindEmptyRelation:         "EmptyRelation",
	KindValues:                "Values",
	KindPhysicalScan:          "PhysicalScan",
	KindPhysicalFilter:        "PhysicalFilter",
	KindPhysicalProjection:    "PhysicalProjection",
	KindPhysicalHashJoin:      "PhysicalHashJoin",
	KindPhysicalSort:          "PhysicalSort",
	KindPhysicalLimit:         "PhysicalLimit",
	KindPhysicalEmptyRelation: "PhysicalEmptyRelation",
	KindColumnRef:             "ColumnRef",
	KindConstant:              "Constant",
	KindBinOp:                 "BinOp",
	KindLogOp:                 "LogOp",
	KindUnOp:                  "UnOp",
	KindFunc:                  "Func",
	KindBetween:               "Between",
	KindLike:                  "Like",
	KindInList:                "InList",
	KindCast:                  "Cast",
	KindDataType:              "DataType",
	KindSortOrder:             "SortOrder",
	KindList:                  "List",
	KindSubquery:              "Subquery",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// logicalKinds is the set of relational node kinds still subject to
// transformation rules; every physical kind and every scalar/predicate kind
// is not logical.
var logicalKinds = map[Kind]bool{
	KindScan:          true,
	KindFilter:        true,
	KindProjection:    true,
	KindJoin:          true,
	KindSort:          true,
	KindLimit:         true,
	KindEmptyRelation: true,
	KindValues:        true,
}

// IsLogical implements node.Type.
func (k Kind) IsLogical() bool { return logicalKinds[k] }

// Discriminant implements node.Type; it is simply the Kind's own ordinal,
// since this vocabulary is small enough not to need a coarser grouping.
func (k Kind) Discriminant() int { return int(k) }
