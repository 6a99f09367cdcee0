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

// Package node defines the closed vocabulary of node kinds a cascade optimizer
// operates over. A single Type enum covers both relational (plan) nodes and
// scalar (predicate) nodes, mirroring a query engine whose expression and
// relational operators share one opcode space.
package node

import "fmt"

// Type is the constraint a caller's node-kind enum must satisfy to be used as
// the type parameter of the generic cascade core. One enum plays double duty
// for relational nodes (Join, Scan, Filter, ...) and scalar/predicate nodes
// (ColumnRef, BinOp, ...); IsLogical distinguishes logical operators (subject
// to transformation rules) from physical ones (already implementation-bound).
type Type interface {
	comparable
	fmt.Stringer

	// IsLogical reports whether this node kind participates in the logical
	// search space. Physical node kinds and all predicate/scalar kinds
	// return false.
	IsLogical() bool

	// Discriminant returns a small dense integer identifying this kind,
	// used by the pattern matcher's MatchDiscriminant leaf and by rule
	// dispatch tables that key off node shape rather than exact value.
	Discriminant() int
}

// Value holds a literal payload carried by a scalar node (a constant, a sort
// order marker, a data type marker, ...). It is untyped on purpose: the set
// of literal shapes is open-ended and host-specific, unlike the closed Type
// enum above.
type Value any
