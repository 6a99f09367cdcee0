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

package cascade

import "github.com/cascadesql/cascadesql/node"

// Rel is a materialized relational tree: the shape callers hand to
// AddNewExpr and rules hand back from Apply. Unlike a memoized Expr, a Rel's
// children are themselves Rel values, not GroupIds -- except where a child
// is an unexpanded group reference left behind by a pattern's Any leaf.
type Rel[T node.Type] struct {
	Typ      T
	Children []*Rel[T]
	Preds    []*PredTree[T]

	// Data carries an optional literal payload attached directly to the
	// node itself (a physical enforcer's target Signature, a scan's table
	// handle, ...) as opposed to Preds, which are themselves searchable
	// scalar subtrees.
	Data node.Value

	// IsGroupRef marks a leaf that stands in for "whatever the best/any
	// member of this group is" rather than a concrete node. Set by the
	// pattern matcher when an Any leaf matches without descending, and
	// consumed by AddExprToGroup when materializing a rule's output.
	IsGroupRef bool
	GroupRef   GroupId
}

// PredTree is the predicate-side analogue of Rel: a materialized scalar
// expression tree used for rule bindings and AddNewPred input.
type PredTree[T node.Type] struct {
	Typ      T
	Children []*PredTree[T]
	Data     node.Value

	IsPredRef bool
	PredRef   PredId
}

// NewRel builds a concrete (non-group-ref) relational node.
func NewRel[T node.Type](typ T, children []*Rel[T], preds []*PredTree[T]) *Rel[T] {
	return &Rel[T]{Typ: typ, Children: children, Preds: preds}
}

// NewRelWithData builds a concrete relational node carrying a node-level
// Data payload (used by physical enforcer nodes).
func NewRelWithData[T node.Type](typ T, children []*Rel[T], preds []*PredTree[T], data node.Value) *Rel[T] {
	return &Rel[T]{Typ: typ, Children: children, Preds: preds, Data: data}
}

// GroupRefRel builds a Rel that refers to an existing group without
// descending into it.
func GroupRefRel[T node.Type](g GroupId) *Rel[T] {
	return &Rel[T]{IsGroupRef: true, GroupRef: g}
}

// NewPred builds a concrete (non-pred-ref) predicate node.
func NewPred[T node.Type](typ T, children []*PredTree[T], data node.Value) *PredTree[T] {
	return &PredTree[T]{Typ: typ, Children: children, Data: data}
}
