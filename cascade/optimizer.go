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

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cascadesql/cascadesql/node"
)

// Optimizer drives a single Cascades search over a Memo using a RuleSet and
// a CostModel. It holds no global mutable state beyond the memo and the
// scheduler's own task stack -- two Optimizer values never share state, and
// a single Optimizer is not safe for concurrent use, matching spec.md's
// concurrency model (single-threaded, cooperative).
type Optimizer[T node.Type] struct {
	memo  *Memo[T]
	rules *RuleSet[T]
	cost  CostModel[T]
	cfg   Config
	log   *logrus.Logger

	stack              []Task[T]
	taskCounter        TaskId
	appliedRuleCount   int
	exploredGroupCount int
}

// NewOptimizer constructs an Optimizer over a fresh memo. logicalProps and
// physicalProps register the logical/physical property builders the memo
// derives; their slice order is the order Signature vectors and derived
// property slices are indexed by.
func NewOptimizer[T node.Type](
	rules *RuleSet[T],
	cost CostModel[T],
	logicalProps []LogicalPropertyBuilder[T],
	physicalProps []PhysicalPropertyBuilder[T],
	cfg Config,
	log *logrus.Logger,
) *Optimizer[T] {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Optimizer[T]{
		memo:  NewMemo[T](logicalProps, physicalProps),
		rules: rules,
		cost:  cost,
		cfg:   cfg,
		log:   log,
	}
}

// Memo exposes the underlying memo table, e.g. for callers that want to
// inspect the final search space or snapshot it via cascade/persist.
func (o *Optimizer[T]) Memo() *Memo[T] {
	return o.memo
}

// Optimize memoizes root, runs the Cascades search to find its cheapest
// physical realization under required, and materializes that realization as
// a concrete plan tree. It is the single external entry point described in
// spec.md section 7. costLimit bounds the search the way CostLimit bounds an
// individual task: nil means unbounded, and a non-nil limit that no
// alternative can beat -- the degenerate costLimit == 0 case included --
// surfaces as ErrNoPlan once the search drains rather than any cheaper
// substitute.
func (o *Optimizer[T]) Optimize(ctx context.Context, root *Rel[T], required RequiredProperties, costLimit *Cost) (*Rel[T], error) {
	if root == nil {
		return nil, ErrInput.New("root expression is nil")
	}
	if len(required) != len(o.memo.physicalProps) {
		return nil, ErrInput.New("required properties length does not match registered physical property builders")
	}

	group := o.memo.AddNewExpr(root)
	o.memo.UpdateGroupInfo(group)

	o.push(&TaskOptimizeGroup[T]{Group: group, Required: required, CostLimit: costLimit})
	runErr := o.run(ctx)
	if runErr != nil && !ErrBudgetExhausted.Is(runErr) {
		return nil, runErr
	}

	key := SignatureKey(required)
	winner, ok := o.memo.Winner(group, key)
	if !ok {
		if runErr != nil {
			return nil, runErr
		}
		return nil, ErrNoPlan.New(group, required)
	}
	return o.materialize(group, winner), nil
}

// materialize walks a winning expression back into a concrete Rel tree by
// recursively following each child group's winner under the required
// Signature key recorded on the parent's Winner at the time it won.
func (o *Optimizer[T]) materialize(group GroupId, winner *Winner[T]) *Rel[T] {
	e := o.memo.ExprById(winner.ExprId)
	children := make([]*Rel[T], len(e.Children))
	for i, cg := range e.Children {
		var childKey uint64
		if i < len(winner.ChildKeys) {
			childKey = winner.ChildKeys[i]
		}
		w, ok := o.memo.Winner(cg, childKey)
		if !ok {
			children[i] = GroupRefRel[T](cg)
			continue
		}
		children[i] = o.materialize(cg, w)
	}
	preds := make([]*PredTree[T], len(e.Preds))
	for i, p := range e.Preds {
		preds[i] = o.materializePred(p)
	}
	return NewRelWithData(e.Typ, children, preds, e.Data)
}

func (o *Optimizer[T]) materializePred(id PredId) *PredTree[T] {
	p := o.memo.PredById(id)
	children := make([]*PredTree[T], len(p.Children))
	for i, c := range p.Children {
		children[i] = o.materializePred(c)
	}
	return NewPred(p.Typ, children, p.Data)
}
