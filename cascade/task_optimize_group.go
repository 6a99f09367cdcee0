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

	"github.com/cascadesql/cascadesql/node"
)

// TaskOptimizeGroup is the entry point for finding Group's cheapest physical
// expression under Required: it schedules exploration of the group and asks
// every current member expression to optimize itself under the same
// requirement. The member tasks are pushed after the ExploreGroup task, so
// they run before it. CostLimit, when non-nil, is a branch-and-bound upper bound:
// any candidate already known to cost more is abandoned without further
// work, unless the optimizer's config disables pruning.
type TaskOptimizeGroup[T node.Type] struct {
	Group     GroupId
	Required  RequiredProperties
	CostLimit *Cost
	Parent    TaskId
}

func (t *TaskOptimizeGroup[T]) Kind() string { return "OptimizeGroup" }

func (t *TaskOptimizeGroup[T]) TraceInfo() (TaskId, GroupId, ExprId) {
	return t.Parent, t.Group, 0
}

func (t *TaskOptimizeGroup[T]) Execute(ctx context.Context, o *Optimizer[T]) error {
	key := SignatureKey(t.Required)
	if _, ok := o.memo.Winner(t.Group, key); ok && !o.cfg.DisablePruning {
		return nil
	}

	o.push(&TaskExploreGroup[T]{Group: t.Group})

	grp := o.memo.GroupById(t.Group)
	for _, exprId := range grp.Exprs {
		o.push(&TaskOptimizeExpression[T]{
			Group:     t.Group,
			Expr:      exprId,
			Required:  t.Required,
			CostLimit: t.CostLimit,
		})
	}
	return nil
}
