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

// TaskOptimizeExpression routes a single member expression toward a costed
// plan under Required: a logical expression needs its implementation rules
// fired (each producing a physical alternative in the same group) and its
// transformation rules fired (growing the space further); a physical
// expression is ready to be costed directly via TaskOptimizeInputs.
type TaskOptimizeExpression[T node.Type] struct {
	Group     GroupId
	Expr      ExprId
	Required  RequiredProperties
	CostLimit *Cost
	Parent    TaskId
}

func (t *TaskOptimizeExpression[T]) Kind() string { return "OptimizeExpression" }

func (t *TaskOptimizeExpression[T]) TraceInfo() (TaskId, GroupId, ExprId) {
	return t.Parent, t.Group, t.Expr
}

func (t *TaskOptimizeExpression[T]) Execute(ctx context.Context, o *Optimizer[T]) error {
	e := o.memo.ExprById(t.Expr)

	if !e.Typ.IsLogical() {
		o.push(&TaskOptimizeInputs[T]{
			Group:     t.Group,
			Expr:      t.Expr,
			Required:  t.Required,
			CostLimit: t.CostLimit,
		})
		return nil
	}

	o.push(&TaskExploreExpression[T]{Group: t.Group, Expr: t.Expr})

	transforms, impls := o.rules.MatchingRules(e.Typ, len(e.Children))
	for _, r := range append(transforms, impls...) {
		if o.memo.RuleApplied(t.Expr, r.Id()) {
			continue
		}
		o.push(&TaskApplyRule[T]{
			Group:     t.Group,
			Expr:      t.Expr,
			Rule:      r,
			Required:  t.Required,
			CostLimit: t.CostLimit,
		})
	}
	return nil
}
