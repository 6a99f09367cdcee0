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

// TaskExploreExpression fires every not-yet-applied transformation rule
// whose pattern matches Expr, growing the logical search space reachable
// from it, and recurses exploration down into every child group so that
// logical exploration runs independently of implementation-driven
// optimization rather than only happening as a byproduct of some ancestor
// reaching TaskOptimizeInputs. It does not apply implementation rules --
// that is TaskOptimizeExpression's job, since implementation only matters
// relative to a required physical Signature.
type TaskExploreExpression[T node.Type] struct {
	Group  GroupId
	Expr   ExprId
	Parent TaskId
}

func (t *TaskExploreExpression[T]) Kind() string { return "ExploreExpression" }

func (t *TaskExploreExpression[T]) TraceInfo() (TaskId, GroupId, ExprId) {
	return t.Parent, t.Group, t.Expr
}

func (t *TaskExploreExpression[T]) Execute(ctx context.Context, o *Optimizer[T]) error {
	e := o.memo.ExprById(t.Expr)
	transforms, _ := o.rules.MatchingRules(e.Typ, len(e.Children))
	for _, r := range transforms {
		if o.memo.RuleApplied(t.Expr, r.Id()) {
			continue
		}
		o.push(&TaskApplyRule[T]{Group: t.Group, Expr: t.Expr, Rule: r, Parent: 0})
	}

	for _, childGroup := range e.Children {
		if o.memo.GroupById(childGroup).Explored {
			continue
		}
		o.push(&TaskExploreGroup[T]{Group: childGroup, Parent: 0})
	}
	return nil
}
