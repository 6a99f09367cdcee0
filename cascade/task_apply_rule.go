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

// TaskApplyRule binds Rule's pattern against Expr, runs the rule body, and
// memoizes whatever alternative(s) it produces back into Group. Required
// and CostLimit are nil when the firing came from pure exploration (no
// optimization context yet); when set, newly created physical alternatives
// are immediately scheduled for costing.
type TaskApplyRule[T node.Type] struct {
	Group     GroupId
	Expr      ExprId
	Rule      Rule[T]
	Required  RequiredProperties
	CostLimit *Cost
	Parent    TaskId
}

func (t *TaskApplyRule[T]) Kind() string { return "ApplyRule" }

func (t *TaskApplyRule[T]) TraceInfo() (TaskId, GroupId, ExprId) {
	return t.Parent, t.Group, t.Expr
}

func (t *TaskApplyRule[T]) Execute(ctx context.Context, o *Optimizer[T]) error {
	if o.memo.RuleApplied(t.Expr, t.Rule.Id()) {
		return nil
	}

	bindings := o.bindExpr(t.Expr, t.Rule.Pattern())
	if len(bindings) == 0 {
		// No child member satisfies the pattern. The rule is still marked
		// applied, so it is not retried on this expression even if a child
		// group later gains a matching member.
		o.memo.MarkRuleApplied(t.Expr, t.Rule.Id())
		return nil
	}
	o.memo.MarkRuleApplied(t.Expr, t.Rule.Id())

	for _, binding := range bindings {
		alts, err := t.Rule.Apply(binding)
		o.appliedRuleCount++
		if err != nil {
			o.log.WithFields(logrus.Fields{
				"rule":  t.Rule.Name(),
				"group": t.Group,
				"expr":  t.Expr,
			}).Warn("rule application failed")
			return err
		}

		for _, alt := range alts {
			newExprId, isNew := o.addAltToGroup(alt, t.Group)
			if !isNew {
				continue
			}
			altE := o.memo.ExprById(newExprId)
			if altE.Typ.IsLogical() {
				o.push(&TaskExploreExpression[T]{Group: t.Group, Expr: newExprId})
				if t.Required != nil {
					o.push(&TaskOptimizeExpression[T]{Group: t.Group, Expr: newExprId, Required: t.Required, CostLimit: t.CostLimit})
				}
			} else if t.Required != nil {
				o.push(&TaskOptimizeInputs[T]{Group: t.Group, Expr: newExprId, Required: t.Required, CostLimit: t.CostLimit})
			}
		}
	}
	return nil
}

// addAltToGroup interns a rule's output tree, recursively memoizing any
// freshly-introduced children, and adds its root as a member of group. When
// alt is itself an unexpanded group reference (a rule eliminated its bound
// node and handed back one of its own children's group verbatim), the two
// groups are unioned directly instead of being misread as a new node whose
// zero-value Typ and empty Children would corrupt the memo.
func (o *Optimizer[T]) addAltToGroup(alt *Rel[T], group GroupId) (ExprId, bool) {
	if alt.IsGroupRef {
		survivor := o.memo.UnionGroups(group, alt.GroupRef)
		o.memo.UpdateGroupInfo(survivor)
		return 0, false
	}

	children := make([]GroupId, len(alt.Children))
	for i, c := range alt.Children {
		children[i] = o.memo.AddNewExpr(c)
	}
	preds := make([]PredId, len(alt.Preds))
	for i, p := range alt.Preds {
		preds[i] = o.memo.AddNewPred(p)
	}
	id, isNew := o.memo.AddExprToGroup(&Expr[T]{Typ: alt.Typ, Children: children, Preds: preds, Data: alt.Data}, group)
	if isNew {
		o.memo.UpdateGroupInfo(o.memo.ExprGroup(id))
	}
	return id, isNew
}
