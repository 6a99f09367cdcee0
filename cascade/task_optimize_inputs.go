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

// TaskOptimizeInputs costs a single physical expression against Required.
// Phase 0 asks every registered physical property builder how the node's
// required Signature decomposes into a per-child required vector (the
// builder may offer more than one way: "ask every child for its own
// Default() and enforce here" always applies, and a node type a property
// passes through untouched may additionally offer "ask a child for
// Required directly"); the core tries every combination, each as its own
// phase-1 continuation. Phase 1 waits for its decomposition's child
// OptimizeGroup tasks to report winners, combines their costs with the
// node's own standalone cost, inserts a physical enforcer if the combined
// derived properties still do not satisfy Required, and records (or
// improves) Group's winner -- SetWinner keeps whichever decomposition
// attempt turns out cheapest.
//
// Phase 0 pushes the child OptimizeGroup tasks plus a re-entrant phase-1
// continuation of itself; phase 1 runs only after the stack has drained
// those children, per the task model's "push self + dependents, exit" shape.
type TaskOptimizeInputs[T node.Type] struct {
	Group     GroupId
	Expr      ExprId
	Required  RequiredProperties
	CostLimit *Cost
	Parent    TaskId

	phase     int
	childReq  []RequiredProperties
	childKeys []uint64
}

func (t *TaskOptimizeInputs[T]) Kind() string { return "OptimizeInputs" }

func (t *TaskOptimizeInputs[T]) TraceInfo() (TaskId, GroupId, ExprId) {
	return t.Parent, t.Group, t.Expr
}

func (t *TaskOptimizeInputs[T]) Execute(ctx context.Context, o *Optimizer[T]) error {
	if t.phase == 0 {
		return t.executePhase0(o)
	}
	return t.executePhase1(o)
}

func (t *TaskOptimizeInputs[T]) executePhase0(o *Optimizer[T]) error {
	e := o.memo.ExprById(t.Expr)

	for _, childReq := range decomposePhysicalProperties(o, e.Typ, len(e.Children), t.Required) {
		cont := &TaskOptimizeInputs[T]{
			Group:     t.Group,
			Expr:      t.Expr,
			Required:  t.Required,
			CostLimit: t.CostLimit,
			Parent:    t.Parent,
			phase:     1,
			childReq:  childReq,
			childKeys: make([]uint64, len(childReq)),
		}
		for i, req := range childReq {
			cont.childKeys[i] = SignatureKey(req)
		}

		o.push(cont)
		for i, childGroup := range e.Children {
			o.push(&TaskOptimizeGroup[T]{Group: childGroup, Required: childReq[i], CostLimit: t.CostLimit})
		}
	}
	return nil
}

// decomposePhysicalProperties combines every registered physical property
// builder's own Decompose candidates into full per-child RequiredProperties
// vectors: the cartesian product, across builders, of each builder's
// candidate per-child Signature assignments. Each returned []RequiredProperties
// is one decomposition attempt, indexed by child position.
func decomposePhysicalProperties[T node.Type](o *Optimizer[T], typ T, numChildren int, required RequiredProperties) [][]RequiredProperties {
	perBuilder := make([][][]Signature, len(o.memo.physicalProps))
	for i, b := range o.memo.physicalProps {
		perBuilder[i] = b.Decompose(typ, numChildren, required[i])
	}

	// selections ranges over the cartesian product of builder candidate
	// indices: one index per builder, picking which of that builder's
	// Decompose entries this attempt uses.
	selections := [][]int{{}}
	for _, candidates := range perBuilder {
		next := make([][]int, 0, len(selections)*len(candidates))
		for _, sel := range selections {
			for k := range candidates {
				merged := make([]int, len(sel)+1)
				copy(merged, sel)
				merged[len(sel)] = k
				next = append(next, merged)
			}
		}
		selections = next
	}

	out := make([][]RequiredProperties, 0, len(selections))
	for _, sel := range selections {
		decomp := make([]RequiredProperties, numChildren)
		for j := 0; j < numChildren; j++ {
			req := make(RequiredProperties, len(perBuilder))
			for i, k := range sel {
				req[i] = perBuilder[i][k][j]
			}
			decomp[j] = req
		}
		out = append(out, decomp)
	}
	return out
}

func (t *TaskOptimizeInputs[T]) executePhase1(o *Optimizer[T]) error {
	e := o.memo.ExprById(t.Expr)

	var statsOf func(w *Winner[T]) any
	statsOf = func(w *Winner[T]) any {
		we := o.memo.ExprById(w.ExprId)
		cs := make([]any, len(we.Children))
		for i, cg := range we.Children {
			if cw, ok := o.memo.Winner(cg, w.ChildKeys[i]); ok {
				cs[i] = statsOf(cw)
			}
		}
		return o.cost.Statistics(we.Typ, predValues(o, we.Preds), cs)
	}

	childStats := make([]any, len(e.Children))
	childWinners := make([]*Winner[T], len(e.Children))
	total := Cost{}
	for i, childGroup := range e.Children {
		w, ok := o.memo.Winner(childGroup, t.childKeys[i])
		if !ok {
			// No plan exists for this child under the properties we asked
			// for; this alternative cannot be completed.
			return nil
		}
		childWinners[i] = w
		total = total.Add(w.Cost)
		childStats[i] = statsOf(w)
	}

	ctxHook := &RelNodeContext{GroupId: t.Group, ExprId: t.Expr}
	own := o.cost.ComputeCost(e.Typ, predValues(o, e.Preds), childStats, ctxHook)
	total = total.Add(own)

	if !o.cfg.DisablePruning && t.CostLimit != nil && t.CostLimit.Less(total) {
		return nil
	}

	derived := make([]Signature, len(o.memo.physicalProps))
	for i, b := range o.memo.physicalProps {
		childSigs := make([]Signature, len(e.Children))
		for j, w := range childWinners {
			if i < len(w.Derived) {
				childSigs[j] = w.Derived[i]
			}
		}
		derived[i] = b.Derive(e.Typ, predValues(o, e.Preds), e.Data, childSigs)
	}

	// Register this un-enforced alternative as a candidate under the
	// "don't care" default signature too -- it trivially satisfies that,
	// and an enforcer built below needs a stable, non-circular winner key
	// to wrap rather than referencing its own about-to-be-written entry.
	defaultReq := make(RequiredProperties, len(o.memo.physicalProps))
	for i, b := range o.memo.physicalProps {
		defaultReq[i] = b.Default()
	}
	defaultKey := SignatureKey(defaultReq)
	unenforcedDerived := append([]Signature(nil), derived...)
	o.memo.SetWinner(t.Group, defaultKey, &Winner[T]{ExprId: t.Expr, Cost: total, ChildKeys: t.childKeys, Derived: unenforcedDerived})

	winExpr := t.Expr
	winChildKeys := t.childKeys

	for i, b := range o.memo.physicalProps {
		if b.Satisfies(derived[i], t.Required[i]) {
			continue
		}
		enfTyp, enfData := b.Enforce(t.Required[i])
		enfId, isNew := o.memo.AddExprToGroup(&Expr[T]{Typ: enfTyp, Children: []GroupId{t.Group}, Data: enfData}, t.Group)
		if isNew {
			o.memo.UpdateGroupInfo(o.memo.ExprGroup(enfId))
		}
		enforcerCost := o.cost.ComputeCost(enfTyp, nil, []any{o.cost.Statistics(e.Typ, predValues(o, e.Preds), childStats)}, ctxHook)
		total = total.Add(enforcerCost)
		winExpr = enfId
		winChildKeys = []uint64{defaultKey}
		derived[i] = t.Required[i]
	}

	key := SignatureKey(t.Required)
	o.memo.SetWinner(t.Group, key, &Winner[T]{ExprId: winExpr, Cost: total, ChildKeys: winChildKeys, Derived: derived})
	return nil
}

func predValues[T node.Type](o *Optimizer[T], preds []PredId) []node.Value {
	out := make([]node.Value, len(preds))
	for i, p := range preds {
		out[i] = o.memo.PredById(p).Data
	}
	return out
}
