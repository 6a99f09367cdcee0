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

// Task is one unit of scheduled search work. The scheduler is a single
// goroutine running a LIFO stack of tasks: a task that depends on work that
// hasn't happened yet pushes that dependency and a continuation of itself,
// then returns -- there is no blocking and no parallelism, only cooperative
// re-entry, the same coroutine-like "push self + dependents, exit" shape
// spec.md's design notes call for.
type Task[T node.Type] interface {
	Kind() string
	Execute(ctx context.Context, o *Optimizer[T]) error
}

// traceInfo is an optional Task extension that reports the identity fields
// attached to its begin/end tracing events. Tasks with no natural group/expr
// (none, currently) can skip it.
type traceInfo interface {
	TraceInfo() (parent TaskId, group GroupId, expr ExprId)
}

// push schedules t to run, most-recently-pushed-runs-first.
func (o *Optimizer[T]) push(t Task[T]) {
	o.stack = append(o.stack, t)
}

// nextTaskId allocates a TaskId for tracing; it has no bearing on search
// order.
func (o *Optimizer[T]) nextTaskId() TaskId {
	o.taskCounter++
	return o.taskCounter
}

// run drains the task stack until empty or a configured budget is
// exhausted. Each popped task may push zero or more follow-up tasks before
// returning.
func (o *Optimizer[T]) run(ctx context.Context) error {
	for len(o.stack) > 0 {
		if o.cfg.PartialExploreIter > 0 && o.appliedRuleCount >= o.cfg.PartialExploreIter {
			return ErrBudgetExhausted.New()
		}
		if o.cfg.PartialExploreSpace > 0 && o.exploredGroupCount >= o.cfg.PartialExploreSpace {
			return ErrBudgetExhausted.New()
		}

		t := o.stack[len(o.stack)-1]
		o.stack = o.stack[:len(o.stack)-1]

		var parent TaskId
		var group GroupId
		var expr ExprId
		if ti, ok := t.(traceInfo); ok {
			parent, group, expr = ti.TraceInfo()
		}

		id := o.nextTaskId()
		spanCtx, finish := o.beginTask(ctx, t.Kind(), id, parent, group, expr)
		err := t.Execute(spanCtx, o)
		finish()
		if err != nil {
			return err
		}
	}
	return nil
}
