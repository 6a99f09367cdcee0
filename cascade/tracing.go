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

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// beginTask starts a tracing span for a scheduled task when tracing is
// enabled, and always emits a trace-level log line with the task's identity
// -- the begin half of the begin/end events spec.md's search driver section
// calls for. The returned finish func must be called when the task's
// Execute returns.
func (o *Optimizer[T]) beginTask(ctx context.Context, kind string, id, parent TaskId, group GroupId, expr ExprId) (context.Context, func()) {
	o.log.WithFields(logrus.Fields{
		"task_id":        id,
		"parent_task_id": parent,
		"task_kind":      kind,
		"group_id":       group,
		"expr_id":        expr,
		"event":          "task_begin",
	}).Trace("task begin")

	if !o.cfg.EnableTracing {
		return ctx, func() {}
	}
	span, spanCtx := opentracing.StartSpanFromContext(ctx, kind)
	span.SetTag("task_id", id)
	span.SetTag("parent_task_id", parent)
	span.SetTag("group_id", uint32(group))
	span.SetTag("expr_id", uint32(expr))
	return spanCtx, func() {
		span.Finish()
		o.log.WithFields(logrus.Fields{
			"task_id":   id,
			"task_kind": kind,
			"event":     "task_end",
		}).Trace("task end")
	}
}
