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

// TaskExploreGroup ensures every logical member of Group has had a chance to
// fire its transformation rules at least once. It is idempotent: a group
// already marked explored is a no-op.
type TaskExploreGroup[T node.Type] struct {
	Group  GroupId
	Parent TaskId
}

func (t *TaskExploreGroup[T]) Kind() string { return "ExploreGroup" }

func (t *TaskExploreGroup[T]) TraceInfo() (TaskId, GroupId, ExprId) {
	return t.Parent, t.Group, 0
}

func (t *TaskExploreGroup[T]) Execute(ctx context.Context, o *Optimizer[T]) error {
	grp := o.memo.GroupById(t.Group)
	if grp.Explored {
		return nil
	}
	grp.Explored = true
	o.exploredGroupCount++

	for _, exprId := range grp.Exprs {
		e := o.memo.ExprById(exprId)
		if e.Typ.IsLogical() {
			o.push(&TaskExploreExpression[T]{Group: t.Group, Expr: exprId, Parent: 0})
		}
	}
	return nil
}
