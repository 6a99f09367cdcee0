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

// bindExpr materializes every Rel binding for exprId against m: concrete
// sub-matchers (Match/MatchDiscriminant) recurse into every matching member
// of the corresponding child group, enumerating the full cartesian product
// across children, while Any/AnyMany leaves bind as group references
// without descending. Returns no bindings if no member of some required
// child group satisfies its sub-matcher.
func (o *Optimizer[T]) bindExpr(exprId ExprId, m Matcher[T]) []*Rel[T] {
	e := o.memo.ExprById(exprId)
	if !m.matches(e.Typ, len(e.Children)) {
		return nil
	}

	preds := make([]*PredTree[T], len(e.Preds))
	for i, p := range e.Preds {
		preds[i] = o.materializePred(p)
	}

	childOptions := make([][]*Rel[T], len(e.Children))
	for i, childGroup := range e.Children {
		sub := subMatcher(m, i, len(e.Children))
		if sub.kind == matchAny || sub.kind == matchAnyMany {
			childOptions[i] = []*Rel[T]{GroupRefRel[T](childGroup)}
			continue
		}
		opts := o.bindAny(childGroup, sub)
		if len(opts) == 0 {
			return nil
		}
		childOptions[i] = opts
	}

	combos := [][]*Rel[T]{{}}
	for _, opts := range childOptions {
		next := make([][]*Rel[T], 0, len(combos)*len(opts))
		for _, combo := range combos {
			for _, opt := range opts {
				merged := make([]*Rel[T], len(combo)+1)
				copy(merged, combo)
				merged[len(combo)] = opt
				next = append(next, merged)
			}
		}
		combos = next
	}

	out := make([]*Rel[T], len(combos))
	for i, combo := range combos {
		out[i] = &Rel[T]{Typ: e.Typ, Children: combo, Preds: preds, Data: e.Data}
	}
	return out
}

// bindAny returns the bindings of every member of group whose top-level
// shape satisfies sub.
func (o *Optimizer[T]) bindAny(group GroupId, sub Matcher[T]) []*Rel[T] {
	grp := o.memo.GroupById(group)
	var out []*Rel[T]
	for _, candidate := range grp.Exprs {
		out = append(out, o.bindExpr(candidate, sub)...)
	}
	return out
}

// subMatcher returns the sub-matcher that applies to child position i out of
// n total children, accounting for a trailing AnyMany that absorbs every
// position from its own index onward.
func subMatcher[T node.Type](m Matcher[T], i, n int) Matcher[T] {
	if len(m.Children) == 0 {
		return Matcher[T]{kind: matchAny}
	}
	if i < len(m.Children)-1 || m.Children[len(m.Children)-1].kind != matchAnyMany {
		if i < len(m.Children) {
			return m.Children[i]
		}
		return Matcher[T]{kind: matchAny}
	}
	return m.Children[len(m.Children)-1]
}
