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

// Matcher describes the shape a rule's left-hand side expects to find
// rooted at a single m-expression. It mirrors a small pattern algebra: match
// an exact node type and recurse into named children, match any node whose
// Discriminant agrees without checking its exact type, or match absolutely
// anything without descending (binding the whole subtree as a group
// reference).
type Matcher[T node.Type] struct {
	kind matcherKind
	// Typ is used when kind == matchExact.
	Typ T
	// discriminant is used when kind == matchDiscriminant.
	discriminant int
	// Children is the list of sub-matchers for this node's children. A
	// single trailing AnyMany matcher consumes all remaining children.
	Children []Matcher[T]
}

type matcherKind int

const (
	matchExact matcherKind = iota
	matchDiscriminant
	matchAny
	matchAnyMany
)

// Match builds a matcher requiring an exact node type with the given
// children sub-matchers.
func Match[T node.Type](typ T, children ...Matcher[T]) Matcher[T] {
	return Matcher[T]{kind: matchExact, Typ: typ, Children: children}
}

// MatchDiscriminant builds a matcher requiring only that the node's
// Discriminant() equal d, regardless of its exact type -- useful for rules
// that apply uniformly across a family of node kinds (e.g. "any binary
// comparison operator").
func MatchDiscriminant[T node.Type](d int, children ...Matcher[T]) Matcher[T] {
	return Matcher[T]{kind: matchDiscriminant, discriminant: d, Children: children}
}

// Any matches a single child without descending into it: the child is bound
// as an unexpanded group reference rather than a materialized subtree.
func Any[T node.Type]() Matcher[T] {
	return Matcher[T]{kind: matchAny}
}

// AnyMany matches every remaining child without descending, each bound as a
// group reference. Only valid as the last entry in a Children list.
func AnyMany[T node.Type]() Matcher[T] {
	return Matcher[T]{kind: matchAnyMany}
}

// matches reports whether m accepts the top-level shape of e (the node's
// type/discriminant and arity), without recursing -- recursion into child
// groups is the task scheduler's job, not the matcher's, since a child may
// live in a different group and need its own exploration.
func (m Matcher[T]) matches(typ T, arity int) bool {
	switch m.kind {
	case matchExact:
		if typ != m.Typ {
			return false
		}
	case matchDiscriminant:
		if typ.Discriminant() != m.discriminant {
			return false
		}
	case matchAny, matchAnyMany:
		return true
	}
	if len(m.Children) == 0 {
		return true
	}
	if last := m.Children[len(m.Children)-1]; last.kind == matchAnyMany {
		return arity >= len(m.Children)-1
	}
	return arity == len(m.Children)
}
