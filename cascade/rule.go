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

// Rule is a single transformation or implementation rule: a pattern plus a
// function producing zero or more alternative Rel trees equivalent to the
// binding it matched. A transformation rule maps logical to logical
// (exploring the search space); an implementation rule maps logical to
// physical (ending the search for that sub-shape).
type Rule[T node.Type] interface {
	// Id uniquely identifies the rule for the memo's rule-applied bitmap.
	Id() RuleId

	// Name is a human-readable identifier used in tracing and diagnostics.
	Name() string

	// Pattern is the matcher describing what this rule fires on.
	Pattern() Matcher[T]

	// IsImplementation reports whether this rule produces physical
	// (implementation) output rather than further logical alternatives.
	IsImplementation() bool

	// Apply runs the rule body against a materialized binding of Pattern
	// and returns the alternative(s) it produces. binding's shape mirrors
	// Pattern: Any/AnyMany leaves appear as group-ref Rel nodes.
	Apply(binding *Rel[T]) ([]*Rel[T], error)
}

// RuleSet is an ordered, queryable collection of rules, split by kind so the
// scheduler can ask for "transformation rules matching this node" and
// "implementation rules matching this node" separately per spec section 4.3.
type RuleSet[T node.Type] struct {
	rules []Rule[T]
}

// NewRuleSet builds a RuleSet from the given rules, assigning no implicit
// order guarantees beyond the order supplied.
func NewRuleSet[T node.Type](rules ...Rule[T]) *RuleSet[T] {
	return &RuleSet[T]{rules: rules}
}

// MatchingRules returns every rule in the set whose Pattern accepts the
// top-level shape of typ/arity, split by whether it's a transformation or an
// implementation rule.
func (rs *RuleSet[T]) MatchingRules(typ T, arity int) (transforms, impls []Rule[T]) {
	for _, r := range rs.rules {
		if !r.Pattern().matches(typ, arity) {
			continue
		}
		if r.IsImplementation() {
			impls = append(impls, r)
		} else {
			transforms = append(transforms, r)
		}
	}
	return transforms, impls
}
