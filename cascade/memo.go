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
	"reflect"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/cascadesql/cascadesql/node"
)

// Expr is a single memoized m-expression: a node whose children reference
// other memo groups rather than materialized subtrees.
type Expr[T node.Type] struct {
	Typ      T
	Children []GroupId
	Preds    []PredId
	Data     node.Value
}

// Pred is a single memoized predicate node. Predicates are interned like
// expressions but are never themselves searched over -- no rule rewrites a
// predicate into alternatives, so a PredId denotes one fixed tree, not a
// group of equivalent ones.
type Pred[T node.Type] struct {
	Typ      T
	Children []PredId
	Data     node.Value
}

// Winner records the best known physical expression for a group under one
// required Signature, discovered by OptimizeGroup/OptimizeInputs.
type Winner[T node.Type] struct {
	ExprId ExprId
	Cost   Cost

	// ChildKeys records, for each child of ExprId in order, which required
	// Signature key that child was costed and won under -- needed to walk
	// the winning expression back into a concrete plan, since the same
	// child group may hold different winners under different required
	// properties.
	ChildKeys []uint64

	// Derived holds, one entry per registered PhysicalPropertyBuilder, the
	// property value this winning plan actually produces -- needed by the
	// parent node's own OptimizeInputs to derive its own properties
	// bottom-up without re-walking the whole subtree.
	Derived []Signature
}

// Group is one equivalence class of logically-equivalent m-expressions.
type Group[T node.Type] struct {
	Id       GroupId
	Exprs    []ExprId
	Props    []any
	Winners  map[uint64]*Winner[T]
	Explored bool
}

// Memo is the interning table at the heart of the optimizer: it deduplicates
// structurally-identical expressions and predicates, tracks which group each
// expression belongs to, merges groups proven equivalent, and remembers
// which rule has already fired on which expression.
type Memo[T node.Type] struct {
	logicalProps  []LogicalPropertyBuilder[T]
	physicalProps []PhysicalPropertyBuilder[T]

	groups map[GroupId]*Group[T]
	exprs  map[ExprId]*Expr[T]
	preds  map[PredId]*Pred[T]

	exprIndex map[uint64][]ExprId
	predIndex map[uint64][]PredId
	exprGroup map[ExprId]GroupId

	ruleApplied map[ExprId]map[RuleId]bool

	uf *disjointSet

	nextGroup GroupId
	nextExpr  ExprId
	nextPred  PredId
}

// NewMemo constructs an empty memo registered with the given logical and
// physical property builders, in the order required Signatures and derived
// property slices are indexed by.
func NewMemo[T node.Type](logicalProps []LogicalPropertyBuilder[T], physicalProps []PhysicalPropertyBuilder[T]) *Memo[T] {
	return &Memo[T]{
		logicalProps:  logicalProps,
		physicalProps: physicalProps,
		groups:        make(map[GroupId]*Group[T]),
		exprs:         make(map[ExprId]*Expr[T]),
		preds:         make(map[PredId]*Pred[T]),
		exprIndex:     make(map[uint64][]ExprId),
		predIndex:     make(map[uint64][]PredId),
		exprGroup:     make(map[ExprId]GroupId),
		ruleApplied:   make(map[ExprId]map[RuleId]bool),
		uf:            newDisjointSet(),
	}
}

type exprKey[T node.Type] struct {
	Typ      T
	Children []GroupId
	Preds    []PredId
	Data     node.Value
}

type predKey[T node.Type] struct {
	Typ      T
	Children []PredId
	Data     node.Value
}

func (m *Memo[T]) hashExpr(typ T, children []GroupId, preds []PredId, data node.Value) uint64 {
	resolved := make([]GroupId, len(children))
	for i, c := range children {
		resolved[i] = m.uf.find(c)
	}
	h, _ := hashstructure.Hash(exprKey[T]{Typ: typ, Children: resolved, Preds: preds, Data: data}, hashstructure.FormatV2, nil)
	return h
}

func (m *Memo[T]) hashPred(typ T, children []PredId, data node.Value) uint64 {
	h, _ := hashstructure.Hash(predKey[T]{Typ: typ, Children: children, Data: data}, hashstructure.FormatV2, nil)
	return h
}

// NewGroup allocates a fresh, empty group and registers it with the
// union-find so it can later be merged with another group.
func (m *Memo[T]) NewGroup() GroupId {
	m.nextGroup++
	g := m.nextGroup
	m.uf.add(g)
	m.groups[g] = &Group[T]{Id: g, Winners: make(map[uint64]*Winner[T])}
	return g
}

// GroupById resolves g to its union-find representative and returns that
// representative's Group.
func (m *Memo[T]) GroupById(g GroupId) *Group[T] {
	return m.groups[m.uf.find(g)]
}

// ExprById returns the memoized m-expression for id.
func (m *Memo[T]) ExprById(id ExprId) *Expr[T] {
	return m.exprs[id]
}

// PredById returns the memoized predicate node for id.
func (m *Memo[T]) PredById(id PredId) *Pred[T] {
	return m.preds[id]
}

// ExprGroup returns the (representative) group an expression belongs to.
func (m *Memo[T]) ExprGroup(id ExprId) GroupId {
	return m.uf.find(m.exprGroup[id])
}

// AddNewPred interns a materialized predicate tree, recursively interning
// its children first, and returns the PredId for the whole tree.
func (m *Memo[T]) AddNewPred(p *PredTree[T]) PredId {
	if p.IsPredRef {
		return p.PredRef
	}
	children := make([]PredId, len(p.Children))
	for i, c := range p.Children {
		children[i] = m.AddNewPred(c)
	}
	key := m.hashPred(p.Typ, children, p.Data)
	for _, cand := range m.predIndex[key] {
		ce := m.preds[cand]
		if predEqual(ce, p.Typ, children, p.Data) {
			return cand
		}
	}
	m.nextPred++
	id := m.nextPred
	m.preds[id] = &Pred[T]{Typ: p.Typ, Children: children, Data: p.Data}
	m.predIndex[key] = append(m.predIndex[key], id)
	return id
}

func predEqual[T node.Type](e *Pred[T], typ T, children []PredId, data node.Value) bool {
	if e.Typ != typ || len(e.Children) != len(children) {
		return false
	}
	for i := range children {
		if e.Children[i] != children[i] {
			return false
		}
	}
	return e.Data == data
}

// AddNewExpr interns a materialized relational tree bottom-up: every
// concrete child is recursively added to its own new group (unless it is
// already a group reference), then the root is added to a fresh group.
// Returns the GroupId of the root.
func (m *Memo[T]) AddNewExpr(rel *Rel[T]) GroupId {
	if rel.IsGroupRef {
		return m.uf.find(rel.GroupRef)
	}
	children := make([]GroupId, len(rel.Children))
	for i, c := range rel.Children {
		children[i] = m.AddNewExpr(c)
	}
	preds := make([]PredId, len(rel.Preds))
	for i, p := range rel.Preds {
		preds[i] = m.AddNewPred(p)
	}
	g := m.NewGroup()
	m.AddExprToGroup(&Expr[T]{Typ: rel.Typ, Children: children, Preds: preds, Data: rel.Data}, g)
	m.UpdateGroupInfo(g)
	return m.uf.find(g)
}

// AddExprToGroup interns e, adding it as a member of group g. If a
// structurally identical expression already exists in a different group,
// the two groups are merged via union-find and the merged representative's
// existing ExprId is returned. Returns the ExprId and whether it is newly
// created (false means it was already memoized, possibly in g, possibly in
// a group now merged into g).
func (m *Memo[T]) AddExprToGroup(e *Expr[T], g GroupId) (ExprId, bool) {
	g = m.uf.find(g)
	key := m.hashExpr(e.Typ, e.Children, e.Preds, e.Data)
	for _, cand := range m.exprIndex[key] {
		ce := m.exprs[cand]
		if !exprEqual(ce, e.Typ, e.Children, e.Preds, e.Data, m.uf) {
			continue
		}
		existingGroup := m.uf.find(m.exprGroup[cand])
		if existingGroup != g {
			merged := m.uf.union(existingGroup, g)
			m.mergeGroups(merged, existingGroup, g)
		}
		return cand, false
	}
	m.nextExpr++
	id := m.nextExpr
	resolved := make([]GroupId, len(e.Children))
	for i, c := range e.Children {
		resolved[i] = m.uf.find(c)
	}
	m.exprs[id] = &Expr[T]{Typ: e.Typ, Children: resolved, Preds: e.Preds, Data: e.Data}
	m.exprIndex[key] = append(m.exprIndex[key], id)
	m.exprGroup[id] = g
	grp := m.groups[g]
	grp.Exprs = append(grp.Exprs, id)
	grp.Explored = false
	return id, true
}

func exprEqual[T node.Type](e *Expr[T], typ T, children []GroupId, preds []PredId, data node.Value, uf *disjointSet) bool {
	if e.Typ != typ || len(e.Children) != len(children) || len(e.Preds) != len(preds) {
		return false
	}
	for i := range children {
		if e.Children[i] != uf.find(children[i]) {
			return false
		}
	}
	for i := range preds {
		if e.Preds[i] != preds[i] {
			return false
		}
	}
	return reflect.DeepEqual(e.Data, data)
}

// mergeGroups folds the members and winners of the losing side of a union
// into the surviving representative group and tags every member expression
// with its new group.
func (m *Memo[T]) mergeGroups(survivor GroupId, sides ...GroupId) {
	survivorGrp := m.groups[survivor]
	seen := make(map[ExprId]bool, len(survivorGrp.Exprs))
	for _, id := range survivorGrp.Exprs {
		seen[id] = true
	}
	for _, side := range sides {
		if side == survivor {
			continue
		}
		losing := m.groups[side]
		if losing == nil {
			continue
		}
		for _, id := range losing.Exprs {
			m.exprGroup[id] = survivor
			if !seen[id] {
				survivorGrp.Exprs = append(survivorGrp.Exprs, id)
				seen[id] = true
			}
		}
		for k, w := range losing.Winners {
			if cur, ok := survivorGrp.Winners[k]; !ok || w.Cost.Less(cur.Cost) {
				survivorGrp.Winners[k] = w
			}
		}
		survivorGrp.Explored = survivorGrp.Explored || losing.Explored
		if survivorGrp.Props == nil {
			survivorGrp.Props = losing.Props
		}
	}
}

// UnionGroups merges two groups a rule has proven equivalent without going
// through AddExprToGroup's structural-collision path -- used when a rule
// eliminates a node entirely and returns one of its own children's group
// verbatim (e.g. dropping a no-op Limit), rather than producing a new
// concrete alternative.
func (m *Memo[T]) UnionGroups(a, b GroupId) GroupId {
	a, b = m.uf.find(a), m.uf.find(b)
	if a == b {
		return a
	}
	merged := m.uf.union(a, b)
	m.mergeGroups(merged, a, b)
	return merged
}

// RuleApplied reports whether rule r has already fired on expression e,
// implementing the RuleApplication bitmap from the data model: the search
// never re-fires a rule on the same expression.
func (m *Memo[T]) RuleApplied(e ExprId, r RuleId) bool {
	return m.ruleApplied[e][r]
}

// MarkRuleApplied records that rule r has fired on expression e.
func (m *Memo[T]) MarkRuleApplied(e ExprId, r RuleId) {
	set, ok := m.ruleApplied[e]
	if !ok {
		set = make(map[RuleId]bool)
		m.ruleApplied[e] = set
	}
	set[r] = true
}

// UpdateGroupInfo (re)computes every registered logical property for group
// g from its first member expression's type/preds and its children's
// already-derived properties. Called after a group gains a new member or is
// merged by UnionGroups; a merge through AddExprToGroup keeps the surviving
// group's existing properties.
func (m *Memo[T]) UpdateGroupInfo(g GroupId) {
	grp := m.GroupById(g)
	if len(grp.Exprs) == 0 || len(m.logicalProps) == 0 {
		return
	}
	e := m.exprs[grp.Exprs[0]]
	props := make([]any, len(m.logicalProps))
	for i, b := range m.logicalProps {
		childVals := make([]any, len(e.Children))
		for j, c := range e.Children {
			cg := m.GroupById(c)
			if i < len(cg.Props) {
				childVals[j] = cg.Props[i]
			}
		}
		preds := make([]node.Value, len(e.Preds))
		for j, p := range e.Preds {
			preds[j] = m.preds[p].Data
		}
		props[i] = b.Derive(e.Typ, preds, e.Data, childVals)
	}
	grp.Props = props
}

// Winner looks up the best known physical expression for group g under the
// hashed required Signature key.
func (m *Memo[T]) Winner(g GroupId, key uint64) (*Winner[T], bool) {
	grp := m.GroupById(g)
	w, ok := grp.Winners[key]
	return w, ok
}

// SetWinner records w as the best known physical expression for g under
// key, replacing any existing winner only if w is strictly cheaper.
func (m *Memo[T]) SetWinner(g GroupId, key uint64, w *Winner[T]) {
	grp := m.GroupById(g)
	if cur, ok := grp.Winners[key]; ok && !w.Cost.Less(cur.Cost) {
		return
	}
	grp.Winners[key] = w
}

// GroupIds returns every live (non-merged-away) group id in the memo, in no
// particular order -- used by callers that want to walk the whole search
// space after a run, e.g. to snapshot it via cascade/persist.
func (m *Memo[T]) GroupIds() []GroupId {
	out := make([]GroupId, 0, len(m.groups))
	for g := range m.groups {
		if m.uf.find(g) == g {
			out = append(out, g)
		}
	}
	return out
}

// ExprIds returns every memoized expression id, including those whose owning
// group has since been merged into another.
func (m *Memo[T]) ExprIds() []ExprId {
	out := make([]ExprId, 0, len(m.exprs))
	for id := range m.exprs {
		out = append(out, id)
	}
	return out
}

// PredIds returns every memoized predicate id.
func (m *Memo[T]) PredIds() []PredId {
	out := make([]PredId, 0, len(m.preds))
	for id := range m.preds {
		out = append(out, id)
	}
	return out
}

// SignatureKey hashes a required Signature vector down to the uint64 key
// Group.Winners is indexed by.
func SignatureKey(sig RequiredProperties) uint64 {
	h, _ := hashstructure.Hash(sig, hashstructure.FormatV2, nil)
	return h
}
