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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cascadesql/cascadesql/node"
)

// childCountProp is a trivial LogicalPropertyBuilder used only by this
// package's own tests: the derived value is simply how many children the
// node has, which is enough to exercise UpdateGroupInfo's wiring without
// needing a real schema/statistics model.
type childCountProp struct{}

func (childCountProp) Name() string { return "childCount" }

func (childCountProp) Derive(typ testKind, preds []node.Value, data node.Value, childProps []any) any {
	return len(childProps)
}

func newTestMemo() *Memo[testKind] {
	return NewMemo[testKind](
		[]LogicalPropertyBuilder[testKind]{childCountProp{}},
		nil,
	)
}

func TestAddNewExprInternsDuplicateShapesIntoOneGroup(t *testing.T) {
	m := newTestMemo()

	leafA := NewRel[testKind](testKindLeaf, nil, nil)
	leafB := NewRel[testKind](testKindLeaf, nil, nil)

	g1 := m.AddNewExpr(leafA)
	g2 := m.AddNewExpr(leafB)

	require.Equal(t, g1, g2, "structurally identical trees should land in the same merged group")
	require.Len(t, m.GroupById(g1).Exprs, 1)
}

func TestAddNewExprKeepsDistinctShapesApart(t *testing.T) {
	m := newTestMemo()

	leaf := NewRel[testKind](testKindLeaf, nil, nil)
	unary := NewRel[testKind](testKindUnary, []*Rel[testKind]{NewRel[testKind](testKindLeaf, nil, nil)}, nil)

	g1 := m.AddNewExpr(leaf)
	g2 := m.AddNewExpr(unary)

	require.NotEqual(t, g1, g2)
}

func TestAddExprToGroupMergesGroupsOnStructuralCollision(t *testing.T) {
	m := newTestMemo()

	g1 := m.NewGroup()
	g2 := m.NewGroup()

	e1Id, isNew1 := m.AddExprToGroup(&Expr[testKind]{Typ: testKindLeaf}, g1)
	require.True(t, isNew1)

	e2Id, isNew2 := m.AddExprToGroup(&Expr[testKind]{Typ: testKindLeaf}, g2)
	require.False(t, isNew2, "identical expression added to a different group should be recognized as a duplicate")
	require.Equal(t, e1Id, e2Id)

	require.Equal(t, m.uf.find(g1), m.uf.find(g2))
}

func TestRuleAppliedBitmapTracksPerExpressionPerRule(t *testing.T) {
	m := newTestMemo()
	leaf := NewRel[testKind](testKindLeaf, nil, nil)
	g := m.AddNewExpr(leaf)
	exprId := m.GroupById(g).Exprs[0]

	require.False(t, m.RuleApplied(exprId, RuleId(1)))
	m.MarkRuleApplied(exprId, RuleId(1))
	require.True(t, m.RuleApplied(exprId, RuleId(1)))
	require.False(t, m.RuleApplied(exprId, RuleId(2)))
}

func TestUpdateGroupInfoDerivesFromChildren(t *testing.T) {
	m := newTestMemo()

	child := NewRel[testKind](testKindLeaf, nil, nil)
	root := NewRel[testKind](testKindUnary, []*Rel[testKind]{child}, nil)

	g := m.AddNewExpr(root)
	grp := m.GroupById(g)
	require.Len(t, grp.Props, 1)
	require.Equal(t, 1, grp.Props[0])
}

func TestSetWinnerOnlyReplacesWithCheaperCost(t *testing.T) {
	m := newTestMemo()
	g := m.NewGroup()

	key := uint64(42)
	m.SetWinner(g, key, &Winner[testKind]{ExprId: 1, Cost: Cost{Values: []float64{10}}})
	w, ok := m.Winner(g, key)
	require.True(t, ok)
	require.Equal(t, ExprId(1), w.ExprId)

	m.SetWinner(g, key, &Winner[testKind]{ExprId: 2, Cost: Cost{Values: []float64{20}}})
	w, _ = m.Winner(g, key)
	require.Equal(t, ExprId(1), w.ExprId, "a more expensive candidate must not replace the recorded winner")

	m.SetWinner(g, key, &Winner[testKind]{ExprId: 3, Cost: Cost{Values: []float64{5}}})
	w, _ = m.Winner(g, key)
	require.Equal(t, ExprId(3), w.ExprId, "a strictly cheaper candidate must replace the recorded winner")
}

func TestSignatureKeyIsDeterministic(t *testing.T) {
	sig := RequiredProperties{"a", 1}
	require.Equal(t, SignatureKey(sig), SignatureKey(RequiredProperties{"a", 1}))
}

func TestSignatureKeyDiffersOnDifferentInput(t *testing.T) {
	require.NotEqual(t, SignatureKey(RequiredProperties{"a"}), SignatureKey(RequiredProperties{"b"}))
}
