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
)

func TestBindExprDescendsIntoExactChildPattern(t *testing.T) {
	o := NewOptimizer[testKind](NewRuleSet[testKind](), noopCost{}, nil, nil, Config{}, nil)

	leaf := NewRel[testKind](testKindLeaf, nil, nil)
	root := NewRel[testKind](testKindUnary, []*Rel[testKind]{leaf}, nil)
	g := o.memo.AddNewExpr(root)

	exprId := o.memo.GroupById(g).Exprs[0]
	pattern := Match[testKind](testKindUnary, Match[testKind](testKindLeaf))

	bindings := o.bindExpr(exprId, pattern)
	require.Len(t, bindings, 1)
	binding := bindings[0]
	require.Equal(t, testKindUnary, binding.Typ)
	require.Len(t, binding.Children, 1)
	require.Equal(t, testKindLeaf, binding.Children[0].Typ)
	require.False(t, binding.Children[0].IsGroupRef)
}

func TestBindExprBindsAnyChildAsGroupRefWithoutDescending(t *testing.T) {
	o := NewOptimizer[testKind](NewRuleSet[testKind](), noopCost{}, nil, nil, Config{}, nil)

	leaf := NewRel[testKind](testKindLeaf, nil, nil)
	root := NewRel[testKind](testKindUnary, []*Rel[testKind]{leaf}, nil)
	g := o.memo.AddNewExpr(root)
	exprId := o.memo.GroupById(g).Exprs[0]

	pattern := Match[testKind](testKindUnary, Any[testKind]())
	bindings := o.bindExpr(exprId, pattern)
	require.Len(t, bindings, 1)
	require.True(t, bindings[0].Children[0].IsGroupRef)
}

func TestBindExprFailsWhenNoMemberSatisfiesChildPattern(t *testing.T) {
	o := NewOptimizer[testKind](NewRuleSet[testKind](), noopCost{}, nil, nil, Config{}, nil)

	leaf := NewRel[testKind](testKindLeaf, nil, nil)
	root := NewRel[testKind](testKindUnary, []*Rel[testKind]{leaf}, nil)
	g := o.memo.AddNewExpr(root)
	exprId := o.memo.GroupById(g).Exprs[0]

	// the child group only has a Leaf member, never a Binary one.
	pattern := Match[testKind](testKindUnary, Match[testKind](testKindBinary, Any[testKind](), Any[testKind]()))
	bindings := o.bindExpr(exprId, pattern)
	require.Empty(t, bindings)
}

func TestBindExprRejectsTopLevelShapeMismatch(t *testing.T) {
	o := NewOptimizer[testKind](NewRuleSet[testKind](), noopCost{}, nil, nil, Config{}, nil)
	leaf := NewRel[testKind](testKindLeaf, nil, nil)
	g := o.memo.AddNewExpr(leaf)
	exprId := o.memo.GroupById(g).Exprs[0]

	bindings := o.bindExpr(exprId, Match[testKind](testKindUnary, Any[testKind]()))
	require.Empty(t, bindings)
}

func TestBindExprEnumeratesEveryMatchingChildMember(t *testing.T) {
	o := NewOptimizer[testKind](NewRuleSet[testKind](), noopCost{}, nil, nil, Config{}, nil)

	leaf := NewRel[testKind](testKindLeaf, nil, nil)
	g := o.memo.AddNewExpr(leaf)
	// A second, structurally distinct Leaf-shaped alternative in the same
	// child group -- AddExprToGroup interns it as a second member rather
	// than merging, since it carries different Data.
	o.memo.AddExprToGroup(&Expr[testKind]{Typ: testKindLeaf, Data: "tagged"}, g)

	root := &Rel[testKind]{Typ: testKindUnary, Children: []*Rel[testKind]{{IsGroupRef: true, GroupRef: g}}}
	rootGroup := o.memo.AddNewExpr(root)
	rootExprId := o.memo.GroupById(rootGroup).Exprs[0]

	pattern := Match[testKind](testKindUnary, Match[testKind](testKindLeaf))
	bindings := o.bindExpr(rootExprId, pattern)
	require.Len(t, bindings, 2, "every member of the child group satisfying the sub-pattern should produce its own binding")
}
