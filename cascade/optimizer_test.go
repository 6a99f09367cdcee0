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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cascadesql/cascadesql/node"
)

// noopCost is a trivial CostModel[testKind]: every physical leaf costs 1,
// every physical unary costs one more than its child. It exists only to
// drive this package's own end-to-end Optimize test.
type noopCost struct{}

func (noopCost) Statistics(typ testKind, preds []node.Value, childStats []any) any { return nil }

func (noopCost) ComputeCost(typ testKind, preds []node.Value, childStats []any, ctx *RelNodeContext) Cost {
	switch typ {
	case testKindPhysicalLeaf:
		return Cost{Values: []float64{1}}
	case testKindPhysicalUnary:
		return Cost{Values: []float64{1}}
	default:
		return Cost{Values: []float64{0}}
	}
}

// alwaysSatisfiedProp is a PhysicalPropertyBuilder[testKind] whose Required
// value is always already satisfied -- it exists only to exercise the
// Optimize/materialize wiring end to end without also pulling in enforcer
// insertion, which is covered separately by package sample's sort-property
// tests.
type alwaysSatisfiedProp struct{}

func (alwaysSatisfiedProp) Name() string { return "trivial" }
func (alwaysSatisfiedProp) Derive(typ testKind, preds []node.Value, data node.Value, childProps []Signature) Signature {
	return nil
}
func (alwaysSatisfiedProp) Satisfies(derived, required Signature) bool { return true }
func (alwaysSatisfiedProp) Enforce(required Signature) (testKind, node.Value) {
	return testKindPhysicalLeaf, nil
}
func (alwaysSatisfiedProp) Default() Signature { return nil }
func (alwaysSatisfiedProp) Decompose(typ testKind, numChildren int, required Signature) [][]Signature {
	decomp := make([]Signature, numChildren)
	return [][]Signature{decomp}
}

type leafToPhysicalRule struct{}

func (leafToPhysicalRule) Id() RuleId             { return 1 }
func (leafToPhysicalRule) Name() string           { return "LeafImpl" }
func (leafToPhysicalRule) Pattern() Matcher[testKind] { return Match[testKind](testKindLeaf) }
func (leafToPhysicalRule) IsImplementation() bool { return true }
func (leafToPhysicalRule) Apply(b *Rel[testKind]) ([]*Rel[testKind], error) {
	return []*Rel[testKind]{NewRel[testKind](testKindPhysicalLeaf, nil, nil)}, nil
}

type unaryToPhysicalRule struct{}

func (unaryToPhysicalRule) Id() RuleId   { return 2 }
func (unaryToPhysicalRule) Name() string { return "UnaryImpl" }
func (unaryToPhysicalRule) Pattern() Matcher[testKind] {
	return Match[testKind](testKindUnary, Any[testKind]())
}
func (unaryToPhysicalRule) IsImplementation() bool { return true }
func (unaryToPhysicalRule) Apply(b *Rel[testKind]) ([]*Rel[testKind], error) {
	return []*Rel[testKind]{NewRel[testKind](testKindPhysicalUnary, b.Children, nil)}, nil
}

func newTestOptimizer() *Optimizer[testKind] {
	rules := NewRuleSet[testKind](leafToPhysicalRule{}, unaryToPhysicalRule{})
	return NewOptimizer[testKind](
		rules,
		noopCost{},
		nil,
		[]PhysicalPropertyBuilder[testKind]{alwaysSatisfiedProp{}},
		Config{},
		nil,
	)
}

func TestOptimizeProducesPhysicalPlan(t *testing.T) {
	o := newTestOptimizer()
	root := NewRel[testKind](testKindUnary, []*Rel[testKind]{NewRel[testKind](testKindLeaf, nil, nil)}, nil)

	plan, err := o.Optimize(context.Background(), root, RequiredProperties{nil}, nil)
	require.NoError(t, err)
	require.Equal(t, testKindPhysicalUnary, plan.Typ)
	require.Len(t, plan.Children, 1)
	require.Equal(t, testKindPhysicalLeaf, plan.Children[0].Typ)
}

func TestOptimizeRejectsNilRoot(t *testing.T) {
	o := newTestOptimizer()
	_, err := o.Optimize(context.Background(), nil, RequiredProperties{nil}, nil)
	require.Error(t, err)
	require.True(t, ErrInput.Is(err))
}

func TestOptimizeRejectsMismatchedRequiredLength(t *testing.T) {
	o := newTestOptimizer()
	root := NewRel[testKind](testKindLeaf, nil, nil)
	_, err := o.Optimize(context.Background(), root, RequiredProperties{}, nil)
	require.Error(t, err)
	require.True(t, ErrInput.Is(err))
}

func TestOptimizeReturnsErrNoPlanWhenNoImplementationExists(t *testing.T) {
	rules := NewRuleSet[testKind]() // no rules registered at all
	o := NewOptimizer[testKind](rules, noopCost{}, nil, []PhysicalPropertyBuilder[testKind]{alwaysSatisfiedProp{}}, Config{}, nil)
	root := NewRel[testKind](testKindLeaf, nil, nil)

	_, err := o.Optimize(context.Background(), root, RequiredProperties{nil}, nil)
	require.Error(t, err)
	require.True(t, ErrNoPlan.Is(err))
}

func TestOptimizeReturnsErrNoPlanWhenCostLimitIsZero(t *testing.T) {
	o := newTestOptimizer()
	root := NewRel[testKind](testKindUnary, []*Rel[testKind]{NewRel[testKind](testKindLeaf, nil, nil)}, nil)

	_, err := o.Optimize(context.Background(), root, RequiredProperties{nil}, &Cost{Values: []float64{0}})
	require.Error(t, err)
	require.True(t, ErrNoPlan.Is(err))
}

func TestOptimizeRespectsPartialExploreIterBudget(t *testing.T) {
	o := newTestOptimizer()
	o.cfg.PartialExploreIter = 1
	root := NewRel[testKind](testKindUnary, []*Rel[testKind]{NewRel[testKind](testKindLeaf, nil, nil)}, nil)

	_, err := o.Optimize(context.Background(), root, RequiredProperties{nil}, nil)
	require.Error(t, err)
	require.True(t, ErrBudgetExhausted.Is(err))
}
