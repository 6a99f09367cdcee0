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

package sample

import "github.com/cascadesql/cascadesql/cascade"

// Rule ids. Grouped by family (transform: 1xx, implementation: 2xx) purely
// for readability; the core treats RuleId as an opaque key.
const (
	RuleJoinCommute cascade.RuleId = iota + 100
	RuleJoinAssoc
	RuleEliminateLimit
	RuleProjectMerge
	RuleEliminateDuplicatedSortExpr

	RuleScanImpl cascade.RuleId = iota + 200
	RuleFilterImpl
	RuleProjectionImpl
	RuleHashJoinImpl
	RuleSortImpl
	RuleLimitImpl
	RuleEmptyRelationImpl
)

type implRule struct {
	id      cascade.RuleId
	name    string
	pattern cascade.Matcher[Kind]
	apply   func(binding *Rel) ([]*Rel, error)
}

func (r implRule) Id() cascade.RuleId             { return r.id }
func (r implRule) Name() string                   { return r.name }
func (r implRule) Pattern() cascade.Matcher[Kind]  { return r.pattern }
func (r implRule) IsImplementation() bool          { return true }
func (r implRule) Apply(b *Rel) ([]*Rel, error)    { return r.apply(b) }

// ScanImplRule realizes a logical Scan as a PhysicalScan with the same
// table/row-count/column-count payload.
func ScanImplRule() cascade.Rule[Kind] {
	return implRule{
		id:      RuleScanImpl,
		name:    "ScanImplRule",
		pattern: cascade.Match[Kind](KindScan),
		apply: func(b *Rel) ([]*Rel, error) {
			return []*Rel{cascade.NewRelWithData[Kind](KindPhysicalScan, nil, nil, b.Data)}, nil
		},
	}
}

// FilterImplRule realizes a logical Filter as a PhysicalFilter over the same
// (still-unexpanded) child group and predicate.
func FilterImplRule() cascade.Rule[Kind] {
	return implRule{
		id:      RuleFilterImpl,
		name:    "FilterImplRule",
		pattern: cascade.Match[Kind](KindFilter, cascade.Any[Kind]()),
		apply: func(b *Rel) ([]*Rel, error) {
			return []*Rel{cascade.NewRel[Kind](KindPhysicalFilter, b.Children, b.Preds)}, nil
		},
	}
}

// ProjectionImplRule realizes a logical Projection as a PhysicalProjection.
func ProjectionImplRule() cascade.Rule[Kind] {
	return implRule{
		id:      RuleProjectionImpl,
		name:    "ProjectionImplRule",
		pattern: cascade.Match[Kind](KindProjection, cascade.Any[Kind]()),
		apply: func(b *Rel) ([]*Rel, error) {
			return []*Rel{cascade.NewRel[Kind](KindPhysicalProjection, b.Children, b.Preds)}, nil
		},
	}
}

// HashJoinImplRule realizes a logical Join as a PhysicalHashJoin, keeping
// join type and predicate unchanged.
func HashJoinImplRule() cascade.Rule[Kind] {
	return implRule{
		id:      RuleHashJoinImpl,
		name:    "HashJoinImplRule",
		pattern: cascade.Match[Kind](KindJoin, cascade.Any[Kind](), cascade.Any[Kind]()),
		apply: func(b *Rel) ([]*Rel, error) {
			out := cascade.NewRel[Kind](KindPhysicalHashJoin, b.Children, b.Preds)
			out.Data = b.Data
			return []*Rel{out}, nil
		},
	}
}

// SortImplRule realizes a logical Sort as a PhysicalSort with the same key
// list.
func SortImplRule() cascade.Rule[Kind] {
	return implRule{
		id:      RuleSortImpl,
		name:    "SortImplRule",
		pattern: cascade.Match[Kind](KindSort, cascade.Any[Kind]()),
		apply: func(b *Rel) ([]*Rel, error) {
			return []*Rel{cascade.NewRelWithData[Kind](KindPhysicalSort, b.Children, nil, b.Data)}, nil
		},
	}
}

// LimitImplRule realizes a logical Limit as a PhysicalLimit.
func LimitImplRule() cascade.Rule[Kind] {
	return implRule{
		id:      RuleLimitImpl,
		name:    "LimitImplRule",
		pattern: cascade.Match[Kind](KindLimit, cascade.Any[Kind]()),
		apply: func(b *Rel) ([]*Rel, error) {
			return []*Rel{cascade.NewRelWithData[Kind](KindPhysicalLimit, b.Children, nil, b.Data)}, nil
		},
	}
}

// EmptyRelationImplRule realizes a logical EmptyRelation as a
// PhysicalEmptyRelation carrying the same column-count payload.
func EmptyRelationImplRule() cascade.Rule[Kind] {
	return implRule{
		id:      RuleEmptyRelationImpl,
		name:    "EmptyRelationImplRule",
		pattern: cascade.Match[Kind](KindEmptyRelation),
		apply: func(b *Rel) ([]*Rel, error) {
			return []*Rel{cascade.NewRelWithData[Kind](KindPhysicalEmptyRelation, nil, nil, b.Data)}, nil
		},
	}
}
