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

import (
	"github.com/sirupsen/logrus"

	"github.com/cascadesql/cascadesql/cascade"
)

// Rules returns every transformation and implementation rule this package
// defines, in the order NewOptimizer registers them.
func Rules() *cascade.RuleSet[Kind] {
	return cascade.NewRuleSet[Kind](
		JoinCommuteRule(),
		JoinAssocRule(),
		EliminateLimitRule(),
		ProjectMergeRule(),
		EliminateDuplicatedSortExprRule(),
		ScanImplRule(),
		FilterImplRule(),
		ProjectionImplRule(),
		HashJoinImplRule(),
		SortImplRule(),
		LimitImplRule(),
		EmptyRelationImplRule(),
	)
}

// NewOptimizer builds a cascade.Optimizer wired up with this package's rule
// set, cost model, and property builders -- the concrete optimizer the
// end-to-end scenario tests drive.
func NewOptimizer(cfg cascade.Config, log *logrus.Logger) *cascade.Optimizer[Kind] {
	return cascade.NewOptimizer[Kind](
		Rules(),
		RowCountCostModel{},
		[]cascade.LogicalPropertyBuilder[Kind]{SchemaPropertyBuilder{}},
		[]cascade.PhysicalPropertyBuilder[Kind]{SortPropertyBuilder{}},
		cfg,
		log,
	)
}

// NoSort is the "don't care" required physical property vector for this
// package's single registered physical property (sort order).
func NoSort() cascade.RequiredProperties {
	return cascade.RequiredProperties{SortSignature(nil)}
}

// RequireSort builds a required property vector asking for the given sort
// key order.
func RequireSort(keys ...SortKey) cascade.RequiredProperties {
	return cascade.RequiredProperties{SortSignature(keys)}
}
