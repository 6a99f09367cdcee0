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
	"math"

	"github.com/cascadesql/cascadesql/cascade"
	"github.com/cascadesql/cascadesql/node"
)

// Stats is the row-count statistic RowCountCostModel threads between nodes.
type Stats struct {
	Rows float64
}

// RowCountCostModel is a deliberately simple stand-in for a real cost model:
// every node's own cost and output row count are derived from row-count
// arithmetic only (no selectivity estimation, no histograms). It exists so
// the core's branch-and-bound pruning and winner selection have something
// non-trivial to compare.
type RowCountCostModel struct{}

func (RowCountCostModel) Statistics(typ Kind, preds []node.Value, childStats []any) any {
	switch typ {
	case KindScan, KindPhysicalScan:
		return Stats{Rows: 1000}
	case KindFilter, KindPhysicalFilter:
		rows := childRows(childStats, 0)
		return Stats{Rows: rows * 0.5}
	case KindProjection, KindPhysicalProjection, KindSort, KindPhysicalSort:
		return Stats{Rows: childRows(childStats, 0)}
	case KindLimit, KindPhysicalLimit:
		return Stats{Rows: childRows(childStats, 0)}
	case KindJoin, KindPhysicalHashJoin:
		return Stats{Rows: childRows(childStats, 0) * childRows(childStats, 1)}
	case KindEmptyRelation, KindPhysicalEmptyRelation:
		return Stats{Rows: 0}
	case KindValues:
		return Stats{Rows: 1}
	default:
		return Stats{Rows: childRows(childStats, 0)}
	}
}

func childRows(childStats []any, i int) float64 {
	if i >= len(childStats) {
		return 0
	}
	s, _ := childStats[i].(Stats)
	return s.Rows
}

func (m RowCountCostModel) ComputeCost(typ Kind, preds []node.Value, childStats []any, ctx *cascade.RelNodeContext) cascade.Cost {
	switch typ {
	case KindPhysicalScan:
		rows := 1000.0
		return cascade.Cost{Values: []float64{rows}}
	case KindPhysicalFilter:
		rows := childRows(childStats, 0)
		return cascade.Cost{Values: []float64{rows}}
	case KindPhysicalProjection:
		rows := childRows(childStats, 0)
		return cascade.Cost{Values: []float64{rows * 0.1}}
	case KindPhysicalHashJoin:
		left, right := childRows(childStats, 0), childRows(childStats, 1)
		return cascade.Cost{Values: []float64{left * right}}
	case KindPhysicalSort:
		rows := childRows(childStats, 0)
		if rows < 2 {
			rows = 2
		}
		return cascade.Cost{Values: []float64{rows * math.Log2(rows)}}
	case KindPhysicalLimit:
		return cascade.Cost{Values: []float64{1}}
	case KindPhysicalEmptyRelation:
		return cascade.Cost{Values: []float64{0}}
	default:
		return cascade.Cost{Values: []float64{0}}
	}
}

var _ cascade.CostModel[Kind] = RowCountCostModel{}
