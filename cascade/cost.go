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

// Cost is a multi-dimensional cost vector (e.g. [cpu, io, memory]); ordering
// for pruning and winner selection compares the dominant (first) dimension,
// leaving the rest available for tie-breaking or diagnostics.
type Cost struct {
	Values []float64
}

// Less reports whether c is strictly cheaper than other under the dominant
// dimension, falling back to a lexicographic comparison of the remaining
// dimensions on a tie.
func (c Cost) Less(other Cost) bool {
	n := len(c.Values)
	if len(other.Values) < n {
		n = len(other.Values)
	}
	for i := 0; i < n; i++ {
		if c.Values[i] != other.Values[i] {
			return c.Values[i] < other.Values[i]
		}
	}
	return len(c.Values) < len(other.Values)
}

// Add sums two cost vectors dimension-wise, used to fold a node's own cost
// together with its already-costed inputs.
func (c Cost) Add(other Cost) Cost {
	n := len(c.Values)
	if len(other.Values) > n {
		n = len(other.Values)
	}
	out := make([]float64, n)
	for i := range out {
		var a, b float64
		if i < len(c.Values) {
			a = c.Values[i]
		}
		if i < len(other.Values) {
			b = other.Values[i]
		}
		out[i] = a + b
	}
	return Cost{Values: out}
}

// RelNodeContext carries the identity of the expression currently being
// costed -- useful to a cost model that wants to look up runtime feedback
// keyed by group or expression id. The core never inspects it; it exists
// purely as the hook an adaptive cost model can use.
type RelNodeContext struct {
	GroupId GroupId
	ExprId  ExprId
}

// CostModel assigns a standalone cost to a single node (not counting its
// children, whose costs the optimizer already knows from prior winners) and
// computes the statistics that node hands to its parent. The optimizer adds
// a node's own cost to its children's winning costs itself, via Cost.Add.
type CostModel[T node.Type] interface {
	// ComputeCost returns the standalone cost of typ/preds given each
	// child's already-known statistics (opaque to the core, produced by the
	// same cost model via Statistics). ctx is an optional, opaque hook for
	// adaptive/feedback-driven cost models; the core passes it through
	// unexamined and it may be nil.
	ComputeCost(typ T, preds []node.Value, childStats []any, ctx *RelNodeContext) Cost

	// Statistics computes the statistics a node produces for its parent's
	// ComputeCost/Statistics calls (e.g. an estimated row count), given the
	// node's own type/predicates and its children's statistics.
	Statistics(typ T, preds []node.Value, childStats []any) any
}
