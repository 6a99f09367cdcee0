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

func TestCostLessComparesDominantDimensionFirst(t *testing.T) {
	cheap := Cost{Values: []float64{1, 100}}
	expensive := Cost{Values: []float64{2, 0}}
	require.True(t, cheap.Less(expensive))
	require.False(t, expensive.Less(cheap))
}

func TestCostLessFallsBackToRemainingDimensionsOnTie(t *testing.T) {
	a := Cost{Values: []float64{5, 1}}
	b := Cost{Values: []float64{5, 2}}
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
}

func TestCostLessTreatsShorterVectorAsCheaperOnFullTie(t *testing.T) {
	a := Cost{Values: []float64{5}}
	b := Cost{Values: []float64{5, 0}}
	require.True(t, a.Less(b))
}

func TestCostAddSumsDimensionwise(t *testing.T) {
	a := Cost{Values: []float64{1, 2}}
	b := Cost{Values: []float64{10, 20, 30}}
	sum := a.Add(b)
	require.Equal(t, []float64{11, 22, 30}, sum.Values)
}
