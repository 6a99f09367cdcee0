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

func TestMatchExactRequiresTypeAndArity(t *testing.T) {
	m := Match[testKind](testKindBinary, Any[testKind](), Any[testKind]())
	require.True(t, m.matches(testKindBinary, 2))
	require.False(t, m.matches(testKindBinary, 1))
	require.False(t, m.matches(testKindUnary, 2))
}

func TestMatchDiscriminantIgnoresExactType(t *testing.T) {
	m := MatchDiscriminant[testKind](int(testKindUnary), Any[testKind]())
	require.True(t, m.matches(testKindUnary, 1))
	require.False(t, m.matches(testKindBinary, 1))
}

func TestAnyMatchesAnythingWithoutShapeCheck(t *testing.T) {
	m := Any[testKind]()
	require.True(t, m.matches(testKindBinary, 2))
	require.True(t, m.matches(testKindLeaf, 0))
}

func TestAnyManyAbsorbsRemainingArity(t *testing.T) {
	m := Match[testKind](testKindBinary, AnyMany[testKind]())
	require.True(t, m.matches(testKindBinary, 0))
	require.True(t, m.matches(testKindBinary, 5))
	require.False(t, m.matches(testKindUnary, 1))
}

func TestMatchWithFixedChildrenRejectsWrongArity(t *testing.T) {
	m := Match[testKind](testKindBinary, Any[testKind](), Any[testKind]())
	require.False(t, m.matches(testKindBinary, 3))
}

func TestSubMatcherDefaultsToAnyWhenUnspecified(t *testing.T) {
	m := Match[testKind](testKindLeaf)
	sub := subMatcher[testKind](m, 0, 1)
	require.Equal(t, matchAny, sub.kind)
}

func TestSubMatcherResolvesTrailingAnyMany(t *testing.T) {
	m := Match[testKind](testKindBinary, Match[testKind](testKindLeaf), AnyMany[testKind]())
	require.Equal(t, matchExact, subMatcher[testKind](m, 0, 3).kind)
	require.Equal(t, matchAnyMany, subMatcher[testKind](m, 1, 3).kind)
	require.Equal(t, matchAnyMany, subMatcher[testKind](m, 2, 3).kind)
}
