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

func TestDisjointSetFindIsIdentityBeforeUnion(t *testing.T) {
	d := newDisjointSet()
	d.add(1)
	d.add(2)
	d.add(3)
	require.Equal(t, GroupId(1), d.find(1))
	require.Equal(t, GroupId(2), d.find(2))
	require.Equal(t, GroupId(3), d.find(3))
}

func TestDisjointSetUnionPrefersLowerGroup(t *testing.T) {
	d := newDisjointSet()
	d.add(1)
	d.add(2)
	d.add(3)

	rep := d.union(3, 1)
	require.Equal(t, GroupId(1), rep)
	require.Equal(t, GroupId(1), d.find(3))
	require.Equal(t, GroupId(1), d.find(1))
}

func TestDisjointSetUnionIsTransitiveAndCompresses(t *testing.T) {
	d := newDisjointSet()
	for g := GroupId(1); g <= 4; g++ {
		d.add(g)
	}
	d.union(2, 1)
	d.union(3, 2)
	d.union(4, 3)

	rep := d.find(4)
	require.Equal(t, GroupId(1), rep)
	for g := GroupId(1); g <= 4; g++ {
		require.Equal(t, GroupId(1), d.find(g))
	}
}

func TestDisjointSetUnionOfSameGroupIsNoop(t *testing.T) {
	d := newDisjointSet()
	d.add(1)
	require.Equal(t, GroupId(1), d.union(1, 1))
}
