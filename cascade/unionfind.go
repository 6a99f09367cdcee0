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

// disjointSet is a union-find over GroupId with path compression, used to
// collapse two groups into one equivalence class when a rule proves they
// produce the same result (e.g. two different join orders landing on an
// already-memoized shape).
type disjointSet struct {
	parent []GroupId
}

func newDisjointSet() *disjointSet {
	// index 0 is reserved (InvalidGroup); start with one slot for it.
	return &disjointSet{parent: []GroupId{InvalidGroup}}
}

// add registers a brand new group as its own representative.
func (d *disjointSet) add(g GroupId) {
	for GroupId(len(d.parent)) <= g {
		d.parent = append(d.parent, GroupId(len(d.parent)))
	}
	d.parent[g] = g
}

// find returns the representative GroupId for g, compressing the path.
func (d *disjointSet) find(g GroupId) GroupId {
	for d.parent[g] != g {
		d.parent[g] = d.parent[d.parent[g]]
		g = d.parent[g]
	}
	return g
}

// union merges the equivalence classes of a and b, returning the surviving
// representative. The lower-numbered group (the older one) always wins so
// that earlier-discovered groups remain stable reference points.
func (d *disjointSet) union(a, b GroupId) GroupId {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return ra
	}
	if ra > rb {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	return ra
}
