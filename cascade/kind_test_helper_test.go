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

import "fmt"

// testKind is a minimal node.Type used across this package's own tests, kept
// separate from package sample so these tests exercise package cascade in
// isolation.
type testKind int

const (
	testKindLeaf testKind = iota
	testKindUnary
	testKindBinary
	testKindPhysicalLeaf
	testKindPhysicalUnary
)

func (k testKind) String() string {
	switch k {
	case testKindLeaf:
		return "Leaf"
	case testKindUnary:
		return "Unary"
	case testKindBinary:
		return "Binary"
	case testKindPhysicalLeaf:
		return "PhysicalLeaf"
	case testKindPhysicalUnary:
		return "PhysicalUnary"
	default:
		return fmt.Sprintf("testKind(%d)", int(k))
	}
}

func (k testKind) IsLogical() bool {
	return k == testKindLeaf || k == testKindUnary || k == testKindBinary
}

func (k testKind) Discriminant() int { return int(k) }
