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
	"github.com/cascadesql/cascadesql/cascade"
	"github.com/cascadesql/cascadesql/node"
)

// Schema is the logical property SchemaPropertyBuilder derives: just an
// output column count, derived without a real catalog. No rule in this
// package reads it.
type Schema struct {
	Cols int
}

// SchemaPropertyBuilder derives Schema bottom-up from node Data and
// children's Schema.
type SchemaPropertyBuilder struct{}

func (SchemaPropertyBuilder) Name() string { return "schema" }

func (SchemaPropertyBuilder) Derive(typ Kind, preds []node.Value, data node.Value, childProps []any) any {
	switch typ {
	case KindScan, KindPhysicalScan, KindEmptyRelation, KindPhysicalEmptyRelation, KindValues:
		if sd, ok := data.(ScanData); ok {
			return Schema{Cols: sd.Cols}
		}
		return Schema{Cols: 0}
	case KindProjection, KindPhysicalProjection:
		return Schema{Cols: len(preds)}
	case KindJoin, KindPhysicalHashJoin:
		left, _ := childProps[0].(Schema)
		right, _ := childProps[1].(Schema)
		return Schema{Cols: left.Cols + right.Cols}
	default:
		if len(childProps) > 0 {
			if s, ok := childProps[0].(Schema); ok {
				return s
			}
		}
		return Schema{}
	}
}

var _ cascade.LogicalPropertyBuilder[Kind] = SchemaPropertyBuilder{}

// SortPropertyBuilder is the single physical property this sample
// vocabulary tracks: the sort order a physical node's output is guaranteed
// to come back in.
type SortPropertyBuilder struct{}

func (SortPropertyBuilder) Name() string { return "sort" }

func (SortPropertyBuilder) Derive(typ Kind, preds []node.Value, data node.Value, childSigs []cascade.Signature) cascade.Signature {
	switch typ {
	case KindPhysicalSort:
		if sig, ok := data.(SortSignature); ok {
			return sig
		}
		return SortSignature(nil)
	default:
		if len(childSigs) > 0 {
			if sig, ok := childSigs[0].(SortSignature); ok {
				return sig
			}
		}
		return SortSignature(nil)
	}
}

func (SortPropertyBuilder) Satisfies(derived, required cascade.Signature) bool {
	req, _ := required.(SortSignature)
	if len(req) == 0 {
		return true
	}
	der, _ := derived.(SortSignature)
	if len(der) < len(req) {
		return false
	}
	for i, k := range req {
		if der[i] != k {
			return false
		}
	}
	return true
}

func (SortPropertyBuilder) Enforce(required cascade.Signature) (Kind, node.Value) {
	sig, _ := required.(SortSignature)
	return KindPhysicalSort, sig
}

func (SortPropertyBuilder) Default() cascade.Signature {
	return SortSignature(nil)
}

// passThroughSortKinds are the single-child physical node types whose output
// order is exactly their child's: a Filter only drops rows, a Limit only
// truncates, a Projection in this vocabulary never reorders or drops the
// leading columns a sort key would reference. Each may ask its child for
// required directly instead of enforcing above itself.
var passThroughSortKinds = map[Kind]bool{
	KindPhysicalFilter:     true,
	KindPhysicalProjection: true,
	KindPhysicalLimit:      true,
}

// Decompose always offers "every child gets Default(), enforce here if
// required is unmet"; single-child pass-through node types additionally
// offer "ask the child for required directly", letting the child satisfy it
// on its own or enforce one level lower, which is often cheaper.
func (SortPropertyBuilder) Decompose(typ Kind, numChildren int, required cascade.Signature) [][]cascade.Signature {
	withDefault := make([]cascade.Signature, numChildren)
	for i := range withDefault {
		withDefault[i] = SortSignature(nil)
	}
	decomps := [][]cascade.Signature{withDefault}

	if numChildren == 1 && passThroughSortKinds[typ] {
		if req, ok := required.(SortSignature); ok && len(req) > 0 {
			decomps = append(decomps, []cascade.Signature{req})
		}
	}
	return decomps
}

var _ cascade.PhysicalPropertyBuilder[Kind] = SortPropertyBuilder{}
