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

// LogicalPropertyBuilder derives a logical property (schema, functional
// dependencies, row count estimate, ...) bottom-up from a node's type and
// its children's already-derived properties. The derived value is type
// erased (any) the same way a property table of trait objects would be in a
// language with downcasting; callers type-assert back to their concrete
// property type.
type LogicalPropertyBuilder[T node.Type] interface {
	// Name identifies this property for diagnostics and for indexing into a
	// Group's property slice.
	Name() string

	// Derive computes the property for a node given its own
	// type/predicates/node-level Data and the already-derived same-named
	// property of each child group.
	Derive(typ T, preds []node.Value, data node.Value, childProps []any) any
}

// Signature is a required or derived physical property value (sort order,
// distribution, ...), opaque to the core and interpreted only by the
// PhysicalPropertyBuilder that produced or consumes it.
type Signature any

// PhysicalPropertyBuilder derives physical properties bottom-up the way
// LogicalPropertyBuilder does, and additionally knows how to check whether a
// derived property satisfies a required one, and how to synthesize an
// enforcer node when it doesn't.
type PhysicalPropertyBuilder[T node.Type] interface {
	Name() string

	// Derive computes the physical property produced by a physical node
	// given its own predicates/node-level Data and its children's derived
	// values for this property.
	Derive(typ T, preds []node.Value, data node.Value, childProps []Signature) Signature

	// Satisfies reports whether a derived property meets a required one.
	Satisfies(derived, required Signature) bool

	// Enforce returns the node type and node-level Data payload of the
	// physical enforcer that guarantees required when wrapped around a
	// single child carrying the group it enforces over.
	Enforce(required Signature) (typ T, data node.Value)

	// Default is the property value required of a node when the caller
	// does not otherwise constrain it (the "don't care" required value).
	Default() Signature

	// Decompose enumerates the ways a node of type typ with numChildren
	// children can be asked to produce required: each returned entry gives
	// the per-child required Signature a caller should optimize each child
	// group under. Every builder must include the "ask each child for its
	// own Default() and enforce on top once they report back" entry; a
	// builder whose property a node type passes through untouched (a
	// Filter or Limit that doesn't disturb row order, a join side a merge
	// join needs pre-sorted) may additionally return entries asking one or
	// more children for required directly, letting a child satisfy it
	// on its own -- or insert its own enforcer one level lower, which is
	// often cheaper than enforcing above this node. The core tries every
	// returned decomposition (combined across all registered builders) and
	// keeps whichever is cheapest.
	Decompose(typ T, numChildren int, required Signature) [][]Signature
}

// RequiredProperties is the decomposed required-physical-property vector a
// caller passes to Optimize: one Signature per registered
// PhysicalPropertyBuilder, indexed by builder registration order.
type RequiredProperties []Signature
