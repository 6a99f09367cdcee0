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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrNoPlan is returned when the search terminates without a winning
	// physical expression for the requested root group and properties.
	ErrNoPlan = errors.NewKind("no winning plan for group %d under required properties %v")

	// ErrInvariant is returned when an internal memo or scheduler invariant
	// is violated; seeing this means the optimizer has a bug, not that the
	// input query was bad.
	ErrInvariant = errors.NewKind("optimizer invariant violated: %s")

	// ErrConfig is returned when an optimizer Config value is out of range
	// or internally inconsistent.
	ErrConfig = errors.NewKind("invalid optimizer config: %s")

	// ErrBudgetExhausted is returned when a configured exploration budget
	// (PartialExploreIter or PartialExploreSpace) is exceeded before a plan
	// was found.
	ErrBudgetExhausted = errors.NewKind("exploration budget exhausted before a plan was found")

	// ErrInput is returned when the caller-supplied root expression or
	// required physical properties are malformed.
	ErrInput = errors.NewKind("invalid optimizer input: %s")
)
