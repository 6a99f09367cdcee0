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

// Package cascade implements a Cascades-style, cost-based, task-driven query
// optimizer: a memo table, a rule engine, a physical-property framework, and
// a single-threaded cooperative search scheduler. It is parameterized over a
// caller-supplied node.Type so it can drive search over any closed relational
// and scalar node vocabulary; see package sample for a concrete one.
package cascade

// GroupId identifies an equivalence class of logically-equivalent
// expressions in the memo.
type GroupId uint32

// ExprId identifies a single memoized m-expression (a node whose children are
// GroupIds rather than materialized subtrees).
type ExprId uint32

// PredId identifies a single memoized predicate node (a node whose children
// are PredIds rather than materialized subtrees).
type PredId uint32

// RuleId identifies a registered transformation or implementation rule.
type RuleId uint32

// InvalidGroup is the zero value sentinel: no valid memo group ever has id 0.
const InvalidGroup GroupId = 0

// TaskId identifies a single scheduled unit of search work, used only for
// tracing and diagnostics; it has no effect on search semantics.
type TaskId uint64
