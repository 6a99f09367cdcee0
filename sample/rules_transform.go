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

import "github.com/cascadesql/cascadesql/cascade"

type transformRule struct {
	id      cascade.RuleId
	name    string
	pattern cascade.Matcher[Kind]
	apply   func(binding *Rel) ([]*Rel, error)
}

func (r transformRule) Id() cascade.RuleId            { return r.id }
func (r transformRule) Name() string                  { return r.name }
func (r transformRule) Pattern() cascade.Matcher[Kind] { return r.pattern }
func (r transformRule) IsImplementation() bool         { return false }
func (r transformRule) Apply(b *Rel) ([]*Rel, error)   { return r.apply(b) }

// JoinCommuteRule rewrites Join(A, B) into Join(B, A). Column references in
// this sample vocabulary are schema-absolute rather than side-relative, so
// the join predicate carries over unchanged; a real engine would remap
// ColumnRef indices here.
func JoinCommuteRule() cascade.Rule[Kind] {
	return transformRule{
		id:      RuleJoinCommute,
		name:    "JoinCommuteRule",
		pattern: cascade.Match[Kind](KindJoin, cascade.Any[Kind](), cascade.Any[Kind]()),
		apply: func(b *Rel) ([]*Rel, error) {
			jt, _ := b.Data.(JoinType)
			swapped := swapJoinType(jt)
			out := cascade.NewRel[Kind](KindJoin, []*Rel{b.Children[1], b.Children[0]}, b.Preds)
			out.Data = swapped
			return []*Rel{out}, nil
		},
	}
}

func swapJoinType(jt JoinType) JoinType {
	switch jt {
	case JoinLeft:
		return JoinRight
	case JoinRight:
		return JoinLeft
	default:
		return jt
	}
}

// JoinAssocRule rewrites Join(Join(A, B), C) into Join(A, Join(B, C)) for
// inner joins, the left-to-right join reassociation needed to reach every
// join order via repeated application together with JoinCommuteRule.
func JoinAssocRule() cascade.Rule[Kind] {
	return transformRule{
		id:   RuleJoinAssoc,
		name: "JoinAssocRule",
		pattern: cascade.Match[Kind](KindJoin,
			cascade.Match[Kind](KindJoin, cascade.Any[Kind](), cascade.Any[Kind]()),
			cascade.Any[Kind](),
		),
		apply: func(b *Rel) ([]*Rel, error) {
			outer := b
			inner := b.Children[0]
			outerJt, _ := outer.Data.(JoinType)
			innerJt, _ := inner.Data.(JoinType)
			if outerJt != JoinInner || innerJt != JoinInner {
				return nil, nil
			}
			a, bb, c := inner.Children[0], inner.Children[1], outer.Children[1]
			newInner := cascade.NewRel[Kind](KindJoin, []*Rel{bb, c}, outer.Preds)
			newInner.Data = JoinInner
			newOuter := cascade.NewRel[Kind](KindJoin, []*Rel{a, newInner}, inner.Preds)
			newOuter.Data = JoinInner
			return []*Rel{newOuter}, nil
		},
	}
}

// EliminateLimitRule rewrites a Limit node two ways: a Limit with no Skip
// and an unbounded Fetch (<0) passes its child through unchanged, and a
// Limit whose Fetch is exactly zero can never produce a row regardless of
// Skip, so it collapses to an EmptyRelation instead of materializing its
// child at all.
func EliminateLimitRule() cascade.Rule[Kind] {
	return transformRule{
		id:      RuleEliminateLimit,
		name:    "EliminateLimitRule",
		pattern: cascade.Match[Kind](KindLimit, cascade.Any[Kind]()),
		apply: func(b *Rel) ([]*Rel, error) {
			ld, _ := b.Data.(LimitData)
			if ld.Skip == 0 && ld.Fetch < 0 {
				return []*Rel{b.Children[0]}, nil
			}
			if ld.Fetch == 0 {
				return []*Rel{NewEmptyRelation(0)}, nil
			}
			return nil, nil
		},
	}
}

// ProjectMergeRule merges Projection(Projection(child, inner...), outer...)
// into a single Projection(child, outer...), folding away a redundant
// intermediate projection layer.
func ProjectMergeRule() cascade.Rule[Kind] {
	return transformRule{
		id:   RuleProjectMerge,
		name: "ProjectMergeRule",
		pattern: cascade.Match[Kind](KindProjection,
			cascade.Match[Kind](KindProjection, cascade.Any[Kind]()),
		),
		apply: func(b *Rel) ([]*Rel, error) {
			inner := b.Children[0]
			merged := cascade.NewRel[Kind](KindProjection, inner.Children, b.Preds)
			return []*Rel{merged}, nil
		},
	}
}

// EliminateDuplicatedSortExprRule drops repeated column references from a
// single Sort's own key list, keeping only the first (most significant)
// occurrence of each column -- a later repeat of a column already sorted on
// can never refine the order further, regardless of which direction it asks
// for. E.g. `[id DESC, id ASC, name, id]` collapses to `[id DESC, name]`.
func EliminateDuplicatedSortExprRule() cascade.Rule[Kind] {
	return transformRule{
		id:      RuleEliminateDuplicatedSortExpr,
		name:    "EliminateDuplicatedSortExprRule",
		pattern: cascade.Match[Kind](KindSort, cascade.Any[Kind]()),
		apply: func(b *Rel) ([]*Rel, error) {
			keys, _ := b.Data.(SortSignature)
			deduped := dedupSortKeys(keys)
			if len(deduped) == len(keys) {
				return nil, nil
			}
			out := cascade.NewRel[Kind](KindSort, b.Children, b.Preds)
			out.Data = deduped
			return []*Rel{out}, nil
		},
	}
}

// dedupSortKeys keeps the first occurrence of each ColumnIndex in keys,
// dropping any later key over a column a prior, more significant key
// already sorted on.
func dedupSortKeys(keys SortSignature) SortSignature {
	seen := make(map[int]bool, len(keys))
	out := make(SortSignature, 0, len(keys))
	for _, k := range keys {
		if seen[k.ColumnIndex] {
			continue
		}
		seen[k.ColumnIndex] = true
		out = append(out, k)
	}
	return out
}
