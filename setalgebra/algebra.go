// Copyright 2025 Dolthub, Inc.
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

// Package setalgebra implements pure algebraic operations over set
// trees. Operations never mutate their operands; every result is a
// newly built tree.
package setalgebra

import (
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/structset/setexpr"
	"github.com/dolthub/structset/settree"
)

var ErrComplementCardinality = errors.NewKind("complement requires the set's cardinality (%d) to be at most the universal set's (%d)")

// Without returns the members of |a| with no counterpart in |b|:
// elements absent by the comparator, subtrees absent by structural
// equality.
func Without[T any](a, b *settree.Node[T]) *settree.Node[T] {
	out := settree.NewNode(a.Config())

	itr := a.Elements()
	for {
		v, ok := itr.Current()
		if !ok {
			break
		}
		if !b.ContainsElement(v) {
			out.AddElement(v)
		}
		itr.Advance()
	}

	sub := a.Subtrees()
	for {
		child, ok := sub.Current()
		if !ok {
			break
		}
		if !b.ContainsSubtree(child) {
			out.AddSubtree(child)
		}
		sub.Advance()
	}
	return out
}

// MergeWith is the union building block: both operands' canonical
// texts are concatenated with their boundary braces removed and the
// result is reparsed, so ordering and deduplication come from
// reconstruction rather than explicit merge logic.
func MergeWith[T any](a, b *settree.Node[T]) (*settree.Node[T], error) {
	cfg := a.Config()
	innerA := stripBraces(settree.Render(a))
	innerB := stripBraces(settree.Render(b))

	var body string
	switch {
	case innerA == "":
		body = innerB
	case innerB == "":
		body = innerA
	default:
		body = innerA + cfg.RowTerminator + innerB
	}
	return setexpr.Parse("{"+body+"}", cfg)
}

// UnionWith returns the union of |a| and |b|.
func UnionWith[T any](a, b *settree.Node[T]) (*settree.Node[T], error) {
	return MergeWith(a, b)
}

// IntersectWith returns the members present in both operands.
func IntersectWith[T any](a, b *settree.Node[T]) *settree.Node[T] {
	small, large := a, b
	if b.Count() < a.Count() {
		small, large = b, a
	}
	out := settree.NewNode(a.Config())

	itr := small.Elements()
	for {
		v, ok := itr.Current()
		if !ok {
			break
		}
		if large.ContainsElement(v) {
			out.AddElement(v)
		}
		itr.Advance()
	}

	sub := small.Subtrees()
	for {
		child, ok := sub.Current()
		if !ok {
			break
		}
		if large.ContainsSubtree(child) {
			out.AddSubtree(child)
		}
		sub.Advance()
	}
	return out
}

// Difference returns |a| minus |b|.
func Difference[T any](a, b *settree.Node[T]) *settree.Node[T] {
	return Without(a, b)
}

// SymmetricDifference returns the members in exactly one operand.
func SymmetricDifference[T any](a, b *settree.Node[T]) (*settree.Node[T], error) {
	return UnionWith(Without(a, b), Without(b, a))
}

// Complement returns |universal| minus |a|. The set must not be
// larger than the universal set.
func Complement[T any](a, universal *settree.Node[T]) (*settree.Node[T], error) {
	if a.Count() > universal.Count() {
		return nil, ErrComplementCardinality.New(a.Count(), universal.Count())
	}
	if a.IsEmpty() {
		return universal.Clone(), nil
	}
	return Without(universal, a), nil
}

func stripBraces(rendered string) string {
	return rendered[1 : len(rendered)-1]
}
