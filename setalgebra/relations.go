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

package setalgebra

import (
	"github.com/dolthub/structset/settree"
)

// Relation qualifies a positive subset check.
type Relation int

const (
	NotSubset Relation = iota
	ProperSubset
	SameSet
)

func (r Relation) String() string {
	switch r {
	case ProperSubset:
		return "proper subset"
	case SameSet:
		return "same set"
	default:
		return "not a subset"
	}
}

// IsSubsetOf reports whether every member of |a| has a match in |b|,
// qualified as SameSet when the two trees are structurally equal.
// A larger |a| fails fast on cardinality alone.
func IsSubsetOf[T any](a, b *settree.Node[T]) (bool, Relation) {
	if a.Count() > b.Count() {
		return false, NotSubset
	}
	if settree.Equal(a, b) {
		return true, SameSet
	}

	itr := a.Elements()
	for {
		v, ok := itr.Current()
		if !ok {
			break
		}
		if !b.ContainsElement(v) {
			return false, NotSubset
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
			return false, NotSubset
		}
		sub.Advance()
	}
	return true, ProperSubset
}

// IsDisjoint reports whether the operands share no members: removing
// the smaller from the larger must leave the larger unchanged.
func IsDisjoint[T any](a, b *settree.Node[T]) bool {
	larger, smaller := a, b
	if a.Count() < b.Count() {
		larger, smaller = b, a
	}
	return settree.Equal(Without(larger, smaller), larger)
}

// SetStructuresEqual compares the canonical renderings of both
// operands. Empty versus empty is equal.
func SetStructuresEqual[T any](a, b *settree.Node[T]) bool {
	return settree.Render(a) == settree.Render(b)
}
