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

package settree

// Compare defines the total order over trees used to keep subtree
// collections canonical. Trees of smaller cardinality sort first;
// trees of equal cardinality compare their element sequences, then
// their subtree sequences, lexicographically and recursively. The
// order is structural: two distinct nodes with the same sorted
// contents compare equal.
func Compare[T any](a, b *Node[T]) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if ac, bc := a.Count(), b.Count(); ac != bc {
		if ac < bc {
			return -1
		}
		return 1
	}

	ai, bi := a.elements.IterAtStart(), b.elements.IterAtStart()
	for {
		av, aok := ai.Current()
		bv, bok := bi.Current()
		if !aok && !bok {
			break
		}
		if !aok {
			return -1
		}
		if !bok {
			return 1
		}
		if cmp := a.cfg.Compare(av, bv); cmp != 0 {
			return cmp
		}
		ai.Advance()
		bi.Advance()
	}

	as, bs := a.subsets.IterAtStart(), b.subsets.IterAtStart()
	for {
		av, aok := as.Current()
		bv, bok := bs.Current()
		if !aok && !bok {
			break
		}
		if !aok {
			return -1
		}
		if !bok {
			return 1
		}
		if cmp := Compare(av, bv); cmp != 0 {
			return cmp
		}
		as.Advance()
		bs.Advance()
	}
	return 0
}

// Equal reports structural equality of two trees.
func Equal[T any](a, b *Node[T]) bool {
	return Compare(a, b) == 0
}
