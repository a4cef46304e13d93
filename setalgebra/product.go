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
	"github.com/dolthub/structset/ordered"
	"github.com/dolthub/structset/settree"
)

// Item is one operand of a product pair: a leaf element, or a
// subtree when IsSubtree is set. Subtree items alias the operand's
// internal nodes and must be treated as read-only.
type Item[T any] struct {
	Elem      T
	Subtree   *settree.Node[T]
	IsSubtree bool
}

// Product lazily yields the cartesian product of two trees: the left
// operand's elements then its subtrees, each paired against the right
// operand's elements then its subtrees, in that fixed order. The
// sequence is finite and consumed in one pass; build a new Product to
// iterate again.
type Product[T any] struct {
	right *settree.Node[T]

	leftElems *ordered.Iter[T]
	leftSubs  *ordered.Iter[*settree.Node[T]]
	left      Item[T]
	leftOk    bool

	rightElems *ordered.Iter[T]
	rightSubs  *ordered.Iter[*settree.Node[T]]

	size int
}

func CartesianProduct[T any](a, b *settree.Node[T]) *Product[T] {
	p := &Product[T]{
		right:     b,
		leftElems: a.Elements(),
		leftSubs:  a.Subtrees(),
		size:      a.Count() * b.Count(),
	}
	p.advanceLeft()
	return p
}

// Size is the total number of pairs the product yields:
// (|a.elements| + |a.subtrees|) * (|b.elements| + |b.subtrees|).
func (p *Product[T]) Size() int {
	return p.size
}

// Next returns the next pair, or ok == false once the product is
// exhausted.
func (p *Product[T]) Next() (left, right Item[T], ok bool) {
	for p.leftOk {
		if v, have := p.rightElems.Current(); have {
			p.rightElems.Advance()
			return p.left, Item[T]{Elem: v}, true
		}
		if child, have := p.rightSubs.Current(); have {
			p.rightSubs.Advance()
			return p.left, Item[T]{Subtree: child, IsSubtree: true}, true
		}
		p.advanceLeft()
	}
	return left, right, false
}

// advanceLeft steps the outer operand and rewinds the inner one.
func (p *Product[T]) advanceLeft() {
	if v, ok := p.leftElems.Current(); ok {
		p.leftElems.Advance()
		p.left = Item[T]{Elem: v}
	} else if child, ok := p.leftSubs.Current(); ok {
		p.leftSubs.Advance()
		p.left = Item[T]{Subtree: child, IsSubtree: true}
	} else {
		p.leftOk = false
		return
	}
	p.leftOk = true
	p.rightElems = p.right.Elements()
	p.rightSubs = p.right.Subtrees()
}
