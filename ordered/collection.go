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

// Package ordered implements a red-black tree collection of unique,
// totally-ordered values. Nodes live in an arena addressed by index,
// so parent links are ids rather than back-references.
package ordered

import (
	"math"

	"gopkg.in/src-d/go-errors.v1"
)

const (
	maxCount   = math.MaxUint32 - 1
	sentinelId = nodeId(0)
)

var ErrIndexOutOfRange = errors.NewKind("index %d out of range for collection of size %d")

// CompareFn is a three-way comparison over values of type T.
// It must define a total order: negative for l < r, zero for
// equal, positive for l > r. Values comparing equal are the
// same value as far as the collection is concerned.
type CompareFn[T any] func(l, r T) int

type nodeId uint32

// rbNode is one arena slot. |size| counts the nodes in the
// subtree rooted here, sentinel excluded, and is what makes
// rank and positional access O(log n).
type rbNode[T any] struct {
	val T

	parent, left, right nodeId
	size                uint32
	red                 bool
}

// Collection is a set of unique values of type T kept in the
// order defined by its CompareFn. The zero id is a shared black
// sentinel; its parent field is scratch space for the removal
// fixup walk.
type Collection[T any] struct {
	nodes   []rbNode[T]
	root    nodeId
	free    nodeId
	compare CompareFn[T]
}

func NewCollection[T any](compare CompareFn[T]) *Collection[T] {
	nodes := make([]rbNode[T], 1, 8)
	return &Collection[T]{
		nodes:   nodes,
		root:    sentinelId,
		free:    sentinelId,
		compare: compare,
	}
}

func (c *Collection[T]) Count() int {
	return int(c.nodes[c.root].size)
}

// Insert adds |v| to the collection. It returns false, without
// modifying the collection, if an equal value is already present.
func (c *Collection[T]) Insert(v T) bool {
	if len(c.nodes) >= maxCount {
		panic("collection has no capacity")
	}

	y := sentinelId
	x := c.root
	cmp := 0
	for x != sentinelId {
		y = x
		cmp = c.compare(v, c.nodes[x].val)
		if cmp == 0 {
			return false
		}
		if cmp < 0 {
			x = c.nodes[x].left
		} else {
			x = c.nodes[x].right
		}
	}

	z := c.alloc(v)
	c.nodes[z].parent = y
	if y == sentinelId {
		c.root = z
	} else if cmp < 0 {
		c.nodes[y].left = z
	} else {
		c.nodes[y].right = z
	}

	for p := y; p != sentinelId; p = c.nodes[p].parent {
		c.nodes[p].size++
	}

	c.insertFixup(z)
	return true
}

// Remove removes the value equal to |v|, returning the removed
// value and whether a removal occurred.
func (c *Collection[T]) Remove(v T) (removed T, ok bool) {
	z := c.find(v)
	if z == sentinelId {
		return removed, false
	}
	removed = c.nodes[z].val
	c.deleteNode(z)
	return removed, true
}

// RemoveAt removes the value at in-order position |idx|.
func (c *Collection[T]) RemoveAt(idx int) (removed T, err error) {
	z, err := c.selectAt(idx)
	if err != nil {
		return removed, err
	}
	removed = c.nodes[z].val
	c.deleteNode(z)
	return removed, nil
}

func (c *Collection[T]) Contains(v T) bool {
	return c.find(v) != sentinelId
}

// Get returns the stored value equal to |v|. The stored value can
// differ from |v| in fields the comparator does not inspect.
func (c *Collection[T]) Get(v T) (stored T, ok bool) {
	x := c.find(v)
	if x == sentinelId {
		return stored, false
	}
	return c.nodes[x].val, true
}

// IndexOf returns the in-order rank of |v|, or -1 if absent.
func (c *Collection[T]) IndexOf(v T) int {
	rank := 0
	x := c.root
	for x != sentinelId {
		cmp := c.compare(v, c.nodes[x].val)
		if cmp < 0 {
			x = c.nodes[x].left
		} else if cmp > 0 {
			rank += int(c.nodes[c.nodes[x].left].size) + 1
			x = c.nodes[x].right
		} else {
			return rank + int(c.nodes[c.nodes[x].left].size)
		}
	}
	return -1
}

// GetAt returns the value at in-order position |idx|.
func (c *Collection[T]) GetAt(idx int) (v T, err error) {
	x, err := c.selectAt(idx)
	if err != nil {
		return v, err
	}
	return c.nodes[x].val, nil
}

// Clear resets the collection to empty, retaining the arena's
// allocated capacity.
func (c *Collection[T]) Clear() {
	c.nodes = c.nodes[:1]
	c.nodes[0] = rbNode[T]{}
	c.root = sentinelId
	c.free = sentinelId
}

// Slice returns the values in order.
func (c *Collection[T]) Slice() []T {
	vals := make([]T, 0, c.Count())
	itr := c.IterAtStart()
	for {
		v, ok := itr.Current()
		if !ok {
			break
		}
		vals = append(vals, v)
		itr.Advance()
	}
	return vals
}

type Iter[T any] struct {
	curr nodeId
	coll *Collection[T]
}

// IterAtStart returns an iterator positioned on the smallest
// value. Iterators observe a fixed snapshot only if the
// collection is not mutated while they are live.
func (c *Collection[T]) IterAtStart() *Iter[T] {
	return &Iter[T]{
		curr: c.minimum(c.root),
		coll: c,
	}
}

func (it *Iter[T]) Current() (v T, ok bool) {
	if it.curr == sentinelId {
		return v, false
	}
	return it.coll.nodes[it.curr].val, true
}

func (it *Iter[T]) Advance() {
	if it.curr == sentinelId {
		return
	}
	it.curr = it.coll.successor(it.curr)
}

func (c *Collection[T]) find(v T) nodeId {
	x := c.root
	for x != sentinelId {
		cmp := c.compare(v, c.nodes[x].val)
		if cmp == 0 {
			return x
		}
		if cmp < 0 {
			x = c.nodes[x].left
		} else {
			x = c.nodes[x].right
		}
	}
	return sentinelId
}

// selectAt is order-statistic selection on the size-augmented tree.
func (c *Collection[T]) selectAt(idx int) (nodeId, error) {
	if idx < 0 || idx >= c.Count() {
		return sentinelId, ErrIndexOutOfRange.New(idx, c.Count())
	}
	x := c.root
	for {
		leftSize := int(c.nodes[c.nodes[x].left].size)
		if idx < leftSize {
			x = c.nodes[x].left
		} else if idx > leftSize {
			idx -= leftSize + 1
			x = c.nodes[x].right
		} else {
			return x, nil
		}
	}
}

func (c *Collection[T]) minimum(x nodeId) nodeId {
	if x == sentinelId {
		return sentinelId
	}
	for c.nodes[x].left != sentinelId {
		x = c.nodes[x].left
	}
	return x
}

func (c *Collection[T]) successor(x nodeId) nodeId {
	if c.nodes[x].right != sentinelId {
		return c.minimum(c.nodes[x].right)
	}
	p := c.nodes[x].parent
	for p != sentinelId && x == c.nodes[p].right {
		x = p
		p = c.nodes[p].parent
	}
	return p
}

func (c *Collection[T]) alloc(v T) nodeId {
	if c.free != sentinelId {
		z := c.free
		c.free = c.nodes[z].right
		c.nodes[z] = rbNode[T]{val: v, size: 1, red: true}
		return z
	}
	z := nodeId(len(c.nodes))
	c.nodes = append(c.nodes, rbNode[T]{val: v, size: 1, red: true})
	return z
}

// release threads the slot onto the free list through its right
// link and zeroes the value so the arena doesn't pin garbage.
func (c *Collection[T]) release(z nodeId) {
	c.nodes[z] = rbNode[T]{right: c.free}
	c.free = z
}

// rotateLeft pivots |x| down-left. The pivot inherits |x|'s
// subtree size; |x| recomputes from its new children.
func (c *Collection[T]) rotateLeft(x nodeId) {
	y := c.nodes[x].right
	c.nodes[x].right = c.nodes[y].left
	if c.nodes[y].left != sentinelId {
		c.nodes[c.nodes[y].left].parent = x
	}
	p := c.nodes[x].parent
	c.nodes[y].parent = p
	if p == sentinelId {
		c.root = y
	} else if c.nodes[p].left == x {
		c.nodes[p].left = y
	} else {
		c.nodes[p].right = y
	}
	c.nodes[y].left = x
	c.nodes[x].parent = y

	c.nodes[y].size = c.nodes[x].size
	c.nodes[x].size = c.nodes[c.nodes[x].left].size + c.nodes[c.nodes[x].right].size + 1
}

func (c *Collection[T]) rotateRight(x nodeId) {
	y := c.nodes[x].left
	c.nodes[x].left = c.nodes[y].right
	if c.nodes[y].right != sentinelId {
		c.nodes[c.nodes[y].right].parent = x
	}
	p := c.nodes[x].parent
	c.nodes[y].parent = p
	if p == sentinelId {
		c.root = y
	} else if c.nodes[p].right == x {
		c.nodes[p].right = y
	} else {
		c.nodes[p].left = y
	}
	c.nodes[y].right = x
	c.nodes[x].parent = y

	c.nodes[y].size = c.nodes[x].size
	c.nodes[x].size = c.nodes[c.nodes[x].left].size + c.nodes[c.nodes[x].right].size + 1
}

// insertFixup restores the red-black invariants after inserting
// the red node |z|: case analysis on the uncle's color, at most
// one rotation pair per level of ascent.
func (c *Collection[T]) insertFixup(z nodeId) {
	for c.nodes[c.nodes[z].parent].red {
		p := c.nodes[z].parent
		g := c.nodes[p].parent
		if p == c.nodes[g].left {
			u := c.nodes[g].right
			if c.nodes[u].red {
				c.nodes[p].red = false
				c.nodes[u].red = false
				c.nodes[g].red = true
				z = g
			} else {
				if z == c.nodes[p].right {
					z = p
					c.rotateLeft(z)
					p = c.nodes[z].parent
					g = c.nodes[p].parent
				}
				c.nodes[p].red = false
				c.nodes[g].red = true
				c.rotateRight(g)
			}
		} else {
			u := c.nodes[g].left
			if c.nodes[u].red {
				c.nodes[p].red = false
				c.nodes[u].red = false
				c.nodes[g].red = true
				z = g
			} else {
				if z == c.nodes[p].left {
					z = p
					c.rotateRight(z)
					p = c.nodes[z].parent
					g = c.nodes[p].parent
				}
				c.nodes[p].red = false
				c.nodes[g].red = true
				c.rotateLeft(g)
			}
		}
	}
	c.nodes[c.root].red = false
}

// transplant replaces the subtree rooted at |u| with the subtree
// rooted at |v|. |v|'s parent is set unconditionally so the fixup
// walk can start from the sentinel.
func (c *Collection[T]) transplant(u, v nodeId) {
	p := c.nodes[u].parent
	if p == sentinelId {
		c.root = v
	} else if c.nodes[p].left == u {
		c.nodes[p].left = v
	} else {
		c.nodes[p].right = v
	}
	c.nodes[v].parent = p
}

func (c *Collection[T]) deleteNode(z nodeId) {
	// the physically removed slot is |z| itself, or its in-order
	// successor when |z| has two children; every ancestor of that
	// slot loses one descendant. Sizes are settled before any
	// links move.
	removed := z
	if c.nodes[z].left != sentinelId && c.nodes[z].right != sentinelId {
		removed = c.minimum(c.nodes[z].right)
	}
	for p := c.nodes[removed].parent; p != sentinelId; p = c.nodes[p].parent {
		c.nodes[p].size--
	}

	y := z
	yWasRed := c.nodes[y].red
	var x nodeId

	if c.nodes[z].left == sentinelId {
		x = c.nodes[z].right
		c.transplant(z, x)
	} else if c.nodes[z].right == sentinelId {
		x = c.nodes[z].left
		c.transplant(z, x)
	} else {
		y = removed
		yWasRed = c.nodes[y].red
		x = c.nodes[y].right
		if c.nodes[y].parent == z {
			c.nodes[x].parent = y
		} else {
			c.transplant(y, x)
			c.nodes[y].right = c.nodes[z].right
			c.nodes[c.nodes[y].right].parent = y
		}
		c.transplant(z, y)
		c.nodes[y].left = c.nodes[z].left
		c.nodes[c.nodes[y].left].parent = y
		c.nodes[y].red = c.nodes[z].red
		c.nodes[y].size = c.nodes[c.nodes[y].left].size + c.nodes[c.nodes[y].right].size + 1
	}

	if !yWasRed {
		c.deleteFixup(x)
	}
	c.release(z)
}

// deleteFixup resolves the double-black deficit at |x| by walking
// toward the root. Four cases per side: red sibling rotates into
// a black-sibling case; black sibling with two black children
// pushes the deficit up; a near red child rotates into the far
// case; a far red child rotates at the parent and terminates.
func (c *Collection[T]) deleteFixup(x nodeId) {
	for x != c.root && !c.nodes[x].red {
		p := c.nodes[x].parent
		if x == c.nodes[p].left {
			w := c.nodes[p].right
			if c.nodes[w].red {
				c.nodes[w].red = false
				c.nodes[p].red = true
				c.rotateLeft(p)
				w = c.nodes[p].right
			}
			if !c.nodes[c.nodes[w].left].red && !c.nodes[c.nodes[w].right].red {
				c.nodes[w].red = true
				x = p
			} else {
				if !c.nodes[c.nodes[w].right].red {
					c.nodes[c.nodes[w].left].red = false
					c.nodes[w].red = true
					c.rotateRight(w)
					w = c.nodes[p].right
				}
				c.nodes[w].red = c.nodes[p].red
				c.nodes[p].red = false
				c.nodes[c.nodes[w].right].red = false
				c.rotateLeft(p)
				x = c.root
			}
		} else {
			w := c.nodes[p].left
			if c.nodes[w].red {
				c.nodes[w].red = false
				c.nodes[p].red = true
				c.rotateRight(p)
				w = c.nodes[p].left
			}
			if !c.nodes[c.nodes[w].left].red && !c.nodes[c.nodes[w].right].red {
				c.nodes[w].red = true
				x = p
			} else {
				if !c.nodes[c.nodes[w].left].red {
					c.nodes[c.nodes[w].right].red = false
					c.nodes[w].red = true
					c.rotateLeft(w)
					w = c.nodes[p].left
				}
				c.nodes[w].red = c.nodes[p].red
				c.nodes[p].red = false
				c.nodes[c.nodes[w].left].red = false
				c.rotateRight(p)
				x = c.root
			}
		}
	}
	c.nodes[x].red = false
}
