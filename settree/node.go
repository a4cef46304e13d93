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

import (
	"github.com/dolthub/structset/ordered"
)

// Info summarizes a node at its current state.
type Info struct {
	IsEmptyTree      bool
	HasNullElements  bool
	NullElementCount int
}

// Node is one nesting level of a structured set. A node exclusively
// owns its collections and, transitively, every descendant node: the
// structure is a strict tree, never a DAG. Subtrees entering through
// AddSubtree are deep-copied to preserve that ownership.
//
// Nodes are not safe for concurrent mutation.
type Node[T any] struct {
	elements *ordered.Collection[T]
	subsets  *ordered.Collection[*Node[T]]
	cfg      *Config[T]

	// nullElements counts all-blank records seen while parsing.
	// They are not members; they only survive as a rendering
	// placeholder.
	nullElements int
}

func NewNode[T any](cfg *Config[T]) *Node[T] {
	return &Node[T]{
		elements: ordered.NewCollection[T](cfg.Compare),
		subsets:  ordered.NewCollection[*Node[T]](Compare[T]),
		cfg:      cfg,
	}
}

func (n *Node[T]) Config() *Config[T] {
	return n.cfg
}

// Count is the node's cardinality: leaf elements plus direct subtrees.
func (n *Node[T]) Count() int {
	return n.elements.Count() + n.subsets.Count()
}

func (n *Node[T]) ElementCount() int {
	return n.elements.Count()
}

func (n *Node[T]) SubtreeCount() int {
	return n.subsets.Count()
}

func (n *Node[T]) IsEmpty() bool {
	return n.Count() == 0
}

func (n *Node[T]) HasNullElements() bool {
	return n.nullElements > 0
}

func (n *Node[T]) NullElementCount() int {
	return n.nullElements
}

func (n *Node[T]) Info() Info {
	return Info{
		IsEmptyTree:      n.IsEmpty(),
		HasNullElements:  n.HasNullElements(),
		NullElementCount: n.nullElements,
	}
}

// AddNullElement records one discarded all-blank record.
func (n *Node[T]) AddNullElement() {
	n.nullElements++
}

// AddElement inserts |v|, silently absorbing duplicates. It reports
// whether the element was newly added.
func (n *Node[T]) AddElement(v T) bool {
	return n.elements.Insert(v)
}

// AddSubtree inserts a deep copy of |child|, silently absorbing
// structural duplicates. The caller keeps ownership of |child|.
func (n *Node[T]) AddSubtree(child *Node[T]) bool {
	if child == nil {
		panic("subtree must be non-nil")
	}
	return n.subsets.Insert(child.Clone())
}

// AttachSubtree inserts |child| without copying; ownership transfers
// to |n| and the caller must not retain or mutate |child| afterwards.
// The parser builds trees bottom-up through this.
func (n *Node[T]) AttachSubtree(child *Node[T]) bool {
	if child == nil {
		panic("subtree must be non-nil")
	}
	return n.subsets.Insert(child)
}

// RemoveElement reports whether an equal element was removed.
func (n *Node[T]) RemoveElement(v T) bool {
	_, ok := n.elements.Remove(v)
	return ok
}

// RemoveSubtree removes the subtree structurally equal to |child|.
func (n *Node[T]) RemoveSubtree(child *Node[T]) bool {
	if child == nil {
		return false
	}
	_, ok := n.subsets.Remove(child)
	return ok
}

func (n *Node[T]) ContainsElement(v T) bool {
	return n.elements.Contains(v)
}

// ContainsSubtree matches by structural equality, never by identity.
func (n *Node[T]) ContainsSubtree(child *Node[T]) bool {
	if child == nil {
		return false
	}
	return n.subsets.Contains(child)
}

func (n *Node[T]) IndexOfElement(v T) int {
	return n.elements.IndexOf(v)
}

func (n *Node[T]) IndexOfSubtree(child *Node[T]) int {
	if child == nil {
		return -1
	}
	return n.subsets.IndexOf(child)
}

func (n *Node[T]) ElementAt(idx int) (T, error) {
	return n.elements.GetAt(idx)
}

func (n *Node[T]) SubtreeAt(idx int) (*Node[T], error) {
	return n.subsets.GetAt(idx)
}

// Elements returns a fresh iterator over leaf elements in canonical
// order. Each call restarts from the smallest element.
func (n *Node[T]) Elements() *ordered.Iter[T] {
	return n.elements.IterAtStart()
}

// Subtrees returns a fresh iterator over direct subtrees in canonical
// order.
func (n *Node[T]) Subtrees() *ordered.Iter[*Node[T]] {
	return n.subsets.IterAtStart()
}

func (n *Node[T]) ElementSlice() []T {
	return n.elements.Slice()
}

func (n *Node[T]) SubtreeSlice() []*Node[T] {
	return n.subsets.Slice()
}

// Clear resets the node to an empty tree, discarding all descendants.
func (n *Node[T]) Clear() {
	n.elements.Clear()
	n.subsets.Clear()
	n.nullElements = 0
}

// Clone deep-copies the node and every descendant.
func (n *Node[T]) Clone() *Node[T] {
	out := NewNode(n.cfg)
	out.nullElements = n.nullElements

	itr := n.elements.IterAtStart()
	for {
		v, ok := itr.Current()
		if !ok {
			break
		}
		out.elements.Insert(v)
		itr.Advance()
	}

	sub := n.subsets.IterAtStart()
	for {
		child, ok := sub.Current()
		if !ok {
			break
		}
		out.subsets.Insert(child.Clone())
		sub.Advance()
	}
	return out
}
