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

// Package structset parses brace-delimited set expressions into
// canonical trees and exposes set algebra over them.
//
//	a, _ := structset.ParseInts("{1,2,{3,4,{5}}}")
//	b, _ := structset.ParseInts("{2,3}")
//	u, _ := a.Union(b)
//	fmt.Println(u) // {1,2,3,{3,4,{5}}}
package structset

import (
	"github.com/dolthub/structset/setalgebra"
	"github.com/dolthub/structset/setexpr"
	"github.com/dolthub/structset/settree"
)

// StructuredSet wraps one set tree together with the expression it
// was parsed from. All element-level operations delegate to the tree;
// algebra operations return new sets and never mutate the operands.
type StructuredSet[T any] struct {
	node *settree.Node[T]
	expr string
	cfg  *settree.Config[T]
}

// Parse builds a structured set from |expr| under |cfg|.
func Parse[T any](expr string, cfg *settree.Config[T]) (*StructuredSet[T], error) {
	node, err := setexpr.Parse(expr, cfg)
	if err != nil {
		return nil, err
	}
	return &StructuredSet[T]{node: node, expr: expr, cfg: cfg}, nil
}

// NewEmpty returns an empty structured set under |cfg|.
func NewEmpty[T any](cfg *settree.Config[T]) *StructuredSet[T] {
	return fromNode(settree.NewNode(cfg))
}

// fromNode wraps an owned tree, synthesizing its expression from the
// canonical rendering.
func fromNode[T any](node *settree.Node[T]) *StructuredSet[T] {
	return &StructuredSet[T]{
		node: node,
		expr: settree.Render(node),
		cfg:  node.Config(),
	}
}

// Expression is the original text this set was parsed from.
func (s *StructuredSet[T]) Expression() string {
	return s.expr
}

// String is the canonical rendering, independent of input order.
func (s *StructuredSet[T]) String() string {
	return settree.Render(s.node)
}

// Node exposes the underlying tree. Mutating it through this
// reference bypasses the wrapper; most callers only read.
func (s *StructuredSet[T]) Node() *settree.Node[T] {
	return s.node
}

func (s *StructuredSet[T]) Config() *settree.Config[T] {
	return s.cfg
}

func (s *StructuredSet[T]) Cardinality() int {
	return s.node.Count()
}

func (s *StructuredSet[T]) IsEmpty() bool {
	return s.node.IsEmpty()
}

func (s *StructuredSet[T]) Info() settree.Info {
	return s.node.Info()
}

func (s *StructuredSet[T]) AddElement(v T) bool {
	return s.node.AddElement(v)
}

func (s *StructuredSet[T]) RemoveElement(v T) bool {
	return s.node.RemoveElement(v)
}

func (s *StructuredSet[T]) ContainsElement(v T) bool {
	return s.node.ContainsElement(v)
}

// AddSubset inserts a deep copy of |other|'s tree as a nested subset.
func (s *StructuredSet[T]) AddSubset(other *StructuredSet[T]) bool {
	return s.node.AddSubtree(other.node)
}

func (s *StructuredSet[T]) RemoveSubset(other *StructuredSet[T]) bool {
	return s.node.RemoveSubtree(other.node)
}

func (s *StructuredSet[T]) Clear() {
	s.node.Clear()
	s.expr = settree.Render(s.node)
}

// Clone deep-copies the set.
func (s *StructuredSet[T]) Clone() *StructuredSet[T] {
	out := fromNode(s.node.Clone())
	out.expr = s.expr
	return out
}

func (s *StructuredSet[T]) Union(other *StructuredSet[T]) (*StructuredSet[T], error) {
	node, err := setalgebra.UnionWith(s.node, other.node)
	if err != nil {
		return nil, err
	}
	return fromNode(node), nil
}

func (s *StructuredSet[T]) Intersect(other *StructuredSet[T]) *StructuredSet[T] {
	return fromNode(setalgebra.IntersectWith(s.node, other.node))
}

func (s *StructuredSet[T]) Difference(other *StructuredSet[T]) *StructuredSet[T] {
	return fromNode(setalgebra.Difference(s.node, other.node))
}

func (s *StructuredSet[T]) SymmetricDifference(other *StructuredSet[T]) (*StructuredSet[T], error) {
	node, err := setalgebra.SymmetricDifference(s.node, other.node)
	if err != nil {
		return nil, err
	}
	return fromNode(node), nil
}

func (s *StructuredSet[T]) Complement(universal *StructuredSet[T]) (*StructuredSet[T], error) {
	node, err := setalgebra.Complement(s.node, universal.node)
	if err != nil {
		return nil, err
	}
	return fromNode(node), nil
}

func (s *StructuredSet[T]) IsSubsetOf(other *StructuredSet[T]) (bool, setalgebra.Relation) {
	return setalgebra.IsSubsetOf(s.node, other.node)
}

func (s *StructuredSet[T]) IsDisjoint(other *StructuredSet[T]) bool {
	return setalgebra.IsDisjoint(s.node, other.node)
}

func (s *StructuredSet[T]) CartesianProduct(other *StructuredSet[T]) *setalgebra.Product[T] {
	return setalgebra.CartesianProduct(s.node, other.node)
}

// Equal reports structural equality of the two sets' trees.
func (s *StructuredSet[T]) Equal(other *StructuredSet[T]) bool {
	return setalgebra.SetStructuresEqual(s.node, other.node)
}
