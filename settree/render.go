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
	"strings"
)

// RenderOpts adjusts presentation details of the canonical text.
type RenderOpts struct {
	// EmptySetText replaces the default "{}" marker for empty trees.
	EmptySetText string
}

// Render produces the canonical text for |n|: root elements in
// canonical order, then the empty-record placeholder (at most once,
// unless the configuration ignores empty sets), then each subtree
// rendered recursively, all joined by the row terminator. The output
// depends only on the tree's contents, never on input order, which is
// what makes structural equality checkable by string comparison.
func Render[T any](n *Node[T]) string {
	return RenderWith(n, RenderOpts{})
}

func RenderWith[T any](n *Node[T], opts RenderOpts) string {
	empty := opts.EmptySetText
	if empty == "" {
		empty = "{}"
	}
	var sb strings.Builder
	renderInto(&sb, n, empty)
	return sb.String()
}

func renderInto[T any](sb *strings.Builder, n *Node[T], empty string) {
	if n.IsEmpty() {
		sb.WriteString(empty)
		return
	}

	row := n.cfg.RowTerminator
	sb.WriteByte('{')
	first := true

	itr := n.elements.IterAtStart()
	for {
		v, ok := itr.Current()
		if !ok {
			break
		}
		if !first {
			sb.WriteString(row)
		}
		sb.WriteString(n.cfg.Format(v))
		first = false
		itr.Advance()
	}

	if n.HasNullElements() && !n.cfg.IgnoreEmptySets {
		if !first {
			sb.WriteString(row)
		}
		sb.WriteString(empty)
		first = false
	}

	sub := n.subsets.IterAtStart()
	for {
		child, ok := sub.Current()
		if !ok {
			break
		}
		if !first {
			sb.WriteString(row)
		}
		renderInto(sb, child, empty)
		first = false
		sub.Advance()
	}

	sb.WriteByte('}')
}
