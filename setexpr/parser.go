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

// Package setexpr parses brace-delimited set expressions into settree
// nodes.
//
// Grammar:
//
//	Set        : '{' Body '}'
//	Body       : (Record (RowTerm Record)*)? (RowTerm SubsetExpr)*
//	SubsetExpr : Set
//	Record     : Field (FieldTerm Field)*
//
// RowTerm and FieldTerm come from the extraction configuration. An
// all-blank record is an explicit empty marker, not an error.
package setexpr

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/structset/settree"
)

var (
	ErrInvalidExpression = errors.NewKind("expression must begin with '{' and end with '}', got %q")
	ErrUnbalancedBrace   = errors.NewKind("unbalanced brace at offset %d")
	ErrConversion        = errors.NewKind("cannot convert record %q to %s")
)

// ValidateBraces scans |expr| with an explicit brace stack and
// returns an error naming the byte offset of the first structurally
// invalid brace: an unmatched '}' at its own offset, or the last
// unterminated '{'.
func ValidateBraces(expr string) error {
	var stack []int
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '{':
			stack = append(stack, i)
		case '}':
			if len(stack) == 0 {
				return ErrUnbalancedBrace.New(i)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return ErrUnbalancedBrace.New(stack[len(stack)-1])
	}
	return nil
}

// Parse decomposes |expr| into a tree of unique, ordered elements and
// unique, ordered subtrees. The whole input is validated up front and
// any structural or conversion failure rejects the whole expression;
// there is no partial recovery.
func Parse[T any](expr string, cfg *settree.Config[T]) (*settree.Node[T], error) {
	trimmed := strings.TrimSpace(expr)
	if len(trimmed) < 2 || trimmed[0] != '{' || trimmed[len(trimmed)-1] != '}' {
		return nil, ErrInvalidExpression.New(expr)
	}
	if err := ValidateBraces(trimmed); err != nil {
		return nil, err
	}
	// balance alone admits concatenations like "{1}{2}"; the opening
	// brace must be the one closed by the final character.
	depth := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 && i != len(trimmed)-1 {
				return nil, ErrUnbalancedBrace.New(i)
			}
		}
	}
	return parseBody(trimmed[1:len(trimmed)-1], cfg)
}

// parseBody builds one nesting level from the text between a brace
// pair. Depth-zero text accumulates as root records; each depth-zero
// '{' opens a complete subset expression that is parsed recursively.
func parseBody[T any](body string, cfg *settree.Config[T]) (*settree.Node[T], error) {
	node := settree.NewNode(cfg)
	root := make([]byte, 0, len(body))

	i := 0
	for i < len(body) {
		if body[i] != '{' {
			root = append(root, body[i])
			i++
			continue
		}

		// a row terminator directly before a subset's opening brace
		// separates the subset from the preceding record; it is
		// consumed here rather than read as an extra empty record.
		root = swallowTrailingTerminator(root, cfg.RowTerminator)

		j := matchingBrace(body, i)
		child, err := parseBody(body[i+1:j], cfg)
		if err != nil {
			return nil, err
		}
		node.AttachSubtree(child)
		i = j + 1
	}

	if err := addRecords(node, string(root), cfg); err != nil {
		return nil, err
	}
	return node, nil
}

// matchingBrace returns the index of the '}' closing the '{' at
// |open|. Balance has already been validated.
func matchingBrace(body string, open int) int {
	depth := 0
	for i := open; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	panic("unbalanced brace after validation")
}

// swallowTrailingTerminator strips trailing whitespace and then at
// most one row terminator from the accumulated root text.
func swallowTrailingTerminator(root []byte, rowTerm string) []byte {
	end := len(root)
	for end > 0 && isSpace(root[end-1]) {
		end--
	}
	if end >= len(rowTerm) && string(root[end-len(rowTerm):end]) == rowTerm {
		end -= len(rowTerm)
	}
	return root[:end]
}

// addRecords splits the root text into records and records into
// fields, converting each non-blank record into an element.
func addRecords[T any](node *settree.Node[T], rootText string, cfg *settree.Config[T]) error {
	if strings.TrimSpace(rootText) == "" {
		return nil
	}

	for _, record := range strings.Split(rootText, cfg.RowTerminator) {
		fields := strings.Split(record, cfg.FieldTerminator)
		blank := true
		for k, f := range fields {
			fields[k] = strings.TrimSpace(f)
			if fields[k] != "" {
				blank = false
			}
		}
		if blank {
			// an all-blank record is an explicit empty marker
			node.AddNullElement()
			continue
		}

		v, err := cfg.Convert(fields)
		if err != nil {
			var zero T
			return ErrConversion.Wrap(err, strings.TrimSpace(record), fmt.Sprintf("%T", zero))
		}
		node.AddElement(v)
	}
	return nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
