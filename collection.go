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

package structset

// Collection is an ordered collection of structured sets addressed by
// spreadsheet-column names: the first set is "A", the twenty-seventh
// "AA", and so on. Removing a set shifts the names of every later set
// down, exactly as deleting a spreadsheet column would.
type Collection[T any] struct {
	sets []*StructuredSet[T]
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{}
}

// Add appends |s| and returns its assigned name.
func (c *Collection[T]) Add(s *StructuredSet[T]) string {
	c.sets = append(c.sets, s)
	return ColumnName(len(c.sets) - 1)
}

// Get returns the set currently named |name|.
func (c *Collection[T]) Get(name string) (*StructuredSet[T], bool) {
	idx, ok := columnIndex(name)
	if !ok || idx >= len(c.sets) {
		return nil, false
	}
	return c.sets[idx], true
}

// Remove deletes the set named |name|, shifting later names down.
func (c *Collection[T]) Remove(name string) bool {
	idx, ok := columnIndex(name)
	if !ok || idx >= len(c.sets) {
		return false
	}
	c.sets = append(c.sets[:idx], c.sets[idx+1:]...)
	return true
}

func (c *Collection[T]) Count() int {
	return len(c.sets)
}

func (c *Collection[T]) Clear() {
	c.sets = nil
}

// Names returns the current names in order.
func (c *Collection[T]) Names() []string {
	names := make([]string, len(c.sets))
	for i := range c.sets {
		names[i] = ColumnName(i)
	}
	return names
}

// At returns the set at position |idx|.
func (c *Collection[T]) At(idx int) (*StructuredSet[T], bool) {
	if idx < 0 || idx >= len(c.sets) {
		return nil, false
	}
	return c.sets[idx], true
}

// ColumnName converts a zero-based position to its spreadsheet-column
// name: 0 -> "A", 25 -> "Z", 26 -> "AA".
func ColumnName(idx int) string {
	buf := make([]byte, 0, 8)
	for idx >= 0 {
		buf = append(buf, byte('A'+idx%26))
		idx = idx/26 - 1
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// columnIndex is the inverse of ColumnName. Names are bijective
// base-26 over 'A'..'Z'.
func columnIndex(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	idx := 0
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < 'A' || ch > 'Z' {
			return 0, false
		}
		idx = idx*26 + int(ch-'A') + 1
	}
	return idx - 1, true
}
