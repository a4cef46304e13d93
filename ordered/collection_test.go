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

package ordered

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var src = rand.New(rand.NewSource(0))

func TestCollection(t *testing.T) {
	t.Run("small int collection", func(t *testing.T) {
		testCollection(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	})
	t.Run("random ints", func(t *testing.T) {
		testCollection(t, randomInts((src.Int63()%5_000)+100)...)
	})
	t.Run("strings with custom compare", func(t *testing.T) {
		c := NewCollection[string](strings.Compare)
		for _, s := range []string{"pear", "apple", "mango", "fig", "apple"} {
			c.Insert(s)
		}
		assert.Equal(t, 4, c.Count())
		assert.Equal(t, []string{"apple", "fig", "mango", "pear"}, c.Slice())
	})
}

func testCollection(t *testing.T, vals ...int) {
	vals = dedupe(vals)
	shuffled := make([]int, len(vals))
	copy(shuffled, vals)
	src.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	c := NewCollection[int](compareInts)
	for _, v := range shuffled {
		assert.True(t, c.Insert(v))
	}
	validateTree(t, c)

	t.Run("duplicates rejected", func(t *testing.T) {
		for _, v := range shuffled {
			assert.False(t, c.Insert(v))
		}
		assert.Equal(t, len(vals), c.Count())
	})
	t.Run("contains and rank", func(t *testing.T) {
		sorted := make([]int, len(vals))
		copy(sorted, vals)
		sort.Ints(sorted)
		for i, v := range sorted {
			assert.True(t, c.Contains(v))
			assert.Equal(t, i, c.IndexOf(v))
			got, err := c.GetAt(i)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
		assert.Equal(t, -1, c.IndexOf(-1))
		assert.False(t, c.Contains(-1))
	})
	t.Run("iteration is sorted", func(t *testing.T) {
		got := c.Slice()
		assert.True(t, sort.IntsAreSorted(got))
		assert.Equal(t, len(vals), len(got))
	})
	t.Run("out of range", func(t *testing.T) {
		_, err := c.GetAt(-1)
		assert.True(t, ErrIndexOutOfRange.Is(err))
		_, err = c.GetAt(c.Count())
		assert.True(t, ErrIndexOutOfRange.Is(err))
		_, err = c.RemoveAt(c.Count())
		assert.True(t, ErrIndexOutOfRange.Is(err))
	})
}

func TestRemove(t *testing.T) {
	vals := dedupe(randomInts((src.Int63() % 2_000) + 100))
	c := NewCollection[int](compareInts)
	for _, v := range vals {
		c.Insert(v)
	}

	t.Run("remove absent value", func(t *testing.T) {
		_, ok := c.Remove(-1)
		assert.False(t, ok)
		assert.Equal(t, len(vals), c.Count())
	})
	t.Run("remove half by value", func(t *testing.T) {
		src.Shuffle(len(vals), func(i, j int) {
			vals[i], vals[j] = vals[j], vals[i]
		})
		half := len(vals) / 2
		for _, v := range vals[:half] {
			removed, ok := c.Remove(v)
			assert.True(t, ok)
			assert.Equal(t, v, removed)
			validateTree(t, c)
		}
		for _, v := range vals[:half] {
			assert.False(t, c.Contains(v))
		}
		for _, v := range vals[half:] {
			assert.True(t, c.Contains(v))
		}
	})
	t.Run("remove rest by index", func(t *testing.T) {
		for c.Count() > 0 {
			idx := int(src.Int63()) % c.Count()
			want, err := c.GetAt(idx)
			require.NoError(t, err)
			got, err := c.RemoveAt(idx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			validateTree(t, c)
		}
	})
	t.Run("arena slots are reused", func(t *testing.T) {
		before := len(c.nodes)
		for i := 0; i < before*2; i++ {
			c.Insert(i)
			c.Remove(i)
		}
		assert.LessOrEqual(t, len(c.nodes), before+1)
	})
}

func TestInterleavedMutation(t *testing.T) {
	c := NewCollection[int](compareInts)
	present := map[int]struct{}{}
	for i := 0; i < 10_000; i++ {
		v := int(src.Int63() % 500)
		if src.Int63()%3 == 0 {
			_, ok := c.Remove(v)
			_, want := present[v]
			assert.Equal(t, want, ok)
			delete(present, v)
		} else {
			_, dup := present[v]
			assert.Equal(t, !dup, c.Insert(v))
			present[v] = struct{}{}
		}
	}
	validateTree(t, c)
	assert.Equal(t, len(present), c.Count())
}

func TestClear(t *testing.T) {
	c := NewCollection[int](compareInts)
	for _, v := range randomInts(100) {
		c.Insert(v)
	}
	c.Clear()
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, []int{}, c.Slice())
	assert.True(t, c.Insert(42))
	assert.Equal(t, 1, c.Count())
}

// validateTree walks the arena checking the red-black invariants:
// black root, no red node with a red parent, equal black-height on
// every root-to-leaf path, consistent subtree sizes, sorted order.
func validateTree[T any](t *testing.T, c *Collection[T]) {
	require.False(t, c.nodes[c.root].red, "root must be black")
	require.False(t, c.nodes[sentinelId].red, "sentinel must be black")
	blackHeight, size := walkSubtree(t, c, c.root)
	require.GreaterOrEqual(t, blackHeight, 0)
	require.Equal(t, c.Count(), size)

	vals := c.Slice()
	for i := 1; i < len(vals); i++ {
		require.Negative(t, c.compare(vals[i-1], vals[i]))
	}
}

func walkSubtree[T any](t *testing.T, c *Collection[T], x nodeId) (blackHeight, size int) {
	if x == sentinelId {
		return 0, 0
	}
	nd := c.nodes[x]
	if nd.red {
		require.False(t, c.nodes[nd.left].red, "red node with red child")
		require.False(t, c.nodes[nd.right].red, "red node with red child")
	}
	lh, ls := walkSubtree(t, c, nd.left)
	rh, rs := walkSubtree(t, c, nd.right)
	require.Equal(t, lh, rh, "unequal black-height")
	require.Equal(t, ls+rs+1, int(nd.size), "inconsistent subtree size")

	blackHeight = lh
	if !nd.red {
		blackHeight++
	}
	return blackHeight, ls + rs + 1
}

func compareInts(l, r int) int {
	return l - r
}

func randomInts(count int64) []int {
	vals := make([]int, count)
	for i := range vals {
		vals[i] = int(src.Int63() % 100_000)
	}
	return vals
}

func dedupe(vals []int) []int {
	seen := make(map[int]struct{}, len(vals))
	out := vals[:0]
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
