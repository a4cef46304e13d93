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

import (
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/structset/setalgebra"
	"github.com/dolthub/structset/setexpr"
)

func TestParseInts(t *testing.T) {
	s, err := ParseInts("{3,1,2,2,{5,4}}")
	require.NoError(t, err)

	assert.Equal(t, "{3,1,2,2,{5,4}}", s.Expression())
	assert.Equal(t, "{1,2,3,{4,5}}", s.String())
	assert.Equal(t, 4, s.Cardinality())
	assert.True(t, s.ContainsElement(3))
	assert.False(t, s.ContainsElement(9))
}

func TestParseStrings(t *testing.T) {
	s, err := ParseStrings("{pear, apple ,mango,apple}")
	require.NoError(t, err)
	assert.Equal(t, "{apple,mango,pear}", s.String())
	assert.Equal(t, 3, s.Cardinality())
}

func TestParseFloats(t *testing.T) {
	s, err := ParseFloats("{2.5,1.25,2.50}")
	require.NoError(t, err)
	assert.Equal(t, "{1.25,2.5}", s.String())
}

func TestParseDecimals(t *testing.T) {
	s, err := ParseDecimals("{0.30,0.1,0.3}")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Cardinality(), "0.30 and 0.3 compare equal")
	assert.True(t, s.ContainsElement(decimal.RequireFromString("0.3")))
}

func TestParseObjects(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	cfg, err := NewObjectConfig(",", ";",
		func(fields []string) (person, error) {
			if len(fields) != 2 {
				return person{}, strconv.ErrSyntax
			}
			age, err := strconv.Atoi(fields[1])
			if err != nil {
				return person{}, err
			}
			return person{fields[0], age}, nil
		},
		func(p person) string {
			return p.name + ";" + strconv.Itoa(p.age)
		},
		func(l, r person) int {
			if cmp := strings.Compare(l.name, r.name); cmp != 0 {
				return cmp
			}
			return l.age - r.age
		},
	)
	require.NoError(t, err)

	s, err := Parse("{bob;42, ada;36 ,bob;42}", cfg)
	require.NoError(t, err)
	assert.Equal(t, "{ada;36,bob;42}", s.String())
	assert.Equal(t, 2, s.Cardinality())
}

func TestStructuredSetMutation(t *testing.T) {
	s, err := ParseInts("{1,2}")
	require.NoError(t, err)

	assert.True(t, s.AddElement(3))
	assert.False(t, s.AddElement(3))
	assert.True(t, s.RemoveElement(1))
	assert.Equal(t, "{2,3}", s.String())

	sub, err := ParseInts("{7,8}")
	require.NoError(t, err)
	assert.True(t, s.AddSubset(sub))
	assert.Equal(t, "{2,3,{7,8}}", s.String())

	sub.AddElement(9)
	assert.Equal(t, "{2,3,{7,8}}", s.String(), "nested subset is an independent copy")

	probe, err := ParseInts("{8,7}")
	require.NoError(t, err)
	assert.True(t, s.RemoveSubset(probe))

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "{}", s.Expression())
}

func TestStructuredSetAlgebra(t *testing.T) {
	a, err := ParseInts("{1,2,{3}}")
	require.NoError(t, err)
	b, err := ParseInts("{2,4,{3}}")
	require.NoError(t, err)

	u, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, "{1,2,4,{3}}", u.String())

	assert.Equal(t, "{2,{3}}", a.Intersect(b).String())
	assert.Equal(t, "{1}", a.Difference(b).String())

	sd, err := a.SymmetricDifference(b)
	require.NoError(t, err)
	assert.Equal(t, "{1,4}", sd.String())

	is, rel := a.IsSubsetOf(u)
	assert.True(t, is)
	assert.Equal(t, setalgebra.ProperSubset, rel)

	comp, err := sd.Complement(u)
	require.NoError(t, err)
	assert.Equal(t, "{2,{3}}", comp.String())

	assert.False(t, a.IsDisjoint(b))
	assert.True(t, sd.IsDisjoint(a.Intersect(b)))

	prod := a.CartesianProduct(b)
	assert.Equal(t, 9, prod.Size())

	assert.False(t, a.Equal(b))
	assert.True(t, u.Equal(u.Clone()))
}

func TestParseErrorsSurface(t *testing.T) {
	_, err := ParseInts("{1,{2}")
	require.Error(t, err)
	assert.True(t, setexpr.ErrUnbalancedBrace.Is(err))

	_, err = ParseInts("{1,two}")
	require.Error(t, err)
	assert.True(t, setexpr.ErrConversion.Is(err))
}
