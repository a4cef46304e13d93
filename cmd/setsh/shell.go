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

package main

import (
	"strings"

	"github.com/dolthub/ishell"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/structset"
	"github.com/dolthub/structset/setalgebra"
	"github.com/dolthub/structset/settree"
)

const productPrintLimit = 64

var (
	nameColor = color.New(color.FgCyan)
	errColor  = color.New(color.FgRed)
)

type setShell struct {
	cfg   *settree.Config[string]
	coll  *structset.Collection[string]
	shell *ishell.Shell
}

func newSetShell(cfg *settree.Config[string]) *setShell {
	s := &setShell{
		cfg:  cfg,
		coll: structset.NewCollection[string](),
	}
	sh := ishell.New()
	sh.SetPrompt("setsh> ")
	sh.Println("setsh: structured set shell. Type 'help' for commands.")

	sh.AddCmd(&ishell.Cmd{Name: "parse", Help: "parse <expression> - parse a set expression and name it", Func: s.cmdParse})
	sh.AddCmd(&ishell.Cmd{Name: "ls", Help: "ls - list named sets", Func: s.cmdLs})
	sh.AddCmd(&ishell.Cmd{Name: "show", Help: "show <name> - print a set and its cardinality", Func: s.cmdShow})
	sh.AddCmd(&ishell.Cmd{Name: "union", Help: "union <x> <y> - union of two named sets", Func: s.binaryCmd(s.opUnion)})
	sh.AddCmd(&ishell.Cmd{Name: "intersect", Help: "intersect <x> <y> - intersection of two named sets", Func: s.binaryCmd(s.opIntersect)})
	sh.AddCmd(&ishell.Cmd{Name: "diff", Help: "diff <x> <y> - members of x not in y", Func: s.binaryCmd(s.opDiff)})
	sh.AddCmd(&ishell.Cmd{Name: "symdiff", Help: "symdiff <x> <y> - symmetric difference", Func: s.binaryCmd(s.opSymDiff)})
	sh.AddCmd(&ishell.Cmd{Name: "complement", Help: "complement <x> <universal> - complement of x within a universal set", Func: s.binaryCmd(s.opComplement)})
	sh.AddCmd(&ishell.Cmd{Name: "subset", Help: "subset <x> <y> - is x a subset of y", Func: s.cmdSubset})
	sh.AddCmd(&ishell.Cmd{Name: "disjoint", Help: "disjoint <x> <y> - do x and y share no members", Func: s.cmdDisjoint})
	sh.AddCmd(&ishell.Cmd{Name: "product", Help: "product <x> <y> - cartesian product pairs", Func: s.cmdProduct})
	sh.AddCmd(&ishell.Cmd{Name: "rm", Help: "rm <name> - remove a named set", Func: s.cmdRm})
	sh.AddCmd(&ishell.Cmd{Name: "reset", Help: "reset - drop all named sets", Func: s.cmdReset})

	s.shell = sh
	return s
}

func (s *setShell) run() {
	s.shell.Run()
}

func (s *setShell) cmdParse(c *ishell.Context) {
	if len(c.Args) == 0 {
		errColor.Println("usage: parse <expression>")
		return
	}
	expr := strings.Join(c.Args, " ")
	logrus.WithField("expr", expr).Debug("parsing expression")

	set, err := structset.Parse(expr, s.cfg)
	if err != nil {
		errColor.Printf("parse failed: %v\n", err)
		return
	}
	name := s.coll.Add(set)
	c.Printf("%s = %s (%s members)\n", nameColor.Sprint(name), set, humanize.Comma(int64(set.Cardinality())))
}

func (s *setShell) cmdLs(c *ishell.Context) {
	if s.coll.Count() == 0 {
		c.Println("no sets defined")
		return
	}
	for i, name := range s.coll.Names() {
		set, _ := s.coll.At(i)
		c.Printf("%s = %s\n", nameColor.Sprint(name), set)
	}
}

func (s *setShell) cmdShow(c *ishell.Context) {
	set, ok := s.lookupOne(c, "show")
	if !ok {
		return
	}
	info := set.Info()
	c.Printf("original:  %s\n", set.Expression())
	c.Printf("canonical: %s\n", set)
	c.Printf("members:   %s\n", humanize.Comma(int64(set.Cardinality())))
	if info.HasNullElements {
		c.Printf("empty records discarded: %d\n", info.NullElementCount)
	}
}

type binaryOp func(x, y *structset.StructuredSet[string]) (*structset.StructuredSet[string], error)

func (s *setShell) binaryCmd(op binaryOp) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		x, y, ok := s.lookupTwo(c)
		if !ok {
			return
		}
		res, err := op(x, y)
		if err != nil {
			errColor.Printf("operation failed: %v\n", err)
			return
		}
		name := s.coll.Add(res)
		c.Printf("%s = %s\n", nameColor.Sprint(name), res)
	}
}

func (s *setShell) opUnion(x, y *structset.StructuredSet[string]) (*structset.StructuredSet[string], error) {
	return x.Union(y)
}

func (s *setShell) opIntersect(x, y *structset.StructuredSet[string]) (*structset.StructuredSet[string], error) {
	return x.Intersect(y), nil
}

func (s *setShell) opDiff(x, y *structset.StructuredSet[string]) (*structset.StructuredSet[string], error) {
	return x.Difference(y), nil
}

func (s *setShell) opSymDiff(x, y *structset.StructuredSet[string]) (*structset.StructuredSet[string], error) {
	return x.SymmetricDifference(y)
}

func (s *setShell) opComplement(x, u *structset.StructuredSet[string]) (*structset.StructuredSet[string], error) {
	return x.Complement(u)
}

func (s *setShell) cmdSubset(c *ishell.Context) {
	x, y, ok := s.lookupTwo(c)
	if !ok {
		return
	}
	is, rel := x.IsSubsetOf(y)
	if !is {
		c.Println("no")
		return
	}
	c.Printf("yes (%s)\n", rel)
}

func (s *setShell) cmdDisjoint(c *ishell.Context) {
	x, y, ok := s.lookupTwo(c)
	if !ok {
		return
	}
	if x.IsDisjoint(y) {
		c.Println("disjoint")
	} else {
		c.Println("not disjoint")
	}
}

func (s *setShell) cmdProduct(c *ishell.Context) {
	x, y, ok := s.lookupTwo(c)
	if !ok {
		return
	}
	prod := x.CartesianProduct(y)
	c.Printf("%s pairs\n", humanize.Comma(int64(prod.Size())))
	printed := 0
	for {
		l, r, more := prod.Next()
		if !more || printed >= productPrintLimit {
			break
		}
		c.Printf("  (%s, %s)\n", itemText(l), itemText(r))
		printed++
	}
	if prod.Size() > productPrintLimit {
		c.Printf("  … %d more\n", prod.Size()-productPrintLimit)
	}
}

func (s *setShell) cmdRm(c *ishell.Context) {
	if len(c.Args) != 1 {
		errColor.Println("usage: rm <name>")
		return
	}
	if !s.coll.Remove(strings.ToUpper(c.Args[0])) {
		errColor.Printf("no set named %s\n", c.Args[0])
		return
	}
	c.Println("removed; later sets renamed")
}

func (s *setShell) cmdReset(c *ishell.Context) {
	s.coll.Clear()
	c.Println("collection cleared")
}

func (s *setShell) lookupOne(c *ishell.Context, cmd string) (*structset.StructuredSet[string], bool) {
	if len(c.Args) != 1 {
		errColor.Printf("usage: %s <name>\n", cmd)
		return nil, false
	}
	set, ok := s.coll.Get(strings.ToUpper(c.Args[0]))
	if !ok {
		errColor.Printf("no set named %s\n", c.Args[0])
		return nil, false
	}
	return set, true
}

func (s *setShell) lookupTwo(c *ishell.Context) (x, y *structset.StructuredSet[string], ok bool) {
	if len(c.Args) != 2 {
		errColor.Println("expected two set names")
		return nil, nil, false
	}
	x, ok = s.coll.Get(strings.ToUpper(c.Args[0]))
	if !ok {
		errColor.Printf("no set named %s\n", c.Args[0])
		return nil, nil, false
	}
	y, ok = s.coll.Get(strings.ToUpper(c.Args[1]))
	if !ok {
		errColor.Printf("no set named %s\n", c.Args[1])
		return nil, nil, false
	}
	return x, y, true
}

func itemText(it setalgebra.Item[string]) string {
	if it.IsSubtree {
		return settree.Render(it.Subtree)
	}
	return it.Elem
}
