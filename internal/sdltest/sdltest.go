// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package sdltest holds shared test helpers for comparing parsed node
// trees. It lives under internal because its only contract is "useful to
// this module's own tests", not a public API.
package sdltest

import (
	"github.com/go-test/deep"

	"github.com/s-ludwig/sdlite/parser"
	"github.com/s-ludwig/sdlite/token"
)

func init() {
	deep.CompareUnexportedFields = true
	deep.MaxDepth = 64
}

// DiffNodes returns a human-readable list of differences between a and b,
// or nil if they are equal. It reaches into Value's unexported payload
// fields and ignores source locations, which is what a round-trip test
// actually needs to compare.
func DiffNodes(a, b []*parser.Node) []string {
	return deep.Equal(withoutLocs(a), withoutLocs(b))
}

// DiffNode is the single-node form of DiffNodes.
func DiffNode(a, b *parser.Node) []string {
	return DiffNodes([]*parser.Node{a}, []*parser.Node{b})
}

// withoutLocs returns a copy of nodes with every Loc, recursively, zeroed.
func withoutLocs(nodes []*parser.Node) []*parser.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*parser.Node, len(nodes))
	for i, n := range nodes {
		if n != nil {
			c := *n
			c.Loc, c.Children = token.Location{}, withoutLocs(n.Children)
			out[i] = &c
		}
	}
	return out
}
