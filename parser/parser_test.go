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

package parser_test

import (
	"testing"

	"github.com/s-ludwig/sdlite/parser"
	"github.com/s-ludwig/sdlite/value"
)

func parseAll(t *testing.T, input string) []*parser.Node {
	t.Helper()
	var nodes []*parser.Node
	if err := parser.Parse([]byte(input), "t.sdl", func(n *parser.Node) error {
		nodes = append(nodes, n)
		return nil
	}); err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return nodes
}

func TestParse_SimpleNode(t *testing.T) {
	nodes := parseAll(t, "foo")
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes", len(nodes))
	}
	n := nodes[0]
	if n.QualifiedName != "foo" || len(n.Values) != 0 || len(n.Attributes) != 0 || len(n.Children) != 0 {
		t.Fatalf("got %+v", n)
	}
}

func TestParse_PositionalValues(t *testing.T) {
	nodes := parseAll(t, "foo 1 2")
	n := nodes[0]
	if len(n.Values) != 2 {
		t.Fatalf("got %d values", len(n.Values))
	}
	a, _ := n.Values[0].I32()
	b, _ := n.Values[1].I32()
	if a != 1 || b != 2 {
		t.Fatalf("values = %d, %d", a, b)
	}
}

func TestParse_ValueAndAttribute(t *testing.T) {
	nodes := parseAll(t, "nc 1 a=2")
	n := nodes[0]
	if n.QualifiedName != "nc" || len(n.Values) != 1 || len(n.Attributes) != 1 {
		t.Fatalf("got %+v", n)
	}
	v, _ := n.Values[0].I32()
	if v != 1 {
		t.Fatalf("value = %d", v)
	}
	if n.Attributes[0].QualifiedName != "a" {
		t.Fatalf("attr name = %s", n.Attributes[0].QualifiedName)
	}
	av, _ := n.Attributes[0].Value.I32()
	if av != 2 {
		t.Fatalf("attr value = %d", av)
	}
}

func TestParse_NestedBlocks(t *testing.T) {
	nodes := parseAll(t, "ne {\n\tfoo:nf {\n\t\tng\n\t}\n}\n")
	if len(nodes) != 1 {
		t.Fatalf("got %d top-level nodes", len(nodes))
	}
	ne := nodes[0]
	if ne.QualifiedName != "ne" || len(ne.Children) != 1 {
		t.Fatalf("got %+v", ne)
	}
	foo := ne.Children[0]
	if foo.QualifiedName != "foo:nf" || len(foo.Children) != 1 {
		t.Fatalf("got %+v", foo)
	}
	if foo.Children[0].QualifiedName != "ng" {
		t.Fatalf("got %+v", foo.Children[0])
	}
}

func TestParse_AnonymousNode(t *testing.T) {
	nodes := parseAll(t, `"hello"`)
	n := nodes[0]
	if n.QualifiedName != "content" || len(n.Values) != 1 {
		t.Fatalf("got %+v", n)
	}
	s, _ := n.Values[0].Text()
	if s != "hello" {
		t.Fatalf("value = %q", s)
	}
}

func TestParse_BackslashContinuation(t *testing.T) {
	nodes := parseAll(t, "foo \\\n  null\nbar")
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes", len(nodes))
	}
	if nodes[0].QualifiedName != "foo" || len(nodes[0].Values) != 1 || nodes[0].Values[0].Kind() != value.Null {
		t.Fatalf("node 0 = %+v", nodes[0])
	}
	if nodes[1].QualifiedName != "bar" {
		t.Fatalf("node 1 = %+v", nodes[1])
	}
}

func TestParse_WhitespaceOnlyProducesNoCallbacks(t *testing.T) {
	nodes := parseAll(t, "  \n\t\n// comment\n;;\n")
	if len(nodes) != 0 {
		t.Fatalf("got %d nodes, want 0", len(nodes))
	}
}

func TestParse_SemicolonSeparatedStatements(t *testing.T) {
	nodes := parseAll(t, "a;b;c")
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes", len(nodes))
	}
}

func TestParse_CallbackAbort(t *testing.T) {
	sentinel := errStop{}
	err := parser.Parse([]byte("a\nb\nc"), "t.sdl", func(n *parser.Node) error {
		if n.QualifiedName == "b" {
			return sentinel
		}
		return nil
	})
	if err != sentinel {
		t.Fatalf("got %v, want sentinel", err)
	}
}

type errStop struct{}

func (errStop) Error() string { return "stop" }

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"assign_without_node", "foo=bar", "t.sdl:1: Unexpected '=', expected end of node"},
		{"trailing_colon_at_eof", "foo:", "t.sdl:1: Unexpected end of file, expected identifier"},
		{"bare_colon", ":", "t.sdl:1: Unexpected ':', expected values for anonymous node"},
		{"backslash_not_followed_by_eol", "foo \\ bar", "t.sdl:1: Expected EOL after backslash"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.Parse([]byte(tt.input), "t.sdl", func(*parser.Node) error { return nil })
			if err == nil {
				t.Fatalf("expected an error")
			}
			if err.Error() != tt.want {
				t.Fatalf("got %q, want %q", err.Error(), tt.want)
			}
		})
	}
}
