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

package generator_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/s-ludwig/sdlite/generator"
	"github.com/s-ludwig/sdlite/parser"
	"github.com/s-ludwig/sdlite/value"
)

func TestGenerate_NestedBlocks(t *testing.T) {
	tree := []*parser.Node{
		{QualifiedName: "ne", Children: []*parser.Node{
			{QualifiedName: "foo:nf", Children: []*parser.Node{
				{QualifiedName: "ng"},
			}},
		}},
	}
	var buf bytes.Buffer
	if err := generator.Generate(&buf, tree, 0); err != nil {
		t.Fatal(err)
	}
	want := "ne {\n\tfoo:nf {\n\t\tng\n\t}\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestGenerate_TextEscaping(t *testing.T) {
	tree := []*parser.Node{
		{QualifiedName: "content", Values: []value.Value{value.NewText(`foo"bar`)}},
	}
	var buf bytes.Buffer
	generator.Generate(&buf, tree, 0)
	want := " \"foo\\\"bar\"\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestGenerate_Binary(t *testing.T) {
	tree := []*parser.Node{
		{QualifiedName: "content", Values: []value.Value{value.NewBinary([]byte("hello, world!"))}},
	}
	var buf bytes.Buffer
	generator.Generate(&buf, tree, 0)
	want := " [aGVsbG8sIHdvcmxkIQ==]\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestGenerate_IntegerValuedFloat(t *testing.T) {
	tree := []*parser.Node{
		{QualifiedName: "content", Values: []value.Value{value.NewF64(1.0)}},
	}
	var buf bytes.Buffer
	generator.Generate(&buf, tree, 0)
	want := " 1.0\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestGenerate_Duration(t *testing.T) {
	total := ((int64(2)*24+12)*60+14)*60*10_000_000 + 34*10_000_000
	tree := []*parser.Node{
		{QualifiedName: "content", Values: []value.Value{value.NewDuration(total)}},
	}
	var buf bytes.Buffer
	generator.Generate(&buf, tree, 0)
	want := " 2d:12:14:34\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestGenerate_NaNAndInfBecomeZero(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"nan", math.NaN()},
		{"posinf", math.Inf(1)},
		{"neginf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			generator.WriteFloat(&buf, tt.v, 15)
			if buf.String() != "0.0" {
				t.Fatalf("got %q, want 0.0", buf.String())
			}
		})
	}
}

func TestGenerate_AnonymousNodeOmitsContentName(t *testing.T) {
	tree := []*parser.Node{
		{QualifiedName: "content", Values: []value.Value{value.NewI32(1)}},
	}
	var buf bytes.Buffer
	generator.Generate(&buf, tree, 0)
	want := " 1\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
