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

// Package sdlite is a parser and generator for SDLang, a line-oriented,
// hierarchical, typed data description language. It is a thin facade over
// the lexer, value, parser and generator packages: most programs only
// need the names re-exported here.
package sdlite

import (
	"io"

	"github.com/s-ludwig/sdlite/generator"
	"github.com/s-ludwig/sdlite/lexer"
	"github.com/s-ludwig/sdlite/parser"
	"github.com/s-ludwig/sdlite/pool"
	"github.com/s-ludwig/sdlite/token"
	"github.com/s-ludwig/sdlite/value"
)

type (
	// Node is a parsed SDLang node.
	Node = parser.Node
	// Attribute is a node's name=value pair.
	Attribute = parser.Attribute
	// Value is a typed SDLang scalar.
	Value = value.Value
	// Date is a civil calendar date.
	Date = value.Date
	// DateTime is a civil date and time with an attached timezone.
	DateTime = value.DateTime
	// Timezone is a date_time value's timezone payload.
	Timezone = value.Timezone
	// Token is a single lexical unit.
	Token = token.Token
	// Error is the structured error raised by Parse.
	Error = parser.Error
	// NodeFunc is the per-node callback passed to Parse.
	NodeFunc = parser.NodeFunc
)

// Timezone kinds, re-exported for callers that inspect DateTime.Zone.Kind.
const (
	Local       = value.Local
	UTC         = value.UTC
	FixedOffset = value.FixedOffset
	Named       = value.Named
)

// Parse lexes and parses input under filename, invoking onNode once per
// top-level node in source order. It returns on the first error, whether
// raised by the parser itself or returned by onNode.
func Parse(input []byte, filename string, onNode NodeFunc) error {
	return parser.Parse(input, filename, onNode)
}

// ParseAll parses input and returns every top-level node as a slice. It is
// the non-streaming convenience built on top of Parse; callers working
// with documents too large to hold entirely in memory should use Parse
// directly with a callback that processes and discards each node.
func ParseAll(input []byte, filename string) ([]*Node, error) {
	var nodes []*Node
	err := parser.Parse(input, filename, func(n *Node) error {
		nodes = append(nodes, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// Lex returns a lexer positioned at the start of input, for consumers that
// want the raw token stream (e.g. syntax highlighters) rather than a
// parsed tree.
func Lex(input []byte, filename string) *lexer.Lexer {
	return lexer.New(input, filename)
}

// DecodeValue decodes a single token's text into its typed Value, using
// charPool and bytePool for string and binary payload storage.
func DecodeValue(t Token, charPool, bytePool *pool.Appender[byte]) (Value, error) {
	return value.Decode(t, charPool, bytePool)
}

// Generate renders nodes to sink starting at the given indentation level.
func Generate(sink io.Writer, nodes []*Node, level int) error {
	return generator.Generate(sink, nodes, level)
}

// Equal reports whether a and b have the same qualified name, values,
// attributes and children, recursively. It is DOM structural equality:
// source locations are not compared.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.QualifiedName != b.QualifiedName {
		return false
	}
	if len(a.Values) != len(b.Values) || len(a.Attributes) != len(b.Attributes) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Values {
		if !a.Values[i].Equal(b.Values[i]) {
			return false
		}
	}
	for i := range a.Attributes {
		if a.Attributes[i].QualifiedName != b.Attributes[i].QualifiedName {
			return false
		}
		if !a.Attributes[i].Value.Equal(b.Attributes[i].Value) {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
