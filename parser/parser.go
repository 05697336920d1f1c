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

// Package parser turns a lexer token stream into a tree of Node values,
// calling back into client code for each top-level node as soon as it (and
// all its descendants) is fully parsed. It never builds more of the tree
// than the caller asks to keep: a callback that discards its argument lets
// memory stay bounded across an arbitrarily long sibling list.
package parser

import (
	"github.com/s-ludwig/sdlite/lexer"
	"github.com/s-ludwig/sdlite/pool"
	"github.com/s-ludwig/sdlite/token"
	"github.com/s-ludwig/sdlite/value"
)

// Attribute is a single "name=value" (or "ns:name=value") pair attached to
// a node.
type Attribute struct {
	QualifiedName string
	Value         value.Value
}

// Node is one parsed SDLang node: its qualified name, positional values,
// named attributes and child nodes, plus the location of its first token.
type Node struct {
	QualifiedName string
	Loc           token.Location
	Values        []value.Value
	Attributes    []Attribute
	Children      []*Node
}

// NodeFunc is called once per fully-parsed top-level node (or, for a
// nested call, per child of the node currently being built).
type NodeFunc func(*Node) error

// context owns the pools shared across an entire Parse call: one each for
// values, attributes and the two text buffers, plus one node-appender per
// nesting depth so that peak pooled memory is bounded by tree depth times
// sibling-list width, not by total node count.
type context struct {
	values *pool.Appender[value.Value]
	attrs  *pool.Appender[Attribute]
	chars  *pool.Appender[byte]
	bytes  *pool.Appender[byte]
	nodes  []*pool.Appender[*Node]
}

func newContext() *context {
	return &context{
		values: pool.New[value.Value](),
		attrs:  pool.New[Attribute](),
		chars:  pool.New[byte](),
		bytes:  pool.New[byte](),
	}
}

func (c *context) nodePool(depth int) *pool.Appender[*Node] {
	for len(c.nodes) <= depth {
		c.nodes = append(c.nodes, pool.New[*Node]())
	}
	return c.nodes[depth]
}

// source wraps a lexer with comment filtering and the backslash-EOL line
// continuation rule, presenting callers with the derived token stream.
type source struct {
	lx *lexer.Lexer
}

// next returns the next token of the derived stream: comments are
// dropped, and a backslash immediately followed by EOL (with only
// comments possibly between them) is elided entirely rather than
// surfaced as tokens.
func (s *source) next() (token.Token, error) {
	for {
		t := s.lx.Next()
		switch t.Type {
		case token.Comment:
			continue
		case token.Backslash:
			nt, err := s.next()
			if err != nil {
				return token.Token{}, err
			}
			if nt.Type != token.EOL {
				return token.Token{}, errBackslash(t.Loc)
			}
			continue
		default:
			return t, nil
		}
	}
}

// Parser drives a single Parse call: cur is the one token of lookahead the
// recursive-descent grammar needs at every position.
type Parser struct {
	src *source
	cur token.Token
	ctx *context
}

func (p *Parser) advance() error {
	t, err := p.src.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

// Parse lexes and parses input under the given filename, invoking onNode
// once per top-level node in document order. Returning an error from
// onNode aborts parsing immediately with that error.
func Parse(input []byte, filename string, onNode NodeFunc) error {
	p := &Parser{
		src: &source{lx: lexer.New(input, filename)},
		ctx: newContext(),
	}
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.parseNodes(0, onNode); err != nil {
		return err
	}
	if p.cur.Type != token.EOF {
		return errUnexpected(p.cur, "end of file")
	}
	return nil
}

// parseNodes consumes "nodes" at the given depth: zero or more separated
// node statements, stopping at EOF or a block-closing '}' (left for the
// caller, either Parse or parseBlock, to deal with).
func (p *Parser) parseNodes(depth int, emit NodeFunc) error {
	for {
		for p.cur.Type == token.EOL || p.cur.Type == token.Semicolon {
			if err := p.advance(); err != nil {
				return err
			}
		}
		if p.cur.Type == token.EOF || p.cur.Type == token.BlockClose {
			return nil
		}
		n, err := p.parseNode(depth)
		if err != nil {
			return err
		}
		if err := emit(n); err != nil {
			return err
		}
	}
}

// parseNode consumes one "qname? values attributes block?" statement,
// including its terminating EOL/';'/EOF (or, if it has a block, the EOL/EOF
// following the closing '}').
func (p *Parser) parseNode(depth int) (*Node, error) {
	startLoc := p.cur.Loc
	qname := "content"
	named := false

	if p.cur.Type == token.Identifier {
		name := string(p.cur.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == token.Namespace {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.cur.Type != token.Identifier {
				return nil, errUnexpected(p.cur, "identifier")
			}
			name = name + ":" + string(p.cur.Text)
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		qname = name
		named = true
	}

	firstValueLoc := p.cur
	values, err := p.parseValues()
	if err != nil {
		return nil, err
	}
	if !named && len(values) == 0 {
		return nil, errUnexpected(firstValueLoc, "values for anonymous node")
	}

	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}

	var children []*Node
	hasBlock := false
	if p.cur.Type == token.BlockOpen {
		hasBlock = true
		children, err = p.parseBlock(depth)
		if err != nil {
			return nil, err
		}
	}

	if hasBlock {
		if p.cur.Type != token.EOL && p.cur.Type != token.EOF {
			return nil, errUnexpected(p.cur, "end of node")
		}
	} else {
		if p.cur.Type != token.EOL && p.cur.Type != token.Semicolon && p.cur.Type != token.EOF {
			return nil, errUnexpected(p.cur, "end of node")
		}
	}
	if p.cur.Type != token.EOF {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return &Node{
		QualifiedName: qname,
		Loc:           startLoc,
		Values:        values,
		Attributes:    attrs,
		Children:      children,
	}, nil
}

// parseValues consumes "value*".
func (p *Parser) parseValues() ([]value.Value, error) {
	for p.cur.Type.IsScalar() {
		v, err := value.Decode(p.cur, p.ctx.chars, p.ctx.bytes)
		if err != nil {
			return nil, errValue(p.cur.Loc, err)
		}
		p.ctx.values.Put(v)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return p.ctx.values.ExtractArray(), nil
}

// parseAttributes consumes "(ident (':' ident)? '=' value)*". Any
// identifier reached after values has already been decided to belong here
// by elimination: qnames are only recognized at the start of a node.
func (p *Parser) parseAttributes() ([]Attribute, error) {
	for p.cur.Type == token.Identifier {
		name := string(p.cur.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == token.Namespace {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.cur.Type != token.Identifier {
				return nil, errUnexpected(p.cur, "identifier")
			}
			name = name + ":" + string(p.cur.Text)
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if p.cur.Type != token.Assign {
			return nil, errUnexpected(p.cur, "'='")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.cur.Type.IsScalar() {
			return nil, errUnexpected(p.cur, "value")
		}
		v, err := value.Decode(p.cur, p.ctx.chars, p.ctx.bytes)
		if err != nil {
			return nil, errValue(p.cur.Loc, err)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		p.ctx.attrs.Put(Attribute{QualifiedName: name, Value: v})
	}
	return p.ctx.attrs.ExtractArray(), nil
}

// parseBlock consumes "'{' eol nodes '}'", leaving the token following '}'
// as the current token.
func (p *Parser) parseBlock(depth int) ([]*Node, error) {
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	if p.cur.Type != token.EOL {
		return nil, errUnexpected(p.cur, "end of line")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	np := p.ctx.nodePool(depth + 1)
	if err := p.parseNodes(depth+1, func(n *Node) error {
		np.Put(n)
		return nil
	}); err != nil {
		return nil, err
	}
	children := np.ExtractArray()

	if p.cur.Type != token.BlockClose {
		return nil, errUnexpected(p.cur, "'}'")
	}
	if err := p.advance(); err != nil { // consume '}'
		return nil, err
	}
	return children, nil
}
