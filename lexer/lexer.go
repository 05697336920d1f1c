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

// Package lexer implements the hand-written, branchful scalar lexer for
// SDLang. It classifies and delimits tokens but never decodes them; see
// package value for that.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/s-ludwig/sdlite/token"
)

// Lexer is a forward, single-pass iterator over a UTF-8 byte stream. A new
// Lexer must be created per input; it is not safe for concurrent use.
type Lexer struct {
	input    []byte
	filename string
	off      int
	line     uint32
	col      uint32
}

// New returns a Lexer over input, reporting locations under filename.
func New(input []byte, filename string) *Lexer {
	return &Lexer{input: input, filename: filename}
}

// cursor is an O(1) snapshot of the lexer's position, used wherever the
// number grammar tries a sub-grammar (dates, times of day, timezones,
// durations) and backs out on failure.
type cursor struct {
	off  int
	line uint32
	col  uint32
}

func (l *Lexer) snapshot() cursor {
	return cursor{l.off, l.line, l.col}
}

func (l *Lexer) restore(c cursor) {
	l.off, l.line, l.col = c.off, c.line, c.col
}

// advance consumes n raw bytes, updating line/column bookkeeping. Only '\n'
// resets the column and bumps the line; every other byte (including UTF-8
// continuation bytes) advances the column by one, so that decoding a
// multi-byte rune one advance(1) at a time yields the same column delta as
// advancing by its full byte length at once.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.input[l.off] == '\n' {
			l.line++
			l.col = 0
		} else {
			l.col++
		}
		l.off++
	}
}

func (l *Lexer) eof() bool { return l.off >= len(l.input) }

func (l *Lexer) byteAt(off int) (byte, bool) {
	if off < 0 || off >= len(l.input) {
		return 0, false
	}
	return l.input[off], true
}

func (l *Lexer) cur() (byte, bool) { return l.byteAt(l.off) }

func (l *Lexer) finish(typ token.Type, loc token.Location, ws []byte, start int) token.Token {
	return token.Token{Type: typ, Loc: loc, WhitespacePrefix: ws, Text: l.input[start:l.off]}
}

func (l *Lexer) invalid(loc token.Location, ws []byte, start int) token.Token {
	return token.Token{Type: token.Invalid, Loc: loc, WhitespacePrefix: ws, Text: l.input[start:l.off]}
}

// Next returns the next token in the stream. It never fails: malformed
// input produces a token.Invalid token whose Text covers the failed
// extent. Once the end of input is reached, Next returns an EOF token on
// every subsequent call.
func (l *Lexer) Next() token.Token {
	wsStart := l.off
	for {
		b, ok := l.cur()
		if !ok || (b != ' ' && b != '\t') {
			break
		}
		l.advance(1)
	}
	ws := l.input[wsStart:l.off]
	loc := token.Location{File: l.filename, Line: l.line, Column: l.col, Offset: uint64(l.off)}
	start := l.off

	b, ok := l.cur()
	if !ok {
		return token.Token{Type: token.EOF, Loc: loc, WhitespacePrefix: ws, Text: l.input[start:start]}
	}

	switch {
	case b == '\n' || b == '\r':
		return l.lexEOL(loc, ws)
	case b == '/':
		return l.lexSlash(loc, ws, start)
	case b == '-':
		return l.lexDash(loc, ws, start)
	case b == '#':
		l.advance(1)
		return l.lexLineCommentBody(loc, ws, start)
	case b == '"':
		return l.lexQuotedString(loc, ws, start)
	case b == '`':
		return l.lexBacktick(loc, ws, start)
	case b == '[':
		return l.lexBinary(loc, ws, start)
	case b == '{':
		l.advance(1)
		return l.finish(token.BlockOpen, loc, ws, start)
	case b == '}':
		l.advance(1)
		return l.finish(token.BlockClose, loc, ws, start)
	case b == ';':
		l.advance(1)
		return l.finish(token.Semicolon, loc, ws, start)
	case b == '=':
		l.advance(1)
		return l.finish(token.Assign, loc, ws, start)
	case b == ':':
		l.advance(1)
		return l.finish(token.Namespace, loc, ws, start)
	case b == '\\':
		l.advance(1)
		return l.finish(token.Backslash, loc, ws, start)
	case isDigit(b):
		return l.lexNumber(loc, ws, start)
	case isIdentAsciiStart(b):
		return l.lexIdentOrKeyword(loc, ws, start)
	case b >= 0x80:
		if r, size := utf8.DecodeRune(l.input[l.off:]); r != utf8.RuneError && (unicode.IsLetter(r) || r == '_') {
			return l.lexIdentOrKeyword(loc, ws, start)
		} else if size > 0 {
			l.advance(size)
		} else {
			l.advance(1)
		}
		return l.invalid(loc, ws, start)
	default:
		l.advance(1)
		return l.invalid(loc, ws, start)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentAsciiStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_'
}

func isIdentAsciiCont(b byte) bool {
	return isIdentAsciiStart(b) || isDigit(b) || b == '-' || b == '.' || b == '$'
}

func isBase64Char(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || isDigit(b) || b == '+' || b == '/' || b == '='
}

// lexEOL consumes \n, \r or \r\n as a single EOL token.
func (l *Lexer) lexEOL(loc token.Location, ws []byte) token.Token {
	start := l.off
	b, _ := l.cur()
	if b == '\r' {
		l.off++
		if n, ok := l.cur(); ok && n == '\n' {
			l.off++
		}
	} else {
		l.off++
	}
	l.line++
	l.col = 0
	return token.Token{Type: token.EOL, Loc: loc, WhitespacePrefix: ws, Text: l.input[start:l.off]}
}

func (l *Lexer) lexSlash(loc token.Location, ws []byte, start int) token.Token {
	n, ok := l.byteAt(l.off + 1)
	switch {
	case ok && n == '/':
		l.advance(2)
		return l.lexLineCommentBody(loc, ws, start)
	case ok && n == '*':
		return l.lexBlockComment(loc, ws, start)
	default:
		l.advance(1)
		return l.invalid(loc, ws, start)
	}
}

func (l *Lexer) lexDash(loc token.Location, ws []byte, start int) token.Token {
	n, ok := l.byteAt(l.off + 1)
	switch {
	case ok && n == '-':
		l.advance(2)
		return l.lexLineCommentBody(loc, ws, start)
	case ok && isDigit(n):
		return l.lexNumber(loc, ws, start)
	default:
		l.advance(1)
		return l.invalid(loc, ws, start)
	}
}

// lexLineCommentBody consumes up to (not including) the next EOL or EOF.
// The leading comment marker has already been consumed by the caller.
func (l *Lexer) lexLineCommentBody(loc token.Location, ws []byte, start int) token.Token {
	for {
		b, ok := l.cur()
		if !ok || b == '\n' || b == '\r' {
			break
		}
		l.advance(1)
	}
	return l.finish(token.Comment, loc, ws, start)
}

func (l *Lexer) lexBlockComment(loc token.Location, ws []byte, start int) token.Token {
	l.advance(2) // "/*"
	for {
		b, ok := l.cur()
		if !ok {
			return l.invalid(loc, ws, start)
		}
		if b == '*' {
			if n, ok := l.byteAt(l.off + 1); ok && n == '/' {
				l.advance(2)
				return l.finish(token.Comment, loc, ws, start)
			}
		}
		l.advance(1)
	}
}

func (l *Lexer) skipHSpace() {
	for {
		b, ok := l.cur()
		if !ok || (b != ' ' && b != '\t') {
			return
		}
		l.advance(1)
	}
}

// lexQuotedString scans a double-quoted string, splicing backslash-EOL
// continuations and rejecting unescaped literal newlines.
func (l *Lexer) lexQuotedString(loc token.Location, ws []byte, start int) token.Token {
	l.advance(1) // opening quote
	for {
		b, ok := l.cur()
		if !ok {
			return l.invalid(loc, ws, start)
		}
		switch b {
		case '"':
			l.advance(1)
			return l.finish(token.Text, loc, ws, start)
		case '\\':
			l.advance(1)
			e, ok := l.cur()
			if !ok {
				return l.invalid(loc, ws, start)
			}
			switch e {
			case '"', '\\', 'n', 'r', 't':
				l.advance(1)
			case '\n':
				l.advance(1)
				l.skipHSpace()
			case '\r':
				l.advance(1)
				if n, ok := l.cur(); ok && n == '\n' {
					l.advance(1)
				}
				l.skipHSpace()
			default:
				return l.invalid(loc, ws, start)
			}
		case '\n', '\r':
			return l.invalid(loc, ws, start)
		default:
			l.advance(1)
		}
	}
}

// lexBacktick scans a WYSIWYG string with no escapes, terminated by the
// next backtick.
func (l *Lexer) lexBacktick(loc token.Location, ws []byte, start int) token.Token {
	l.advance(1)
	for {
		b, ok := l.cur()
		if !ok {
			return l.invalid(loc, ws, start)
		}
		if b == '`' {
			l.advance(1)
			return l.finish(token.Text, loc, ws, start)
		}
		l.advance(1)
	}
}

// lexBinary scans a "[base64]" block.
func (l *Lexer) lexBinary(loc token.Location, ws []byte, start int) token.Token {
	l.advance(1) // '['
	count := 0
	for {
		b, ok := l.cur()
		if !ok {
			return l.invalid(loc, ws, start)
		}
		switch {
		case b == ']':
			l.advance(1)
			if count%4 != 0 {
				return l.invalid(loc, ws, start)
			}
			return l.finish(token.Binary, loc, ws, start)
		case b == ' ' || b == '\t':
			l.advance(1)
		case b == '\n':
			l.advance(1)
		case b == '\r':
			l.advance(1)
			if n, ok := l.cur(); ok && n == '\n' {
				l.advance(1)
			}
		case isBase64Char(b):
			l.advance(1)
			count++
		default:
			return l.invalid(loc, ws, start)
		}
	}
}

// lexIdentOrKeyword scans an identifier and classifies it as Boolean,
// Null or Identifier depending on its full, fully-scanned text: a
// reserved word immediately followed by another identifier-continuation
// character naturally falls through to Identifier because the scanned
// text no longer matches the reserved spelling.
func (l *Lexer) lexIdentOrKeyword(loc token.Location, ws []byte, start int) token.Token {
	if isIdentAsciiStart(l.input[l.off]) {
		l.advance(1)
	} else {
		_, size := utf8.DecodeRune(l.input[l.off:])
		if size < 1 {
			size = 1
		}
		l.advance(size)
	}
	for {
		b, ok := l.cur()
		if !ok {
			break
		}
		if isIdentAsciiCont(b) {
			l.advance(1)
			continue
		}
		if b < 0x80 {
			break
		}
		r, size := utf8.DecodeRune(l.input[l.off:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		if !unicode.IsLetter(r) {
			break
		}
		l.advance(size)
	}
	text := l.input[start:l.off]
	typ := token.Identifier
	switch string(text) {
	case "true", "false", "on", "off":
		typ = token.Boolean
	case "null":
		typ = token.Null
	}
	return token.Token{Type: typ, Loc: loc, WhitespacePrefix: ws, Text: text}
}
