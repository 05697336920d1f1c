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

package parser

import (
	"fmt"

	"github.com/s-ludwig/sdlite/token"
)

// ErrorKind discriminates the taxonomy of parser failure modes.
type ErrorKind int

const (
	ErrUnexpectedToken ErrorKind = iota
	ErrUnterminated
	ErrBackslash
	ErrValue
)

// Error is the structured parse error raised by Parse. All failures
// surface as one of these, carrying the location of the failure and a
// human-readable message formatted as "file:line: message".
type Error struct {
	Loc  token.Location
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

// rep renders a token for use on the observed side of an "Unexpected X,
// expected Y" message: the malformed text for invalid tokens, the name
// for identifiers, and a fixed phrase per token kind otherwise.
func rep(tok token.Token) string {
	switch tok.Type {
	case token.Invalid:
		return fmt.Sprintf("malformed token '%s'", tok.Text)
	case token.Identifier:
		return fmt.Sprintf("identifier '%s'", tok.Text)
	default:
		return tok.Type.String()
	}
}

func errUnexpected(tok token.Token, expected string) *Error {
	return &Error{Loc: tok.Loc, Kind: ErrUnexpectedToken, Msg: fmt.Sprintf("Unexpected %s, expected %s", rep(tok), expected)}
}

func errBackslash(loc token.Location) *Error {
	return &Error{Loc: loc, Kind: ErrBackslash, Msg: "Expected EOL after backslash"}
}

func errValue(loc token.Location, err error) *Error {
	return &Error{Loc: loc, Kind: ErrValue, Msg: err.Error()}
}
