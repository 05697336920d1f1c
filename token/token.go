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

// Package token defines the token kinds, source locations and Token value
// produced by the SDLang lexer.
package token

import "fmt"

// Type classifies a Token.
type Type int

// Token kinds, in the order listed by the specification.
const (
	Invalid Type = iota
	EOF
	EOL
	Assign     // =
	Namespace  // :
	BlockOpen  // {
	BlockClose // }
	Semicolon  // ;
	Comment
	Backslash // \
	Identifier
	Null
	Text
	Binary
	Number
	Boolean
	DateTime
	Date
	Duration
)

var typeNames = [...]string{
	Invalid:    "invalid",
	EOF:        "end of file",
	EOL:        "end of line",
	Assign:     "'='",
	Namespace:  "':'",
	BlockOpen:  "'{'",
	BlockClose: "'}'",
	Semicolon:  "';'",
	Comment:    "comment",
	Backslash:  "'\\'",
	Identifier: "identifier",
	Null:       "'null'",
	Text:       "string",
	Binary:     "binary data",
	Number:     "number",
	Boolean:    "Boolean value",
	DateTime:   "date/time value",
	Date:       "date value",
	Duration:   "duration value",
}

// String returns the fixed phrase used to describe this token kind in
// error messages.
func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// IsScalar reports whether t is one of the value-bearing token kinds
// consumed by the value decoder.
func (t Type) IsScalar() bool {
	switch t {
	case Null, Text, Binary, Number, Boolean, DateTime, Date, Duration:
		return true
	}
	return false
}

// Location identifies a point in a named source.
type Location struct {
	File   string
	Line   uint32 // 0-based
	Column uint32 // 0-based, byte index
	Offset uint64
}

// String renders the location the way error messages do: 1-based line,
// no column.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line+1)
}

// Token is a single lexical unit: a type tag, its source location, the
// whitespace immediately preceding it, and its own text, both as slices of
// the original input.
type Token struct {
	Type             Type
	Loc              Location
	WhitespacePrefix []byte
	Text             []byte
}

// String returns a debug representation; not meant to be stable.
func (t Token) String() string {
	if t.Type == Invalid {
		return fmt.Sprintf("%s: malformed token %q", t.Loc, t.Text)
	}
	return fmt.Sprintf("%s: %s %q", t.Loc, t.Type, t.Text)
}
