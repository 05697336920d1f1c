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

package lexer

import "github.com/s-ludwig/sdlite/token"

// lexNumber disambiguates plain numbers, durations and dates/date-times
// from their shared digit prefix by peeking one character at a time and,
// where needed, trying a sub-grammar and backtracking on failure.
func (l *Lexer) lexNumber(loc token.Location, ws []byte, start int) token.Token {
	if b, ok := l.cur(); ok && b == '-' {
		l.advance(1)
	}
	for {
		b, ok := l.cur()
		if !ok || !isDigit(b) {
			break
		}
		l.advance(1)
	}

	c, ok := l.cur()
	if !ok {
		return l.finish(token.Number, loc, ws, start)
	}
	switch {
	case c == ':':
		if !l.consumeDurationTail() {
			return l.invalid(loc, ws, start)
		}
		return l.finish(token.Duration, loc, ws, start)
	case c == 'D':
		l.advance(1)
		return l.finish(token.Number, loc, ws, start)
	case c == 'f' || c == 'F':
		l.advance(1)
		return l.finish(token.Number, loc, ws, start)
	case c == 'd':
		if n, ok := l.byteAt(l.off + 1); ok && n == ':' {
			l.advance(2) // "d:"
			if !l.consumeDigits() || !l.consumeDurationTail() {
				return l.invalid(loc, ws, start)
			}
			return l.finish(token.Duration, loc, ws, start)
		}
		l.advance(1)
		return l.finish(token.Number, loc, ws, start)
	case c == '/':
		return l.lexDate(loc, ws, start)
	case c == '.':
		return l.lexFraction(loc, ws, start)
	case c == 'l' || c == 'L':
		l.advance(1)
		return l.finish(token.Number, loc, ws, start)
	default:
		return l.finish(token.Number, loc, ws, start)
	}
}

// consumeColonDigits consumes ":digits", restoring position and returning
// false if the pattern does not match.
func (l *Lexer) consumeColonDigits() bool {
	save := l.snapshot()
	b, ok := l.cur()
	if !ok || b != ':' {
		return false
	}
	l.advance(1)
	n := 0
	for {
		b, ok := l.cur()
		if !ok || !isDigit(b) {
			break
		}
		l.advance(1)
		n++
	}
	if n == 0 {
		l.restore(save)
		return false
	}
	return true
}

// consumeDurationTail consumes the ":MM:SS[.frac]" portion of a duration,
// having already consumed the leading hours (or days, via "Dd:") digits.
func (l *Lexer) consumeDurationTail() bool {
	if !l.consumeColonDigits() { // minutes
		return false
	}
	if !l.consumeColonDigits() { // seconds
		return false
	}
	if b, ok := l.cur(); ok && b == '.' {
		save := l.snapshot()
		l.advance(1)
		n := 0
		for {
			b, ok := l.cur()
			if !ok || !isDigit(b) {
				break
			}
			l.advance(1)
			n++
		}
		if n == 0 {
			l.restore(save)
			return false
		}
	}
	return true
}

// consumeSlashDigits consumes "/digits", restoring position and returning
// false if the pattern does not match.
func (l *Lexer) consumeSlashDigits() bool {
	save := l.snapshot()
	b, ok := l.cur()
	if !ok || b != '/' {
		return false
	}
	l.advance(1)
	n := 0
	for {
		b, ok := l.cur()
		if !ok || !isDigit(b) {
			break
		}
		l.advance(1)
		n++
	}
	if n == 0 {
		l.restore(save)
		return false
	}
	return true
}

// lexDate continues from a consumed "YYYY", trying "/MM/DD" then an
// optional time-of-day and timezone, backtracking to a plain date if the
// time-of-day attempt fails.
func (l *Lexer) lexDate(loc token.Location, ws []byte, start int) token.Token {
	if !l.consumeSlashDigits() || !l.consumeSlashDigits() {
		return l.invalid(loc, ws, start)
	}
	if b, ok := l.cur(); ok && b == ' ' {
		save := l.snapshot()
		l.advance(1)
		if l.tryTimeOfDay() {
			if b, ok := l.cur(); ok && b == '-' {
				if !l.tryTimezone() {
					return l.invalid(loc, ws, start)
				}
			}
			return l.finish(token.DateTime, loc, ws, start)
		}
		l.restore(save)
	}
	return l.finish(token.Date, loc, ws, start)
}

// tryTimeOfDay attempts "HH:MM[:SS[.frac]]", restoring position and
// returning false on any failure.
func (l *Lexer) tryTimeOfDay() bool {
	save := l.snapshot()
	if !l.consumeDigits() {
		l.restore(save)
		return false
	}
	if !l.consumeColonDigits() { // minutes
		l.restore(save)
		return false
	}
	if b, ok := l.cur(); ok && b == ':' {
		if !l.consumeColonDigits() { // seconds
			l.restore(save)
			return false
		}
		if b, ok := l.cur(); ok && b == '.' {
			s2 := l.snapshot()
			l.advance(1)
			n := 0
			for {
				b, ok := l.cur()
				if !ok || !isDigit(b) {
					break
				}
				l.advance(1)
				n++
			}
			if n == 0 {
				l.restore(s2)
			}
		}
	}
	return true
}

func (l *Lexer) consumeDigits() bool {
	n := 0
	for {
		b, ok := l.cur()
		if !ok || !isDigit(b) {
			break
		}
		l.advance(1)
		n++
	}
	return n > 0
}

// tryTimezone consumes "-TZ" where TZ is UTC, GMT, a fixed offset, or a
// named three-letter zone with an optional offset. It requires exactly one
// leading '-'; on failure, position is restored and false is returned.
func (l *Lexer) tryTimezone() bool {
	save := l.snapshot()
	l.advance(1) // '-'
	letters := 0
	for letters < 3 {
		b, ok := l.cur()
		if !ok || b < 'A' || b > 'Z' {
			l.restore(save)
			return false
		}
		l.advance(1)
		letters++
	}
	if b, ok := l.cur(); ok && (b == '+' || b == '-') {
		l.advance(1)
		if !l.consumeUpTo2Digits() {
			l.restore(save)
			return false
		}
		if b, ok := l.cur(); ok && b == ':' {
			s2 := l.snapshot()
			l.advance(1)
			if !l.consumeUpTo2Digits() {
				l.restore(s2)
			}
		}
	}
	return true
}

func (l *Lexer) consumeUpTo2Digits() bool {
	n := 0
	for n < 2 {
		b, ok := l.cur()
		if !ok || !isDigit(b) {
			break
		}
		l.advance(1)
		n++
	}
	return n > 0
}

// lexFraction continues from a consumed integer part and a '.', requiring
// at least one fractional digit, then an optional type suffix.
func (l *Lexer) lexFraction(loc token.Location, ws []byte, start int) token.Token {
	l.advance(1) // '.'
	if !l.consumeDigits() {
		return l.invalid(loc, ws, start)
	}
	b, ok := l.cur()
	if !ok {
		return l.finish(token.Number, loc, ws, start)
	}
	switch {
	case b == 'f' || b == 'F' || b == 'd' || b == 'D':
		l.advance(1)
		return l.finish(token.Number, loc, ws, start)
	case b == 'b' || b == 'B':
		if n, ok := l.byteAt(l.off + 1); ok && (n == 'd' || n == 'D') {
			l.advance(2)
			return l.finish(token.Number, loc, ws, start)
		}
		return l.invalidTrailingIdent(loc, ws, start)
	case isIdentAsciiCont(b) || b >= 0x80:
		return l.invalidTrailingIdent(loc, ws, start)
	default:
		return l.finish(token.Number, loc, ws, start)
	}
}

// invalidTrailingIdent consumes a trailing run of identifier-like
// characters into the invalid token's text, covering the failed extent.
func (l *Lexer) invalidTrailingIdent(loc token.Location, ws []byte, start int) token.Token {
	for {
		b, ok := l.cur()
		if !ok {
			break
		}
		if isIdentAsciiCont(b) {
			l.advance(1)
			continue
		}
		break
	}
	return l.invalid(loc, ws, start)
}
