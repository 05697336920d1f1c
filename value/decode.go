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

package value

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/s-ludwig/sdlite/pool"
	"github.com/s-ludwig/sdlite/token"
)

// Decode converts a token's text range into its typed Value, using
// charPool and bytePool for string and binary payload storage. Tokens
// whose type is not a scalar kind decode to Null. An error is returned
// for an out-of-range temporal component, for binary data that is not
// valid base64, and for a number that strconv cannot parse (such as an
// integer outside the 64-bit range).
func Decode(t token.Token, charPool, bytePool *pool.Appender[byte]) (Value, error) {
	switch t.Type {
	case token.Null:
		return NewNull(), nil
	case token.Text:
		return decodeText(t, charPool)
	case token.Binary:
		return decodeBinary(t, bytePool)
	case token.Number:
		return decodeNumber(t)
	case token.Boolean:
		return decodeBoolean(t), nil
	case token.Date:
		return decodeDate(t)
	case token.Duration:
		return decodeDuration(t)
	case token.DateTime:
		return decodeDateTime(t)
	default:
		return NewNull(), nil
	}
}

func decodeText(t token.Token, charPool *pool.Appender[byte]) (Value, error) {
	text := t.Text
	if len(text) >= 2 && text[0] == '`' {
		charPool.PutAll(text[1 : len(text)-1])
		return NewText(string(charPool.ExtractArray())), nil
	}
	// quoted form: text[1:len-1] is the body, between the quotes.
	body := text[1 : len(text)-1]
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			charPool.Put(c)
			i++
			continue
		}
		i++
		if i >= len(body) {
			break
		}
		switch body[i] {
		case '"':
			charPool.Put('"')
			i++
		case '\\':
			charPool.Put('\\')
			i++
		case 'n':
			charPool.Put('\n')
			i++
		case 'r':
			charPool.Put('\r')
			i++
		case 't':
			charPool.Put('\t')
			i++
		case '\n':
			i++
			for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
				i++
			}
		case '\r':
			i++
			if i < len(body) && body[i] == '\n' {
				i++
			}
			for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
				i++
			}
		default:
			// the lexer never lets an unrecognized escape reach here.
			charPool.Put(body[i])
			i++
		}
	}
	return NewText(string(charPool.ExtractArray())), nil
}

func decodeBinary(t token.Token, bytePool *pool.Appender[byte]) (Value, error) {
	body := t.Text[1 : len(t.Text)-1]
	clean := make([]byte, 0, len(body))
	for _, b := range body {
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		clean = append(clean, b)
	}
	dst := make([]byte, base64.StdEncoding.DecodedLen(len(clean)))
	n, err := base64.StdEncoding.Decode(dst, clean)
	if err != nil {
		return NewNull(), fmt.Errorf("%s: invalid base64 data: %w", t.Loc, err)
	}
	bytePool.PutAll(dst[:n])
	return NewBinary(bytePool.ExtractArray()), nil
}

func decodeNumber(t token.Token) (Value, error) {
	text := string(t.Text)
	if idx := strings.IndexByte(text, '.'); idx < 0 {
		suffix := byte(0)
		digits := text
		if n := len(text); n > 0 {
			last := text[n-1]
			if last == 'l' || last == 'L' || last == 'd' || last == 'D' || last == 'f' || last == 'F' {
				suffix = last
				digits = text[:n-1]
			}
		}
		n64, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return NewNull(), fmt.Errorf("%s: malformed integer %q: %w", t.Loc, text, err)
		}
		switch suffix {
		case 'l', 'L':
			return NewI64(n64), nil
		case 'd', 'D':
			return NewF64(float64(n64)), nil
		case 'f', 'F':
			return NewF32(float32(n64)), nil
		default:
			if n64 < math.MinInt32 || n64 > math.MaxInt32 {
				if n64 > math.MaxInt32 {
					n64 = math.MaxInt32
				} else {
					n64 = math.MinInt32
				}
			}
			return NewI32(int32(n64)), nil
		}
	}
	lower := strings.ToLower(text)
	switch {
	case strings.HasSuffix(lower, "bd"):
		return NewNull(), nil
	case strings.HasSuffix(text, "f") || strings.HasSuffix(text, "F"):
		f, err := strconv.ParseFloat(text[:len(text)-1], 32)
		if err != nil {
			return NewNull(), fmt.Errorf("%s: malformed float %q: %w", t.Loc, text, err)
		}
		return NewF32(float32(f)), nil
	default:
		trimmed := text
		if strings.HasSuffix(lower, "d") {
			trimmed = text[:len(text)-1]
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return NewNull(), fmt.Errorf("%s: malformed float %q: %w", t.Loc, text, err)
		}
		return NewF64(f), nil
	}
}

func decodeBoolean(t token.Token) Value {
	switch t.Text[0] {
	case 't':
		return NewBool(true)
	case 'f':
		return NewBool(false)
	default:
		return NewBool(string(t.Text) == "on")
	}
}

// digitRun reads consecutive ASCII digits from s starting at i, returning
// their integer value and the index just past them.
func digitRun(s string, i int) (int, int) {
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	v, _ := strconv.Atoi(s[i:j])
	return v, j
}

func decodeDate(t token.Token) (Value, error) {
	d, _, err := parseDate(string(t.Text), 0, t.Loc)
	if err != nil {
		return NewNull(), err
	}
	return NewDate(d), nil
}

func parseDate(s string, i int, loc token.Location) (Date, int, error) {
	y, i := digitRun(s, i)
	if i >= len(s) || s[i] != '/' {
		return Date{}, i, fmt.Errorf("%s: malformed date %q", loc, s)
	}
	i++
	mo, i2 := digitRun(s, i)
	i = i2
	if i >= len(s) || s[i] != '/' {
		return Date{}, i, fmt.Errorf("%s: malformed date %q", loc, s)
	}
	i++
	da, i2 := digitRun(s, i)
	i = i2
	d := Date{Year: y, Month: mo, Day: da}
	if !validDate(d) {
		return Date{}, i, fmt.Errorf("%s: out-of-range date %04d/%02d/%02d", loc, y, mo, da)
	}
	return d, i, nil
}

func validDate(d Date) bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	tt := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	y, m, day := tt.Date()
	return y == d.Year && int(m) == d.Month && day == d.Day
}

// fracToHnsecs right-pads a fractional-seconds digit string to 7 digits
// and returns its value in hundred-nanosecond ticks.
func fracToHnsecs(frac string) (int64, error) {
	if frac == "" {
		return 0, nil
	}
	for len(frac) < 7 {
		frac += "0"
	}
	frac = frac[:7]
	v, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func decodeDuration(t token.Token) (Value, error) {
	s := string(t.Text)
	neg := false
	i := 0
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}
	first, i2 := digitRun(s, i)
	i = i2
	days := 0
	var hours int
	if i < len(s) && s[i] == 'd' {
		days = first
		i++ // 'd'
		if i >= len(s) || s[i] != ':' {
			return NewNull(), fmt.Errorf("%s: malformed duration %q", t.Loc, s)
		}
		i++
		hours, i = digitRun(s, i)
	} else {
		hours = first
	}
	if i >= len(s) || s[i] != ':' {
		return NewNull(), fmt.Errorf("%s: malformed duration %q", t.Loc, s)
	}
	i++
	minutes, i2 := digitRun(s, i)
	i = i2
	if i >= len(s) || s[i] != ':' {
		return NewNull(), fmt.Errorf("%s: malformed duration %q", t.Loc, s)
	}
	i++
	seconds, i2 := digitRun(s, i)
	i = i2
	frac := ""
	if i < len(s) && s[i] == '.' {
		i++
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		frac = s[i:j]
		i = j
	}
	fracHn, err := fracToHnsecs(frac)
	if err != nil {
		return NewNull(), fmt.Errorf("%s: malformed duration fraction %q", t.Loc, s)
	}
	total := (((int64(days)*24+int64(hours))*60+int64(minutes))*60+int64(seconds))*10_000_000 + fracHn
	if neg {
		total = -total
	}
	return NewDuration(total), nil
}

func decodeDateTime(t token.Token) (Value, error) {
	s := string(t.Text)
	d, i, err := parseDate(s, 0, t.Loc)
	if err != nil {
		return NewNull(), err
	}
	if i >= len(s) || s[i] != ' ' {
		return NewNull(), fmt.Errorf("%s: malformed date-time %q", t.Loc, s)
	}
	i++
	hour, i2 := digitRun(s, i)
	i = i2
	if i >= len(s) || s[i] != ':' {
		return NewNull(), fmt.Errorf("%s: malformed date-time %q", t.Loc, s)
	}
	i++
	minute, i2 := digitRun(s, i)
	i = i2
	second := 0
	frac := ""
	if i < len(s) && s[i] == ':' {
		i++
		second, i2 = digitRun(s, i)
		i = i2
		if i < len(s) && s[i] == '.' {
			i++
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			frac = s[i:j]
			i = j
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return NewNull(), fmt.Errorf("%s: out-of-range time %02d:%02d:%02d", t.Loc, hour, minute, second)
	}
	fracHn, err := fracToHnsecs(frac)
	if err != nil {
		return NewNull(), fmt.Errorf("%s: malformed date-time fraction %q", t.Loc, s)
	}
	zone := Timezone{Kind: Local}
	if i < len(s) && s[i] == '-' {
		i++
		letters := s[i : i+3]
		i += 3
		switch {
		case i < len(s) && (s[i] == '+' || s[i] == '-'):
			sign := 1
			if s[i] == '-' {
				sign = -1
			}
			i++
			oh, i2 := digitRun(s, i)
			i = i2
			om := 0
			if i < len(s) && s[i] == ':' {
				i++
				om, i2 = digitRun(s, i)
				i = i2
			}
			zone = Timezone{Kind: FixedOffset, OffsetMinutes: sign * (oh*60 + om)}
		case letters == "UTC" || letters == "GMT":
			zone = Timezone{Kind: UTC}
		default:
			zone = Timezone{Kind: Named, Name: letters}
		}
	}
	dt := DateTime{Date: d, Hour: hour, Minute: minute, Second: second, FractionalHnsecs: fracHn, Zone: zone}
	return NewDateTime(dt), nil
}
