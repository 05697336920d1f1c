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

// Package generator renders a node tree back to SDLang text. It is the
// reverse of package parser: formatting is canonical (one tab per nesting
// depth, one space between siblings on a line) and never reproduces the
// original source layout.
package generator

import (
	"encoding/base64"
	"fmt"
	"io"
	"math"

	"github.com/s-ludwig/sdlite/parser"
	"github.com/s-ludwig/sdlite/value"
)

// errWriter makes a run of Write calls sticky: once one fails, subsequent
// writes are no-ops and the first error is kept in err.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *errWriter) writeByte(b byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write([]byte{b})
}

// Generate writes nodes to sink, starting at the given indentation level.
func Generate(sink io.Writer, nodes []*parser.Node, level int) error {
	ew := &errWriter{w: sink}
	for _, n := range nodes {
		writeNode(ew, n, level)
	}
	return ew.err
}

func writeNode(ew *errWriter, n *parser.Node, level int) {
	for i := 0; i < level; i++ {
		ew.writeByte('\t')
	}
	name := n.QualifiedName
	if name == "content" {
		name = ""
	}
	ew.writeString(name)
	for _, v := range n.Values {
		ew.writeByte(' ')
		writeValue(ew, v)
	}
	for _, a := range n.Attributes {
		ew.writeString(" " + a.QualifiedName + "=")
		writeValue(ew, a.Value)
	}
	if len(n.Children) == 0 {
		ew.writeByte('\n')
		return
	}
	ew.writeString(" {\n")
	for _, c := range n.Children {
		writeNode(ew, c, level+1)
	}
	for i := 0; i < level; i++ {
		ew.writeByte('\t')
	}
	ew.writeString("}\n")
}

func writeValue(ew *errWriter, v value.Value) {
	switch v.Kind() {
	case value.Null:
		ew.writeString("null")
	case value.KText:
		s, _ := v.Text()
		ew.writeByte('"')
		if ew.err == nil {
			ew.err = EscapeSDLString(ew.w, s)
		}
		ew.writeByte('"')
	case value.KBinary:
		b, _ := v.Binary()
		ew.writeByte('[')
		ew.writeString(base64.StdEncoding.EncodeToString(b))
		ew.writeByte(']')
	case value.KI32:
		n, _ := v.I32()
		ew.writeString(fmt.Sprintf("%d", n))
	case value.KI64:
		n, _ := v.I64()
		ew.writeString(fmt.Sprintf("%dL", n))
	case value.KF32:
		f, _ := v.F32()
		if ew.err == nil {
			ew.err = WriteFloat(ew.w, float64(f), 7)
		}
		ew.writeByte('f')
	case value.KF64:
		f, _ := v.F64()
		if ew.err == nil {
			ew.err = WriteFloat(ew.w, f, 15)
		}
	case value.KBool:
		b, _ := v.Bool()
		if b {
			ew.writeString("true")
		} else {
			ew.writeString("false")
		}
	case value.KDate:
		d, _ := v.Date()
		ew.writeString(fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day))
	case value.KDuration:
		dur, _ := v.Duration()
		writeDuration(ew, dur)
	case value.KDateTime:
		dt, _ := v.DateTime()
		writeDateTime(ew, dt)
	case value.KDecimal:
		ew.writeString("null")
	}
}

// WriteString applies the generator's reverse escape table while copying s
// into w, without the surrounding quotes.
func WriteString(w io.Writer, s string) error {
	return EscapeSDLString(w, s)
}

// EscapeSDLString writes text to sink with '"', '\\', '\t', '\n' and '\r'
// backslash-escaped; it is the exported helper named by the generator's
// API surface.
func EscapeSDLString(sink io.Writer, text string) error {
	ew := &errWriter{w: sink}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			ew.writeString(`\"`)
		case '\\':
			ew.writeString(`\\`)
		case '\t':
			ew.writeString(`\t`)
		case '\n':
			ew.writeString(`\n`)
		case '\r':
			ew.writeString(`\r`)
		default:
			ew.writeByte(text[i])
		}
	}
	return ew.err
}

// WriteBytes writes a binary value's base64 rendering, including the
// surrounding brackets.
func WriteBytes(w io.Writer, b []byte) error {
	_, err := fmt.Fprintf(w, "[%s]", base64.StdEncoding.EncodeToString(b))
	return err
}

// WriteFloat writes v using the float-decimal rule: NaN/±Inf and zero both
// render as "0.0"; integer-valued floats always get one fractional digit;
// otherwise v is printed with %g at a precision of sigDigits (7 for f32,
// 15 for f64) minus floor(log10(|v|)), so values below 1 get more than
// sigDigits significant digits and values of 10 or more get fewer.
func WriteFloat(sink io.Writer, v float64, sigDigits int) error {
	var err error
	switch {
	case math.IsNaN(v), math.IsInf(v, 0), v == 0:
		_, err = io.WriteString(sink, "0.0")
	case v == math.Trunc(v):
		_, err = fmt.Fprintf(sink, "%.1f", v)
	default:
		pos := int(math.Floor(math.Log10(math.Abs(v))))
		n := sigDigits - pos
		_, err = fmt.Fprintf(sink, "%.*g", n, v)
	}
	return err
}

func writeDuration(ew *errWriter, hnsecs int64) {
	neg := hnsecs < 0
	if neg {
		hnsecs = -hnsecs
	}
	totalSeconds := hnsecs / 10_000_000
	frac := hnsecs % 10_000_000
	days := totalSeconds / 86400
	rem := totalSeconds % 86400
	hours := rem / 3600
	rem %= 3600
	minutes := rem / 60
	seconds := rem % 60

	if neg {
		ew.writeByte('-')
	}
	if days != 0 {
		ew.writeString(fmt.Sprintf("%dd:", days))
	}
	ew.writeString(fmt.Sprintf("%02d:%02d", hours, minutes))
	if seconds != 0 || frac != 0 {
		ew.writeString(fmt.Sprintf(":%02d", seconds))
		writeFraction(ew, frac)
	}
}

// writeFraction implements the sub-second rendering rule: zero omits
// entirely, a value on a millisecond boundary prints 3 digits, otherwise
// the full 7-digit hundred-nanosecond count is printed.
func writeFraction(ew *errWriter, frac int64) {
	if frac == 0 {
		return
	}
	if frac%10000 == 0 {
		ew.writeString(fmt.Sprintf(".%03d", frac/10000))
		return
	}
	ew.writeString(fmt.Sprintf(".%07d", frac))
}

func writeDateTime(ew *errWriter, dt value.DateTime) {
	ew.writeString(fmt.Sprintf("%04d/%02d/%02d %02d:%02d:%02d", dt.Date.Year, dt.Date.Month, dt.Date.Day, dt.Hour, dt.Minute, dt.Second))
	writeFraction(ew, dt.FractionalHnsecs)
	switch dt.Zone.Kind {
	case value.Local:
		// no suffix
	case value.UTC:
		ew.writeString("-UTC")
	case value.FixedOffset:
		m := dt.Zone.OffsetMinutes
		sign := byte('+')
		if m < 0 {
			sign = '-'
			m = -m
		}
		ew.writeString(fmt.Sprintf("-GMT%c%02d:%02d", sign, m/60, m%60))
	case value.Named:
		ew.writeString("-" + dt.Zone.Name)
	}
}
