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

// Package value implements the SDLang typed scalar value and the decoder
// that turns a lexer token into one. The Value type's only contract is the
// tagged union described by the specification; higher-level DOM concerns
// (e.g. how an application stores or maps these) are left to the caller.
package value

import "fmt"

// Kind discriminates the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	KText
	KBinary
	KI32
	KI64
	// KDecimal is kept in the tag set for layout stability even though no
	// decoder in this version ever produces it; arbitrary-precision
	// decimals are out of scope and decode to Null instead.
	KDecimal
	KF32
	KF64
	KBool
	KDateTime
	KDate
	KDuration
)

var kindNames = [...]string{
	Null: "null", KText: "text", KBinary: "binary", KI32: "i32", KI64: "i64",
	KDecimal: "decimal", KF32: "f32", KF64: "f64", KBool: "bool",
	KDateTime: "date_time", KDate: "date", KDuration: "duration",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TimezoneKind discriminates the Timezone variant attached to a date_time
// value.
type TimezoneKind int

const (
	Local TimezoneKind = iota
	UTC
	FixedOffset
	Named
)

// Timezone is the timezone payload of a DateTime value. Only one of
// OffsetMinutes/Name is meaningful, depending on Kind.
type Timezone struct {
	Kind          TimezoneKind
	OffsetMinutes int    // valid when Kind == FixedOffset
	Name          string // valid when Kind == Named; the raw 3-letter code
}

// Date is a civil (proleptic Gregorian) calendar date.
type Date struct {
	Year, Month, Day int
}

// DateTime is a civil date and time with hundred-nanosecond sub-second
// precision and an attached timezone.
type DateTime struct {
	Date                    Date
	Hour, Minute, Second    int
	FractionalHnsecs        int64 // 0..10_000_000, exclusive upper bound
	Zone                    Timezone
}

// Value is a tagged union over SDLang's scalar types. It is built exactly
// once by a constructor or by Decode and is never mutated afterwards;
// callers needing a different value should construct a new one.
type Value struct {
	kind Kind

	text string
	bin  []byte
	i32  int32
	i64  int64
	f32  float32
	f64  float64
	b    bool
	dt   DateTime
	date Date
	dur  int64 // signed hundred-nanosecond ticks
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

func NewNull() Value                { return Value{kind: Null} }
func NewText(s string) Value        { return Value{kind: KText, text: s} }
func NewBinary(b []byte) Value      { return Value{kind: KBinary, bin: b} }
func NewI32(n int32) Value          { return Value{kind: KI32, i32: n} }
func NewI64(n int64) Value          { return Value{kind: KI64, i64: n} }
func NewF32(f float32) Value        { return Value{kind: KF32, f32: f} }
func NewF64(f float64) Value        { return Value{kind: KF64, f64: f} }
func NewBool(b bool) Value          { return Value{kind: KBool, b: b} }
func NewDateTime(dt DateTime) Value { return Value{kind: KDateTime, dt: dt} }
func NewDate(d Date) Value          { return Value{kind: KDate, date: d} }
func NewDuration(hnsecs int64) Value {
	return Value{kind: KDuration, dur: hnsecs}
}

// Text returns the string payload and whether v holds one.
func (v Value) Text() (string, bool) { return v.text, v.kind == KText }

// Binary returns the byte-slice payload and whether v holds one.
func (v Value) Binary() ([]byte, bool) { return v.bin, v.kind == KBinary }

// I32 returns the int32 payload and whether v holds one.
func (v Value) I32() (int32, bool) { return v.i32, v.kind == KI32 }

// I64 returns the int64 payload and whether v holds one.
func (v Value) I64() (int64, bool) { return v.i64, v.kind == KI64 }

// F32 returns the float32 payload and whether v holds one.
func (v Value) F32() (float32, bool) { return v.f32, v.kind == KF32 }

// F64 returns the float64 payload and whether v holds one.
func (v Value) F64() (float64, bool) { return v.f64, v.kind == KF64 }

// Bool returns the boolean payload and whether v holds one.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KBool }

// DateTime returns the date-time payload and whether v holds one.
func (v Value) DateTime() (DateTime, bool) { return v.dt, v.kind == KDateTime }

// Date returns the date payload and whether v holds one.
func (v Value) Date() (Date, bool) { return v.date, v.kind == KDate }

// Duration returns the signed-hnsecs payload and whether v holds one.
func (v Value) Duration() (int64, bool) { return v.dur, v.kind == KDuration }

// Equal reports whether v and other represent the same value. NaN and the
// two infinities are deliberately not handled specially: callers comparing
// generated-then-reparsed floats must exclude them, per Testable Property 3.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Null, KDecimal:
		return true
	case KText:
		return v.text == other.text
	case KBinary:
		if len(v.bin) != len(other.bin) {
			return false
		}
		for i := range v.bin {
			if v.bin[i] != other.bin[i] {
				return false
			}
		}
		return true
	case KI32:
		return v.i32 == other.i32
	case KI64:
		return v.i64 == other.i64
	case KF32:
		return v.f32 == other.f32
	case KF64:
		return v.f64 == other.f64
	case KBool:
		return v.b == other.b
	case KDateTime:
		return v.dt == other.dt
	case KDate:
		return v.date == other.date
	case KDuration:
		return v.dur == other.dur
	}
	return false
}
