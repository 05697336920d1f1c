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

package value_test

import (
	"math"
	"testing"

	"github.com/s-ludwig/sdlite/lexer"
	"github.com/s-ludwig/sdlite/pool"
	"github.com/s-ludwig/sdlite/value"
)

func decodeOne(t *testing.T, input string) value.Value {
	t.Helper()
	lx := lexer.New([]byte(input), "t.sdl")
	tok := lx.Next()
	chars := pool.New[byte]()
	bytes := pool.New[byte]()
	v, err := value.Decode(tok, chars, bytes)
	if err != nil {
		t.Fatalf("Decode(%q): %v", input, err)
	}
	return v
}

func TestDecode_Text(t *testing.T) {
	v := decodeOne(t, `"foo\"bar\n"`)
	s, ok := v.Text()
	if !ok || s != "foo\"bar\n" {
		t.Fatalf("got %q, ok=%v", s, ok)
	}
}

func TestDecode_TextContinuation(t *testing.T) {
	v := decodeOne(t, "\"a\\\n   b\"")
	s, ok := v.Text()
	if !ok || s != "ab" {
		t.Fatalf("got %q, ok=%v", s, ok)
	}
}

func TestDecode_Backtick(t *testing.T) {
	v := decodeOne(t, "`a\\n`")
	s, ok := v.Text()
	if !ok || s != `a\n` {
		t.Fatalf("got %q, ok=%v", s, ok)
	}
}

func TestDecode_Binary(t *testing.T) {
	v := decodeOne(t, "[aGVsbG8sIHdvcmxkIQ==]")
	b, ok := v.Binary()
	if !ok || string(b) != "hello, world!" {
		t.Fatalf("got %q, ok=%v", b, ok)
	}
}

func TestDecode_Numbers(t *testing.T) {
	tests := []struct {
		input string
		kind  value.Kind
	}{
		{"42", value.KI32},
		{"-7", value.KI32},
		{"42L", value.KI64},
		{"42l", value.KI64},
		{"1.5", value.KF64},
		{"1.5f", value.KF32},
		{"1.5d", value.KF64},
		{"1.5bd", value.Null},
		{"3000000000", value.KI32},
	}
	for _, tt := range tests {
		v := decodeOne(t, tt.input)
		if v.Kind() != tt.kind {
			t.Errorf("%q: kind = %s, want %s", tt.input, v.Kind(), tt.kind)
		}
	}
}

func TestDecode_ClampsOutOfRangeIntegerToInt32(t *testing.T) {
	v := decodeOne(t, "3000000000")
	n, ok := v.I32()
	if !ok || n != math.MaxInt32 {
		t.Fatalf("got %d, ok=%v, want MaxInt32", n, ok)
	}
}

func TestDecode_Boolean(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true}, {"false", false}, {"on", true}, {"off", false},
	}
	for _, tt := range tests {
		v := decodeOne(t, tt.input)
		b, ok := v.Bool()
		if !ok || b != tt.want {
			t.Errorf("%q: got %v, ok=%v", tt.input, b, ok)
		}
	}
}

func TestDecode_Date(t *testing.T) {
	v := decodeOne(t, "2015/12/06")
	d, ok := v.Date()
	if !ok || d != (value.Date{Year: 2015, Month: 12, Day: 6}) {
		t.Fatalf("got %+v, ok=%v", d, ok)
	}
}

func TestDecode_DateTimeWithGMTOffset(t *testing.T) {
	v := decodeOne(t, "2015/12/06 12:00:00-GMT-02:30")
	dt, ok := v.DateTime()
	if !ok {
		t.Fatal("not a date_time")
	}
	if dt.Date != (value.Date{Year: 2015, Month: 12, Day: 6}) {
		t.Fatalf("date = %+v", dt.Date)
	}
	if dt.Hour != 12 || dt.Minute != 0 || dt.Second != 0 {
		t.Fatalf("time = %02d:%02d:%02d", dt.Hour, dt.Minute, dt.Second)
	}
	if dt.Zone.Kind != value.FixedOffset || dt.Zone.OffsetMinutes != -150 {
		t.Fatalf("zone = %+v, want fixed_offset(-150)", dt.Zone)
	}
}

func TestDecode_DateTimeUTC(t *testing.T) {
	v := decodeOne(t, "2015/12/06 12:00:00-UTC")
	dt, _ := v.DateTime()
	if dt.Zone.Kind != value.UTC {
		t.Fatalf("zone = %+v, want UTC", dt.Zone)
	}
}

func TestDecode_DateTimeNamedZone(t *testing.T) {
	v := decodeOne(t, "2015/12/06 12:00:00-PST")
	dt, _ := v.DateTime()
	if dt.Zone.Kind != value.Named || dt.Zone.Name != "PST" {
		t.Fatalf("zone = %+v, want named(PST)", dt.Zone)
	}
}

func TestDecode_Duration(t *testing.T) {
	v := decodeOne(t, "2d:12:14:34")
	hn, ok := v.Duration()
	if !ok {
		t.Fatal("not a duration")
	}
	want := ((int64(2)*24+12)*60+14)*60*10_000_000 + 34*10_000_000
	if hn != want {
		t.Fatalf("got %d, want %d", hn, want)
	}
}

func TestDecode_DurationPlain(t *testing.T) {
	v := decodeOne(t, "12:14:34")
	hn, _ := v.Duration()
	want := ((int64(12))*60+14)*60*10_000_000 + 34*10_000_000
	if hn != want {
		t.Fatalf("got %d, want %d", hn, want)
	}
}

func TestDecode_Null(t *testing.T) {
	v := decodeOne(t, "null")
	if v.Kind() != value.Null {
		t.Fatalf("kind = %s, want null", v.Kind())
	}
}

func TestDecode_InvalidDateRejected(t *testing.T) {
	lx := lexer.New([]byte("2015/02/30"), "t.sdl")
	tok := lx.Next()
	chars := pool.New[byte]()
	bytes := pool.New[byte]()
	if _, err := value.Decode(tok, chars, bytes); err == nil {
		t.Fatal("expected an error for Feb 30")
	}
}
