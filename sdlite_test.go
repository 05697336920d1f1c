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

package sdlite_test

import (
	"bytes"
	"testing"

	"github.com/s-ludwig/sdlite"
	"github.com/s-ludwig/sdlite/internal/sdltest"
)

const sampleDoc = `ne {
	foo:nf 1 a="x" {
		ng "hello, world" [aGVsbG8=] on 2015/12/06 2015/12/06 12:00:00-GMT-02:30 2d:12:14:34 1.5f
	}
}
bar
`

func TestRoundTrip_ParseGenerateParse(t *testing.T) {
	first, err := sdlite.ParseAll([]byte(sampleDoc), "t.sdl")
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}

	var buf bytes.Buffer
	if err := sdlite.Generate(&buf, first, 0); err != nil {
		t.Fatalf("generate: %v", err)
	}

	second, err := sdlite.ParseAll(buf.Bytes(), "t.sdl")
	if err != nil {
		t.Fatalf("second parse: %v\nregenerated:\n%s", err, buf.String())
	}

	if diff := sdltest.DiffNodes(first, second); diff != nil {
		t.Fatalf("round-trip mismatch: %v\nregenerated:\n%s", diff, buf.String())
	}
}

func TestEqual(t *testing.T) {
	a, err := sdlite.ParseAll([]byte("foo 1 2"), "t.sdl")
	if err != nil {
		t.Fatal(err)
	}
	b, err := sdlite.ParseAll([]byte("foo 1 2"), "t.sdl")
	if err != nil {
		t.Fatal(err)
	}
	if !sdlite.Equal(a[0], b[0]) {
		t.Fatal("expected equal trees")
	}
	c, err := sdlite.ParseAll([]byte("foo 1 3"), "t.sdl")
	if err != nil {
		t.Fatal(err)
	}
	if sdlite.Equal(a[0], c[0]) {
		t.Fatal("expected unequal trees")
	}
}

func TestParseAll_ErrorPropagates(t *testing.T) {
	if _, err := sdlite.ParseAll([]byte("foo=bar"), "t.sdl"); err == nil {
		t.Fatal("expected an error")
	}
}
