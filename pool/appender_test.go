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

package pool_test

import (
	"testing"

	"github.com/s-ludwig/sdlite/pool"
)

func TestAppender_ExtractDoesNotInvalidate(t *testing.T) {
	a := pool.New[int]()
	a.Put(1)
	a.Put(2)
	first := a.ExtractArray()
	if len(first) != 2 || first[0] != 1 || first[1] != 2 {
		t.Fatalf("first extract = %v", first)
	}
	for i := 0; i < 10000; i++ {
		a.Put(i)
	}
	if first[0] != 1 || first[1] != 2 {
		t.Fatalf("growth invalidated previously extracted slice: %v", first)
	}
	second := a.ExtractArray()
	if len(second) != 10000 {
		t.Fatalf("second extract len = %d, want 10000", len(second))
	}
	for i, v := range second {
		if v != i {
			t.Fatalf("second[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestAppender_EmptyExtract(t *testing.T) {
	a := pool.New[string]()
	if got := a.ExtractArray(); len(got) != 0 {
		t.Fatalf("empty extract = %v, want empty", got)
	}
}

func TestAppender_PutAll(t *testing.T) {
	a := pool.New[byte]()
	a.PutAll([]byte("hello"))
	a.PutAll([]byte(", world"))
	got := string(a.ExtractArray())
	if got != "hello, world" {
		t.Fatalf("got %q", got)
	}
}

func TestAppender_RepeatedExtractKeepsEarlierSlicesIntact(t *testing.T) {
	a := pool.New[int]()
	var extracted [][]int
	for i := 0; i < 200; i++ {
		a.Put(i)
		a.Put(i + 1)
		extracted = append(extracted, a.ExtractArray())
	}
	for i, s := range extracted {
		if len(s) != 2 || s[0] != i || s[1] != i+1 {
			t.Fatalf("extracted[%d] = %v, want [%d %d]", i, s, i, i+1)
		}
	}
}
