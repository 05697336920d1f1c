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

// Package pool implements a growable append buffer that hands out owned,
// independent slices without ever invalidating a slice it has already
// handed out.
package pool

import "unsafe"

// minBytes is the target byte size of a freshly allocated region when no
// better estimate is available.
const minBytes = 65536

// minElems returns the minimum element count for a region of T, following
// max(100, 65536/sizeof(T)).
func minElems[T any]() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		sz = 1
	}
	if n := minBytes / sz; n > 100 {
		return n
	}
	return 100
}

// An Appender accumulates elements of type T and hands out owned slices via
// ExtractArray. Between an ExtractArray call and the next one, Put and
// PutAll accumulate into an internal region; ExtractArray returns that
// region as an independent slice and advances an internal base past it, so
// later appends never alias a slice already returned.
//
// Growth is amortized O(1): while nothing has been extracted yet, the
// region doubles in place. Once a tail has been extracted, growing
// allocates a fresh region sized to the live (unextracted) tail plus the
// requested reserve, rounded up to a multiple of the minimum chunk size,
// and only the live tail is copied — the extracted prefix is left
// untouched in its own backing array.
//
// An Appender is not safe for concurrent use and must not be copied after
// first use.
type Appender[T any] struct {
	buf  []T
	base int
}

// New returns an empty Appender for elements of type T.
func New[T any]() *Appender[T] {
	return &Appender[T]{}
}

// Put appends a single item.
func (a *Appender[T]) Put(item T) {
	a.grow(1)
	a.buf = append(a.buf, item)
}

// PutAll appends a slice of items.
func (a *Appender[T]) PutAll(items []T) {
	if len(items) == 0 {
		return
	}
	a.grow(len(items))
	a.buf = append(a.buf, items...)
}

// Len returns the number of elements accumulated since the last
// ExtractArray.
func (a *Appender[T]) Len() int {
	return len(a.buf) - a.base
}

// ExtractArray returns the elements accumulated since the last
// ExtractArray (or since creation) as an owned slice, capped to its own
// length so that further Put calls can never grow into it by accident,
// and advances the base past it.
func (a *Appender[T]) ExtractArray() []T {
	out := a.buf[a.base:len(a.buf):len(a.buf)]
	a.base = len(a.buf)
	return out
}

// grow ensures capacity for n more elements, relocating the live tail
// to a fresh region when a prefix has already been extracted.
func (a *Appender[T]) grow(n int) {
	need := len(a.buf) + n
	if need <= cap(a.buf) {
		return
	}
	if a.base == 0 {
		newCap := cap(a.buf) * 2
		if newCap == 0 {
			newCap = minElems[T]()
		}
		for newCap < need {
			newCap *= 2
		}
		nb := make([]T, len(a.buf), newCap)
		copy(nb, a.buf)
		a.buf = nb
		return
	}
	tail := len(a.buf) - a.base
	chunk := minElems[T]()
	newCap := ((tail+n)/chunk + 1) * chunk
	nb := make([]T, tail, newCap)
	copy(nb, a.buf[a.base:])
	a.buf = nb
	a.base = 0
}
