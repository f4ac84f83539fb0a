// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package iterator

import (
	"cmp"
	"strconv"
	"unsafe"

	"github.com/engjefersonsantiago/jeflib/internal/debug"
)

// Cursor is the operation set shared by forward and reverse iterators.
// C is the concrete cursor type.
type Cursor[T any, C any] interface {
	Next()
	Prev()
	Offset(k int)
	Value() *T
	Distance(other C) int
	Equal(other C) bool
	Less(other C) bool
}

// Iterator is a forward random-access cursor. The zero value is the nil
// iterator and must not be dereferenced.
type Iterator[T any] struct {
	buf []T
	pos int
}

// New returns an iterator at index pos of buf. buf must be the whole
// backing storage the iterator may walk over; pos == len(buf) is the
// past-the-end position.
func New[T any](buf []T, pos int) Iterator[T] {
	it := Iterator[T]{buf: buf, pos: pos}
	it.check()
	return it
}

func (it *Iterator[T]) check() {
	debug.Assert(it.pos >= 0 && it.pos <= len(it.buf), func() string {
		return "iterator: position " + strconv.Itoa(it.pos) + " outside [0, " + strconv.Itoa(len(it.buf)) + "]"
	})
}

// Next advances the iterator by one element.
func (it *Iterator[T]) Next() { it.pos++; it.check() }

// Prev moves the iterator back by one element.
func (it *Iterator[T]) Prev() { it.pos--; it.check() }

// Offset moves the iterator by k elements; k may be negative.
func (it *Iterator[T]) Offset(k int) { it.pos += k; it.check() }

// Add returns a copy of it moved by k elements.
func (it Iterator[T]) Add(k int) Iterator[T] {
	it.Offset(k)
	return it
}

// Index returns the element index the iterator points at.
func (it Iterator[T]) Index() int { return it.pos }

// IsNil reports whether it is the nil iterator.
func (it Iterator[T]) IsNil() bool { return it.buf == nil }

// Value returns a pointer to the current element.
func (it Iterator[T]) Value() *T { return it.At(0) }

// At returns a pointer to the element k positions away from it.
func (it Iterator[T]) At(k int) *T {
	if it.buf == nil {
		panic("iterator: dereference of nil iterator")
	}
	return &it.buf[it.pos+k]
}

// Get returns a copy of the current element.
func (it Iterator[T]) Get() T { return *it.Value() }

// Set overwrites the current element.
func (it Iterator[T]) Set(v T) { *it.Value() = v }

// Distance returns the number of elements from it to other; negative when
// other precedes it. Both must walk the same buffer.
func (it Iterator[T]) Distance(other Iterator[T]) int { return other.pos - it.pos }

// Equal reports whether both iterators point at the same element of the
// same buffer.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return unsafe.SliceData(it.buf) == unsafe.SliceData(other.buf) && it.pos == other.pos
}

// Less reports whether it precedes other. Only meaningful within a buffer.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.pos < other.pos }

// Compare returns -1, 0 or +1 following position order.
func (it Iterator[T]) Compare(other Iterator[T]) int { return cmp.Compare(it.pos, other.pos) }

var (
	_ Cursor[int, Iterator[int]] = (*Iterator[int])(nil)
)
