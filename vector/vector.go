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

package vector

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/JohnCGriffin/overflow"
	"github.com/engjefersonsantiago/jeflib/internal/debug"
	"github.com/engjefersonsantiago/jeflib/iterator"
	"github.com/engjefersonsantiago/jeflib/memory"
	"golang.org/x/xerrors"
)

// Vector is a dynamic array of T. The zero value is an empty vector using
// the default allocator.
type Vector[T any] struct {
	mem    memory.Allocator[T]
	buf    []T // len(buf) is the capacity
	length int
}

// NewEmpty returns an empty vector that allocates from mem. A nil mem
// selects memory.DefaultAllocator.
func NewEmpty[T any](mem memory.Allocator[T]) *Vector[T] {
	if mem == nil {
		mem = memory.DefaultAllocator[T]()
	}
	return &Vector[T]{mem: mem}
}

// New returns a vector holding values, with capacity equal to their count.
func New[T any](mem memory.Allocator[T], values ...T) (*Vector[T], error) {
	return FromSlice(mem, values)
}

// FromSlice returns a vector holding a copy of values, with capacity equal
// to len(values).
func FromSlice[T any](mem memory.Allocator[T], values []T) (*Vector[T], error) {
	v := NewEmpty(mem)
	if err := v.reallocate(len(values), false); err != nil {
		return nil, xerrors.Errorf("vector: construct: %w", err)
	}
	v.length = copy(v.buf, values)
	return v, nil
}

// NewFromRange returns a vector holding the elements of [first, last), with
// capacity equal to their count. Any cursor type works, so a reverse range
// builds a reversed copy.
func NewFromRange[T any, C any, P interface {
	*C
	iterator.Cursor[T, C]
}](mem memory.Allocator[T], first, last C) (*Vector[T], error) {
	n := P(&first).Distance(last)
	if n < 0 {
		panic("vector: range end precedes its start")
	}
	v := NewEmpty(mem)
	if err := v.reallocate(n, false); err != nil {
		return nil, xerrors.Errorf("vector: construct: %w", err)
	}
	v.length = iterator.Copy[T, C, P](v.buf, first, last)
	return v, nil
}

func (v *Vector[T]) allocator() memory.Allocator[T] {
	if v.mem == nil {
		v.mem = memory.DefaultAllocator[T]()
	}
	return v.mem
}

// Allocator returns the allocator backing v.
func (v *Vector[T]) Allocator() memory.Allocator[T] { return v.allocator() }

// Clone returns a deep copy of v whose capacity equals v.Len(). The copy
// allocates from the same allocator.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := NewEmpty(v.allocator())
	if err := out.reallocate(v.length, false); err != nil {
		return nil, xerrors.Errorf("vector: clone: %w", err)
	}
	out.length = copy(out.buf, v.buf[:v.length])
	return out, nil
}

// Assign replaces the contents of v with a deep copy of other. Unlike Clone,
// the new buffer is sized to other.Cap(). v keeps its own allocator.
// On failure v is left unchanged.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	nbuf, err := v.allocator().Allocate(len(other.buf))
	if err != nil {
		return xerrors.Errorf("vector: assign: %w", err)
	}
	copy(nbuf, other.buf[:other.length])
	v.install(nbuf)
	v.length = other.length
	return nil
}

// Release returns the buffer to the allocator and leaves v empty with no
// capacity. Calling Release more than once is harmless.
func (v *Vector[T]) Release() {
	if v.buf != nil {
		v.mem.Deallocate(v.buf)
		v.buf = nil
	}
	v.length = 0
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether v holds no live elements.
func (v *Vector[T]) Empty() bool { return v.length == 0 }

// At returns a pointer to element i. i is not checked against Len; indexes
// past the capacity panic.
func (v *Vector[T]) At(i int) *T {
	debug.Assert(i >= 0 && i < v.length, func() string {
		return "vector: index " + strconv.Itoa(i) + " out of range [0, " + strconv.Itoa(v.length) + ")"
	})
	return &v.buf[i]
}

// Get returns a copy of element i.
func (v *Vector[T]) Get(i int) T { return *v.At(i) }

// Set overwrites element i.
func (v *Vector[T]) Set(i int, x T) { *v.At(i) = x }

// PushBack appends x, doubling the capacity first when it is exhausted.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.grow(); err != nil {
		return xerrors.Errorf("vector: push back: %w", err)
	}
	v.buf[v.length] = x
	v.length++
	return nil
}

// EmplaceBack appends a zero T, lets init fill it in place and returns a
// pointer to it. The growth policy is the one of PushBack.
func (v *Vector[T]) EmplaceBack(init func(*T)) (*T, error) {
	if err := v.grow(); err != nil {
		return nil, xerrors.Errorf("vector: emplace back: %w", err)
	}
	slot := &v.buf[v.length]
	var zero T
	*slot = zero
	if init != nil {
		init(slot)
	}
	v.length++
	return slot, nil
}

// Reserve grows the capacity to exactly n if n exceeds it. It never shrinks
// and never changes the length.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		panic("vector: negative capacity")
	}
	if err := v.reallocate(n, false); err != nil {
		return xerrors.Errorf("vector: reserve %d: %w", n, err)
	}
	return nil
}

// Resize sets the length to n, growing the capacity to exactly n first if
// needed. The capacity is never reduced. Slots exposed by growing the length
// hold whatever they held before: zero values if they were never written,
// stale elements if the vector was shrunk or cleared earlier.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vector: negative length")
	}
	if err := v.reallocate(n, false); err != nil {
		return xerrors.Errorf("vector: resize %d: %w", n, err)
	}
	v.length = n
	return nil
}

// ShrinkToFit reallocates the buffer to exactly Len slots, even when it is
// already that size.
func (v *Vector[T]) ShrinkToFit() error {
	if err := v.reallocate(v.length, true); err != nil {
		return xerrors.Errorf("vector: shrink to fit: %w", err)
	}
	return nil
}

// Clear drops all elements but keeps the buffer for reuse.
func (v *Vector[T]) Clear() { v.length = 0 }

// grow makes room for one more element.
func (v *Vector[T]) grow() error {
	if v.length < len(v.buf) {
		return nil
	}
	n := 1
	if len(v.buf) > 0 {
		var ok bool
		if n, ok = overflow.Mul(len(v.buf), 2); !ok {
			return xerrors.Errorf("vector: capacity %d cannot double: %w", len(v.buf), memory.ErrOutOfMemory)
		}
	}
	return v.reallocate(n, false)
}

// reallocate moves the live elements into a fresh buffer of n slots when n
// exceeds the capacity, or unconditionally when force is set. The new buffer
// is obtained before the old one is released.
func (v *Vector[T]) reallocate(n int, force bool) error {
	if n <= len(v.buf) && !force {
		return nil
	}
	nbuf, err := v.allocator().Allocate(n)
	if err != nil {
		return err
	}
	debug.Log(func() string {
		return fmt.Sprintf("vector: reallocate %d -> %d slots, %d live", len(v.buf), n, v.length)
	})
	copy(nbuf, v.buf[:v.length])
	v.install(nbuf)
	return nil
}

// install swaps in nbuf and releases the previous buffer.
func (v *Vector[T]) install(nbuf []T) {
	old := v.buf
	v.buf = nbuf
	if old != nil {
		v.mem.Deallocate(old)
	}
}

// Begin returns an iterator at the first element.
func (v *Vector[T]) Begin() iterator.Iterator[T] { return iterator.New(v.buf, 0) }

// End returns the past-the-end iterator.
func (v *Vector[T]) End() iterator.Iterator[T] { return iterator.New(v.buf, v.length) }

// RBegin returns a reverse iterator at the last element.
func (v *Vector[T]) RBegin() iterator.Reverse[T] { return iterator.NewReverse(v.End()) }

// REnd returns the reverse past-the-end iterator.
func (v *Vector[T]) REnd() iterator.Reverse[T] { return iterator.NewReverse(v.Begin()) }

// Values returns the live elements as a slice sharing v's buffer.
func (v *Vector[T]) Values() []T { return v.buf[:v.length:v.length] }

// All yields index/value pairs front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.length - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) String() string { return fmt.Sprint(v.Values()) }
