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

package iterator_test

import (
	"slices"
	"testing"

	"github.com/engjefersonsantiago/jeflib/iterator"
	"github.com/stretchr/testify/assert"
)

func TestIteratorDistanceMatchesSlice(t *testing.T) {
	v := []int{1, 2, 3, 4}
	first := iterator.New(v, 0)
	last := iterator.New(v, len(v))
	assert.Equal(t, len(v), first.Distance(last))
	assert.Equal(t, -len(v), last.Distance(first))
	assert.Equal(t, len(v), iterator.Len(first, last))
}

func TestIteratorStepping(t *testing.T) {
	v := []int{10, 20, 30, 40}
	it := iterator.New(v, 0)
	assert.Equal(t, 10, it.Get())

	it.Next()
	assert.Equal(t, 20, it.Get())
	it.Offset(2)
	assert.Equal(t, 40, it.Get())
	it.Offset(-3)
	assert.Equal(t, 10, it.Get())
	it.Next()
	it.Prev()
	assert.Equal(t, 0, it.Index())

	moved := it.Add(3)
	assert.Equal(t, 0, it.Index(), "Add must not move the receiver")
	assert.Equal(t, 40, moved.Get())
	assert.Equal(t, 30, *moved.At(-1))
}

func TestIteratorWritesThrough(t *testing.T) {
	v := []int{1, 2, 3}
	it := iterator.New(v, 1)
	it.Set(42)
	*it.At(1) = 7
	assert.Equal(t, []int{1, 42, 7}, v)
}

func TestIteratorComparison(t *testing.T) {
	v := make([]int, 4)
	a := iterator.New(v, 1)
	b := iterator.New(v, 3)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	assert.True(t, a.Add(2).Equal(b))
	assert.False(t, a.Equal(b))

	other := make([]int, 4)
	assert.False(t, iterator.New(other, 1).Equal(a), "same position in another buffer")
}

func TestNilIterator(t *testing.T) {
	var it iterator.Iterator[string]
	assert.True(t, it.IsNil())
	assert.True(t, it.Equal(iterator.Iterator[string]{}))
	assert.PanicsWithValue(t, "iterator: dereference of nil iterator", func() { it.Value() })

	var r iterator.Reverse[string]
	assert.True(t, r.IsNil())
	assert.PanicsWithValue(t, "iterator: dereference of nil iterator", func() { r.Get() })
}

func TestDereferencePastBufferPanics(t *testing.T) {
	v := []int{1, 2}
	end := iterator.New(v, len(v))
	assert.Panics(t, func() { end.Get() })
}

func TestReverse(t *testing.T) {
	v := []int{1, 2, 3, 4}
	rfirst := iterator.NewReverse(iterator.New(v, len(v)))
	rlast := iterator.NewReverse(iterator.New(v, 0))

	var got []int
	for it := rfirst; !it.Equal(rlast); it.Next() {
		got = append(got, it.Get())
	}
	assert.Equal(t, []int{4, 3, 2, 1}, got)

	assert.Equal(t, 4, rfirst.Distance(rlast))
	assert.True(t, rfirst.Less(rlast))
	assert.Equal(t, 3, rfirst.Index())
	assert.Equal(t, 2, *rfirst.At(2))
	assert.Equal(t, 3, rfirst.Add(1).Get())

	r := rfirst
	r.Offset(3)
	assert.Equal(t, 1, r.Get())
	r.Prev()
	assert.Equal(t, 2, r.Get())
	assert.Equal(t, 2, r.Base().Index())
}

func TestCopyAndValues(t *testing.T) {
	v := []string{"a", "b", "c"}

	dst := make([]string, 3)
	n := iterator.Copy(dst, iterator.New(v, 0), iterator.New(v, 3))
	assert.Equal(t, 3, n)
	assert.Equal(t, v, dst)

	short := make([]string, 2)
	n = iterator.Copy(short, iterator.NewReverse(iterator.New(v, 3)), iterator.NewReverse(iterator.New(v, 0)))
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"c", "b"}, short)

	var got []string
	for p := range iterator.Values[string](iterator.NewReverse(iterator.New(v, 3)), iterator.NewReverse(iterator.New(v, 0))) {
		got = append(got, *p)
	}
	assert.Equal(t, []string{"c", "b", "a"}, got)

	for p := range iterator.Values[string](iterator.New(v, 0), iterator.New(v, 3)) {
		*p += "!"
		break
	}
	assert.True(t, slices.Equal([]string{"a!", "b", "c"}, v))
}
