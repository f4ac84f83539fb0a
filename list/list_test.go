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

package list_test

import (
	"slices"
	"testing"

	"github.com/engjefersonsantiago/jeflib/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forward[T any](l *list.List[T]) []T {
	var out []T
	for c := l.Begin(); !c.Equal(l.End()); c.Next() {
		out = append(out, *c.Value())
	}
	return out
}

func backward[T any](l *list.List[T]) []T {
	var out []T
	for c := l.RBegin(); !c.Equal(l.REnd()); c.Next() {
		out = append(out, *c.Value())
	}
	return out
}

func TestEmpty(t *testing.T) {
	var l list.List[int]
	assert.Zero(t, l.Len())
	assert.True(t, l.Empty())
	assert.True(t, l.Begin().Equal(l.End()))
	assert.True(t, l.RBegin().Equal(l.REnd()))
	assert.Panics(t, func() { l.Front() })
	assert.Panics(t, func() { l.Back() })

	l.PopBack()
	l.PopFront()
	assert.True(t, l.Empty())
}

func TestPushBack(t *testing.T) {
	l := list.New[int]()
	l.PushBack(1)
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.Empty())
	assert.Same(t, l.Front(), l.Back())

	l.PushBack(2)
	l.PushBack(3)
	assert.Equal(t, []int{1, 2, 3}, forward(l))
	assert.Equal(t, []int{3, 2, 1}, backward(l))
}

func TestSingleElementTraversal(t *testing.T) {
	l := list.New(42)
	assert.Equal(t, []int{42}, forward(l))
	assert.Equal(t, []int{42}, backward(l))
}

func TestPushFront(t *testing.T) {
	l := list.New(2, 3)
	l.PushFront(1)
	l.PushFront(0)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []int{0, 1, 2, 3}, forward(l))
	assert.Equal(t, []int{3, 2, 1, 0}, backward(l))
}

func TestFrontBack(t *testing.T) {
	l := list.New(42)
	assert.Equal(t, *l.Back(), *l.Front())

	l.PushBack(7)
	assert.Equal(t, 42, *l.Front())
	assert.Equal(t, 7, *l.Back())

	*l.Back() = 8
	assert.Equal(t, []int{42, 8}, forward(l))
}

func TestPop(t *testing.T) {
	tests := []struct {
		name string
		pop  func(*list.List[int])
		want [][]int
	}{
		{"back", (*list.List[int]).PopBack, [][]int{{1, 2}, {1}, nil, nil}},
		{"front", (*list.List[int]).PopFront, [][]int{{2, 3}, {3}, nil, nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := list.New(1, 2, 3)
			for i, want := range tt.want {
				tt.pop(l)
				assert.Equal(t, want, forward(l))
				assert.Equal(t, len(want), l.Len())
				rev := slices.Clone(want)
				slices.Reverse(rev)
				assert.Equal(t, rev, backward(l), "step %d", i)
			}
			assert.True(t, l.Empty())
		})
	}
}

func TestPopThenPush(t *testing.T) {
	l := list.New(42)
	l.PopBack()
	require.True(t, l.Empty())

	l.PushFront(1)
	l.PushBack(2)
	assert.Equal(t, []int{1, 2}, forward(l))
	assert.Equal(t, []int{2, 1}, backward(l))
}

func TestClear(t *testing.T) {
	l := list.New("a", "b", "c")
	l.Clear()
	assert.True(t, l.Empty())
	assert.Nil(t, forward(l))

	l.PushBack("d")
	assert.Equal(t, []string{"d"}, forward(l))
}

func TestCursor(t *testing.T) {
	l := list.New(1, 2, 3)

	c := l.Begin()
	c.Next()
	c.Next()
	assert.Equal(t, 3, *c.Value())
	c.Prev()
	assert.Equal(t, 2, *c.Value())
	*c.Value() = 20
	assert.Equal(t, []int{1, 20, 3}, forward(l))

	c.Next()
	c.Next()
	assert.True(t, c.Equal(l.End()))
	assert.Panics(t, func() { c.Value() })
	assert.Panics(t, func() { c.Next() })

	r := l.RBegin()
	r.Next()
	assert.Equal(t, 20, *r.Value())
	r.Prev()
	assert.Equal(t, 3, *r.Value())
	r.Prev()
	assert.True(t, r.Equal(l.REnd()))
	assert.Panics(t, func() { r.Prev() })
}

func TestSequences(t *testing.T) {
	l := list.New(1, 2, 3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(l.All()))
	assert.Equal(t, []int{4, 3, 2, 1}, slices.Collect(l.Backward()))

	var got []int
	for v := range l.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
}
