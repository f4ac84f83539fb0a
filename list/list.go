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

package list

import "iter"

type node[T any] struct {
	next, prev *node[T]
	value      T
}

// List is a doubly-linked list of T. The zero value is an empty list.
type List[T any] struct {
	head, tail *node[T]
	length     int
}

// New returns a list holding values in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) Len() int    { return l.length }
func (l *List[T]) Empty() bool { return l.length == 0 }

// Front returns a pointer to the first element. It panics on an empty list.
func (l *List[T]) Front() *T {
	if l.head == nil {
		panic("list: Front of empty list")
	}
	return &l.head.value
}

// Back returns a pointer to the last element. It panics on an empty list.
func (l *List[T]) Back() *T {
	if l.tail == nil {
		panic("list: Back of empty list")
	}
	return &l.tail.value
}

func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.length++
}

// PopBack removes the last element. It does nothing on an empty list.
func (l *List[T]) PopBack() {
	n := l.tail
	if n == nil {
		return
	}
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	n.prev = nil
	l.length--
}

// PopFront removes the first element. It does nothing on an empty list.
func (l *List[T]) PopFront() {
	n := l.head
	if n == nil {
		return
	}
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	n.next = nil
	l.length--
}

// Clear removes every element.
func (l *List[T]) Clear() {
	for !l.Empty() {
		l.PopBack()
	}
}

func (l *List[T]) Begin() Cursor[T]         { return Cursor[T]{n: l.head} }
func (l *List[T]) End() Cursor[T]           { return Cursor[T]{} }
func (l *List[T]) RBegin() ReverseCursor[T] { return ReverseCursor[T]{n: l.tail} }
func (l *List[T]) REnd() ReverseCursor[T]   { return ReverseCursor[T]{} }

// All yields the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}
