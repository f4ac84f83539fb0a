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

// Cursor walks a List front to back. The zero Cursor is the end position.
type Cursor[T any] struct {
	n *node[T]
}

// Next moves to the following element, or to End past the last one.
func (c *Cursor[T]) Next() {
	c.mustDeref("Next")
	c.n = c.n.next
}

// Prev moves to the preceding element, or to End before the first one.
func (c *Cursor[T]) Prev() {
	c.mustDeref("Prev")
	c.n = c.n.prev
}

// Value returns a pointer to the element under the cursor.
func (c Cursor[T]) Value() *T {
	c.mustDeref("Value")
	return &c.n.value
}

func (c Cursor[T]) Equal(other Cursor[T]) bool { return c.n == other.n }

func (c Cursor[T]) mustDeref(op string) {
	if c.n == nil {
		panic("list: " + op + " on end cursor")
	}
}

// ReverseCursor walks a List back to front. Next moves toward the head.
type ReverseCursor[T any] struct {
	n *node[T]
}

func (c *ReverseCursor[T]) Next() {
	Cursor[T]{c.n}.mustDeref("Next")
	c.n = c.n.prev
}

func (c *ReverseCursor[T]) Prev() {
	Cursor[T]{c.n}.mustDeref("Prev")
	c.n = c.n.next
}

func (c ReverseCursor[T]) Value() *T                         { return Cursor[T]{c.n}.Value() }
func (c ReverseCursor[T]) Equal(other ReverseCursor[T]) bool { return c.n == other.n }
