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

import "cmp"

// Reverse walks a buffer backwards. It wraps a forward iterator, its base,
// and refers to the element just before the base, so a Reverse built from
// the past-the-end position refers to the last element.
type Reverse[T any] struct {
	base Iterator[T]
}

// NewReverse returns the reverse iterator whose base is base.
func NewReverse[T any](base Iterator[T]) Reverse[T] { return Reverse[T]{base: base} }

// Base returns the underlying forward iterator.
func (r Reverse[T]) Base() Iterator[T] { return r.base }

func (r *Reverse[T]) Next()        { r.base.Prev() }
func (r *Reverse[T]) Prev()        { r.base.Next() }
func (r *Reverse[T]) Offset(k int) { r.base.Offset(-k) }

// Add returns a copy of r moved by k elements in reverse order.
func (r Reverse[T]) Add(k int) Reverse[T] {
	r.Offset(k)
	return r
}

func (r Reverse[T]) IsNil() bool { return r.base.IsNil() }
func (r Reverse[T]) Value() *T   { return r.base.At(-1) }
func (r Reverse[T]) At(k int) *T { return r.base.At(-k - 1) }
func (r Reverse[T]) Get() T      { return *r.Value() }
func (r Reverse[T]) Set(v T)     { *r.Value() = v }
func (r Reverse[T]) Index() int  { return r.base.pos - 1 }

func (r Reverse[T]) Distance(other Reverse[T]) int { return r.base.pos - other.base.pos }
func (r Reverse[T]) Equal(other Reverse[T]) bool   { return r.base.Equal(other.base) }
func (r Reverse[T]) Less(other Reverse[T]) bool    { return r.base.pos > other.base.pos }
func (r Reverse[T]) Compare(other Reverse[T]) int  { return cmp.Compare(other.base.pos, r.base.pos) }

var (
	_ Cursor[int, Reverse[int]] = (*Reverse[int])(nil)
)
