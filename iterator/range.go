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

import "iter"

// Len returns the number of elements in [first, last).
func Len[C any, P interface {
	*C
	Distance(other C) int
}](first, last C) int {
	return P(&first).Distance(last)
}

// Copy copies [first, last) into dst element by element and returns the
// number of elements copied, which is at most len(dst).
func Copy[T any, C any, P interface {
	*C
	Cursor[T, C]
}](dst []T, first, last C) int {
	n := 0
	for it := P(&first); n < len(dst) && !it.Equal(last); it.Next() {
		dst[n] = *it.Value()
		n++
	}
	return n
}

// Values yields pointers to the elements of [first, last) in cursor order.
// The element type cannot be inferred and must be given: Values[int](f, l).
func Values[T any, C any, P interface {
	*C
	Cursor[T, C]
}](first, last C) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for it := P(&first); !it.Equal(last); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
