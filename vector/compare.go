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

import "golang.org/x/exp/constraints"

// Equal reports whether a and b have the same length, the same capacity and
// equal live elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() || a.Cap() != b.Cap() {
		return false
	}
	for i := 0; i < a.length; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// Less reports whether a orders strictly before b, comparing live elements
// lexicographically with <.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// Greater runs the lexicographic comparison of Less with > in place of <.
// It is not the mirror image of Less: a proper prefix is both Less and
// Greater than the longer vector, and unordered elements such as NaN are
// neither.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return GreaterFunc(a, b, func(x, y T) bool { return x > y })
}

// LessEqual is defined as !Greater(a, b).
func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool { return !Greater(a, b) }

// GreaterEqual is defined as !Less(a, b).
func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool { return !Less(a, b) }

// LessFunc is Less with a caller supplied strict element order.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	return lexicographicalCompare(a.Values(), b.Values(), less)
}

// GreaterFunc is Greater with a caller supplied element relation.
func GreaterFunc[T any](a, b *Vector[T], greater func(x, y T) bool) bool {
	return lexicographicalCompare(a.Values(), b.Values(), greater)
}

// lexicographicalCompare reports whether a precedes b under comp: the first
// position where one side is comp-before the other decides, and otherwise a
// precedes b only if it is shorter.
func lexicographicalCompare[T any](a, b []T, comp func(x, y T) bool) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if comp(a[i], b[i]) {
			return true
		}
		if comp(b[i], a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}
