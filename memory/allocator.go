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

package memory

import "golang.org/x/xerrors"

// ErrOutOfMemory is returned (wrapped) when an allocation cannot be satisfied.
var ErrOutOfMemory = xerrors.New("memory: out of memory")

// Allocator obtains and releases contiguous runs of T.
type Allocator[T any] interface {
	// Allocate returns a run of exactly n zero-valued elements
	// (len == cap == n for the stateless strategies). n == 0 returns a
	// nil run. Allocate panics if n is negative.
	Allocate(n int) ([]T, error)
	// Deallocate releases a run previously returned by Allocate. The
	// length of buf is advisory.
	Deallocate(buf []T)
	// Equal reports whether runs allocated by a may be released by other.
	Equal(other Allocator[T]) bool
}

// DefaultAllocator returns the stateless allocator used when a container is
// given none.
func DefaultAllocator[T any]() Allocator[T] { return GoAllocator[T]{} }
