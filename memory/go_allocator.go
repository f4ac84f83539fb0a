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

import (
	"fmt"

	"golang.org/x/xerrors"
)

// GoAllocator delegates to the Go runtime. It carries no state and every
// GoAllocator of the same element type equals every other.
type GoAllocator[T any] struct{}

// NewGoAllocator returns a GoAllocator.
func NewGoAllocator[T any]() GoAllocator[T] { return GoAllocator[T]{} }

func (GoAllocator[T]) Allocate(n int) (buf []T, err error) {
	if err = checkSize[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	// make reports an unsatisfiable length by panicking with a runtime error
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = xerrors.Errorf("memory: allocating %d elements: %s: %w", n, fmt.Sprint(r), ErrOutOfMemory)
		}
	}()
	return make([]T, n), nil
}

// Deallocate leaves buf to the garbage collector.
func (GoAllocator[T]) Deallocate(buf []T) {}

func (GoAllocator[T]) Equal(other Allocator[T]) bool {
	switch other.(type) {
	case GoAllocator[T], *GoAllocator[T]:
		return true
	}
	return false
}

var (
	_ Allocator[byte] = GoAllocator[byte]{}
	_ Allocator[byte] = (*GoAllocator[byte])(nil)
)
