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
	"sync"
	"unsafe"
)

// maxPoolClass bounds the runs that are recycled; larger runs go straight
// to the Go runtime and back to the garbage collector.
const maxPoolClass = 20

// PoolAllocator recycles runs through sync.Pools bucketed by power-of-two
// capacity. Allocate returns a run of length n whose capacity is the next
// power of two; Deallocate must be given that same run.
type PoolAllocator[T any] struct {
	pools [maxPoolClass + 1]sync.Pool
}

func NewPoolAllocator[T any]() *PoolAllocator[T] {
	a := &PoolAllocator[T]{}
	for i := range a.pools {
		size := 1 << i
		a.pools[i].New = func() interface{} {
			b := make([]T, size)
			return unsafe.SliceData(b)
		}
	}
	return a
}

func (a *PoolAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkSize[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	class := sizeClass(n)
	if class > maxPoolClass || elemSize[T]() == 0 {
		return GoAllocator[T]{}.Allocate(n)
	}
	ptr := a.pools[class].Get().(*T)
	return unsafe.Slice(ptr, 1<<class)[:n], nil
}

// Deallocate zeroes buf and returns it to its pool so the next Allocate
// sees default-initialized elements.
func (a *PoolAllocator[T]) Deallocate(buf []T) {
	c := cap(buf)
	if !isPowerOf2(c) || elemSize[T]() == 0 {
		return
	}
	class := sizeClass(c)
	if class > maxPoolClass {
		return
	}
	buf = buf[:c]
	clear(buf)
	a.pools[class].Put(unsafe.SliceData(buf))
}

// Equal reports whether other is this same PoolAllocator.
func (a *PoolAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*PoolAllocator[T])
	return ok && o == a
}

var (
	_ Allocator[byte] = (*PoolAllocator[byte])(nil)
)
