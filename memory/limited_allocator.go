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
	"github.com/JohnCGriffin/overflow"
	"golang.org/x/xerrors"
)

// LimitedAllocator wraps another allocator and refuses to keep more than
// limit elements outstanding at once. It is not safe for concurrent use.
type LimitedAllocator[T any] struct {
	mem   Allocator[T]
	limit int
	inUse int
}

// NewLimitedAllocator wraps mem with a budget of limit elements. A nil mem
// wraps the default allocator.
func NewLimitedAllocator[T any](mem Allocator[T], limit int) *LimitedAllocator[T] {
	if mem == nil {
		mem = DefaultAllocator[T]()
	}
	return &LimitedAllocator[T]{mem: mem, limit: limit}
}

func (a *LimitedAllocator[T]) Limit() int { return a.limit }
func (a *LimitedAllocator[T]) InUse() int { return a.inUse }

func (a *LimitedAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		panic("memory: negative allocation size")
	}
	total, ok := overflow.Add(a.inUse, n)
	if !ok || total > a.limit {
		return nil, xerrors.Errorf("memory: %d elements requested with %d of %d in use: %w", n, a.inUse, a.limit, ErrOutOfMemory)
	}

	out, err := a.mem.Allocate(n)
	if err != nil {
		return nil, err
	}
	a.inUse += len(out)
	return out, nil
}

func (a *LimitedAllocator[T]) Deallocate(buf []T) {
	a.inUse -= len(buf)
	a.mem.Deallocate(buf)
}

// Equal reports whether other is this same LimitedAllocator.
func (a *LimitedAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*LimitedAllocator[T])
	return ok && o == a
}

var (
	_ Allocator[byte] = (*LimitedAllocator[byte])(nil)
)
