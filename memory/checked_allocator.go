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
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/engjefersonsantiago/jeflib/internal/debug"
)

// CheckedAllocator wraps another allocator and keeps track of every run it
// hands out, so tests can assert that a container released everything it
// allocated. Sizes are counted in elements.
type CheckedAllocator[T any] struct {
	mem Allocator[T]
	sz  int64

	allocs   sync.Map
	badFrees sync.Map
}

// NewCheckedAllocator wraps mem. A nil mem wraps the default allocator.
func NewCheckedAllocator[T any](mem Allocator[T]) *CheckedAllocator[T] {
	if mem == nil {
		mem = DefaultAllocator[T]()
	}
	return &CheckedAllocator[T]{mem: mem}
}

// CurrentAlloc returns the number of elements currently outstanding.
func (a *CheckedAllocator[T]) CurrentAlloc() int { return int(atomic.LoadInt64(&a.sz)) }

func (a *CheckedAllocator[T]) Allocate(n int) ([]T, error) {
	out, err := a.mem.Allocate(n)
	if err != nil {
		return nil, err
	}
	atomic.AddInt64(&a.sz, int64(len(out)))
	if len(out) == 0 || elemSize[T]() == 0 {
		return out, nil
	}

	ptr := addressOf(out)
	if pc, _, l, ok := runtime.Caller(allocFrames); ok {
		a.allocs.Store(ptr, &dalloc{pc: pc, line: l, sz: len(out)})
	} else {
		a.allocs.Store(ptr, &dalloc{sz: len(out)})
	}
	return out, nil
}

func (a *CheckedAllocator[T]) Deallocate(buf []T) {
	defer a.mem.Deallocate(buf)
	if len(buf) == 0 {
		return
	}
	if elemSize[T]() == 0 {
		atomic.AddInt64(&a.sz, -int64(len(buf)))
		return
	}

	ptr := addressOf(buf)
	v, ok := a.allocs.LoadAndDelete(ptr)
	if !ok {
		// either freed twice or never allocated here
		if pc, _, l, ok := runtime.Caller(deallocFrames); ok {
			a.badFrees.Store(ptr, &dalloc{pc: pc, line: l, sz: len(buf)})
		} else {
			a.badFrees.Store(ptr, &dalloc{sz: len(buf)})
		}
		debug.Log(func() string { return fmt.Sprintf("memory: deallocating untracked run %#x", ptr) })
		return
	}
	atomic.AddInt64(&a.sz, -int64(v.(*dalloc).sz))
}

// Equal reports whether other is this same CheckedAllocator.
func (a *CheckedAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*CheckedAllocator[T])
	return ok && o == a
}

// the allocation usually happens a couple of frames below the container
// method that triggered it (grow -> reallocate -> Allocate); skip those so
// leak reports point at the container call.
const (
	defAllocFrames   = 3
	defDeallocFrames = 3
)

// JTL_CHECKED_ALLOC_FRAMES and JTL_CHECKED_DEALLOC_FRAMES control how many
// frames up the caller is recorded for allocations and bad frees.
var allocFrames, deallocFrames int = defAllocFrames, defDeallocFrames

func init() {
	if val, ok := os.LookupEnv("JTL_CHECKED_ALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			allocFrames = f
		}
	}

	if val, ok := os.LookupEnv("JTL_CHECKED_DEALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			deallocFrames = f
		}
	}
}

type dalloc struct {
	pc   uintptr
	line int
	sz   int
}

func (d *dalloc) where() string {
	if f := runtime.FuncForPC(d.pc); f != nil {
		return f.Name() + " line " + strconv.Itoa(d.line)
	}
	return "unknown caller"
}

type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertSize reports every run still outstanding, every untracked release,
// and a mismatch between the outstanding element count and sz.
func (a *CheckedAllocator[T]) AssertSize(t TestingT, sz int) {
	t.Helper()
	a.allocs.Range(func(_, value interface{}) bool {
		info := value.(*dalloc)
		t.Errorf("LEAK of %d elements FROM %s", info.sz, info.where())
		return true
	})

	a.badFrees.Range(func(_, value interface{}) bool {
		info := value.(*dalloc)
		t.Errorf("BAD FREE of %d elements FROM %s", info.sz, info.where())
		return true
	})

	if cur := int(atomic.LoadInt64(&a.sz)); cur != sz {
		t.Errorf("invalid memory size exp=%d, got=%d", sz, cur)
	}
}

// CheckedAllocatorScope remembers the outstanding count at creation so a
// test can verify that a block of code released what it allocated.
type CheckedAllocatorScope[T any] struct {
	alloc *CheckedAllocator[T]
	sz    int
}

func NewCheckedAllocatorScope[T any](alloc *CheckedAllocator[T]) *CheckedAllocatorScope[T] {
	return &CheckedAllocatorScope[T]{alloc: alloc, sz: alloc.CurrentAlloc()}
}

func (c *CheckedAllocatorScope[T]) CheckSize(t TestingT) {
	if sz := c.alloc.CurrentAlloc(); c.sz != sz {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", c.sz, sz)
	}
}

var (
	_ Allocator[byte] = (*CheckedAllocator[byte])(nil)
)
