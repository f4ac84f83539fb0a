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
	"unsafe"

	"golang.org/x/xerrors"
)

// DefaultArenaChunkSize is the default chunk size, in elements, for new arenas.
const DefaultArenaChunkSize = 1 << 10

type chunk[T any] struct {
	buf    []T
	offset int
}

// Arena is a chunked bump allocator. Runs are carved out of large chunks;
// Deallocate only reclaims space when it is given the most recent run, and
// Reset reclaims everything at once. Not safe for concurrent use.
type Arena[T any] struct {
	chunks    []chunk[T]
	chunkSize int
	current   int
}

// NewArena creates an Arena whose chunks hold chunkSize elements.
// If chunkSize <= 0, DefaultArenaChunkSize is used.
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultArenaChunkSize
	}
	a := &Arena[T]{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

func (a *Arena[T]) Allocate(n int) ([]T, error) {
	a.panicIfReleased()
	if err := checkSize[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	c := &a.chunks[a.current]
	if c.offset+n > len(c.buf) {
		if !a.advance(n) {
			if err := a.growChecked(n); err != nil {
				return nil, err
			}
		}
		c = &a.chunks[a.current]
	}

	out := c.buf[c.offset : c.offset+n : c.offset+n]
	c.offset += n
	// chunks are reused after Reset
	clear(out)
	return out, nil
}

// Deallocate rewinds the arena if buf is the last run handed out from the
// current chunk; any other run stays in place until Reset.
func (a *Arena[T]) Deallocate(buf []T) {
	if a.chunks == nil || len(buf) == 0 || elemSize[T]() == 0 {
		return
	}
	c := &a.chunks[a.current]
	start := c.offset - len(buf)
	if start < 0 {
		return
	}
	if unsafe.SliceData(c.buf[start:]) == unsafe.SliceData(buf) {
		clear(buf)
		c.offset = start
	}
}

// Equal reports whether other is this same Arena.
func (a *Arena[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Arena[T])
	return ok && o == a
}

// Reset rewinds every chunk but keeps them for reuse.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = 0
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation panics.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.current = 0
}

// advance moves to the next already allocated chunk that fits n elements,
// which only exist after a Reset.
func (a *Arena[T]) advance(n int) bool {
	for i := a.current + 1; i < len(a.chunks); i++ {
		if len(a.chunks[i].buf)-a.chunks[i].offset >= n {
			a.current = i
			return true
		}
	}
	return false
}

func (a *Arena[T]) growChecked(min int) error {
	buf, err := GoAllocator[T]{}.Allocate(max(a.chunkSize, min))
	if err != nil {
		return xerrors.Errorf("memory: growing arena: %w", err)
	}
	a.chunks = append(a.chunks, chunk[T]{buf: buf})
	a.current = len(a.chunks) - 1
	return nil
}

func (a *Arena[T]) grow(min int) {
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, max(a.chunkSize, min))})
	a.current = len(a.chunks) - 1
}

func (a *Arena[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("memory: arena used after Release")
	}
}

// InUse returns the number of elements currently handed out.
func (a *Arena[T]) InUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// Capacity returns the total number of elements held by all chunks.
func (a *Arena[T]) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena[T]) NumChunks() int { return len(a.chunks) }

// ChunkSize returns the default chunk size in elements.
func (a *Arena[T]) ChunkSize() int { return a.chunkSize }

// Utilization returns the ratio of elements in use to capacity (0.0 to 1.0).
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.InUse()) / float64(capacity)
}

// ArenaMetrics is a snapshot of arena statistics.
type ArenaMetrics struct {
	InUse       int     // elements currently handed out
	Capacity    int     // elements held by all chunks
	NumChunks   int     // number of chunks
	ChunkSize   int     // default chunk size
	Utilization float64 // InUse / Capacity
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		InUse:       a.InUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

var (
	_ Allocator[byte] = (*Arena[byte])(nil)
)
