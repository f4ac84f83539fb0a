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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		expected  int
	}{
		{"default chunk size", 0, DefaultArenaChunkSize},
		{"negative chunk size", -1, DefaultArenaChunkSize},
		{"custom chunk size", 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena[int](tt.chunkSize)
			assert.Equal(t, tt.expected, a.ChunkSize())
			assert.Len(t, a.chunks, 1)
		})
	}
}

func TestArenaAllocate(t *testing.T) {
	a := NewArena[int64](16)

	b1, err := a.Allocate(10)
	require.NoError(t, err)
	assert.Len(t, b1, 10)
	assert.Equal(t, 10, cap(b1), "runs must not alias their neighbours")

	b2, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, b2)

	// larger than a chunk
	b3, err := a.Allocate(40)
	require.NoError(t, err)
	assert.Len(t, b3, 40)
	assert.Equal(t, 2, a.NumChunks())
	assert.Equal(t, 50, a.InUse())
}

func TestArenaDeallocateRewindsLastRun(t *testing.T) {
	a := NewArena[int](32)
	first, err := a.Allocate(4)
	require.NoError(t, err)
	last, err := a.Allocate(8)
	require.NoError(t, err)
	last[0] = 7

	a.Deallocate(first)
	assert.Equal(t, 12, a.InUse(), "only the most recent run is reclaimed")

	a.Deallocate(last)
	assert.Equal(t, 4, a.InUse())

	again, err := a.Allocate(8)
	require.NoError(t, err)
	assert.Zero(t, again[0])
}

func TestArenaReset(t *testing.T) {
	a := NewArena[int](8)
	buf, err := a.Allocate(8)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = i + 1
	}
	_, err = a.Allocate(8)
	require.NoError(t, err)
	require.Equal(t, 2, a.NumChunks())

	a.Reset()
	assert.Zero(t, a.InUse())
	assert.Equal(t, 2, a.NumChunks())

	reused, err := a.Allocate(8)
	require.NoError(t, err)
	assert.Equal(t, make([]int, 8), reused)

	_, err = a.Allocate(8)
	require.NoError(t, err)
	assert.Equal(t, 2, a.NumChunks(), "second chunk is reused after reset")
}

func TestArenaRelease(t *testing.T) {
	a := NewArena[int](8)
	_, err := a.Allocate(1)
	require.NoError(t, err)

	a.Release()
	assert.Nil(t, a.chunks)
	assert.PanicsWithValue(t, "memory: arena used after Release", func() { a.Allocate(1) })
}

func TestArenaMetrics(t *testing.T) {
	a := NewArena[byte](100)
	_, err := a.Allocate(25)
	require.NoError(t, err)

	m := a.Metrics()
	assert.Equal(t, ArenaMetrics{InUse: 25, Capacity: 100, NumChunks: 1, ChunkSize: 100, Utilization: 0.25}, m)
}

func TestSizeClass(t *testing.T) {
	tests := []struct {
		in, exp int
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {1024, 10}, {1025, 11},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.exp, sizeClass(tt.in), "sizeClass(%d)", tt.in)
	}
}
