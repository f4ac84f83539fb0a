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

package memory_test

import (
	"testing"

	"github.com/engjefersonsantiago/jeflib/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitedAllocator(t *testing.T) {
	mem := memory.NewLimitedAllocator[int](nil, 10)
	assert.Equal(t, 10, mem.Limit())

	a, err := mem.Allocate(6)
	require.NoError(t, err)
	assert.Equal(t, 6, mem.InUse())

	_, err = mem.Allocate(5)
	assert.ErrorIs(t, err, memory.ErrOutOfMemory)
	assert.Equal(t, 6, mem.InUse())

	b, err := mem.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, 10, mem.InUse())

	mem.Deallocate(a)
	mem.Deallocate(b)
	assert.Zero(t, mem.InUse())

	c, err := mem.Allocate(10)
	require.NoError(t, err)
	assert.Len(t, c, 10)
}

func TestLimitedAllocator_Equal(t *testing.T) {
	a := memory.NewLimitedAllocator[int](nil, 1)
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(memory.NewLimitedAllocator[int](nil, 1)))
}
