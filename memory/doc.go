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

/*
Package memory defines the allocation contract used by the jeflib containers
and a handful of strategies implementing it.

An Allocator hands out contiguous, default-initialized runs of elements and
takes them back. The default strategy, GoAllocator, is stateless: every
instance is interchangeable with every other, so a container may swap one for
another at any time. The remaining strategies wrap or replace it:

  - CheckedAllocator records every live run and reports leaks in tests.
  - LimitedAllocator fails with ErrOutOfMemory once a budget is exhausted.
  - PoolAllocator recycles runs through power-of-two sized sync.Pools.
  - Arena bump-allocates from large chunks and reclaims them all at once.

Allocation failure is reported as an error wrapping ErrOutOfMemory. Releasing
a run twice, or releasing a run that came from another allocator, is a
contract violation; only CheckedAllocator detects it.
*/
package memory
