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
Package vector implements a growable contiguous array whose storage comes
from a pluggable memory.Allocator.

A Vector owns exactly one buffer. Its length counts the live elements and
its capacity counts the allocated slots; appends double the capacity when
it is exhausted, which keeps the amortized cost of PushBack constant.
Operations that may allocate return an error wrapping memory.ErrOutOfMemory
when the allocator cannot satisfy them, and leave the vector unchanged.

Element access through At, Get and Set is not checked against the length
(build with the assert tag to check it). Iterators and the slices returned
by Values are invalidated by every operation that reallocates: Reserve
beyond the capacity, Resize beyond the capacity, appends at full capacity,
ShrinkToFit, Assign and Release.

A Vector is meant to have a single owner and is not safe for concurrent use.
Call Release when done with it so the allocator gets its buffer back.
*/
package vector
