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
Package iterator provides random-access cursors over contiguous buffers.

An Iterator is a position inside a backing slice. It does not own the slice,
carries no bounds and performs no invalidation tracking: once the container
that produced it reallocates or releases its buffer, the iterator keeps
pointing at the old storage and what it reads is no longer part of the
container. Dereferencing a nil iterator panics; dereferencing beyond the
backing slice panics through the usual index checks; positions between the
container's length and its capacity are not detected.

Reverse wraps an Iterator and walks the same range backwards. Both satisfy
Cursor, which the generic helpers in this package accept.
*/
package iterator
