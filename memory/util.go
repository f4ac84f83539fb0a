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
	"math/bits"
	"unsafe"

	"github.com/JohnCGriffin/overflow"
	"golang.org/x/xerrors"
)

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// checkSize panics on a negative count and fails if the run would not fit
// in the address space.
func checkSize[T any](n int) error {
	if n < 0 {
		panic("memory: negative allocation size")
	}
	if _, ok := overflow.Mul(n, elemSize[T]()); !ok {
		return xerrors.Errorf("memory: %d elements of %d bytes overflows: %w", n, elemSize[T](), ErrOutOfMemory)
	}
	return nil
}

// sizeClass returns the smallest c such that 1<<c >= n, for n >= 1.
func sizeClass(n int) int {
	return bits.Len(uint(n - 1))
}

func isPowerOf2(v int) bool {
	return v > 0 && v&(v-1) == 0
}

func addressOf[T any](b []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
