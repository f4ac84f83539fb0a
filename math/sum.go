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

package math

import "golang.org/x/exp/constraints"

// Addable is the set of types with a built-in + operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Sum adds vals left to right. Strings are concatenated. With no arguments
// it returns the zero value.
func Sum[T Addable](vals ...T) T {
	var total T
	for _, v := range vals {
		total += v
	}
	return total
}

// SumFunc folds vals left to right with add, starting from the first value.
// With no arguments it returns the zero value.
func SumFunc[T any](add func(a, b T) T, vals ...T) T {
	var total T
	if len(vals) == 0 {
		return total
	}
	total = vals[0]
	for _, v := range vals[1:] {
		total = add(total, v)
	}
	return total
}
