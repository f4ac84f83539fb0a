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

package vector

import (
	"github.com/goccy/go-json"
	"golang.org/x/xerrors"
)

// MarshalJSON encodes the live elements as a JSON array.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.length == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.Values())
}

// UnmarshalJSON replaces the contents of v with the decoded array. The
// capacity grows to the decoded length if needed and is otherwise kept.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return xerrors.Errorf("vector: decoding json: %w", err)
	}
	if err := v.Reserve(len(values)); err != nil {
		return err
	}
	v.length = copy(v.buf, values)
	return nil
}
