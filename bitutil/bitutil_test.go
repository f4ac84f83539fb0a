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

package bitutil_test

import (
	"testing"

	"github.com/engjefersonsantiago/jeflib/bitutil"
	"github.com/stretchr/testify/assert"
)

func TestBytesForBits(t *testing.T) {
	tests := []struct {
		name    string
		in, exp int
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"eight", 8, 1},
		{"nine", 9, 2},
		{"sixty five", 65, 9},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, bitutil.BytesForBits(test.in))
		})
	}
}

func TestBitIsSet(t *testing.T) {
	buf := []byte{0xa1, 0xc2}
	exp := []bool{true, false, false, false, false, true, false, true, false, true, false, false, false, false, true, true}
	var got, gotNot []bool
	for i := 0; i < 0x10; i++ {
		got = append(got, bitutil.BitIsSet(buf, i))
		gotNot = append(gotNot, !bitutil.BitIsNotSet(buf, i))
	}
	assert.Equal(t, exp, got)
	assert.Equal(t, exp, gotNot)
}

func TestClearBit(t *testing.T) {
	buf := []byte{0xff, 0xff}
	for i, v := range []bool{false, true, true, true, true, false, true, false, true, false, true, true, true, true, false, false} {
		if v {
			bitutil.ClearBit(buf, i)
		}
	}
	assert.Equal(t, []byte{0xa1, 0xc2}, buf)
}

func TestSetBit(t *testing.T) {
	buf := make([]byte, 2)
	for i, v := range []bool{true, false, false, false, false, true, false, true, false, true, false, false, false, false, true, true} {
		if v {
			bitutil.SetBit(buf, i)
		}
	}
	assert.Equal(t, []byte{0xa1, 0xc2}, buf)
}

func TestSetBitTo(t *testing.T) {
	buf := []byte{0x5e, 0x3d}
	for i, v := range []bool{true, false, false, false, false, true, false, true, false, true, false, false, false, false, true, true} {
		bitutil.SetBitTo(buf, i, v)
	}
	assert.Equal(t, []byte{0xa1, 0xc2}, buf)
}

func TestCountSetBits(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		n    int
		exp  int
	}{
		{"some 03 bits", []byte{0x03}, 3, 2},
		{"some 11 bits", []byte{0xc3, 0x02}, 11, 5},
		{"all  03 bits", []byte{0xff}, 3, 3},
		{"all  72 bits", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 9 * 8, 72},
		{"none 11 bits", []byte{0x00, 0xf8}, 11, 0},
		{"none 0 bits", nil, 0, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, bitutil.CountSetBits(test.buf, test.n))
		})
	}
}

func BenchmarkCountSetBits(b *testing.B) {
	buf := make([]byte, 128)
	for i := range buf {
		buf[i] = byte(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bitutil.CountSetBits(buf, 1000)
	}
}
