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

package bitutil

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/xerrors"
)

// ErrTooWide is returned when a Bitset does not fit the requested integer.
var ErrTooWide = xerrors.New("bitutil: bitset wider than 64 bits")

// Bitset is a fixed-width sequence of bits, bit 0 being the least
// significant. Bits at and above the width are always zero.
type Bitset struct {
	n   int
	buf []byte
}

// NewBitset returns an all-zero bitset of width n.
func NewBitset(n int) *Bitset {
	if n < 0 {
		panic("bitutil: negative bitset width")
	}
	return &Bitset{n: n, buf: make([]byte, BytesForBits(n))}
}

// BitsetFromUint64 returns a bitset of width n holding the low n bits of v.
func BitsetFromUint64(n int, v uint64) *Bitset {
	bs := NewBitset(n)
	for i := 0; i < min(n, 64); i++ {
		if v&(1<<uint(i)) != 0 {
			SetBit(bs.buf, i)
		}
	}
	return bs
}

// ParseBitset parses a string of '0' and '1' characters, most significant
// bit first, into a bitset as wide as the string.
func ParseBitset(s string) (*Bitset, error) {
	bs := NewBitset(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			SetBit(bs.buf, len(s)-1-i)
		case '0':
		default:
			return nil, xerrors.Errorf("bitutil: invalid bit %q at position %d", s[i], i)
		}
	}
	return bs, nil
}

func (b *Bitset) Len() int { return b.n }

// Bytes returns the LSB-first backing bitmap.
func (b *Bitset) Bytes() []byte { return b.buf }

// Test reports whether bit i is set.
func (b *Bitset) Test(i int) bool {
	b.checkIndex(i)
	return BitIsSet(b.buf, i)
}

// Set sets bit i to val.
func (b *Bitset) Set(i int, val bool) {
	b.checkIndex(i)
	SetBitTo(b.buf, i, val)
}

// Count returns the number of set bits.
func (b *Bitset) Count() int { return CountSetBits(b.buf, b.n) }

// Uint64 returns the bitset as an integer. It fails with ErrTooWide when
// the width exceeds 64 bits.
func (b *Bitset) Uint64() (uint64, error) {
	if b.n > 64 {
		return 0, xerrors.Errorf("bitutil: width %d: %w", b.n, ErrTooWide)
	}
	var v uint64
	for i, x := range b.buf {
		v |= uint64(x) << (8 * uint(i))
	}
	return v, nil
}

// String renders the bits most significant first.
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := b.n - 1; i >= 0; i-- {
		if BitIsSet(b.buf, i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Equal reports whether b and other have the same width and bits.
func (b *Bitset) Equal(other *Bitset) bool {
	return b.n == other.n && bytes.Equal(b.buf, other.buf)
}

// Hash returns a hash of the width and bits of b.
func (b *Bitset) Hash() uint64 { return xxh3.HashSeed(b.buf, uint64(b.n)) }

// Clone returns an independent copy of b.
func (b *Bitset) Clone() *Bitset {
	return &Bitset{n: b.n, buf: bytes.Clone(b.buf)}
}

func (b *Bitset) checkIndex(i int) {
	if i < 0 || i >= b.n {
		panic("bitutil: bit index " + strconv.Itoa(i) + " out of range [0, " + strconv.Itoa(b.n) + ")")
	}
}

// Concat joins bitsets into one whose width is the sum of theirs. The first
// argument ends up in the most significant bits, so Concat(1b1, 2b01, 3b001)
// is 6b101001.
func Concat(bs ...*Bitset) *Bitset {
	width := 0
	for _, b := range bs {
		width += b.n
	}
	out := NewBitset(width)
	off := 0
	for i := len(bs) - 1; i >= 0; i-- {
		CopyBitmap(bs[i].buf, 0, bs[i].n, out.buf, off)
		off += bs[i].n
	}
	return out
}

// Split undoes Concat: each of outs receives the next most significant run
// of bits of bs, as wide as that out already is. The widths of outs must add
// up to the width of bs.
func Split(bs *Bitset, outs ...*Bitset) {
	width := 0
	for _, o := range outs {
		width += o.n
	}
	if width != bs.n {
		panic("bitutil: split widths add up to " + strconv.Itoa(width) + ", want " + strconv.Itoa(bs.n))
	}
	off := bs.n
	for _, o := range outs {
		off -= o.n
		CopyBitmap(bs.buf, off, o.n, o.buf, 0)
	}
}

// Range returns bits [pos, pos+n) of bs moved down to bit 0, in a bitset as
// wide as bs.
func Range(bs *Bitset, pos, n int) *Bitset {
	checkRange(bs, pos, n)
	out := NewBitset(bs.n)
	CopyBitmap(bs.buf, pos, n, out.buf, 0)
	return out
}

// RangeN is Range with a result exactly n bits wide.
func RangeN(bs *Bitset, pos, n int) *Bitset {
	checkRange(bs, pos, n)
	out := NewBitset(n)
	CopyBitmap(bs.buf, pos, n, out.buf, 0)
	return out
}

func checkRange(bs *Bitset, pos, n int) {
	if pos < 0 || n < 0 || pos+n > bs.n {
		panic("bitutil: range [" + strconv.Itoa(pos) + ", " + strconv.Itoa(pos+n) + ") out of width " + strconv.Itoa(bs.n))
	}
}
