// Package bitset implements a fixed-capacity bit set over a packed byte buffer,
// meant for "visited" bookkeeping over small dense indexes.
package bitset

import (
	"errors"
	"math/bits"
	"strings"

	willf "github.com/willf/bitset"
)

var ErrLengthMismatch = errors.New("bitset: storage length does not match capacity")
var ErrPaddingBits = errors.New("bitset: padding bits beyond capacity are set")

// FixedBitSet holds the indexes [0, Len()). Bit j of byte i (0 being the most
// significant bit) is index 8*i+j.
//
// A FixedBitSet is not safe for concurrent use.
type FixedBitSet struct {
	n     int
	bytes []byte
}

// New creates an empty set able to hold n indexes. A negative n is treated as 0.
func New(n int) *FixedBitSet {
	if n < 0 {
		n = 0
	}
	return &FixedBitSet{n: n, bytes: make([]byte, (n+7)/8)}
}

// FromBytes rebuilds a set of capacity n from storage produced by Bytes. The
// storage is copied.
func FromBytes(n int, b []byte) (*FixedBitSet, error) {
	if n < 0 {
		n = 0
	}
	if len(b) != (n+7)/8 {
		return nil, ErrLengthMismatch
	}
	if rem := n % 8; rem != 0 && b[len(b)-1]&(0xff>>rem) != 0 {
		return nil, ErrPaddingBits
	}
	set := New(n)
	copy(set.bytes, b)
	return set, nil
}

func mask(idx int) byte {
	return 0x80 >> (idx % 8)
}

// Len returns the capacity of the set.
func (set *FixedBitSet) Len() int {
	return set.n
}

// Get reports whether idx is set. ok is false when idx is out of range.
func (set *FixedBitSet) Get(idx int) (value, ok bool) {
	if idx < 0 || idx >= set.n {
		return false, false
	}
	return set.bytes[idx/8]&mask(idx) != 0, true
}

// Set marks idx and returns its previous value. Out of range indexes leave the
// set untouched and report ok as false.
func (set *FixedBitSet) Set(idx int) (prev, ok bool) {
	if prev, ok = set.Get(idx); ok {
		set.bytes[idx/8] |= mask(idx)
	}
	return
}

// Unset clears idx and returns its previous value, like Set.
func (set *FixedBitSet) Unset(idx int) (prev, ok bool) {
	if prev, ok = set.Get(idx); ok {
		set.bytes[idx/8] &^= mask(idx)
	}
	return
}

// Count returns the number of set indexes.
func (set *FixedBitSet) Count() int {
	count := 0
	for _, b := range set.bytes {
		count += bits.OnesCount8(b)
	}
	return count
}

// Min returns the smallest set index, or false if the set is empty.
func (set *FixedBitSet) Min() (int, bool) {
	for i, b := range set.bytes {
		if b != 0 {
			return i*8 + bits.LeadingZeros8(b), true
		}
	}
	return 0, false
}

// Indices returns the set indexes in ascending order.
func (set *FixedBitSet) Indices() []int {
	indices := make([]int, 0, set.Count())
	for i, b := range set.bytes {
		for b != 0 {
			j := bits.LeadingZeros8(b)
			indices = append(indices, i*8+j)
			b &^= 0x80 >> j
		}
	}
	return indices
}

// Bytes returns a copy of the packed storage.
func (set *FixedBitSet) Bytes() []byte {
	return append([]byte(nil), set.bytes...)
}

// Dense copies the set into a willf/bitset BitSet of the same length.
func (set *FixedBitSet) Dense() *willf.BitSet {
	dense := willf.New(uint(set.n))
	for _, idx := range set.Indices() {
		dense.Set(uint(idx))
	}
	return dense
}

// String renders one '0' or '1' per index, lowest index first.
func (set *FixedBitSet) String() string {
	var sb strings.Builder
	sb.Grow(set.n)
	for i := 0; i < set.n; i++ {
		if set.bytes[i/8]&mask(i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
