package main

import (
	"errors"
	"io"
	"math"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"

	"github.com/astei/advent/bitset"
)

var ErrInvalidNBTCapacity = errors.New("nbt: capacity out of range")

// nbtBitSet is the compound written by WriteNBT.
type nbtBitSet struct {
	Capacity int32  `nbt:"Capacity"`
	Bits     []byte `nbt:"Bits"`
}

// WriteNBT writes set as a gzip-compressed NBT compound, the layout used by
// Minecraft .dat files.
func WriteNBT(w io.Writer, set *bitset.FixedBitSet) error {
	if set.Len() > math.MaxInt32 {
		return ErrInvalidNBTCapacity
	}
	data, err := nbt.Marshal(nbtBitSet{Capacity: int32(set.Len()), Bits: set.Bytes()})
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(w)
	if _, err = gz.Write(data); err != nil {
		return err
	}
	return gz.Close()
}

// ReadNBT reverses WriteNBT.
func ReadNBT(r io.Reader) (*bitset.FixedBitSet, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, err
	}
	var compound nbtBitSet
	if err = nbt.Unmarshal(data, &compound); err != nil {
		return nil, err
	}
	if compound.Capacity < 0 {
		return nil, ErrInvalidNBTCapacity
	}
	return bitset.FromBytes(int(compound.Capacity), compound.Bits)
}
