package main

import (
	"bytes"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/astei/advent/bitset"
)

func TestNBT_RoundTrip(t *testing.T) {
	set := bitset.New(21)
	set.Set(0)
	set.Set(20)

	var buf bytes.Buffer
	require.NoError(t, WriteNBT(&buf, set))

	decoded, err := ReadNBT(&buf)
	require.NoError(t, err)
	require.Equal(t, 21, decoded.Len())
	require.Equal(t, []int{0, 20}, decoded.Indices())
}

func TestNBT_RejectsPlainData(t *testing.T) {
	_, err := ReadNBT(bytes.NewReader([]byte("not gzip")))
	require.Error(t, err)
}

func TestNBT_RejectsNegativeCapacity(t *testing.T) {
	data, err := nbt.Marshal(nbtBitSet{Capacity: -5})
	require.NoError(t, err)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err = gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	_, err = ReadNBT(&buf)
	require.ErrorIs(t, err, ErrInvalidNBTCapacity)
}
