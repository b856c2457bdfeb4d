package main

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astei/advent/bitset"
)

func packSet(t *testing.T, set *bitset.FixedBitSet, compression PackedCompression) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WritePacked(&buf, set, compression, NoopLogger()))
	return buf.Bytes()
}

func TestPacked_RoundTripsEveryCompression(t *testing.T) {
	set := bitset.New(1000)
	for i := 0; i < 1000; i += 7 {
		set.Set(i)
	}
	for compression := range compressionNames {
		reader, err := NewPackedReader(bytes.NewReader(packSet(t, set, compression)))
		require.NoError(t, err, compression.String())
		require.Equal(t, 1000, reader.Capacity())
		require.Equal(t, compression, reader.Compression())

		decoded, err := reader.ReadSet()
		require.NoError(t, err, compression.String())
		require.Equal(t, set.Bytes(), decoded.Bytes())
	}
}

func TestPacked_EmptySet(t *testing.T) {
	reader, err := NewPackedReader(bytes.NewReader(packSet(t, bitset.New(0), PackedCompressionGzip)))
	require.NoError(t, err)
	set, err := reader.ReadSet()
	require.NoError(t, err)
	require.Zero(t, set.Len())
}

func TestPacked_HeaderLayout(t *testing.T) {
	data := packSet(t, bitset.New(9), PackedCompressionGzip)
	require.Equal(t, uint16(packedMagic), binary.BigEndian.Uint16(data[0:]))
	require.Equal(t, byte(packedLatestVersion), data[2])
	require.Equal(t, byte(PackedCompressionGzip), data[3])
	require.Equal(t, uint32(9), binary.BigEndian.Uint32(data[4:]))
	require.Equal(t, uint32(len(data)-12), binary.BigEndian.Uint32(data[8:]))
}

func TestPacked_RejectsCorruptHeaders(t *testing.T) {
	valid := packSet(t, bitset.New(16), PackedCompressionZlib)

	corrupt := func(offset int, value byte) []byte {
		data := append([]byte(nil), valid...)
		data[offset] = value
		return data
	}

	_, err := NewPackedReader(bytes.NewReader(corrupt(0, 0x00)))
	require.ErrorIs(t, err, ErrInvalidMagic)

	_, err = NewPackedReader(bytes.NewReader(corrupt(2, 9)))
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = NewPackedReader(bytes.NewReader(corrupt(3, 42)))
	require.ErrorIs(t, err, ErrInvalidCompression)

	reader, err := NewPackedReader(bytes.NewReader(valid[:len(valid)-1]))
	require.NoError(t, err)
	_, err = reader.ReadSet()
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestPacked_RejectsCapacityMismatch(t *testing.T) {
	data := packSet(t, bitset.New(16), PackedCompressionSnappy)
	binary.BigEndian.PutUint32(data[4:], 24)

	reader, err := NewPackedReader(bytes.NewReader(data))
	require.NoError(t, err)
	_, err = reader.ReadSet()
	require.ErrorIs(t, err, bitset.ErrLengthMismatch)
}

func TestParseCompression(t *testing.T) {
	for compression, name := range compressionNames {
		parsed, err := ParseCompression(name)
		require.NoError(t, err)
		require.Equal(t, compression, parsed)
	}
	_, err := ParseCompression("none")
	require.ErrorIs(t, err, ErrInvalidCompression)
	require.Equal(t, "unknown(9)", PackedCompression(9).String())
}

func TestPacked_RejectsOversizedHeaderWithoutPayload(t *testing.T) {
	var buf bytes.Buffer
	header := packedHeader{
		Magic:       packedMagic,
		Version:     packedLatestVersion,
		Compression: PackedCompressionGzip,
		Capacity:    0xFFFFFFFF,
		Length:      0xFFFFFFF0,
	}
	require.NoError(t, binary.Write(&buf, binary.BigEndian, header))
	require.Equal(t, 12, buf.Len())

	reader, err := NewPackedReader(&buf)
	require.NoError(t, err)
	_, err = reader.ReadSet()
	require.ErrorIs(t, err, ErrInvalidLength)
}
