package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/astei/advent/bitset"
)

// PackedReader decodes a packed file. The reader is not safe for concurrent access.
type PackedReader struct {
	source io.Reader
	header packedHeader
	Name   string
}

// NewPackedReader reads and validates the header of a packed file. The ownership of the
// source is transferred to this reader.
func NewPackedReader(source io.Reader) (reader *PackedReader, err error) {
	reader = &PackedReader{source: source}
	if file, ok := source.(*os.File); ok {
		reader.Name = file.Name()
	}
	err = reader.readHeader()
	return
}

func (r *PackedReader) readHeader() error {
	if err := binary.Read(r.source, binary.BigEndian, &r.header); err != nil {
		return err
	}
	if r.header.Magic != packedMagic {
		return ErrInvalidMagic
	}
	if r.header.Version != packedLatestVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.header.Version)
	}
	if _, ok := compressionNames[r.header.Compression]; !ok {
		return ErrInvalidCompression
	}
	return nil
}

func (r *PackedReader) Capacity() int {
	return int(r.header.Capacity)
}

func (r *PackedReader) Compression() PackedCompression {
	return r.header.Compression
}

// ReadSet decompresses the payload and rebuilds the bit set.
func (r *PackedReader) ReadSet() (*bitset.FixedBitSet, error) {
	payload, err := io.ReadAll(io.LimitReader(r.source, int64(r.header.Length)))
	if err != nil {
		return nil, err
	}
	if len(payload) != int(r.header.Length) {
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrInvalidLength, len(payload), r.header.Length)
	}

	stream, err := r.header.Compression.newReader(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if closer, ok := stream.(io.Closer); ok {
		defer closer.Close()
	}

	expected := (r.Capacity() + 7) / 8
	storage, err := io.ReadAll(io.LimitReader(stream, int64(expected)+1))
	if err != nil {
		return nil, err
	}
	return bitset.FromBytes(r.Capacity(), storage)
}

func (r *PackedReader) Close() error {
	if closer, ok := r.source.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
