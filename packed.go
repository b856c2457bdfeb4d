package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const packedMagic = 0xB175
const packedLatestVersion = 1

var ErrInvalidMagic = errors.New("packed: not a packed bit set")
var ErrUnsupportedVersion = errors.New("packed: unsupported version")
var ErrInvalidCompression = errors.New("packed: invalid compression format")
var ErrInvalidLength = errors.New("packed: invalid payload length")
var ErrCapacityTooLarge = errors.New("packed: capacity does not fit the header")

type PackedCompression byte

const (
	PackedCompressionGzip   PackedCompression = 1
	PackedCompressionZlib   PackedCompression = 2
	PackedCompressionZstd   PackedCompression = 3
	PackedCompressionLZ4    PackedCompression = 4
	PackedCompressionSnappy PackedCompression = 5
)

var compressionNames = map[PackedCompression]string{
	PackedCompressionGzip:   "gzip",
	PackedCompressionZlib:   "zlib",
	PackedCompressionZstd:   "zstd",
	PackedCompressionLZ4:    "lz4",
	PackedCompressionSnappy: "snappy",
}

// packedHeader precedes the compressed storage of a packed file. All fields are big endian.
type packedHeader struct {
	Magic       uint16
	Version     uint8
	Compression PackedCompression
	Capacity    uint32
	Length      uint32
}

func ParseCompression(name string) (PackedCompression, error) {
	for c, n := range compressionNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCompression, name)
}

func (c PackedCompression) String() string {
	if name, ok := compressionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", byte(c))
}

func (c PackedCompression) newWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case PackedCompressionGzip:
		return gzip.NewWriter(w), nil
	case PackedCompressionZlib:
		return zlib.NewWriter(w), nil
	case PackedCompressionZstd:
		return zstd.NewWriter(w)
	case PackedCompressionLZ4:
		return lz4.NewWriter(w), nil
	case PackedCompressionSnappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, ErrInvalidCompression
	}
}

func (c PackedCompression) newReader(r io.Reader) (io.Reader, error) {
	switch c {
	case PackedCompressionGzip:
		return gzip.NewReader(r)
	case PackedCompressionZlib:
		return zlib.NewReader(r)
	case PackedCompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case PackedCompressionLZ4:
		return lz4.NewReader(r), nil
	case PackedCompressionSnappy:
		return snappy.NewReader(r), nil
	default:
		return nil, ErrInvalidCompression
	}
}
