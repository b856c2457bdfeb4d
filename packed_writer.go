package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"log/slog"
	"math"

	"github.com/astei/advent/bitset"
)

// WritePacked writes set to writer as a packed file using the given compression.
func WritePacked(writer io.Writer, set *bitset.FixedBitSet, compression PackedCompression, logger *Logger) error {
	if uint64(set.Len()) > math.MaxUint32 {
		return ErrCapacityTooLarge
	}
	w := &packedWriter{writer: writer, set: set, compression: compression, logger: logger}
	return w.writeSet()
}

type packedWriter struct {
	writer      io.Writer
	set         *bitset.FixedBitSet
	compression PackedCompression
	logger      *Logger
}

func (w *packedWriter) writeSet() (err error) {
	payload, err := w.compress(w.set.Bytes())
	if err != nil {
		return
	}
	if err = w.writeHeader(len(payload)); err != nil {
		return
	}
	_, err = w.writer.Write(payload)
	return
}

func (w *packedWriter) writeHeader(length int) error {
	header := packedHeader{
		Magic:       packedMagic,
		Version:     packedLatestVersion,
		Compression: w.compression,
		Capacity:    uint32(w.set.Len()),
		Length:      uint32(length),
	}
	return binary.Write(w.writer, binary.BigEndian, header)
}

func (w *packedWriter) compress(raw []byte) ([]byte, error) {
	var compressed bytes.Buffer
	cw, err := w.compression.newWriter(&compressed)
	if err != nil {
		return nil, err
	}
	if _, err = cw.Write(raw); err != nil {
		return nil, err
	}
	if err = cw.Close(); err != nil {
		return nil, err
	}

	w.logger.Debug("compressed bit set",
		slog.String("compression", w.compression.String()),
		slog.Int("compressed", compressed.Len()),
		slog.Int("uncompressed", len(raw)))
	return compressed.Bytes(), nil
}
