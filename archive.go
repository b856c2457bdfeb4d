package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	willf "github.com/willf/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/astei/advent/bitset"
)

const packedExtension = ".bits"
const nbtExtension = ".nbt"

type ArchiveEntry struct {
	Name        string
	Compression PackedCompression
	Set         *bitset.FixedBitSet
}

// OpenArchive reads every packed or NBT file named by paths. Directories contribute
// all of their *.bits and *.nbt files. Files are decoded concurrently and returned sorted by name.
func OpenArchive(ctx context.Context, paths []string, logger *Logger) ([]ArchiveEntry, error) {
	files, err := discoverPackedFiles(paths, logger)
	if err != nil {
		return nil, err
	}

	entries := make([]ArchiveEntry, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := readArchiveEntry(name)
			if err != nil {
				return fmt.Errorf("could not read %s: %w", name, err)
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(one, two int) bool {
		return entries[one].Name < entries[two].Name
	})
	logger.Debug("opened archive", slog.Int("files", len(entries)))
	return entries, nil
}

// Union merges the sets of all entries. Sets of different capacity line up at index 0.
func Union(entries []ArchiveEntry) *willf.BitSet {
	union := willf.New(0)
	for _, entry := range entries {
		union = union.Union(entry.Set.Dense())
	}
	return union
}

func discoverPackedFiles(paths []string, logger *Logger) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		dirEntries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, possible := range dirEntries {
			logger.Debug("discovered", slog.String("name", possible.Name()))
			if !possible.IsDir() && isArchiveFile(possible.Name()) {
				files = append(files, filepath.Join(path, possible.Name()))
			}
		}
	}
	return files, nil
}

func isArchiveFile(name string) bool {
	return strings.HasSuffix(name, packedExtension) || strings.HasSuffix(name, nbtExtension)
}

func readArchiveEntry(name string) (entry ArchiveEntry, err error) {
	file, err := os.Open(name)
	if err != nil {
		return
	}
	if strings.HasSuffix(name, nbtExtension) {
		defer file.Close()
		set, err := ReadNBT(file)
		if err != nil {
			return entry, err
		}
		return ArchiveEntry{Name: name, Compression: PackedCompressionGzip, Set: set}, nil
	}

	reader, err := NewPackedReader(file)
	if err != nil {
		file.Close()
		return
	}
	defer reader.Close()

	set, err := reader.ReadSet()
	if err != nil {
		return
	}
	return ArchiveEntry{Name: name, Compression: reader.Compression(), Set: set}, nil
}
