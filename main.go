package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/astei/advent/bitset"
	"github.com/astei/advent/coordinate"
	"github.com/astei/advent/mkstring"
)

var (
	verboseFlag = cli.BoolFlag{
		Name:    "verbose",
		Usage:   "log debug output to stderr",
		EnvVars: []string{"ADVENT_VERBOSE"},
	}
	logFormatFlag = cli.StringFlag{
		Name:    "log-format",
		Usage:   "log record format, text or json",
		Value:   "text",
		EnvVars: []string{"ADVENT_LOG_FORMAT"},
	}
	capacityFlag = cli.IntFlag{
		Name:    "capacity",
		Usage:   "number of indexes the set holds, 0 sizes it to the largest index read",
		EnvVars: []string{"ADVENT_CAPACITY"},
	}
	gridFlag = cli.BoolFlag{
		Name:  "grid",
		Usage: "read a character grid and mark its '#' cells",
	}
	renderFlag = cli.BoolFlag{
		Name:  "render",
		Usage: "print one 0/1 digit per index",
	}
	outputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "file to write to, stdout if empty",
	}
	unionFlag = cli.BoolFlag{
		Name:  "union",
		Usage: "also summarise the union of all files",
	}
	compressionFlag = cli.StringFlag{
		Name:    "compression",
		Usage:   "payload compression: gzip, zlib, zstd, lz4 or snappy",
		Value:   "zstd",
		EnvVars: []string{"ADVENT_COMPRESSION"},
	}
)

var errNoPaths = errors.New("need at least one packed file or directory")

var inputFlags = []cli.Flag{&capacityFlag, &gridFlag}

func newApp() *cli.App {
	return &cli.App{
		Name:     "advent",
		Usage:    "builds seen-sets of dense indexes read from stdin",
		Flags:    []cli.Flag{&verboseFlag, &logFormatFlag},
		Metadata: map[string]interface{}{},
		Before: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool(verboseFlag.Name) {
				level = slog.LevelDebug
			}
			c.App.Metadata["logger"] = NewLogger(c.App.ErrWriter, c.String(logFormatFlag.Name), level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "seen",
				Usage:  "summarise the indexes read from stdin",
				Flags:  append([]cli.Flag{&renderFlag}, inputFlags...),
				Action: seenAction,
			},
			{
				Name:   "pack",
				Usage:  "write the indexes read from stdin as a packed file",
				Flags:  append([]cli.Flag{&outputFlag, &compressionFlag}, inputFlags...),
				Action: packAction,
			},
			{
				Name:      "inspect",
				Usage:     "summarise packed files or directories of them",
				ArgsUsage: "<path>...",
				Flags:     []cli.Flag{&unionFlag},
				Action:    inspectAction,
			},
			{
				Name:   "export-nbt",
				Usage:  "write the indexes read from stdin as a gzipped NBT compound",
				Flags:  append([]cli.Flag{&outputFlag}, inputFlags...),
				Action: exportNBTAction,
			},
		},
	}
}

func loggerFrom(c *cli.Context) *Logger {
	if logger, ok := c.App.Metadata["logger"].(*Logger); ok {
		return logger
	}
	return NoopLogger()
}

// readInput builds the set from stdin. width is non-zero only in grid mode.
func readInput(c *cli.Context) (set *bitset.FixedBitSet, width int, err error) {
	if c.Bool(gridFlag.Name) {
		set, width, err = readGrid(c.App.Reader)
	} else {
		set, err = readIndices(c.App.Reader, c.Int(capacityFlag.Name))
	}
	if err == nil {
		loggerFrom(c).Debug("read input", slog.Int("capacity", set.Len()), slog.Int("count", set.Count()))
	}
	return
}

func seenAction(c *cli.Context) error {
	set, width, err := readInput(c)
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "count: %d\n", set.Count())
	if lowest, ok := set.Min(); !ok {
		fmt.Fprintln(out, "min: none")
	} else if width > 0 {
		fmt.Fprintf(out, "min: %s\n", coordinate.FromIndex(lowest, width))
	} else {
		fmt.Fprintf(out, "min: %d\n", lowest)
	}
	if c.Bool(renderFlag.Name) {
		fmt.Fprintf(out, "bits: %s\n", set)
	}

	if width > 0 {
		cells := make([]coordinate.XY, 0, set.Count())
		for _, idx := range set.Indices() {
			cells = append(cells, coordinate.FromIndex(idx, width))
		}
		fmt.Fprintf(out, "cells: %s\n", mkstring.Join(cells, " "))
	} else {
		fmt.Fprintf(out, "indices: %s\n", mkstring.Join(set.Indices(), ", "))
	}
	return nil
}

func packAction(c *cli.Context) error {
	compression, err := ParseCompression(c.String(compressionFlag.Name))
	if err != nil {
		return err
	}
	set, _, err := readInput(c)
	if err != nil {
		return err
	}
	return withOutput(c, func(w io.Writer) error {
		return WritePacked(w, set, compression, loggerFrom(c))
	})
}

func exportNBTAction(c *cli.Context) error {
	set, _, err := readInput(c)
	if err != nil {
		return err
	}
	return withOutput(c, func(w io.Writer) error {
		return WriteNBT(w, set)
	})
}

func inspectAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errNoPaths
	}
	entries, err := OpenArchive(c.Context, c.Args().Slice(), loggerFrom(c))
	if err != nil {
		return err
	}
	for _, entry := range entries {
		lowest := "none"
		if idx, ok := entry.Set.Min(); ok {
			lowest = fmt.Sprint(idx)
		}
		fmt.Fprintf(c.App.Writer, "%s: capacity=%d compression=%s count=%d min=%s\n",
			entry.Name, entry.Set.Len(), entry.Compression, entry.Set.Count(), lowest)
	}
	if c.Bool(unionFlag.Name) {
		union := Union(entries)
		lowest := "none"
		if idx, ok := union.NextSet(0); ok {
			lowest = fmt.Sprint(idx)
		}
		fmt.Fprintf(c.App.Writer, "union: count=%d min=%s\n", union.Count(), lowest)
	}
	return nil
}

func withOutput(c *cli.Context, write func(io.Writer) error) error {
	name := c.String(outputFlag.Name)
	if name == "" {
		return write(c.App.Writer)
	}
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err = write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
