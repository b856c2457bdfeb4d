package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/astei/advent/bitset"
	"github.com/astei/advent/coordinate"
)

var ErrIndexOutOfRange = errors.New("advent: index out of range")
var ErrRaggedGrid = errors.New("advent: grid rows differ in width")

// maxCapacity is the largest capacity a packed header can record.
const maxCapacity = math.MaxUint32

type lineIndex struct {
	line  int
	index int
}

// readIndices reads one non-negative index per line, skipping blank lines. A
// capacity of zero or less sizes the set to the largest index read. Indexes and
// capacities must stay below maxCapacity.
func readIndices(r io.Reader, capacity int) (*bitset.FixedBitSet, error) {
	var read []lineIndex
	largest := -1

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		idx, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if idx < 0 || uint64(idx) >= maxCapacity {
			return nil, fmt.Errorf("line %d: %w: %d", line, ErrIndexOutOfRange, idx)
		}
		read = append(read, lineIndex{line: line, index: idx})
		largest = max(largest, idx)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if capacity > 0 && uint64(capacity) > maxCapacity {
		return nil, fmt.Errorf("%w: capacity %d exceeds %d", ErrIndexOutOfRange, capacity, uint64(maxCapacity))
	}
	if capacity <= 0 {
		capacity = largest + 1
	}
	set := bitset.New(capacity)
	for _, li := range read {
		if _, ok := set.Set(li.index); !ok {
			return nil, fmt.Errorf("line %d: %w: %d >= %d", li.line, ErrIndexOutOfRange, li.index, capacity)
		}
	}
	return set, nil
}

// readGrid marks every '#' cell of a rectangular character grid. It returns the
// set together with the grid width.
func readGrid(r io.Reader) (*bitset.FixedBitSet, int, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row := strings.TrimRight(scanner.Text(), "\r")
		if row == "" {
			continue
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, 0, fmt.Errorf("row %d: %w", len(rows)+1, ErrRaggedGrid)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return bitset.New(0), 0, nil
	}

	width := len(rows[0])
	set := bitset.New(width * len(rows))
	for y, row := range rows {
		for x := 0; x < width; x++ {
			if row[x] == '#' {
				set.Set(coordinate.New(x, y).Index(width))
			}
		}
	}
	return set, width, nil
}
