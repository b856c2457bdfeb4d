// Package mkstring joins arbitrary values into a single string.
package mkstring

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Join renders every item with fmt.Sprint and separates them with sep.
func Join[T any](items []T, sep string) string {
	return JoinSeq(slices.Values(items), sep)
}

func JoinSeq[T any](seq iter.Seq[T], sep string) string {
	var sb strings.Builder
	first := true
	for item := range seq {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprint(&sb, item)
	}
	return sb.String()
}
