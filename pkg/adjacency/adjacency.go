// Package adjacency provides masking and reindexing utilities for flat
// row-major index tables. A table of width 2 is an edge list; width 3 is a
// triangle list. The functions here are pure: inputs are never mutated.
package adjacency

import "sort"

// MaskRows returns the rows of table whose indices are all selected by mask.
// The table is a flat row-major slice with the given row width; returned rows
// keep their original index space and order. Rows containing an index outside
// the mask's range are dropped like any other unselected row.
func MaskRows(mask []bool, table []int, width int) []int {
	out := make([]int, 0, len(table))
rows:
	for i := 0; i+width <= len(table); i += width {
		for j := 0; j < width; j++ {
			v := table[i+j]
			if v < 0 || v >= len(mask) || !mask[v] {
				continue rows
			}
		}
		out = append(out, table[i:i+width]...)
	}
	return out
}

// Reindex remaps every index in table onto the dense range [0, K), where K
// is the number of distinct indices present. Relative order is preserved:
// the smallest index maps to 0, the next smallest to 1, and so on. Typically
// applied to the output of MaskRows so the surviving rows index into the
// compacted point set.
func Reindex(table []int) []int {
	if len(table) == 0 {
		return []int{}
	}
	unique := distinct(table)
	remap := make(map[int]int, len(unique))
	for newIdx, old := range unique {
		remap[old] = newIdx
	}
	out := make([]int, len(table))
	for i, v := range table {
		out[i] = remap[v]
	}
	return out
}

// OccupiedMask returns a mask of length n marking which vertex indices occur
// anywhere in table. Out-of-range indices are ignored.
func OccupiedMask(table []int, n int) []bool {
	occupied := make([]bool, n)
	for _, v := range table {
		if v >= 0 && v < n {
			occupied[v] = true
		}
	}
	return occupied
}

// distinct returns the sorted distinct values of table.
func distinct(table []int) []int {
	seen := make(map[int]struct{}, len(table))
	for _, v := range table {
		seen[v] = struct{}{}
	}
	unique := make([]int, 0, len(seen))
	for v := range seen {
		unique = append(unique, v)
	}
	sort.Ints(unique)
	return unique
}
