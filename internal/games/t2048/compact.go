// Package t2048 implements the 2048 sliding-tile game: a line compactor, an
// N×N board engine governed by a lifecycle state machine, and the arcade
// adapter that drives it from input frames.
package t2048

// Cell is a board cell: Empty, or a positive power of two.
type Cell int

// Empty is the zero Cell.
const Empty Cell = 0

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Compact compacts and merges a line toward index 0.
//
// Leading empty cells are kept in place. The remaining tiles are scanned in
// order, interior empties dropped, and a tile merges into the previous output
// slot when both values are equal and that slot was not itself produced by a
// merge in this call. The result is never longer than the input.
//
//	[2 2 2 2] -> [4 4]
//	[2 2 2 4] -> [4 2 4]
//	[2 _ _ 2] -> [4]
//	[_ 2 2 2] -> [_ 4 2]
func Compact(line []Cell) []Cell {
	out, _ := compactLine(line)
	return out
}

// compactLine is Compact that also returns the points scored: the sum of
// every value produced by a merge.
func compactLine(line []Cell) ([]Cell, int) {
	out := make([]Cell, 0, len(line))

	i := 0
	for i < len(line) && line[i].IsEmpty() {
		out = append(out, Empty)
		i++
	}
	leading := i

	points := 0
	canMerge := false
	for ; i < len(line); i++ {
		c := line[i]
		if c.IsEmpty() {
			continue
		}

		last := len(out) - 1
		if last >= leading && canMerge && out[last] == c {
			out[last] = c * 2
			points += int(out[last])
			canMerge = false
			continue
		}

		out = append(out, c)
		canMerge = true
	}

	return out, points
}

// slideLine compacts a line and packs the result against index 0, padding
// the far end with empties so the length is unchanged.
func slideLine(line []Cell) ([]Cell, int) {
	compacted, points := compactLine(line)

	result := make([]Cell, len(line))
	n := 0
	for _, c := range compacted {
		if c.IsEmpty() {
			continue
		}
		result[n] = c
		n++
	}
	return result, points
}
