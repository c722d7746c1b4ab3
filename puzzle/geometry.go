package puzzle

/*

Standard geometry

This module solves only the standard 9x9 Sudoku: nine rows, nine
columns, and nine non-overlapping 3x3 tiles.  The geometry never
changes at runtime, so the mapping from squares to groups is
computed once and shared by every grid.

*/

import (
	"fmt"
)

// Geometry parameters of the standard puzzle.
const (
	SideLength  = 9                     // squares per group
	TileLength  = 3                     // side of a tile
	SquareCount = SideLength * SideLength
	GroupCount  = SideLength * 3 // rows + columns + tiles
)

// A GroupID names a row, column, or tile.  The numbering is
// 1-based, top-to-bottom for rows, left-to-right for columns, and
// reading order for tiles.
type GroupID struct {
	Gtype string `json:"gtype"`
	Index int    `json:"index"`
}

// Group IDs implement Stringer
func (gid GroupID) String() string {
	if gid.Gtype == "" {
		return fmt.Sprintf("<group> %d", gid.Index)
	}
	return fmt.Sprintf("%s %d", gid.Gtype, gid.Index)
}

// Group type constants.  These are human-readable but not
// localized.
const (
	GtypeRow  = "row"
	GtypeCol  = "column"
	GtypeTile = "tile"
)

// A group descriptor identifies a group and enumerates the indices
// of its squares.
type groupDescriptor struct {
	index   int
	id      GroupID
	indices intset
}

// A gridMapping summarizes the geometry of the puzzle: the indexes
// in each of the groups, a mapping from each index to the groups
// that contain it, and the peers of each index (all squares sharing
// a group with it, without the square itself).
type gridMapping struct {
	gdescs []groupDescriptor
	ixmap  [][]int
	peers  []intset
}

// standardMapping is the shared mapping for every grid.
var standardMapping = computeStandardMapping()

func computeStandardMapping() *gridMapping {
	gs := make([]groupDescriptor, GroupCount+1) // 1-based indexing
	im := make([][]int, SquareCount+1)          // 1-based indexing
	for i := 1; i <= SquareCount; i++ {
		im[i] = make([]int, 3) // 3 groups for every square
	}
	for i := 0; i < SideLength; i++ {
		// row i + 1
		rgi := i + 1 // 1-based indexes
		row := make(intset, SideLength)
		for ri := 0; ri < SideLength; ri++ {
			si := SideLength*i + ri + 1 // 1-based indexes
			row[ri] = si
			im[si][0] = rgi
		}
		gs[rgi] = groupDescriptor{rgi, GroupID{GtypeRow, i + 1}, row}
		// column i + 1
		cgi := i + SideLength + 1 // 1-based indices
		col := make(intset, SideLength)
		for ci := 0; ci < SideLength; ci++ {
			si := SideLength*ci + i + 1 // 1-based indices
			col[ci] = si
			im[si][1] = cgi
		}
		gs[cgi] = groupDescriptor{cgi, GroupID{GtypeCol, i + 1}, col}
		// tile i + 1
		tgi := i + 2*SideLength + 1 // 1-based indices
		tile := make(intset, SideLength)
		baserow, basecol := TileLength*(i/TileLength), TileLength*(i%TileLength)
		for tri := 0; tri < TileLength; tri++ {
			for tci := 0; tci < TileLength; tci++ {
				si := SideLength*(baserow+tri) + (basecol + tci) + 1 // 1-based indices
				tile[tri*TileLength+tci] = si
				im[si][2] = tgi
			}
		}
		gs[tgi] = groupDescriptor{tgi, GroupID{GtypeTile, i + 1}, tile}
	}
	// peers: union of the containing groups, minus the square itself
	ps := make([]intset, SquareCount+1) // 1-based indexing
	for si := 1; si <= SquareCount; si++ {
		var peers intset
		for _, gi := range im[si] {
			for _, pi := range gs[gi].indices {
				if pi != si {
					peers.insert(pi)
				}
			}
		}
		ps[si] = peers
	}
	return &gridMapping{gs, im, ps}
}
