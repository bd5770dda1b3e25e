package gridstore

import "fmt"

// Tile glyphs understood by FromRows.
const (
	// GlyphBlocked is neither buildable nor traversable.
	GlyphBlocked = '#'
	// GlyphPath is traversable but not buildable (ramps, edges, chokes).
	GlyphPath = '.'
)

// FromRows builds a Grid from a textual map, one string per row with row 0 first.
//
// Glyphs:
//
//	'0'..'9'  buildable and traversable, height = digit
//	'.'       traversable, not buildable, height 0
//	'#'       blocked, height 0
//
// Returns ErrEmptyGrid for no rows or an empty first row and ErrGridSize when
// rows differ in length or contain an unknown glyph.
// Complexity: O(W×H).
func FromRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)
	placement := make([]byte, w*h)
	pathing := make([]byte, w*h)
	height := make([]byte, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrGridSize, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			i := y*w + x
			switch c := row[x]; {
			case c >= '0' && c <= '9':
				placement[i] = 255
				height[i] = c - '0'
			case c == GlyphPath:
			case c == GlyphBlocked:
				pathing[i] = 255
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at (%d,%d)", ErrGridSize, c, x, y)
			}
		}
	}

	return New(w, h, placement, pathing, height)
}
