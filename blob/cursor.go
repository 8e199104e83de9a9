package blob

import "github.com/arloliu/eri/section"

// cursor is a forward-only read position within an ERI buffer.
type cursor struct {
	pos int
}

// skipTo moves the cursor to offset unless it is already at or past it.
// The cursor never moves backward, so repeated calls have no further effect.
func (c *cursor) skipTo(offset int) {
	if c.pos < offset {
		c.pos = offset
	}
}

// stringCursor returns a fresh cursor positioned at the start of the strings block.
func (d *Decoder) stringCursor() cursor {
	c := cursor{pos: section.HeaderSize}
	c.skipTo(d.stringsOffset)

	return c
}
