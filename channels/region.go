package channels

import (
	"fmt"
	"strings"
)

// Position addresses a rune offset inside a segment.
type Position struct {
	Segment int
	Offset  int
}

func (p Position) before(q Position) bool {
	if p.Segment != q.Segment {
		return p.Segment < q.Segment
	}
	return p.Offset < q.Offset
}

// ordered validates a and b against the current content and returns them in sequence order.
// Offsets beyond the current end of their segment are clamped.
func (c *Channel) ordered(a, b Position) (lo, hi Position) {
	for _, p := range []*Position{&a, &b} {
		if p.Segment < 0 || p.Segment >= len(c.segments) {
			panic(fmt.Errorf("%w: segment %d out of %d", ErrInvariant, p.Segment, len(c.segments)))
		}
		p.Offset = min(max(p.Offset, 0), c.segments[p.Segment].length)
	}
	if b.before(a) {
		return b, a
	}
	return a, b
}

// RegionLength returns the number of runes between a and b in the current content.
func (c *Channel) RegionLength(a, b Position) int {
	lo, hi := c.ordered(a, b)
	n := hi.Offset - lo.Offset
	for i := lo.Segment; i < hi.Segment; i++ {
		n += c.segments[i].length
	}
	return n
}

// Region returns the text between a and b in the current content.
func (c *Channel) Region(a, b Position) string {
	lo, hi := c.ordered(a, b)
	if lo.Segment == hi.Segment {
		return c.segments[lo.Segment].slice(lo.Offset, hi.Offset)
	}
	var buf strings.Builder
	first := c.segments[lo.Segment]
	buf.WriteString(first.slice(lo.Offset, first.length))
	for i := lo.Segment + 1; i < hi.Segment; i++ {
		buf.Write(c.segments[i].text)
	}
	buf.WriteString(c.segments[hi.Segment].slice(0, hi.Offset))
	return buf.String()
}
