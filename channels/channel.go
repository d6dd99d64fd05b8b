// Package channels implements the output buffer of a channel: an append-only
// sequence of mutable text segments with named insertion points and lazily
// resolved indefinite articles.
package channels

import (
	"fmt"
	"iter"
	"strings"

	"github.com/reusee/weave/formats"
)

// Channel stores the output of one named output stream.
//
// Segments live in an arena addressed by index. Indices are assigned in
// append order and never reused, so markers, targets and article patches hold
// indices instead of references. The last segment is the current one.
type Channel struct {
	name       string
	visibility Visibility
	format     *formats.Format
	formatter  *formats.Formatter

	segments []*segment
	// sum of segment lengths, in runes
	length int

	targets map[string]*target
	patches map[int]articlePatch

	strict bool
}

func New(name string, visibility Visibility, format *formats.Format) *Channel {
	return &Channel{
		name:       name,
		visibility: visibility,
		format:     format,
		formatter:  formats.NewFormatter(),
		segments: []*segment{
			{kind: PlainSegment},
		},
		targets: make(map[string]*target),
		patches: make(map[int]articlePatch),
	}
}

// SetStrict enables recomputing every invariant after each mutation.
func (c *Channel) SetStrict(strict bool) {
	c.strict = strict
}

func (c *Channel) Name() string {
	return c.name
}

func (c *Channel) Visibility() Visibility {
	return c.visibility
}

func (c *Channel) SetVisibility(v Visibility) {
	c.visibility = v
}

func (c *Channel) Format() *formats.Format {
	return c.format
}

func (c *Channel) Formatter() *formats.Formatter {
	return c.formatter
}

func (c *Channel) SetCase(mode formats.Case) {
	c.formatter.SetCase(mode)
}

func (c *Channel) String() string {
	return fmt.Sprintf("%s (%s)", c.name, c.visibility)
}

// Write formats text and appends it to the current segment.
func (c *Channel) Write(text string) {
	c.writeInto(len(c.segments)-1, c.formatter.Format(text, c.format, 0), false)
	c.check()
}

// AppendSegment appends an empty plain segment, makes it current and returns its index.
func (c *Channel) AppendSegment() int {
	index := c.appendSegment(PlainSegment)
	c.check()
	return index
}

func (c *Channel) appendSegment(kind SegmentKind) int {
	return c.appendExisting(&segment{kind: kind})
}

func (c *Channel) appendExisting(seg *segment) int {
	c.segments = append(c.segments, seg)
	c.length += seg.length
	return len(c.segments) - 1
}

// writeInto appends already formatted text to the segment at index,
// clearing it first if overwrite is set.
func (c *Channel) writeInto(index int, text string, overwrite bool) {
	seg := c.segments[index]
	if overwrite {
		c.length -= seg.reset()
	}
	c.length += seg.append(text)
	c.resolveArticle(index)
}

// Length returns the number of runes in the output.
func (c *Channel) Length() int {
	return c.length
}

// Value returns the output, all segments in sequence order.
func (c *Channel) Value() string {
	var b strings.Builder
	for _, seg := range c.segments {
		b.Write(seg.text)
	}
	return b.String()
}

// CurrentPosition returns the index of the current segment and its length.
func (c *Channel) CurrentPosition() (index, length int) {
	index = len(c.segments) - 1
	return index, c.segments[index].length
}

func (c *Channel) SegmentCount() int {
	return len(c.segments)
}

func (c *Channel) Segment(index int) (text string, kind SegmentKind) {
	seg := c.segments[index]
	return seg.String(), seg.kind
}

func (c *Channel) Segments() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, seg := range c.segments {
			if !yield(i, seg.String()) {
				return
			}
		}
	}
}
