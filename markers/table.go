// Package markers records named positions in channels and answers distance and
// region queries between them against the channels' current content.
package markers

import (
	"maps"
	"slices"

	"github.com/reusee/weave/channels"
)

// Marker is a position taken in a channel. It does not freeze content:
// queries read the channel as it is when they run.
type Marker struct {
	Channel  *channels.Channel
	Position channels.Position
}

type Table struct {
	markers map[string]Marker
}

func New() *Table {
	return &Table{
		markers: make(map[string]Marker),
	}
}

// Set records the current position of c under name, replacing any previous marker.
func (t *Table) Set(name string, c *channels.Channel) Marker {
	index, offset := c.CurrentPosition()
	marker := Marker{
		Channel: c,
		Position: channels.Position{
			Segment: index,
			Offset:  offset,
		},
	}
	t.markers[name] = marker
	return marker
}

func (t *Table) Get(name string) (Marker, bool) {
	marker, ok := t.markers[name]
	return marker, ok
}

func (t *Table) Names() []string {
	return slices.Sorted(maps.Keys(t.markers))
}

// pair looks up two markers taken in the same channel.
func (t *Table) pair(a, b string) (ma, mb Marker, ok bool) {
	ma, ok = t.markers[a]
	if !ok {
		return
	}
	mb, ok = t.markers[b]
	if !ok {
		return
	}
	if ma.Channel != mb.Channel {
		return ma, mb, false
	}
	return ma, mb, true
}

// Distance returns the number of characters between markers a and b.
// Unknown names and markers of different channels give zero.
func (t *Table) Distance(a, b string) int {
	ma, mb, ok := t.pair(a, b)
	if !ok {
		return 0
	}
	return ma.Channel.RegionLength(ma.Position, mb.Position)
}

// CopyRegion returns the text between markers a and b.
// Unknown names and markers of different channels give the empty string.
func (t *Table) CopyRegion(a, b string) string {
	ma, mb, ok := t.pair(a, b)
	if !ok {
		return ""
	}
	return ma.Channel.Region(ma.Position, mb.Position)
}
