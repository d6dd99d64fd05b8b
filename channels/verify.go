package channels

import (
	"fmt"
	"unicode/utf8"
)

// Verify recomputes the channel's bookkeeping from its segments.
func (c *Channel) Verify() error {
	if len(c.segments) == 0 {
		return fmt.Errorf("%w: no current segment", ErrInvariant)
	}

	sum := 0
	seen := make(map[*segment]int, len(c.segments))
	for i, seg := range c.segments {
		if j, ok := seen[seg]; ok {
			return fmt.Errorf("%w: segment %d also at %d", ErrInvariant, i, j)
		}
		seen[seg] = i
		if n := utf8.RuneCount(seg.text); n != seg.length {
			return fmt.Errorf("%w: segment %d length %d, counted %d", ErrInvariant, i, seg.length, n)
		}
		sum += seg.length
	}
	if sum != c.length {
		return fmt.Errorf("%w: length %d, segments sum to %d", ErrInvariant, c.length, sum)
	}

	if kind := c.segments[len(c.segments)-1].kind; kind != PlainSegment {
		return fmt.Errorf("%w: current segment is %s", ErrInvariant, kind)
	}

	for name, t := range c.targets {
		switch t.state {
		case targetPending:
			if _, ok := seen[t.pending]; ok {
				return fmt.Errorf("%w: pending target %s is in the sequence", ErrInvariant, name)
			}
		case targetDeclared:
			if t.index <= 0 || t.index >= len(c.segments) {
				return fmt.Errorf("%w: target %s at %d", ErrInvariant, name, t.index)
			}
		default:
			return fmt.Errorf("%w: target %s in state %d", ErrInvariant, name, t.state)
		}
	}

	for trigger, patch := range c.patches {
		if trigger >= len(c.segments) || patch.article != trigger-1 ||
			c.segments[patch.article].kind != ArticleSegment {
			return fmt.Errorf("%w: article patch %d -> %d", ErrInvariant, trigger, patch.article)
		}
	}

	return nil
}

func (c *Channel) check() {
	if c.length < 0 {
		panic(fmt.Errorf("%w: negative length %d", ErrInvariant, c.length))
	}
	if !c.strict {
		return
	}
	if err := c.Verify(); err != nil {
		panic(err)
	}
}
