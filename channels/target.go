package channels

type targetState int

const (
	// content written before the insertion point was declared;
	// the segment is not part of the sequence yet
	targetPending targetState = iota + 1
	// insertion point declared; the segment is in the sequence at index
	targetDeclared
)

type target struct {
	state   targetState
	pending *segment
	index   int
}

// WriteToTarget writes text to the named target.
// A declared target is written in place. Otherwise the text is stashed in a
// pending segment that becomes visible when the target is created.
func (c *Channel) WriteToTarget(name, text string, overwrite bool) {
	formatted := c.formatter.Format(text, c.format, 0)
	t, ok := c.targets[name]
	if ok && t.state == targetDeclared {
		c.writeInto(t.index, formatted, overwrite)
		c.check()
		return
	}
	if !ok {
		t = &target{
			state:   targetPending,
			pending: &segment{kind: TargetSegment},
		}
		c.targets[name] = t
	}
	if overwrite {
		t.pending.reset()
	}
	t.pending.append(formatted)
	c.check()
}

// CreateTarget declares the named insertion point at the current position and
// returns the index of its segment. Pending content for name is spliced in.
// A new current segment follows, so later writes land after the target.
// Declaring a name again binds it to a new empty segment; the earlier point keeps its content.
func (c *Channel) CreateTarget(name string) int {
	var index int
	if t, ok := c.targets[name]; ok && t.state == targetPending {
		index = c.appendExisting(t.pending)
		t.state = targetDeclared
		t.index = index
		t.pending = nil
	} else {
		index = c.appendSegment(TargetSegment)
		c.targets[name] = &target{
			state: targetDeclared,
			index: index,
		}
	}
	c.appendSegment(PlainSegment)
	c.check()
	return index
}

// ClearTarget empties the named target's segment. The name stays bound.
func (c *Channel) ClearTarget(name string) {
	t, ok := c.targets[name]
	if !ok {
		return
	}
	switch t.state {
	case targetPending:
		t.pending.reset()
	case targetDeclared:
		c.length -= c.segments[t.index].reset()
		c.resolveArticle(t.index)
	}
	c.check()
}

// TargetIndex returns the segment index of a declared target.
func (c *Channel) TargetIndex(name string) (int, bool) {
	t, ok := c.targets[name]
	if !ok || t.state != targetDeclared {
		return 0, false
	}
	return t.index, true
}

// PendingTarget returns the content stashed for a target not yet declared.
func (c *Channel) PendingTarget(name string) (string, bool) {
	t, ok := c.targets[name]
	if !ok || t.state != targetPending {
		return "", false
	}
	return t.pending.String(), true
}
