package channels

import (
	"unicode/utf8"
)

type SegmentKind int

const (
	PlainSegment SegmentKind = iota
	// ArticleSegment holds an indefinite article rewritten as its trigger changes.
	ArticleSegment
	// TargetSegment holds the content of a named target.
	TargetSegment
)

func (k SegmentKind) String() string {
	switch k {
	case PlainSegment:
		return "plain"
	case ArticleSegment:
		return "article"
	case TargetSegment:
		return "target"
	}
	return "unknown"
}

// segment is a growable text buffer. length counts runes.
type segment struct {
	kind   SegmentKind
	text   []byte
	length int
}

func (s *segment) append(text string) int {
	n := utf8.RuneCountInString(text)
	s.text = append(s.text, text...)
	s.length += n
	return n
}

func (s *segment) reset() int {
	n := s.length
	s.text = s.text[:0]
	s.length = 0
	return n
}

// set replaces the content and returns the length delta.
func (s *segment) set(text string) int {
	old := s.reset()
	return s.append(text) - old
}

func (s *segment) String() string {
	return string(s.text)
}

// slice returns the runes in [from, to).
func (s *segment) slice(from, to int) string {
	if from >= to {
		return ""
	}
	start, end := len(s.text), len(s.text)
	i := 0
	for pos := range string(s.text) {
		if i == from {
			start = pos
		}
		if i == to {
			end = pos
			break
		}
		i++
	}
	return string(s.text[start:end])
}
