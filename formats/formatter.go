package formats

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

type Case int

const (
	CaseNone Case = iota
	CaseLower
	CaseUpper
	// CaseFirst capitalizes the next letter written, then reverts to CaseNone.
	CaseFirst
	// CaseWord capitalizes the first letter of every word.
	CaseWord
	// CaseSentence capitalizes the first letter of every sentence.
	CaseSentence
)

var caseNames = map[Case]string{
	CaseNone:     "none",
	CaseLower:    "lower",
	CaseUpper:    "upper",
	CaseFirst:    "first",
	CaseWord:     "word",
	CaseSentence: "sentence",
}

func (c Case) String() string {
	if name, ok := caseNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Case(%d)", int(c))
}

func ParseCase(name string) (Case, error) {
	name = strings.ToLower(name)
	for c, n := range caseNames {
		if n == name {
			return c, nil
		}
	}
	return CaseNone, fmt.Errorf("unknown case: %s", name)
}

type Options uint8

const (
	// NoUpdate renders without advancing the formatter state.
	NoUpdate Options = 1 << iota
	// IsArticle marks an article word. Capitalization state is consumed by it,
	// but word boundaries keep being judged from the text preceding the article.
	IsArticle
)

// Formatter applies capitalization to text written into a channel.
// It carries state across writes: the last written character and whether a
// sentence or a first-letter capitalization is pending.
type Formatter struct {
	mode         Case
	lastChar     rune
	sentenceOpen bool
}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// Clone returns a snapshot that evolves independently.
func (f *Formatter) Clone() *Formatter {
	c := *f
	return &c
}

func (f *Formatter) Case() Case {
	return f.mode
}

func (f *Formatter) SetCase(c Case) {
	f.mode = c
}

func (f *Formatter) Format(text string, format *Format, opts Options) string {
	if text == "" {
		return ""
	}
	tag := format.Language

	var out string
	mode := f.mode

	switch mode {

	case CaseLower:
		out = cases.Lower(tag).String(text)

	case CaseUpper:
		out = cases.Upper(tag).String(text)

	case CaseFirst:
		title := cases.Title(tag, cases.NoLower)
		var b strings.Builder
		done := false
		for _, r := range text {
			if !done && unicode.IsLetter(r) {
				b.WriteString(title.String(string(r)))
				done = true
				continue
			}
			b.WriteRune(r)
		}
		out = b.String()
		if done {
			mode = CaseNone
		}

	case CaseWord:
		title := cases.Title(tag, cases.NoLower)
		var b strings.Builder
		prev := f.lastChar
		for _, r := range text {
			if unicode.IsLetter(r) && !inWord(prev) {
				b.WriteString(title.String(string(r)))
			} else {
				b.WriteRune(r)
			}
			prev = r
		}
		out = b.String()

	case CaseSentence:
		title := cases.Title(tag, cases.NoLower)
		var b strings.Builder
		sentenceOpen := f.sentenceOpen
		for _, r := range text {
			switch {
			case unicode.IsLetter(r) && !sentenceOpen:
				b.WriteString(title.String(string(r)))
				sentenceOpen = true
			case r == '.' || r == '!' || r == '?':
				b.WriteRune(r)
				sentenceOpen = false
			default:
				b.WriteRune(r)
			}
		}
		out = b.String()

	default:
		out = text
	}

	if opts&NoUpdate != 0 {
		return out
	}
	f.mode = mode
	if opts&IsArticle != 0 {
		if strings.IndexFunc(out, unicode.IsLetter) >= 0 {
			f.sentenceOpen = true
		}
		return out
	}
	f.lastChar = lastRune(out)
	f.sentenceOpen = trackSentence(f.sentenceOpen, out)
	return out
}

func inWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’'
}

func trackSentence(open bool, text string) bool {
	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			open = false
		case unicode.IsLetter(r):
			open = true
		}
	}
	return open
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
