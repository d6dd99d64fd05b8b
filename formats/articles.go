package formats

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// IndefiniteArticles holds the two article forms of a language and the rules
// choosing between them.
type IndefiniteArticles struct {
	ConsonantForm string
	VowelForm     string

	// Vowels are the letters that start a vowel sound by default.
	Vowels string
	// VowelPrefixes start a vowel sound even though the first letter is not a vowel.
	VowelPrefixes []string
	// ConsonantPrefixes start a consonant sound even though the first letter is a vowel.
	ConsonantPrefixes []string
	// ConsonantWords are whole words starting a consonant sound, matched before any prefix.
	ConsonantWords []string
	// NumberVowelPrefixes classify a leading digit run by its leading group of up to three
	// digits, the part read before "thousand", "million" and so on. A one-digit prefix matches
	// any group starting with it; a longer prefix must equal the group.
	NumberVowelPrefixes []string
}

// PrecedesVowel reports whether text begins with a vowel sound.
// Leading spaces and punctuation are skipped; text without a word is not vowel-initial.
func (a IndefiniteArticles) PrecedesVowel(text string, tag language.Tag) bool {
	word := leadingWord(text)
	if word == "" {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(word); unicode.IsDigit(r) {
		return a.numberPrecedesVowel(word)
	}
	word = cases.Lower(tag).String(foldMarks(word))
	if slices.Contains(a.ConsonantWords, word) {
		return false
	}
	for _, prefix := range a.VowelPrefixes {
		if strings.HasPrefix(word, prefix) {
			return true
		}
	}
	for _, prefix := range a.ConsonantPrefixes {
		if strings.HasPrefix(word, prefix) {
			return false
		}
	}
	for _, r := range word {
		return strings.ContainsRune(a.Vowels, r)
	}
	return false
}

func (a IndefiniteArticles) numberPrecedesVowel(word string) bool {
	digits := word
	if end := strings.IndexFunc(word, func(r rune) bool {
		return !unicode.IsDigit(r)
	}); end >= 0 {
		digits = word[:end]
	}
	n := utf8.RuneCountInString(digits)
	groupLen := n % 3
	if groupLen == 0 {
		groupLen = 3
	}
	group := string([]rune(digits)[:groupLen])
	for _, prefix := range a.NumberVowelPrefixes {
		if utf8.RuneCountInString(prefix) == 1 && strings.HasPrefix(group, prefix) ||
			group == prefix {
			return true
		}
	}
	return false
}

func leadingWord(text string) string {
	start := strings.IndexFunc(text, isWordRune)
	if start < 0 {
		return ""
	}
	text = text[start:]
	if end := strings.IndexFunc(text, func(r rune) bool {
		return !isWordRune(r) && !unicode.Is(unicode.Mn, r)
	}); end >= 0 {
		text = text[:end]
	}
	return text
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// foldMarks removes combining marks, so "élan" is judged as "elan".
func foldMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ret, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return ret
}
