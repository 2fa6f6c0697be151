// SPDX-License-Identifier: MIT
// Package: fakegen/dataset
//
// lorem.go - placeholder text.

package dataset

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lorem generates lorem-ipsum words, sentences and paragraphs.
type Lorem struct {
	Base
	loc *Locale
}

// NewLorem builds a Lorem over loc; nil selects English.
func NewLorem(loc *Locale) *Lorem {
	return &Lorem{loc: orEnglish(loc)}
}

// Word draws one word.
func (l *Lorem) Word() string {
	return pick(l.Randomizer(), l.loc.Lorem.Words)
}

// Words draws n words (with repetition); n <= 0 means 3.
func (l *Lorem) Words(n int) []string {
	if n <= 0 {
		n = 3
	}
	out := make([]string, n)
	for k := range out {
		out[k] = l.Word()
	}

	return out
}

// Sentence draws wordCount words (non-positive means 3..10), capitalised and
// terminated with a period.
func (l *Lorem) Sentence(wordCount int) string {
	if wordCount <= 0 {
		wordCount = l.Randomizer().Number(3, 10)
	}
	s := strings.Join(l.Words(wordCount), " ")

	return capitalize(s) + "."
}

// Sentences joins n sentences with sep; n <= 0 means 3..6.
func (l *Lorem) Sentences(n int, sep string) string {
	if n <= 0 {
		n = l.Randomizer().Number(3, 6)
	}
	out := make([]string, n)
	for k := range out {
		out[k] = l.Sentence(0)
	}

	return strings.Join(out, sep)
}

// Paragraph draws n sentences joined by spaces; n <= 0 means 3.
func (l *Lorem) Paragraph(n int) string {
	if n <= 0 {
		n = 3
	}

	return l.Sentences(n, " ")
}

// Slug draws n words joined by hyphens.
func (l *Lorem) Slug(n int) string {
	return Slugify(strings.Join(l.Words(n), " "))
}

func capitalize(s string) string {
	c, size := utf8.DecodeRuneInString(s)
	if c == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(c)) + s[size:]
}
