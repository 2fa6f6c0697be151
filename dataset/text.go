// SPDX-License-Identifier: MIT
// Package: fakegen/dataset
//
// text.go - ASCII folding shared by user names, domains and slugs.

package dataset

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips combining marks ("Zoë" -> "Zoe") and returns the NFC result.
// Characters without a decomposition are left as they are.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

// Slugify lowercases and folds s, keeps ASCII letters and digits, and joins
// the remaining runs with single hyphens.
func Slugify(s string) string {
	folded := strings.ToLower(Fold(s))

	var b strings.Builder
	b.Grow(len(folded))
	pendingDash := false
	for _, c := range folded {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(c)
			pendingDash = false
			continue
		}
		pendingDash = true
	}

	return b.String()
}

// identifier keeps only ASCII letters and digits of the folded, lowercased s.
func identifier(s string) string {
	return strings.ReplaceAll(Slugify(s), "-", "")
}
