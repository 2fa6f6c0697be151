// Package randomizer - string synthesis built purely from the numeric
// primitives, so every result is reproducible from the Source alone.
package randomizer

import (
	"strings"
	"unicode/utf8"
)

// Character pools.
const (
	LowerLetters = "abcdefghijklmnopqrstuvwxyz"
	UpperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers      = "0123456789"
	HexLower     = "0123456789abcdef"
	HexUpper     = "0123456789ABCDEF"
	alphaNumeric = Numbers + LowerLetters
)

// Char returns a uniform code point in [min, max]. Surrogate code points are
// not filtered; use ValidChar for well-formed text.
func (r *Randomizer) Char(min, max rune) rune {
	return rune(r.Number(int(min), int(max)))
}

// Surrogate block bounds; these code points are not valid on their own.
const (
	surrogateMin rune = 0xD800
	surrogateMax rune = 0xDFFF
)

// ValidChar returns a uniform code point in [from, to] outside U+D800..U+DFFF.
// One draw per call. A range made only of surrogates yields utf8.RuneError.
func (r *Randomizer) ValidChar(from, to rune) rune {
	if from > to {
		from, to = to, from
	}
	lo, hi := max(from, surrogateMin), min(to, surrogateMax)
	gap := rune(0)
	if lo <= hi {
		gap = hi - lo + 1
	}
	if to-from+1 == gap {
		return utf8.RuneError
	}

	c := rune(r.Number(int(from), int(to-gap)))
	if gap > 0 && c >= lo {
		c += gap
	}

	return c
}

// ValidString returns a well-formed string of length code points drawn from
// [minChar, maxChar] with surrogates skipped. A negative length picks one
// uniformly in [40, 80].
func (r *Randomizer) ValidString(length int, minChar, maxChar rune) string {
	if length < 0 {
		length = r.Number(40, 80)
	}
	out := make([]rune, length)
	for i := range out {
		out[i] = r.ValidChar(minChar, maxChar)
	}

	return string(out)
}

// Chars returns count code points, each uniform in [min, max].
func (r *Randomizer) Chars(min, max rune, count int) []rune {
	if count < 0 {
		count = 0
	}
	out := make([]rune, count)
	for i := range out {
		out[i] = r.Char(min, max)
	}

	return out
}

// String returns length code points drawn from [minChar, maxChar].
// A negative length picks one uniformly in [40, 80].
func (r *Randomizer) String(length int, minChar, maxChar rune) string {
	if length < 0 {
		length = r.Number(40, 80)
	}

	return string(r.Chars(minChar, maxChar, length))
}

// StringRange is String with a length uniform in [minLength, maxLength].
func (r *Randomizer) StringRange(minLength, maxLength int, minChar, maxChar rune) string {
	return r.String(r.Number(minLength, maxLength), minChar, maxChar)
}

// String2 returns length characters drawn with repetition from chars.
// An empty pool yields "" (nothing to draw from).
func (r *Randomizer) String2(length int, chars string) string {
	pool := []rune(chars)
	if len(pool) == 0 || length <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteRune(pool[r.Number(0, len(pool)-1)])
	}

	return b.String()
}

// String2Range is String2 with a length uniform in [minLength, maxLength].
func (r *Randomizer) String2Range(minLength, maxLength int, chars string) string {
	return r.String2(r.Number(minLength, maxLength), chars)
}

// Hash returns a hex string of the given length (40 mimics SHA-1).
func (r *Randomizer) Hash(length int, upper bool) string {
	if upper {
		return r.String2(length, HexUpper)
	}

	return r.String2(length, HexLower)
}

// AlphaNumeric returns length characters from 0-9a-z.
func (r *Randomizer) AlphaNumeric(length int) string {
	return r.String2(length, alphaNumeric)
}

// Hexadecimal returns prefix followed by length lowercase hex digits.
func (r *Randomizer) Hexadecimal(length int, prefix string) string {
	return prefix + r.String2(length, HexLower)
}

// ReplaceNumbers replaces every symbol in format with a digit 0-9.
// Example: ReplaceNumbers("###-##", '#') -> "284-07".
func (r *Randomizer) ReplaceNumbers(format string, symbol rune) string {
	return ReplaceSymbols(format, symbol, func() rune {
		return rune('0' + r.Number(0, 9))
	})
}

// Replace substitutes '#' with a digit, '?' with an uppercase letter and
// '*' with either (coin flip). Other characters are kept.
// Example: "###???*" -> "283QED4".
func (r *Randomizer) Replace(format string) string {
	var b strings.Builder
	b.Grow(len(format))
	for _, c := range format {
		if c == '*' {
			if r.Bool() {
				c = '#'
			} else {
				c = '?'
			}
		}
		switch c {
		case '#':
			b.WriteRune(rune('0' + r.Number(0, 9)))
		case '?':
			b.WriteRune(rune('A' + r.Number(0, 25)))
		default:
			b.WriteRune(c)
		}
	}

	return b.String()
}

// ReplaceSymbols replaces each occurrence of symbol in format with fn().
// fn is invoked once per occurrence, left to right.
func ReplaceSymbols(format string, symbol rune, fn func() rune) string {
	var b strings.Builder
	b.Grow(len(format))
	for _, c := range format {
		if c == symbol {
			b.WriteRune(fn())
			continue
		}
		b.WriteRune(c)
	}

	return b.String()
}

// ClampString bounds the rune length of s. Strings longer than maxLen are cut
// and trimmed of surrounding whitespace; strings shorter than minLen are padded
// with random uppercase letters. A bound <= 0 is ignored.
func (r *Randomizer) ClampString(s string, minLen, maxLen int) string {
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		s = strings.TrimSpace(string([]rune(s)[:maxLen]))
	}
	if n := utf8.RuneCountInString(s); minLen > 0 && minLen > n {
		return s + r.Replace(strings.Repeat("?", minLen-n))
	}

	return s
}
