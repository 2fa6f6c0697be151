// SPDX-License-Identifier: MIT
// Package: fakegen/builder
//
// id_fn.go - deterministic label schemes that turn the per-Builder instance
// index into identifiers ("A", "AB", "acc-7", ...).

package builder

import (
	"strconv"

	"github.com/katalvlaran/fakegen/faker"
)

// IDFn derives a label from a zero-based instance index.
// It must be pure: the same idx always yields the same string.
// Negative indices (no generation context yet) yield "".
type IDFn func(idx int) string

// DecimalID returns idx in base 10, e.g. 0→"0", 42→"42".
// Complexity: O(d) where d = number of digits.
func DecimalID(idx int) string {
	if idx < 0 {
		return ""
	}

	return strconv.Itoa(idx)
}

// LetterID returns "A".."Z" for idx in [0,25] and "" otherwise.
// Complexity: O(1).
func LetterID(idx int) string {
	if idx < 0 || idx > 25 {
		return ""
	}

	return string('A' + rune(idx))
}

// Base36ID returns idx in base 36, e.g. 10→"a", 36→"10".
func Base36ID(idx int) string {
	if idx < 0 {
		return ""
	}

	return strconv.FormatInt(int64(idx), 36)
}

// HexID returns idx in lowercase hexadecimal, e.g. 255→"ff".
func HexID(idx int) string {
	if idx < 0 {
		return ""
	}

	return strconv.FormatInt(int64(idx), 16)
}

// ExcelColumnID returns the spreadsheet column name of idx: 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
func ExcelColumnID(idx int) string {
	if idx < 0 {
		return ""
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixedID returns prefix + decimal index, e.g. PrefixedID("acc-")(7) → "acc-7".
func PrefixedID(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			return ""
		}
		return prefix + strconv.Itoa(idx)
	}
}

// RuleForIndex registers a rule that labels a string field with id applied
// to the hub's IndexFaker, so the n-th instance a Builder produces gets id(n).
// Errors: ErrNilRule, ErrUnknownField, ErrTypeMismatch (field is not a string).
func (b *Builder[T]) RuleForIndex(field string, id IDFn) error {
	if id == nil {
		return configErr(MethodRuleForIndex, b.set, field, ErrNilRule)
	}

	return Rule(b, field, func(f *faker.Faker, _ *T) string {
		return id(int(f.IndexFaker()))
	})
}
