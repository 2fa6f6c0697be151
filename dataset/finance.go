// SPDX-License-Identifier: MIT
// Package: fakegen/dataset
//
// finance.go - amounts, account identifiers and currencies.

package dataset

import (
	"strconv"
	"strings"
)

// Finance generates banking values.
type Finance struct {
	Base
	loc *Locale
}

// NewFinance builds a Finance over loc; nil selects English.
func NewFinance(loc *Locale) *Finance {
	return &Finance{loc: orEnglish(loc)}
}

// Amount draws a value in [min, max) rounded to decimals places.
func (f *Finance) Amount(min, max float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}

	return round(f.Randomizer().Double(min, max), decimals)
}

// Account draws a numeric account identifier of length digits (non-positive means 8).
func (f *Finance) Account(length int) string {
	if length <= 0 {
		length = 8
	}

	return f.Randomizer().ReplaceNumbers(strings.Repeat("#", length), '#')
}

// AccountType draws a product name such as "Savings".
func (f *Finance) AccountType() string {
	return pick(f.Randomizer(), f.loc.Finance.AccountTypes)
}

// Currency draws an ISO 4217 currency.
func (f *Finance) Currency() Currency {
	cs := f.loc.Finance.Currencies
	return cs[f.Randomizer().Number(0, len(cs)-1)]
}

// RoutingNumber draws a nine-digit ABA routing number with a valid check digit.
func (f *Finance) RoutingNumber() string {
	digits := f.Randomizer().ReplaceNumbers("########", '#')

	return digits + strconv.Itoa(abaCheckDigit(digits))
}

// abaCheckDigit computes the ninth digit for eight ABA digits (weights 3,7,1).
func abaCheckDigit(eight string) int {
	weights := [3]int{3, 7, 1}
	sum := 0
	for k := 0; k < len(eight) && k < 8; k++ {
		sum += int(eight[k]-'0') * weights[k%3]
	}

	return (10 - sum%10) % 10
}

// ValidRoutingNumber reports whether s is nine digits with a correct ABA check digit.
func ValidRoutingNumber(s string) bool {
	if len(s) != 9 {
		return false
	}
	for k := 0; k < 9; k++ {
		if s[k] < '0' || s[k] > '9' {
			return false
		}
	}

	return int(s[8]-'0') == abaCheckDigit(s[:8])
}
