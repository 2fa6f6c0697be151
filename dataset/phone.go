// SPDX-License-Identifier: MIT
// Package: fakegen/dataset
//
// phone.go - phone numbers.

package dataset

// Phone generates phone numbers.
type Phone struct {
	Base
	loc *Locale
}

// NewPhone builds a Phone over loc; nil selects English.
func NewPhone(loc *Locale) *Phone {
	return &Phone{loc: orEnglish(loc)}
}

// PhoneNumber fills every '#' in format with a digit; "" picks a locale format.
func (p *Phone) PhoneNumber(format string) string {
	r := p.Randomizer()
	if format == "" {
		format = pick(r, p.loc.Phone.Formats)
	}

	return r.ReplaceNumbers(format, '#')
}
