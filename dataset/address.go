// SPDX-License-Identifier: MIT
// Package: fakegen/dataset
//
// address.go - postal addresses and coordinates.

package dataset

import (
	"math"

	"github.com/katalvlaran/fakegen/seed"
)

// Address generates postal addresses. Street and city names reuse a
// registered Name data set.
type Address struct {
	Base
	loc  *Locale
	name *Name
}

// NewAddress builds an Address over loc; nil selects English.
func NewAddress(loc *Locale) *Address {
	loc = orEnglish(loc)
	a := &Address{loc: loc}
	a.name = seed.Flow(a.Notifier(), NewName(loc))

	return a
}

// BuildingNumber draws a house number from the locale formats.
func (a *Address) BuildingNumber() string {
	r := a.Randomizer()

	return r.ReplaceNumbers(pick(r, a.loc.Address.BuildingNumber), '#')
}

// StreetName draws "<name> <suffix>", e.g. "Walker Avenue".
func (a *Address) StreetName() string {
	var base string
	if a.Randomizer().Bool() {
		base = a.name.FirstName()
	} else {
		base = a.name.LastName()
	}

	return base + " " + pick(a.Randomizer(), a.loc.Address.StreetSuffix)
}

// StreetAddress draws "<number> <street>", optionally with an apartment or suite.
func (a *Address) StreetAddress(withSecondary bool) string {
	s := a.BuildingNumber() + " " + a.StreetName()
	if withSecondary {
		s += " " + a.SecondaryAddress()
	}

	return s
}

// SecondaryAddress draws "Apt. ###" or "Suite ###".
func (a *Address) SecondaryAddress() string {
	r := a.Randomizer()

	return r.ReplaceNumbers(pick(r, a.loc.Address.Secondary), '#')
}

// City draws one of four city shapes built from prefixes, names and suffixes.
func (a *Address) City() string {
	r := a.Randomizer()
	switch r.Number(0, 3) {
	case 0:
		return pick(r, a.loc.Address.CityPrefix) + " " + a.name.FirstName() + pick(r, a.loc.Address.CitySuffix)
	case 1:
		return pick(r, a.loc.Address.CityPrefix) + " " + a.name.FirstName()
	case 2:
		return a.name.FirstName() + pick(r, a.loc.Address.CitySuffix)
	default:
		return a.name.LastName() + pick(r, a.loc.Address.CitySuffix)
	}
}

func (a *Address) state() State {
	st := a.loc.Address.States
	return st[a.Randomizer().Number(0, len(st)-1)]
}

// State draws a full state name.
func (a *Address) State() string { return a.state().Name }

// StateAbbr draws a two-letter state code.
func (a *Address) StateAbbr() string { return a.state().Abbr }

// ZipCode fills format with digits ('#'); "" picks a locale format.
func (a *Address) ZipCode(format string) string {
	r := a.Randomizer()
	if format == "" {
		format = pick(r, a.loc.Address.Postcode)
	}

	return r.ReplaceNumbers(format, '#')
}

// FullAddress draws "<street>, <city>, <ST> <zip>".
func (a *Address) FullAddress() string {
	street := a.StreetAddress(false)
	city := a.City()
	st := a.StateAbbr()
	zip := a.ZipCode("")

	return street + ", " + city + ", " + st + " " + zip
}

// Latitude draws a value in [-90, 90) rounded to four decimals.
func (a *Address) Latitude() float64 {
	return round(a.Randomizer().Double(-90, 90), 4)
}

// Longitude draws a value in [-180, 180) rounded to four decimals.
func (a *Address) Longitude() float64 {
	return round(a.Randomizer().Double(-180, 180), 4)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
