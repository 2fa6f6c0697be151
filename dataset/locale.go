// SPDX-License-Identifier: MIT
// Package: fakegen/dataset
//
// locale.go - embedded locale tables.
//
// Contract:
//   - Locale tables are immutable after load; data sets only read them.
//   - Each embedded file is parsed at most once per process.
//   - Every list a data set draws from must be non-empty; Validate enforces it.

package dataset

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var localeFS embed.FS

// ErrUnknownLocale is returned when no embedded table matches the requested code.
var ErrUnknownLocale = errors.New("dataset: unknown locale")

// ErrInvalidLocale is returned when a locale table lacks a required list.
var ErrInvalidLocale = errors.New("dataset: invalid locale table")

// State is one entry of the address state table.
type State struct {
	Name string `yaml:"name"`
	Abbr string `yaml:"abbr"`
}

// Currency describes an ISO 4217 currency.
type Currency struct {
	Code   string `yaml:"code" json:"code"`
	Name   string `yaml:"name" json:"name"`
	Symbol string `yaml:"symbol" json:"symbol"`
}

// Locale is the parsed form of one data/<code>.yaml file.
type Locale struct {
	Code  string `yaml:"code"`
	Title string `yaml:"title"`

	Name struct {
		MaleFirst     []string `yaml:"male_first"`
		FemaleFirst   []string `yaml:"female_first"`
		Last          []string `yaml:"last"`
		MalePrefix    []string `yaml:"male_prefix"`
		FemalePrefix  []string `yaml:"female_prefix"`
		Suffix        []string `yaml:"suffix"`
		JobDescriptor []string `yaml:"job_descriptor"`
		JobArea       []string `yaml:"job_area"`
		JobType       []string `yaml:"job_type"`
	} `yaml:"name"`

	Internet struct {
		FreeEmail    []string `yaml:"free_email"`
		ExampleEmail []string `yaml:"example_email"`
		DomainSuffix []string `yaml:"domain_suffix"`
	} `yaml:"internet"`

	Address struct {
		CityPrefix     []string `yaml:"city_prefix"`
		CitySuffix     []string `yaml:"city_suffix"`
		StreetSuffix   []string `yaml:"street_suffix"`
		BuildingNumber []string `yaml:"building_number"`
		Secondary      []string `yaml:"secondary"`
		Postcode       []string `yaml:"postcode"`
		States         []State  `yaml:"states"`
	} `yaml:"address"`

	Lorem struct {
		Words []string `yaml:"words"`
	} `yaml:"lorem"`

	Date struct {
		Months   []string `yaml:"months"`
		Weekdays []string `yaml:"weekdays"`
	} `yaml:"date"`

	Finance struct {
		AccountTypes []string   `yaml:"account_types"`
		Currencies   []Currency `yaml:"currencies"`
	} `yaml:"finance"`

	Phone struct {
		Formats []string `yaml:"formats"`
	} `yaml:"phone"`
}

var (
	localeMu    sync.Mutex
	localeCache = map[string]*Locale{}
)

// LoadLocale returns the embedded table for code, parsing it on first use.
// Errors: ErrUnknownLocale, ErrInvalidLocale, or a wrapped YAML error.
func LoadLocale(code string) (*Locale, error) {
	localeMu.Lock()
	defer localeMu.Unlock()

	if loc, ok := localeCache[code]; ok {
		return loc, nil
	}

	raw, err := localeFS.ReadFile("data/" + code + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("LoadLocale: %q: %w", code, ErrUnknownLocale)
	}

	loc, err := ParseLocale(raw)
	if err != nil {
		return nil, fmt.Errorf("LoadLocale: %q: %w", code, err)
	}
	localeCache[code] = loc

	return loc, nil
}

// ParseLocale decodes a locale table and checks that every list is populated.
func ParseLocale(raw []byte) (*Locale, error) {
	var loc Locale
	if err := yaml.Unmarshal(raw, &loc); err != nil {
		return nil, fmt.Errorf("parse locale: %w", err)
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	return &loc, nil
}

// Validate reports the first empty list in the table.
func (l *Locale) Validate() error {
	lists := []struct {
		name string
		n    int
	}{
		{"name.male_first", len(l.Name.MaleFirst)},
		{"name.female_first", len(l.Name.FemaleFirst)},
		{"name.last", len(l.Name.Last)},
		{"name.male_prefix", len(l.Name.MalePrefix)},
		{"name.female_prefix", len(l.Name.FemalePrefix)},
		{"name.suffix", len(l.Name.Suffix)},
		{"name.job_descriptor", len(l.Name.JobDescriptor)},
		{"name.job_area", len(l.Name.JobArea)},
		{"name.job_type", len(l.Name.JobType)},
		{"internet.free_email", len(l.Internet.FreeEmail)},
		{"internet.example_email", len(l.Internet.ExampleEmail)},
		{"internet.domain_suffix", len(l.Internet.DomainSuffix)},
		{"address.city_prefix", len(l.Address.CityPrefix)},
		{"address.city_suffix", len(l.Address.CitySuffix)},
		{"address.street_suffix", len(l.Address.StreetSuffix)},
		{"address.building_number", len(l.Address.BuildingNumber)},
		{"address.secondary", len(l.Address.Secondary)},
		{"address.postcode", len(l.Address.Postcode)},
		{"address.states", len(l.Address.States)},
		{"lorem.words", len(l.Lorem.Words)},
		{"date.months", len(l.Date.Months)},
		{"date.weekdays", len(l.Date.Weekdays)},
		{"finance.account_types", len(l.Finance.AccountTypes)},
		{"finance.currencies", len(l.Finance.Currencies)},
		{"phone.formats", len(l.Phone.Formats)},
	}
	for _, ls := range lists {
		if ls.n == 0 {
			return fmt.Errorf("%s is empty: %w", ls.name, ErrInvalidLocale)
		}
	}

	return nil
}

// English returns the built-in "en" table. The table ships with the binary,
// so a failure here is a packaging defect and panics.
func English() *Locale {
	loc, err := LoadLocale("en")
	if err != nil {
		panic(err)
	}

	return loc
}

// orEnglish substitutes the built-in table for nil.
func orEnglish(loc *Locale) *Locale {
	if loc == nil {
		return English()
	}

	return loc
}
