// SPDX-License-Identifier: MIT
// Package: fakegen/dataset
//
// name.go - personal names, titles and identifiers.

package dataset

import "strings"

// Gender selects the first-name and prefix tables.
type Gender int

const (
	Male Gender = iota
	Female
)

// String implements fmt.Stringer.
func (g Gender) String() string {
	if g == Female {
		return "female"
	}

	return "male"
}

// Name generates person names.
type Name struct {
	Base
	loc *Locale
}

// NewName builds a Name over loc; nil selects the built-in English table.
func NewName(loc *Locale) *Name {
	return &Name{loc: orEnglish(loc)}
}

// Gender draws Male or Female with equal probability.
func (n *Name) Gender() Gender {
	if n.Randomizer().Bool() {
		return Female
	}

	return Male
}

// FirstName draws a first name of a random gender.
func (n *Name) FirstName() string {
	return n.FirstNameFor(n.Gender())
}

// FirstNameFor draws a first name for g.
func (n *Name) FirstNameFor(g Gender) string {
	if g == Female {
		return pick(n.Randomizer(), n.loc.Name.FemaleFirst)
	}

	return pick(n.Randomizer(), n.loc.Name.MaleFirst)
}

// LastName draws a family name.
func (n *Name) LastName() string {
	return pick(n.Randomizer(), n.loc.Name.Last)
}

// FullName is FirstName followed by LastName.
func (n *Name) FullName() string {
	return n.FirstName() + " " + n.LastName()
}

// Prefix draws a gendered honorific such as "Mrs.".
func (n *Name) Prefix() string {
	if n.Gender() == Female {
		return pick(n.Randomizer(), n.loc.Name.FemalePrefix)
	}

	return pick(n.Randomizer(), n.loc.Name.MalePrefix)
}

// Suffix draws a name suffix such as "Jr.".
func (n *Name) Suffix() string {
	return pick(n.Randomizer(), n.loc.Name.Suffix)
}

// FindNameOptions controls FindName. Empty names are drawn.
type FindNameOptions struct {
	First      string
	Last       string
	WithPrefix bool
	WithSuffix bool
	Gender     *Gender
}

// FindName composes a full name from the given parts, drawing what is missing.
func (n *Name) FindName(opts FindNameOptions) string {
	g := n.Gender()
	if opts.Gender != nil {
		g = *opts.Gender
	}
	first := opts.First
	if first == "" {
		first = n.FirstNameFor(g)
	}
	last := opts.Last
	if last == "" {
		last = n.LastName()
	}

	parts := make([]string, 0, 4)
	if opts.WithPrefix {
		if g == Female {
			parts = append(parts, pick(n.Randomizer(), n.loc.Name.FemalePrefix))
		} else {
			parts = append(parts, pick(n.Randomizer(), n.loc.Name.MalePrefix))
		}
	}
	parts = append(parts, first, last)
	if opts.WithSuffix {
		parts = append(parts, n.Suffix())
	}

	return strings.Join(parts, " ")
}

// JobTitle draws "<descriptor> <area> <type>", e.g. "Senior Data Engineer".
func (n *Name) JobTitle() string {
	r := n.Randomizer()

	return pick(r, n.loc.Name.JobDescriptor) + " " +
		pick(r, n.loc.Name.JobArea) + " " +
		pick(r, n.loc.Name.JobType)
}

// Ssn draws a US social security number shaped "###-##-####".
func (n *Name) Ssn() string {
	return n.Randomizer().Replace("###-##-####")
}
