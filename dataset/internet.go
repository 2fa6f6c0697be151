// SPDX-License-Identifier: MIT
// Package: fakegen/dataset
//
// internet.go - user names, e-mail addresses, domains and network identifiers.
//
// Internet owns a Name data set registered through its notifier, so reseeding
// an Internet also reseeds the names it draws.

package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/fakegen/seed"
)

// Internet generates network-flavoured values.
type Internet struct {
	Base
	loc  *Locale
	name *Name
}

// NewInternet builds an Internet over loc; nil selects English.
func NewInternet(loc *Locale) *Internet {
	loc = orEnglish(loc)
	i := &Internet{loc: loc}
	i.name = seed.Flow(i.Notifier(), NewName(loc))

	return i
}

// UserName draws a login handle from a random person.
func (i *Internet) UserName() string {
	return i.UserNameFor(i.name.FirstName(), i.name.LastName())
}

// UserNameFor derives a handle from first and last, e.g. "mary.smith42".
func (i *Internet) UserNameFor(first, last string) string {
	r := i.Randomizer()
	first, last = identifier(first), identifier(last)

	switch r.Number(0, 2) {
	case 0:
		return first + strconv.Itoa(r.Number(1, 99))
	case 1:
		return first + pick(r, []string{".", "_"}) + last
	default:
		return first + pick(r, []string{".", "_"}) + last + strconv.Itoa(r.Number(1, 99))
	}
}

// Email draws an address at a free mail provider for a random person.
func (i *Internet) Email() string {
	return i.EmailFor(i.name.FirstName(), i.name.LastName())
}

// EmailFor builds an address at a free mail provider from the given names.
func (i *Internet) EmailFor(first, last string) string {
	return i.UserNameFor(first, last) + "@" + pick(i.Randomizer(), i.loc.Internet.FreeEmail)
}

// ExampleEmail draws an address under a reserved example domain.
func (i *Internet) ExampleEmail() string {
	return i.UserName() + "@" + pick(i.Randomizer(), i.loc.Internet.ExampleEmail)
}

// DomainWord draws a lowercase DNS label.
func (i *Internet) DomainWord() string {
	return identifier(i.name.FirstName())
}

// DomainSuffix draws a top-level domain without the dot.
func (i *Internet) DomainSuffix() string {
	return pick(i.Randomizer(), i.loc.Internet.DomainSuffix)
}

// DomainName is DomainWord "." DomainSuffix.
func (i *Internet) DomainName() string {
	return i.DomainWord() + "." + i.DomainSuffix()
}

// URL draws an http or https URL on a random domain.
func (i *Internet) URL() string {
	proto := pick(i.Randomizer(), []string{"http", "https"})

	return proto + "://" + i.DomainName()
}

// IPv4 draws a dotted quad whose first octet is never zero.
func (i *Internet) IPv4() string {
	r := i.Randomizer()

	return fmt.Sprintf("%d.%d.%d.%d", r.Number(1, 255), r.Number(0, 255), r.Number(0, 255), r.Number(0, 255))
}

// Port draws a non-zero TCP/UDP port.
func (i *Internet) Port() int {
	return i.Randomizer().Number(1, 65535)
}

// MAC draws six lowercase hex octets joined by sep; "" selects ":".
func (i *Internet) MAC(sep string) string {
	if sep == "" {
		sep = ":"
	}
	octets := i.Randomizer().Bytes(6)
	parts := make([]string, len(octets))
	for k, o := range octets {
		parts[k] = fmt.Sprintf("%02x", o)
	}

	return strings.Join(parts, sep)
}

const (
	passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"
	vowels        = "aeiou"
	consonants    = "bcdfghjklmnpqrstvwxyz"
)

// Password draws a password of length characters (non-positive means 10).
// A memorable password alternates consonants and vowels.
func (i *Internet) Password(length int, memorable bool) string {
	if length <= 0 {
		length = 10
	}
	r := i.Randomizer()
	if !memorable {
		return r.String2(length, passwordChars)
	}

	var b strings.Builder
	b.Grow(length)
	for k := 0; k < length; k++ {
		if k%2 == 0 {
			b.WriteString(r.String2(1, consonants))
		} else {
			b.WriteString(r.String2(1, vowels))
		}
	}

	return b.String()
}
