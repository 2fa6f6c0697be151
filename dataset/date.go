// SPDX-License-Identifier: MIT
// Package: fakegen/dataset
//
// date.go - instants relative to a caller-supplied time reference.
//
// Contract:
//   - Past/Future/Recent/Soon are anchored on the time reference, never on the
//     wall clock, so seeded output is reproducible. Without a reference they
//     return ErrNoTimeReference.
//   - Offsets are drawn in nanoseconds with one Int64 draw each.

package dataset

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNoTimeReference is returned by relative Date helpers before a reference is set.
var ErrNoTimeReference = errors.New("dataset: no time reference")

const day = 24 * time.Hour

// Date generates instants and calendar names.
type Date struct {
	Base
	loc *Locale

	refMu sync.RWMutex
	ref   *time.Time
}

// NewDate builds a Date over loc; nil selects English.
func NewDate(loc *Locale) *Date {
	return &Date{loc: orEnglish(loc)}
}

// SetTimeReference anchors relative helpers on t.
func (d *Date) SetTimeReference(t time.Time) {
	d.refMu.Lock()
	d.ref = &t
	d.refMu.Unlock()
}

// ClearTimeReference removes the anchor.
func (d *Date) ClearTimeReference() {
	d.refMu.Lock()
	d.ref = nil
	d.refMu.Unlock()
}

// TimeReference returns the anchor and whether one is set.
func (d *Date) TimeReference() (time.Time, bool) {
	d.refMu.RLock()
	defer d.refMu.RUnlock()
	if d.ref == nil {
		return time.Time{}, false
	}

	return *d.ref, true
}

func (d *Date) reference(method string) (time.Time, error) {
	ref, ok := d.TimeReference()
	if !ok {
		return time.Time{}, fmt.Errorf("%s: %w", method, ErrNoTimeReference)
	}

	return ref, nil
}

// Between draws an instant in [start, end]; the bounds may come in any order.
func (d *Date) Between(start, end time.Time) time.Time {
	if end.Before(start) {
		start, end = end, start
	}
	span := int64(end.Sub(start))

	return start.Add(time.Duration(d.Randomizer().Int64(0, span)))
}

// Past draws an instant within years (non-positive means 1) before the reference.
func (d *Date) Past(years int) (time.Time, error) {
	ref, err := d.reference("Past")
	if err != nil {
		return time.Time{}, err
	}
	if years <= 0 {
		years = 1
	}

	return d.Between(ref.AddDate(-years, 0, 0), ref), nil
}

// Future draws an instant within years (non-positive means 1) after the reference.
func (d *Date) Future(years int) (time.Time, error) {
	ref, err := d.reference("Future")
	if err != nil {
		return time.Time{}, err
	}
	if years <= 0 {
		years = 1
	}

	return d.Between(ref, ref.AddDate(years, 0, 0)), nil
}

// Recent draws an instant within days (non-positive means 1) before the reference.
func (d *Date) Recent(days int) (time.Time, error) {
	ref, err := d.reference("Recent")
	if err != nil {
		return time.Time{}, err
	}
	if days <= 0 {
		days = 1
	}

	return d.Between(ref.Add(-time.Duration(days)*day), ref), nil
}

// Soon draws an instant within days (non-positive means 1) after the reference.
func (d *Date) Soon(days int) (time.Time, error) {
	ref, err := d.reference("Soon")
	if err != nil {
		return time.Time{}, err
	}
	if days <= 0 {
		days = 1
	}

	return d.Between(ref, ref.Add(time.Duration(days)*day)), nil
}

// Month draws a localized month name.
func (d *Date) Month() string {
	return pick(d.Randomizer(), d.loc.Date.Months)
}

// Weekday draws a localized weekday name.
func (d *Date) Weekday() string {
	return pick(d.Randomizer(), d.loc.Date.Weekdays)
}
