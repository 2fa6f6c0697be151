// SPDX-License-Identifier: MIT
// Package: fakegen/randomizer
//
// errors.go - sentinel errors for the randomizer package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Call sites attach context as "<Method>: <detail>: %w".
//   - Facade errors are never recovered inside the module.

package randomizer

import "errors"

// ErrArgumentRange indicates a range, count or pool that no draw can satisfy:
// selecting from an empty sequence, asking for a subset larger than its source,
// a weight list whose length differs from the item list, or a numeric range
// that holds no admissible value (e.g. Even(1, 1)).
// Usage: if errors.Is(err, ErrArgumentRange) { /* fix the arguments */ }.
var ErrArgumentRange = errors.New("randomizer: argument out of range")

// Method names used as error prefixes.
const (
	methodListItem     = "ListItem"
	methodListItems    = "ListItems"
	methodWeightedItem = "WeightedItem"
	methodEven         = "Even"
	methodOdd          = "Odd"
	methodDigits       = "Digits"
)
