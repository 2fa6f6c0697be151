// Package randomizer is the single entry point for randomness in fakegen.
//
// A Randomizer is a typed facade over a Source (a *rand.Rand plus its mutex):
//
//   - Numbers:     Number, Int, Int64, Byte, Bytes, Double, Float, Even, Odd, Digits
//   - Booleans:    Bool, BoolLikelihood
//   - Characters:  Char, Chars, String, StringRange, String2, AlphaNumeric
//   - Templates:   Replace ("#" digit, "?" letter, "*" either), ReplaceNumbers, ReplaceSymbols
//   - Sequences:   ListItem, ListItems, RandomSubset, Shuffle, WeightedItem
//   - Derived:     Hash, Hexadecimal, ClampString, Gaussian*, UUID
//
// Seeding:
//
//	r := randomizer.NewSeeded(42)      // private Source, reproducible
//	d := randomizer.New()              // bound to randomizer.Default()
//	randomizer.Default().Reseed(7)     // every default-bound facade follows
//
// Guarantees:
//
//   - Two facades built from the same seed and driven by the same sequence of
//     calls produce identical output.
//   - Every draw (including multi-byte buffers and shuffles) happens under the
//     Source's lock, so sharing one facade across goroutines is safe.
//   - Derived helpers are compositions of the primitives and hold no state.
//   - Invalid pools and impossible ranges return ErrArgumentRange; nothing panics.
//
// Randomness is statistical, not cryptographic.
package randomizer
