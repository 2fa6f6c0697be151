// Package dataset holds the domain generators handed to rules through the
// faker hub: Name, Internet, Address, Lorem, Date, Finance and Phone.
//
// Every data set embeds Base, which implements seed.HasRandomizer. Composite
// sets (Internet, Address) register the sets they use with their own
// notifier, so a single SetRandomizer reseeds the whole tree.
//
// Word lists live in embedded YAML tables (data/<code>.yaml) decoded once per
// process by LoadLocale. Constructors accept a *Locale; nil means English.
package dataset
