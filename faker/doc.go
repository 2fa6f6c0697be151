// Package faker provides the hub every rule receives: a Randomizer, the
// domain data sets and the generation context of the instance being built.
//
//	f := faker.New(faker.WithSeed(7))
//	name := f.Name.FullName()
//	n := f.Random().Number(1, 10)
//	idx := f.IndexFaker() // valid once a Builder called NewContext
//
// SetRandomizer on the hub reaches every data set through the seed package's
// notifier, so one call reseeds the whole graph.
package faker
