// Package fakegen generates deterministic, rule-driven synthetic data.
//
// You describe a target type once with a field map, register rules that
// compute each field, and ask a Builder for as many populated instances as
// you need. The same seed and the same rules always give the same output.
//
// What is inside:
//
//	randomizer/ — the Random Facade: ranges, strings, collections, Gaussian
//	              and exponential draws, UUIDs, over a process-wide or seeded source
//	seed/       — the seed propagation registry (HasRandomizer, Notifier)
//	builder/    — field maps, rule sets, validation, Builder[T] and generation
//	faker/      — the hub handed to rules: facade, data sets, generation context
//	dataset/    — Name, Internet, Address, Lorem, Date, Finance and Phone over an
//	              embedded English locale
//	cmd/fakegen — a command line that prints demo records as JSON or YAML
//
// Quick start:
//
//	type Person struct {
//		First string
//		Age   int
//	}
//
//	fields := builder.MustFieldMap[Person](nil,
//		builder.Bind("first", builder.Default, func(p *Person, v string) { p.First = v }),
//		builder.Bind("age", builder.Forced, func(p *Person, v int) { p.Age = v }),
//	)
//	b, _ := builder.New(fields, builder.WithSeed(42))
//	_ = builder.Rule(b, "first", func(f *faker.Faker, _ *Person) string { return f.Name.FirstName() })
//	_ = b.RuleForValue("age", 30)
//	people, err := b.GenerateN(100)
//
// Guarantees:
//
//   - Determinism: a seeded Builder reproduces its stream exactly.
//   - Safety: runtime code never panics; misuse is reported as wrapped
//     sentinel errors (errors.Is / errors.As).
//   - Concurrency: Builders may be used from many goroutines; Builders that
//     share a source take turns one instance at a time.
package fakegen
