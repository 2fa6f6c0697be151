package builder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fakegen/builder"
	"github.com/katalvlaran/fakegen/faker"
)

type invoice struct {
	Number string
	Status string
	Total  int
}

var invoiceFields = builder.MustFieldMap[invoice](nil,
	builder.Bind("number", builder.Default, func(i *invoice, v string) { i.Number = v }),
	builder.Bind("status", builder.Default, func(i *invoice, v string) { i.Status = v }),
	builder.Bind("total", builder.Default, func(i *invoice, v int) { i.Total = v }),
)

// ExampleBuilder_RuleSet layers a named rule set over the default one.
func ExampleBuilder_RuleSet() {
	b, _ := builder.New(invoiceFields, builder.WithSeed(1))
	_ = errors.Join(
		b.RuleForIndex("number", builder.PrefixedID("INV-")),
		b.RuleForValue("status", "open"),
		b.RuleForValue("total", 100),
	)
	_ = b.RuleSet("paid", func(rs *builder.Builder[invoice]) error {
		return rs.RuleForValue("status", "paid")
	})

	for _, sel := range []string{"default", "default,paid", "paid,default"} {
		inv, _ := b.Generate(sel)
		fmt.Println(inv.Number, inv.Status, inv.Total)
	}
	// Output:
	// INV-0 open 100
	// INV-1 paid 100
	// INV-2 open 100
}

// ExampleBuilder_AssertValid reports uncovered fields in strict mode.
func ExampleBuilder_AssertValid() {
	b, _ := builder.New(invoiceFields)
	_ = b.RuleForValue("total", 5)
	fmt.Println(b.AssertValid())

	b.StrictMode(true)
	err := b.AssertValid()
	var ve *builder.ValidationError
	fmt.Println(errors.As(err, &ve), ve.Result.Missing)

	_ = b.Ignore("status")
	fmt.Println(b.ValidationFor().Missing)
	// Output:
	// <nil>
	// true [number status]
	// [number]
}

// ExampleRule registers a typed rule that reads a field set earlier.
func ExampleRule() {
	b, _ := builder.New(invoiceFields, builder.WithSeed(1))
	_ = errors.Join(
		b.RuleForValue("number", "INV-9"),
		b.RuleForValue("total", 40),
		builder.Rule(b, "status", func(_ *faker.Faker, i *invoice) string {
			if i.Total > 50 {
				return "review"
			}
			return "auto"
		}),
	)

	inv, _ := b.Generate()
	fmt.Println(inv.Status)
	// Output:
	// auto
}
