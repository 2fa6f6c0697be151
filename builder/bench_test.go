package builder_test

import (
	"testing"

	"github.com/katalvlaran/fakegen/builder"
)

func BenchmarkGenerate(b *testing.B) {
	ub := newUserBuilder(b, builder.WithSeed(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ub.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Layered(b *testing.B) {
	lb, err := builder.New(layeredFields, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	_ = lb.RuleForValue("x", 1)
	_ = lb.RuleSet("vip", func(rs *builder.Builder[layered]) error { return rs.RuleForValue("y", 2) })
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lb.Generate("default,vip"); err != nil {
			b.Fatal(err)
		}
	}
}
