package builder

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fakegen/dataset"
	"github.com/katalvlaran/fakegen/faker"
	"github.com/katalvlaran/fakegen/randomizer"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Nil(t, cfg.seed)
	require.Nil(t, cfg.rnd)
	require.False(t, cfg.strictDefault)
	require.NotNil(t, cfg.logger)
	require.Nil(t, cfg.timeRef)
	require.Same(t, dataset.English(), cfg.locale)
	require.Same(t, randomizer.Default(), cfg.resolveRandomizer().Source())
}

func TestNewBuilderConfig_Overrides(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	l := slog.New(slog.DiscardHandler)
	r := randomizer.NewSeeded(3)

	cfg := newBuilderConfig(
		WithStrictDefault(true),
		WithLogger(l),
		WithTimeReference(ref),
		WithRandomizer(r),
		WithStrictDefault(false), // later wins
	)
	require.False(t, cfg.strictDefault)
	require.Same(t, l, cfg.logger)
	require.Equal(t, ref, *cfg.timeRef)
	require.Same(t, r, cfg.resolveRandomizer())

	hub := cfg.newHub()
	got, ok := hub.TimeReference()
	require.True(t, ok)
	require.Equal(t, ref, got)
	require.Same(t, r, hub.Random())
}

func TestResolveRandomizer_SeedWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithRandomizer(randomizer.NewSeeded(1)), WithSeed(9))
	a := cfg.resolveRandomizer()
	b := randomizer.NewSeeded(9)
	for i := 0; i < 10; i++ {
		require.Equal(t, b.Int64(0, 1<<40), a.Int64(0, 1<<40))
	}
	require.EqualValues(t, 9, a.Source().Seed())
}

func TestParseRuleSets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []string
		want []string
	}{
		{nil, []string{DefaultRuleSet}},
		{[]string{""}, []string{DefaultRuleSet}},
		{[]string{"Default, VIP"}, []string{"default", "vip"}},
		{[]string{"vip", "default"}, []string{"vip", "default"}},
		{[]string{"a,,b", " c "}, []string{"a", "b", "c"}},
		{[]string{"x,x"}, []string{"x", "x"}},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, parseRuleSets(tc.in...), tc.in)
	}
}

func TestRuleSetPut_ReplacesInPlace(t *testing.T) {
	t.Parallel()

	rs := newRuleSet[struct{}]("default")
	rs.put(&entry[struct{}]{key: "a", field: 0})
	rs.put(&entry[struct{}]{key: "b", field: 1})
	rs.put(&entry[struct{}]{key: "a", field: 0, fn: func(*faker.Faker, *struct{}) (any, error) { return 1, nil }})

	snap := rs.snapshot()
	require.Len(t, snap, 2)
	require.Equal(t, "a", snap[0].key)
	require.NotNil(t, snap[0].fn)

	c := rs.clone()
	c.put(&entry[struct{}]{key: "c", field: 2})
	require.Len(t, rs.snapshot(), 2)
	require.Len(t, c.snapshot(), 3)
}
