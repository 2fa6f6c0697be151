package faker_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/fakegen/dataset"
	"github.com/katalvlaran/fakegen/faker"
	"github.com/katalvlaran/fakegen/randomizer"
	"github.com/stretchr/testify/require"
)

func sample(f *faker.Faker) []string {
	return []string{
		f.Name.FullName(),
		f.Internet.Email(),
		f.Address.FullAddress(),
		f.Lorem.Sentence(0),
		f.Finance.RoutingNumber(),
		f.Phone.PhoneNumber(""),
		f.Date.Month(),
	}
}

func TestFaker_SeededReproducible(t *testing.T) {
	t.Parallel()

	a := faker.New(faker.WithSeed(99))
	b := faker.New(faker.WithSeed(99))
	for k := 0; k < 100; k++ {
		require.Equal(t, sample(a), sample(b))
	}
}

// TestFaker_SetRandomizerReachesEveryDataSet: reseeding the hub is the same as
// building the hub with that seed.
func TestFaker_SetRandomizerReachesEveryDataSet(t *testing.T) {
	t.Parallel()

	reseeded := faker.New()
	reseeded.SetRandomizer(randomizer.NewSeeded(5))
	fresh := faker.New(faker.WithSeed(5))

	require.Same(t, reseeded.Random(), reseeded.Name.Randomizer())
	require.Same(t, reseeded.Random(), reseeded.Phone.Randomizer())
	for k := 0; k < 50; k++ {
		require.Equal(t, sample(fresh), sample(reseeded))
	}
	require.Equal(t, 7, reseeded.Notifier().Len())
}

func TestFaker_Context(t *testing.T) {
	t.Parallel()

	f := faker.New(faker.WithSeed(1))
	require.False(t, f.HasContext())
	require.EqualValues(t, -1, f.IndexFaker())

	before := faker.GlobalIndex()
	f.NewContext()
	require.True(t, f.HasContext())
	require.EqualValues(t, 0, f.IndexFaker())
	require.GreaterOrEqual(t, f.IndexGlobal(), before)

	g1 := f.IndexGlobal()
	f.NewContext()
	require.EqualValues(t, 1, f.IndexFaker())
	require.Greater(t, f.IndexGlobal(), g1)
	require.Greater(t, faker.GlobalIndex(), f.IndexGlobal())
}

func TestFaker_TimeReference(t *testing.T) {
	t.Parallel()

	ref := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	f := faker.New(faker.WithSeed(3), faker.WithTimeReference(ref))
	got, ok := f.TimeReference()
	require.True(t, ok)
	require.Equal(t, ref, got)

	past, err := f.Date.Past(1)
	require.NoError(t, err)
	require.True(t, !past.After(ref))

	f.ClearTimeReference()
	_, err = f.Date.Past(1)
	require.ErrorIs(t, err, dataset.ErrNoTimeReference)

	f.SetTimeReference(ref)
	_, ok = f.TimeReference()
	require.True(t, ok)
}

func TestFaker_OptionsPanic(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { faker.WithRandomizer(nil) })
	require.Panics(t, func() { faker.WithLocale(nil) })

	r := randomizer.NewSeeded(1)
	f := faker.New(faker.WithRandomizer(r), faker.WithLocale(dataset.English()))
	require.Same(t, r, f.Random())
	require.Same(t, dataset.English(), f.Locale())
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	f := faker.New(faker.WithSeed(12))

	v, err := faker.PickRandom(f, "a", "b", "c")
	require.NoError(t, err)
	require.Contains(t, []string{"a", "b", "c"}, v)

	_, err = faker.PickRandom[int](f)
	require.ErrorIs(t, err, randomizer.ErrArgumentRange)

	sub, err := faker.PickRandomN(f, []int{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	require.Len(t, sub, 2)
	require.NotEqual(t, sub[0], sub[1])

	require.Equal(t, []int{1, 4, 9}, faker.Make(3, func(n int) int { return n * n }))
	require.Nil(t, faker.Make(0, func(n int) int { return n }))

	require.Nil(t, faker.OrNull(f, 5, 1))
	require.Equal(t, 5, *faker.OrNull(f, 5, 0))
	require.Equal(t, "d", faker.OrDefault(f, "v", 2, "d"))
	require.Equal(t, "v", faker.OrDefault(f, "v", -1, "d"))

	nulls := 0
	for k := 0; k < 10000; k++ {
		if faker.OrNull(f, k, 0.3) == nil {
			nulls++
		}
	}
	require.InDelta(t, 0.3, float64(nulls)/10000, 0.03)
}
