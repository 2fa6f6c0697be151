package seed_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/fakegen/randomizer"
	"github.com/katalvlaran/fakegen/seed"
	"github.com/stretchr/testify/require"
)

// probe records every facade it receives and the global order of receipt.
type probe struct {
	id    int
	r     *randomizer.Randomizer
	calls int
	log   *[]int
	sub   seed.Notifier
}

func (p *probe) Randomizer() *randomizer.Randomizer { return p.r }

func (p *probe) SetRandomizer(r *randomizer.Randomizer) {
	p.r = r
	p.calls++
	if p.log != nil {
		*p.log = append(*p.log, p.id)
	}
	p.sub.Notify(r)
}

func TestNotifier_OrderAndReturn(t *testing.T) {
	t.Parallel()

	var (
		n   seed.Notifier
		log []int
	)
	ps := make([]*probe, 5)
	for i := range ps {
		got := seed.Flow(&n, &probe{id: i, log: &log})
		ps[i] = got
	}
	require.Equal(t, 5, n.Len())

	r := randomizer.NewSeeded(1)
	n.Notify(r)
	require.Equal(t, []int{0, 1, 2, 3, 4}, log)
	for _, p := range ps {
		require.Same(t, r, p.Randomizer())
	}
}

func TestNotifier_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	var n seed.Notifier
	p := &probe{}
	n.Register(p)
	n.Register(p)

	n.Notify(randomizer.NewSeeded(1))
	require.Equal(t, 2, p.calls)
	require.Equal(t, 2, n.Len())
}

// TestNotifier_Cascade checks propagation reaches grandchildren.
func TestNotifier_Cascade(t *testing.T) {
	t.Parallel()

	var root seed.Notifier
	child := seed.Flow(&root, &probe{id: 1})
	grand := seed.Flow(&child.sub, &probe{id: 2})

	r := randomizer.NewSeeded(5)
	root.Notify(r)
	require.Same(t, r, child.Randomizer())
	require.Same(t, r, grand.Randomizer())
}

// TestNotifier_PropagationEquivalence: after reseeding the parent each child
// draws exactly what an independently seeded facade would.
func TestNotifier_PropagationEquivalence(t *testing.T) {
	t.Parallel()

	const parentSeed int64 = 2024
	var n seed.Notifier
	kids := make([]*probe, 4)
	for i := range kids {
		kids[i] = seed.Flow(&n, &probe{id: i, r: randomizer.New()})
	}

	// Each child gets its own derived stream so the comparison is per child.
	for i, k := range kids {
		var own seed.Notifier
		own.Register(k)
		own.Notify(randomizer.NewSeeded(randomizer.DeriveSeed(parentSeed, uint64(i))))
	}
	for i, k := range kids {
		ref := randomizer.NewSeeded(randomizer.DeriveSeed(parentSeed, uint64(i)))
		require.Equal(t, ref.Bytes(16), k.Randomizer().Bytes(16), "child %d", i)
	}

	// Shared stream: reseeding the root equals drawing from one seeded facade
	// in the same order.
	n.Notify(randomizer.NewSeeded(parentSeed))
	ref := randomizer.NewSeeded(parentSeed)
	for _, k := range kids {
		require.Equal(t, ref.Number(0, 1<<30), k.Randomizer().Number(0, 1<<30))
	}
}

func TestNotifier_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	var n seed.Notifier
	var wg sync.WaitGroup
	const workers = 32
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			n.Register(&probe{id: id})
		}(i)
	}
	wg.Wait()
	require.Equal(t, workers, n.Len())
}
