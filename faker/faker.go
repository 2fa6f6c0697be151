// SPDX-License-Identifier: MIT
// Package: fakegen/faker
//
// faker.go - the hub handed to every rule.
//
// Contract:
//   - A Faker owns one Randomizer and one Notifier; every data set is
//     registered with that notifier at construction, so SetRandomizer
//     reseeds the whole graph in registration order.
//   - IndexGlobal/IndexFaker are captured by NewContext once per produced
//     instance and are read-only to rules.
//   - The data set fields are assigned once by New and must not be replaced.

package faker

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/fakegen/dataset"
	"github.com/katalvlaran/fakegen/randomizer"
	"github.com/katalvlaran/fakegen/seed"
)

// globalIndex counts root instances produced by every Builder in the process.
var globalIndex atomic.Int64

// GlobalIndex reports how many instances have been produced process-wide.
func GlobalIndex() int64 { return globalIndex.Load() }

// Faker bundles the randomizer, the data sets and the generation context.
type Faker struct {
	mu       sync.RWMutex
	r        *randomizer.Randomizer
	notifier seed.Notifier
	locale   *dataset.Locale

	Name     *dataset.Name
	Internet *dataset.Internet
	Address  *dataset.Address
	Lorem    *dataset.Lorem
	Date     *dataset.Date
	Finance  *dataset.Finance
	Phone    *dataset.Phone

	indexFaker  atomic.Int64
	indexGlobal atomic.Int64

	// IndexVariable is free for rules to use (e.g. a running counter shared by
	// several rules). The hub never touches it.
	IndexVariable int
}

// New builds a hub. Without options it draws from the process-wide default
// source, uses the English locale and has no time reference.
func New(opts ...Option) *Faker {
	cfg := newConfig(opts...)

	f := &Faker{locale: cfg.locale}
	f.indexFaker.Store(-1)
	f.indexGlobal.Store(-1)

	f.Name = seed.Flow(&f.notifier, dataset.NewName(cfg.locale))
	f.Internet = seed.Flow(&f.notifier, dataset.NewInternet(cfg.locale))
	f.Address = seed.Flow(&f.notifier, dataset.NewAddress(cfg.locale))
	f.Lorem = seed.Flow(&f.notifier, dataset.NewLorem(cfg.locale))
	f.Date = seed.Flow(&f.notifier, dataset.NewDate(cfg.locale))
	f.Finance = seed.Flow(&f.notifier, dataset.NewFinance(cfg.locale))
	f.Phone = seed.Flow(&f.notifier, dataset.NewPhone(cfg.locale))

	f.SetRandomizer(cfg.rnd)
	if cfg.timeRef != nil {
		f.Date.SetTimeReference(*cfg.timeRef)
	}

	return f
}

// Random returns the facade rules should draw from.
func (f *Faker) Random() *randomizer.Randomizer {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.r
}

// Randomizer implements seed.HasRandomizer; it is the same as Random.
func (f *Faker) Randomizer() *randomizer.Randomizer { return f.Random() }

// SetRandomizer adopts r and reseeds every data set.
func (f *Faker) SetRandomizer(r *randomizer.Randomizer) {
	f.mu.Lock()
	f.r = r
	f.mu.Unlock()

	f.notifier.Notify(r)
}

// Notifier exposes the hub's registry so callers can attach their own
// data sets to the same stream.
func (f *Faker) Notifier() *seed.Notifier { return &f.notifier }

// Locale returns the table the data sets were built with.
func (f *Faker) Locale() *dataset.Locale { return f.locale }

// NewContext captures the next global index and advances the local one.
// Builders call it once per produced instance, before any rule runs.
func (f *Faker) NewContext() {
	f.indexGlobal.Store(globalIndex.Add(1) - 1)
	f.indexFaker.Add(1)
}

// HasContext reports whether NewContext has been called at least once.
func (f *Faker) HasContext() bool { return f.indexFaker.Load() != -1 }

// IndexGlobal is the process-wide index of the instance being built (0-based).
func (f *Faker) IndexGlobal() int64 { return f.indexGlobal.Load() }

// IndexFaker is the owning Builder's index of the instance being built (0-based).
func (f *Faker) IndexFaker() int64 { return f.indexFaker.Load() }

// SetTimeReference anchors the Date data set on t.
func (f *Faker) SetTimeReference(t time.Time) { f.Date.SetTimeReference(t) }

// ClearTimeReference removes the Date anchor.
func (f *Faker) ClearTimeReference() { f.Date.ClearTimeReference() }

// TimeReference returns the Date anchor and whether one is set.
func (f *Faker) TimeReference() (time.Time, bool) { return f.Date.TimeReference() }
