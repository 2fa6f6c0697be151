// SPDX-License-Identifier: MIT
// Package: fakegen/internal/sample
//
// account.go - the Account shape; owners are built by a nested Person builder.

package sample

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/fakegen/builder"
	"github.com/katalvlaran/fakegen/faker"
)

// Account is a demo bank account.
type Account struct {
	Number   string     `json:"number" yaml:"number"`
	Routing  string     `json:"routing" yaml:"routing"`
	Account  string     `json:"account" yaml:"account"`
	Type     string     `json:"type" yaml:"type"`
	Currency string     `json:"currency" yaml:"currency"`
	Balance  float64    `json:"balance" yaml:"balance"`
	Opened   time.Time  `json:"opened" yaml:"opened"`
	ClosedAt *time.Time `json:"closed_at,omitempty" yaml:"closed_at,omitempty"`
	Owner    *Person    `json:"owner,omitempty" yaml:"owner,omitempty"`
}

// AccountFields is the field map shared by every Account builder.
var AccountFields = builder.MustFieldMap[Account](nil,
	builder.Bind("number", builder.Forced, func(a *Account, v string) { a.Number = v }),
	builder.Bind("routing", builder.Default, func(a *Account, v string) { a.Routing = v }),
	builder.Bind("account", builder.Default, func(a *Account, v string) { a.Account = v }),
	builder.Bind("type", builder.Default, func(a *Account, v string) { a.Type = v }),
	builder.Bind("currency", builder.Default, func(a *Account, v string) { a.Currency = v }),
	builder.Bind("balance", builder.Default, func(a *Account, v float64) { a.Balance = v }),
	builder.Bind("opened", builder.Default, func(a *Account, v time.Time) { a.Opened = v }),
	builder.Bind("closed_at", builder.Ignored, func(a *Account, v *time.Time) { a.ClosedAt = v }),
	builder.Bind("owner", builder.Default, func(a *Account, v *Person) { a.Owner = v }),
)

// NewAccountBuilder returns a Builder with the default and premium rule sets.
// Owners come from people through GenerateIn; a nil people leaves Owner empty.
// premium builds its owner from people's "default,vip" selection.
func NewAccountBuilder(people *builder.Builder[Person], opts ...builder.BuilderOption) (*builder.Builder[Account], error) {
	b, err := builder.New(AccountFields, opts...)
	if err != nil {
		return nil, err
	}

	owner := func(sel string) builder.RuleFunc[Account] {
		return func(f *faker.Faker, _ *Account) (any, error) {
			return people.GenerateIn(f, sel)
		}
	}
	setOwner := func(rs *builder.Builder[Account], sel string) error {
		if people == nil {
			return rs.Ignore("owner")
		}
		return rs.RuleFor("owner", owner(sel))
	}

	err = errors.Join(
		b.RuleForIndex("number", builder.PrefixedID("ACC-")),
		builder.Rule(b, "routing", func(f *faker.Faker, _ *Account) string { return f.Finance.RoutingNumber() }),
		builder.Rule(b, "account", func(f *faker.Faker, _ *Account) string { return f.Finance.Account(10) }),
		builder.Rule(b, "type", func(f *faker.Faker, _ *Account) string { return f.Finance.AccountType() }),
		builder.Rule(b, "currency", func(f *faker.Faker, _ *Account) string { return f.Finance.Currency().Code }),
		builder.Rule(b, "balance", func(f *faker.Faker, _ *Account) float64 { return f.Finance.Amount(0, 10_000, 2) }),
		b.RuleFor("opened", func(f *faker.Faker, _ *Account) (any, error) { return f.Date.Past(10) }),
		setOwner(b, builder.DefaultRuleSet),
	)
	if err != nil {
		return nil, err
	}

	err = b.RuleSet("premium", func(rs *builder.Builder[Account]) error {
		rs.StrictMode(false) // overlay
		return errors.Join(
			rs.RuleForIndex("number", builder.PrefixedID("PRM-")),
			// Heavy-tailed balances starting at 25k, mean 75k.
			rs.RuleFor("balance", func(f *faker.Faker, _ *Account) (any, error) {
				x, err := f.Random().Exponential(1.0 / 50_000)
				if err != nil {
					return nil, err
				}
				return math.Round((25_000+x)*100) / 100, nil
			}),
			rs.RuleForValue("type", "Investment"),
			setOwner(rs, "default,vip"),
		)
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}
