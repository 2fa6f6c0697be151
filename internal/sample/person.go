// SPDX-License-Identifier: MIT
// Package: fakegen/internal/sample
//
// person.go - the Person shape, its field map and its rule sets.
//
// Rule sets:
//   - default: every exported field, birthday relative to the time reference.
//   - vip:     overrides id, vip, karma and tags; a lenient overlay meant to be
//              layered after default.

package sample

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/fakegen/builder"
	"github.com/katalvlaran/fakegen/dataset"
	"github.com/katalvlaran/fakegen/faker"
)

// Person is a demo user profile.
type Person struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Handle    string    `json:"handle" yaml:"handle"`
	Gender    string    `json:"gender" yaml:"gender"`
	FirstName string    `json:"first_name" yaml:"first_name"`
	LastName  string    `json:"last_name" yaml:"last_name"`
	UserName  string    `json:"user_name" yaml:"user_name"`
	Email     string    `json:"email" yaml:"email"`
	Phone     string    `json:"phone" yaml:"phone"`
	Address   string    `json:"address" yaml:"address"`
	JobTitle  string    `json:"job_title" yaml:"job_title"`
	Birthday  time.Time `json:"birthday" yaml:"birthday"`
	Bio       *string   `json:"bio,omitempty" yaml:"bio,omitempty"`
	Tags      []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Karma     int       `json:"karma" yaml:"karma"`
	VIP       bool      `json:"vip" yaml:"vip"`

	// passwordHash is never generated.
	passwordHash string
}

// PasswordHash exposes the field no rule may touch.
func (p *Person) PasswordHash() string { return p.passwordHash }

var personTags = []string{"early-adopter", "beta", "newsletter", "mobile", "desktop", "api", "support"}

// PersonFields is the field map shared by every Person builder.
var PersonFields = builder.MustFieldMap[Person](nil,
	builder.Bind("id", builder.Forced, func(p *Person, v uuid.UUID) { p.ID = v }),
	builder.Bind("handle", builder.Default, func(p *Person, v string) { p.Handle = v }),
	builder.Bind("gender", builder.Default, func(p *Person, v string) { p.Gender = v }),
	builder.Bind("first_name", builder.Default, func(p *Person, v string) { p.FirstName = v }),
	builder.Bind("last_name", builder.Default, func(p *Person, v string) { p.LastName = v }),
	builder.Bind("user_name", builder.Default, func(p *Person, v string) { p.UserName = v }),
	builder.Bind("email", builder.Default, func(p *Person, v string) { p.Email = v }),
	builder.Bind("phone", builder.Default, func(p *Person, v string) { p.Phone = v }),
	builder.Bind("address", builder.Default, func(p *Person, v string) { p.Address = v }),
	builder.Bind("job_title", builder.Default, func(p *Person, v string) { p.JobTitle = v }),
	builder.Bind("birthday", builder.Default, func(p *Person, v time.Time) { p.Birthday = v }),
	builder.Bind("bio", builder.Default, func(p *Person, v *string) { p.Bio = v }),
	builder.Bind("tags", builder.Default, func(p *Person, v []string) { p.Tags = v }),
	builder.Bind("karma", builder.Default, func(p *Person, v int) { p.Karma = v }),
	builder.Bind("vip", builder.Default, func(p *Person, v bool) { p.VIP = v }),
	builder.Bind("password_hash", builder.Forbidden, func(p *Person, v string) { p.passwordHash = v }),
)

// NewPersonBuilder returns a Builder with the default and vip rule sets registered.
func NewPersonBuilder(opts ...builder.BuilderOption) (*builder.Builder[Person], error) {
	b, err := builder.New(PersonFields, opts...)
	if err != nil {
		return nil, err
	}

	err = errors.Join(
		builder.Rule(b, "id", func(f *faker.Faker, _ *Person) uuid.UUID { return f.Random().UUID() }),
		b.RuleForIndex("handle", builder.ExcelColumnID),
		builder.Rule(b, "gender", func(f *faker.Faker, _ *Person) string { return f.Name.Gender().String() }),
		builder.Rule(b, "first_name", func(f *faker.Faker, p *Person) string {
			return f.Name.FirstNameFor(parseGender(p.Gender))
		}),
		builder.Rule(b, "last_name", func(f *faker.Faker, _ *Person) string { return f.Name.LastName() }),
		builder.Rule(b, "user_name", func(f *faker.Faker, p *Person) string {
			return f.Internet.UserNameFor(p.FirstName, p.LastName)
		}),
		builder.Rule(b, "email", func(f *faker.Faker, p *Person) string {
			return f.Internet.EmailFor(p.FirstName, p.LastName)
		}),
		builder.Rule(b, "phone", func(f *faker.Faker, _ *Person) string { return f.Phone.PhoneNumber("") }),
		builder.Rule(b, "address", func(f *faker.Faker, _ *Person) string { return f.Address.FullAddress() }),
		builder.Rule(b, "job_title", func(f *faker.Faker, _ *Person) string { return f.Name.JobTitle() }),
		b.RuleFor("birthday", func(f *faker.Faker, _ *Person) (any, error) {
			ref, ok := f.TimeReference()
			if !ok {
				return nil, fmt.Errorf("birthday: %w", dataset.ErrNoTimeReference)
			}
			return f.Date.Between(ref.AddDate(-80, 0, 0), ref.AddDate(-18, 0, 0)), nil
		}),
		builder.Rule(b, "bio", func(f *faker.Faker, _ *Person) *string {
			return faker.OrNull(f, f.Lorem.Sentence(0), 0.4)
		}),
		b.RuleFor("tags", func(f *faker.Faker, _ *Person) (any, error) {
			return faker.PickRandomN(f, personTags, f.Random().Number(0, 3))
		}),
		builder.Rule(b, "karma", func(f *faker.Faker, _ *Person) int {
			return max(0, f.Random().GaussianInt(100, 30))
		}),
		b.RuleForValue("vip", false),
		b.Ignore("password_hash"),
	)
	if err != nil {
		return nil, err
	}

	err = b.RuleSet("vip", func(rs *builder.Builder[Person]) error {
		rs.StrictMode(false) // overlay
		return errors.Join(
			builder.Rule(rs, "id", func(f *faker.Faker, _ *Person) uuid.UUID { return f.Random().UUID() }),
			rs.RuleForValue("vip", true),
			builder.Rule(rs, "karma", func(f *faker.Faker, _ *Person) int {
				return int(f.Random().Clamped(900, 50, 750, 1000))
			}),
			builder.Rule(rs, "tags", func(f *faker.Faker, _ *Person) []string {
				return append(faker.Make(2, func(n int) string { return fmt.Sprintf("tier-%d", n) }), "priority")
			}),
		)
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

func parseGender(s string) dataset.Gender {
	if s == dataset.Female.String() {
		return dataset.Female
	}

	return dataset.Male
}
