// SPDX-License-Identifier: MIT
// Package: fakegen/builder
//
// ruleset.go - ordered rule storage for one named rule set.
//
// Contract:
//   - Entries keep their first-registration position; registering the same
//     field again replaces the closure in place.
//   - Entries are immutable once stored, so clones may share them.
//   - Names are case-insensitive and trimmed ("VIP " == "vip").

package builder

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/fakegen/faker"
)

// RuleFunc computes the value of one field. obj is the partially built instance.
type RuleFunc[T any] func(f *faker.Faker, obj *T) (any, error)

// entry is one registered rule.
type entry[T any] struct {
	key   string      // field name, or bulkKeyPrefix+N for Rules blocks
	field int         // index into the FieldMap; -1 for bulk blocks
	fn    RuleFunc[T] // nil for Ignore
	bulk  func(f *faker.Faker, obj *T) error
}

// bulkBlock reports whether e is a Rules block.
func (e *entry[T]) bulkBlock() bool { return e.field < 0 }

// resolving reports whether e produces a value for its field.
func (e *entry[T]) resolving() bool { return e.field >= 0 && e.fn != nil }

// ruleSet is everything registered under one name.
type ruleSet[T any] struct {
	name    string
	entries []*entry[T]
	index   map[string]int
	bulks   int
	strict  *bool
	create  func(f *faker.Faker) (*T, error)
	finish  func(f *faker.Faker, obj *T) error
}

func newRuleSet[T any](name string) *ruleSet[T] {
	return &ruleSet[T]{name: name, index: make(map[string]int)}
}

// put stores e, replacing an earlier entry with the same key in place.
func (rs *ruleSet[T]) put(e *entry[T]) {
	if i, ok := rs.index[e.key]; ok {
		rs.entries[i] = e
		return
	}
	rs.index[e.key] = len(rs.entries)
	rs.entries = append(rs.entries, e)
}

// addBulk appends a Rules block under a fresh key.
func (rs *ruleSet[T]) addBulk(fn func(f *faker.Faker, obj *T) error) {
	rs.bulks++
	rs.put(&entry[T]{key: bulkKeyPrefix + strconv.Itoa(rs.bulks), field: -1, bulk: fn})
}

// lookup returns the entry registered for a field name.
func (rs *ruleSet[T]) lookup(field string) (*entry[T], bool) {
	if rs == nil {
		return nil, false
	}
	i, ok := rs.index[field]
	if !ok {
		return nil, false
	}

	return rs.entries[i], true
}

// snapshot copies the entry list so generation can run without holding locks.
func (rs *ruleSet[T]) snapshot() []*entry[T] {
	if rs == nil {
		return nil
	}
	out := make([]*entry[T], len(rs.entries))
	copy(out, rs.entries)

	return out
}

// clone copies containers; entries are shared because they are immutable.
func (rs *ruleSet[T]) clone() *ruleSet[T] {
	c := &ruleSet[T]{
		name:    rs.name,
		entries: rs.snapshot(),
		index:   make(map[string]int, len(rs.index)),
		bulks:   rs.bulks,
		create:  rs.create,
		finish:  rs.finish,
	}
	for k, v := range rs.index {
		c.index[k] = v
	}
	if rs.strict != nil {
		s := *rs.strict
		c.strict = &s
	}

	return c
}

// normalizeRuleSet canonicalizes one rule-set name.
func normalizeRuleSet(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// parseRuleSets turns a selection into canonical names, keeping order and
// duplicates. Each argument may itself be comma separated; blanks are dropped.
// An empty selection means DefaultRuleSet.
//
//	parseRuleSets()                  -> [default]
//	parseRuleSets("Default, VIP")    -> [default vip]
//	parseRuleSets("vip", "default")  -> [vip default]
func parseRuleSets(selection ...string) []string {
	var out []string
	for _, s := range selection {
		for _, part := range strings.Split(s, ruleSetSeparator) {
			if n := normalizeRuleSet(part); n != "" {
				out = append(out, n)
			}
		}
	}
	if len(out) == 0 {
		return []string{DefaultRuleSet}
	}

	return out
}
