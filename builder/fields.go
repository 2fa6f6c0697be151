// SPDX-License-Identifier: MIT
// Package: fakegen/builder
//
// fields.go - the field-capability map a target type supplies to its Builder.
//
// Contract:
//   - Field names are the public identifiers rules refer to; they are resolved
//     to indices once, at registration, and never looked up by name while
//     populating.
//   - A FieldMap is immutable after NewFieldMap and may be shared by any number
//     of Builders.

package builder

import (
	"fmt"
	"reflect"
	"strings"
)

// Category classifies how the validator treats a field.
type Category int

const (
	// Default fields need a rule only in strict mode.
	Default Category = iota
	// Forced fields need a non-Ignore rule in every applied rule set.
	Forced
	// Ignored fields are exempt from strict coverage.
	Ignored
	// Forbidden fields must never have a non-Ignore rule.
	Forbidden
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case Default:
		return "default"
	case Forced:
		return "forced"
	case Ignored:
		return "ignored"
	case Forbidden:
		return "forbidden"
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// Field describes one assignable member of T.
type Field[T any] struct {
	Name     string
	Category Category
	Type     reflect.Type
	Set      func(obj *T, v any) error
}

// Bind declares a field whose values have type V. The generated Set asserts
// the dynamic type and returns ErrTypeMismatch when it differs; nil is
// accepted for pointer, interface, slice, map, chan and func types.
//
//	builder.Bind("age", builder.Forced, func(p *Person, v int) { p.Age = v })
func Bind[T, V any](name string, cat Category, set func(obj *T, v V)) Field[T] {
	typ := reflect.TypeFor[V]()
	f := Field[T]{Name: name, Category: cat, Type: typ}
	if set == nil {
		return f
	}

	f.Set = func(obj *T, v any) error {
		if v == nil {
			if !nillable(typ) {
				return fmt.Errorf("field %q: nil for %s: %w", name, typ, ErrTypeMismatch)
			}
			var zero V
			set(obj, zero)
			return nil
		}
		tv, ok := v.(V)
		if !ok {
			return fmt.Errorf("field %q: got %T, want %s: %w", name, v, typ, ErrTypeMismatch)
		}
		set(obj, tv)
		return nil
	}

	return f
}

// FieldMap is the ordered set of fields of T plus its default constructor.
type FieldMap[T any] struct {
	newFn  func() *T
	fields []Field[T]
	index  map[string]int
}

// NewFieldMap validates fields and freezes them in declaration order.
// newFn may be nil, in which case new(T) is used.
// Errors: ErrInvalidField, ErrDuplicateField, ErrNilSetter (all wrapped in
// *ConfigurationError).
// Complexity: O(len(fields)).
func NewFieldMap[T any](newFn func() *T, fields ...Field[T]) (*FieldMap[T], error) {
	if newFn == nil {
		newFn = func() *T { return new(T) }
	}

	fm := &FieldMap[T]{
		newFn:  newFn,
		fields: make([]Field[T], 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		switch {
		case f.Name == "" || strings.HasPrefix(f.Name, "#"):
			return nil, configErr(MethodNewFieldMap, "", f.Name, ErrInvalidField)
		case f.Set == nil:
			return nil, configErr(MethodNewFieldMap, "", f.Name, ErrNilSetter)
		}
		if _, dup := fm.index[f.Name]; dup {
			return nil, configErr(MethodNewFieldMap, "", f.Name, ErrDuplicateField)
		}
		if f.Type == nil {
			f.Type = reflect.TypeFor[any]()
		}
		fm.index[f.Name] = len(fm.fields)
		fm.fields = append(fm.fields, f)
	}

	return fm, nil
}

// MustFieldMap is NewFieldMap for package-level declarations; it panics on error.
func MustFieldMap[T any](newFn func() *T, fields ...Field[T]) *FieldMap[T] {
	fm, err := NewFieldMap(newFn, fields...)
	if err != nil {
		panic(err)
	}

	return fm
}

// New constructs a zero instance through the map's constructor.
func (m *FieldMap[T]) New() *T { return m.newFn() }

// Len returns the number of fields.
func (m *FieldMap[T]) Len() int { return len(m.fields) }

// Fields returns a copy of the fields in declaration order.
func (m *FieldMap[T]) Fields() []Field[T] {
	out := make([]Field[T], len(m.fields))
	copy(out, m.fields)

	return out
}

// Lookup returns the field named name.
func (m *FieldMap[T]) Lookup(name string) (Field[T], bool) {
	i, ok := m.index[name]
	if !ok {
		return Field[T]{}, false
	}

	return m.fields[i], true
}

// at returns the field at idx, or false when idx is out of range.
func (m *FieldMap[T]) at(idx int) (*Field[T], bool) {
	if idx < 0 || idx >= len(m.fields) {
		return nil, false
	}

	return &m.fields[idx], true
}

// nillable reports whether nil is a valid value of typ.
func nillable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	}

	return false
}

// assignable reports whether v may be stored in a field of type typ.
func assignable(v any, typ reflect.Type) bool {
	if v == nil {
		return nillable(typ)
	}

	return reflect.TypeOf(v).AssignableTo(typ)
}
