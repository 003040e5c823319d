package codec

import "fmt"

// Requirement markers for property constructors.
const (
	Required = true
	Optional = false
)

// Property is one field of an entity's wire/model mapping. Implementations
// are built through the typed constructors below so that every binding is
// checked at compile time; the engine never enumerates struct fields at
// runtime.
type Property[M any] interface {
	name() string
	decodeInto(w Wire, m *M) error
	encodeFrom(m *M, w Wire) error
}

// Converter is a bidirectional transform between a wire value and a typed
// model value. The wire-level kind is validated by the property before
// DecodeWire is called.
type Converter[T any] interface {
	DecodeWire(v any) (T, error)
	EncodeWire(t T) (any, error)
}

// Binding connects a property to its model field. Read reporting ok=false
// marks the field absent: it is skipped on encode and produces no wire key.
type Binding[M, T any] struct {
	Assign func(*M, T)
	Read   func(*M) (T, bool)
}

// BindValue binds a plain struct field. The field is always considered
// present, which is what required properties want.
func BindValue[M, T any](field func(*M) *T) Binding[M, T] {
	return Binding[M, T]{
		Assign: func(m *M, v T) { *field(m) = v },
		Read:   func(m *M) (T, bool) { return *field(m), true },
	}
}

// BindPointer binds an optional pointer field; nil means absent.
func BindPointer[M, T any](field func(*M) **T) Binding[M, T] {
	return Binding[M, T]{
		Assign: func(m *M, v T) { *field(m) = &v },
		Read: func(m *M) (T, bool) {
			p := *field(m)
			if p == nil {
				var zero T
				return zero, false
			}
			return *p, true
		},
	}
}

// BindMap binds a map field; nil means absent. An empty decoded map stays
// present so it round-trips to an empty wire object.
func BindMap[M any, T any](field func(*M) *map[string]T) Binding[M, map[string]T] {
	return Binding[M, map[string]T]{
		Assign: func(m *M, v map[string]T) { *field(m) = v },
		Read: func(m *M) (map[string]T, bool) {
			v := *field(m)
			return v, v != nil
		},
	}
}

// BindSlice binds a slice field; nil means absent.
func BindSlice[M any, T any](field func(*M) *[]T) Binding[M, []T] {
	return Binding[M, []T]{
		Assign: func(m *M, v []T) { *field(m) = v },
		Read: func(m *M) ([]T, bool) {
			v := *field(m)
			return v, v != nil
		},
	}
}

// identity passes a pre-checked wire value through unchanged.
type identity[T any] struct{}

func (identity[T]) DecodeWire(v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: unexpected wire shape %s", ErrTypeMismatch, kindOf(v))
	}
	return t, nil
}

func (identity[T]) EncodeWire(t T) (any, error) { return t, nil }

// String declares a string property at the given wire key.
func String[M any](name, key string, required bool, bind Binding[M, string]) Property[M] {
	return &property[M, string]{name, key, required, KindString, identity[string]{}, bind}
}

// Number declares a numeric property carried as float64, the native shape of
// a JSON number.
func Number[M any](name, key string, required bool, bind Binding[M, float64]) Property[M] {
	return &property[M, float64]{name, key, required, KindNumber, identity[float64]{}, bind}
}

// Boolean declares a boolean property.
func Boolean[M any](name, key string, required bool, bind Binding[M, bool]) Property[M] {
	return &property[M, bool]{name, key, required, KindBoolean, identity[bool]{}, bind}
}

// Object declares an opaque JSON object property kept as a raw map.
func Object[M any](name, key string, required bool, bind Binding[M, map[string]any]) Property[M] {
	return &property[M, map[string]any]{name, key, required, KindObject, identity[map[string]any]{}, bind}
}

// Converted declares a property whose wire value passes through conv after
// the kind check. Absent optional values never reach the converter, so a
// converter on an absent field is skipped, not defaulted.
func Converted[M, T any](name, key string, required bool, kind Kind, conv Converter[T], bind Binding[M, T]) Property[M] {
	return &property[M, T]{name, key, required, kind, conv, bind}
}

type property[M, T any] struct {
	propName string
	key      string
	required bool
	kind     Kind
	conv     Converter[T]
	bind     Binding[M, T]
}

func (p *property[M, T]) name() string { return p.propName }

func (p *property[M, T]) decodeInto(w Wire, m *M) error {
	v, ok := resolvePath(w, p.key)
	if !ok {
		if p.required {
			return fmt.Errorf("%w: %q (wire key %q)", ErrMissingRequiredProperty, p.propName, p.key)
		}
		return nil
	}
	if !matchesKind(v, p.kind) {
		return fmt.Errorf("%w: property %q expected %s, got %s", ErrTypeMismatch, p.propName, p.kind, kindOf(v))
	}
	t, err := p.conv.DecodeWire(v)
	if err != nil {
		return fmt.Errorf("property %q: %w", p.propName, err)
	}
	p.bind.Assign(m, t)
	return nil
}

func (p *property[M, T]) encodeFrom(m *M, w Wire) error {
	t, ok := p.bind.Read(m)
	if !ok {
		return nil
	}
	v, err := p.conv.EncodeWire(t)
	if err != nil {
		return fmt.Errorf("property %q: %w", p.propName, err)
	}
	assignPath(w, p.key, v)
	return nil
}

// Platform declares an ios/android sub-object. The nested coder decodes
// against the same flat wire object as its siblings and its encoded keys are
// merged back into that object; nothing is nested on the wire. The sub-object
// is a struct field, so it exists (possibly empty) on every decoded model.
func Platform[M, P any](name string, sub *Coder[P], field func(*M) *P) Property[M] {
	return &platformProperty[M, P]{propName: name, sub: sub, field: field}
}

type platformProperty[M, P any] struct {
	propName string
	sub      *Coder[P]
	field    func(*M) *P
}

func (p *platformProperty[M, P]) name() string { return p.propName }

func (p *platformProperty[M, P]) decodeInto(w Wire, m *M) error {
	return p.sub.decodeInto(w, p.field(m))
}

func (p *platformProperty[M, P]) encodeFrom(m *M, w Wire) error {
	return p.sub.encodeInto(p.field(m), w)
}
