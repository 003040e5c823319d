package codec

import (
	"fmt"
	"sort"
)

// Entity lifts a coder into a converter so entities compose into arrays and
// maps element-wise.
func Entity[E any](c *Coder[E]) Converter[E] {
	return entityConverter[E]{c}
}

type entityConverter[E any] struct {
	coder *Coder[E]
}

func (c entityConverter[E]) DecodeWire(v any) (E, error) {
	w, ok := v.(map[string]any)
	if !ok {
		var zero E
		return zero, fmt.Errorf("%w: expected object, got %s", ErrTypeMismatch, kindOf(v))
	}
	return c.coder.Decode(w)
}

func (c entityConverter[E]) EncodeWire(e E) (any, error) {
	return c.coder.Encode(e)
}

// Slice converts a wire array element-wise, preserving order. An empty wire
// array round-trips to an empty array.
func Slice[T any](elem Converter[T]) Converter[[]T] {
	return sliceConverter[T]{elem}
}

type sliceConverter[T any] struct {
	elem Converter[T]
}

func (c sliceConverter[T]) DecodeWire(v any) ([]T, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrTypeMismatch, kindOf(v))
	}
	out := make([]T, 0, len(raw))
	for i, el := range raw {
		t, err := c.elem.DecodeWire(el)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (c sliceConverter[T]) EncodeWire(ts []T) (any, error) {
	out := make([]any, 0, len(ts))
	for i, t := range ts {
		v, err := c.elem.EncodeWire(t)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// MapValues converts a string-keyed wire object value-by-value, preserving
// keys. Iteration order is not part of the contract; decode errors still
// report keys deterministically.
func MapValues[T any](elem Converter[T]) Converter[map[string]T] {
	return mapConverter[T]{elem}
}

type mapConverter[T any] struct {
	elem Converter[T]
}

func (c mapConverter[T]) DecodeWire(v any) (map[string]T, error) {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrTypeMismatch, kindOf(v))
	}
	out := make(map[string]T, len(raw))
	for _, k := range sortedKeys(raw) {
		t, err := c.elem.DecodeWire(raw[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out[k] = t
	}
	return out, nil
}

func (c mapConverter[T]) EncodeWire(ts map[string]T) (any, error) {
	out := make(map[string]any, len(ts))
	for k, t := range ts {
		v, err := c.elem.EncodeWire(t)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
