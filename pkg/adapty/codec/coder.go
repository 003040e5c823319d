// Package codec translates between the snake_case JSON wire format of the
// native subscription SDKs and the typed, platform-partitioned model structs
// used by application code.
//
// Each entity declares a property table: one typed descriptor per field
// naming its wire key (possibly dotted), whether it is required, its
// primitive wire kind and an optional converter. A single generic engine
// drives decode and encode over those tables, so the wire contract lives in
// data, not in per-entity marshalling code.
package codec

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Coder decodes and encodes one entity against its property table.
type Coder[M any] struct {
	entity string
	props  []Property[M]
	retain func(*M, Wire)
}

// NewCoder builds a coder for the named entity. The entity name is carried
// in every error the coder produces.
func NewCoder[M any](entity string, props ...Property[M]) *Coder[M] {
	return &Coder[M]{entity: entity, props: props}
}

// Retain registers a hook that receives the originating wire object after a
// successful decode. Entities that are later sent back to the native layer
// keep the original payload this way instead of re-deriving it.
func (c *Coder[M]) Retain(fn func(*M, Wire)) *Coder[M] {
	c.retain = fn
	return c
}

// Entity returns the entity name used in error context.
func (c *Coder[M]) Entity() string { return c.entity }

// Decode assembles a model from a wire object. Required properties must
// resolve; optional properties that are absent stay absent on the model.
func (c *Coder[M]) Decode(w Wire) (M, error) {
	var m M
	if err := c.decodeInto(w, &m); err != nil {
		var zero M
		return zero, err
	}
	if c.retain != nil {
		c.retain(&m, w)
	}
	return m, nil
}

// DecodeJSON parses raw JSON and decodes the resulting wire object.
func (c *Coder[M]) DecodeJSON(data []byte) (M, error) {
	var w Wire
	if err := json.Unmarshal(data, &w); err != nil {
		var zero M
		return zero, fmt.Errorf("%w: %s: %v", ErrMalformedEnvelope, c.entity, err)
	}
	return c.Decode(w)
}

// Encode assembles a wire object from a model. Only present fields produce
// wire keys; absent optional fields are omitted entirely.
func (c *Coder[M]) Encode(m M) (Wire, error) {
	w := Wire{}
	if err := c.encodeInto(&m, w); err != nil {
		return nil, err
	}
	return w, nil
}

// EncodeJSON encodes a model and serializes the wire object to JSON.
func (c *Coder[M]) EncodeJSON(m M) ([]byte, error) {
	w, err := c.Encode(m)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (c *Coder[M]) decodeInto(w Wire, m *M) error {
	for _, p := range c.props {
		if err := p.decodeInto(w, m); err != nil {
			return fmt.Errorf("%s: %w", c.entity, err)
		}
	}
	return nil
}

func (c *Coder[M]) encodeInto(m *M, w Wire) error {
	for _, p := range c.props {
		if err := p.encodeFrom(m, w); err != nil {
			return fmt.Errorf("%s: %w", c.entity, err)
		}
	}
	return nil
}
