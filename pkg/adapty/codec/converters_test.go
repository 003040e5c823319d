package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateConverter(t *testing.T) {
	t.Run("standard UTC string", func(t *testing.T) {
		v, err := Date.DecodeWire("2023-02-24T07:16:28.000Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 2, 24, 7, 16, 28, 0, time.UTC), v.UTC())
	})

	t.Run("non-standard offset normalizes to the same instant", func(t *testing.T) {
		offset, err := Date.DecodeWire("2023-02-24T07:16:28.000000+0000")
		require.NoError(t, err)
		zulu, err := Date.DecodeWire("2023-02-24T07:16:28.000Z")
		require.NoError(t, err)
		assert.True(t, offset.Equal(zulu))
	})

	t.Run("six digit fraction truncates to milliseconds", func(t *testing.T) {
		v, err := Date.DecodeWire("2023-02-24T07:16:28.123456+0300")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 2, 24, 7, 16, 28, 123_000_000, time.UTC), v.UTC())
	})

	t.Run("missing fraction", func(t *testing.T) {
		v, err := Date.DecodeWire("2023-02-24T07:16:28+0000")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 2, 24, 7, 16, 28, 0, time.UTC), v.UTC())
	})

	t.Run("unparseable string", func(t *testing.T) {
		_, err := Date.DecodeWire("not-a-date")
		require.ErrorIs(t, err, ErrDateDecode)
	})

	t.Run("encode emits millisecond UTC with Z", func(t *testing.T) {
		loc := time.FixedZone("plus3", 3*3600)
		v, err := Date.EncodeWire(time.Date(2023, 2, 24, 10, 16, 28, 0, loc))
		require.NoError(t, err)
		assert.Equal(t, "2023-02-24T07:16:28.000Z", v)
	})

	t.Run("wire round trip", func(t *testing.T) {
		const s = "2021-12-01T23:59:59.999Z"
		v, err := Date.DecodeWire(s)
		require.NoError(t, err)
		back, err := Date.EncodeWire(v)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	})
}

func TestJSONBlobConverter(t *testing.T) {
	t.Run("empty string decodes to empty object", func(t *testing.T) {
		v, err := JSONBlob.DecodeWire("")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, v)
	})

	t.Run("empty object encodes to empty string", func(t *testing.T) {
		v, err := JSONBlob.EncodeWire(map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})

	t.Run("content parses", func(t *testing.T) {
		v, err := JSONBlob.DecodeWire(`{"color":"red","weight":10}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"color": "red", "weight": float64(10)}, v)
	})

	t.Run("invalid embedded JSON", func(t *testing.T) {
		_, err := JSONBlob.DecodeWire("{nope")
		require.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestNumericConverters(t *testing.T) {
	i, err := IntNumber.DecodeWire(float64(42))
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	back, err := IntNumber.EncodeWire(i)
	require.NoError(t, err)
	assert.Equal(t, float64(42), back)

	wide, err := Int64Number.DecodeWire(float64(1_700_000_000_000))
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000_000), wide)
}

func TestCollectionConverters(t *testing.T) {
	t.Run("slice preserves order and round-trips empty", func(t *testing.T) {
		conv := Slice(Entity(SubscriptionPeriodCoder))

		decoded, err := conv.DecodeWire([]any{
			map[string]any{"unit": "month", "number_of_units": float64(1)},
			map[string]any{"unit": "year", "number_of_units": float64(2)},
		})
		require.NoError(t, err)
		require.Len(t, decoded, 2)
		assert.Equal(t, SubscriptionPeriod{Unit: "month", NumberOfUnits: 1}, decoded[0])
		assert.Equal(t, SubscriptionPeriod{Unit: "year", NumberOfUnits: 2}, decoded[1])

		empty, err := conv.DecodeWire([]any{})
		require.NoError(t, err)
		assert.Equal(t, []SubscriptionPeriod{}, empty)

		back, err := conv.EncodeWire(empty)
		require.NoError(t, err)
		assert.Equal(t, []any{}, back)
	})

	t.Run("slice element errors carry the index", func(t *testing.T) {
		conv := Slice(Entity(SubscriptionPeriodCoder))
		_, err := conv.DecodeWire([]any{
			map[string]any{"unit": "month", "number_of_units": float64(1)},
			map[string]any{"unit": "month"},
		})
		require.ErrorIs(t, err, ErrMissingRequiredProperty)
		assert.ErrorContains(t, err, "element 1")
	})

	t.Run("map preserves keys", func(t *testing.T) {
		conv := MapValues(Entity(SubscriptionPeriodCoder))
		decoded, err := conv.DecodeWire(map[string]any{
			"weekly":  map[string]any{"unit": "week", "number_of_units": float64(1)},
			"monthly": map[string]any{"unit": "month", "number_of_units": float64(1)},
		})
		require.NoError(t, err)
		require.Len(t, decoded, 2)
		assert.Equal(t, "week", decoded["weekly"].Unit)
		assert.Equal(t, "month", decoded["monthly"].Unit)
	})

	t.Run("map element errors carry the key", func(t *testing.T) {
		conv := MapValues(Entity(SubscriptionPeriodCoder))
		_, err := conv.DecodeWire(map[string]any{"bad": map[string]any{"unit": "week"}})
		require.ErrorIs(t, err, ErrMissingRequiredProperty)
		assert.ErrorContains(t, err, `key "bad"`)
	})
}
