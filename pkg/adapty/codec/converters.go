package codec

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// wireDateLayout renders a UTC instant with millisecond precision and a
// literal Z, the only form the native SDKs accept back.
const wireDateLayout = "2006-01-02T15:04:05.000Z07:00"

// Date converts between wire date strings and time.Time. Encode always emits
// UTC with millisecond precision. Decode tolerates the non-standard variants
// one native platform produces, e.g. "+0000" offsets or six-digit fractional
// seconds: any string not ending in Z is reduced to its date and time
// components (offset discarded, fraction truncated to milliseconds) and
// reinterpreted as UTC before parsing.
var Date Converter[time.Time] = dateConverter{}

type dateConverter struct{}

var dateComponents = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})[T ](\d{2}):(\d{2}):(\d{2})(?:\.(\d+))?`)

func (dateConverter) DecodeWire(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: expected string, got %s", ErrTypeMismatch, kindOf(v))
	}
	norm := s
	if !strings.HasSuffix(s, "Z") {
		m := dateComponents.FindStringSubmatch(s)
		if m == nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateDecode, s)
		}
		frac := m[7]
		if len(frac) > 3 {
			frac = frac[:3]
		}
		for len(frac) < 3 {
			frac += "0"
		}
		norm = fmt.Sprintf("%s-%s-%sT%s:%s:%s.%sZ", m[1], m[2], m[3], m[4], m[5], m[6], frac)
	}
	t, err := time.Parse(time.RFC3339Nano, norm)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateDecode, s)
	}
	return t, nil
}

func (dateConverter) EncodeWire(t time.Time) (any, error) {
	return t.UTC().Format(wireDateLayout), nil
}

// JSONBlob converts between an embedded JSON string and a raw object. An
// empty wire string and an empty object are deliberately treated as the same
// "no data" state in both directions.
var JSONBlob Converter[map[string]any] = jsonBlobConverter{}

type jsonBlobConverter struct{}

func (jsonBlobConverter) DecodeWire(v any) (map[string]any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string, got %s", ErrTypeMismatch, kindOf(v))
	}
	if s == "" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("%w: embedded JSON: %v", ErrTypeMismatch, err)
	}
	return out, nil
}

func (jsonBlobConverter) EncodeWire(m map[string]any) (any, error) {
	if len(m) == 0 {
		return "", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// IntNumber narrows a wire number to int so integral model fields encode back
// to the exact shape JSON parsing produced.
var IntNumber Converter[int] = intConverter{}

type intConverter struct{}

func (intConverter) DecodeWire(v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: expected number, got %s", ErrTypeMismatch, kindOf(v))
	}
	return int(f), nil
}

func (intConverter) EncodeWire(i int) (any, error) { return float64(i), nil }

// Int64Number is IntNumber for millisecond timestamps and other wide values.
var Int64Number Converter[int64] = int64Converter{}

type int64Converter struct{}

func (int64Converter) DecodeWire(v any) (int64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: expected number, got %s", ErrTypeMismatch, kindOf(v))
	}
	return int64(f), nil
}

func (int64Converter) EncodeWire(i int64) (any, error) { return float64(i), nil }
