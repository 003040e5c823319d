package codec

import "strings"

// Wire is the loosely typed, snake_case JSON object exchanged with the native
// SDKs. Values follow standard JSON unmarshalling: numbers are float64,
// objects are map[string]any, arrays are []any.
type Wire = map[string]any

// Kind is the primitive shape a wire value must have before conversion.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindNumber
	KindBoolean
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// kindOf names the runtime shape of a wire value for error messages.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return "unknown"
	}
}

func matchesKind(v any, k Kind) bool {
	switch k {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		_, ok := v.(float64)
		return ok
	case KindBoolean:
		_, ok := v.(bool)
		return ok
	case KindObject:
		_, ok := v.(map[string]any)
		return ok
	case KindArray:
		_, ok := v.([]any)
		return ok
	default:
		return false
	}
}

// resolvePath walks a possibly dotted wire key. A missing key or a non-object
// intermediate segment both count as absent.
func resolvePath(w Wire, key string) (any, bool) {
	segments := strings.Split(key, ".")
	current := any(w)
	for _, seg := range segments {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// assignPath writes a value at a possibly dotted wire key, creating
// intermediate objects as needed. Descriptors sharing a dotted prefix merge
// into the same nested object.
func assignPath(w Wire, key string, v any) {
	segments := strings.Split(key, ".")
	obj := w
	for _, seg := range segments[:len(segments)-1] {
		next, ok := obj[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			obj[seg] = next
		}
		obj = next
	}
	obj[segments[len(segments)-1]] = v
}
