package codec

import "fmt"

// Envelope type tags the native layer multiplexes over the single string
// reply channel. The set is closed: dispatch on an unknown tag fails hard.
const (
	TagProfile      = "AdaptyProfile"
	TagPaywall      = "AdaptyPaywall"
	TagProduct      = "AdaptyPaywallProduct"
	TagProductArray = "Array<AdaptyPaywallProduct>"
	TagError        = "AdaptyError"
	TagBridgeError  = "BridgeError"
	TagNull         = "null"
	TagVoid         = "void"
)

// Parse dispatches a {type, data} envelope to the coder its tag names and
// returns the decoded model. Input may be a JSON string, raw JSON bytes, or
// an already parsed wire object.
//
// Error-tagged envelopes decode successfully and then *return* the decoded
// typed *Error as the error value; there is no model result for them.
// TagNull and TagVoid return (nil, nil). An unknown tag returns
// ErrUnrecognizedEnvelopeType: unknown tags are a protocol break, unlike
// unknown bridge error discriminants which degrade to a generic error.
func Parse(input any) (any, error) {
	envType, data, err := openEnvelope(input)
	if err != nil {
		return nil, err
	}

	switch envType {
	case TagNull, TagVoid:
		return nil, nil
	case TagProfile:
		w, err := dataObject(envType, data)
		if err != nil {
			return nil, err
		}
		return ProfileCoder.Decode(w)
	case TagPaywall:
		w, err := dataObject(envType, data)
		if err != nil {
			return nil, err
		}
		return PaywallCoder.Decode(w)
	case TagProduct:
		w, err := dataObject(envType, data)
		if err != nil {
			return nil, err
		}
		return ProductCoder.Decode(w)
	case TagProductArray:
		arr, ok := data.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q data is %s, expected array", ErrMalformedEnvelope, envType, kindOf(data))
		}
		return Slice(Entity(ProductCoder)).DecodeWire(arr)
	case TagError:
		w, err := dataObject(envType, data)
		if err != nil {
			return nil, err
		}
		decoded, err := DecodeNativeError(w)
		if err != nil {
			return nil, err
		}
		return nil, decoded
	case TagBridgeError:
		w, err := dataObject(envType, data)
		if err != nil {
			return nil, err
		}
		decoded, err := DecodeBridgeError(w)
		if err != nil {
			return nil, err
		}
		return nil, decoded
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedEnvelopeType, envType)
	}
}

// ParseAs is Parse with the result asserted to the expected model type.
// No-op envelopes yield the zero value.
func ParseAs[T any](input any) (T, error) {
	var zero T
	v, err := Parse(input)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: decoded %T, expected %T", ErrMalformedEnvelope, v, zero)
	}
	return t, nil
}

func openEnvelope(input any) (string, any, error) {
	var w Wire
	switch in := input.(type) {
	case Wire:
		w = in
	case string:
		if err := json.Unmarshal([]byte(in), &w); err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
		}
	case []byte:
		if err := json.Unmarshal(in, &w); err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
		}
	default:
		return "", nil, fmt.Errorf("%w: unsupported input %T", ErrMalformedEnvelope, input)
	}

	rawType, ok := w["type"]
	if !ok {
		return "", nil, fmt.Errorf("%w: missing \"type\" property", ErrMalformedEnvelope)
	}
	envType, ok := rawType.(string)
	if !ok {
		return "", nil, fmt.Errorf("%w: \"type\" is %s, expected string", ErrMalformedEnvelope, kindOf(rawType))
	}
	data, ok := w["data"]
	if !ok {
		return "", nil, fmt.Errorf("%w: missing \"data\" property", ErrMalformedEnvelope)
	}
	return envType, data, nil
}

func dataObject(envType string, data any) (Wire, error) {
	w, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q data is %s, expected object", ErrMalformedEnvelope, envType, kindOf(data))
	}
	return w, nil
}
