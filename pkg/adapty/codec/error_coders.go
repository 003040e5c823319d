package codec

import "fmt"

// Numeric codes carried by every Error. Native-side errors keep the code the
// native SDK reported; bridge-side failures map their discriminant to a
// fixed code in the 3000 range.
const (
	CodeUnexpected                 = 3000
	CodeMissingArgument            = 3001
	CodeTypeMismatch               = 3002
	CodeEncodingFailed             = 3003
	CodeWrongParameter             = 3004
	CodeMethodNotImplemented       = 3005
	CodeUnsupportedPlatformVersion = 3006
)

// Error is the typed error surfaced to SDK callers for both native-side
// failures and bridge-side failures.
type Error struct {
	AdaptyCode int
	Message    string
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("#%d (%s): %s", e.AdaptyCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("#%d (%s)", e.AdaptyCode, e.Message)
}

// nativeError is the wire shape of an error raised inside the native SDK.
type nativeError struct {
	AdaptyCode int
	Message    string
	Detail     *string
}

var nativeErrorCoder = NewCoder[nativeError]("AdaptyError",
	Converted("adaptyCode", "adapty_code", Required, KindNumber, IntNumber,
		BindValue(func(m *nativeError) *int { return &m.AdaptyCode })),
	String("message", "message", Required,
		BindValue(func(m *nativeError) *string { return &m.Message })),
	String("detail", "detail", Optional,
		BindPointer(func(m *nativeError) **string { return &m.Detail })),
)

func (e nativeError) toError() *Error {
	out := &Error{AdaptyCode: e.AdaptyCode, Message: e.Message}
	if e.Detail != nil {
		out.Detail = *e.Detail
	}
	return out
}

// bridgeError is the wire shape of a failure inside the bridge glue itself:
// a bad argument, an unimplemented method, and so on.
type bridgeError struct {
	ErrorType       string
	Name            *string
	Type            *string
	UnderlyingError *string
	Description     *string
}

var bridgeErrorCoder = NewCoder[bridgeError]("BridgeError",
	String("errorType", "error_type", Required,
		BindValue(func(m *bridgeError) *string { return &m.ErrorType })),
	String("name", "name", Optional,
		BindPointer(func(m *bridgeError) **string { return &m.Name })),
	String("type", "type", Optional,
		BindPointer(func(m *bridgeError) **string { return &m.Type })),
	String("underlyingError", "underlying_error", Optional,
		BindPointer(func(m *bridgeError) **string { return &m.UnderlyingError })),
	String("description", "description", Optional,
		BindPointer(func(m *bridgeError) **string { return &m.Description })),
)

// toError maps the discriminant onto a fixed code and message template.
// Unknown discriminants collapse to CodeUnexpected instead of failing: a
// degraded error report still beats no error report.
func (e bridgeError) toError() *Error {
	name := strOr(e.Name, "unknown")
	typ := strOr(e.Type, "unknown")

	switch e.ErrorType {
	case "missingArgument":
		return &Error{
			AdaptyCode: CodeMissingArgument,
			Message:    fmt.Sprintf("argument %q of type %q was not passed to the bridge", name, typ),
		}
	case "typeMismatch":
		return &Error{
			AdaptyCode: CodeTypeMismatch,
			Message:    fmt.Sprintf("argument %q was not of expected type %q", name, typ),
		}
	case "encodingFailed":
		return &Error{
			AdaptyCode: CodeEncodingFailed,
			Message:    fmt.Sprintf("failed to encode %q for the native layer", name),
			Detail:     strOr(e.UnderlyingError, ""),
		}
	case "wrongParameter":
		return &Error{
			AdaptyCode: CodeWrongParameter,
			Message:    fmt.Sprintf("parameter %q has an invalid value", name),
		}
	case "methodNotImplemented":
		return &Error{
			AdaptyCode: CodeMethodNotImplemented,
			Message:    fmt.Sprintf("method %q is not implemented on this platform", name),
		}
	case "unsupportedPlatformVersion":
		return &Error{
			AdaptyCode: CodeUnsupportedPlatformVersion,
			Message:    fmt.Sprintf("method %q needs a newer OS version", name),
		}
	default:
		return &Error{
			AdaptyCode: CodeUnexpected,
			Message:    strOr(e.Description, "unexpected bridge error"),
			Detail:     strOr(e.UnderlyingError, ""),
		}
	}
}

func strOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// DecodeNativeError decodes an AdaptyError payload into the typed error it
// represents. The second return value reports decode failure of the payload
// itself.
func DecodeNativeError(w Wire) (*Error, error) {
	payload, err := nativeErrorCoder.Decode(w)
	if err != nil {
		return nil, err
	}
	return payload.toError(), nil
}

// DecodeBridgeError decodes a BridgeError payload into the typed error it
// represents.
func DecodeBridgeError(w Wire) (*Error, error) {
	payload, err := bridgeErrorCoder.Decode(w)
	if err != nil {
		return nil, err
	}
	return payload.toError(), nil
}
