package codec

import "errors"

// Sentinel errors for decode and dispatch failures. Callers match them with
// errors.Is; wrapped messages carry the entity and property context needed to
// diagnose a payload without access to the payload itself.
var (
	// ErrMissingRequiredProperty means a required field was absent from the
	// wire payload during decode.
	ErrMissingRequiredProperty = errors.New("missing required property")

	// ErrTypeMismatch means a wire value was present but had the wrong
	// primitive shape.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDateDecode means a date string stayed unparseable even after
	// timezone normalization.
	ErrDateDecode = errors.New("cannot decode date")

	// ErrMalformedEnvelope means the response was not valid JSON or was
	// missing the "type"/"data" envelope properties.
	ErrMalformedEnvelope = errors.New("malformed response envelope")

	// ErrUnrecognizedEnvelopeType means the envelope carried a type tag
	// outside the known set. Unlike unknown bridge error discriminants this
	// is fatal: an unknown tag is a protocol break, not a degraded error.
	ErrUnrecognizedEnvelopeType = errors.New("unrecognized envelope type")
)
