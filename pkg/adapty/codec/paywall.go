package codec

// Paywall is a remotely configured product offering. Locale, RemoteConfig
// and RemoteConfigString all resolve against dotted sub-paths of the single
// remote_config wire object; the config payload is exposed both as the raw
// string and as the parsed object.
type Paywall struct {
	ID                 string
	Name               string
	ABTestName         string
	VariationID        string
	Revision           int
	Locale             string
	RemoteConfigString *string
	RemoteConfig       map[string]any
	Products           []PaywallProduct
	Version            *int64

	raw Wire
}

// RawWire returns the wire object this paywall was decoded from, or nil for
// locally constructed paywalls.
func (p *Paywall) RawWire() Wire { return p.raw }

var PaywallCoder = NewCoder[Paywall]("AdaptyPaywall",
	String("id", "developer_id", Required,
		BindValue(func(m *Paywall) *string { return &m.ID })),
	String("name", "paywall_name", Required,
		BindValue(func(m *Paywall) *string { return &m.Name })),
	String("abTestName", "ab_test_name", Required,
		BindValue(func(m *Paywall) *string { return &m.ABTestName })),
	String("variationId", "variation_id", Required,
		BindValue(func(m *Paywall) *string { return &m.VariationID })),
	Converted("revision", "revision", Required, KindNumber, IntNumber,
		BindValue(func(m *Paywall) *int { return &m.Revision })),
	String("locale", "remote_config.lang", Required,
		BindValue(func(m *Paywall) *string { return &m.Locale })),
	Converted("remoteConfig", "remote_config.data", Optional, KindString, JSONBlob,
		BindMap(func(m *Paywall) *map[string]any { return &m.RemoteConfig })),
	// remoteConfigString shares remote_config.data with remoteConfig and is
	// declared after it: on encode the verbatim string wins over the
	// re-serialized object, keeping byte-level fidelity.
	String("remoteConfigString", "remote_config.data", Optional,
		BindPointer(func(m *Paywall) **string { return &m.RemoteConfigString })),
	Converted("products", "products", Required, KindArray, Slice(Entity(ProductCoder)),
		BindSlice(func(m *Paywall) *[]PaywallProduct { return &m.Products })),
	Converted("version", "paywall_updated_at", Optional, KindNumber, Int64Number,
		BindPointer(func(m *Paywall) **int64 { return &m.Version })),
).Retain(func(m *Paywall, w Wire) { m.raw = w })

// Input returns the wire payload analytics and purchase calls send back to
// the native layer: the retained original object when the paywall came off
// the wire, otherwise a fresh encode.
func (p *Paywall) Input() (Wire, error) {
	if p.raw != nil {
		return p.raw, nil
	}
	return PaywallCoder.Encode(*p)
}
