package codec

// PaywallProduct is one purchasable product attached to a paywall. The
// App Store and Play Store each contribute fields under their own model
// namespace; on the wire every field is flat.
type PaywallProduct struct {
	VendorID                      string
	IntroductoryOfferEligibility  *bool
	PromotionalOfferEligibility   *bool
	IntroductoryDiscount          *Discount
	LocalizedDescription          *string
	LocalizedTitle                *string
	Price                         *float64
	CurrencyCode                  *string
	CurrencySymbol                *string
	LocalizedPrice                *string
	SubscriptionPeriod            *SubscriptionPeriod
	LocalizedSubscriptionPeriod   *string
	PaywallABTestName             *string
	PaywallName                   *string
	VariationID                   *string
	IOS                           ProductIOS
	Android                       ProductAndroid

	raw Wire
}

// ProductIOS holds App Store only fields.
type ProductIOS struct {
	IsFamilyShareable           *bool
	PromotionalOfferID          *string
	SubscriptionGroupIdentifier *string
	RegionCode                  *string
	Discounts                   []Discount
}

// ProductAndroid holds Play Store only fields.
type ProductAndroid struct {
	FreeTrialPeriod          *SubscriptionPeriod
	LocalizedFreeTrialPeriod *string
}

// RawWire returns the wire object this product was decoded from, or nil for
// locally constructed products. Purchase calls send it back unchanged so
// native-side fields without a model counterpart survive the round trip.
func (p *PaywallProduct) RawWire() Wire { return p.raw }

var productIOSCoder = NewCoder[ProductIOS]("ios",
	Boolean("isFamilyShareable", "is_family_shareable", Optional,
		BindPointer(func(m *ProductIOS) **bool { return &m.IsFamilyShareable })),
	String("promotionalOfferId", "promotional_offer_id", Optional,
		BindPointer(func(m *ProductIOS) **string { return &m.PromotionalOfferID })),
	String("subscriptionGroupIdentifier", "subscription_group_identifier", Optional,
		BindPointer(func(m *ProductIOS) **string { return &m.SubscriptionGroupIdentifier })),
	String("regionCode", "region_code", Optional,
		BindPointer(func(m *ProductIOS) **string { return &m.RegionCode })),
	Converted("discounts", "discounts", Optional, KindArray, Slice(Entity(DiscountCoder)),
		BindSlice(func(m *ProductIOS) *[]Discount { return &m.Discounts })),
)

var productAndroidCoder = NewCoder[ProductAndroid]("android",
	Converted("freeTrialPeriod", "free_trial_period", Optional, KindObject, Entity(SubscriptionPeriodCoder),
		BindPointer(func(m *ProductAndroid) **SubscriptionPeriod { return &m.FreeTrialPeriod })),
	String("localizedFreeTrialPeriod", "localized_free_trial_period", Optional,
		BindPointer(func(m *ProductAndroid) **string { return &m.LocalizedFreeTrialPeriod })),
)

var ProductCoder = NewCoder[PaywallProduct]("AdaptyPaywallProduct",
	String("vendorId", "vendor_product_id", Required,
		BindValue(func(m *PaywallProduct) *string { return &m.VendorID })),
	Boolean("introductoryOfferEligibility", "introductory_offer_eligibility", Optional,
		BindPointer(func(m *PaywallProduct) **bool { return &m.IntroductoryOfferEligibility })),
	Boolean("promotionalOfferEligibility", "promotional_offer_eligibility", Optional,
		BindPointer(func(m *PaywallProduct) **bool { return &m.PromotionalOfferEligibility })),
	Converted("introductoryDiscount", "introductory_discount", Optional, KindObject, Entity(DiscountCoder),
		BindPointer(func(m *PaywallProduct) **Discount { return &m.IntroductoryDiscount })),
	String("localizedDescription", "localized_description", Optional,
		BindPointer(func(m *PaywallProduct) **string { return &m.LocalizedDescription })),
	String("localizedTitle", "localized_title", Optional,
		BindPointer(func(m *PaywallProduct) **string { return &m.LocalizedTitle })),
	Number("price", "price", Optional,
		BindPointer(func(m *PaywallProduct) **float64 { return &m.Price })),
	String("currencyCode", "currency_code", Optional,
		BindPointer(func(m *PaywallProduct) **string { return &m.CurrencyCode })),
	String("currencySymbol", "currency_symbol", Optional,
		BindPointer(func(m *PaywallProduct) **string { return &m.CurrencySymbol })),
	String("localizedPrice", "localized_price", Optional,
		BindPointer(func(m *PaywallProduct) **string { return &m.LocalizedPrice })),
	Converted("subscriptionPeriod", "subscription_period", Optional, KindObject, Entity(SubscriptionPeriodCoder),
		BindPointer(func(m *PaywallProduct) **SubscriptionPeriod { return &m.SubscriptionPeriod })),
	String("localizedSubscriptionPeriod", "localized_subscription_period", Optional,
		BindPointer(func(m *PaywallProduct) **string { return &m.LocalizedSubscriptionPeriod })),
	String("paywallABTestName", "paywall_ab_test_name", Optional,
		BindPointer(func(m *PaywallProduct) **string { return &m.PaywallABTestName })),
	String("paywallName", "paywall_name", Optional,
		BindPointer(func(m *PaywallProduct) **string { return &m.PaywallName })),
	String("variationId", "variation_id", Optional,
		BindPointer(func(m *PaywallProduct) **string { return &m.VariationID })),
	Platform("ios", productIOSCoder,
		func(m *PaywallProduct) *ProductIOS { return &m.IOS }),
	Platform("android", productAndroidCoder,
		func(m *PaywallProduct) *ProductAndroid { return &m.Android }),
).Retain(func(m *PaywallProduct, w Wire) { m.raw = w })

// productInputKeys is the subset of product fields a purchase call needs.
// The projection selects fields, it never transforms them.
var productInputKeys = []string{
	"vendor_product_id",
	"variation_id",
	"paywall_ab_test_name",
	"paywall_name",
	"promotional_offer_id",
}

// Input projects the narrow wire shape purchase calls send to the native
// layer. It prefers the retained original payload and falls back to a fresh
// encode for locally built products.
func (p *PaywallProduct) Input() (Wire, error) {
	src := p.raw
	if src == nil {
		var err error
		if src, err = ProductCoder.Encode(*p); err != nil {
			return nil, err
		}
	}
	out := Wire{}
	for _, k := range productInputKeys {
		if v, ok := src[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}
