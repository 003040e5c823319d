package codec

// Payment modes of a discount phase.
const (
	PaymentModePayAsYouGo = "pay_as_you_go"
	PaymentModePayUpFront = "pay_up_front"
	PaymentModeFreeTrial  = "free_trial"
	PaymentModeUnknown    = "unknown"
)

// Discount is one introductory or promotional pricing phase of a product.
type Discount struct {
	Price                        float64
	NumberOfPeriods              int
	PaymentMode                  string
	SubscriptionPeriod           SubscriptionPeriod
	LocalizedPrice               *string
	LocalizedSubscriptionPeriod  *string
	LocalizedNumberOfPeriods     *string
	Identifier                   *string
}

var DiscountCoder = NewCoder[Discount]("AdaptyProductDiscount",
	Number("price", "price", Required,
		BindValue(func(m *Discount) *float64 { return &m.Price })),
	Converted("numberOfPeriods", "number_of_periods", Required, KindNumber, IntNumber,
		BindValue(func(m *Discount) *int { return &m.NumberOfPeriods })),
	String("paymentMode", "payment_mode", Required,
		BindValue(func(m *Discount) *string { return &m.PaymentMode })),
	Converted("subscriptionPeriod", "subscription_period", Required, KindObject, Entity(SubscriptionPeriodCoder),
		BindValue(func(m *Discount) *SubscriptionPeriod { return &m.SubscriptionPeriod })),
	String("localizedPrice", "localized_price", Optional,
		BindPointer(func(m *Discount) **string { return &m.LocalizedPrice })),
	String("localizedSubscriptionPeriod", "localized_subscription_period", Optional,
		BindPointer(func(m *Discount) **string { return &m.LocalizedSubscriptionPeriod })),
	String("localizedNumberOfPeriods", "localized_number_of_periods", Optional,
		BindPointer(func(m *Discount) **string { return &m.LocalizedNumberOfPeriods })),
	String("identifier", "identifier", Optional,
		BindPointer(func(m *Discount) **string { return &m.Identifier })),
)
