package codec

// Period units as the stores report them.
const (
	PeriodUnitDay     = "day"
	PeriodUnitWeek    = "week"
	PeriodUnitMonth   = "month"
	PeriodUnitYear    = "year"
	PeriodUnitUnknown = "unknown"
)

// SubscriptionPeriod is a billing duration: a unit and how many of it.
type SubscriptionPeriod struct {
	Unit          string
	NumberOfUnits int
}

var SubscriptionPeriodCoder = NewCoder[SubscriptionPeriod]("AdaptySubscriptionPeriod",
	String("unit", "unit", Required,
		BindValue(func(m *SubscriptionPeriod) *string { return &m.Unit })),
	Converted("numberOfUnits", "number_of_units", Required, KindNumber, IntNumber,
		BindValue(func(m *SubscriptionPeriod) *int { return &m.NumberOfUnits })),
)
