package codec

// Profile is the aggregate purchase state of one user: entitlements keyed by
// access level id, renewable purchases keyed by vendor product id, and
// one-off purchases keyed the same way.
type Profile struct {
	ProfileID        string
	CustomerUserID   *string
	AccessLevels     map[string]AccessLevel
	Subscriptions    map[string]Subscription
	NonSubscriptions map[string][]NonSubscription
	CustomAttributes map[string]any
}

var ProfileCoder = NewCoder[Profile]("AdaptyProfile",
	String("profileId", "profile_id", Required,
		BindValue(func(m *Profile) *string { return &m.ProfileID })),
	String("customerUserId", "customer_user_id", Optional,
		BindPointer(func(m *Profile) **string { return &m.CustomerUserID })),
	Converted("accessLevels", "paid_access_levels", Optional, KindObject, MapValues(Entity(AccessLevelCoder)),
		BindMap(func(m *Profile) *map[string]AccessLevel { return &m.AccessLevels })),
	Converted("subscriptions", "subscriptions", Optional, KindObject, MapValues(Entity(SubscriptionCoder)),
		BindMap(func(m *Profile) *map[string]Subscription { return &m.Subscriptions })),
	Converted("nonSubscriptions", "non_subscriptions", Optional, KindObject, MapValues(Slice(Entity(NonSubscriptionCoder))),
		BindMap(func(m *Profile) *map[string][]NonSubscription { return &m.NonSubscriptions })),
	Object("customAttributes", "custom_attributes", Optional,
		BindMap(func(m *Profile) *map[string]any { return &m.CustomAttributes })),
)
