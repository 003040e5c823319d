package codec

import "time"

// AccessLevel describes what a profile is currently entitled to and why.
type AccessLevel struct {
	ID                          string
	IsActive                    bool
	VendorProductID             string
	Store                       string
	ActivatedAt                 time.Time
	RenewedAt                   *time.Time
	ExpiresAt                   *time.Time
	StartsAt                    *time.Time
	UnsubscribedAt              *time.Time
	BillingIssueDetectedAt      *time.Time
	IsLifetime                  bool
	WillRenew                   bool
	IsInGracePeriod             bool
	ActiveIntroductoryOfferType *string
	ActivePromotionalOfferType  *string
	ActivePromotionalOfferID    *string
	CancellationReason          *string
	IsRefund                    *bool
	Android                     AccessLevelAndroid
}

// AccessLevelAndroid holds the Play Store specific fields. On the wire they
// live flat next to the core fields.
type AccessLevelAndroid struct {
	OfferID *string
}

var accessLevelAndroidCoder = NewCoder[AccessLevelAndroid]("android",
	String("offerId", "offer_id", Optional,
		BindPointer(func(m *AccessLevelAndroid) **string { return &m.OfferID })),
)

var AccessLevelCoder = NewCoder[AccessLevel]("AdaptyAccessLevel",
	String("id", "id", Required,
		BindValue(func(m *AccessLevel) *string { return &m.ID })),
	Boolean("isActive", "is_active", Required,
		BindValue(func(m *AccessLevel) *bool { return &m.IsActive })),
	String("vendorProductId", "vendor_product_id", Required,
		BindValue(func(m *AccessLevel) *string { return &m.VendorProductID })),
	String("store", "store", Required,
		BindValue(func(m *AccessLevel) *string { return &m.Store })),
	Converted("activatedAt", "activated_at", Required, KindString, Date,
		BindValue(func(m *AccessLevel) *time.Time { return &m.ActivatedAt })),
	Converted("renewedAt", "renewed_at", Optional, KindString, Date,
		BindPointer(func(m *AccessLevel) **time.Time { return &m.RenewedAt })),
	Converted("expiresAt", "expires_at", Optional, KindString, Date,
		BindPointer(func(m *AccessLevel) **time.Time { return &m.ExpiresAt })),
	Converted("startsAt", "starts_at", Optional, KindString, Date,
		BindPointer(func(m *AccessLevel) **time.Time { return &m.StartsAt })),
	Converted("unsubscribedAt", "unsubscribed_at", Optional, KindString, Date,
		BindPointer(func(m *AccessLevel) **time.Time { return &m.UnsubscribedAt })),
	Converted("billingIssueDetectedAt", "billing_issue_detected_at", Optional, KindString, Date,
		BindPointer(func(m *AccessLevel) **time.Time { return &m.BillingIssueDetectedAt })),
	Boolean("isLifetime", "is_lifetime", Required,
		BindValue(func(m *AccessLevel) *bool { return &m.IsLifetime })),
	Boolean("willRenew", "will_renew", Required,
		BindValue(func(m *AccessLevel) *bool { return &m.WillRenew })),
	Boolean("isInGracePeriod", "is_in_grace_period", Required,
		BindValue(func(m *AccessLevel) *bool { return &m.IsInGracePeriod })),
	String("activeIntroductoryOfferType", "active_introductory_offer_type", Optional,
		BindPointer(func(m *AccessLevel) **string { return &m.ActiveIntroductoryOfferType })),
	String("activePromotionalOfferType", "active_promotional_offer_type", Optional,
		BindPointer(func(m *AccessLevel) **string { return &m.ActivePromotionalOfferType })),
	String("activePromotionalOfferId", "active_promotional_offer_id", Optional,
		BindPointer(func(m *AccessLevel) **string { return &m.ActivePromotionalOfferID })),
	String("cancellationReason", "cancellation_reason", Optional,
		BindPointer(func(m *AccessLevel) **string { return &m.CancellationReason })),
	Boolean("isRefund", "is_refund", Optional,
		BindPointer(func(m *AccessLevel) **bool { return &m.IsRefund })),
	Platform("android", accessLevelAndroidCoder,
		func(m *AccessLevel) *AccessLevelAndroid { return &m.Android }),
)
