package codec

import "time"

// Stores a purchase can originate from.
const (
	StoreAppStore  = "app_store"
	StorePlayStore = "play_store"
	StoreAdapty    = "adapty"
)

// Subscription is one auto-renewable purchase record on a profile.
type Subscription struct {
	IsActive                     bool
	IsLifetime                   bool
	ActivatedAt                  time.Time
	RenewedAt                    *time.Time
	ExpiresAt                    *time.Time
	StartsAt                     *time.Time
	UnsubscribedAt               *time.Time
	BillingIssueDetectedAt       *time.Time
	IsInGracePeriod              bool
	IsSandbox                    bool
	IsRefund                     bool
	WillRenew                    bool
	VendorProductID              string
	VendorTransactionID          *string
	VendorOriginalTransactionID  *string
	Store                        string
	ActiveIntroductoryOfferType  *string
	ActivePromotionalOfferType   *string
	ActivePromotionalOfferID     *string
	CancellationReason           *string
}

var SubscriptionCoder = NewCoder[Subscription]("AdaptySubscription",
	Boolean("isActive", "is_active", Required,
		BindValue(func(m *Subscription) *bool { return &m.IsActive })),
	Boolean("isLifetime", "is_lifetime", Required,
		BindValue(func(m *Subscription) *bool { return &m.IsLifetime })),
	Converted("activatedAt", "activated_at", Required, KindString, Date,
		BindValue(func(m *Subscription) *time.Time { return &m.ActivatedAt })),
	Converted("renewedAt", "renewed_at", Optional, KindString, Date,
		BindPointer(func(m *Subscription) **time.Time { return &m.RenewedAt })),
	Converted("expiresAt", "expires_at", Optional, KindString, Date,
		BindPointer(func(m *Subscription) **time.Time { return &m.ExpiresAt })),
	Converted("startsAt", "starts_at", Optional, KindString, Date,
		BindPointer(func(m *Subscription) **time.Time { return &m.StartsAt })),
	Converted("unsubscribedAt", "unsubscribed_at", Optional, KindString, Date,
		BindPointer(func(m *Subscription) **time.Time { return &m.UnsubscribedAt })),
	Converted("billingIssueDetectedAt", "billing_issue_detected_at", Optional, KindString, Date,
		BindPointer(func(m *Subscription) **time.Time { return &m.BillingIssueDetectedAt })),
	Boolean("isInGracePeriod", "is_in_grace_period", Required,
		BindValue(func(m *Subscription) *bool { return &m.IsInGracePeriod })),
	Boolean("isSandbox", "is_sandbox", Required,
		BindValue(func(m *Subscription) *bool { return &m.IsSandbox })),
	Boolean("isRefund", "is_refund", Required,
		BindValue(func(m *Subscription) *bool { return &m.IsRefund })),
	Boolean("willRenew", "will_renew", Required,
		BindValue(func(m *Subscription) *bool { return &m.WillRenew })),
	String("vendorProductId", "vendor_product_id", Required,
		BindValue(func(m *Subscription) *string { return &m.VendorProductID })),
	String("vendorTransactionId", "vendor_transaction_id", Optional,
		BindPointer(func(m *Subscription) **string { return &m.VendorTransactionID })),
	String("vendorOriginalTransactionId", "vendor_original_transaction_id", Optional,
		BindPointer(func(m *Subscription) **string { return &m.VendorOriginalTransactionID })),
	String("store", "store", Required,
		BindValue(func(m *Subscription) *string { return &m.Store })),
	String("activeIntroductoryOfferType", "active_introductory_offer_type", Optional,
		BindPointer(func(m *Subscription) **string { return &m.ActiveIntroductoryOfferType })),
	String("activePromotionalOfferType", "active_promotional_offer_type", Optional,
		BindPointer(func(m *Subscription) **string { return &m.ActivePromotionalOfferType })),
	String("activePromotionalOfferId", "active_promotional_offer_id", Optional,
		BindPointer(func(m *Subscription) **string { return &m.ActivePromotionalOfferID })),
	String("cancellationReason", "cancellation_reason", Optional,
		BindPointer(func(m *Subscription) **string { return &m.CancellationReason })),
)
