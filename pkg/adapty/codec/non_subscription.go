package codec

import "time"

// NonSubscription is a one-off purchase record (consumable or non-consumable)
// on a profile.
type NonSubscription struct {
	PurchaseID          string
	VendorProductID     string
	VendorTransactionID *string
	Store               string
	PurchasedAt         time.Time
	IsOneTime           *bool
	IsSandbox           bool
	IsRefund            bool
}

var NonSubscriptionCoder = NewCoder[NonSubscription]("AdaptyNonSubscription",
	String("purchaseId", "purchase_id", Required,
		BindValue(func(m *NonSubscription) *string { return &m.PurchaseID })),
	String("vendorProductId", "vendor_product_id", Required,
		BindValue(func(m *NonSubscription) *string { return &m.VendorProductID })),
	String("vendorTransactionId", "vendor_transaction_id", Optional,
		BindPointer(func(m *NonSubscription) **string { return &m.VendorTransactionID })),
	String("store", "store", Required,
		BindValue(func(m *NonSubscription) *string { return &m.Store })),
	Converted("purchasedAt", "purchased_at", Required, KindString, Date,
		BindValue(func(m *NonSubscription) *time.Time { return &m.PurchasedAt })),
	Boolean("isOneTime", "is_one_time", Optional,
		BindPointer(func(m *NonSubscription) **bool { return &m.IsOneTime })),
	Boolean("isSandbox", "is_sandbox", Required,
		BindValue(func(m *NonSubscription) *bool { return &m.IsSandbox })),
	Boolean("isRefund", "is_refund", Required,
		BindValue(func(m *NonSubscription) *bool { return &m.IsRefund })),
)
