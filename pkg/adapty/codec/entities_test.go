package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paywallFixture = `{
	"ab_test_name": "t",
	"developer_id": "d",
	"paywall_name": "n",
	"remote_config": {"lang": "en", "data": ""},
	"revision": 1,
	"variation_id": "v",
	"products": [{"vendor_product_id": "p1"}],
	"paywall_updated_at": 1000
}`

func TestPaywallCoder(t *testing.T) {
	var wire Wire
	require.NoError(t, json.Unmarshal([]byte(paywallFixture), &wire))

	p, err := PaywallCoder.Decode(wire)
	require.NoError(t, err)

	assert.Equal(t, "t", p.ABTestName)
	assert.Equal(t, "d", p.ID)
	assert.Equal(t, "n", p.Name)
	assert.Equal(t, "en", p.Locale)
	require.NotNil(t, p.RemoteConfigString)
	assert.Equal(t, "", *p.RemoteConfigString)
	assert.Equal(t, map[string]any{}, p.RemoteConfig)
	assert.Equal(t, 1, p.Revision)
	assert.Equal(t, "v", p.VariationID)
	require.NotNil(t, p.Version)
	assert.Equal(t, int64(1000), *p.Version)
	require.Len(t, p.Products, 1)
	assert.Equal(t, "p1", p.Products[0].VendorID)
	assert.Equal(t, ProductIOS{}, p.Products[0].IOS)
	assert.Equal(t, ProductAndroid{}, p.Products[0].Android)

	encoded, err := PaywallCoder.Encode(p)
	require.NoError(t, err)
	assert.Equal(t, wire, encoded)
}

func TestPaywallRemoteConfigDuality(t *testing.T) {
	// one wire value, two model fields: the raw string and the parsed object
	wire := Wire{
		"ab_test_name":  "t",
		"developer_id":  "d",
		"paywall_name":  "n",
		"remote_config": map[string]any{"lang": "fr", "data": `{"headline":"Go"}`},
		"revision":      float64(2),
		"variation_id":  "v",
		"products":      []any{},
	}

	p, err := PaywallCoder.Decode(wire)
	require.NoError(t, err)
	require.NotNil(t, p.RemoteConfigString)
	assert.Equal(t, `{"headline":"Go"}`, *p.RemoteConfigString)
	assert.Equal(t, map[string]any{"headline": "Go"}, p.RemoteConfig)
	assert.Equal(t, []PaywallProduct{}, p.Products)

	// the verbatim string wins on encode, byte for byte
	encoded, err := PaywallCoder.Encode(p)
	require.NoError(t, err)
	assert.Equal(t, wire, encoded)
}

func TestPaywallInputPrefersRetainedWire(t *testing.T) {
	var wire Wire
	require.NoError(t, json.Unmarshal([]byte(paywallFixture), &wire))

	p, err := PaywallCoder.Decode(wire)
	require.NoError(t, err)
	require.NotNil(t, p.RawWire())

	in, err := p.Input()
	require.NoError(t, err)
	assert.Equal(t, wire, in)

	local := Paywall{ID: "d", Name: "n", ABTestName: "t", VariationID: "v", Locale: "en"}
	in, err = local.Input()
	require.NoError(t, err)
	assert.Equal(t, "d", in["developer_id"])
}

func TestProductInputProjection(t *testing.T) {
	wire := Wire{
		"vendor_product_id":    "p1",
		"variation_id":         "v",
		"paywall_ab_test_name": "t",
		"paywall_name":         "n",
		"localized_title":      "Pro",
		"price":                float64(9.99),
		"promotional_offer_id": "promo",
	}

	p, err := ProductCoder.Decode(wire)
	require.NoError(t, err)

	in, err := p.Input()
	require.NoError(t, err)
	assert.Equal(t, Wire{
		"vendor_product_id":    "p1",
		"variation_id":         "v",
		"paywall_ab_test_name": "t",
		"paywall_name":         "n",
		"promotional_offer_id": "promo",
	}, in)
}

const profileFixture = `{
	"profile_id": "prof-1",
	"customer_user_id": "user-1",
	"subscriptions": {
		"com.app.monthly": {
			"is_active": true,
			"is_lifetime": false,
			"activated_at": "2023-02-24T07:16:28.000Z",
			"expires_at": "2023-03-24T07:16:28.000Z",
			"is_in_grace_period": false,
			"is_sandbox": false,
			"is_refund": false,
			"will_renew": true,
			"vendor_product_id": "com.app.monthly",
			"store": "app_store"
		},
		"com.app.yearly": {
			"is_active": false,
			"is_lifetime": false,
			"activated_at": "2022-02-24T07:16:28.000Z",
			"is_in_grace_period": false,
			"is_sandbox": true,
			"is_refund": false,
			"will_renew": false,
			"vendor_product_id": "com.app.yearly",
			"store": "play_store",
			"cancellation_reason": "voluntarily_cancelled"
		}
	}
}`

func TestProfileCoder(t *testing.T) {
	var wire Wire
	require.NoError(t, json.Unmarshal([]byte(profileFixture), &wire))

	p, err := ProfileCoder.Decode(wire)
	require.NoError(t, err)

	assert.Equal(t, "prof-1", p.ProfileID)
	require.NotNil(t, p.CustomerUserID)
	assert.Equal(t, "user-1", *p.CustomerUserID)
	require.Len(t, p.Subscriptions, 2)

	monthly := p.Subscriptions["com.app.monthly"]
	assert.True(t, monthly.IsActive)
	assert.Equal(t, time.Date(2023, 2, 24, 7, 16, 28, 0, time.UTC), monthly.ActivatedAt.UTC())
	require.NotNil(t, monthly.ExpiresAt)
	assert.Nil(t, monthly.CancellationReason)

	yearly := p.Subscriptions["com.app.yearly"]
	assert.False(t, yearly.IsActive)
	assert.True(t, yearly.IsSandbox)
	require.NotNil(t, yearly.CancellationReason)
	assert.Equal(t, "voluntarily_cancelled", *yearly.CancellationReason)

	// absent optional maps stay absent
	assert.Nil(t, p.AccessLevels)
	assert.Nil(t, p.NonSubscriptions)

	encoded, err := ProfileCoder.Encode(p)
	require.NoError(t, err)
	assert.Equal(t, wire, encoded)
}

func TestProfileNonSubscriptions(t *testing.T) {
	wire := Wire{
		"profile_id": "prof-1",
		"non_subscriptions": map[string]any{
			"com.app.coins": []any{
				map[string]any{
					"purchase_id":       "pur-1",
					"vendor_product_id": "com.app.coins",
					"store":             "app_store",
					"purchased_at":      "2023-02-24T07:16:28.000Z",
					"is_sandbox":        false,
					"is_refund":         false,
				},
				map[string]any{
					"purchase_id":       "pur-2",
					"vendor_product_id": "com.app.coins",
					"store":             "app_store",
					"purchased_at":      "2023-02-25T07:16:28.000Z",
					"is_one_time":       true,
					"is_sandbox":        false,
					"is_refund":         true,
				},
			},
		},
	}

	p, err := ProfileCoder.Decode(wire)
	require.NoError(t, err)
	require.Len(t, p.NonSubscriptions["com.app.coins"], 2)
	assert.Equal(t, "pur-1", p.NonSubscriptions["com.app.coins"][0].PurchaseID)
	require.NotNil(t, p.NonSubscriptions["com.app.coins"][1].IsOneTime)
	assert.True(t, p.NonSubscriptions["com.app.coins"][1].IsRefund)

	encoded, err := ProfileCoder.Encode(p)
	require.NoError(t, err)
	assert.Equal(t, wire, encoded)
}

func TestAccessLevelCoder(t *testing.T) {
	wire := Wire{
		"id":                 "premium",
		"is_active":          true,
		"vendor_product_id":  "com.app.monthly",
		"store":              "play_store",
		"activated_at":       "2023-02-24T07:16:28.000Z",
		"is_lifetime":        false,
		"will_renew":         true,
		"is_in_grace_period": false,
		"offer_id":           "offer-1",
	}

	lvl, err := AccessLevelCoder.Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, "premium", lvl.ID)
	require.NotNil(t, lvl.Android.OfferID)
	assert.Equal(t, "offer-1", *lvl.Android.OfferID)

	encoded, err := AccessLevelCoder.Encode(lvl)
	require.NoError(t, err)
	assert.Equal(t, wire, encoded)

	t.Run("missing required date", func(t *testing.T) {
		broken := Wire{}
		for k, v := range wire {
			broken[k] = v
		}
		delete(broken, "activated_at")
		_, err := AccessLevelCoder.Decode(broken)
		require.ErrorIs(t, err, ErrMissingRequiredProperty)
		assert.ErrorContains(t, err, `"activatedAt"`)
	})
}

func TestProfileParametersCoder(t *testing.T) {
	email := "a@b.c"
	att := ATTStatusAuthorized
	disabled := true
	params := ProfileParameters{
		Email:             &email,
		ATTStatus:         &att,
		AnalyticsDisabled: &disabled,
		CustomAttributes:  map[string]any{"tier": "gold"},
	}

	wire, err := ProfileParametersCoder.Encode(params)
	require.NoError(t, err)
	assert.Equal(t, Wire{
		"email":              "a@b.c",
		"att_status":         float64(3),
		"analytics_disabled": true,
		"custom_attributes":  map[string]any{"tier": "gold"},
	}, wire)

	back, err := ProfileParametersCoder.Decode(wire)
	require.NoError(t, err)
	assert.Equal(t, params, back)
}
