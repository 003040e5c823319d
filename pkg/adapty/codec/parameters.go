package codec

// App tracking transparency authorization states (iOS).
const (
	ATTStatusNotDetermined = 0
	ATTStatusRestricted    = 1
	ATTStatusDenied        = 2
	ATTStatusAuthorized    = 3
)

// ProfileParameters carries the user-settable attributes of a profile
// update. Every field is optional; absent fields are left untouched on the
// native side, so none of them may encode as an explicit null.
type ProfileParameters struct {
	FirstName             *string
	LastName              *string
	Gender                *string
	Birthday              *string
	Email                 *string
	PhoneNumber           *string
	FacebookAnonymousID   *string
	AmplitudeUserID       *string
	AmplitudeDeviceID     *string
	MixpanelUserID        *string
	AppmetricaProfileID   *string
	AppmetricaDeviceID    *string
	StoreCountry          *string
	ATTStatus             *int
	AnalyticsDisabled     *bool
	CustomAttributes      map[string]any
	OneSignalPlayerID     *string
	PushwooshHWID         *string
	FirebaseAppInstanceID *string
	AirbridgeDeviceID     *string
}

var ProfileParametersCoder = NewCoder[ProfileParameters]("AdaptyProfileParameters",
	String("firstName", "first_name", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.FirstName })),
	String("lastName", "last_name", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.LastName })),
	String("gender", "gender", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.Gender })),
	String("birthday", "birthday", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.Birthday })),
	String("email", "email", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.Email })),
	String("phoneNumber", "phone_number", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.PhoneNumber })),
	String("facebookAnonymousId", "facebook_anonymous_id", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.FacebookAnonymousID })),
	String("amplitudeUserId", "amplitude_user_id", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.AmplitudeUserID })),
	String("amplitudeDeviceId", "amplitude_device_id", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.AmplitudeDeviceID })),
	String("mixpanelUserId", "mixpanel_user_id", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.MixpanelUserID })),
	String("appmetricaProfileId", "appmetrica_profile_id", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.AppmetricaProfileID })),
	String("appmetricaDeviceId", "appmetrica_device_id", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.AppmetricaDeviceID })),
	String("storeCountry", "store_country", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.StoreCountry })),
	Converted("appTrackingTransparencyStatus", "att_status", Optional, KindNumber, IntNumber,
		BindPointer(func(m *ProfileParameters) **int { return &m.ATTStatus })),
	Boolean("analyticsDisabled", "analytics_disabled", Optional,
		BindPointer(func(m *ProfileParameters) **bool { return &m.AnalyticsDisabled })),
	Object("customAttributes", "custom_attributes", Optional,
		BindMap(func(m *ProfileParameters) *map[string]any { return &m.CustomAttributes })),
	String("oneSignalPlayerId", "one_signal_player_id", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.OneSignalPlayerID })),
	String("pushwooshHWID", "pushwoosh_hwid", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.PushwooshHWID })),
	String("firebaseAppInstanceId", "firebase_app_instance_id", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.FirebaseAppInstanceID })),
	String("airbridgeDeviceId", "airbridge_device_id", Optional,
		BindPointer(func(m *ProfileParameters) **string { return &m.AirbridgeDeviceID })),
)
