// Package adapty is the application-facing SDK surface. Every method follows
// the same thin sequence: validate input, assemble the argument map, invoke
// the native bridge, and parse the {type, data} reply into a typed model or
// a typed error. All domain behavior lives on the native side.
package adapty

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/adaptyteam/AdaptySDK-React-Native-sub002/pkg/adapty/bridge"
	"github.com/adaptyteam/AdaptySDK-React-Native-sub002/pkg/adapty/codec"
	"github.com/adaptyteam/AdaptySDK-React-Native-sub002/pkg/adapty/config"
)

// ErrNotActivated is returned by every operation invoked before Activate.
var ErrNotActivated = errors.New("sdk is not activated")

// SDK drives the native subscription SDK through the bridge.
type SDK struct {
	bridge *bridge.Client
	lggr   *zap.Logger

	mu        sync.Mutex
	activated bool
}

// Option configures the SDK.
type Option func(*options)

type options struct {
	lggr *zap.Logger
}

// WithLogger installs a logger; the default is a nop.
func WithLogger(lggr *zap.Logger) Option {
	return func(o *options) { o.lggr = lggr }
}

// New wires an SDK to the given native caller.
func New(caller bridge.Caller, opts ...Option) *SDK {
	o := options{lggr: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &SDK{
		bridge: bridge.NewClient(caller, o.lggr),
		lggr:   o.lggr,
	}
}

// Activate hands the configuration to the native layer. It must complete
// before any other operation; activating twice is a no-op.
func (s *SDK) Activate(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return errors.New("nil configuration")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("activate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activated {
		s.lggr.Debug("activate skipped, already activated")
		return nil
	}

	conf, err := bridge.Stringify(cfg.BridgeMap())
	if err != nil {
		return err
	}
	if err := s.callVoid(ctx, bridge.MethodActivate, bridge.Args{bridge.ParamConfiguration: conf}); err != nil {
		return err
	}
	s.activated = true
	return nil
}

// GetProfile fetches the current purchase state of the user.
func (s *SDK) GetProfile(ctx context.Context) (codec.Profile, error) {
	if err := s.requireActivated(); err != nil {
		return codec.Profile{}, err
	}
	return callTyped[codec.Profile](ctx, s, bridge.MethodGetProfile, nil)
}

// Identify binds the current device to a customer user id.
func (s *SDK) Identify(ctx context.Context, customerUserID string) (codec.Profile, error) {
	if err := s.requireActivated(); err != nil {
		return codec.Profile{}, err
	}
	if customerUserID == "" {
		return codec.Profile{}, errors.New("identify: empty customer user id")
	}
	return callTyped[codec.Profile](ctx, s, bridge.MethodIdentify,
		bridge.Args{bridge.ParamCustomerUserID: customerUserID})
}

// Logout detaches the device from the current customer user id.
func (s *SDK) Logout(ctx context.Context) error {
	if err := s.requireActivated(); err != nil {
		return err
	}
	return s.callVoid(ctx, bridge.MethodLogout, nil)
}

// UpdateProfile pushes user-settable attributes to the native layer.
func (s *SDK) UpdateProfile(ctx context.Context, params codec.ProfileParameters) error {
	if err := s.requireActivated(); err != nil {
		return err
	}
	wire, err := codec.ProfileParametersCoder.Encode(params)
	if err != nil {
		return err
	}
	arg, err := bridge.Stringify(wire)
	if err != nil {
		return err
	}
	return s.callVoid(ctx, bridge.MethodUpdateProfile, bridge.Args{bridge.ParamParams: arg})
}

// GetPaywall fetches the paywall configured for a placement, localized when
// a locale is given.
func (s *SDK) GetPaywall(ctx context.Context, placementID, locale string) (codec.Paywall, error) {
	if err := s.requireActivated(); err != nil {
		return codec.Paywall{}, err
	}
	if placementID == "" {
		return codec.Paywall{}, errors.New("get paywall: empty placement id")
	}
	args := bridge.Args{bridge.ParamPlacementID: placementID}
	if locale != "" {
		args[bridge.ParamLocale] = locale
	}
	return callTyped[codec.Paywall](ctx, s, bridge.MethodGetPaywall, args)
}

// GetPaywallProducts resolves store products for a fetched paywall.
func (s *SDK) GetPaywallProducts(ctx context.Context, paywall codec.Paywall) ([]codec.PaywallProduct, error) {
	if err := s.requireActivated(); err != nil {
		return nil, err
	}
	arg, err := paywallArg(paywall)
	if err != nil {
		return nil, err
	}
	return callTyped[[]codec.PaywallProduct](ctx, s, bridge.MethodGetPaywallProducts,
		bridge.Args{bridge.ParamPaywall: arg})
}

// LogShowPaywall reports a paywall impression.
func (s *SDK) LogShowPaywall(ctx context.Context, paywall codec.Paywall) error {
	if err := s.requireActivated(); err != nil {
		return err
	}
	arg, err := paywallArg(paywall)
	if err != nil {
		return err
	}
	return s.callVoid(ctx, bridge.MethodLogShowPaywall, bridge.Args{bridge.ParamPaywall: arg})
}

// MakePurchase starts the store purchase flow for a product and returns the
// resulting profile.
func (s *SDK) MakePurchase(ctx context.Context, product codec.PaywallProduct) (codec.Profile, error) {
	if err := s.requireActivated(); err != nil {
		return codec.Profile{}, err
	}
	input, err := product.Input()
	if err != nil {
		return codec.Profile{}, err
	}
	arg, err := bridge.Stringify(input)
	if err != nil {
		return codec.Profile{}, err
	}
	return callTyped[codec.Profile](ctx, s, bridge.MethodMakePurchase,
		bridge.Args{bridge.ParamProduct: arg})
}

// RestorePurchases replays store transactions into the profile.
func (s *SDK) RestorePurchases(ctx context.Context) (codec.Profile, error) {
	if err := s.requireActivated(); err != nil {
		return codec.Profile{}, err
	}
	return callTyped[codec.Profile](ctx, s, bridge.MethodRestorePurchases, nil)
}

// UpdateAttribution forwards an attribution payload from a tracking network.
func (s *SDK) UpdateAttribution(ctx context.Context, source string, attribution map[string]any, networkUserID string) error {
	if err := s.requireActivated(); err != nil {
		return err
	}
	if source == "" {
		return errors.New("update attribution: empty source")
	}
	arg, err := bridge.Stringify(attribution)
	if err != nil {
		return err
	}
	args := bridge.Args{
		bridge.ParamSource:      source,
		bridge.ParamAttribution: arg,
	}
	if networkUserID != "" {
		args[bridge.ParamNetworkUserID] = networkUserID
	}
	return s.callVoid(ctx, bridge.MethodUpdateAttribution, args)
}

// SetLogLevel adjusts native-side verbosity at runtime.
func (s *SDK) SetLogLevel(ctx context.Context, level string) error {
	if err := s.requireActivated(); err != nil {
		return err
	}
	switch level {
	case config.LogLevelError, config.LogLevelWarn, config.LogLevelInfo, config.LogLevelVerbose:
	default:
		return fmt.Errorf("set log level: unknown level %q", level)
	}
	return s.callVoid(ctx, bridge.MethodSetLogLevel, bridge.Args{bridge.ParamValue: level})
}

func (s *SDK) requireActivated() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.activated {
		return ErrNotActivated
	}
	return nil
}

// callVoid runs a method whose reply is either empty or a no-op/error
// envelope.
func (s *SDK) callVoid(ctx context.Context, method string, args bridge.Args) error {
	reply, err := s.bridge.Call(ctx, method, args)
	if err != nil {
		return err
	}
	if reply == "" {
		return nil
	}
	_, err = codec.Parse(reply)
	return err
}

// callTyped runs a method whose reply must decode to T.
func callTyped[T any](ctx context.Context, s *SDK, method string, args bridge.Args) (T, error) {
	var zero T
	reply, err := s.bridge.Call(ctx, method, args)
	if err != nil {
		return zero, err
	}
	if reply == "" {
		return zero, fmt.Errorf("%w: empty reply to %q", codec.ErrMalformedEnvelope, method)
	}
	return codec.ParseAs[T](reply)
}

func paywallArg(paywall codec.Paywall) (string, error) {
	input, err := paywall.Input()
	if err != nil {
		return "", err
	}
	return bridge.Stringify(input)
}
