// Package bridge is the boundary to the native subscription SDKs. The native
// side exports a single handler; every SDK operation goes through it as a
// method name plus a flat argument map and comes back as a JSON string.
package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Methods understood by the native handler.
const (
	MethodActivate           = "activate"
	MethodGetProfile         = "get_profile"
	MethodIdentify           = "identify"
	MethodLogout             = "logout"
	MethodUpdateProfile      = "update_profile"
	MethodGetPaywall         = "get_paywall"
	MethodGetPaywallProducts = "get_paywall_products"
	MethodLogShowPaywall     = "log_show_paywall"
	MethodMakePurchase       = "make_purchase"
	MethodRestorePurchases   = "restore_purchases"
	MethodUpdateAttribution  = "update_attribution"
	MethodSetLogLevel        = "set_log_level"
)

// Argument keys. Complex values (paywalls, products, parameter sets) are
// always JSON-stringified before they enter the map.
const (
	ParamConfiguration  = "configuration"
	ParamCustomerUserID = "customer_user_id"
	ParamPlacementID    = "placement_id"
	ParamLocale         = "locale"
	ParamPaywall        = "paywall"
	ParamProduct        = "product"
	ParamParams         = "params"
	ParamAttribution    = "attribution"
	ParamSource         = "source"
	ParamNetworkUserID  = "network_user_id"
	ParamValue          = "value"
)

// Args is the flat argument map of one native call. Values must be strings,
// numbers or booleans; anything richer is stringified first.
type Args map[string]any

// Caller invokes the native handler. Implementations are supplied by the
// embedding application; an empty reply stands for a null response.
type Caller interface {
	Call(ctx context.Context, method string, args Args) (string, error)
}

// Client wraps a Caller with request correlation and structured logging.
// The zero Caller is not usable; the logger defaults to a nop.
type Client struct {
	caller Caller
	lggr   *zap.Logger
}

func NewClient(caller Caller, lggr *zap.Logger) *Client {
	if lggr == nil {
		lggr = zap.NewNop()
	}
	return &Client{caller: caller, lggr: lggr}
}

// Call forwards one method invocation to the native handler. Each call gets
// a fresh request id so concurrent operations stay distinguishable in logs.
func (c *Client) Call(ctx context.Context, method string, args Args) (string, error) {
	id := uuid.NewString()
	start := time.Now()
	c.lggr.Debug("bridge call",
		zap.String("method", method),
		zap.String("request_id", id),
		zap.Int("args", len(args)))

	reply, err := c.caller.Call(ctx, method, args)
	if err != nil {
		c.lggr.Error("bridge call failed",
			zap.String("method", method),
			zap.String("request_id", id),
			zap.Error(err))
		return "", fmt.Errorf("bridge call %q: %w", method, err)
	}

	c.lggr.Debug("bridge reply",
		zap.String("method", method),
		zap.String("request_id", id),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("reply_bytes", len(reply)))
	return reply, nil
}

// Stringify JSON-encodes a complex argument value for inclusion in Args.
func Stringify(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("stringify bridge argument: %w", err)
	}
	return string(data), nil
}
