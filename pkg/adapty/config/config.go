// Package config holds the activation configuration handed to the native
// SDKs, with TOML load/store for the credentials tooling.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Log levels accepted by the native SDKs.
const (
	LogLevelError   = "error"
	LogLevelWarn    = "warn"
	LogLevelInfo    = "info"
	LogLevelVerbose = "verbose"
)

// Server clusters.
const (
	ClusterDefault = "default"
	ClusterEU      = "eu"
)

// API keys are issued per environment with a fixed prefix.
const (
	apiKeyLivePrefix = "public_live_"
	apiKeyTestPrefix = "public_test_"
)

// Config is the activation configuration. Fields are pointers so an unset
// field can be told apart from an explicit zero; SetFrom fills gaps from
// another config and Validate checks the result.
type Config struct {
	APIKey                      *string `toml:"api_key"`
	CustomerUserID              *string `toml:"customer_user_id,omitempty"`
	ObserverMode                *bool   `toml:"observer_mode,omitempty"`
	LogLevel                    *string `toml:"log_level,omitempty"`
	IDFACollectionDisabled      *bool   `toml:"idfa_collection_disabled,omitempty"`
	IPAddressCollectionDisabled *bool   `toml:"ip_address_collection_disabled,omitempty"`
	ServerCluster               *string `toml:"server_cluster,omitempty"`
	BackendBaseURL              *string `toml:"backend_base_url,omitempty"`
}

// SetFrom copies every field that is set on f and unset on c.
func (c *Config) SetFrom(f *Config) {
	if c.APIKey == nil {
		c.APIKey = f.APIKey
	}
	if c.CustomerUserID == nil {
		c.CustomerUserID = f.CustomerUserID
	}
	if c.ObserverMode == nil {
		c.ObserverMode = f.ObserverMode
	}
	if c.LogLevel == nil {
		c.LogLevel = f.LogLevel
	}
	if c.IDFACollectionDisabled == nil {
		c.IDFACollectionDisabled = f.IDFACollectionDisabled
	}
	if c.IPAddressCollectionDisabled == nil {
		c.IPAddressCollectionDisabled = f.IPAddressCollectionDisabled
	}
	if c.ServerCluster == nil {
		c.ServerCluster = f.ServerCluster
	}
	if c.BackendBaseURL == nil {
		c.BackendBaseURL = f.BackendBaseURL
	}
}

// SetDefaults fills the optional fields the native layer expects to be set.
func (c *Config) SetDefaults() {
	level := LogLevelError
	cluster := ClusterDefault
	c.SetFrom(&Config{LogLevel: &level, ServerCluster: &cluster})
}

// Validate reports every problem at once.
func (c *Config) Validate() (err error) {
	if c.APIKey == nil || *c.APIKey == "" {
		err = errors.Join(err, errors.New("APIKey: missing"))
	} else if !strings.HasPrefix(*c.APIKey, apiKeyLivePrefix) && !strings.HasPrefix(*c.APIKey, apiKeyTestPrefix) {
		err = errors.Join(err, fmt.Errorf("APIKey: must start with %q or %q", apiKeyLivePrefix, apiKeyTestPrefix))
	}
	if c.LogLevel != nil {
		switch *c.LogLevel {
		case LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelVerbose:
		default:
			err = errors.Join(err, fmt.Errorf("LogLevel: unknown level %q", *c.LogLevel))
		}
	}
	if c.ServerCluster != nil {
		switch *c.ServerCluster {
		case ClusterDefault, ClusterEU:
		default:
			err = errors.Join(err, fmt.Errorf("ServerCluster: unknown cluster %q", *c.ServerCluster))
		}
	}
	if c.BackendBaseURL != nil {
		if u, parseErr := url.Parse(*c.BackendBaseURL); parseErr != nil || u.Scheme == "" || u.Host == "" {
			err = errors.Join(err, fmt.Errorf("BackendBaseURL: invalid URL %q", *c.BackendBaseURL))
		}
	}
	return
}

// BridgeMap renders the configuration as the flat snake_case object the
// activate call stringifies into its argument map. Unset fields are omitted.
func (c *Config) BridgeMap() map[string]any {
	out := map[string]any{}
	put := func(key string, v any, set bool) {
		if set {
			out[key] = v
		}
	}
	put("api_key", deref(c.APIKey), c.APIKey != nil)
	put("customer_user_id", deref(c.CustomerUserID), c.CustomerUserID != nil)
	put("observer_mode", deref(c.ObserverMode), c.ObserverMode != nil)
	put("log_level", deref(c.LogLevel), c.LogLevel != nil)
	put("idfa_collection_disabled", deref(c.IDFACollectionDisabled), c.IDFACollectionDisabled != nil)
	put("ip_address_collection_disabled", deref(c.IPAddressCollectionDisabled), c.IPAddressCollectionDisabled != nil)
	put("server_cluster", deref(c.ServerCluster), c.ServerCluster != nil)
	put("backend_base_url", deref(c.BackendBaseURL), c.BackendBaseURL != nil)
	return out
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Load reads and validates a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &c, nil
}

// Write validates and stores the config as TOML.
func (c *Config) Write(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
