// Command adaptycfg creates and checks the TOML activation config used by
// embedding applications.
//
// Usage:
//
//	adaptycfg -config adapty.toml -api-key public_live_xxx [-customer-user-id id]
//	adaptycfg -config adapty.toml -check
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/adaptyteam/AdaptySDK-React-Native-sub002/pkg/adapty/config"
)

func main() {
	var (
		path           = flag.String("config", "adapty.toml", "path of the TOML config file")
		apiKey         = flag.String("api-key", "", "public SDK key (public_live_* or public_test_*)")
		customerUserID = flag.String("customer-user-id", "", "optional customer user id")
		logLevel       = flag.String("log-level", "", "native log level (error, warn, info, verbose)")
		observerMode   = flag.Bool("observer-mode", false, "enable observer mode")
		cluster        = flag.String("server-cluster", "", "server cluster (default, eu)")
		check          = flag.Bool("check", false, "validate an existing config instead of writing one")
	)
	flag.Parse()

	lggr, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lggr.Sync() //nolint:errcheck

	if *check {
		cfg, err := config.Load(*path)
		if err != nil {
			lggr.Fatal("config check failed", zap.String("path", *path), zap.Error(err))
		}
		lggr.Info("config is valid",
			zap.String("path", *path),
			zap.String("log_level", *cfg.LogLevel),
			zap.String("server_cluster", *cfg.ServerCluster))
		return
	}

	cfg := config.Config{APIKey: apiKey}
	if *customerUserID != "" {
		cfg.CustomerUserID = customerUserID
	}
	if *logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if *observerMode {
		cfg.ObserverMode = observerMode
	}
	if *cluster != "" {
		cfg.ServerCluster = cluster
	}
	cfg.SetDefaults()

	if err := cfg.Write(*path); err != nil {
		lggr.Fatal("writing config failed", zap.String("path", *path), zap.Error(err))
	}
	lggr.Info("config written", zap.String("path", *path))
}
