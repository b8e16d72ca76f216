// hot-reload.go: dynamic capacity with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package bigram

import (
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotConfig watches a configuration file with Argus and applies capacity
// changes to a running cache.
//
// The Argus callback runs on the watcher goroutine, so target must be safe
// for concurrent use with the rest of the program (typically a
// *SyncScoringCache).
type HotConfig struct {
	target     Resizer
	watcher    *argus.Watcher
	logger     Logger
	configPath string

	mu     sync.RWMutex
	config Config

	// OnReload is called after a configuration change has been applied.
	OnReload func(oldConfig, newConfig Config)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Any format Argus understands works (JSON, YAML, TOML, HCL, INI, Properties).
	ConfigPath string

	// PollInterval is how often to check for changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig Config)

	// Logger for hot reload operations. Default: NoOpLogger.
	Logger Logger
}

// NewHotConfig creates a watcher for opts.ConfigPath that resizes target.
//
// Example configuration file (YAML):
//
//	scorer:
//	  capacity: 5000
//
// A top-level "capacity" key is accepted as well. Values that are not
// positive integers are ignored and the current capacity is kept.
func NewHotConfig(target Resizer, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, NewErrInvalidConfig("config_path is required")
	}
	if target == nil {
		return nil, NewErrInvalidConfig("target cache is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	config := DefaultConfig()
	config.Capacity = target.Capacity()

	hc := &HotConfig{
		target:     target,
		logger:     opts.Logger,
		configPath: opts.ConfigPath,
		config:     config,
		OnReload:   opts.OnReload,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argus.Config{
		PollInterval: opts.PollInterval,
	})
	if err != nil {
		return nil, NewErrReloadFailed(opts.ConfigPath, err)
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file. Calling Start on a running
// watcher is a no-op.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// GetConfig returns the last applied configuration.
func (hc *HotConfig) GetConfig() Config {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

// handleConfigChange is called by Argus with the parsed file.
func (hc *HotConfig) handleConfigChange(data map[string]interface{}) {
	hc.mu.Lock()
	oldConfig := hc.config
	newConfig := parseConfig(data, oldConfig)

	if err := hc.apply(newConfig); err != nil {
		hc.mu.Unlock()
		hc.logger.Warn("configuration reload rejected", "path", hc.configPath, "error", err)
		return
	}
	hc.config = newConfig
	hc.mu.Unlock()

	hc.logger.Info("configuration reloaded", "path", hc.configPath, "capacity", newConfig.Capacity)

	if hc.OnReload != nil {
		hc.OnReload(oldConfig, newConfig)
	}
}

// apply pushes the runtime-changeable settings to the target.
func (hc *HotConfig) apply(newConfig Config) error {
	if newConfig.Capacity == hc.target.Capacity() {
		return nil
	}
	if err := hc.target.SetCapacity(newConfig.Capacity); err != nil {
		return NewErrReloadFailed(hc.configPath, err)
	}
	return nil
}

// parseConfig reads the "scorer" section (or the top level) of data.
// Settings that are missing or invalid keep their value from current.
func parseConfig(data map[string]interface{}, current Config) Config {
	config := current

	section, ok := data["scorer"].(map[string]interface{})
	if !ok {
		section = data
	}

	if capacity, ok := parsePositiveInt(section["capacity"]); ok {
		config.Capacity = capacity
	}

	return config
}

// parsePositiveInt accepts the numeric types config decoders produce.
func parsePositiveInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case int64:
		if v > 0 {
			return int(v), true
		}
	case float64:
		if v > 0 && v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}
