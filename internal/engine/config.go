package engine

import (
	"fmt"
	"strconv"

	ptterrors "ptt.dev/ptt/internal/errors"
)

// Configuration keys recognized in the [ptt] and [ptt "<branch>"] sections.
const (
	configKeyBase       = "base"
	configKeyMarker     = "marker"
	configKeyRemote     = "remote"
	configKeyShortIDLen = "shortidlen"
)

// ResolveConfig builds the effective configuration for one invocation.
// Priority, highest first: explicit overrides, the branch-scoped section for
// the checked-out branch, the repository-wide section, built-in defaults.
// Detached HEAD simply skips the branch-scoped layer.
func ResolveConfig(backend Backend, overrides Overrides) (EffectiveConfig, error) {
	merged, err := backend.ConfigSection(ConfigSection, "")
	if err != nil {
		return EffectiveConfig{}, fmt.Errorf("failed to read %s config: %w", ConfigSection, err)
	}
	if merged == nil {
		merged = make(map[string]string)
	}

	if branch, ok, err := backend.CurrentBranch(); err != nil {
		return EffectiveConfig{}, fmt.Errorf("failed to read HEAD: %w", err)
	} else if ok {
		scoped, err := backend.ConfigSection(ConfigSection, branch)
		if err != nil {
			return EffectiveConfig{}, fmt.Errorf("failed to read branch config for %s: %w", branch, err)
		}
		for key, value := range scoped {
			merged[key] = value
		}
	}

	cfg := EffectiveConfig{
		BaseRevision: DefaultBase,
		MarkerPrefix: DefaultMarker,
		ShortIDLen:   DefaultShortIDLen,
	}

	if value, ok := merged[configKeyBase]; ok && value != "" {
		cfg.BaseRevision = value
	}
	if value, ok := merged[configKeyMarker]; ok && value != "" {
		cfg.MarkerPrefix = value
	}
	if value, ok := merged[configKeyRemote]; ok && value != "" {
		cfg.RemoteName = value
	}
	if value, ok := merged[configKeyShortIDLen]; ok && value != "" {
		length, err := strconv.Atoi(value)
		if err != nil || length <= 0 {
			return EffectiveConfig{}, ptterrors.NewConfigurationError(configKeyShortIDLen,
				fmt.Sprintf("%q is not a positive integer", value))
		}
		cfg.ShortIDLen = length
	}

	if overrides.Base != "" {
		cfg.BaseRevision = overrides.Base
	}
	if overrides.Marker != "" {
		cfg.MarkerPrefix = overrides.Marker
	}
	if overrides.Remote != "" {
		cfg.RemoteName = overrides.Remote
	}
	if overrides.ShortIDLen > 0 {
		cfg.ShortIDLen = overrides.ShortIDLen
	}

	return cfg, nil
}
