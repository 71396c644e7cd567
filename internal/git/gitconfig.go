package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogitconfig "github.com/go-git/go-git/v5/config"

	ptterrors "ptt.dev/ptt/internal/errors"
)

// ConfigSection reads one section of the layered git configuration
// (system, global, local merged in that order). go-git only returns
// accurate section contents from a fully loaded scoped config, so the
// merged config is primed once and cached; writes invalidate the cache.
func (b *Backend) ConfigSection(section, subsection string) (map[string]string, error) {
	cfg, err := b.scopedConfig()
	if err != nil {
		return nil, err
	}

	raw := cfg.Raw.Section(section)
	options := raw.Options
	if subsection != "" {
		options = raw.Subsection(subsection).Options
	}

	result := make(map[string]string, len(options))
	for _, option := range options {
		result[strings.ToLower(option.Key)] = option.Value
	}
	return result, nil
}

func (b *Backend) scopedConfig() (*gogitconfig.Config, error) {
	if b.config != nil {
		return b.config, nil
	}
	cfg, err := b.repo.ConfigScoped(gogitconfig.SystemScope)
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}
	b.config = cfg
	return cfg, nil
}

// SetConfig writes one key into the repository-local configuration.
func (b *Backend) SetConfig(section, subsection, key, value string) error {
	name := configName(section, subsection, key)
	if _, err := b.runner.Run(context.Background(), "config", "--local", name, value); err != nil {
		return err
	}
	b.config = nil
	return nil
}

// DeleteConfigSection removes an entire section from the repository-local
// configuration. A missing section is a no-op.
func (b *Backend) DeleteConfigSection(section, subsection string) error {
	name := section
	if subsection != "" {
		name = fmt.Sprintf("%s.%s", section, subsection)
	}
	if _, err := b.runner.Run(context.Background(), "config", "--local", "--remove-section", name); err != nil {
		var cmdErr *ptterrors.GitCommandError
		if errors.As(err, &cmdErr) {
			return nil
		}
		return err
	}
	b.config = nil
	return nil
}

func configName(section, subsection, key string) string {
	if subsection != "" {
		return fmt.Sprintf("%s.%s.%s", section, subsection, key)
	}
	return fmt.Sprintf("%s.%s", section, key)
}
