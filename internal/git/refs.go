package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// GetRef reads a fully qualified ref. A missing ref is reported through the
// ok return, not as an error.
func (b *Backend) GetRef(name string) (string, bool, error) {
	ref, err := b.repo.Reference(plumbing.ReferenceName(name), true)
	if err != nil {
		if err == plumbing.ErrReferenceNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read ref %s: %w", name, err)
	}
	return ref.Hash().String(), true, nil
}

// UpdateRef creates or force-updates a ref. git update-ref is atomic per
// ref, which is the only durability guarantee the synchronizer relies on.
func (b *Backend) UpdateRef(name, sha string) error {
	_, err := b.runner.Run(context.Background(), "update-ref", name, sha)
	return err
}

// DeleteRef removes a ref.
func (b *Backend) DeleteRef(name string) error {
	_, err := b.runner.Run(context.Background(), "update-ref", "-d", name)
	return err
}

// ListRefs enumerates refs under a prefix, mapping full ref name to hash.
func (b *Backend) ListRefs(prefix string) (map[string]string, error) {
	refs, err := b.repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to get references: %w", err)
	}

	result := make(map[string]string)
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if strings.HasPrefix(name, prefix) {
			result[name] = ref.Hash().String()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}
	return result, nil
}
