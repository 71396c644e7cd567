package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ptt.dev/ptt/internal/git"
	"ptt.dev/ptt/testhelpers"
)

func TestRemote(t *testing.T) {
	ctx := context.Background()

	scene := testhelpers.NewScene(t, nil)
	sha, err := scene.Repo.Commit("initial")
	require.NoError(t, err)
	_, err = scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	backend, err := git.Open(scene.Dir)
	require.NoError(t, err)

	t.Run("has remote", func(t *testing.T) {
		ok, err := backend.HasRemote("origin")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = backend.HasRemote("upstream")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("remote URL", func(t *testing.T) {
		url, err := backend.RemoteURL("origin")
		require.NoError(t, err)
		require.NotEmpty(t, url)

		_, err = backend.RemoteURL("upstream")
		require.Error(t, err)
	})

	t.Run("push publishes a commit under a branch name", func(t *testing.T) {
		require.NoError(t, backend.PushCommit(ctx, "origin", sha, "feature-x"))

		heads, err := backend.RemoteHeads(ctx, "origin")
		require.NoError(t, err)
		require.Equal(t, sha, heads["feature-x"])
	})

	t.Run("force push rewinds the remote branch", func(t *testing.T) {
		newer, err := scene.Repo.Commit("newer")
		require.NoError(t, err)

		require.NoError(t, backend.PushCommit(ctx, "origin", newer, "feature-x"))
		require.NoError(t, backend.PushCommit(ctx, "origin", sha, "feature-x"))

		heads, err := backend.RemoteHeads(ctx, "origin")
		require.NoError(t, err)
		require.Equal(t, sha, heads["feature-x"])
	})

	t.Run("delete removes the remote branch", func(t *testing.T) {
		require.NoError(t, backend.PushCommit(ctx, "origin", sha, "doomed"))
		require.NoError(t, backend.DeleteRemoteBranch(ctx, "origin", "doomed"))

		heads, err := backend.RemoteHeads(ctx, "origin")
		require.NoError(t, err)
		_, ok := heads["doomed"]
		require.False(t, ok)
	})
}
