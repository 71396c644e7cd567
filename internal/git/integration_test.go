package git_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"ptt.dev/ptt/internal/engine"
	"ptt.dev/ptt/internal/git"
	"ptt.dev/ptt/testhelpers"
)

// Full pipeline against a real repository: marker commits in, mapped
// branches and synchronized refs out.
func TestEngineAgainstRealRepository(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	scene := testhelpers.NewScene(t, nil)
	_, err := scene.Repo.Commit("initial")
	require.NoError(t, err)

	_, err = scene.Repo.Commit("start auth work")
	require.NoError(t, err)
	authHead, err := scene.Repo.CommitWithMarker("finish auth", "@", "auth")
	require.NoError(t, err)

	apiHead, err := scene.Repo.CommitWithMarker("add api", "@", "api")
	require.NoError(t, err)

	backend, err := git.Open(scene.Dir)
	require.NoError(t, err)

	config, err := engine.ResolveConfig(backend, engine.Overrides{Base: "HEAD~3"})
	require.NoError(t, err)
	require.Equal(t, "@", config.MarkerPrefix)

	eng, err := engine.New(backend, config, logger)
	require.NoError(t, err)

	require.Equal(t, []string{"api", "auth"}, eng.Branches().Names())

	api, err := eng.Branch("api")
	require.NoError(t, err)
	require.Equal(t, apiHead, api.Head.Hash)
	require.Len(t, api.Commits, 1)

	auth, err := eng.Branch("auth")
	require.NoError(t, err)
	require.Equal(t, authHead, auth.Head.Hash)
	require.Len(t, auth.Commits, 2)

	// First sync creates the namespace, second converges to a no-op.
	result, err := eng.Sync()
	require.NoError(t, err)
	require.Equal(t, 2, result.Mutations())
	require.Equal(t, apiHead, scene.Repo.Ref("refs/ptt/api"))
	require.Equal(t, authHead, scene.Repo.Ref("refs/ptt/auth"))

	result, err = eng.Sync()
	require.NoError(t, err)
	require.Equal(t, 0, result.Mutations())

	// Amend the tip: the api head moves, auth is untouched.
	require.NoError(t, scene.Repo.RunGitCommand("commit", "--amend", "-m", "add api v2\n\n@api"))
	require.NoError(t, eng.Refresh())
	result, err = eng.Sync()
	require.NoError(t, err)
	require.Equal(t, 1, result.Mutations())
	require.NotEqual(t, apiHead, scene.Repo.Ref("refs/ptt/api"))
	require.Equal(t, authHead, scene.Repo.Ref("refs/ptt/auth"))

	// Local branch operations round-trip against real refs.
	require.NoError(t, eng.CreateLocalBranch("auth", ""))
	head, ok, err := backend.LocalBranchHead("auth")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, authHead, head)

	deleted, err := eng.PruneLocalBranch(context.Background(), "auth", false)
	require.NoError(t, err)
	require.True(t, deleted)
}
