package cli_test

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ptt.dev/ptt/testhelpers"
)

// runPTT runs the compiled binary inside the scene's repository and returns
// combined output.
func runPTT(t *testing.T, scene *testhelpers.Scene, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(testhelpers.GitPTTBinary(t), args...)
	cmd.Dir = scene.Dir
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// markedScene builds a repository with two mapped branches on top of an
// initial base commit and records the base in git config:
// base <- "start auth" <- "finish auth"(@auth) <- "add api"(@api)
func markedScene(t *testing.T) (*testhelpers.Scene, map[string]string) {
	t.Helper()
	scene := testhelpers.NewScene(t, nil)

	base, err := scene.Repo.Commit("initial")
	require.NoError(t, err)
	_, err = scene.Repo.Commit("start auth")
	require.NoError(t, err)
	authHead, err := scene.Repo.CommitWithMarker("finish auth", "@", "auth")
	require.NoError(t, err)
	apiHead, err := scene.Repo.CommitWithMarker("add api", "@", "api")
	require.NoError(t, err)

	require.NoError(t, scene.Repo.SetConfig("ptt.base", base))

	return scene, map[string]string{"base": base, "auth": authHead, "api": apiHead}
}

func TestLsCommand(t *testing.T) {
	t.Run("lists mapped branches", func(t *testing.T) {
		scene, _ := markedScene(t)

		output, err := runPTT(t, scene, "ls")
		require.NoError(t, err, "ls failed: %s", output)
		require.Contains(t, output, "auth")
		require.Contains(t, output, "api")
	})

	t.Run("shows commits with -c", func(t *testing.T) {
		scene, _ := markedScene(t)

		output, err := runPTT(t, scene, "ls", "-c")
		require.NoError(t, err, "ls -c failed: %s", output)
		require.Contains(t, output, "finish auth")
		require.Contains(t, output, "start auth")
		require.Contains(t, output, "add api")
	})

	t.Run("synchronizes the ref namespace as a side effect", func(t *testing.T) {
		scene, shas := markedScene(t)

		output, err := runPTT(t, scene, "ls")
		require.NoError(t, err, "ls failed: %s", output)

		require.Equal(t, shas["auth"], scene.Repo.Ref("refs/ptt/auth"))
		require.Equal(t, shas["api"], scene.Repo.Ref("refs/ptt/api"))
	})

	t.Run("unknown branch argument fails", func(t *testing.T) {
		scene, _ := markedScene(t)

		output, err := runPTT(t, scene, "ls", "nope")
		require.Error(t, err)
		require.Contains(t, output, "nope")
	})
}

func TestHeadCommand(t *testing.T) {
	scene, shas := markedScene(t)

	output, err := runPTT(t, scene, "head", "auth")
	require.NoError(t, err, "head failed: %s", output)

	line := strings.TrimSpace(output)
	require.Equal(t, shas["auth"]+" auth", line)
}

func TestBranchCommand(t *testing.T) {
	t.Run("creates a local branch at the mapped head", func(t *testing.T) {
		scene, shas := markedScene(t)

		output, err := runPTT(t, scene, "branch", "auth")
		require.NoError(t, err, "branch failed: %s", output)
		require.Equal(t, shas["auth"], scene.Repo.Ref("refs/heads/auth"))
	})

	t.Run("creates all branches with -a", func(t *testing.T) {
		scene, shas := markedScene(t)

		output, err := runPTT(t, scene, "branch", "-a")
		require.NoError(t, err, "branch -a failed: %s", output)
		require.Equal(t, shas["auth"], scene.Repo.Ref("refs/heads/auth"))
		require.Equal(t, shas["api"], scene.Repo.Ref("refs/heads/api"))
	})

	t.Run("existing branch requires force", func(t *testing.T) {
		scene, shas := markedScene(t)
		require.NoError(t, scene.Repo.RunGitCommand("branch", "auth", shas["base"]))

		_, err := runPTT(t, scene, "branch", "auth")
		require.Error(t, err)

		output, err := runPTT(t, scene, "branch", "-f", "auth")
		require.NoError(t, err, "branch -f failed: %s", output)
		require.Equal(t, shas["auth"], scene.Repo.Ref("refs/heads/auth"))
	})
}

func TestCheckoutCommand(t *testing.T) {
	scene, _ := markedScene(t)

	output, err := runPTT(t, scene, "checkout", "auth")
	require.NoError(t, err, "checkout failed: %s", output)

	current, err := scene.Repo.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "HEAD")
	require.NoError(t, err)
	require.Equal(t, "auth", current)
}

func TestPruneCommand(t *testing.T) {
	scene, shas := markedScene(t)
	require.NoError(t, scene.Repo.RunGitCommand("branch", "auth", shas["auth"]))

	output, err := runPTT(t, scene, "prune")
	require.NoError(t, err, "prune failed: %s", output)
	require.Empty(t, scene.Repo.Ref("refs/heads/auth"))
}

func TestPushAndCheckCommands(t *testing.T) {
	scene, shas := markedScene(t)
	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.SetConfig("ptt.remote", "origin"))

	t.Run("check fails before anything is pushed", func(t *testing.T) {
		output, err := runPTT(t, scene, "check")
		require.Error(t, err)
		require.Contains(t, output, "absent")
	})

	t.Run("push publishes every mapped branch", func(t *testing.T) {
		output, err := runPTT(t, scene, "push")
		require.NoError(t, err, "push failed: %s", output)

		remote, err := scene.Repo.RunGitCommandAndGetOutput("ls-remote", "--heads", "origin")
		require.NoError(t, err)
		require.Contains(t, remote, shas["auth"])
		require.Contains(t, remote, shas["api"])
	})

	t.Run("check succeeds once in sync", func(t *testing.T) {
		output, err := runPTT(t, scene, "check")
		require.NoError(t, err, "check failed: %s", output)
		require.Contains(t, output, "in sync")
	})

	t.Run("delete removes remote branches", func(t *testing.T) {
		output, err := runPTT(t, scene, "delete", "--yes", "api")
		require.NoError(t, err, "delete failed: %s", output)

		remote, err := scene.Repo.RunGitCommandAndGetOutput("ls-remote", "--heads", "origin")
		require.NoError(t, err)
		require.NotContains(t, remote, "refs/heads/api")
		require.Contains(t, remote, "refs/heads/auth")
	})
}

func TestDeleteLocalCommand(t *testing.T) {
	t.Run("deletes a merged local branch", func(t *testing.T) {
		scene, shas := markedScene(t)
		require.NoError(t, scene.Repo.RunGitCommand("branch", "auth", shas["auth"]))

		output, err := runPTT(t, scene, "delete", "--local", "--yes", "auth")
		require.NoError(t, err, "delete --local failed: %s", output)
		require.Empty(t, scene.Repo.Ref("refs/heads/auth"))
	})

	t.Run("refuses an unmerged local branch without force", func(t *testing.T) {
		scene, shas := markedScene(t)
		require.NoError(t, scene.Repo.RunGitCommand("branch", "auth", shas["auth"]))
		require.NoError(t, scene.Repo.RunGitCommand("checkout", "auth"))
		_, err := scene.Repo.Commit("diverging work")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.RunGitCommand("checkout", "master"))

		_, err = runPTT(t, scene, "delete", "--local", "--yes", "auth")
		require.Error(t, err)

		output, err := runPTT(t, scene, "delete", "--local", "--yes", "-f", "auth")
		require.NoError(t, err, "delete --local -f failed: %s", output)
		require.Empty(t, scene.Repo.Ref("refs/heads/auth"))
	})
}

func TestStatsCommand(t *testing.T) {
	scene, _ := markedScene(t)

	output, err := runPTT(t, scene, "stats")
	require.NoError(t, err, "stats failed: %s", output)
	require.Contains(t, output, "auth")
	require.Contains(t, output, "api")
}

func TestRestackCommand(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	base, err := scene.Repo.Commit("initial")
	require.NoError(t, err)
	_, err = scene.Repo.CommitWithMarker("auth work", "@", "auth")
	require.NoError(t, err)
	_, err = scene.Repo.CommitFile("api.txt", "api\n", "api work\n\n@api")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.SetConfig("ptt.base", base))

	output, err := runPTT(t, scene, "restack", "api", base)
	require.NoError(t, err, "restack failed: %s", output)

	// The rewritten head is printed and now sits directly on the base.
	newHead := strings.Fields(strings.TrimSpace(output))[0]
	parent, err := scene.Repo.RunGitCommandAndGetOutput("rev-parse", newHead+"^")
	require.NoError(t, err)
	require.Equal(t, base, parent)
}

func TestVersionCommand(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	output, err := runPTT(t, scene, "version")
	require.NoError(t, err, "version failed: %s", output)
	require.Contains(t, output, "git-ptt")
}

func TestFailsOutsideRepository(t *testing.T) {
	cmd := exec.Command(testhelpers.GitPTTBinary(t), "ls")
	cmd.Dir = t.TempDir()
	output, err := cmd.CombinedOutput()
	require.Error(t, err, "expected failure, got: %s", string(output))
}
