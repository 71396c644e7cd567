package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	ptterrors "ptt.dev/ptt/internal/errors"
)

func TestEngine(t *testing.T) {
	t.Run("new engine segments from HEAD", func(t *testing.T) {
		eng := newTestEngine(t, stackedBackend(), "")
		require.Equal(t, []string{"feature-y", "feature-x"}, eng.Branches().Names())
	})

	t.Run("unknown branch lookup fails", func(t *testing.T) {
		eng := newTestEngine(t, stackedBackend(), "")

		_, err := eng.Branch("missing")
		require.ErrorIs(t, err, ptterrors.ErrBranchNotFound)
	})

	t.Run("short id truncates to the configured length", func(t *testing.T) {
		eng := newTestEngine(t, stackedBackend(), "")

		require.Equal(t, "0123456789", eng.ShortID("0123456789abcdef"))
		require.Equal(t, "short", eng.ShortID("short"))
	})

	t.Run("sync persists the mapping and converges", func(t *testing.T) {
		backend := stackedBackend()
		eng := newTestEngine(t, backend, "")

		result, err := eng.Sync()
		require.NoError(t, err)
		require.Equal(t, 2, result.Mutations())
		require.Equal(t, "D", backend.refs["refs/ptt/feature-y"])
		require.Equal(t, "C", backend.refs["refs/ptt/feature-x"])

		result, err = eng.Sync()
		require.NoError(t, err)
		require.Equal(t, 0, result.Mutations())
	})

	t.Run("refresh picks up new history", func(t *testing.T) {
		backend := stackedBackend()
		eng := newTestEngine(t, backend, "")

		backend.addCommit("E", "e\n\n@feature-z", "D")
		backend.revs["HEAD"] = "E"

		require.NoError(t, eng.Refresh())
		require.Equal(t, []string{"feature-z", "feature-y", "feature-x"}, eng.Branches().Names())
	})
}
