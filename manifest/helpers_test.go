package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// memTree returns an in-memory filesystem holding files,
// keyed by absolute path.
func memTree(
	tb testing.TB,
	files map[string]string,
) billy.Filesystem {
	tb.Helper()

	fsys := memfs.New()
	require.NoError(tb, fsys.MkdirAll("/public", 0o755))

	for pa, content := range files {
		require.NoError(
			tb,
			util.WriteFile(fsys, pa, []byte(content), 0o644),
		)
	}

	return fsys
}

// diskTree creates files under a temporary directory and
// returns an osfs rooted there.
func diskTree(
	tb testing.TB,
	files map[string]string,
) (billy.Filesystem, string) {
	tb.Helper()

	dir := tb.TempDir()
	require.NoError(
		tb,
		os.MkdirAll(filepath.Join(dir, "public"), 0o755),
	)

	for pa, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(pa))
		require.NoError(
			tb, os.MkdirAll(filepath.Dir(full), 0o755),
		)
		require.NoError(
			tb, os.WriteFile(full, []byte(content), 0o600),
		)
	}

	return osfs.New(dir), dir
}

// symlink creates link pointing at target inside dir.
func symlink(tb testing.TB, dir, target, link string) {
	tb.Helper()

	require.NoError(
		tb,
		os.Symlink(
			filepath.Join(dir, filepath.FromSlash(target)),
			filepath.Join(dir, filepath.FromSlash(link)),
		),
	)
}
