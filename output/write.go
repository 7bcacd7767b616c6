package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/manifesto/manifest"
)

var (
	// ErrStale is returned by Check when the manifest on disk
	// differs from the generated one.
	ErrStale = errors.New("manifest is stale")

	// ErrMissing is returned by Check when there is no
	// manifest on disk.
	ErrMissing = errors.New("manifest is missing")
)

// Destination substitutes {hash}, {count} and {dir} in
// pattern. {dir} is the base name of root. Unknown
// placeholders are preserved as-is.
func Destination(
	pattern string,
	man *manifest.Manifest,
	root string,
) string {
	return fasttemplate.ExecuteStringStd(
		pattern, "{", "}",
		map[string]interface{}{
			"hash":  man.Hash,
			"count": strconv.Itoa(len(man.Paths)),
			"dir":   filepath.Base(filepath.Clean(root)),
		},
	)
}

// WriteFile encodes man into path. The content is written
// to a temporary sibling first and renamed over path, so
// readers never observe a partial manifest.
func WriteFile(
	path string,
	man *manifest.Manifest,
	format Format,
) error {
	const errCtx = "writing manifest"

	var buf bytes.Buffer

	if err := Encode(&buf, man, format); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	fi, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-")
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	tmp := fi.Name()

	if err := writeAndClose(fi, buf.Bytes()); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func writeAndClose(fi *os.File, data []byte) error {
	if _, err := fi.Write(data); err != nil {
		_ = fi.Close()
		return err
	}

	if err := fi.Chmod(0o644); err != nil {
		_ = fi.Close()
		return err
	}

	if err := fi.Sync(); err != nil {
		_ = fi.Close()
		return err
	}

	return fi.Close()
}

// Check compares the manifest stored at path with man. It
// returns ErrMissing when path does not exist and ErrStale
// together with a unified diff when the contents differ.
func Check(
	path string,
	man *manifest.Manifest,
	format Format,
) (string, error) {
	const errCtx = "checking manifest"

	current, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%s: %w: %s", errCtx, ErrMissing, path)
	}

	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	var fresh bytes.Buffer

	if err := Encode(&fresh, man, format); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	if bytes.Equal(current, fresh.Bytes()) {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(fresh.String()),
		FromFile: path,
		ToFile:   "generated",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return diff, fmt.Errorf("%s: %w: %s", errCtx, ErrStale, path)
}
