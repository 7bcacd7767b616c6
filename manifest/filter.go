package manifest

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// Includes reports whether path is a cacheable asset: a
// regular file, not a symlink, whose base name does not
// start with a dot. Paths that cannot be stat'ed are
// excluded.
func Includes(fsys billy.Filesystem, path string) bool {
	info, err := fsys.Lstat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	return !strings.HasPrefix(filepath.Base(path), ".")
}

// NormalizePath rewrites path relative to root with forward
// slashes and a leading slash. A leading "./" on root is
// ignored, so root "./public" and path "/public/file1"
// yield "/file1".
func NormalizePath(root, path string) string {
	rel := strings.TrimPrefix(cleanSlash(path), "/")
	base := strings.TrimPrefix(cleanSlash(root), "/")

	if base != "." && base != "" {
		if rest, ok := strings.CutPrefix(rel, base+"/"); ok {
			rel = rest
		}
	}

	return "/" + rel
}

func cleanSlash(pa string) string {
	return filepath.ToSlash(filepath.Clean(pa))
}
