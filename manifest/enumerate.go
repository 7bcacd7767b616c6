package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ListPaths returns every entry below root, recursively, in
// lexical order per directory. The root itself is not
// listed. A symlinked root is followed; symlinked
// directories below it are listed but not descended into.
// Entries are not filtered by type or name.
func ListPaths(
	fsys billy.Filesystem,
	root string,
) ([]string, error) {
	const errCtx = "listing paths"

	// ReadDir resolves the root the same way Validate's Stat
	// does; util.Walk alone would Lstat a symlinked root.
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: %w: %s: %w",
			errCtx, ErrListPaths, filepath.ToSlash(root), err,
		)
	}

	var paths []string

	collect := func(pa string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		paths = append(paths, pa)

		return nil
	}

	for _, entry := range entries {
		if err := util.Walk(
			fsys, filepath.Join(root, entry.Name()), collect,
		); err != nil {
			return nil, fmt.Errorf(
				"%s: %w: %s: %w",
				errCtx, ErrListPaths, filepath.ToSlash(root), err,
			)
		}
	}

	return paths, nil
}
