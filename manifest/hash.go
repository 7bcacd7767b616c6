package manifest

import (
	"crypto/md5" //nolint:gosec // cache busting, not security
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/go-git/go-billy/v5"
)

// Digest streams the contents of paths, in order, through a
// single MD5 accumulator and returns the lowercase hex sum.
// Any unreadable file aborts the computation.
func Digest(
	fsys billy.Filesystem,
	paths []string,
) (string, error) {
	const errCtx = "computing digest"

	ha := md5.New() //nolint:gosec // cache busting, not security

	for _, pa := range paths {
		if err := copyFile(fsys, ha, pa); err != nil {
			return "", fmt.Errorf(
				"%s: %w: %s: %w",
				errCtx, ErrFileRead, pa, err,
			)
		}
	}

	return hex.EncodeToString(ha.Sum(nil)), nil
}

// copyFile feeds the file at pa into ha and closes it
// before returning.
func copyFile(
	fsys billy.Filesystem,
	ha hash.Hash,
	pa string,
) (retErr error) {
	fi, err := fsys.Open(pa)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = closeErr
		}
	}()

	_, err = io.Copy(ha, fi)

	return err
}
