package manifest

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
)

// DefaultDirectory is the root scanned when the caller does
// not name one.
const DefaultDirectory = "./public"

// Config holds the options of a single manifest generation.
type Config struct {
	// Directory is the root of the asset tree.
	Directory string

	// ComputeHash toggles the "# Hash:" line. It must hold
	// a bool (or a non-nil *bool); anything else fails
	// validation with ErrInvalidFlag. The loose type lets
	// values decoded from config files or environment
	// reach Validate untouched.
	ComputeHash any
}

// DefaultConfig returns a Config scanning DefaultDirectory
// with hashing enabled.
func DefaultConfig() Config {
	return Config{
		Directory:   DefaultDirectory,
		ComputeHash: true,
	}
}

// Validate checks the options before any enumeration or
// hashing happens.
func Validate(
	fsys billy.Filesystem,
	directory string,
	computeHash any,
) error {
	const errCtx = "validating options"

	if directory == "" {
		return fmt.Errorf(
			"%s: %w: empty path",
			errCtx, ErrInvalidDirectory,
		)
	}

	info, err := fsys.Stat(directory)
	if err != nil {
		return fmt.Errorf(
			"%s: %w: %s: %w",
			errCtx, ErrInvalidDirectory, directory, err,
		)
	}

	if !info.IsDir() {
		return fmt.Errorf(
			"%s: %w: %s is not a directory",
			errCtx, ErrInvalidDirectory, directory,
		)
	}

	if _, ok := boolValue(computeHash); !ok {
		return fmt.Errorf(
			"%s: %w: got %T",
			errCtx, ErrInvalidFlag, computeHash,
		)
	}

	return nil
}

// boolValue reports the boolean held by v and whether v
// holds one at all.
func boolValue(v any) (value bool, ok bool) {
	switch typed := v.(type) {
	case bool:
		return typed, true
	case *bool:
		if typed == nil {
			return false, false
		}

		return *typed, true
	default:
		return false, false
	}
}
