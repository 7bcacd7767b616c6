package manifest

import "errors"

var (
	// ErrInvalidDirectory is returned when the root directory
	// is empty, missing or not a directory.
	ErrInvalidDirectory = errors.New("invalid directory")

	// ErrInvalidFlag is returned when the compute hash option
	// does not hold a boolean.
	ErrInvalidFlag = errors.New("compute hash must be a boolean")

	// ErrListPaths is returned when the directory tree cannot
	// be enumerated.
	ErrListPaths = errors.New("listing paths")

	// ErrFileRead is returned when an included file cannot be
	// opened or read while computing the digest.
	ErrFileRead = errors.New("reading file")
)
