package manifest

import (
	"fmt"
	"log/slog"

	"github.com/go-git/go-billy/v5"
)

// Steps holds the pipeline stages run by a Generator. Each
// field mirrors the package level function of the same
// name, bound to the generator filesystem.
type Steps struct {
	Validate  func(directory string, computeHash any) error
	ListPaths func(root string) ([]string, error)
	Includes  func(path string) bool
	Normalize func(root, path string) string
	Digest    func(paths []string) (string, error)
}

// Generator produces manifests from a filesystem. It keeps
// no per-run state and may be reused.
type Generator struct {
	steps  Steps
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(gen *Generator) {
		if logger != nil {
			gen.logger = logger
		}
	}
}

// WithSteps replaces the default stages with the non-nil
// fields of override.
func WithSteps(override Steps) Option {
	return func(gen *Generator) {
		if override.Validate != nil {
			gen.steps.Validate = override.Validate
		}

		if override.ListPaths != nil {
			gen.steps.ListPaths = override.ListPaths
		}

		if override.Includes != nil {
			gen.steps.Includes = override.Includes
		}

		if override.Normalize != nil {
			gen.steps.Normalize = override.Normalize
		}

		if override.Digest != nil {
			gen.steps.Digest = override.Digest
		}
	}
}

// NewGenerator returns a Generator reading from fsys.
func NewGenerator(
	fsys billy.Filesystem,
	opts ...Option,
) *Generator {
	gen := &Generator{
		steps:  DefaultSteps(fsys),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(gen)
	}

	return gen
}

// DefaultSteps binds the package level stages to fsys.
func DefaultSteps(fsys billy.Filesystem) Steps {
	return Steps{
		Validate: func(directory string, computeHash any) error {
			return Validate(fsys, directory, computeHash)
		},
		ListPaths: func(root string) ([]string, error) {
			return ListPaths(fsys, root)
		},
		Includes: func(path string) bool {
			return Includes(fsys, path)
		},
		Normalize: NormalizePath,
		Digest: func(paths []string) (string, error) {
			return Digest(fsys, paths)
		},
	}
}

// Generate validates cfg, enumerates cfg.Directory, keeps the
// included files and digests them. The digest is skipped
// when nothing was included or cfg.ComputeHash is false.
func (gen *Generator) Generate(cfg Config) (*Manifest, error) {
	const errCtx = "generating manifest"

	if err := gen.steps.Validate(
		cfg.Directory, cfg.ComputeHash,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	candidates, err := gen.steps.ListPaths(cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var (
		included []string
		paths    []string
	)

	for _, pa := range candidates {
		if !gen.steps.Includes(pa) {
			gen.logger.Debug("skipping path", "path", pa)

			continue
		}

		included = append(included, pa)
		paths = append(
			paths, gen.steps.Normalize(cfg.Directory, pa),
		)
	}

	man := &Manifest{Paths: paths}

	if computeHash, _ := boolValue(cfg.ComputeHash); computeHash &&
		len(included) > 0 {
		man.Hash, err = gen.steps.Digest(included)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	gen.logger.Debug(
		"manifest generated",
		"directory", cfg.Directory,
		"files", len(paths),
		"hash", man.Hash,
	)

	return man, nil
}

// Render runs Generate and returns the manifest lines.
func (gen *Generator) Render(cfg Config) ([]string, error) {
	man, err := gen.Generate(cfg)
	if err != nil {
		return nil, err
	}

	return man.Lines(), nil
}
