// Package main provides the manifesto CLI that scans a
// directory tree and writes an HTML5 application cache
// manifest for it.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/byte4ever/manifesto/manifest"
	"github.com/byte4ever/manifesto/output"
)

const (
	keyDirectory   = "directory"
	keyComputeHash = "compute_hash"
	keyOutput      = "output"
	keyFormat      = "format"
	keyCheck       = "check"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "manifesto [directory]",
		Short: "Generate an HTML5 application cache manifest",
		Long: "Scan a directory tree and emit a CACHE MANIFEST " +
			"listing every regular, non-hidden file, with a " +
			"content hash that changes whenever an asset does.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP(
		keyDirectory, "d", manifest.DefaultDirectory,
		"directory to scan",
	)
	flags.Bool("no-hash", false, "omit the # Hash: line")
	flags.StringP(
		keyOutput, "o", "",
		"output file path, may contain {hash}, {count} "+
			"and {dir} (default: stdout)",
	)
	flags.StringP(
		keyFormat, "f", string(output.FormatText),
		"output format: text, json or yaml",
	)
	flags.Bool(
		keyCheck, false,
		"compare with the existing --output file instead "+
			"of writing it",
	)
	flags.String(
		"config", "",
		"config file (default: ./manifesto.yaml or "+
			"~/.config/manifesto/manifesto.yaml)",
	)
	flags.BoolP("verbose", "v", false, "log skipped paths")

	for _, key := range []string{
		keyDirectory, keyOutput, keyFormat, keyCheck,
	} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Sprintf("binding flag %q: %v", key, err))
		}
	}

	return cmd
}

func run(cmd *cobra.Command, args []string, v *viper.Viper) error {
	const errCtx = "manifesto"

	if err := loadConfig(cmd, v); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	cfg, err := buildConfig(cmd, args, v)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	format, err := output.ParseFormat(v.GetString(keyFormat))
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	man, err := manifest.NewGenerator(
		osfs.New("/"), manifest.WithLogger(logger),
	).Generate(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	dest := v.GetString(keyOutput)
	if dest != "" {
		dest = output.Destination(dest, man, cfg.Directory)
	}

	if v.GetBool(keyCheck) {
		if dest == "" {
			return fmt.Errorf(
				"%s: --check requires --output", errCtx,
			)
		}

		diff, err := output.Check(dest, man, format)
		if diff != "" {
			_, _ = io.WriteString(cmd.OutOrStdout(), diff)
		}

		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	if dest == "" {
		if err := output.Encode(
			cmd.OutOrStdout(), man, format,
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	if err := output.WriteFile(dest, man, format); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	logger.Info("manifest written", "path", dest)

	return nil
}

// loadConfig layers the optional config file and the
// MANIFESTO_* environment under the command line flags.
func loadConfig(cmd *cobra.Command, v *viper.Viper) error {
	const errCtx = "loading config"

	v.SetEnvPrefix("MANIFESTO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyComputeHash, true)

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("manifesto")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(configDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// buildConfig resolves the manifest options. A positional
// directory wins over --directory; --no-hash wins over the
// compute_hash setting.
func buildConfig(
	cmd *cobra.Command,
	args []string,
	v *viper.Viper,
) (manifest.Config, error) {
	cfg := manifest.Config{
		Directory:   v.GetString(keyDirectory),
		ComputeHash: computeHash(v),
	}

	if len(args) == 1 {
		cfg.Directory = args[0]
	}

	if noHash, _ := cmd.Flags().GetBool("no-hash"); noHash {
		cfg.ComputeHash = false
	}

	// The generator reads through an osfs rooted at "/".
	if cfg.Directory != "" {
		abs, err := filepath.Abs(cfg.Directory)
		if err != nil {
			return cfg, fmt.Errorf("resolving directory: %w", err)
		}

		cfg.Directory = abs
	}

	return cfg, nil
}

// computeHash returns the raw compute_hash setting, parsing
// strings coming from the environment. Values that are not
// booleans are passed through so validation rejects them.
func computeHash(v *viper.Viper) any {
	raw := v.Get(keyComputeHash)

	if str, ok := raw.(string); ok {
		if parsed, err := strconv.ParseBool(str); err == nil {
			return parsed
		}
	}

	return raw
}

func newLogger(out io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(
		out, &slog.HandlerOptions{Level: level},
	))
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "manifesto")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "manifesto")
	}

	return ".manifesto"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
