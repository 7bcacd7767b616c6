package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/byte4ever/manifesto/manifest"
)

// Format selects the manifest encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for unsupported formats.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat maps a user supplied name to a Format. An
// empty name selects FormatText.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Document is the structured form of a manifest used by the
// JSON and YAML encodings.
type Document struct {
	Generator string   `json:"generator" yaml:"generator"`
	Hash      string   `json:"hash,omitempty" yaml:"hash,omitempty"`
	Files     []string `json:"files" yaml:"files"`
}

// NewDocument converts man into a Document.
func NewDocument(man *manifest.Manifest) Document {
	files := make([]string, len(man.Paths))
	copy(files, man.Paths)

	return Document{
		Generator: strings.TrimPrefix(
			manifest.GeneratorComment, "# ",
		),
		Hash:  man.Hash,
		Files: files,
	}
}

// Encode writes man to out in the given format.
func Encode(
	out io.Writer,
	man *manifest.Manifest,
	format Format,
) error {
	const errCtx = "encoding manifest"

	switch format {
	case FormatText:
		if _, err := io.WriteString(
			out, strings.Join(man.Lines(), ""),
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		if err := enc.Encode(NewDocument(man)); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	case FormatYAML:
		buf, err := yaml.Marshal(NewDocument(man))
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		if _, err := out.Write(buf); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	default:
		return fmt.Errorf(
			"%s: %w: %q", errCtx, ErrUnknownFormat, format,
		)
	}

	return nil
}
