package compiler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/turing/pkg/dsl"
)

// Format names a machine file syntax.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "tm":
		return FormatText, nil
	case "yaml", "yml", "json":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown machine format %q", s)
}

// FormatFor picks the format from the file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML
	default:
		return FormatText
	}
}

// Parse reads src in the given format.
func Parse(src io.Reader, format Format) (*dsl.Builder[string], error) {
	if format == FormatYAML {
		return ParseYAML(src)
	}
	return ParseText(src)
}

// ParseFile opens path and parses it according to its extension.
func ParseFile(path string) (*dsl.Builder[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open machine file: %w", err)
	}
	defer f.Close()

	return Parse(f, FormatFor(path))
}
