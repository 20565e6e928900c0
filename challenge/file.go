package challenge

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a challenge-set file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat resolves a format name; "yml" is read as yaml.
// Errors: ErrUnsupportedFormat.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("format %q: %w", name, ErrUnsupportedFormat)
	}
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode reads a set in format f. Unknown fields are rejected for YAML and
// JSON.
func Decode(r io.Reader, f Format) (*Set, error) {
	var set Set
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&set); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&set)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to decode TOML: unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&set); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("format %q: %w", f, ErrUnsupportedFormat)
	}

	return &set, nil
}

// Encode writes set in format f.
func Encode(w io.Writer, f Format, set *Set) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(set); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(set); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(set); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q: %w", f, ErrUnsupportedFormat)
	}
}

// Load reads and validates the set stored at path; the extension selects
// the format.
func Load(path string) (*Set, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open challenge set: %w", err)
	}
	defer file.Close()

	set, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid challenge set %s: %w", path, err)
	}

	return set, nil
}

// Save writes set to path in the format chosen by its extension, creating
// parent directories as needed.
func Save(path string, set *Set) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create challenge set file: %w", err)
	}
	if err = Encode(file, f, set); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
