package style

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/cutlinear/pkg/errors"
)

// SupportedMajor is the document version major this package reads.
const SupportedMajor = "v1"

// Format selects the document encoding.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	if f == TOML {
		return "toml"
	}
	return "yaml"
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, true
	case ".toml":
		return TOML, true
	default:
		return YAML, false
	}
}

// Load reads and validates a document. A missing name is filled in from the
// module owning the file's directory, if any.
func Load(path string) (*Document, error) {
	format, ok := FormatFor(path)
	if !ok {
		return nil, &errors.LayoutError{
			Op:   "style.Load",
			Kind: errors.KindParsing,
			Path: path,
			Err:  fmt.Errorf("unsupported extension %q", filepath.Ext(path)),
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.LayoutError{Op: "style.Load", Kind: errors.KindConfig, Path: path, Err: err}
	}
	doc, err := Decode(data, format)
	if err != nil {
		if le, ok := err.(*errors.LayoutError); ok {
			le.Path = path
			return nil, le
		}
		return nil, err
	}
	if doc.Name == "" {
		doc.Name = defaultName(filepath.Dir(path), path)
	}
	return doc, nil
}

// Decode parses a document from memory and checks its version.
func Decode(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(data)).Decode(doc)
	default:
		err = yaml.Unmarshal(data, doc)
	}
	if err != nil {
		return nil, &errors.LayoutError{
			Op:   "style.Decode",
			Kind: errors.KindParsing,
			Err:  fmt.Errorf("failed to parse %s: %w", format, err),
		}
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkVersion accepts an empty version or any v1.x.y, with or without
// the leading "v".
func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	canonical := v
	if !strings.HasPrefix(canonical, "v") {
		canonical = "v" + canonical
	}
	if !semver.IsValid(canonical) {
		return &errors.LayoutError{
			Op:   "style.Decode",
			Kind: errors.KindConfig,
			Path: "version",
			Err:  fmt.Errorf("invalid version %q", v),
		}
	}
	if semver.Major(canonical) != SupportedMajor {
		return &errors.LayoutError{
			Op:   "style.Decode",
			Kind: errors.KindConfig,
			Path: "version",
			Err:  fmt.Errorf("unsupported version %s, want %s.x", v, SupportedMajor),
		}
	}
	return nil
}

// defaultName derives a name from the enclosing Go module, falling back to
// the file name without its extension.
func defaultName(dir, path string) string {
	if root, err := findModuleRoot(dir); err == nil {
		data, err := os.ReadFile(filepath.Join(root, "go.mod"))
		if err == nil {
			if modPath := modfile.ModulePath(data); modPath != "" {
				prefix, _, ok := module.SplitPathVersion(modPath)
				if !ok {
					prefix = modPath
				}
				return filepath.Base(prefix)
			}
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func findModuleRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(abs, "go.mod")); err == nil {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("go.mod not found from %s", dir)
		}
		abs = parent
	}
}
