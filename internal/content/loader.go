package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gridgarden/landing/internal/domain"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// EmbeddedPath is the name of the built-in catalog inside EmbeddedFS.
const EmbeddedPath = "site.yaml"

// EmbeddedFS holds the catalog that ships with the binary.
//
//go:embed site.yaml
var EmbeddedFS embed.FS

var validate = validator.New()

// Parse decodes and validates a YAML catalog. Unknown keys are rejected so
// that typos in a hand-edited file surface at load time.
func Parse(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidContent)
		}
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrInvalidContent, err)
	}
	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks struct constraints and cross-field uniqueness rules.
func Validate(site *Site) error {
	if err := validate.Struct(site); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}

	if err := unique("product id", site.Products, func(p Product) string { return p.ID }); err != nil {
		return err
	}
	return unique("partner type id", site.Partners.Types, func(p PartnerType) string { return p.ID })
}

func unique[T any](what string, items []T, key func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		k := key(item)
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: duplicate %s %q", domain.ErrInvalidContent, what, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Load reads and parses the catalog at path on fs.
func Load(fs afero.Fs, path string) (*Site, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", path, err)
	}
	return site, nil
}

// Default returns the embedded catalog.
func Default() (*Site, error) {
	return Load(afero.FromIOFS{FS: EmbeddedFS}, EmbeddedPath)
}

// MustDefault returns the embedded catalog and panics if it is invalid.
// The embedded file is covered by tests, so a failure here is a build defect.
func MustDefault() *Site {
	site, err := Default()
	if err != nil {
		panic(err)
	}
	return site
}
