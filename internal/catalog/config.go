// Package catalog loads the dimension catalog: the list of named dimensions
// that unitguard gen turns into phantom types and that unitguard vet uses to
// resolve them back to units.
//
// A catalog is a unitguard.yaml file:
//
//	package: dim
//	dimensions:
//	  - name: Velocity
//	    doc: Velocity is length per unit time.
//	    mul: [Length]
//	    div: [Time]
//	  - name: Frequency
//	    powers: {time: -1}
//	  - name: HeatCapacity
//	    alias_of: Entropy
//
// Base dimensions and Scalar are always present and need no entry.
package catalog

import (
	_ "embed"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/unitguard/internal/config"
	"github.com/funvibe/unitguard/internal/diagnostics"

	"gopkg.in/yaml.v3"
)

//go:embed dimensions.yaml
var defaultCatalog []byte

// DefaultPath is the name reported for the embedded catalog.
const DefaultPath = "dimensions.yaml"

// Config is the top-level unitguard.yaml document.
type Config struct {
	// Package is the Go package name of the generated file.
	Package string `yaml:"package,omitempty"`

	// DimensionImport and QuantityImport override the import paths used by
	// generated code. They default to this module's packages.
	DimensionImport string `yaml:"dimension_import,omitempty"`
	QuantityImport  string `yaml:"quantity_import,omitempty"`

	// Dimensions lists derived dimensions. Each entry may only refer to
	// base dimensions and to entries declared before it.
	Dimensions []Def `yaml:"dimensions"`

	path string
}

// Def declares one derived dimension.
type Def struct {
	// Name is the exported Go type name (e.g. "Force").
	Name string `yaml:"name"`

	// Doc becomes the type's doc comment. Defaults to "<Name> is the <powers> dimension."
	Doc string `yaml:"doc,omitempty"`

	// Powers spells the unit out as base -> exponent.
	Powers map[string]int `yaml:"powers,omitempty"`

	// Mul and Div compose the unit from earlier entries: the product of Mul
	// divided by every entry of Div. When Powers is also given, both must agree.
	Mul []string `yaml:"mul,omitempty"`
	Div []string `yaml:"div,omitempty"`

	// AliasOf declares Name as a Go alias of another entry instead of a new type.
	AliasOf string `yaml:"alias_of,omitempty"`
}

// Path is the file the config was read from.
func (c *Config) Path() string { return c.path }

// LoadConfig reads and parses a unitguard.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostics.Wrap(diagnostics.ErrC001, path, fmt.Errorf("reading catalog: %w", err))
	}
	return ParseConfig(data, path)
}

// ParseConfig parses catalog content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, diagnostics.Wrap(diagnostics.ErrC001, path, err)
	}
	cfg.path = path
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// Default returns the catalog compiled into the binary, which is the one
// package dim is generated from.
func Default() *Config {
	cfg, err := ParseConfig(defaultCatalog, DefaultPath)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded %s is invalid: %v", DefaultPath, err))
	}
	return cfg
}

// FindConfig searches for unitguard.yaml starting from dir and walking up
// to parent directories. It returns "" and a nil error when nothing is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range config.ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// validate checks what can be checked without resolving units.
func (c *Config) validate() error {
	if c.Package != "" && !token.IsIdentifier(c.Package) {
		return diagnostics.NewError(diagnostics.ErrC004, c.path, fmt.Sprintf("package %q is not a Go identifier", c.Package))
	}

	seen := make(map[string]bool)
	for _, name := range builtinNames() {
		seen[name] = true
	}
	reserved := make(map[string]bool, len(config.ReservedNames))
	for _, name := range config.ReservedNames {
		reserved[name] = true
	}

	for i, def := range c.Dimensions {
		pos := c.entryPos(i)
		if def.Name == "" {
			return diagnostics.NewError(diagnostics.ErrC004, pos, "name is required")
		}
		if !token.IsIdentifier(def.Name) || !token.IsExported(def.Name) {
			return diagnostics.NewError(diagnostics.ErrC004, pos, fmt.Sprintf("%q is not an exported Go identifier", def.Name))
		}
		if reserved[def.Name] {
			return diagnostics.NewError(diagnostics.ErrC004, pos, fmt.Sprintf("%s is reserved", def.Name))
		}
		if seen[def.Name] {
			return diagnostics.NewError(diagnostics.ErrC004, pos, fmt.Sprintf("duplicate dimension %s", def.Name))
		}
		seen[def.Name] = true

		hasUnit := len(def.Powers) > 0 || len(def.Mul) > 0 || len(def.Div) > 0
		switch {
		case def.AliasOf != "" && hasUnit:
			return diagnostics.NewError(diagnostics.ErrC005, pos, "alias_of cannot be combined with powers, mul or div")
		case def.AliasOf == "" && !hasUnit:
			return diagnostics.NewError(diagnostics.ErrC005, pos, fmt.Sprintf("%s has no powers, mul, div or alias_of", def.Name))
		}
	}

	// Every dimension X also declares X+"Of"; no name may take that spot.
	for i, def := range c.Dimensions {
		base, ok := strings.CutSuffix(def.Name, config.MeasureAliasSuffix)
		if ok && seen[base] {
			return diagnostics.NewError(diagnostics.ErrC004, c.entryPos(i),
				fmt.Sprintf("%s clashes with the measure alias generated for %s", def.Name, base))
		}
	}
	return nil
}

// setDefaults fills in default values.
func (c *Config) setDefaults() {
	if c.Package == "" {
		c.Package = config.DefaultPackage
	}
	if c.DimensionImport == "" {
		c.DimensionImport = config.DimensionImportPath
	}
	if c.QuantityImport == "" {
		c.QuantityImport = config.QuantityImportPath
	}
}

func (c *Config) entryPos(i int) string {
	return fmt.Sprintf("%s: dimensions[%d]", c.path, i)
}
