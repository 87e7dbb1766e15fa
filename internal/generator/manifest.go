package generator

import (
	"fmt"
	"go/token"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}

// Manifest describes one generated file of literal markers.
type Manifest struct {
	// Package is the package clause of the generated file.
	Package string `yaml:"package" validate:"required"`
	// Output is the target path. The generate command treats an empty
	// value as lits_gen.go next to the manifest.
	Output string `yaml:"output"`
	// Literals lists the markers to generate, in output order.
	Literals []Literal `yaml:"literals" validate:"required,min=1,dive"`
}

// Literal is one named fixed value.
type Literal struct {
	Name string `yaml:"name" validate:"required"`
	Kind string `yaml:"kind" validate:"required,oneof=string float int bool char"`
	// Value holds whatever scalar the YAML node carried; render checks
	// that it fits the declared kind.
	Value interface{} `yaml:"value"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses and validates manifest bytes.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (m Manifest) validate() error {
	if err := getValidator().Struct(m); err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("invalid manifest: package %q is not a valid identifier", m.Package)
	}

	seen := make(map[string]bool, len(m.Literals))
	for _, l := range m.Literals {
		if err := l.check(); err != nil {
			return fmt.Errorf("invalid manifest: %w", err)
		}
		if seen[l.Name] {
			return fmt.Errorf("invalid manifest: duplicate literal %s", l.Name)
		}
		seen[l.Name] = true
	}
	return nil
}

func (l Literal) check() error {
	if !token.IsIdentifier(l.Name) {
		return fmt.Errorf("literal name %q is not a valid identifier", l.Name)
	}
	r, _ := utf8.DecodeRuneInString(l.Name)
	if !unicode.IsUpper(r) {
		return fmt.Errorf("literal name %q must be exported", l.Name)
	}
	_, _, err := l.render()
	return err
}

// render returns the constructor expression for the literal and the
// form its value takes in doc comments.
func (l Literal) render() (expr, doc string, err error) {
	switch l.Kind {
	case "string":
		s, ok := l.Value.(string)
		if !ok {
			return "", "", fmt.Errorf("literal %s: kind string needs a string value, got %T", l.Name, l.Value)
		}
		return fmt.Sprintf("lit.Str(%q)", s), strconv.Quote(s), nil

	case "float":
		f, ok := floatValue(l.Value)
		if !ok {
			return "", "", fmt.Errorf("literal %s: kind float needs a number value, got %T", l.Name, l.Value)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", "", fmt.Errorf("literal %s: float value must be finite", l.Name)
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		return fmt.Sprintf("lit.Float(%s)", s), s, nil

	case "int":
		i, ok := intValue(l.Value)
		if !ok {
			return "", "", fmt.Errorf("literal %s: kind int needs an integer value, got %v", l.Name, l.Value)
		}
		s := strconv.FormatInt(i, 10)
		return fmt.Sprintf("lit.Int(%s)", s), s, nil

	case "bool":
		b, ok := l.Value.(bool)
		if !ok {
			return "", "", fmt.Errorf("literal %s: kind bool needs a bool value, got %T", l.Name, l.Value)
		}
		s := strconv.FormatBool(b)
		return fmt.Sprintf("lit.Bool(%s)", s), s, nil

	case "char":
		s, ok := l.Value.(string)
		if !ok {
			return "", "", fmt.Errorf("literal %s: kind char needs a one-rune string value, got %T", l.Name, l.Value)
		}
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
			return "", "", fmt.Errorf("literal %s: kind char needs exactly one rune, got %q", l.Name, s)
		}
		q := strconv.QuoteRune(r)
		return fmt.Sprintf("lit.Char(%s)", q), q, nil
	}

	return "", "", fmt.Errorf("literal %s: unknown kind %q", l.Name, l.Kind)
}

func intValue(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), true
		}
	}
	return 0, false
}

func floatValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
