// Package universe resolves the list of symbols a screening run covers.
package universe

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a universe file lists no symbols.
var ErrEmpty = errors.New("universe has no symbols")

// File is the YAML layout of a universe file:
//
//	name: banks
//	symbols: [COMI, CIEB, ADIB]
type File struct {
	Name    string   `yaml:"name"`
	Symbols []string `yaml:"symbols"`
}

// Default returns a copy of the built-in EGX universe.
func Default() []string {
	out := make([]string, len(egxSymbols))
	copy(out, egxSymbols)
	return out
}

// LoadFile reads a YAML universe file. Symbols are trimmed, upper-cased and
// de-duplicated, keeping their first position.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read universe file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse universe file %s: %w", path, err)
	}

	symbols := Normalize(f.Symbols)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return symbols, nil
}

// Resolve returns the symbols of the file at path, or Default when path is empty.
func Resolve(path string) ([]string, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Normalize trims, upper-cases and de-duplicates symbols, dropping blanks.
func Normalize(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
