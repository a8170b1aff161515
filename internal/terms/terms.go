// Package terms serves the glossary behind /info. Definitions live in
// an embedded YAML file and are parsed once per process.
package terms

import (
	_ "embed"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed terms.yaml
var rawDefinitions []byte

// Dictionary maps term names to their definitions.
// Lookups are case-insensitive.
type Dictionary struct {
	names       []string
	definitions map[string]string
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// Default returns the process-wide dictionary, parsing the embedded
// definitions on first use.
func Default() (*Dictionary, error) {
	defaultOnce.Do(func() {
		defaultDict, defaultErr = Parse(rawDefinitions)
	})
	return defaultDict, defaultErr
}

// Parse builds a Dictionary from YAML data (term -> definition).
func Parse(data []byte) (*Dictionary, error) {
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "parse term definitions")
	}
	if len(entries) == 0 {
		return nil, errors.New("term definitions are empty")
	}

	d := &Dictionary{
		names:       make([]string, 0, len(entries)),
		definitions: make(map[string]string, len(entries)),
	}
	for name, def := range entries {
		d.names = append(d.names, name)
		d.definitions[strings.ToLower(name)] = strings.TrimSpace(def)
	}
	sort.Strings(d.names)
	return d, nil
}

// Lookup returns the definition for a term, ignoring case.
func (d *Dictionary) Lookup(term string) (string, bool) {
	def, ok := d.definitions[strings.ToLower(strings.TrimSpace(term))]
	return def, ok
}

// Terms returns all term names, sorted.
func (d *Dictionary) Terms() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}
