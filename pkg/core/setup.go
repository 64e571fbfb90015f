// pkg/core/setup.go
package core

import (
	"fmt"
	"strings"
)

// Setup accumulates resolved flag categories. It is append-only and
// preserves insertion order; its final contents are the program's sole
// machine-readable output.
type Setup struct {
	keys   []string
	values map[string][]string
}

// NewSetup creates an empty setup accumulator
func NewSetup() *Setup {
	return &Setup{values: make(map[string][]string)}
}

// Set records the tokens for a flag category. Setting an existing key
// replaces its value without changing its position.
func (s *Setup) Set(key string, tokens []string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = tokens
}

// Get returns the tokens recorded for a key
func (s *Setup) Get(key string) ([]string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Lines renders the accumulator as key=value lines in insertion order.
// The format is parsed by the surrounding build system and must remain
// stable: key, '=', space-joined tokens.
func (s *Setup) Lines() []string {
	lines := make([]string, 0, len(s.keys))
	for _, k := range s.keys {
		lines = append(lines, fmt.Sprintf("%s=%s", k, strings.Join(s.values[k], " ")))
	}
	return lines
}
