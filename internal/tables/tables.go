// Package tables holds the pattern tables that drive every detector.
// Tables are loaded once at detector construction and never mutated, so
// concurrent analyses can share them without locking.
package tables

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one named category with its ordered trigger list
type Entry struct {
	Key   string
	Terms []string
}

// Table maps category names to ordered phrase/pattern lists while
// preserving category order. Missing keys return an empty list so a
// partially customized table never breaks a detector.
type Table struct {
	keys   []string
	groups map[string][]string
}

// NewTable builds a table from ordered entries
func NewTable(entries ...Entry) *Table {
	t := &Table{groups: make(map[string][]string, len(entries))}
	for _, e := range entries {
		if _, dup := t.groups[e.Key]; dup {
			continue
		}
		t.keys = append(t.keys, e.Key)
		t.groups[e.Key] = e.Terms
	}
	return t
}

// Keys returns category names in table order
func (t *Table) Keys() []string {
	return t.keys
}

// Terms returns the ordered list for a category, or nil if absent
func (t *Table) Terms(key string) []string {
	return t.groups[key]
}

// LoadTableOrDefault reads a JSON object of {"category": ["term", ...]}
// from path. An empty path, unreadable file, or malformed document falls
// back to def with a warning; table loading is never fatal.
func LoadTableOrDefault(path string, def *Table) *Table {
	if path == "" {
		return def
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load table %s: %v\n", path, err)
		return def
	}
	entries, err := decodeOrderedGroups(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to parse table %s: %v\n", path, err)
		return def
	}
	return NewTable(entries...)
}

// LoadListOrDefault reads a JSON array of strings from path, falling
// back to def on any error.
func LoadListOrDefault(path string, def []string) []string {
	if path == "" {
		return def
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load list %s: %v\n", path, err)
		return def
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to parse list %s: %v\n", path, err)
		return def
	}
	return list
}

// decodeOrderedGroups decodes a JSON object preserving key order.
// encoding/json maps lose document order, and detector output order
// depends on category order, so the object is walked token by token.
func decodeOrderedGroups(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var entries []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}
		var terms []string
		if err := dec.Decode(&terms); err != nil {
			return nil, fmt.Errorf("category %q: %w", key, err)
		}
		entries = append(entries, Entry{Key: key, Terms: terms})
	}
	return entries, nil
}
