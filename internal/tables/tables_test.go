package tables

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewTable_PreservesOrder(t *testing.T) {
	table := NewTable(
		Entry{Key: "zebra", Terms: []string{"z"}},
		Entry{Key: "alpha", Terms: []string{"a"}},
		Entry{Key: "mike", Terms: []string{"m"}},
	)

	keys := table.Keys()
	want := []string{"zebra", "alpha", "mike"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Expected key %q at position %d, got %q", k, i, keys[i])
		}
	}
}

func TestNewTable_DuplicateKeysKeepFirst(t *testing.T) {
	table := NewTable(
		Entry{Key: "a", Terms: []string{"first"}},
		Entry{Key: "a", Terms: []string{"second"}},
	)

	if len(table.Keys()) != 1 {
		t.Errorf("Expected 1 key, got %d", len(table.Keys()))
	}
	if terms := table.Terms("a"); len(terms) != 1 || terms[0] != "first" {
		t.Errorf("Expected first entry to win, got %v", terms)
	}
}

func TestTable_MissingKey(t *testing.T) {
	table := NewTable(Entry{Key: "a", Terms: []string{"x"}})

	if terms := table.Terms("missing"); terms != nil {
		t.Errorf("Expected nil for missing key, got %v", terms)
	}
}

func TestLoadTableOrDefault_MissingFile(t *testing.T) {
	def := NewTable(Entry{Key: "a", Terms: []string{"x"}})

	got := LoadTableOrDefault(filepath.Join(t.TempDir(), "nope.json"), def)
	if got != def {
		t.Error("Expected default table when file is missing")
	}

	if got := LoadTableOrDefault("", def); got != def {
		t.Error("Expected default table for empty path")
	}
}

func TestLoadTableOrDefault_OrderedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	content := `{"second": ["b"], "first": ["a"], "third": ["c"]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	table := LoadTableOrDefault(path, NewTable())

	keys := table.Keys()
	want := []string{"second", "first", "third"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Expected key %q at position %d, got %q", k, i, keys[i])
		}
	}
	if terms := table.Terms("first"); len(terms) != 1 || terms[0] != "a" {
		t.Errorf("Expected terms [a] for key first, got %v", terms)
	}
}

func TestLoadTableOrDefault_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`["not", "an", "object"]`), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	def := NewTable(Entry{Key: "a", Terms: []string{"x"}})
	if got := LoadTableOrDefault(path, def); got != def {
		t.Error("Expected default table for malformed file")
	}
}

func TestLoadListOrDefault(t *testing.T) {
	def := []string{"fallback"}

	if got := LoadListOrDefault("", def); len(got) != 1 || got[0] != "fallback" {
		t.Errorf("Expected default list for empty path, got %v", got)
	}

	path := filepath.Join(t.TempDir(), "list.json")
	if err := os.WriteFile(path, []byte(`["one", "two"]`), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	got := LoadListOrDefault(path, def)
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("Expected [one two], got %v", got)
	}
}

func TestCompileWords_WholeWordOnly(t *testing.T) {
	m := CompileWords([]string{"all"})

	if matches := m.Find("tall buildings fall over"); len(matches) != 0 {
		t.Errorf("Expected no matches inside larger words, got %v", matches)
	}

	matches := m.Find("All of it, all the time")
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[0].Text != "All" || matches[0].Span.Start != 0 || matches[0].Span.End != 3 {
		t.Errorf("Unexpected first match: %+v", matches[0])
	}
}

func TestMatcher_FindOrder(t *testing.T) {
	// Pattern order first, then offset order within a pattern
	m := CompileWords([]string{"beta", "alpha"})

	matches := m.Find("alpha beta alpha")
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(matches))
	}
	if matches[0].Text != "beta" {
		t.Errorf("Expected beta first (pattern order), got %q", matches[0].Text)
	}
	if matches[1].Text != "alpha" || matches[1].Span.Start != 0 {
		t.Errorf("Expected alpha at offset 0 second, got %+v", matches[1])
	}
	if matches[2].Span.Start != 11 {
		t.Errorf("Expected alpha at offset 11 third, got %+v", matches[2])
	}
}

func TestCompileRegexes_SkipsInvalid(t *testing.T) {
	m := CompileRegexes([]string{`valid`, `(unclosed`})

	if matches := m.Find("a valid pattern"); len(matches) != 1 {
		t.Errorf("Expected 1 match from the valid pattern, got %d", len(matches))
	}
}

func TestMatcher_CountMatching(t *testing.T) {
	m := CompileWords([]string{"cat", "dog", "bird"})

	if n := m.CountMatching("the cat and the dog and the cat"); n != 2 {
		t.Errorf("Expected 2 patterns matching, got %d", n)
	}
	if n := m.CountMatching("nothing here"); n != 0 {
		t.Errorf("Expected 0 patterns matching, got %d", n)
	}
}

func TestMatcher_Any(t *testing.T) {
	m := CompileWords([]string{"cat"})

	if !m.Any("a cat sat") {
		t.Error("Expected Any to report true")
	}
	if m.Any("a dog sat") {
		t.Error("Expected Any to report false")
	}
}
