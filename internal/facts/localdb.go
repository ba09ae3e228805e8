package facts

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var punctuationRe = regexp.MustCompile(`[^\w\s]`)

// KnownClaim is one entry in the local claims database
type KnownClaim struct {
	ClaimText     string `json:"claim_text"`
	Verified      bool   `json:"verified"`
	SourceURL     string `json:"source_url"`
	PublishedDate string `json:"published_date"`
}

// ClaimDB is the local claims database, loaded once and read-only
type ClaimDB struct {
	Claims []KnownClaim `json:"claims"`

	wordSets []map[string]struct{}
}

// LocalMatch is the outcome of a local database lookup
type LocalMatch struct {
	Verified      bool
	Confidence    float64
	SourceURL     string
	PublishedDate string
}

// LoadClaimDB reads the claims database from path. A missing or
// malformed file yields an empty database with a warning, never an error.
func LoadClaimDB(path string) *ClaimDB {
	db := &ClaimDB{}
	if path == "" {
		return db
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load claims database %s: %v\n", path, err)
		return db
	}
	if err := json.Unmarshal(data, db); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to parse claims database %s: %v\n", path, err)
		return &ClaimDB{}
	}
	db.index()
	return db
}

// NewClaimDB builds a database from entries already in memory
func NewClaimDB(claims []KnownClaim) *ClaimDB {
	db := &ClaimDB{Claims: claims}
	db.index()
	return db
}

func (db *ClaimDB) index() {
	db.wordSets = make([]map[string]struct{}, len(db.Claims))
	for i, c := range db.Claims {
		db.wordSets[i] = wordSet(c.ClaimText)
	}
}

// Lookup finds the best fuzzy match for claim. A match requires Jaccard
// similarity above 0.7; the first entry wins similarity ties.
func (db *ClaimDB) Lookup(claim string) (LocalMatch, bool) {
	words := wordSet(claim)
	if len(words) == 0 {
		return LocalMatch{}, false
	}

	bestIdx := -1
	bestSimilarity := 0.0
	for i, dbWords := range db.wordSets {
		if len(dbWords) == 0 {
			continue
		}
		similarity := jaccard(words, dbWords)
		if similarity > bestSimilarity && similarity > 0.7 {
			bestSimilarity = similarity
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return LocalMatch{}, false
	}

	entry := db.Claims[bestIdx]
	return LocalMatch{
		Verified:      entry.Verified,
		Confidence:    bestSimilarity,
		SourceURL:     entry.SourceURL,
		PublishedDate: entry.PublishedDate,
	}, true
}

// wordSet lowercases, strips punctuation, and splits into a set
func wordSet(s string) map[string]struct{} {
	clean := punctuationRe.ReplaceAllString(strings.ToLower(s), "")
	set := make(map[string]struct{})
	for _, w := range strings.Fields(clean) {
		set[w] = struct{}{}
	}
	return set
}

// jaccard is intersection over union of two word sets
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
