// Package checkcache caches the outcome of a full boundary check.
//
// Type-level findings can depend on any file of the program (a props type can
// be imported from anywhere), so the cache is all-or-nothing: it replays the
// previous run's diagnostics only when the tool config, the tsconfig and
// every source file are byte-identical to the cached run. If ANY check fails,
// the whole program is re-checked from scratch. There are no partial
// invalidation shortcuts.
package checkcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/sbougerel/eslint-plugin-next-use-client-boundary/internal/diagnostic"
)

// SchemaVersion is bumped when the cache format or the check's output format
// changes. A mismatch forces a full re-check, so binary upgrades never replay
// stale findings.
const SchemaVersion = 1

// Cache records what was true when a check last ran to completion.
type Cache struct {
	// V is the schema version. Must match SchemaVersion or the cache is invalid.
	V int `json:"v"`

	// ConfigHash is the SHA-256 hex digest of the clientboundary config file.
	// Empty string means no config file was used.
	ConfigHash string `json:"configHash"`

	// TSConfigHash is the SHA-256 hex digest of the tsconfig file.
	TSConfigHash string `json:"tsconfigHash"`

	// SourcesDigest fingerprints the content of every source file of the
	// checked program.
	SourcesDigest string `json:"sourcesDigest"`

	// Components is the number of components the cached run checked.
	Components int `json:"components"`

	// Diagnostics are the findings of the cached run, in report order.
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics"`
}

// CachePath returns the cache file path: a sibling of the tsconfig, named
// after it ("tsconfig.build.json" -> ".tsconfig.build.clientboundary-cache").
func CachePath(tsconfigPath string) string {
	dir := filepath.Dir(tsconfigPath)
	name := strings.TrimSuffix(filepath.Base(tsconfigPath), ".json")
	return filepath.Join(dir, "."+name+".clientboundary-cache")
}

// Load reads and parses a cache file from disk.
// Returns nil if the file doesn't exist, is unreadable, or is invalid JSON.
// Callers should treat nil as "cache miss" and run a full check.
func Load(path string) *Cache {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}

	return &c
}

// Save writes the cache to disk atomically (write to temp, rename).
// A failed save just means the next run won't benefit from caching.
func Save(path string, cache *Cache) error {
	data, err := json.Marshal(cache, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("marshaling cache: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing cache temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming cache file: %w", err)
	}

	return nil
}

// Delete removes the cache file from disk. Errors are ignored (file may not exist).
func Delete(path string) {
	os.Remove(path)
}

// IsValid reports whether the cached run can be replayed. ALL of the
// following must hold simultaneously:
//
//  1. Schema version matches (catches binary upgrades)
//  2. Config hash matches current config file content
//  3. TSConfig hash matches current tsconfig content
//  4. Sources digest matches the current program's files
func (c *Cache) IsValid(configHash, tsconfigHash, sourcesDigest string) bool {
	if c == nil {
		return false
	}
	if c.V != SchemaVersion {
		return false
	}
	if c.ConfigHash != configHash {
		return false
	}
	if c.TSConfigHash != tsconfigHash {
		return false
	}
	return c.SourcesDigest == sourcesDigest
}

// HashFile computes the SHA-256 hex digest of a file's contents.
// Returns empty string if the file doesn't exist or can't be read.
func HashFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// SourcesDigest fingerprints a set of source files by path and content.
// The digest is order-independent: the file list is sorted before hashing.
// Unreadable files hash as empty, which still perturbs the digest when they
// reappear with content.
func SourcesDigest(paths []string) string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	h := sha256.New()
	for _, p := range sorted {
		fmt.Fprintf(h, "%s\x00%s\n", p, HashFile(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// New creates a Cache for the current schema version.
func New(configHash, tsconfigHash, sourcesDigest string, components int, diags []diagnostic.Diagnostic) *Cache {
	return &Cache{
		V:             SchemaVersion,
		ConfigHash:    configHash,
		TSConfigHash:  tsconfigHash,
		SourcesDigest: sourcesDigest,
		Components:    components,
		Diagnostics:   diags,
	}
}
