// Copyright (c) 2026 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package settings implements the INI-backed key/value store that keeps
// the demo's tunable parameters in sync with a file on disk.
//
// Values are grouped into named categories and always stored as strings.
// Typed accessors parse on demand and substitute a caller-supplied
// default whenever a key is missing or its text does not parse. Load,
// Save and ReloadIfChanged report plain booleans; the caller carries on
// with whatever values are resident either way.
package settings

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultCategory receives key/value pairs that appear before any
// [section] header in the file.
const DefaultCategory = "Default"

// Store holds a two-level category/key/value document and remembers the
// file it was loaded from so it can detect external modification.
// The zero value is an empty store not bound to any file.
type Store struct {
	path    string
	modTime time.Time
	data    map[string]map[string]string
}

// New returns an empty store not yet bound to a file.
func New() *Store {
	return &Store{data: make(map[string]map[string]string)}
}

// Load reads and parses the file at path, replacing any previously
// loaded state. It returns false when the file cannot be read; the
// store keeps the path either way so a later Save can create the file.
func (s *Store) Load(path string) bool {
	s.path = path
	raw, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	s.parse(string(raw))
	if fi, err := os.Stat(path); err == nil {
		s.modTime = fi.ModTime()
	}
	return true
}

// ReloadIfChanged re-parses the backing file when its modification time
// differs from the last one observed. It returns true only when a
// reload actually replaced the in-memory state.
func (s *Store) ReloadIfChanged() bool {
	if s.path == "" {
		return false
	}
	fi, err := os.Stat(s.path)
	if err != nil {
		return false
	}
	if fi.ModTime().Equal(s.modTime) {
		return false
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	s.parse(string(raw))
	s.modTime = fi.ModTime()
	return true
}

// Save rewrites the whole file from the in-memory document and
// refreshes the cached modification time. Categories and keys are
// written sorted, so repeated saves of the same document produce
// byte-identical files.
func (s *Store) Save() bool {
	if s.path == "" {
		return false
	}
	f, err := os.Create(s.path)
	if err != nil {
		return false
	}
	w := bufio.NewWriter(f)
	cats := make([]string, 0, len(s.data))
	for cat := range s.data {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		fmt.Fprintf(w, "[%s]\n", cat)
		kv := s.data[cat]
		keys := make([]string, 0, len(kv))
		for k := range kv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s=%s\n", k, kv[k])
		}
		w.WriteString("\n")
	}
	w.Flush()
	f.Close()
	if fi, err := os.Stat(s.path); err == nil {
		s.modTime = fi.ModTime()
	}
	return true
}

// Path returns the file the store is bound to, empty before Load.
func (s *Store) Path() string {
	return s.path
}

// GetString returns the raw value for a key, without any validation.
// The second result is false when the category or key is absent.
func (s *Store) GetString(cat, key string) (string, bool) {
	kv, ok := s.data[cat]
	if !ok {
		return "", false
	}
	v, ok := kv[key]
	return v, ok
}

// GetDouble returns the value parsed as a float, or def when the key is
// absent or the text is not numeric.
func (s *Store) GetDouble(cat, key string, def float64) float64 {
	v, ok := s.GetString(cat, key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// GetInt returns the value parsed as an int, or def when the key is
// absent or the text is not an integer.
func (s *Store) GetInt(cat, key string, def int) int {
	v, ok := s.GetString(cat, key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetBool returns the value interpreted as a boolean. The comparison is
// case-insensitive: 1/true/on/yes map to true, 0/false/off/no map to
// false, anything else yields def.
func (s *Store) GetBool(cat, key string, def bool) bool {
	v, ok := s.GetString(cat, key)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "on", "yes":
		return true
	case "0", "false", "off", "no":
		return false
	}
	return def
}

// SetString stores a raw value, creating the category when absent.
func (s *Store) SetString(cat, key, v string) {
	s.set(cat, key, v)
}

// SetDouble stores a float in its shortest exact decimal form.
func (s *Store) SetDouble(cat, key string, v float64) {
	s.set(cat, key, strconv.FormatFloat(v, 'g', -1, 64))
}

// SetInt stores an integer.
func (s *Store) SetInt(cat, key string, v int) {
	s.set(cat, key, strconv.Itoa(v))
}

// SetBool stores a boolean as "1" or "0".
func (s *Store) SetBool(cat, key string, v bool) {
	if v {
		s.set(cat, key, "1")
	} else {
		s.set(cat, key, "0")
	}
}

func (s *Store) set(cat, key, v string) {
	if s.data == nil {
		s.data = make(map[string]map[string]string)
	}
	kv, ok := s.data[cat]
	if !ok {
		kv = make(map[string]string)
		s.data[cat] = kv
	}
	kv[key] = v
}

// parse replaces the document with the result of scanning text line by
// line. Comments start at the first ';' or '#', section headers switch
// the current category, and lines without '=' are dropped. Parsing
// itself cannot fail.
func (s *Store) parse(text string) {
	s.data = make(map[string]map[string]string)
	cat := DefaultCategory

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexAny(line, ";#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']' {
			cat = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		val := strings.TrimSpace(line[eq+1:])
		s.set(cat, key, val)
	}
}
