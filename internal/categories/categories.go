package categories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Map is an ordered mapping from category name to the file extensions that
// belong to it. Order matters twice: categories are matched first to last,
// and extensions within a category keep their stored order. The same
// extension may appear under several categories; the earliest category wins.
type Map struct {
	entries []entry
	index   map[string]int
}

type entry struct {
	name string
	exts []string
}

// New returns an empty category map.
func New() *Map {
	return &Map{index: make(map[string]int)}
}

// Match classifies a filename by its extension and reports the owning
// category. Matching is case-insensitive and purely lexical: the extension
// is the substring from the last dot to the end of the name. Names without
// a dot, hidden files whose only dot leads (".bashrc"), and names ending in
// a bare dot carry no extension and never match.
func (m *Map) Match(filename string) (string, bool) {
	ext := extensionOf(filename)
	if ext == "" {
		return "", false
	}
	for _, e := range m.entries {
		for _, candidate := range e.exts {
			if candidate == ext {
				return e.name, true
			}
		}
	}
	return "", false
}

func extensionOf(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx:])
}

// Add inserts a category or extends an existing one, keeping its position.
// Extensions are lowercased, prefixed with a dot when missing, and
// deduplicated within the category. It returns the number of extensions
// actually added.
func (m *Map) Add(name string, exts ...string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	pos, ok := m.index[name]
	if !ok {
		pos = len(m.entries)
		m.entries = append(m.entries, entry{name: name})
		m.index[name] = pos
	}

	added := 0
	for _, raw := range exts {
		ext := normalizeExtension(raw)
		if ext == "" {
			continue
		}
		if containsString(m.entries[pos].exts, ext) {
			continue
		}
		m.entries[pos].exts = append(m.entries[pos].exts, ext)
		added++
	}
	return added
}

// Remove deletes a category and reports whether it existed.
func (m *Map) Remove(name string) bool {
	pos, ok := m.index[name]
	if !ok {
		return false
	}
	m.entries = append(m.entries[:pos], m.entries[pos+1:]...)
	delete(m.index, name)
	for i := pos; i < len(m.entries); i++ {
		m.index[m.entries[i].name] = i
	}
	return true
}

// Names returns the category names in match order.
func (m *Map) Names() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.name
	}
	return names
}

// Extensions returns the extensions of a category in stored order.
func (m *Map) Extensions(name string) ([]string, bool) {
	pos, ok := m.index[name]
	if !ok {
		return nil, false
	}
	exts := make([]string, len(m.entries[pos].exts))
	copy(exts, m.entries[pos].exts)
	return exts, true
}

// Has reports whether the category exists.
func (m *Map) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Len returns the number of categories.
func (m *Map) Len() int {
	return len(m.entries)
}

// Clone returns an independent copy of the map.
func (m *Map) Clone() *Map {
	clone := New()
	for _, e := range m.entries {
		clone.Add(e.name, e.exts...)
	}
	return clone
}

func normalizeExtension(ext string) string {
	trimmed := strings.ToLower(strings.TrimSpace(ext))
	if trimmed == "" || trimmed == "." {
		return ""
	}
	if !strings.HasPrefix(trimmed, ".") {
		trimmed = "." + trimmed
	}
	return trimmed
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// MarshalJSON renders the map as a JSON object whose key order follows the
// match order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		exts := e.exts
		if exts == nil {
			exts = []string{}
		}
		value, err := json.Marshal(exts)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of category name to extension list,
// preserving the document order of the keys. encoding/json would shuffle
// keys through a Go map, so this walks the token stream instead.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read rules document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("rules document must be a JSON object, found %v", tok)
	}

	fresh := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read category name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("category name must be a string, found %v", keyTok)
		}
		var exts []string
		if err := dec.Decode(&exts); err != nil {
			return fmt.Errorf("category %q: extensions must be an array of strings: %w", name, err)
		}
		fresh.Add(name, exts...)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read rules document: %w", err)
	}

	*m = *fresh
	return nil
}
