// internal/dict/dict.go
//
// Dictionary oracle abstraction: answers "is this string a real word in
// language L?". The game engine depends only on the Dictionary interface,
// so the backend can be the embedded word list, a file configured via
// environment, or a SQLite database (see sqlite.go).

package dict

import (
	"bufio"
	"os"
	"strings"

	"github.com/robalobadob/scramble/assets"
)

// Dictionary answers membership queries for a word in a given language.
// Implementations are read-only and safe for concurrent use.
type Dictionary interface {
	IsRealWord(word, lang string) bool
}

// Memory is an in-memory Dictionary backed by per-language word sets.
// The set is built up front; lookups never mutate it.
type Memory struct {
	langs map[string]map[string]struct{}
}

// NewMemory constructs an empty in-memory dictionary.
func NewMemory() *Memory {
	return &Memory{langs: make(map[string]map[string]struct{})}
}

// Add registers words under lang, normalized to lowercase.
func (m *Memory) Add(lang string, words ...string) {
	set, ok := m.langs[lang]
	if !ok {
		set = make(map[string]struct{}, len(words))
		m.langs[lang] = set
	}
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
}

// IsRealWord reports whether word is present in the lang word set.
func (m *Memory) IsRealWord(word, lang string) bool {
	set, ok := m.langs[lang]
	if !ok {
		return false
	}
	_, ok = set[strings.ToLower(word)]
	return ok
}

// Stats returns the number of words loaded for lang.
func (m *Memory) Stats(lang string) int {
	return len(m.langs[lang])
}

// LoadFile reads one word per line from path into lang.
// Blank lines and lines starting with # are skipped.
func (m *Memory) LoadFile(lang, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		m.Add(lang, w)
	}
	return sc.Err()
}

// Embedded returns an in-memory dictionary seeded with the embedded
// english word list.
func Embedded() (*Memory, error) {
	list, err := assets.DictionaryList()
	if err != nil {
		return nil, err
	}
	m := NewMemory()
	m.Add("en", list...)
	return m, nil
}
