// internal/game/engine.go
//
// Core game engine for a single word-building session.
// Responsibilities:
//   - Create new sessions with a root word (random from the pool by default).
//   - Validate submissions through the fixed five-rule chain:
//     duplicate → too short → is root → spellable from root → real word.
//   - Score accepted words (+1 + word length) and track them newest first.
//
// Notes:
//   - Root words come from the words package; the dictionary oracle is
//     injected so tests can use a fixed in-memory word set.
//   - The check order is observable through rejection reasons and must not
//     be rearranged: a two-letter string is "too short" even when it is
//     also unspellable or not in the dictionary.
//   - Concurrent requests can target the same session ID, so a
//     session-level mutex guards the used list and score.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/robalobadob/scramble/internal/dict"
	"github.com/robalobadob/scramble/internal/words"
)

const (
	minWordLen      = 3
	defaultLanguage = "en"
)

// New constructs a new session instance.
// If withRoot is empty, a random root is chosen from the words package.
// If lang is empty, the session uses "en".
func New(withRoot, lang string, d dict.Dictionary) *Session {
	root := strings.ToLower(strings.TrimSpace(withRoot))
	if root == "" {
		root = words.RandomRoot()
	}
	if lang == "" {
		lang = defaultLanguage
	}
	return &Session{
		ID:       randomID(),
		Root:     root,
		Used:     []string{},
		Language: lang,
		dict:     d,
	}
}

// Submit normalizes and validates a candidate word, mutating the session
// on acceptance. Empty input after normalization is ignored: the returned
// Result has Accepted=false and an empty Reason, and nothing changes.
//
// Rejections leave Used and Score untouched and carry a labeled Reason.
// On acceptance the word is prepended to Used (newest first) and the
// score grows by 1 + len(word).
func (s *Session) Submit(raw string) Result {
	word := strings.ToLower(strings.TrimSpace(raw))
	s.mu.Lock()
	defer s.mu.Unlock()
	if word == "" {
		return Result{Score: s.Score}
	}
	if reason := s.reject(word); reason != "" {
		return Result{Word: word, Reason: reason, Score: s.Score}
	}
	s.Used = append([]string{word}, s.Used...)
	s.Score += 1 + len(word)
	return Result{Word: word, Accepted: true, Score: s.Score}
}

// Reset starts the session over: a fresh root word (random unless withRoot
// is given), an empty used list, and a zero score. The session ID and
// language are kept.
func (s *Session) Reset(withRoot string) {
	root := strings.ToLower(strings.TrimSpace(withRoot))
	if root == "" {
		root = words.RandomRoot()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Root = root
	s.Used = []string{}
	s.Score = 0
}

// Snapshot returns a consistent copy of the session's visible state.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	used := make([]string, len(s.Used))
	copy(used, s.Used)
	return View{
		ID:       s.ID,
		Root:     s.Root,
		Used:     used,
		Score:    s.Score,
		Language: s.Language,
	}
}

// reject runs the validation chain in its fixed order and returns the
// first failing rule's reason, or "" if the word passes every check.
func (s *Session) reject(word string) Reason {
	switch {
	case s.isUsed(word):
		return ReasonDuplicate
	case len(word) < minWordLen:
		return ReasonTooShort
	case word == s.Root:
		return ReasonIsRoot
	case !spellableFrom(s.Root, word):
		return ReasonNotSpellable
	case !s.dict.IsRealWord(word, s.Language):
		return ReasonNotReal
	}
	return ""
}

// isUsed reports whether word was already accepted this session.
func (s *Session) isUsed(word string) bool {
	for _, w := range s.Used {
		if w == word {
			return true
		}
	}
	return false
}

// spellableFrom reports whether word's letters form a sub-multiset of
// root's letters: each occurrence in word consumes a distinct remaining
// occurrence in root.
func spellableFrom(root, word string) bool {
	// Letter frequency for the root's letters (a–z).
	var counts [26]int
	for _, r := range root {
		if j := idx(r); j >= 0 && j < 26 {
			counts[j]++
		}
	}
	for _, r := range word {
		j := idx(r)
		if j < 0 || j >= 26 || counts[j] == 0 {
			return false
		}
		counts[j]--
	}
	return true
}

// idx maps a lowercase ASCII letter rune to 0..25.
func idx(r rune) int { return int(r - 'a') }

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
