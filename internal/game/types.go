// internal/game/types.go
//
// Core type definitions for the word-building game engine.
// Defines:
//   - Reason: labeled rejection cause for a submitted word.
//   - Result: outcome of one submission attempt.
//   - Session: state for a single in-progress game session.

package game

import (
	"sync"

	"github.com/robalobadob/scramble/internal/dict"
)

// Reason labels why a submitted word was rejected.
// Possible values:
//   - "duplicate":               word was already accepted this session.
//   - "too short":               fewer than 3 letters after normalization.
//   - "is root word":            word equals the session's root word.
//   - "not spellable from root": letters are not a sub-multiset of the root's.
//   - "not a real word":         dictionary lookup failed.
type Reason string

const (
	ReasonDuplicate    Reason = "duplicate"
	ReasonTooShort     Reason = "too short"
	ReasonIsRoot       Reason = "is root word"
	ReasonNotSpellable Reason = "not spellable from root"
	ReasonNotReal      Reason = "not a real word"
)

// Result reports the outcome of a single Submit call.
// An empty-input submission is silently ignored: Accepted is false,
// Reason is empty, and no state changes.
type Result struct {
	Word     string // Normalized candidate (lowercased, trimmed).
	Accepted bool   // True if the word passed all checks and was scored.
	Reason   Reason // Rejection label; empty when accepted or ignored.
	Score    int    // Session score after this submission.
}

// Session holds the state of a single word-building game session.
// Submit, Reset, and Snapshot are safe for concurrent use; direct field
// access is only safe while no other goroutine is mutating the session.
type Session struct {
	ID       string   // Unique session identifier (random hex string).
	Root     string   // The root word providing the letter pool (always lowercase).
	Used     []string // Accepted words, newest first.
	Score    int      // Running score: +1+len(word) per accepted word.
	Language string   // Dictionary language code (typically "en").

	mu   sync.Mutex      // guards Root, Used, Score
	dict dict.Dictionary // injected word oracle
}

// View is a read-only copy of a session's visible state, safe to hand to
// a presentation layer while the session keeps changing.
type View struct {
	ID       string
	Root     string
	Used     []string // newest first
	Score    int
	Language string
}
