// internal/words/words.go
//
// Root-word pool management for the game engine.
//
// Responsibilities:
//   - Load the pool of candidate root words from an environment-provided
//     file or fall back to the embedded default list.
//   - Supply RandomRoot for session starts/resets and Stats for debugging.
//
// Initialization behavior (Init):
//   1. If ROOT_WORDS_FILE is set, load roots from that file.
//   2. Otherwise, fall back to the embedded assets/roots.txt.
//
// An empty pool after loading is an error; main treats that as a fatal
// startup failure since the game cannot start without a root word.
//
// Constraints:
//   • Roots must be 4–12 alphabetic letters (a–z).
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/scramble/assets"
)

const (
	minRootLen = 4
	maxRootLen = 12

	// fallbackRoot keeps RandomRoot total if the pool is somehow empty.
	fallbackRoot = "silkworm"
)

var (
	initOnce   sync.Once
	roots      []string // candidate root words
	initialErr error
)

// Init loads the root-word pool exactly once.
// Returns an error if the pool ends up empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("ROOT_WORDS_FILE"); path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			embedded, err := assets.RootsList()
			if err != nil {
				initialErr = err
				return
			}
			list = normalizeWords(embedded)
		}

		roots = list
		if len(roots) == 0 {
			initialErr = errors.New("words: root-word pool is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file, lowercases, trims,
// and keeps only valid roots (4–12 alphabetic letters).
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if validRoot(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeWords filters an already-read list down to valid roots.
func normalizeWords(list []string) []string {
	var out []string
	for _, line := range list {
		w := strings.TrimSpace(strings.ToLower(line))
		if validRoot(w) {
			out = append(out, w)
		}
	}
	return out
}

// validRoot reports whether w can serve as a root word.
func validRoot(w string) bool {
	return len(w) >= minRootLen && len(w) <= maxRootLen && isAlpha(w)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomRoot returns a cryptographically random root from the pool.
// If the pool is not loaded yet or empty, falls back to "silkworm".
func RandomRoot() string {
	if len(roots) == 0 {
		return fallbackRoot
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(roots))))
	return roots[nBig.Int64()]
}

// Roots returns the loaded pool (used by the daily challenge for
// deterministic indexing).
func Roots() []string {
	return roots
}

// Stats returns the number of loaded root words.
func Stats() int {
	return len(roots)
}
