package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// RootIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % poolLen, so everyone gets the same daily root
// word without storing a schedule.
func RootIndex(date time.Time, salt string, poolLen int) int {
	if poolLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(poolLen))
}
