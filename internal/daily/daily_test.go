package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	at := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)
	assert.Equal(t, "2024-03-10", DateKey(at))
}

func TestRootIndexDeterministic(t *testing.T) {
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	a := RootIndex(at, "salt", 50)
	b := RootIndex(at, "salt", 50)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 50)

	// Same calendar day, different clock time → same index.
	later := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, a, RootIndex(later, "salt", 50))
}

func TestRootIndexEmptyPool(t *testing.T) {
	assert.Zero(t, RootIndex(time.Now(), "salt", 0))
	assert.Zero(t, RootIndex(time.Now(), "salt", -1))
}
