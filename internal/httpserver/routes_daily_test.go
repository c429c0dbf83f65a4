package httpserver

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/scramble/internal/daily"
	"github.com/robalobadob/scramble/internal/dict"
	"github.com/robalobadob/scramble/internal/store"
	"github.com/robalobadob/scramble/internal/words"
)

// todaysRoot resolves the same daily root the server will pick, so tests
// can seed the dictionary with a word that is spellable from it.
func todaysRoot(t *testing.T) string {
	t.Helper()
	require.NoError(t, words.Init())
	pool := words.Roots()
	require.NotEmpty(t, pool)
	return pool[daily.RootIndex(time.Now(), "local_dev_salt", len(pool))]
}

func TestDailyLifecycle(t *testing.T) {
	root := todaysRoot(t)
	playable := root[:4] // a prefix is always spellable from the root

	d := dict.NewMemory()
	d.Add("en", playable)
	db := newTestDB(t)
	s := New(store.NewMemoryStore(), db, d)
	c := newTestClient(t, s)

	var created dailyNewRes
	rec := c.do(http.MethodPost, "/daily/new", nil, &created)
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, created.Played)
	require.NotEmpty(t, created.SessionID)
	assert.Equal(t, root, created.Root)

	// The same guest asking again gets the same run back.
	var again dailyNewRes
	c.do(http.MethodPost, "/daily/new", nil, &again)
	assert.Equal(t, created.SessionID, again.SessionID)

	var sub dailySubmitRes
	c.do(http.MethodPost, "/daily/submit",
		dailySubmitReq{SessionID: created.SessionID, Word: playable}, &sub)
	require.True(t, sub.Accepted)
	wantScore := 1 + len(playable)
	assert.Equal(t, wantScore, sub.Score)
	assert.Equal(t, 1, sub.Words)

	var fin dailyFinishRes
	rec = c.do(http.MethodPost, "/daily/finish",
		dailyFinishReq{SessionID: created.SessionID}, &fin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wantScore, fin.Score)
	assert.Equal(t, 1, fin.Words)

	// Submissions after finish are locked out.
	c.do(http.MethodPost, "/daily/submit",
		dailySubmitReq{SessionID: created.SessionID, Word: playable}, &sub)
	assert.Equal(t, "locked", sub.State)

	// Finishing twice records exactly one result.
	rec = c.do(http.MethodPost, "/daily/finish",
		dailyFinishReq{SessionID: created.SessionID}, &fin)
	require.Equal(t, http.StatusOK, rec.Code)
	var cnt int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM daily_results`).Scan(&cnt))
	assert.Equal(t, 1, cnt)

	// The day is spent: a new run is refused.
	var replay dailyNewRes
	c.do(http.MethodPost, "/daily/new", nil, &replay)
	assert.True(t, replay.Played)
	assert.Empty(t, replay.SessionID)
}

func TestDailyFinishBumpsStats(t *testing.T) {
	root := todaysRoot(t)
	playable := root[:4]

	d := dict.NewMemory()
	d.Add("en", playable)
	s := New(store.NewMemoryStore(), newTestDB(t), d)
	c := newTestClient(t, s)

	rec := c.do(http.MethodPost, "/auth/signup",
		signupReq{Username: "player_one", Password: "hunter2hunter2"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var created dailyNewRes
	c.do(http.MethodPost, "/daily/new", nil, &created)
	require.NotEmpty(t, created.SessionID)

	var sub dailySubmitRes
	c.do(http.MethodPost, "/daily/submit",
		dailySubmitReq{SessionID: created.SessionID, Word: playable}, &sub)
	require.True(t, sub.Accepted)

	var fin dailyFinishRes
	c.do(http.MethodPost, "/daily/finish",
		dailyFinishReq{SessionID: created.SessionID}, &fin)

	var stats map[string]any
	rec = c.do(http.MethodGet, "/stats/me", nil, &stats)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, stats["dailyPlayed"])
	assert.EqualValues(t, 1+len(playable), stats["bestScore"])
}

func TestDailySubmitUnknownRun(t *testing.T) {
	s := New(store.NewMemoryStore(), newTestDB(t), dict.NewMemory())
	c := newTestClient(t, s)

	rec := c.do(http.MethodPost, "/daily/submit",
		dailySubmitReq{SessionID: "nope", Word: "silk"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDailyLeaderboardOrdering(t *testing.T) {
	db := newTestDB(t)
	s := New(store.NewMemoryStore(), db, dict.NewMemory())

	date := "2026-01-02"
	st := daily.NewStore(db)
	ctx := context.Background()
	require.NoError(t, st.InsertResult(ctx, daily.Result{UserID: "a", Date: date, Words: 2, Score: 5}))
	require.NoError(t, st.InsertResult(ctx, daily.Result{UserID: "b", Date: date, Words: 4, Score: 20}))
	require.NoError(t, st.InsertResult(ctx, daily.Result{UserID: "c", Date: date, Words: 3, Score: 10}))

	// One run per user per day: a replay insert is ignored.
	require.NoError(t, st.InsertResult(ctx, daily.Result{UserID: "a", Date: date, Words: 9, Score: 99}))

	c := newTestClient(t, s)
	var out lbRes
	rec := c.do(http.MethodGet, "/daily/leaderboard?date="+date, nil, &out)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, out.Top, 3)
	assert.Equal(t, "b", out.Top[0].UserID)
	assert.Equal(t, "c", out.Top[1].UserID)
	assert.Equal(t, "a", out.Top[2].UserID)
	assert.Equal(t, 5, out.Top[2].Score)
}
