// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
// Exposes four endpoints under /daily:
//   - POST /daily/new         → start a daily run (creates or reuses session)
//   - POST /daily/submit      → submit a word for today's daily run
//   - POST /daily/finish      → lock in the run's score
//   - GET  /daily/leaderboard → fetch top 20 scores for today (or a given date)
//
// Each user can play once per day (enforced by DB + in-memory session).
// Runs are held in memory for active play and persisted to DB on finish.
// Deterministic root-word selection is based on date + salt, so every
// player builds words from the same letters.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scramble/internal/daily"
	"github.com/robalobadob/scramble/internal/game"
	"github.com/robalobadob/scramble/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailyRun // active runs keyed by userID|date
	mu       sync.Mutex           // guards sessions
}

// dailyRun holds transient in-memory state for an in-progress daily run.
type dailyRun struct {
	UserID    string
	Date      string
	RootIndex int
	Session   *game.Session
	Finished  bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]*dailyRun),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/submit", dd.handleSubmit)
		r.Post("/finish", dd.handleFinish)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// dateKeyNow returns today's date key, deterministic root index, and root word.
func (d *dailyServer) dateKeyNow() (date string, idx int, root string) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	pool := words.Roots()
	if len(pool) == 0 {
		return date, 0, ""
	}
	idx = daily.RootIndex(now, d.salt, len(pool))
	return date, idx, pool[idx]
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) (string, bool) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, true
	}
	return d.srv.ensureAnonID(w, r), true
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	SessionID string `json:"sessionId"`
	Date      string `json:"date"`
	Root      string `json:"root"`
	Played    bool   `json:"played"`
}

// handleNew creates or reuses a daily run for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory run and return its session ID.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	date, idx, root := d.dateKeyNow()
	if root == "" {
		http.Error(w, "no root pool", http.StatusInternalServerError)
		return
	}

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{SessionID: "", Date: date, Root: root, Played: true})
		return
	}

	// Reuse or create run in memory.
	key := uid + "|" + date
	d.mu.Lock()
	if run, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		_ = json.NewEncoder(w).Encode(dailyNewRes{SessionID: run.Session.ID, Date: date, Root: root, Played: false})
		return
	}
	run := &dailyRun{
		UserID:    uid,
		Date:      date,
		RootIndex: idx,
		Session:   game.New(root, d.srv.lang, d.srv.dict),
	}
	d.sessions[key] = run
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{SessionID: run.Session.ID, Date: date, Root: root, Played: false})
}

// -----------------------------------------------------------------------------
// /daily/submit

// dailySubmitReq is the request payload for /daily/submit.
type dailySubmitReq struct {
	SessionID string `json:"sessionId"`
	Word      string `json:"word"`
}

// dailySubmitRes is the response payload for /daily/submit.
type dailySubmitRes struct {
	Word     string `json:"word"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	Score    int    `json:"score"`
	Words    int    `json:"words"`
	State    string `json:"state"` // in_progress | locked
}

// handleSubmit runs the validation chain for today's daily run.
// - Ensures a matching in-memory run exists and is not finished.
// - Applies the same five-rule chain as free play.
func (d *dailyServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var p dailySubmitReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if p.SessionID == "" {
		http.Error(w, "invalid", http.StatusBadRequest)
		return
	}

	date, _, _ := d.dateKeyNow()

	// Find run.
	key := uid + "|" + date
	d.mu.Lock()
	run, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || run.Session.ID != p.SessionID {
		http.Error(w, "no session", http.StatusConflict)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if run.Finished {
		snap := run.Session.Snapshot()
		_ = json.NewEncoder(w).Encode(dailySubmitRes{State: "locked", Score: snap.Score, Words: len(snap.Used)})
		return
	}

	res := run.Session.Submit(p.Word)
	_ = json.NewEncoder(w).Encode(dailySubmitRes{
		Word:     res.Word,
		Accepted: res.Accepted,
		Reason:   string(res.Reason),
		Score:    res.Score,
		Words:    len(run.Session.Snapshot().Used),
		State:    "in_progress",
	})
}

// -----------------------------------------------------------------------------
// /daily/finish

// dailyFinishReq is the request payload for /daily/finish.
type dailyFinishReq struct {
	SessionID string `json:"sessionId"`
}

// dailyFinishRes is the response payload for /daily/finish.
type dailyFinishRes struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
	Words int    `json:"words"`
}

// handleFinish locks in the run's score and persists it.
// Logged-in users also get their profile stats bumped.
func (d *dailyServer) handleFinish(w http.ResponseWriter, r *http.Request) {
	uid, ok := d.userIDWithAnon(w, r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var p dailyFinishReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	date, _, _ := d.dateKeyNow()
	key := uid + "|" + date
	d.mu.Lock()
	run, ok := d.sessions[key]
	if !ok || run.Session.ID != p.SessionID {
		d.mu.Unlock()
		http.Error(w, "no session", http.StatusConflict)
		return
	}
	alreadyFinished := run.Finished
	run.Finished = true
	snap := run.Session.Snapshot()
	score := snap.Score
	wordCount := len(snap.Used)
	rootIndex := run.RootIndex
	d.mu.Unlock()

	if !alreadyFinished {
		if err := d.store.InsertResult(r.Context(), daily.Result{
			UserID: uid, Date: date, RootIndex: rootIndex, Words: wordCount, Score: score,
		}); err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("persist daily result")
		}
		if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
			tx, err := d.srv.db.Begin()
			if err == nil {
				if err := d.srv.bumpStats(tx, me.ID, score); err != nil {
					log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
					_ = tx.Rollback()
				} else {
					_ = tx.Commit()
				}
			}
		}
	}

	_ = json.NewEncoder(w).Encode(dailyFinishRes{Date: date, Score: score, Words: wordCount})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _ = d.dateKeyNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
