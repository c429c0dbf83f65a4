package daily

import (
	"context"
	"database/sql"
)

// Result is one user's locked-in daily challenge run.
type Result struct {
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	RootIndex int    `json:"rootIndex"`
	Words     int    `json:"words"` // accepted words this run
	Score     int    `json:"score"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?",
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, root_index, words, score)
		 VALUES(?,?,?,?,?)`, r.UserID, r.Date, r.RootIndex, r.Words, r.Score,
	)
	return err
}

// ClaimAnon reattributes a guest's daily results to a user account.
func (s *Store) ClaimAnon(ctx context.Context, anonID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE OR IGNORE daily_results SET user_id=? WHERE user_id=?`, userID, anonID,
	)
	return err
}

type LBRow struct {
	UserID string `json:"userId"`
	Words  int    `json:"words"`
	Score  int    `json:"score"`
}

func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, words, score
		 FROM daily_results
		 WHERE date=?
		 ORDER BY score DESC, words DESC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LBRow
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Words, &r.Score); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
