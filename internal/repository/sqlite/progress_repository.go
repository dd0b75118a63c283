package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/saras/kosakata/internal/logger"
	"github.com/saras/kosakata/internal/models"
	"github.com/saras/kosakata/internal/repository"
)

type progressRow struct {
	WordTerm        string       `db:"word_term"`
	TimesSeen       int          `db:"times_seen"`
	TimesCorrect    int          `db:"times_correct"`
	LastPracticedAt sql.NullTime `db:"last_practiced_at"`
	Streak          int          `db:"streak"`
	Mastered        bool         `db:"mastered"`
	MasteredAt      sql.NullTime `db:"mastered_at"`
	Ease            float64      `db:"ease"`
	DueAt           sql.NullTime `db:"due_at"`
	LapseStreak     int          `db:"lapse_streak"`
	ConfusedWith    string       `db:"confused_with"`
}

func (r progressRow) toModel() (models.Progress, error) {
	p := models.Progress{
		WordTerm:     r.WordTerm,
		TimesSeen:    r.TimesSeen,
		TimesCorrect: r.TimesCorrect,
		Streak:       r.Streak,
		Mastered:     r.Mastered,
		Ease:         r.Ease,
		LapseStreak:  r.LapseStreak,
	}
	if r.LastPracticedAt.Valid {
		p.LastPracticedAt = r.LastPracticedAt.Time
	}
	if r.MasteredAt.Valid {
		p.MasteredAt = r.MasteredAt.Time
	}
	if r.DueAt.Valid {
		p.DueAt = r.DueAt.Time
	}
	if r.ConfusedWith != "" && r.ConfusedWith != "{}" {
		if err := json.Unmarshal([]byte(r.ConfusedWith), &p.ConfusedWith); err != nil {
			return models.Progress{}, err
		}
	}
	return p, nil
}

type progressRepository struct {
	db *sqlx.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sqlx.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, term string) (*models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: term=%s", term)

	var row progressRow
	err := r.db.GetContext(ctx, &row, `
SELECT word_term, times_seen, times_correct, last_practiced_at, streak,
       mastered, mastered_at, ease, due_at, lapse_streak, confused_with
FROM progress
WHERE word_term = ?
`, term)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no progress yet: term=%s", term)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	p, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *progressRepository) GetAll(ctx context.Context) (map[string]models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	var rows []progressRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT word_term, times_seen, times_correct, last_practiced_at, streak,
       mastered, mastered_at, ease, due_at, lapse_streak, confused_with
FROM progress
`)
	if err != nil {
		log.Error("failed to load progress map: %v", err)
		return nil, err
	}

	out := make(map[string]models.Progress, len(rows))
	for _, row := range rows {
		p, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out[p.WordTerm] = p
	}
	log.Debug("loaded %d progress records", len(out))
	return out, nil
}

func (r *progressRepository) Put(ctx context.Context, p models.Progress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("saving progress: term=%s, seen=%d, streak=%d, mastered=%v", p.WordTerm, p.TimesSeen, p.Streak, p.Mastered)

	confused, err := json.Marshal(emptyMapIfNil(p.ConfusedWith))
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO progress (word_term, times_seen, times_correct, last_practiced_at, streak,
                      mastered, mastered_at, ease, due_at, lapse_streak, confused_with)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(word_term) DO UPDATE SET
    times_seen = excluded.times_seen,
    times_correct = excluded.times_correct,
    last_practiced_at = excluded.last_practiced_at,
    streak = excluded.streak,
    mastered = excluded.mastered,
    mastered_at = excluded.mastered_at,
    ease = excluded.ease,
    due_at = excluded.due_at,
    lapse_streak = excluded.lapse_streak,
    confused_with = excluded.confused_with
`, p.WordTerm, p.TimesSeen, p.TimesCorrect, nullTime(p.LastPracticedAt), p.Streak,
		p.Mastered, nullTime(p.MasteredAt), p.Ease, nullTime(p.DueAt), p.LapseStreak, string(confused))
	if err != nil {
		log.Error("failed to save progress: %v", err)
	}
	return err
}

func (r *progressRepository) DeleteAll(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Info("clearing all progress records")

	_, err := r.db.ExecContext(ctx, `DELETE FROM progress`)
	if err != nil {
		log.Error("failed to clear progress: %v", err)
	}
	return err
}

func (r *progressRepository) AppendAnswer(ctx context.Context, rec models.AnswerRecord) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("appending answer: term=%s, correct=%v, quality=%d", rec.WordTerm, rec.Correct, rec.Quality)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO answer_history (word_term, correct, quality, response_ms, given_answer, answered_at)
VALUES (?, ?, ?, ?, ?, ?)
`, rec.WordTerm, rec.Correct, rec.Quality, rec.ResponseMs, rec.GivenAnswer, rec.AnsweredAt)
	if err != nil {
		log.Error("failed to append answer: %v", err)
	}
	return err
}

func (r *progressRepository) AnswersForWord(ctx context.Context, term string, limit int) ([]models.AnswerRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	if limit <= 0 {
		limit = 50
	}
	var recs []models.AnswerRecord
	err := r.db.SelectContext(ctx, &recs, `
SELECT id, word_term, correct, quality, response_ms, given_answer, answered_at
FROM answer_history
WHERE word_term = ?
ORDER BY answered_at DESC, id DESC
LIMIT ?
`, term, limit)
	if err != nil {
		log.Error("failed to load answers: %v", err)
		return nil, err
	}
	return recs, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func emptyMapIfNil(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
