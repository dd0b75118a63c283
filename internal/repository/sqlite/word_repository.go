package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/saras/kosakata/internal/logger"
	"github.com/saras/kosakata/internal/models"
	"github.com/saras/kosakata/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// ErrDuplicateTerm reports an insert that collides with an existing term.
var ErrDuplicateTerm = errors.New("term already exists")

type wordRow struct {
	ID           int64     `db:"id"`
	Term         string    `db:"term"`
	Translations string    `db:"translations"`
	Notes        string    `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r wordRow) toModel() (models.Word, error) {
	w := models.Word{
		ID:        r.ID,
		Term:      r.Term,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
	if err := json.Unmarshal([]byte(r.Translations), &w.Translations); err != nil {
		return models.Word{}, err
	}
	return w, nil
}

type wordRepository struct {
	db *sqlx.DB
}

// NewWordRepository creates a new WordRepository implementation
func NewWordRepository(db *sqlx.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

func (r *wordRepository) Insert(ctx context.Context, w models.Word) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("inserting word: term=%s", w.Term)

	translations, err := json.Marshal(emptyIfNil(w.Translations))
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO words (term, translations, notes)
VALUES (?, ?, ?)
`, w.Term, string(translations), w.Notes)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			log.Debug("duplicate term: %s", w.Term)
			return 0, ErrDuplicateTerm
		}
		log.Error("failed to insert word: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get word id: %v", err)
		return 0, err
	}
	log.Debug("word inserted: id=%d", id)
	return id, nil
}

func (r *wordRepository) GetByTerm(ctx context.Context, term string) (*models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("getting word: term=%s", term)

	var row wordRow
	err := r.db.GetContext(ctx, &row, `
SELECT id, term, translations, notes, created_at
FROM words
WHERE term = ?
`, term)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("word not found: term=%s", term)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get word: %v", err)
		return nil, err
	}
	w, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *wordRepository) List(ctx context.Context, filter models.WordFilter) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("listing words: search=%q, limit=%d, offset=%d", filter.Search, filter.Limit, filter.Offset)

	query := sqlBuilder.Select("id", "term", "translations", "notes", "created_at").
		From("words").
		OrderBy("term ASC")

	if filter.Search != "" {
		query = query.Where(squirrel.Like{"term": "%" + strings.TrimSpace(filter.Search) + "%"})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []wordRow
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		log.Error("failed to list words: %v", err)
		return nil, err
	}

	words := make([]models.Word, 0, len(rows))
	for _, row := range rows {
		w, err := row.toModel()
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	log.Debug("found %d words", len(words))
	return words, nil
}

func (r *wordRepository) Count(ctx context.Context, filter models.WordFilter) (int, error) {
	query := sqlBuilder.Select("COUNT(*)").From("words")
	if filter.Search != "" {
		query = query.Where(squirrel.Like{"term": "%" + strings.TrimSpace(filter.Search) + "%"})
	}
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.GetContext(ctx, &count, sqlStr, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *wordRepository) Delete(ctx context.Context, term string) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("deleting word: term=%s", term)

	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE term = ?`, term)
	if err != nil {
		log.Error("failed to delete word: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
