package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/gxcuit/vibe-translate/internal/domain"
)

type HistoryRepo struct{ *Repo }

func NewHistoryRepo(db *sql.DB) *HistoryRepo { return &HistoryRepo{NewRepo(db)} }

func (r *HistoryRepo) Append(ctx context.Context, e *domain.HistoryEntry) error {
	now := time.Now().UTC().Format(time.RFC3339)
	q := r.SQ.Insert("history").
		Columns("selected_text", "previous_sentence", "next_sentence", "translation", "provider", "model", "created_at").
		Values(e.SelectedText, e.PreviousSentence, e.NextSentence, e.Translation, e.Provider, e.Model, now)
	sqlStr, args, _ := q.ToSql()
	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	e.ID, _ = res.LastInsertId()
	return nil
}

// List returns the newest entries first. limit <= 0 means no limit.
func (r *HistoryRepo) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	q := r.SQ.Select("id", "selected_text", "previous_sentence", "next_sentence", "translation", "provider", "model", "created_at").
		From("history").OrderBy("id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var created string
		if err := rows.Scan(&e.ID, &e.SelectedText, &e.PreviousSentence, &e.NextSentence, &e.Translation, &e.Provider, &e.Model, &created); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *HistoryRepo) Clear(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM history`)
	return err
}
