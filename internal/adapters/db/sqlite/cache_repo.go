package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/gxcuit/vibe-translate/internal/domain"
)

type CacheRepo struct{ *Repo }

func NewCacheRepo(db *sql.DB) *CacheRepo { return &CacheRepo{NewRepo(db)} }

// Get returns nil, nil on a cache miss.
func (r *CacheRepo) Get(ctx context.Context, src, tgtLang, provider, model string) (*domain.CacheEntry, error) {
	q := r.SQ.Select("id", "source_text", "target_lang", "provider", "model", "translation", "created_at").
		From("translation_cache").
		Where(sq.Eq{
			"source_text": src,
			"target_lang": tgtLang,
			"provider":    provider,
			"model":       model,
		}).
		Limit(1)
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	var e domain.CacheEntry
	var created string
	if err := row.Scan(&e.ID, &e.SourceText, &e.TargetLang, &e.Provider, &e.Model, &e.Translation, &created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &e, nil
}

func (r *CacheRepo) Put(ctx context.Context, entry *domain.CacheEntry) error {
	now := time.Now().UTC().Format(time.RFC3339)
	q := r.SQ.Insert("translation_cache").
		Columns("source_text", "target_lang", "provider", "model", "translation", "created_at").
		Values(entry.SourceText, entry.TargetLang, entry.Provider, entry.Model, entry.Translation, now).
		Suffix("ON CONFLICT(source_text, target_lang, provider, model) DO UPDATE SET translation = excluded.translation")
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}
