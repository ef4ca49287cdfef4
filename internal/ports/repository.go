package ports

import (
	"context"

	"github.com/gxcuit/vibe-translate/internal/domain"
)

type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) error
	Update(ctx context.Context, p *domain.Provider) error
	Get(ctx context.Context, id int64) (*domain.Provider, error)
	List(ctx context.Context) ([]*domain.Provider, error)
	Delete(ctx context.Context, id int64) error
	SaveModelCache(ctx context.Context, providerID int64, names []string) error
	ListModelCache(ctx context.Context, providerID int64) ([]*domain.ProviderModel, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	List(ctx context.Context) ([]*domain.Setting, error)
}

type CacheRepository interface {
	Get(ctx context.Context, src, tgtLang, provider, model string) (*domain.CacheEntry, error)
	Put(ctx context.Context, entry *domain.CacheEntry) error
}

type HistoryRepository interface {
	Append(ctx context.Context, e *domain.HistoryEntry) error
	List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error)
	Clear(ctx context.Context) error
}
