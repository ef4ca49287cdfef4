package translator

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gxcuit/vibe-translate/internal/domain"
	"github.com/gxcuit/vibe-translate/internal/ports"
)

type fakeProviderRepo struct {
	byID map[int64]*domain.Provider
}

func (f *fakeProviderRepo) Create(ctx context.Context, p *domain.Provider) error { return nil }
func (f *fakeProviderRepo) Update(ctx context.Context, p *domain.Provider) error { return nil }
func (f *fakeProviderRepo) Get(ctx context.Context, id int64) (*domain.Provider, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}
func (f *fakeProviderRepo) List(ctx context.Context) ([]*domain.Provider, error) { return nil, nil }
func (f *fakeProviderRepo) Delete(ctx context.Context, id int64) error           { return nil }
func (f *fakeProviderRepo) SaveModelCache(ctx context.Context, providerID int64, names []string) error {
	return nil
}
func (f *fakeProviderRepo) ListModelCache(ctx context.Context, providerID int64) ([]*domain.ProviderModel, error) {
	return nil, nil
}

type fakeSettings struct{ m map[string]string }

func (f *fakeSettings) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.m[key]
	if !ok {
		return "", sql.ErrNoRows
	}
	return v, nil
}
func (f *fakeSettings) Set(ctx context.Context, key, value string) error { f.m[key] = value; return nil }
func (f *fakeSettings) List(ctx context.Context) ([]*domain.Setting, error) {
	return nil, nil
}

type fakeCache struct {
	entries map[string]*domain.CacheEntry
	puts    int
}

func cacheKey(src, lang, prov, model string) string { return src + "|" + lang + "|" + prov + "|" + model }

func (f *fakeCache) Get(ctx context.Context, src, tgtLang, provider, model string) (*domain.CacheEntry, error) {
	return f.entries[cacheKey(src, tgtLang, provider, model)], nil
}
func (f *fakeCache) Put(ctx context.Context, e *domain.CacheEntry) error {
	f.puts++
	f.entries[cacheKey(e.SourceText, e.TargetLang, e.Provider, e.Model)] = e
	return nil
}

type fakeHistory struct{ entries []*domain.HistoryEntry }

func (f *fakeHistory) Append(ctx context.Context, e *domain.HistoryEntry) error {
	f.entries = append(f.entries, e)
	return nil
}
func (f *fakeHistory) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	return f.entries, nil
}
func (f *fakeHistory) Clear(ctx context.Context) error { f.entries = nil; return nil }

type fakePrompt struct{}

func (fakePrompt) Render(ctx context.Context, role string, data ports.PromptData) (string, error) {
	if role == ports.PromptRoleSystem {
		return "system:" + data.TargetLang, nil
	}
	return "user:" + data.Text, nil
}

type fakeClient struct {
	gotParams ports.TranslateParams
	result    string
	err       error
	calls     int
}

func (f *fakeClient) Translate(ctx context.Context, p ports.TranslateParams) (ports.TranslateResult, error) {
	f.calls++
	f.gotParams = p
	if f.err != nil {
		return ports.TranslateResult{}, f.err
	}
	return ports.TranslateResult{Translation: f.result, Raw: f.result}, nil
}
func (f *fakeClient) ListModels(ctx context.Context) ([]ports.ModelInfo, error) { return nil, nil }
func (f *fakeClient) Test(ctx context.Context) error                            { return nil }

func newFixture(client *fakeClient) (*Service, *fakeCache, *fakeHistory, *fakeSettings) {
	cache := &fakeCache{entries: map[string]*domain.CacheEntry{}}
	history := &fakeHistory{}
	settings := &fakeSettings{m: map[string]string{}}
	svc := New(Deps{
		Providers: &fakeProviderRepo{byID: map[int64]*domain.Provider{
			7: {ID: 7, Type: "openai", Name: "work", Model: "gpt-4.1-mini"},
		}},
		Settings: settings,
		Cache:    cache,
		History:  history,
		Prompt:   fakePrompt{},
		BuildProvider: func(p *domain.Provider) (ports.Provider, error) {
			return client, nil
		},
	})
	return svc, cache, history, settings
}

func TestTranslateWithContext(t *testing.T) {
	client := &fakeClient{result: " Die Katze saß. "}
	svc, cache, history, _ := newFixture(client)

	res, err := svc.Translate(context.Background(), Args{
		Text:        "cat",
		Surrounding: "The dog ran. The cat sat. The bird flew.",
		ProviderID:  7,
	})
	require.NoError(t, err)

	assert.Equal(t, "Die Katze saß.", res.Translation)
	assert.False(t, res.Cached)
	assert.Equal(t, "The dog ran.", res.Context.Previous)
	assert.Equal(t, "The cat sat.", res.Context.Selected)
	assert.Equal(t, "The bird flew.", res.Context.Next)
	assert.Equal(t, "openai", res.Provider)

	// Prompt params follow the request template contract.
	assert.Equal(t, "gpt-4.1-mini", client.gotParams.Model)
	assert.Equal(t, 0.3, client.gotParams.Temperature)
	assert.Equal(t, 1024, client.gotParams.MaxTokens)
	assert.Equal(t, "system:English", client.gotParams.SystemPrompt)
	assert.Equal(t, "user:The cat sat.", client.gotParams.UserPrompt)

	assert.Equal(t, 1, cache.puts)
	require.Len(t, history.entries, 1)
	assert.Equal(t, "The cat sat.", history.entries[0].SelectedText)
	assert.Equal(t, "The bird flew.", history.entries[0].NextSentence)
}

func TestTranslateDegradedContext(t *testing.T) {
	client := &fakeClient{result: "ok"}
	svc, _, _, _ := newFixture(client)

	res, err := svc.Translate(context.Background(), Args{
		Text:        "nonsense-xyz",
		Surrounding: "Alpha. Beta. Gamma.",
		ProviderID:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, "nonsense-xyz", res.Context.Selected)
	assert.Empty(t, res.Context.Previous)
	assert.Empty(t, res.Context.Next)
}

func TestTranslateCacheHit(t *testing.T) {
	client := &fakeClient{result: "fresh"}
	svc, cache, _, _ := newFixture(client)
	cache.entries[cacheKey("hello", "English", "openai", "gpt-4.1-mini")] = &domain.CacheEntry{Translation: "cached"}

	res, err := svc.Translate(context.Background(), Args{Text: "hello", ProviderID: 7})
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, "cached", res.Translation)
	assert.Zero(t, client.calls)
}

func TestTranslateBypassCache(t *testing.T) {
	client := &fakeClient{result: "fresh"}
	svc, cache, _, _ := newFixture(client)
	cache.entries[cacheKey("hello", "English", "openai", "gpt-4.1-mini")] = &domain.CacheEntry{Translation: "cached"}

	res, err := svc.Translate(context.Background(), Args{Text: "hello", ProviderID: 7, BypassCache: true})
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, "fresh", res.Translation)
	assert.Equal(t, 1, client.calls)
}

func TestTranslateActiveProviderFromSettings(t *testing.T) {
	client := &fakeClient{result: "ok"}
	svc, _, _, settings := newFixture(client)
	settings.m[KeyActiveProvider] = "7"
	settings.m[KeyTargetLang] = "German"

	res, err := svc.Translate(context.Background(), Args{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "openai", res.Provider)
	assert.Equal(t, "system:German", client.gotParams.SystemPrompt)
}

func TestTranslateNoProviderConfigured(t *testing.T) {
	svc, _, _, _ := newFixture(&fakeClient{})
	_, err := svc.Translate(context.Background(), Args{Text: "hello"})
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestTranslateUnknownProvider(t *testing.T) {
	svc, _, _, _ := newFixture(&fakeClient{})
	_, err := svc.Translate(context.Background(), Args{Text: "hello", ProviderID: 99})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTranslateEmptyText(t *testing.T) {
	svc, _, _, _ := newFixture(&fakeClient{})
	_, err := svc.Translate(context.Background(), Args{Text: "  "})
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestTranslateProviderFailureIsNotRetried(t *testing.T) {
	boom := errors.New("upstream exploded")
	client := &fakeClient{err: boom}
	svc, cache, history, _ := newFixture(client)

	_, err := svc.Translate(context.Background(), Args{Text: "hello", ProviderID: 7})
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, client.calls)
	assert.Zero(t, cache.puts)
	assert.Empty(t, history.entries)
}
