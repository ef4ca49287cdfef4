package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gxcuit/vibe-translate/internal/domain"
	"github.com/gxcuit/vibe-translate/internal/ports"
	"github.com/gxcuit/vibe-translate/internal/sentence"
)

// Settings keys consulted when a request leaves fields empty.
const (
	KeyActiveProvider = "provider.active"
	KeyTargetLang     = "translate.target_lang"
)

const (
	defaultTargetLang = "English"
	temperature       = 0.3
	maxTokens         = 1024
)

var (
	ErrEmptyText  = errors.New("text is required")
	ErrNoProvider = errors.New("no provider configured")
)

// ProviderError wraps failures coming back from the LLM backend so the API
// layer can surface them as a distinct error state. They are never retried
// automatically.
type ProviderError struct{ Err error }

func (e *ProviderError) Error() string { return e.Err.Error() }
func (e *ProviderError) Unwrap() error { return e.Err }

type Deps struct {
	Providers ports.ProviderRepository
	Settings  ports.SettingsRepository
	Cache     ports.CacheRepository
	History   ports.HistoryRepository
	Prompt    ports.PromptRenderer
	// Sentences resolves the selection's sentence context; defaults to a
	// segmenter with the stock abbreviation list.
	Sentences *sentence.Segmenter
	// BuildProvider returns a live client for a stored provider record.
	BuildProvider func(*domain.Provider) (ports.Provider, error)
}

type Service struct {
	d Deps
}

func New(d Deps) *Service {
	if d.Sentences == nil {
		d.Sentences = sentence.NewSegmenter(nil)
	}
	return &Service{d: d}
}

type Args struct {
	// Text is the user's raw selection.
	Text string
	// Surrounding is the text of the selection's block-level ancestor; may be
	// empty, in which case translation proceeds without sentence context.
	Surrounding string
	// ProviderID selects a stored provider; 0 falls back to the active one.
	ProviderID  int64
	TargetLang  string
	BypassCache bool
}

type Result struct {
	Translation string
	Context     sentence.Context
	Provider    string
	Model       string
	Cached      bool
}

// Translate resolves the sentence context for the selection, renders the
// prompts and calls the configured provider. An unlocatable selection is not
// an error: it degrades to a context-free translation.
func (s *Service) Translate(ctx context.Context, a Args) (Result, error) {
	text := strings.TrimSpace(a.Text)
	if text == "" {
		return Result{}, ErrEmptyText
	}

	prov, err := s.provider(ctx, a.ProviderID)
	if err != nil {
		return Result{}, err
	}
	targetLang := a.TargetLang
	if targetLang == "" {
		targetLang = s.setting(ctx, KeyTargetLang, defaultTargetLang)
	}

	sctx := s.d.Sentences.Resolve(text, a.Surrounding)
	res := Result{Context: sctx, Provider: prov.Type, Model: prov.Model}

	if !a.BypassCache && s.d.Cache != nil {
		if ce, _ := s.d.Cache.Get(ctx, text, targetLang, prov.Type, prov.Model); ce != nil {
			res.Translation = ce.Translation
			res.Cached = true
			return res, nil
		}
	}

	data := ports.PromptData{
		Text:       sctx.Selected,
		Previous:   sctx.Previous,
		Next:       sctx.Next,
		TargetLang: targetLang,
	}
	system, err := s.d.Prompt.Render(ctx, ports.PromptRoleSystem, data)
	if err != nil {
		return Result{}, fmt.Errorf("render system prompt: %w", err)
	}
	user, err := s.d.Prompt.Render(ctx, ports.PromptRoleUser, data)
	if err != nil {
		return Result{}, fmt.Errorf("render user prompt: %w", err)
	}

	client, err := s.d.BuildProvider(prov)
	if err != nil {
		return Result{}, err
	}
	out, err := client.Translate(ctx, ports.TranslateParams{
		Model:        prov.Model,
		Temperature:  temperature,
		MaxTokens:    maxTokens,
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if err != nil {
		return Result{}, &ProviderError{Err: err}
	}
	res.Translation = strings.TrimSpace(out.Translation)

	if s.d.Cache != nil {
		if err := s.d.Cache.Put(ctx, &domain.CacheEntry{
			SourceText:  text,
			TargetLang:  targetLang,
			Provider:    prov.Type,
			Model:       prov.Model,
			Translation: res.Translation,
		}); err != nil {
			slog.Warn("cache write failed", "error", err)
		}
	}
	if s.d.History != nil {
		if err := s.d.History.Append(ctx, &domain.HistoryEntry{
			SelectedText:     sctx.Selected,
			PreviousSentence: sctx.Previous,
			NextSentence:     sctx.Next,
			Translation:      res.Translation,
			Provider:         prov.Type,
			Model:            prov.Model,
		}); err != nil {
			slog.Warn("history write failed", "error", err)
		}
	}
	return res, nil
}

func (s *Service) provider(ctx context.Context, id int64) (*domain.Provider, error) {
	if id == 0 {
		v, err := s.d.Settings.Get(ctx, KeyActiveProvider)
		if err != nil || v == "" {
			return nil, ErrNoProvider
		}
		id, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad %s setting %q: %w", KeyActiveProvider, v, err)
		}
	}
	prov, err := s.d.Providers.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("provider %d: %w", id, err)
	}
	return prov, nil
}

func (s *Service) setting(ctx context.Context, key, fallback string) string {
	v, err := s.d.Settings.Get(ctx, key)
	if err != nil || strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
