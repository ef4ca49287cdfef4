package ports

import "context"

type TranslateParams struct {
	Model        string
	Temperature  float64
	MaxTokens    int
	SystemPrompt string
	UserPrompt   string
}

type TranslateResult struct {
	Translation string
	Raw         string
}

type ModelInfo struct {
	Name        string
	Description string
}

// Provider represents a single LLM backend reachable over HTTP.
type Provider interface {
	Translate(ctx context.Context, p TranslateParams) (TranslateResult, error)
	ListModels(ctx context.Context) ([]ModelInfo, error)
	Test(ctx context.Context) error
}
