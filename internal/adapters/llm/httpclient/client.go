package httpclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gxcuit/vibe-translate/internal/ports"
)

const (
	TypeOpenAI = "openai"
	TypeGemini = "gemini"
)

// Client talks to an OpenAI-compatible or Gemini-compatible endpoint,
// depending on ProviderType.
type Client struct {
	ProviderType string
	APIKey       string
	BaseURL      string
	Model        string
	http         *resty.Client
}

func New(providerType, apiKey, baseURL, model string) *Client {
	c := resty.New().SetTimeout(30 * time.Second)
	return &Client{ProviderType: strings.ToLower(providerType), APIKey: apiKey, BaseURL: baseURL, Model: model, http: c}
}

// SetTimeout overrides the default request timeout.
func (c *Client) SetTimeout(d time.Duration) *Client {
	c.http.SetTimeout(d)
	return c
}

func (c *Client) Translate(ctx context.Context, p ports.TranslateParams) (ports.TranslateResult, error) {
	if c.APIKey == "" {
		return ports.TranslateResult{}, fmt.Errorf("%s: missing api token", c.ProviderType)
	}
	switch c.ProviderType {
	case TypeOpenAI:
		return c.translateOpenAI(ctx, p)
	case TypeGemini:
		return c.translateGemini(ctx, p)
	default:
		return ports.TranslateResult{}, fmt.Errorf("unsupported provider: %s", c.ProviderType)
	}
}

func (c *Client) ListModels(ctx context.Context) ([]ports.ModelInfo, error) {
	switch c.ProviderType {
	case TypeOpenAI:
		var resp struct {
			Data []struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		r, err := c.http.R().SetContext(ctx).
			SetHeader("Authorization", "Bearer "+c.APIKey).
			SetResult(&resp).
			Get(openAIURL(c.BaseURL, "/models"))
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("openai list models: %s; body: %s", r.Status(), r.String())
		}
		out := make([]ports.ModelInfo, 0, len(resp.Data))
		for _, d := range resp.Data {
			out = append(out, ports.ModelInfo{Name: d.ID})
		}
		return out, nil
	case TypeGemini:
		var resp struct {
			Models []struct {
				Name        string `json:"name"` // "models/gemini-..."
				DisplayName string `json:"displayName"`
			} `json:"models"`
		}
		r, err := c.http.R().SetContext(ctx).
			SetQueryParam("key", c.APIKey).
			SetResult(&resp).
			Get(geminiBase(c.BaseURL) + "/v1beta/models")
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("gemini list models: %s; body: %s", r.Status(), r.String())
		}
		out := make([]ports.ModelInfo, 0, len(resp.Models))
		for _, m := range resp.Models {
			out = append(out, ports.ModelInfo{Name: strings.TrimPrefix(m.Name, "models/"), Description: m.DisplayName})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", c.ProviderType)
	}
}

func (c *Client) Test(ctx context.Context) error {
	_, err := c.ListModels(ctx)
	return err
}

func (c *Client) translateOpenAI(ctx context.Context, p ports.TranslateParams) (ports.TranslateResult, error) {
	model := p.Model
	if model == "" {
		model = c.Model
	}
	body := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": p.SystemPrompt},
			{"role": "user", "content": p.UserPrompt},
		},
		"temperature": p.Temperature,
		"max_tokens":  p.MaxTokens,
	}
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		Post(openAIURL(c.BaseURL, "/chat/completions"))
	if err != nil {
		return ports.TranslateResult{}, err
	}
	if r.IsError() {
		return ports.TranslateResult{}, fmt.Errorf("openai translate: %s; body: %s", r.Status(), abbreviate(r.String(), 2000))
	}
	if len(resp.Choices) == 0 {
		return ports.TranslateResult{}, fmt.Errorf("openai translate: no choices returned")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	return ports.TranslateResult{Translation: content, Raw: content}, nil
}

func (c *Client) translateGemini(ctx context.Context, p ports.TranslateParams) (ports.TranslateResult, error) {
	model := p.Model
	if model == "" {
		model = c.Model
	}
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", geminiBase(c.BaseURL), url.PathEscape(model))
	body := map[string]any{
		"systemInstruction": map[string]any{
			"parts": []map[string]string{{"text": p.SystemPrompt}},
		},
		"contents": []map[string]any{
			{"role": "user", "parts": []map[string]string{{"text": p.UserPrompt}}},
		},
		"generationConfig": map[string]any{
			"temperature":     p.Temperature,
			"maxOutputTokens": p.MaxTokens,
		},
	}
	var resp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetQueryParam("key", c.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		Post(endpoint)
	if err != nil {
		return ports.TranslateResult{}, err
	}
	if r.IsError() {
		return ports.TranslateResult{}, fmt.Errorf("gemini translate: %s; body: %s", r.Status(), abbreviate(r.String(), 2000))
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ports.TranslateResult{}, fmt.Errorf("gemini translate: no candidates returned")
	}
	content := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	return ports.TranslateResult{Translation: content, Raw: content}, nil
}

// openAIURL appends tail under the /v1 prefix without duplicating it when the
// configured base already carries one (e.g. self-hosted gateways).
func openAIURL(base, tail string) string {
	b := strings.TrimRight(base, "/")
	if strings.HasSuffix(b, "/v1") {
		return b + tail
	}
	return b + "/v1" + tail
}

func geminiBase(base string) string {
	return strings.TrimRight(base, "/")
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
