package factory

import (
	"fmt"
	"time"

	httpprov "github.com/gxcuit/vibe-translate/internal/adapters/llm/httpclient"
	"github.com/gxcuit/vibe-translate/internal/domain"
	"github.com/gxcuit/vibe-translate/internal/ports"
)

// FromRecord returns an HTTP-backed provider client for a stored record.
// A timeout <= 0 keeps the client's default.
func FromRecord(p *domain.Provider, timeout time.Duration) (ports.Provider, error) {
	switch p.Type {
	case httpprov.TypeOpenAI, httpprov.TypeGemini:
		c := httpprov.New(p.Type, p.APIKey, p.BaseURL, p.Model)
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", p.Type)
	}
}

// Builder binds FromRecord to a fixed timeout, matching the signature the
// translator and API layers expect.
func Builder(timeout time.Duration) func(*domain.Provider) (ports.Provider, error) {
	return func(p *domain.Provider) (ports.Provider, error) {
		return FromRecord(p, timeout)
	}
}
