package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gxcuit/vibe-translate/internal/ports"
)

type stubProvider struct {
	testErr error
}

func (s *stubProvider) Translate(ctx context.Context, p ports.TranslateParams) (ports.TranslateResult, error) {
	return ports.TranslateResult{Translation: "ok"}, nil
}

func (s *stubProvider) ListModels(ctx context.Context) ([]ports.ModelInfo, error) {
	return nil, s.testErr
}

func (s *stubProvider) Test(ctx context.Context) error { return s.testErr }

func TestRegisterGetUnregister(t *testing.T) {
	r := New()
	p := &stubProvider{}
	r.Register("work", p)

	got, ok := r.Get("work")
	require.True(t, ok)
	assert.Same(t, p, got)

	_, ok = r.Get("missing")
	assert.False(t, ok)

	r.Unregister("work")
	_, ok = r.Get("work")
	assert.False(t, ok)
}

func TestHealthCheck(t *testing.T) {
	r := New()
	boom := errors.New("boom")
	r.Register("good", &stubProvider{})
	r.Register("bad", &stubProvider{testErr: boom})

	res := r.HealthCheck(context.Background())
	require.Len(t, res, 2)
	assert.NoError(t, res["good"])
	assert.ErrorIs(t, res["bad"], boom)
}
