package exporter

import (
	"context"
	"fmt"

	exreg "github.com/gxcuit/vibe-translate/internal/adapters/exporter/registry"
	"github.com/gxcuit/vibe-translate/internal/ports"
)

type Service struct {
	History ports.HistoryRepository
	Reg     *exreg.Registry
}

func New(history ports.HistoryRepository, reg *exreg.Registry) *Service {
	return &Service{History: history, Reg: reg}
}

type Result struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Export renders the translation history in the requested format, newest first.
func (s *Service) Export(ctx context.Context, format string, limit int) (Result, error) {
	exp, ok := s.Reg.Get(format)
	if !ok {
		return Result{}, fmt.Errorf("no exporter for format: %s", format)
	}
	entries, err := s.History.List(ctx, limit)
	if err != nil {
		return Result{}, fmt.Errorf("list history: %w", err)
	}
	items := make([]ports.ExportItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, ports.ExportItem{
			SelectedText:     e.SelectedText,
			PreviousSentence: e.PreviousSentence,
			NextSentence:     e.NextSentence,
			Translation:      e.Translation,
			Provider:         e.Provider,
			Model:            e.Model,
			CreatedAt:        e.CreatedAt,
		})
	}
	content, err := exp.Export(items)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Filename:    "history." + format,
		ContentType: exp.ContentType(),
		Content:     content,
	}, nil
}
