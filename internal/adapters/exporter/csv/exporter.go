package csv

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gxcuit/vibe-translate/internal/ports"
)

type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "csv" }

func (e *Exporter) ContentType() string { return "text/csv" }

func (e *Exporter) Export(items []ports.ExportItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"selected", "previous", "next", "translation", "provider", "model", "created_at"}); err != nil {
		return nil, err
	}
	for _, it := range items {
		created := ""
		if !it.CreatedAt.IsZero() {
			created = it.CreatedAt.UTC().Format(time.RFC3339)
		}
		if err := w.Write([]string{
			it.SelectedText, it.PreviousSentence, it.NextSentence,
			it.Translation, it.Provider, it.Model, created,
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
