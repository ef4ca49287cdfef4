package ports

import "time"

type ExportItem struct {
	SelectedText     string
	PreviousSentence string
	NextSentence     string
	Translation      string
	Provider         string
	Model            string
	CreatedAt        time.Time
}

type Exporter interface {
	Format() string
	ContentType() string
	Export(items []ExportItem) ([]byte, error)
}
