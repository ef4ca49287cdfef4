package domain

import "time"

type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CacheEntry struct {
	ID          int64     `json:"id"`
	SourceText  string    `json:"source_text"`
	TargetLang  string    `json:"target_lang"`
	Provider    string    `json:"provider"`
	Model       string    `json:"model"`
	Translation string    `json:"translation"`
	CreatedAt   time.Time `json:"created_at"`
}

type HistoryEntry struct {
	ID               int64     `json:"id"`
	SelectedText     string    `json:"selected_text"`
	PreviousSentence string    `json:"previous_sentence"`
	NextSentence     string    `json:"next_sentence"`
	Translation      string    `json:"translation"`
	Provider         string    `json:"provider"`
	Model            string    `json:"model"`
	CreatedAt        time.Time `json:"created_at"`
}
