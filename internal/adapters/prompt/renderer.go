package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/gxcuit/vibe-translate/internal/ports"
)

// Settings keys for user-configurable templates.
const (
	KeySystemPrompt = "prompt.system"
	KeyUserPrompt   = "prompt.user"
)

// Placeholder for an absent previous/next sentence.
const noneLiteral = "(none)"

const builtinSystem = "You are a professional translator. Translate the given text into {{targetLang}}. " +
	"Use the surrounding sentences only to resolve ambiguity; translate the selected text alone. " +
	"Return only the translation, with no explanations or quotes."

const builtinUser = "Text: {{text}}\nPrevious sentence: {{previousSentence}}\nNext sentence: {{nextSentence}}"

// Renderer builds prompts from settings-stored templates, falling back to the
// builtins when no override is stored. Templates use the literal tokens
// {{text}}, {{previousSentence}}, {{nextSentence}} and {{targetLang}}.
type Renderer struct {
	Settings ports.SettingsRepository
}

func New(settings ports.SettingsRepository) *Renderer { return &Renderer{Settings: settings} }

func (r *Renderer) Render(ctx context.Context, role string, data ports.PromptData) (string, error) {
	var body string
	switch role {
	case ports.PromptRoleSystem:
		body = r.lookup(ctx, KeySystemPrompt, builtinSystem)
	case ports.PromptRoleUser:
		body = r.lookup(ctx, KeyUserPrompt, builtinUser)
	default:
		return "", fmt.Errorf("unknown prompt role: %s", role)
	}
	prev := data.Previous
	if prev == "" {
		prev = noneLiteral
	}
	next := data.Next
	if next == "" {
		next = noneLiteral
	}
	repl := strings.NewReplacer(
		"{{text}}", data.Text,
		"{{previousSentence}}", prev,
		"{{nextSentence}}", next,
		"{{targetLang}}", data.TargetLang,
	)
	return repl.Replace(body), nil
}

func (r *Renderer) lookup(ctx context.Context, key, builtin string) string {
	if r.Settings == nil {
		return builtin
	}
	v, err := r.Settings.Get(ctx, key)
	if err != nil || strings.TrimSpace(v) == "" {
		return builtin
	}
	return v
}
