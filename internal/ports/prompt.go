package ports

import "context"

const (
	PromptRoleSystem = "system"
	PromptRoleUser   = "user"
)

// PromptData carries everything the templates may reference. Previous/Next are
// empty when the selection sat at a block boundary or could not be located;
// the renderer substitutes the literal "(none)" for them.
type PromptData struct {
	Text       string
	Previous   string
	Next       string
	TargetLang string
}

type PromptRenderer interface {
	Render(ctx context.Context, role string, data PromptData) (string, error)
}
