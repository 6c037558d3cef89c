package prompt

import (
	"fmt"
	"strings"

	"genui-be/internal/apperror"
	"genui-be/internal/constant"
)

// Builder composes the instruction sent to the model from a raw user prompt.
// The template pins down output shape so the sanitizer can rely on it.
type Builder struct {
	template string
}

func NewBuilder() *Builder {
	return &Builder{
		template: constant.ComponentPromptTemplateV1,
	}
}

// Build embeds the user prompt verbatim into the component template.
// The prompt is not trimmed or rewritten, only validated.
func (b *Builder) Build(userPrompt string) (string, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", apperror.Validation("prompt is required")
	}
	return fmt.Sprintf(b.template, userPrompt), nil
}
