package dto

import (
	"github.com/google/uuid"
)

type GenerateComponentRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Prompt    string    `json:"prompt" validate:"required"`
}

type GenerateComponentResponse struct {
	Jsx string `json:"jsx"`
	Css string `json:"css"`
}

// PublishGenerationMessage travels over the in-process bus from the
// generation pipeline to the consumer that fans notices out.
type PublishGenerationMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	UserId    uuid.UUID `json:"user_id"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	Status    string    `json:"status"` // "completed" | "failed"
	Message   string    `json:"message"`
}
