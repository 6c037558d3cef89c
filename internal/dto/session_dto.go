package dto

import (
	"time"

	"github.com/google/uuid"
)

type ArtifactDTO struct {
	Jsx string `json:"jsx"`
	Css string `json:"css"`
}

type ChatEntryDTO struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

type CreateSessionRequest struct {
	Name string `json:"name"` // optional, defaults to "Untitled Session"
}

type CreateSessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ShowSessionResponse struct {
	Id        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Artifact  ArtifactDTO    `json:"generated_code"`
	Chat      []ChatEntryDTO `json:"chat"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at"`
}

type RenameSessionRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required"`
}

type RenameSessionResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
