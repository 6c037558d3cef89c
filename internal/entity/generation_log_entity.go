package entity

import (
	"time"

	"github.com/google/uuid"
)

// GenerationLog records one completed generation for usage accounting.
type GenerationLog struct {
	Id           uuid.UUID
	SessionId    uuid.UUID
	UserId       uuid.UUID
	Provider     string
	Model        string
	PromptLength int
	LatencyMs    int64
	CreatedAt    time.Time
}
