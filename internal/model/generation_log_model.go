package model

import (
	"time"

	"github.com/google/uuid"
)

type GenerationLog struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider     string    `gorm:"type:varchar(50);not null"`
	Model        string    `gorm:"type:varchar(100);not null"`
	PromptLength int       `gorm:"not null"`
	LatencyMs    int64     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (GenerationLog) TableName() string {
	return "generation_logs"
}
