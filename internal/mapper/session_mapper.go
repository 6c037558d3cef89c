package mapper

import (
	"encoding/json"
	"time"

	"genui-be/internal/entity"
	"genui-be/internal/model"

	"gorm.io/datatypes"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

// Session Mappers

func (m *SessionMapper) SessionToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	// An unreadable artifact column degrades to the empty pair rather than
	// failing the whole read; the column is always written by ArtifactToJSON.
	var artifact entity.Artifact
	if len(s.Artifact) > 0 {
		_ = json.Unmarshal(s.Artifact, &artifact)
	}

	return &entity.Session{
		Id:        s.Id,
		UserId:    s.UserId,
		Name:      s.Name,
		Artifact:  artifact,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SessionMapper) SessionToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Session{
		Id:        s.Id,
		UserId:    s.UserId,
		Name:      s.Name,
		Artifact:  m.ArtifactToJSON(s.Artifact),
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SessionMapper) ArtifactToJSON(a entity.Artifact) datatypes.JSON {
	data, _ := json.Marshal(a)
	return datatypes.JSON(data)
}

// Chat Entry Mappers

func (m *SessionMapper) ChatEntryToEntity(e *model.ChatEntry) *entity.ChatEntry {
	if e == nil {
		return nil
	}

	return &entity.ChatEntry{
		Id:        e.Id,
		SessionId: e.SessionId,
		Role:      e.Role,
		Message:   e.Message,
		CreatedAt: e.CreatedAt,
	}
}

func (m *SessionMapper) ChatEntryToModel(e *entity.ChatEntry) *model.ChatEntry {
	if e == nil {
		return nil
	}

	return &model.ChatEntry{
		Id:        e.Id,
		SessionId: e.SessionId,
		Role:      e.Role,
		Message:   e.Message,
		CreatedAt: e.CreatedAt,
	}
}

// Generation Log Mappers

func (m *SessionMapper) GenerationLogToModel(l *entity.GenerationLog) *model.GenerationLog {
	if l == nil {
		return nil
	}

	return &model.GenerationLog{
		Id:           l.Id,
		SessionId:    l.SessionId,
		UserId:       l.UserId,
		Provider:     l.Provider,
		Model:        l.Model,
		PromptLength: l.PromptLength,
		LatencyMs:    l.LatencyMs,
		CreatedAt:    l.CreatedAt,
	}
}

func (m *SessionMapper) GenerationLogToEntity(l *model.GenerationLog) *entity.GenerationLog {
	if l == nil {
		return nil
	}

	return &entity.GenerationLog{
		Id:           l.Id,
		SessionId:    l.SessionId,
		UserId:       l.UserId,
		Provider:     l.Provider,
		Model:        l.Model,
		PromptLength: l.PromptLength,
		LatencyMs:    l.LatencyMs,
		CreatedAt:    l.CreatedAt,
	}
}
