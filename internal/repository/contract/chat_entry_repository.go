package contract

import (
	"context"

	"genui-be/internal/entity"
	"genui-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatEntryRepository interface {
	Create(ctx context.Context, entry *entity.ChatEntry) error
	CreateBulk(ctx context.Context, entries []*entity.ChatEntry) error
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
