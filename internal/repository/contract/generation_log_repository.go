package contract

import (
	"context"

	"genui-be/internal/entity"
	"genui-be/internal/repository/specification"
)

type GenerationLogRepository interface {
	Create(ctx context.Context, log *entity.GenerationLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationLog, error)
}
