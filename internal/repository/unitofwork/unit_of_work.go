package unitofwork

import (
	"context"

	"genui-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRepository() contract.SessionRepository
	ChatEntryRepository() contract.ChatEntryRepository
	GenerationLogRepository() contract.GenerationLogRepository
}
