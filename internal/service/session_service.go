package service

import (
	"context"
	"strings"
	"time"

	"genui-be/internal/apperror"
	"genui-be/internal/constant"
	"genui-be/internal/dto"
	"genui-be/internal/entity"
	"genui-be/internal/repository/specification"
	"genui-be/internal/repository/unitofwork"
	"genui-be/pkg/events"

	"github.com/google/uuid"
)

// IEventPublisher pushes committed domain events to the outbound bus.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type ISessionService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowSessionResponse, error)
	Rename(ctx context.Context, userId uuid.UUID, req *dto.RenameSessionRequest) (*dto.RenameSessionResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type sessionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher IEventPublisher
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher IEventPublisher,
) ISessionService {
	return &sessionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *sessionService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Store("failed to list sessions", err)
	}

	result := make([]*dto.GetAllSessionsResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, &dto.GetAllSessionsResponse{
			Id:        session.Id,
			Name:      session.Name,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		})
	}

	return result, nil
}

func (s *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = constant.DefaultSessionName
	}

	session := entity.Session{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := uow.SessionRepository().Create(ctx, &session); err != nil {
		return nil, apperror.Store("failed to create session", err)
	}

	return &dto.CreateSessionResponse{
		Id:        session.Id,
		Name:      session.Name,
		CreatedAt: session.CreatedAt,
	}, nil
}

func (s *sessionService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Store("failed to load session", err)
	}
	if session == nil {
		return nil, apperror.NotFound("session not found")
	}

	entries, err := uow.ChatEntryRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, apperror.Store("failed to load chat history", err)
	}

	chat := make([]dto.ChatEntryDTO, 0, len(entries))
	for _, entry := range entries {
		chat = append(chat, dto.ChatEntryDTO{
			Role:    entry.Role,
			Message: entry.Message,
		})
	}

	return &dto.ShowSessionResponse{
		Id:   session.Id,
		Name: session.Name,
		Artifact: dto.ArtifactDTO{
			Jsx: session.Artifact.Jsx,
			Css: session.Artifact.Css,
		},
		Chat:      chat,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}, nil
}

func (s *sessionService) Rename(ctx context.Context, userId uuid.UUID, req *dto.RenameSessionRequest) (*dto.RenameSessionResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperror.Validation("session name must not be blank")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Store("failed to load session", err)
	}
	if session == nil {
		return nil, apperror.NotFound("session not found")
	}

	now := time.Now()
	session.Name = req.Name
	session.UpdatedAt = &now

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, apperror.Store("failed to rename session", err)
	}

	return &dto.RenameSessionResponse{
		Id:   session.Id,
		Name: session.Name,
	}, nil
}

func (s *sessionService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return apperror.Store("failed to load session", err)
	}
	if session == nil {
		return apperror.NotFound("session not found")
	}

	// Session and transcript go together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return apperror.Store("failed to start transaction", err)
	}
	defer uow.Rollback()

	if err := uow.ChatEntryRepository().DeleteBySessionId(ctx, id); err != nil {
		return apperror.Store("failed to delete chat history", err)
	}
	if err := uow.SessionRepository().Delete(ctx, id); err != nil {
		return apperror.Store("failed to delete session", err)
	}

	if err := uow.Commit(); err != nil {
		return apperror.Store("failed to commit delete", err)
	}

	if s.eventPublisher != nil {
		// Best effort, the delete is already committed.
		_ = s.eventPublisher.Publish(ctx, events.NewSessionDeletedEvent(id.String(), userId.String()))
	}

	return nil
}
