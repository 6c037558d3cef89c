package service

import (
	"context"
	"encoding/json"
	"time"

	"genui-be/internal/apperror"
	"genui-be/internal/constant"
	"genui-be/internal/dto"
	"genui-be/internal/entity"
	"genui-be/internal/metrics"
	"genui-be/internal/pkg/lock"
	"genui-be/internal/pkg/logger"
	"genui-be/internal/repository/specification"
	"genui-be/internal/repository/unitofwork"
	"genui-be/pkg/genui/prompt"
	"genui-be/pkg/genui/sanitizer"
	"genui-be/pkg/llm"

	"github.com/google/uuid"
)

const generationLockPrefix = "genui:generation:"

type IGenerationService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateComponentRequest) (*dto.GenerateComponentResponse, error)
}

type generationService struct {
	uowFactory       unitofwork.RepositoryFactory
	provider         llm.LLMProvider
	model            string
	promptBuilder    *prompt.Builder
	locker           lock.Locker
	publisherService IPublisherService
	logger           logger.ILogger
	timeout          time.Duration
}

func NewGenerationService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.LLMProvider,
	model string,
	locker lock.Locker,
	publisherService IPublisherService,
	log logger.ILogger,
	timeout time.Duration,
) IGenerationService {
	return &generationService{
		uowFactory:       uowFactory,
		provider:         provider,
		model:            model,
		promptBuilder:    prompt.NewBuilder(),
		locker:           locker,
		publisherService: publisherService,
		logger:           log,
		timeout:          timeout,
	}
}

func (g *generationService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateComponentRequest) (*dto.GenerateComponentResponse, error) {
	fullPrompt, err := g.promptBuilder.Build(req.Prompt)
	if err != nil {
		return nil, err
	}

	uow := g.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: req.SessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Store("failed to load session", err)
	}
	if session == nil {
		return nil, apperror.NotFound("session not found")
	}

	// One in-flight generation per session. The TTL outlives the gateway
	// timeout so the lock cannot expire under a live call.
	lockKey := generationLockPrefix + session.Id.String()
	token, err := g.locker.TryLock(ctx, lockKey, g.timeout+10*time.Second)
	if err != nil {
		if err == lock.ErrLockHeld {
			metrics.LockContention(g.provider.Name())
			return nil, apperror.Validation("generation already in progress for this session")
		}
		return nil, apperror.Store("failed to acquire generation lock", err)
	}
	defer g.locker.Unlock(ctx, lockKey, token)

	raw, latency, err := g.callModel(ctx, fullPrompt)
	if err != nil {
		metrics.GenerationFailed(g.provider.Name(), g.model, string(apperror.KindGateway))
		g.notify(ctx, session, userId, "failed", "Model request failed")
		return nil, apperror.Gateway("ai gateway unavailable", err)
	}

	artifact, err := sanitizer.Parse(raw)
	if err != nil {
		// Nothing is persisted for a response we cannot trust.
		metrics.GenerationFailed(g.provider.Name(), g.model, string(apperror.KindMalformedResponse))
		g.notify(ctx, session, userId, "failed", "Model returned an unusable response")
		return nil, err
	}

	if err := g.persistGeneration(ctx, uow, session, userId, req.Prompt, artifact, latency); err != nil {
		metrics.GenerationFailed(g.provider.Name(), g.model, string(apperror.KindStore))
		return nil, err
	}

	metrics.ObserveGeneration(g.provider.Name(), g.model, int(latency.Milliseconds()), true)
	g.logger.Info("GenerationService", "Component generated", map[string]interface{}{
		"session_id": session.Id,
		"user_id":    userId,
		"provider":   g.provider.Name(),
		"model":      g.model,
		"latency_ms": latency.Milliseconds(),
	})
	g.notify(ctx, session, userId, "completed", constant.GenerationAckMessage)

	return &dto.GenerateComponentResponse{
		Jsx: artifact.Jsx,
		Css: artifact.Css,
	}, nil
}

// callModel performs the round trip with a bounded timeout and one retry on
// transport failure. Context cancellation from the caller is not retried.
func (g *generationService) callModel(ctx context.Context, fullPrompt string) (string, time.Duration, error) {
	start := time.Now()

	var raw string
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		raw, err = g.provider.Generate(callCtx, fullPrompt, llm.WithModel(g.model))
		cancel()

		if err == nil {
			return raw, time.Since(start), nil
		}
		if ctx.Err() != nil {
			break
		}
		g.logger.Warn("GenerationService", "Model call failed, retrying", map[string]interface{}{
			"attempt": attempt + 1,
			"error":   err.Error(),
		})
	}

	return "", time.Since(start), err
}

// persistGeneration applies the whole mutation in one transaction: two new
// transcript entries, the replaced artifact, and the usage log row.
func (g *generationService) persistGeneration(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	session *entity.Session,
	userId uuid.UUID,
	userPrompt string,
	artifact *entity.Artifact,
	latency time.Duration,
) error {
	if err := uow.Begin(ctx); err != nil {
		return apperror.Store("failed to start transaction", err)
	}
	defer uow.Rollback()

	now := time.Now()
	entries := []*entity.ChatEntry{
		{
			Id:        uuid.New(),
			SessionId: session.Id,
			Role:      constant.ChatRoleUser,
			Message:   userPrompt,
			CreatedAt: now,
		},
		{
			Id:        uuid.New(),
			SessionId: session.Id,
			Role:      constant.ChatRoleAssistant,
			Message:   constant.GenerationAckMessage,
			CreatedAt: now.Add(time.Millisecond),
		},
	}
	if err := uow.ChatEntryRepository().CreateBulk(ctx, entries); err != nil {
		return apperror.Store("failed to append chat entries", err)
	}

	session.Artifact = *artifact
	session.UpdatedAt = &now
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return apperror.Store("failed to save generated component", err)
	}

	genLog := entity.GenerationLog{
		Id:           uuid.New(),
		SessionId:    session.Id,
		UserId:       userId,
		Provider:     g.provider.Name(),
		Model:        g.model,
		PromptLength: len(userPrompt),
		LatencyMs:    latency.Milliseconds(),
		CreatedAt:    now,
	}
	if err := uow.GenerationLogRepository().Create(ctx, &genLog); err != nil {
		return apperror.Store("failed to record generation log", err)
	}

	if err := uow.Commit(); err != nil {
		return apperror.Store("failed to commit generation", err)
	}
	return nil
}

func (g *generationService) notify(ctx context.Context, session *entity.Session, userId uuid.UUID, status, message string) {
	if g.publisherService == nil {
		return
	}
	msg := dto.PublishGenerationMessage{
		SessionId: session.Id,
		UserId:    userId,
		Provider:  g.provider.Name(),
		Model:     g.model,
		Status:    status,
		Message:   message,
	}
	msgJson, _ := json.Marshal(msg)
	if err := g.publisherService.Publish(ctx, msgJson); err != nil {
		g.logger.Warn("GenerationService", "Failed to publish generation message", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
	}
}
