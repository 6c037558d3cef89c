package service

import (
	"context"
	"testing"
	"time"

	"genui-be/internal/apperror"
	"genui-be/internal/constant"
	"genui-be/internal/dto"
	"genui-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSessionDefaultsName(t *testing.T) {
	tests := []struct {
		name     string
		given    string
		wantName string
	}{
		{name: "no name", given: "", wantName: constant.DefaultSessionName},
		{name: "whitespace name", given: "   ", wantName: constant.DefaultSessionName},
		{name: "explicit name", given: "Landing page hero", wantName: "Landing page hero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := newFakeUowFactory()
			svc := NewSessionService(factory, nil)

			res, err := svc.Create(context.Background(), uuid.New(), &dto.CreateSessionRequest{Name: tt.given})
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Name)

			stored := factory.uow.store.sessions[res.Id]
			require.NotNil(t, stored)
			assert.Equal(t, tt.wantName, stored.Name)
			assert.True(t, stored.Artifact.IsEmpty())
		})
	}
}

func TestGetAllNewestFirstAndOwnerScoped(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSessionService(factory, nil)

	userId := uuid.New()
	base := time.Now()
	older := factory.seedSession(userId, "older", entity.Artifact{}, base.Add(-time.Hour))
	newer := factory.seedSession(userId, "newer", entity.Artifact{}, base)
	factory.seedSession(uuid.New(), "foreign", entity.Artifact{}, base.Add(time.Hour))

	res, err := svc.GetAll(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, newer.Id, res[0].Id)
	assert.Equal(t, older.Id, res[1].Id)
}

func TestShowSessionWithChatAndArtifact(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSessionService(factory, nil)

	userId := uuid.New()
	artifact := entity.Artifact{Jsx: "function X() {}", Css: ".x {}"}
	session := factory.seedSession(userId, "s", artifact, time.Now())

	now := time.Now()
	factory.uow.store.entries = []*entity.ChatEntry{
		{Id: uuid.New(), SessionId: session.Id, Role: constant.ChatRoleAssistant, Message: constant.GenerationAckMessage, CreatedAt: now.Add(time.Second)},
		{Id: uuid.New(), SessionId: session.Id, Role: constant.ChatRoleUser, Message: "a widget", CreatedAt: now},
	}

	res, err := svc.Show(context.Background(), userId, session.Id)
	require.NoError(t, err)
	assert.Equal(t, artifact.Jsx, res.Artifact.Jsx)
	assert.Equal(t, artifact.Css, res.Artifact.Css)

	// Transcript comes back in chronological order regardless of insertion order.
	require.Len(t, res.Chat, 2)
	assert.Equal(t, constant.ChatRoleUser, res.Chat[0].Role)
	assert.Equal(t, constant.ChatRoleAssistant, res.Chat[1].Role)
}

func TestShowForeignSessionLooksAbsent(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSessionService(factory, nil)

	session := factory.seedSession(uuid.New(), "s", entity.Artifact{}, time.Now())

	_, err := svc.Show(context.Background(), uuid.New(), session.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRenameSession(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSessionService(factory, nil)

	userId := uuid.New()
	session := factory.seedSession(userId, "old name", entity.Artifact{}, time.Now())

	res, err := svc.Rename(context.Background(), userId, &dto.RenameSessionRequest{Id: session.Id, Name: "new name"})
	require.NoError(t, err)
	assert.Equal(t, "new name", res.Name)

	stored := factory.uow.store.sessions[session.Id]
	assert.Equal(t, "new name", stored.Name)
	assert.NotNil(t, stored.UpdatedAt)
}

func TestRenameRejectsBlankName(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSessionService(factory, nil)

	userId := uuid.New()
	session := factory.seedSession(userId, "old name", entity.Artifact{}, time.Now())

	for _, blank := range []string{"", "   ", "\t\n"} {
		_, err := svc.Rename(context.Background(), userId, &dto.RenameSessionRequest{Id: session.Id, Name: blank})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	}
	assert.Equal(t, "old name", factory.uow.store.sessions[session.Id].Name)
}

func TestRenameForeignSessionLooksAbsent(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSessionService(factory, nil)

	session := factory.seedSession(uuid.New(), "s", entity.Artifact{}, time.Now())

	_, err := svc.Rename(context.Background(), uuid.New(), &dto.RenameSessionRequest{Id: session.Id, Name: "mine now"})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.Equal(t, "s", factory.uow.store.sessions[session.Id].Name)
}

func TestDeleteSessionRemovesTranscript(t *testing.T) {
	factory := newFakeUowFactory()
	eventPub := &fakeEventPublisher{}
	svc := NewSessionService(factory, eventPub)

	userId := uuid.New()
	session := factory.seedSession(userId, "s", entity.Artifact{}, time.Now())
	other := factory.seedSession(userId, "other", entity.Artifact{}, time.Now())

	now := time.Now()
	factory.uow.store.entries = []*entity.ChatEntry{
		{Id: uuid.New(), SessionId: session.Id, Role: constant.ChatRoleUser, Message: "a", CreatedAt: now},
		{Id: uuid.New(), SessionId: other.Id, Role: constant.ChatRoleUser, Message: "b", CreatedAt: now},
	}

	require.NoError(t, svc.Delete(context.Background(), userId, session.Id))

	assert.Nil(t, factory.uow.store.sessions[session.Id])
	assert.NotNil(t, factory.uow.store.sessions[other.Id])
	require.Len(t, factory.uow.store.entries, 1)
	assert.Equal(t, other.Id, factory.uow.store.entries[0].SessionId)

	require.Len(t, eventPub.published, 1)
	assert.Equal(t, "SESSION_DELETED", eventPub.published[0].EventType())
}

func TestDeleteForeignSessionLooksAbsent(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewSessionService(factory, nil)

	session := factory.seedSession(uuid.New(), "s", entity.Artifact{}, time.Now())

	err := svc.Delete(context.Background(), uuid.New(), session.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.NotNil(t, factory.uow.store.sessions[session.Id])
}
