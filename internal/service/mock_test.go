package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"genui-be/internal/entity"
	"genui-be/internal/repository/contract"
	"genui-be/internal/repository/specification"
	"genui-be/internal/repository/unitofwork"
	"genui-be/pkg/events"
	"genui-be/pkg/llm"

	"github.com/google/uuid"
)

// --- In-memory repositories ------------------------------------------------
// Specifications are interpreted by type switch, mirroring what the SQL
// translation does for the fields the services actually filter on.

type fakeStore struct {
	sessions map[uuid.UUID]*entity.Session
	entries  []*entity.ChatEntry
	logs     []*entity.GenerationLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, sess := range s.sessions {
		cp := *sess
		c.sessions[id] = &cp
	}
	c.entries = append([]*entity.ChatEntry(nil), s.entries...)
	c.logs = append([]*entity.GenerationLog(nil), s.logs...)
	return c
}

func matchSession(sess *entity.Session, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if sess.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if sess.UserId != sp.UserID {
				return false
			}
		}
	}
	return true
}

type fakeSessionRepository struct {
	store *fakeStore
	err   error
}

func (r *fakeSessionRepository) Create(_ context.Context, session *entity.Session) error {
	if r.err != nil {
		return r.err
	}
	cp := *session
	r.store.sessions[session.Id] = &cp
	return nil
}

func (r *fakeSessionRepository) Update(_ context.Context, session *entity.Session) error {
	if r.err != nil {
		return r.err
	}
	cp := *session
	r.store.sessions[session.Id] = &cp
	return nil
}

func (r *fakeSessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	delete(r.store.sessions, id)
	return nil
}

func (r *fakeSessionRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Session, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, sess := range r.store.sessions {
		if matchSession(sess, specs) {
			cp := *sess
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Session
	for _, sess := range r.store.sessions {
		if matchSession(sess, specs) {
			cp := *sess
			out = append(out, &cp)
		}
	}
	for _, spec := range specs {
		if sp, ok := spec.(specification.OrderBy); ok && sp.Field == "created_at" {
			sort.Slice(out, func(i, j int) bool {
				if sp.Desc {
					return out[i].CreatedAt.After(out[j].CreatedAt)
				}
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			})
		}
	}
	return out, nil
}

func (r *fakeSessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type fakeChatEntryRepository struct {
	store *fakeStore
	err   error
}

func (r *fakeChatEntryRepository) Create(_ context.Context, entry *entity.ChatEntry) error {
	if r.err != nil {
		return r.err
	}
	cp := *entry
	r.store.entries = append(r.store.entries, &cp)
	return nil
}

func (r *fakeChatEntryRepository) CreateBulk(ctx context.Context, entries []*entity.ChatEntry) error {
	for _, entry := range entries {
		if err := r.Create(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeChatEntryRepository) DeleteBySessionId(_ context.Context, sessionId uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	kept := r.store.entries[:0]
	for _, entry := range r.store.entries {
		if entry.SessionId != sessionId {
			kept = append(kept, entry)
		}
	}
	r.store.entries = kept
	return nil
}

func (r *fakeChatEntryRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.ChatEntry
	for _, entry := range r.store.entries {
		keep := true
		for _, spec := range specs {
			if sp, ok := spec.(specification.BySessionID); ok && entry.SessionId != sp.SessionID {
				keep = false
			}
		}
		if keep {
			cp := *entry
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeChatEntryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

type fakeGenerationLogRepository struct {
	store *fakeStore
	err   error
}

func (r *fakeGenerationLogRepository) Create(_ context.Context, log *entity.GenerationLog) error {
	if r.err != nil {
		return r.err
	}
	cp := *log
	r.store.logs = append(r.store.logs, &cp)
	return nil
}

func (r *fakeGenerationLogRepository) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.GenerationLog, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]*entity.GenerationLog(nil), r.store.logs...), nil
}

// --- Unit of work -----------------------------------------------------------
// Begin snapshots the store, Rollback restores it. All repositories mutate
// the live store, so uncommitted work disappears like a real transaction.

type fakeUnitOfWork struct {
	store *fakeStore

	snapshot  *fakeStore
	committed bool

	sessionErr error
	chatErr    error
	logErr     error
	commitErr  error
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error {
	u.snapshot = u.store.clone()
	u.committed = false
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	if u.commitErr != nil {
		return u.commitErr
	}
	u.committed = true
	u.snapshot = nil
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if u.snapshot != nil && !u.committed {
		*u.store = *u.snapshot
	}
	u.snapshot = nil
	return nil
}

func (u *fakeUnitOfWork) SessionRepository() contract.SessionRepository {
	return &fakeSessionRepository{store: u.store, err: u.sessionErr}
}

func (u *fakeUnitOfWork) ChatEntryRepository() contract.ChatEntryRepository {
	return &fakeChatEntryRepository{store: u.store, err: u.chatErr}
}

func (u *fakeUnitOfWork) GenerationLogRepository() contract.GenerationLogRepository {
	return &fakeGenerationLogRepository{store: u.store, err: u.logErr}
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{uow: &fakeUnitOfWork{store: newFakeStore()}}
}

func (f *fakeUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func (f *fakeUowFactory) seedSession(userId uuid.UUID, name string, artifact entity.Artifact, createdAt time.Time) *entity.Session {
	session := &entity.Session{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      name,
		Artifact:  artifact,
		CreatedAt: createdAt,
	}
	f.uow.store.sessions[session.Id] = session
	return session
}

// --- Collaborators ----------------------------------------------------------

type fakeProvider struct {
	responses []string
	errs      []error
	calls     int
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	idx := p.calls
	p.calls++
	var err error
	if idx < len(p.errs) {
		err = p.errs[idx]
	}
	if err != nil {
		return "", err
	}
	if idx < len(p.responses) {
		return p.responses[idx], nil
	}
	if len(p.responses) > 0 {
		return p.responses[len(p.responses)-1], nil
	}
	return "", errors.New("no response configured")
}

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return p.Generate(ctx, history[len(history)-1].Content, opts...)
}

type fakePublisher struct {
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

type fakeEventPublisher struct {
	published []events.Event
}

func (p *fakeEventPublisher) Publish(_ context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
