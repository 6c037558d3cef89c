package implementation

import (
	"context"

	"genui-be/internal/entity"
	"genui-be/internal/mapper"
	"genui-be/internal/model"
	"genui-be/internal/repository/contract"
	"genui-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewChatEntryRepository(db *gorm.DB) contract.ChatEntryRepository {
	return &ChatEntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *ChatEntryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatEntryRepositoryImpl) Create(ctx context.Context, entry *entity.ChatEntry) error {
	m := r.mapper.ChatEntryToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ChatEntryToEntity(m)
	return nil
}

func (r *ChatEntryRepositoryImpl) CreateBulk(ctx context.Context, entries []*entity.ChatEntry) error {
	if len(entries) == 0 {
		return nil
	}
	models := make([]*model.ChatEntry, len(entries))
	for i, e := range entries {
		models[i] = r.mapper.ChatEntryToModel(e)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *ChatEntryRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.ChatEntry{}).Error
}

func (r *ChatEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatEntry, error) {
	var models []*model.ChatEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatEntry, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ChatEntryToEntity(m)
	}
	return entities, nil
}

func (r *ChatEntryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
