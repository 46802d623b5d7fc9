package implementation

import (
	"context"
	"errors"

	"ai-careercompass-be/internal/model"
	"ai-careercompass-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecommendationArchiveRepositoryImpl struct {
	db *gorm.DB
}

func NewRecommendationArchiveRepository(db *gorm.DB) contract.RecommendationArchiveRepository {
	return &RecommendationArchiveRepositoryImpl{db: db}
}

func (r *RecommendationArchiveRepositoryImpl) Create(ctx context.Context, archive *model.RecommendationArchive) error {
	if archive.Id == uuid.Nil {
		archive.Id = uuid.New()
	}
	return r.db.WithContext(ctx).Create(archive).Error
}

func (r *RecommendationArchiveRepositoryImpl) FindByRequestId(ctx context.Context, requestId string) (*model.RecommendationArchive, error) {
	var archive model.RecommendationArchive
	err := r.db.WithContext(ctx).Where("request_id = ?", requestId).First(&archive).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &archive, nil
}

func (r *RecommendationArchiveRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.RecommendationArchive{}).Count(&count).Error
	return count, err
}
