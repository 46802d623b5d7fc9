package contract

import (
	"context"

	"ai-careercompass-be/internal/model"
)

type RecommendationArchiveRepository interface {
	Create(ctx context.Context, archive *model.RecommendationArchive) error
	FindByRequestId(ctx context.Context, requestId string) (*model.RecommendationArchive, error)
	Count(ctx context.Context) (int64, error)
}
