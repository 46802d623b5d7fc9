package integration

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"

	"ai-careercompass-be/internal/model"
	"ai-careercompass-be/internal/repository/implementation"
	"ai-careercompass-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestArchiveRepository(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	require.NoError(t, gormDB.AutoMigrate(&model.RecommendationArchive{}))

	repo := implementation.NewRecommendationArchiveRepository(gormDB)
	ctx := context.Background()

	t.Run("Check Archive Count", func(t *testing.T) {
		count, err := repo.Count(ctx)
		assert.NoError(t, err)
		t.Logf("Archive count: %d", count)
	})

	t.Run("Create And Find Archive", func(t *testing.T) {
		requestId := uuid.NewString()
		results, _ := json.Marshal([]map[string]interface{}{
			{"id": "j1", "match_score": 0.85, "reason": "integration test"},
		})

		archive := &model.RecommendationArchive{
			RequestId: requestId,
			Keywords:  "python backend",
			Location:  "Tunis",
			JobCount:  3,
			Results:   datatypes.JSON(results),
		}
		require.NoError(t, repo.Create(ctx, archive))

		found, err := repo.FindByRequestId(ctx, requestId)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "python backend", found.Keywords)
		assert.Equal(t, 3, found.JobCount)

		// Cleanup
		gormDB.Delete(&model.RecommendationArchive{}, "request_id = ?", requestId)
	})

	t.Run("Find Unknown Request", func(t *testing.T) {
		found, err := repo.FindByRequestId(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
