package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecommendationArchive is the durable trace of one resolved session: the
// search context plus the final ranked results as JSON. Written after
// resolution by the event consumer, never read by the pipeline itself.
type RecommendationArchive struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	RequestId string         `gorm:"type:varchar(64);index"`
	Keywords  string         `gorm:"type:varchar(150)"`
	Location  string         `gorm:"type:varchar(100)"`
	JobCount  int            `gorm:"not null"`
	Results   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
}

func (RecommendationArchive) TableName() string {
	return "recommendation_archives"
}
