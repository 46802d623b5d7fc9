package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-careercompass-be/internal/dto"
	"ai-careercompass-be/internal/model"
	"ai-careercompass-be/internal/repository/contract"
	"ai-careercompass-be/pkg/events"
	careernats "ai-careercompass-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains resolved-recommendation events off the internal bus,
// archives them, and forwards them to NATS when a publisher is configured.
// Archive repository and NATS publisher are both optional; a nil dependency
// simply skips that step.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	archives  contract.RecommendationArchiveRepository
	publisher *careernats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	archives contract.RecommendationArchiveRepository,
	publisher *careernats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		archives:  archives,
		publisher: publisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RecommendationResolvedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal resolved message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Archiving resolved recommendation for RequestId: %s", payload.RequestId)

	if cs.archives != nil {
		results, err := json.Marshal(payload.Recommendations)
		if err != nil {
			log.Printf("[ERROR] Failed to marshal recommendations for %s: %v", payload.RequestId, err)
			msg.Ack()
			return
		}

		archive := &model.RecommendationArchive{
			Id:        uuid.New(),
			RequestId: payload.RequestId,
			Keywords:  payload.Keywords,
			Location:  payload.Location,
			JobCount:  payload.JobCount,
			Results:   datatypes.JSON(results),
			CreatedAt: time.Now(),
		}
		if err := cs.archives.Create(ctx, archive); err != nil {
			log.Printf("[ERROR] Failed to archive recommendation %s: %v", payload.RequestId, err)
			msg.Nack() // Nack for retriable errors
			return
		}
	}

	if cs.publisher != nil {
		event := events.NewRecommendationResolved(payload.RequestId, map[string]interface{}{
			"keywords":  payload.Keywords,
			"location":  payload.Location,
			"job_count": payload.JobCount,
		})
		if err := cs.publisher.Publish(ctx, event); err != nil {
			// External bus is best-effort; the archive already succeeded.
			log.Printf("[WARN] Failed to forward event for %s: %v", payload.RequestId, err)
		}
	}

	log.Printf("[SUCCESS] Resolved recommendation processed for RequestId: %s", payload.RequestId)
	msg.Ack()
}
