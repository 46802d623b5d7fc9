package service

import (
	"context"
	"encoding/json"
	"errors"

	"ai-careercompass-be/internal/dto"
	"ai-careercompass-be/internal/pkg/logger"
	"ai-careercompass-be/internal/repository/memory"
	"ai-careercompass-be/pkg/catalog"
	"ai-careercompass-be/pkg/match"
	"ai-careercompass-be/pkg/survey"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ErrInvalidSession covers unknown, expired, and already-resolved session
// identifiers uniformly; callers cannot tell the three apart.
var ErrInvalidSession = errors.New("invalid or expired request session")

type IRecommenderService interface {
	Start(ctx context.Context, request *dto.StartRecommendationRequest) (*dto.StartRecommendationResponse, error)
	Submit(ctx context.Context, request *dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error)
}

// recommenderService is the two-phase session pipeline: Start captures a
// scored-search context under a TTL-bounded session, Submit consumes the
// session exactly once and merges deterministic scores with the analyst's
// verdicts.
type recommenderService struct {
	catalog       catalog.Catalog
	sessions      *memory.SessionStore
	merger        *match.Merger
	shortlistSize int
	pubSub        *gochannel.GoChannel
	resolvedTopic string
	logger        logger.ILogger
}

func NewRecommenderService(
	jobCatalog catalog.Catalog,
	sessions *memory.SessionStore,
	merger *match.Merger,
	shortlistSize int,
	pubSub *gochannel.GoChannel,
	resolvedTopic string,
	sysLogger logger.ILogger,
) IRecommenderService {
	if shortlistSize <= 0 {
		shortlistSize = 7
	}
	return &recommenderService{
		catalog:       jobCatalog,
		sessions:      sessions,
		merger:        merger,
		shortlistSize: shortlistSize,
		pubSub:        pubSub,
		resolvedTopic: resolvedTopic,
		logger:        sysLogger,
	}
}

func (s *recommenderService) Start(ctx context.Context, request *dto.StartRecommendationRequest) (*dto.StartRecommendationResponse, error) {
	location := request.Location
	if location == "" {
		location = "Tunisia"
	}

	jobs, err := s.catalog.Search(ctx, request.Keywords, location)
	if err != nil {
		return nil, err
	}

	// An empty result is a successful answer, not a failure. No session is
	// created, so there is nothing for a later Submit to find.
	if len(jobs) == 0 {
		s.logger.Info("recommender", "No matching jobs for search", map[string]interface{}{
			"keywords": request.Keywords,
			"location": location,
		})
		return &dto.StartRecommendationResponse{
			JobCount:  0,
			Questions: []survey.Question{},
		}, nil
	}

	questions := survey.RecommenderQuestions()
	requestId := s.sessions.Insert(&memory.SessionRecord{
		Jobs:      jobs,
		Questions: questions,
		Keywords:  request.Keywords,
		Location:  location,
	})

	s.logger.Info("recommender", "Recommendation session started", map[string]interface{}{
		"request_id": requestId,
		"job_count":  len(jobs),
		"questions":  len(questions),
	})

	return &dto.StartRecommendationResponse{
		JobCount:  len(jobs),
		Questions: questions,
		RequestId: requestId,
	}, nil
}

func (s *recommenderService) Submit(ctx context.Context, request *dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error) {
	record, ok := s.sessions.Take(request.RequestId)
	if !ok {
		s.logger.Warn("recommender", "Submit with unknown or expired session", map[string]interface{}{
			"request_id": request.RequestId,
		})
		return nil, ErrInvalidSession
	}

	// The session is gone from here on, whatever happens below.

	s.logUnknownAnswerKeys(request.RequestId, record.Questions, request.Answers)

	ranked := match.Rank(record.Jobs, request.Answers)
	shortlist := match.Shortlist(ranked, s.shortlistSize)

	recommendations, verdictErr := s.merger.MergeWithOutcome(ctx, shortlist, request.Answers)
	if verdictErr != nil {
		s.logger.Warn("recommender", "Match analysis degraded to deterministic scores", map[string]interface{}{
			"request_id": request.RequestId,
			"error":      verdictErr.Error(),
		})
	}

	items := make([]dto.RecommendationItem, 0, len(recommendations))
	for _, rec := range recommendations {
		items = append(items, toRecommendationItem(rec))
	}

	s.publishResolved(record, request.RequestId, items)

	s.logger.Info("recommender", "Recommendation session resolved", map[string]interface{}{
		"request_id": request.RequestId,
		"results":    len(items),
	})

	return &dto.SubmitAnswersResponse{Recommendations: items}, nil
}

// logUnknownAnswerKeys flags answer keys outside the questionnaire without
// rejecting them; unknown keys simply contribute nothing to scoring.
func (s *recommenderService) logUnknownAnswerKeys(requestId string, questions []survey.Question, answers map[string]string) {
	known := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		known[q.Id] = struct{}{}
	}
	var unknown []string
	for key := range answers {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		s.logger.Warn("recommender", "Answers contain keys not present in the questionnaire", map[string]interface{}{
			"request_id":   requestId,
			"unknown_keys": unknown,
		})
	}
}

// publishResolved emits the resolved-session event on the internal bus,
// best-effort: the caller's response never depends on it.
func (s *recommenderService) publishResolved(record *memory.SessionRecord, requestId string, items []dto.RecommendationItem) {
	if s.pubSub == nil {
		return
	}

	payload, err := json.Marshal(dto.RecommendationResolvedMessage{
		RequestId:       requestId,
		Keywords:        record.Keywords,
		Location:        record.Location,
		JobCount:        len(record.Jobs),
		Recommendations: items,
	})
	if err != nil {
		s.logger.Error("recommender", "Failed to marshal resolved event", map[string]interface{}{
			"request_id": requestId,
			"error":      err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.resolvedTopic, msg); err != nil {
		s.logger.Error("recommender", "Failed to publish resolved event", map[string]interface{}{
			"request_id": requestId,
			"error":      err.Error(),
		})
	}
}

func toRecommendationItem(rec match.Recommendation) dto.RecommendationItem {
	return dto.RecommendationItem{
		Id:          rec.Job.Id,
		Title:       rec.Job.Title,
		Company:     rec.Job.Company,
		Location:    rec.Job.Location,
		Description: rec.Job.Description,
		Skills:      rec.Job.Skills,
		Tags:        rec.Job.Tags,
		SourceURL:   rec.Job.SourceURL,
		MatchScore:  rec.MatchScore,
		Reason:      rec.Reason,
		Provenance:  string(rec.Provenance),
	}
}
