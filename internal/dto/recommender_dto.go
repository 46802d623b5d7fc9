package dto

import "ai-careercompass-be/pkg/survey"

type StartRecommendationRequest struct {
	Keywords string `json:"keywords" validate:"max=150"`
	Location string `json:"location" validate:"max=100"`
}

type StartRecommendationResponse struct {
	JobCount  int               `json:"job_count"`
	Questions []survey.Question `json:"questions"`
	RequestId string            `json:"request_id,omitempty"`
}

type SubmitAnswersRequest struct {
	RequestId string            `json:"request_id" validate:"required"`
	Answers   map[string]string `json:"answers" validate:"required,min=1"`
}

type RecommendationItem struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      string   `json:"skills"`
	Tags        []string `json:"tags"`
	SourceURL   string   `json:"source_url,omitempty"`
	MatchScore  float64  `json:"match_score"`
	Reason      string   `json:"reason"`
	Provenance  string   `json:"provenance"`
}

type SubmitAnswersResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
}

// RecommendationResolvedMessage is the payload published on the internal bus
// after a session resolves; the consumer archives it.
type RecommendationResolvedMessage struct {
	RequestId       string               `json:"request_id"`
	Keywords        string               `json:"keywords"`
	Location        string               `json:"location"`
	JobCount        int                  `json:"job_count"`
	Recommendations []RecommendationItem `json:"recommendations"`
}
