package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ai-careercompass-be/internal/constant"
	"ai-careercompass-be/internal/dto"
	"ai-careercompass-be/internal/pkg/logger"
	"ai-careercompass-be/pkg/llm"
	"ai-careercompass-be/pkg/survey"
)

// ErrInvalidQuestionIndex rejects an answer for a question that does not exist.
var ErrInvalidQuestionIndex = errors.New("invalid question index")

type ISuggesterService interface {
	Start(ctx context.Context) (*dto.SuggesterStartResponse, error)
	Answer(ctx context.Context, request *dto.SuggesterAnswerRequest) (*dto.SuggesterAnswerResponse, error)
}

// suggesterService walks the caller through the fixed career interview and,
// after the last answer, asks the LLM for structured career suggestions. The
// accumulated answers travel with the client between steps; no server-side
// session is needed here.
type suggesterService struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewSuggesterService(provider llm.LLMProvider, sysLogger logger.ILogger) ISuggesterService {
	return &suggesterService{provider: provider, logger: sysLogger}
}

func (s *suggesterService) Start(ctx context.Context) (*dto.SuggesterStartResponse, error) {
	questions := survey.CareerQuestions()
	if len(questions) == 0 {
		return nil, errors.New("no questions defined")
	}
	first := questions[0]
	return &dto.SuggesterStartResponse{
		NextQuestion:         &first,
		AnswersSoFar:         map[string]string{},
		CurrentQuestionIndex: 0,
	}, nil
}

func (s *suggesterService) Answer(ctx context.Context, request *dto.SuggesterAnswerRequest) (*dto.SuggesterAnswerResponse, error) {
	questions := survey.CareerQuestions()
	index := *request.CurrentQuestionIndex
	if index < 0 || index >= len(questions) {
		return nil, ErrInvalidQuestionIndex
	}

	answers := request.AnswersSoFar
	if answers == nil {
		answers = map[string]string{}
	}
	answers[questions[index].Text] = strings.TrimSpace(request.Answer)

	nextIndex := index + 1
	if nextIndex < len(questions) {
		next := questions[nextIndex]
		return &dto.SuggesterAnswerResponse{
			NextQuestion:         &next,
			AnswersSoFar:         answers,
			CurrentQuestionIndex: nextIndex,
		}, nil
	}

	s.logger.Info("suggester", "All questions answered, requesting suggestions", map[string]interface{}{
		"answers": len(answers),
	})

	suggestions, err := s.generateSuggestions(ctx, answers)
	if err != nil {
		return nil, err
	}

	return &dto.SuggesterAnswerResponse{
		NextQuestion:         nil,
		CurrentQuestionIndex: nextIndex,
		Suggestions:          suggestions,
		FinalAnswers:         answers,
	}, nil
}

func (s *suggesterService) generateSuggestions(ctx context.Context, answers map[string]string) (*dto.CareerSuggestions, error) {
	var prompt strings.Builder
	prompt.WriteString("Analyze the following User Answers to generate career suggestions:\n")
	for _, q := range survey.CareerQuestions() {
		answer, ok := answers[q.Text]
		if !ok {
			continue
		}
		if len(answer) > 500 {
			answer = answer[:500]
		}
		fmt.Fprintf(&prompt, "- %q: %q\n", q.Text, answer)
	}

	raw, err := s.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: constant.CareerSuggesterSystemPrompt},
		{Role: "user", Content: prompt.String()},
	}, llm.WithTemperature(0.25))
	if err != nil {
		return nil, err
	}

	suggestions, err := parseCareerSuggestions(raw)
	if err != nil {
		s.logger.Warn("suggester", "Suggestion response failed validation", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return suggestions, nil
}

func parseCareerSuggestions(raw string) (*dto.CareerSuggestions, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	var parsed dto.CareerSuggestions
	if err := json.Unmarshal([]byte(strings.TrimSpace(cleaned)), &parsed); err != nil {
		return nil, fmt.Errorf("suggestion response is not valid JSON: %w", err)
	}
	if len(parsed.Suggestions) == 0 || parsed.Summary == "" {
		return nil, errors.New("suggestion response is missing required keys")
	}
	for _, item := range parsed.Suggestions {
		if item.Career == "" || item.Reason == "" {
			return nil, errors.New("suggestion response has incomplete entries")
		}
	}
	return &parsed, nil
}
