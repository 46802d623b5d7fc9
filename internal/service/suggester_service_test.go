package service

import (
	"context"
	"testing"

	"ai-careercompass-be/internal/dto"
	"ai-careercompass-be/pkg/llm"
	"ai-careercompass-be/pkg/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply    string
	err      error
	lastChat []llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.lastChat = history
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.reply, f.err
}

const suggestionsJSON = `{
	"suggestions": [
		{"career": "Data Engineer", "reason": "Strong analytical answers."},
		{"career": "Backend Developer", "reason": "Enjoys building systems."}
	],
	"summary": "A systems-minded profile with a data leaning."
}`

func intPtr(v int) *int { return &v }

func TestSuggesterStartReturnsFirstQuestion(t *testing.T) {
	svc := NewSuggesterService(&fakeLLM{}, noopLogger{})

	resp, err := svc.Start(context.Background())
	require.NoError(t, err)

	require.NotNil(t, resp.NextQuestion)
	assert.Equal(t, survey.CareerQuestions()[0].Id, resp.NextQuestion.Id)
	assert.Equal(t, 0, resp.CurrentQuestionIndex)
	assert.Empty(t, resp.AnswersSoFar)
}

func TestSuggesterAnswerAdvances(t *testing.T) {
	svc := NewSuggesterService(&fakeLLM{}, noopLogger{})

	resp, err := svc.Answer(context.Background(), &dto.SuggesterAnswerRequest{
		Answer:               "I love solving puzzles",
		CurrentQuestionIndex: intPtr(0),
		AnswersSoFar:         map[string]string{},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.NextQuestion)
	assert.Equal(t, survey.CareerQuestions()[1].Id, resp.NextQuestion.Id)
	assert.Equal(t, 1, resp.CurrentQuestionIndex)
	assert.Len(t, resp.AnswersSoFar, 1)
	assert.Nil(t, resp.Suggestions)
}

func TestSuggesterAnswerRejectsBadIndex(t *testing.T) {
	svc := NewSuggesterService(&fakeLLM{}, noopLogger{})

	_, err := svc.Answer(context.Background(), &dto.SuggesterAnswerRequest{
		Answer:               "hello",
		CurrentQuestionIndex: intPtr(99),
	})
	assert.ErrorIs(t, err, ErrInvalidQuestionIndex)
}

func TestSuggesterFinalAnswerGeneratesSuggestions(t *testing.T) {
	provider := &fakeLLM{reply: suggestionsJSON}
	svc := NewSuggesterService(provider, noopLogger{})

	questions := survey.CareerQuestions()
	answers := map[string]string{}
	for _, q := range questions[:len(questions)-1] {
		answers[q.Text] = "some answer"
	}

	resp, err := svc.Answer(context.Background(), &dto.SuggesterAnswerRequest{
		Answer:               "final answer",
		CurrentQuestionIndex: intPtr(len(questions) - 1),
		AnswersSoFar:         answers,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.NextQuestion)
	require.NotNil(t, resp.Suggestions)
	assert.Len(t, resp.Suggestions.Suggestions, 2)
	assert.Equal(t, "Data Engineer", resp.Suggestions.Suggestions[0].Career)
	assert.NotEmpty(t, resp.Suggestions.Summary)
	assert.Len(t, resp.FinalAnswers, len(questions))

	// The system persona goes first, the collected answers go in the user turn.
	require.NotEmpty(t, provider.lastChat)
	assert.Equal(t, "system", provider.lastChat[0].Role)
}

func TestSuggesterFinalAnswerSurfacesLLMError(t *testing.T) {
	svc := NewSuggesterService(&fakeLLM{err: llm.ErrUnavailable}, noopLogger{})

	questions := survey.CareerQuestions()
	_, err := svc.Answer(context.Background(), &dto.SuggesterAnswerRequest{
		Answer:               "final answer",
		CurrentQuestionIndex: intPtr(len(questions) - 1),
		AnswersSoFar:         map[string]string{},
	})
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestParseCareerSuggestionsStripsFence(t *testing.T) {
	fenced := "```json\n" + suggestionsJSON + "\n```"
	parsed, err := parseCareerSuggestions(fenced)
	require.NoError(t, err)
	assert.Len(t, parsed.Suggestions, 2)
}

func TestParseCareerSuggestionsRejectsIncomplete(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "sorry, I cannot help"},
		{"missing summary", `{"suggestions":[{"career":"X","reason":"Y"}]}`},
		{"empty suggestions", `{"suggestions":[],"summary":"s"}`},
		{"blank entry", `{"suggestions":[{"career":"","reason":"Y"}],"summary":"s"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseCareerSuggestions(tc.raw)
			assert.Error(t, err)
		})
	}
}
