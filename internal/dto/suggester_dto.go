package dto

import "ai-careercompass-be/pkg/survey"

type SuggesterStartResponse struct {
	NextQuestion         *survey.Question  `json:"next_question"`
	AnswersSoFar         map[string]string `json:"answers_so_far"`
	CurrentQuestionIndex int               `json:"current_question_index"`
}

type SuggesterAnswerRequest struct {
	Answer               string            `json:"answer" validate:"required,min=1,max=1500"`
	CurrentQuestionIndex *int              `json:"current_question_index" validate:"required,min=0"`
	AnswersSoFar         map[string]string `json:"answers_so_far"`
}

type CareerSuggestion struct {
	Career string `json:"career"`
	Reason string `json:"reason"`
}

type CareerSuggestions struct {
	Suggestions []CareerSuggestion `json:"suggestions"`
	Summary     string             `json:"summary"`
}

type SuggesterAnswerResponse struct {
	NextQuestion         *survey.Question   `json:"next_question"`
	AnswersSoFar         map[string]string  `json:"answers_so_far,omitempty"`
	CurrentQuestionIndex int                `json:"current_question_index"`
	Suggestions          *CareerSuggestions `json:"suggestions,omitempty"`
	FinalAnswers         map[string]string  `json:"final_answers,omitempty"`
}
