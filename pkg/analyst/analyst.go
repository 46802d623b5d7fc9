// Package analyst is the client side of the external reasoning collaborator:
// it ships a scored shortlist plus the user's survey answers to the LLM in a
// single round trip and parses the structured verdicts that come back.
package analyst

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-careercompass-be/pkg/llm"
	"ai-careercompass-be/pkg/match"
)

const matchSystemPrompt = `You are an AI Job Match Analyst.
Analyze user answers and job details. Provide concise justifications and match scores (0.0-1.0).
Your response MUST be a single, valid JSON object with one key match_results (a list of objects, each with job_id (string), match_score (float), reason (string)). Ensure an entry for every job ID provided.
CRITICAL INSTRUCTION: Your response MUST be ONLY a single, valid JSON object conforming to the structure requested. Do not include any introductory text, explanations, apologies, or markdown formatting like ` + "```json ... ```" + `.`

// Analyst implements match.VerdictProvider on top of an LLM provider.
type Analyst struct {
	provider llm.LLMProvider
}

var _ match.VerdictProvider = &Analyst{}

func NewAnalyst(provider llm.LLMProvider) *Analyst {
	return &Analyst{provider: provider}
}

// AnalyzeMatches asks the model for one verdict per shortlisted posting.
// The error is informational for the caller's logs; the merger treats any
// error as "no verdicts".
func (a *Analyst) AnalyzeMatches(ctx context.Context, shortlist []match.ScoredJob, answers map[string]string) (map[string]match.Verdict, error) {
	prompt, err := buildMatchPrompt(shortlist, answers)
	if err != nil {
		return nil, fmt.Errorf("build match prompt: %w", err)
	}

	raw, err := a.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: matchSystemPrompt},
		{Role: "user", Content: prompt},
	}, llm.WithTemperature(0.15))
	if err != nil {
		return nil, fmt.Errorf("match analysis call: %w", err)
	}

	verdicts, err := parseVerdicts(raw)
	if err != nil {
		return nil, err
	}
	return verdicts, nil
}

func buildMatchPrompt(shortlist []match.ScoredJob, answers map[string]string) (string, error) {
	answersJSON, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Analyze the following job matches based on the user's survey answers:\n\n")
	b.WriteString("User Survey Answers:\n")
	b.Write(answersJSON)
	b.WriteString("\n\nJob Details to Analyze:\n")

	for _, scored := range shortlist {
		job := scored.Job
		detail := map[string]any{
			"id":          job.Id,
			"title":       job.Title,
			"company":     job.Company,
			"location":    job.Location,
			"description": job.Description,
			"skills":      job.Skills,
			"tags":        job.Tags,
		}
		detailJSON, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "Job ID: %s\n", job.Id)
		b.Write(detailJSON)
		b.WriteString("\n\n")
	}

	return b.String(), nil
}
