package analyst

import (
	"encoding/json"
	"fmt"
	"strings"

	"ai-careercompass-be/pkg/match"
)

// parseVerdicts extracts per-posting verdicts from the raw model output.
// A malformed top-level document is an error; a malformed individual entry is
// skipped so the merger falls back for that posting only.
func parseVerdicts(raw string) (map[string]match.Verdict, error) {
	cleaned := stripCodeFence(raw)

	var envelope struct {
		MatchResults []json.RawMessage `json:"match_results"`
	}
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, fmt.Errorf("match analysis response is not valid JSON: %w", err)
	}
	if envelope.MatchResults == nil {
		return nil, fmt.Errorf("match analysis response is missing match_results")
	}

	verdicts := make(map[string]match.Verdict, len(envelope.MatchResults))
	for _, item := range envelope.MatchResults {
		var entry struct {
			JobId      string   `json:"job_id"`
			MatchScore *float64 `json:"match_score"`
			Reason     string   `json:"reason"`
		}
		if err := json.Unmarshal(item, &entry); err != nil {
			continue // malformed entry, not a merge failure
		}
		if entry.JobId == "" || entry.MatchScore == nil || entry.Reason == "" {
			continue
		}
		verdicts[entry.JobId] = match.Verdict{
			Score:  *entry.MatchScore,
			Reason: entry.Reason,
		}
	}
	return verdicts, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block that some models
// insist on emitting despite the prompt.
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
