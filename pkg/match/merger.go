package match

import (
	"context"
	"sort"
	"time"
)

// FallbackReason is attached to results that kept their deterministic score.
const FallbackReason = "Basic score applied; match analysis unavailable for this item."

// Merger combines deterministic shortlist scores with verdicts from the
// reasoning collaborator. The collaborator is best-effort: any failure, total
// or per-item, degrades to the deterministic score and is never surfaced as an
// error.
type Merger struct {
	verdicts   VerdictProvider
	timeout    time.Duration
	topResults int
}

func NewMerger(verdicts VerdictProvider, timeout time.Duration, topResults int) *Merger {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if topResults <= 0 {
		topResults = 5
	}
	return &Merger{verdicts: verdicts, timeout: timeout, topResults: topResults}
}

// Merge resolves the final recommendation list for a shortlist. The verdict
// call is bounded by the configured timeout; a timeout is treated the same as
// any other collaborator failure.
func (m *Merger) Merge(ctx context.Context, shortlist []ScoredJob, answers map[string]string) []Recommendation {
	merged, _ := m.MergeWithOutcome(ctx, shortlist, answers)
	return merged
}

// MergeWithOutcome is Merge plus the collaborator error (nil on success), so
// the pipeline can log degraded runs without changing merge semantics.
func (m *Merger) MergeWithOutcome(ctx context.Context, shortlist []ScoredJob, answers map[string]string) ([]Recommendation, error) {
	var verdicts map[string]Verdict
	var verdictErr error
	if m.verdicts != nil && len(shortlist) > 0 {
		callCtx, cancel := context.WithTimeout(ctx, m.timeout)
		defer cancel()
		verdicts, verdictErr = m.verdicts.AnalyzeMatches(callCtx, shortlist, answers)
	}

	return m.assemble(shortlist, verdicts), verdictErr
}

func (m *Merger) assemble(shortlist []ScoredJob, verdicts map[string]Verdict) []Recommendation {
	merged := make([]Recommendation, 0, len(shortlist))
	for _, scored := range shortlist {
		rec := Recommendation{
			Job:        scored.Job,
			MatchScore: scored.Score,
			Reason:     FallbackReason,
			Provenance: ProvenanceDeterministic,
		}
		if verdict, ok := verdicts[scored.Job.Id]; ok {
			rec.MatchScore = clamp(verdict.Score)
			rec.Reason = verdict.Reason
			rec.Provenance = ProvenanceExternal
		}
		merged = append(merged, rec)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].MatchScore > merged[j].MatchScore
	})

	if len(merged) > m.topResults {
		merged = merged[:m.topResults]
	}
	return merged
}
