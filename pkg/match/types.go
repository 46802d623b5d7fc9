package match

import (
	"context"

	"ai-careercompass-be/pkg/catalog"
)

// Provenance marks where a recommendation's final score came from.
type Provenance string

const (
	// ProvenanceExternal means the score and reason came from the reasoning
	// collaborator's verdict.
	ProvenanceExternal Provenance = "external-verdict"

	// ProvenanceDeterministic means the local weighted score was kept because
	// no usable verdict was available for the posting.
	ProvenanceDeterministic Provenance = "deterministic"
)

// ScoredJob pairs a posting with its deterministic score.
type ScoredJob struct {
	Job   catalog.JobPosting
	Score float64
}

// Verdict is one well-formed per-posting entry from the reasoning collaborator.
type Verdict struct {
	Score  float64
	Reason string
}

// Recommendation is the merged, final result handed back to the caller.
type Recommendation struct {
	Job        catalog.JobPosting
	MatchScore float64
	Reason     string
	Provenance Provenance
}

// VerdictProvider is the external reasoning collaborator: one round trip for
// the whole shortlist, returning verdicts keyed by posting id. Missing entries
// and total failure are both expected outcomes the merger must absorb.
type VerdictProvider interface {
	AnalyzeMatches(ctx context.Context, shortlist []ScoredJob, answers map[string]string) (map[string]Verdict, error)
}
