package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-careercompass-be/pkg/catalog"

	"github.com/stretchr/testify/assert"
)

type stubVerdicts struct {
	verdicts map[string]Verdict
	err      error
	calls    int
}

func (s *stubVerdicts) AnalyzeMatches(ctx context.Context, shortlist []ScoredJob, answers map[string]string) (map[string]Verdict, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.verdicts, nil
}

func shortlistOf(ids ...string) []ScoredJob {
	out := make([]ScoredJob, 0, len(ids))
	score := 0.9
	for _, id := range ids {
		out = append(out, ScoredJob{Job: catalog.JobPosting{Id: id}, Score: score})
		score -= 0.1
	}
	return out
}

func TestMergeAppliesVerdicts(t *testing.T) {
	stub := &stubVerdicts{verdicts: map[string]Verdict{
		"a": {Score: 0.3, Reason: "weak overlap"},
		"b": {Score: 0.95, Reason: "excellent fit"},
	}}
	m := NewMerger(stub, time.Second, 5)

	got := m.Merge(context.Background(), shortlistOf("a", "b"), nil)

	assert.Len(t, got, 2)
	// b's verdict outranks a's after the re-sort.
	assert.Equal(t, "b", got[0].Job.Id)
	assert.Equal(t, 0.95, got[0].MatchScore)
	assert.Equal(t, "excellent fit", got[0].Reason)
	assert.Equal(t, ProvenanceExternal, got[0].Provenance)
	assert.Equal(t, "a", got[1].Job.Id)
	assert.Equal(t, 1, stub.calls, "one round trip for the whole shortlist")
}

func TestMergePerItemFallback(t *testing.T) {
	stub := &stubVerdicts{verdicts: map[string]Verdict{
		"a": {Score: 0.6, Reason: "good fit"},
		// no entry for "b"
	}}
	m := NewMerger(stub, time.Second, 5)

	got := m.Merge(context.Background(), shortlistOf("a", "b"), nil)

	// a's verdict lowered it to 0.6, so b's untouched 0.8 leads after the
	// re-sort.
	assert.Equal(t, "b", got[0].Job.Id)
	assert.Equal(t, ProvenanceDeterministic, got[0].Provenance)
	assert.Equal(t, 0.8, got[0].MatchScore, "deterministic score kept")
	assert.Equal(t, FallbackReason, got[0].Reason)
	assert.Equal(t, "a", got[1].Job.Id)
	assert.Equal(t, ProvenanceExternal, got[1].Provenance)
	assert.Equal(t, 0.6, got[1].MatchScore)
	assert.Equal(t, "good fit", got[1].Reason)
}

func TestMergeTotalFailureDegradesEverything(t *testing.T) {
	stub := &stubVerdicts{err: errors.New("upstream down")}
	m := NewMerger(stub, time.Second, 5)

	got, err := m.MergeWithOutcome(context.Background(), shortlistOf("a", "b", "c"), nil)

	assert.Error(t, err)
	assert.Len(t, got, 3)
	for _, rec := range got {
		assert.Equal(t, ProvenanceDeterministic, rec.Provenance)
		assert.Equal(t, FallbackReason, rec.Reason)
	}
	// Deterministic ordering preserved.
	assert.Equal(t, "a", got[0].Job.Id)
	assert.Equal(t, "c", got[2].Job.Id)
}

func TestMergeClampsExternalScores(t *testing.T) {
	stub := &stubVerdicts{verdicts: map[string]Verdict{
		"a": {Score: 4.2, Reason: "overshoot"},
		"b": {Score: -1, Reason: "undershoot"},
	}}
	m := NewMerger(stub, time.Second, 5)

	got := m.Merge(context.Background(), shortlistOf("a", "b"), nil)

	assert.Equal(t, 1.0, got[0].MatchScore)
	assert.Equal(t, 0.0, got[1].MatchScore)
}

func TestMergeTruncatesToTopResults(t *testing.T) {
	m := NewMerger(&stubVerdicts{}, time.Second, 5)

	got := m.Merge(context.Background(), shortlistOf("a", "b", "c", "d", "e", "f", "g"), nil)

	assert.Len(t, got, 5)
	assert.Equal(t, "a", got[0].Job.Id)
	assert.Equal(t, "e", got[4].Job.Id)
}

func TestMergeNilProviderStillReturnsResults(t *testing.T) {
	m := NewMerger(nil, time.Second, 5)

	got := m.Merge(context.Background(), shortlistOf("a"), nil)

	assert.Len(t, got, 1)
	assert.Equal(t, ProvenanceDeterministic, got[0].Provenance)
}
