package analyst

import (
	"testing"
)

func TestParseVerdicts(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantErr   bool
		wantCount int
	}{
		{
			name:      "plain json",
			raw:       `{"match_results":[{"job_id":"j1","match_score":0.8,"reason":"fits"}]}`,
			wantCount: 1,
		},
		{
			name:      "json fenced in markdown",
			raw:       "```json\n{\"match_results\":[{\"job_id\":\"j1\",\"match_score\":0.8,\"reason\":\"fits\"}]}\n```",
			wantCount: 1,
		},
		{
			name:      "bare fence",
			raw:       "```\n{\"match_results\":[]}\n```",
			wantCount: 0,
		},
		{
			name:    "not json at all",
			raw:     "Sure! Here are your matches:",
			wantErr: true,
		},
		{
			name:    "missing match_results key",
			raw:     `{"results":[]}`,
			wantErr: true,
		},
		{
			name: "non-numeric score skips the entry only",
			raw: `{"match_results":[
				{"job_id":"j1","match_score":"high","reason":"fits"},
				{"job_id":"j2","match_score":0.4,"reason":"partial"}
			]}`,
			wantCount: 1,
		},
		{
			name: "missing keys skip the entry only",
			raw: `{"match_results":[
				{"job_id":"j1","match_score":0.9},
				{"match_score":0.9,"reason":"orphan"},
				{"job_id":"j3","match_score":0.7,"reason":"ok"}
			]}`,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdicts, err := parseVerdicts(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVerdicts() error = %v", err)
			}
			if len(verdicts) != tt.wantCount {
				t.Errorf("got %d verdicts, want %d", len(verdicts), tt.wantCount)
			}
		})
	}
}

func TestParseVerdictsKeepsValues(t *testing.T) {
	verdicts, err := parseVerdicts(`{"match_results":[{"job_id":"j3","match_score":0.87,"reason":"Strong Python and data interest"}]}`)
	if err != nil {
		t.Fatalf("parseVerdicts() error = %v", err)
	}
	v, ok := verdicts["j3"]
	if !ok {
		t.Fatal("verdict for j3 missing")
	}
	if v.Score != 0.87 {
		t.Errorf("Score = %v, want 0.87", v.Score)
	}
	if v.Reason != "Strong Python and data interest" {
		t.Errorf("Reason = %q", v.Reason)
	}
}
