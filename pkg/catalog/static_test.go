package catalog

import (
	"context"
	"testing"
)

func TestSearchFiltering(t *testing.T) {
	tests := []struct {
		name     string
		keywords string
		wantIds  []string
	}{
		{
			name:     "empty keywords return full dataset",
			keywords: "",
			wantIds:  []string{"j1", "j2", "j3", "j4", "j5", "j6", "j7", "j8"},
		},
		{
			name:     "single skill term",
			keywords: "terraform",
			wantIds:  []string{"j4"},
		},
		{
			name:     "tag term",
			keywords: "fintech",
			wantIds:  []string{"j1"},
		},
		{
			name:     "multi term is a union",
			keywords: "java marketing",
			// "java" also matches the JavaScript postings by substring.
			wantIds:  []string{"j2", "j5", "j6", "j8"},
		},
		{
			name:     "no match",
			keywords: "submarine welding",
			wantIds:  []string{},
		},
	}

	cat := NewStaticCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := cat.Search(context.Background(), tt.keywords, "Tunisia")
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(jobs) != len(tt.wantIds) {
				t.Fatalf("got %d jobs, want %d", len(jobs), len(tt.wantIds))
			}
			for i, id := range tt.wantIds {
				if jobs[i].Id != id {
					t.Errorf("jobs[%d].Id = %s, want %s", i, jobs[i].Id, id)
				}
			}
		})
	}
}

func TestSearchReturnsCopies(t *testing.T) {
	cat := NewStaticCatalog()

	first, err := cat.Search(context.Background(), "python", "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected matches for 'python'")
	}

	first[0].Title = "mutated"
	first[0].Tags[0] = "mutated"

	second, err := cat.Search(context.Background(), "python", "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if second[0].Title == "mutated" || second[0].Tags[0] == "mutated" {
		t.Error("catalog results must not share memory with earlier callers")
	}
}

func TestSearchStampsSourceURL(t *testing.T) {
	cat := NewStaticCatalog()
	jobs, err := cat.Search(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	for _, job := range jobs {
		if job.SourceURL == "" {
			t.Errorf("job %s missing source url", job.Id)
		}
	}
}
