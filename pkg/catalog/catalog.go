package catalog

import "context"

// JobPosting is one opportunity record as produced by the catalog. The
// recommendation pipeline never mutates a posting; Search hands out copies.
type JobPosting struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Skills      string   `json:"skills"` // comma-separated skill list
	Tags        []string `json:"tags"`
	SourceURL   string   `json:"source_url,omitempty"`
}

// Clone returns a caller-owned copy of the posting.
func (j JobPosting) Clone() JobPosting {
	out := j
	out.Tags = append([]string(nil), j.Tags...)
	return out
}

// Catalog produces the ordered candidate list for one recommendation session.
type Catalog interface {
	Search(ctx context.Context, keywords, location string) ([]JobPosting, error)
}
