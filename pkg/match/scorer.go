package match

import (
	"sort"
	"strconv"
	"strings"

	"ai-careercompass-be/pkg/catalog"
)

// Additive weight model anchored at a neutral baseline. Each signal fires only
// when the answer key is present and the posting carries the matching domain;
// the final score is clamped to [0,1].
const (
	baselineScore = 0.5

	weightPrimarySkill   = 0.05 // per rating point above 1
	weightSecondarySkill = 0.04
	weightInterest       = 0.03
	weightPlatform       = 0.15
	weightRolePref       = 0.12
	weightWorkModeMatch  = 0.10
	weightWorkModeOffice = 0.05
	weightCompanyType    = 0.08
)

// roleVocabulary is the controlled token set the role-preference overlap check
// is restricted to. Free text outside this set never contributes.
var roleVocabulary = map[string]struct{}{
	"backend":      {},
	"frontend":     {},
	"full stack":   {},
	"devops":       {},
	"cloud":        {},
	"data science": {},
	"marketing":    {},
	"research":     {},
	"java":         {},
	"python":       {},
	"developer":    {},
}

// Score computes the deterministic match score for one posting. Pure: no state,
// no external calls, same inputs always give the same output. A malformed
// answer value (e.g. a non-numeric rating) skips its signal instead of failing
// the posting.
func Score(job catalog.JobPosting, answers map[string]string) float64 {
	score := baselineScore

	skills := strings.ToLower(job.Skills)
	title := strings.ToLower(job.Title)
	location := strings.ToLower(job.Location)
	tags := make([]string, 0, len(job.Tags))
	for _, t := range job.Tags {
		tags = append(tags, strings.ToLower(t))
	}

	if rating, ok := parseRating(answers, "q_skill_python"); ok &&
		(strings.Contains(skills, "python") || hasTag(tags, "backend") || hasTag(tags, "full stack") || hasTag(tags, "data science")) {
		score += float64(rating-1) * weightPrimarySkill
	}

	if rating, ok := parseRating(answers, "q_skill_frontend"); ok &&
		(strings.Contains(skills, "react") || hasTag(tags, "frontend") || hasTag(tags, "full stack") || strings.Contains(skills, "javascript")) {
		score += float64(rating-1) * weightSecondarySkill
	}

	if strings.EqualFold(strings.TrimSpace(answers["q_skill_cloud"]), "yes") &&
		(hasTag(tags, "cloud") || strings.Contains(skills, "aws") || hasTag(tags, "devops")) {
		score += weightPlatform
	}

	if rating, ok := parseRating(answers, "q_interest_data"); ok &&
		(hasTag(tags, "data science") || hasTag(tags, "ml") || strings.Contains(skills, "analytics")) {
		score += float64(rating-1) * weightInterest
	}

	if pref, ok := answers["q_preference_role"]; ok {
		prefLower := strings.ToLower(pref)
		keywords := append([]string{}, tags...)
		keywords = append(keywords, strings.Fields(title)...)
		for _, s := range strings.Split(skills, ",") {
			keywords = append(keywords, strings.TrimSpace(s))
		}
		for _, keyword := range keywords {
			if _, known := roleVocabulary[keyword]; known && strings.Contains(prefLower, keyword) {
				score += weightRolePref
				break
			}
		}
	}

	if pref, ok := answers["q_preference_work_mode"]; ok {
		switch strings.ToLower(strings.TrimSpace(pref)) {
		case "remote":
			if strings.Contains(location, "remote") || hasTag(tags, "remote") {
				score += weightWorkModeMatch
			}
		case "hybrid":
			if strings.Contains(location, "hybrid") || hasTag(tags, "hybrid") {
				score += weightWorkModeMatch
			}
		case "office":
			if !strings.Contains(location, "remote") && !strings.Contains(location, "hybrid") &&
				!hasTag(tags, "remote") && !hasTag(tags, "hybrid") {
				score += weightWorkModeOffice
			}
		}
	}

	if pref, ok := answers["q_preference_company_type"]; ok {
		prefLower := strings.ToLower(pref)
		if strings.Contains(prefLower, "startup") && hasTag(tags, "startup") {
			score += weightCompanyType
		} else if (strings.Contains(prefLower, "large") || strings.Contains(prefLower, "enterprise")) && hasTag(tags, "enterprise") {
			score += weightCompanyType
		}
	}

	return clamp(score)
}

// Rank scores every posting and returns them sorted descending; postings with
// equal scores keep their catalog order.
func Rank(jobs []catalog.JobPosting, answers map[string]string) []ScoredJob {
	ranked := make([]ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		ranked = append(ranked, ScoredJob{Job: job, Score: Score(job, answers)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Shortlist truncates a ranked list to at most n entries. This bounds the
// payload sent to the reasoning collaborator.
func Shortlist(ranked []ScoredJob, n int) []ScoredJob {
	if n <= 0 || len(ranked) <= n {
		return ranked
	}
	return ranked[:n]
}

func parseRating(answers map[string]string, key string) (int, bool) {
	raw, ok := answers[key]
	if !ok {
		return 0, false
	}
	rating, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return rating, true
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
