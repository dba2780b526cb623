package ledger

import (
	"context"
	"sort"
)

// Stats is the summary view the profile/dashboard layer reads.
type Stats struct {
	OverallRating          float64       `json:"overall_rating"`
	TotalSkills            int           `json:"total_skills"`
	TotalProjectsCompleted int           `json:"total_projects_completed"`
	TotalProjectsFailed    int           `json:"total_projects_failed"`
	SuccessRate            float64       `json:"success_rate"`
	TopSkills              []SkillRating `json:"top_skills"`
}

// statsTopSkills is how many top skills the stats view includes.
const statsTopSkills = 3

// GetStats summarizes a user's ledger. SuccessRate is the completed share of
// all ledger-level project events as a percentage rounded to one decimal, or
// 0 when no projects are recorded.
func (s *Service) GetStats(ctx context.Context, userID string) (*Stats, error) {
	record, err := s.load(ctx, "get stats", userID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		OverallRating:          record.OverallRating,
		TotalSkills:            len(record.Skills),
		TotalProjectsCompleted: record.TotalProjectsCompleted,
		TotalProjectsFailed:    record.TotalProjectsFailed,
		TopSkills:              topSkills(record.Skills, statsTopSkills),
	}

	total := record.TotalProjectsCompleted + record.TotalProjectsFailed
	if total > 0 {
		stats.SuccessRate = round1(100 * float64(record.TotalProjectsCompleted) / float64(total))
	}

	return stats, nil
}

// GetTopSkills returns the user's skills sorted by rating descending,
// truncated to limit. Ties keep insertion order.
func (s *Service) GetTopSkills(ctx context.Context, userID string, limit int) ([]SkillRating, error) {
	record, err := s.load(ctx, "get top skills", userID)
	if err != nil {
		return nil, err
	}
	return topSkills(record.Skills, limit), nil
}

// topSkills sorts a copy of the skill list by rating descending with a stable
// sort, so equal ratings keep their original insertion order, then truncates.
func topSkills(skills []SkillRating, limit int) []SkillRating {
	sorted := make([]SkillRating, len(skills))
	copy(sorted, skills)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
