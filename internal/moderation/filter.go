package moderation

import "github.com/looplineapp/loopline-backend/internal/models"

// FilterByStatus returns the reports whose status equals status, preserving
// input order. StatusAll (or empty) returns the input unchanged.
func FilterByStatus(reports []models.Report, status string) []models.Report {
	if status == StatusAll || status == "" {
		return reports
	}
	out := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// CountByStatus counts reports with the given status. Recomputed on every
// call; the summary counters are cheap enough not to cache.
func CountByStatus(reports []models.Report, status string) int {
	n := 0
	for _, r := range reports {
		if r.Status == status {
			n++
		}
	}
	return n
}
