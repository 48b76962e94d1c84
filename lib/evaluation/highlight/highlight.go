package highlight

import (
	"time"

	"hr-evaluation-backend/models"
)

const (
	NewWindow    = 24 * time.Hour
	RecentWindow = 48 * time.Hour
)

// Input данные строки списка оценок
type Input struct {
	ID          string
	SubmittedAt time.Time
	Status      models.ApprovalStatus
}

// Classify подсветка строки: approved > new (до 24ч, не просмотрена) > recent (до 48ч, не просмотрена) > old
func Classify(in Input, seen map[string]bool, now time.Time) models.Highlight {
	if in.Status == models.ApprovalFullyApproved {
		return models.HighlightApproved
	}
	if seen[in.ID] {
		return models.HighlightOld
	}
	age := now.Sub(in.SubmittedAt)
	switch {
	case age <= NewWindow:
		return models.HighlightNew
	case age <= RecentWindow:
		return models.HighlightRecent
	default:
		return models.HighlightOld
	}
}
