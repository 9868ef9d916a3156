package tier

import (
	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

// Upper bounds (inclusive) in minutes for each tier. Anything at or below
// OverdueThreshold is overdue; anything above NormalThreshold is not actionable.
const (
	OverdueThreshold = 0
	UrgentThreshold  = 5
	WarningThreshold = 15
	NormalThreshold  = 30
)

type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

func (c *Classifier) Classify(minutesUntil int) domain.Tier {
	switch {
	case minutesUntil <= OverdueThreshold:
		return domain.TierOverdue
	case minutesUntil <= UrgentThreshold:
		return domain.TierUrgent
	case minutesUntil <= WarningThreshold:
		return domain.TierWarning
	case minutesUntil <= NormalThreshold:
		return domain.TierNormal
	default:
		return domain.TierNone
	}
}

func (c *Classifier) ClassifyTask(task domain.Task) domain.Tier {
	return c.Classify(task.MinutesUntil)
}
