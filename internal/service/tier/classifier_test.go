package tier

import (
	"testing"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name         string
		minutesUntil int
		wantTier     domain.Tier
	}{
		// Overdue (<=0)
		{name: "long overdue should be Overdue", minutesUntil: -120, wantTier: domain.TierOverdue},
		{name: "one minute late should be Overdue", minutesUntil: -1, wantTier: domain.TierOverdue},
		{name: "exactly zero should be Overdue, not Urgent", minutesUntil: 0, wantTier: domain.TierOverdue},
		// Urgent (1..5)
		{name: "one minute left should be Urgent", minutesUntil: 1, wantTier: domain.TierUrgent},
		{name: "three minutes left should be Urgent", minutesUntil: 3, wantTier: domain.TierUrgent},
		{name: "five minutes (threshold) should be Urgent", minutesUntil: 5, wantTier: domain.TierUrgent},
		// Warning (6..15)
		{name: "six minutes should be Warning", minutesUntil: 6, wantTier: domain.TierWarning},
		{name: "fifteen minutes (threshold) should be Warning", minutesUntil: 15, wantTier: domain.TierWarning},
		// Normal (16..30)
		{name: "sixteen minutes should be Normal", minutesUntil: 16, wantTier: domain.TierNormal},
		{name: "thirty minutes (threshold) should be Normal", minutesUntil: 30, wantTier: domain.TierNormal},
		// Not actionable (>30)
		{name: "thirty one minutes should be None", minutesUntil: 31, wantTier: domain.TierNone},
		{name: "a day away should be None", minutesUntil: 24 * 60, wantTier: domain.TierNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.minutesUntil)

			if got != tt.wantTier {
				t.Errorf("Classify(%d) = %v, want %v", tt.minutesUntil, got, tt.wantTier)
			}
		})
	}
}

func TestClassifier_NotActionableAboveNormalThreshold(t *testing.T) {
	classifier := NewClassifier()

	for minutes := NormalThreshold + 1; minutes <= NormalThreshold+500; minutes++ {
		if got := classifier.Classify(minutes); got.IsActionable() {
			t.Fatalf("Classify(%d) = %v, want not actionable", minutes, got)
		}
	}
}

func TestClassifier_IsDeterministic(t *testing.T) {
	classifier := NewClassifier()

	for minutes := -60; minutes <= 60; minutes++ {
		first := classifier.Classify(minutes)
		for i := 0; i < 3; i++ {
			if got := classifier.Classify(minutes); got != first {
				t.Fatalf("Classify(%d) changed from %v to %v", minutes, first, got)
			}
		}
	}
}

func TestClassifier_ClassifyTask(t *testing.T) {
	classifier := NewClassifier()

	task := domain.Task{ID: "1", Name: "Essay", MinutesUntil: 3}
	if got := classifier.ClassifyTask(task); got != domain.TierUrgent {
		t.Errorf("ClassifyTask() = %v, want %v", got, domain.TierUrgent)
	}
}
