package dedup

import (
	"sync"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type TierClassifier interface {
	ClassifyTask(task domain.Task) domain.Tier
}

// Deduplicator gates alerting so that each AlertKey is escalated at most once
// for the lifetime of the process. A task first alerted at a lower tier is not
// re-alerted when it later becomes more urgent under the same key.
type Deduplicator struct {
	classifier TierClassifier

	mu       sync.Mutex
	notified map[domain.AlertKey]domain.Tier
}

func NewDeduplicator(classifier TierClassifier) *Deduplicator {
	return &Deduplicator{
		classifier: classifier,
		notified:   make(map[domain.AlertKey]domain.Tier),
	}
}

// ShouldAlert reports whether task must be dispatched now. The key is recorded
// only when the task is in an actionable tier.
func (d *Deduplicator) ShouldAlert(task domain.Task) bool {
	_, ok := d.Check(task)
	return ok
}

// Check is ShouldAlert that also returns a tier: the recorded one when the key
// was already alerted, otherwise the task's current tier.
func (d *Deduplicator) Check(task domain.Task) (domain.Tier, bool) {
	key := task.Key()

	d.mu.Lock()
	defer d.mu.Unlock()

	if recorded, seen := d.notified[key]; seen {
		return recorded, false
	}

	tier := d.classifier.ClassifyTask(task)
	if !tier.IsActionable() {
		return tier, false
	}

	d.notified[key] = tier
	return tier, true
}

func (d *Deduplicator) Has(key domain.AlertKey) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.notified[key]
	return ok
}

// NotifiedTier returns the tier a key was alerted at.
func (d *Deduplicator) NotifiedTier(key domain.AlertKey) (domain.Tier, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.notified[key]
	return t, ok
}

func (d *Deduplicator) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.notified)
}

// Reset starts a new session.
func (d *Deduplicator) Reset() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(d.notified)
	d.notified = make(map[domain.AlertKey]domain.Tier)
	return n
}
