package domain

// Tier represents how close a task is to its deadline.
// The zero value TierNone means the task is not actionable yet.
type Tier int

const (
	TierNone Tier = iota
	TierNormal
	TierWarning
	TierUrgent
	TierOverdue
)

func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierWarning:
		return "warning"
	case TierUrgent:
		return "urgent"
	case TierOverdue:
		return "overdue"
	default:
		return "none"
	}
}

func (t Tier) IsActionable() bool {
	return t >= TierNormal && t <= TierOverdue
}

// IsSevere reports whether the tier interrupts the user (sound, overlay,
// notification that stays until dismissed).
func (t Tier) IsSevere() bool {
	return t == TierUrgent || t == TierOverdue
}

func ParseTier(s string) (Tier, bool) {
	switch s {
	case "normal":
		return TierNormal, true
	case "warning":
		return TierWarning, true
	case "urgent":
		return TierUrgent, true
	case "overdue":
		return TierOverdue, true
	default:
		return TierNone, false
	}
}
