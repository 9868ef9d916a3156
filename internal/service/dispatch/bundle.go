package dispatch

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const (
	OverdueBannerDuration = 30 * time.Second
	UrgentBannerDuration  = 15 * time.Second
	DefaultBannerDuration = 10 * time.Second

	OverlayVisibleDuration = 2 * time.Second
	OverlayFadeDuration    = 500 * time.Millisecond
)

var (
	severeVibratePattern  = []int{200, 100, 200, 100, 200}
	defaultVibratePattern = []int{200, 100, 200}
)

type Assets struct {
	Icon         string
	Badge        string
	OverlayImage string
}

func DefaultAssets() Assets {
	return Assets{
		Icon:         "/static/accounts/images/ghost-icon.png",
		Badge:        "/static/accounts/images/ghost-icon.png",
		OverlayImage: "/static/tasks/gif/jumpscare.gif",
	}
}

// BuildBundle maps a task and its tier to the alert channels to fire.
// It has no side effects; tag uniqueness comes from now.
func BuildBundle(task domain.Task, tier domain.Tier, assets Assets, now time.Time) domain.AlertBundle {
	title, body, timeText := texts(task, tier)

	vibrate := defaultVibratePattern
	if tier == domain.TierOverdue {
		vibrate = severeVibratePattern
	}

	return domain.AlertBundle{
		Task:        task,
		Tier:        tier,
		PlaySound:   tier.IsSevere(),
		ShowOverlay: tier.IsSevere(),
		Overlay: domain.Overlay{
			Image:   assets.OverlayImage,
			Visible: OverlayVisibleDuration,
			Fade:    OverlayFadeDuration,
		},
		Notification: domain.NotificationRequest{
			Title:              title,
			Body:               body,
			Icon:               assets.Icon,
			Badge:              assets.Badge,
			Tag:                fmt.Sprintf("task-reminder-%s-%d", task.ID, now.UnixMilli()),
			RequireInteraction: tier.IsSevere(),
			Vibrate:            append([]int(nil), vibrate...),
			TaskID:             task.ID,
			Tier:               tier.String(),
		},
		Banner: domain.Banner{
			TaskID:      task.ID,
			TaskName:    task.Name,
			Tier:        tier,
			Icon:        Icon(tier),
			TimeText:    timeText,
			AutoDismiss: BannerDuration(tier),
		},
	}
}

func BannerDuration(tier domain.Tier) time.Duration {
	switch tier {
	case domain.TierOverdue:
		return OverdueBannerDuration
	case domain.TierUrgent:
		return UrgentBannerDuration
	default:
		return DefaultBannerDuration
	}
}

func Icon(tier domain.Tier) string {
	switch tier {
	case domain.TierOverdue:
		return "🚨"
	case domain.TierUrgent:
		return "⚠️"
	case domain.TierWarning:
		return "👻"
	default:
		return "🎃"
	}
}

func texts(task domain.Task, tier domain.Tier) (title, body, timeText string) {
	mins := task.MinutesUntil

	switch tier {
	case domain.TierOverdue:
		return "🚨 OVERDUE TASK!",
			fmt.Sprintf("\"%s\" is overdue! Complete it now!", task.Name),
			"🚨 OVERDUE!"
	case domain.TierUrgent:
		unit := "minutes"
		if mins == 1 {
			unit = "minute"
		}
		return "⚠️ URGENT: Task Due Soon!",
			fmt.Sprintf("\"%s\" is due in %d %s!", task.Name, mins, unit),
			fmt.Sprintf("⚠️ %d min left!", mins)
	case domain.TierWarning:
		return "👻 Task Reminder",
			fmt.Sprintf("\"%s\" is due in %d minutes", task.Name, mins),
			fmt.Sprintf("⏰ %d min left", mins)
	default:
		return "🎃 Task Reminder",
			fmt.Sprintf("\"%s\" is due in %d minutes", task.Name, mins),
			fmt.Sprintf("⏰ %d min left", mins)
	}
}
