package domain

import "time"

// NotificationRequest carries the parameters of one system notification.
type NotificationRequest struct {
	Title              string `json:"title"`
	Body               string `json:"body"`
	Icon               string `json:"icon"`
	Badge              string `json:"badge"`
	Tag                string `json:"tag"`
	RequireInteraction bool   `json:"require_interaction"`
	Vibrate            []int  `json:"vibrate"`
	TaskID             TaskID `json:"task_id"`
	Tier               string `json:"tier"`
}

// Banner is an in-page alert element appended to the alert container.
type Banner struct {
	TaskID      TaskID
	TaskName    string
	Tier        Tier
	Icon        string
	TimeText    string
	AutoDismiss time.Duration
}

// Overlay is the transient fullscreen element shown for severe tiers.
type Overlay struct {
	Image   string
	Visible time.Duration
	Fade    time.Duration
}

// AlertBundle is everything dispatched for one task crossing into a tier.
type AlertBundle struct {
	Task         Task
	Tier         Tier
	PlaySound    bool
	ShowOverlay  bool
	Overlay      Overlay
	Notification NotificationRequest
	Banner       Banner
}
