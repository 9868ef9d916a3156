// Package board keeps the in-process alert surface: the banner container and
// the transient full-screen overlay.
package board

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/clock"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const (
	ContainerID = "reminder-alerts-container"

	SlideOutDuration = 300 * time.Millisecond
)

type Phase string

const (
	PhaseVisible Phase = "visible"
	PhaseLeaving Phase = "leaving"
)

type BannerState struct {
	ID        string        `json:"id"`
	TaskID    domain.TaskID `json:"task_id"`
	TaskName  string        `json:"task_name"`
	Tier      string        `json:"tier"`
	Icon      string        `json:"icon"`
	TimeText  string        `json:"time_text"`
	Phase     Phase         `json:"phase"`
	ShownAt   time.Time     `json:"shown_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

type OverlayState struct {
	ID      string    `json:"id"`
	Image   string    `json:"image"`
	Phase   Phase     `json:"phase"`
	ShownAt time.Time `json:"shown_at"`
}

type Snapshot struct {
	ContainerID string         `json:"container_id,omitempty"`
	Banners     []BannerState  `json:"banners"`
	Overlays    []OverlayState `json:"overlays"`
}

type bannerEntry struct {
	state BannerState
	timer clock.Timer
}

type overlayEntry struct {
	state OverlayState
	timer clock.Timer
}

// Board implements domain.AlertRenderer. Elements remove themselves on timers
// driven by the injected clock.
type Board struct {
	clock clock.Clock

	mu        sync.Mutex
	container bool
	banners   map[string]*bannerEntry
	overlays  map[string]*overlayEntry
}

func New(clk clock.Clock) *Board {
	return &Board{
		clock:    clk,
		banners:  make(map[string]*bannerEntry),
		overlays: make(map[string]*overlayEntry),
	}
}

// ShowBanner appends a banner to the container, creating the container on
// first use, and returns the banner's ID.
func (b *Board) ShowBanner(banner domain.Banner) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.container {
		b.container = true
		slog.Debug("alert container created", slog.String("container_id", ContainerID))
	}

	now := b.clock.Now()
	id := uuid.NewString()
	entry := &bannerEntry{
		state: BannerState{
			ID:        id,
			TaskID:    banner.TaskID,
			TaskName:  banner.TaskName,
			Tier:      banner.Tier.String(),
			Icon:      banner.Icon,
			TimeText:  banner.TimeText,
			Phase:     PhaseVisible,
			ShownAt:   now,
			ExpiresAt: now.Add(banner.AutoDismiss),
		},
	}
	entry.timer = b.clock.AfterFunc(banner.AutoDismiss, func() { b.slideOut(id) })
	b.banners[id] = entry

	return id
}

// ShowOverlay shows the overlay for its visible duration, then fades it out
// and removes it.
func (b *Board) ShowOverlay(overlay domain.Overlay) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	entry := &overlayEntry{
		state: OverlayState{
			ID:      id,
			Image:   overlay.Image,
			Phase:   PhaseVisible,
			ShownAt: b.clock.Now(),
		},
	}
	fade := overlay.Fade
	entry.timer = b.clock.AfterFunc(overlay.Visible, func() { b.fadeOverlay(id, fade) })
	b.overlays[id] = entry

	return id
}

// Dismiss removes a banner at once, as the close control does.
func (b *Board) Dismiss(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.banners[id]
	if !ok {
		return false
	}
	if entry.timer != nil {
		entry.timer.Stop()
	}
	delete(b.banners, id)
	return true
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := Snapshot{
		Banners:  make([]BannerState, 0, len(b.banners)),
		Overlays: make([]OverlayState, 0, len(b.overlays)),
	}
	if b.container {
		snap.ContainerID = ContainerID
	}
	for _, e := range b.banners {
		snap.Banners = append(snap.Banners, e.state)
	}
	for _, e := range b.overlays {
		snap.Overlays = append(snap.Overlays, e.state)
	}

	sort.Slice(snap.Banners, func(i, j int) bool {
		return snap.Banners[i].ShownAt.Before(snap.Banners[j].ShownAt)
	})
	sort.Slice(snap.Overlays, func(i, j int) bool {
		return snap.Overlays[i].ShownAt.Before(snap.Overlays[j].ShownAt)
	})

	return snap
}

func (b *Board) slideOut(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.banners[id]
	if !ok {
		return
	}
	entry.state.Phase = PhaseLeaving
	entry.timer = b.clock.AfterFunc(SlideOutDuration, func() { b.removeBanner(id) })
}

func (b *Board) removeBanner(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.banners, id)
}

func (b *Board) fadeOverlay(id string, fade time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.overlays[id]
	if !ok {
		return
	}
	entry.state.Phase = PhaseLeaving
	entry.timer = b.clock.AfterFunc(fade, func() { b.removeOverlay(id) })
}

func (b *Board) removeOverlay(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.overlays, id)
}
