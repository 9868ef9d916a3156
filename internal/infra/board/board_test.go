package board

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/testutil"
)

var boardNow = time.Date(2025, 10, 31, 18, 0, 0, 0, time.UTC)

func testBanner(id domain.TaskID, tier domain.Tier, autoDismiss time.Duration) domain.Banner {
	return domain.Banner{
		TaskID:      id,
		TaskName:    "Essay",
		Tier:        tier,
		Icon:        "🚨",
		TimeText:    "🚨 OVERDUE!",
		AutoDismiss: autoDismiss,
	}
}

func TestBoard_ContainerCreatedLazily(t *testing.T) {
	b := New(testutil.NewFakeClock(boardNow))

	if got := b.Snapshot().ContainerID; got != "" {
		t.Fatalf("ContainerID before first banner = %q, want empty", got)
	}

	b.ShowOverlay(domain.Overlay{Image: "jumpscare.gif", Visible: 2 * time.Second, Fade: 500 * time.Millisecond})
	if got := b.Snapshot().ContainerID; got != "" {
		t.Errorf("overlay must not create the banner container, got %q", got)
	}

	b.ShowBanner(testBanner("1", domain.TierWarning, 10*time.Second))
	if got := b.Snapshot().ContainerID; got != ContainerID {
		t.Errorf("ContainerID = %q, want %q", got, ContainerID)
	}
}

func TestBoard_BannerLifecycle(t *testing.T) {
	tests := []struct {
		name        string
		tier        domain.Tier
		autoDismiss time.Duration
	}{
		{name: "overdue", tier: domain.TierOverdue, autoDismiss: 30 * time.Second},
		{name: "urgent", tier: domain.TierUrgent, autoDismiss: 15 * time.Second},
		{name: "warning", tier: domain.TierWarning, autoDismiss: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := testutil.NewFakeClock(boardNow)
			b := New(clk)

			id := b.ShowBanner(testBanner("1", tt.tier, tt.autoDismiss))
			if id == "" {
				t.Fatal("expected banner id")
			}

			clk.Advance(tt.autoDismiss - time.Millisecond)
			snap := b.Snapshot()
			if len(snap.Banners) != 1 || snap.Banners[0].Phase != PhaseVisible {
				t.Fatalf("banner should still be visible, got %+v", snap.Banners)
			}
			if snap.Banners[0].Tier != tt.tier.String() {
				t.Errorf("Tier = %q, want %q", snap.Banners[0].Tier, tt.tier.String())
			}

			clk.Advance(time.Millisecond)
			snap = b.Snapshot()
			if len(snap.Banners) != 1 || snap.Banners[0].Phase != PhaseLeaving {
				t.Fatalf("banner should be sliding out, got %+v", snap.Banners)
			}

			clk.Advance(SlideOutDuration)
			if got := len(b.Snapshot().Banners); got != 0 {
				t.Errorf("banners after slide-out = %d, want 0", got)
			}
			if clk.PendingTimers() != 0 {
				t.Errorf("pending timers = %d, want 0", clk.PendingTimers())
			}
		})
	}
}

func TestBoard_OverlayLifecycle(t *testing.T) {
	clk := testutil.NewFakeClock(boardNow)
	b := New(clk)

	b.ShowOverlay(domain.Overlay{Image: "jumpscare.gif", Visible: 2 * time.Second, Fade: 500 * time.Millisecond})

	clk.Advance(2 * time.Second)
	snap := b.Snapshot()
	if len(snap.Overlays) != 1 || snap.Overlays[0].Phase != PhaseLeaving {
		t.Fatalf("overlay should be fading after 2s, got %+v", snap.Overlays)
	}

	clk.Advance(499 * time.Millisecond)
	if len(b.Snapshot().Overlays) != 1 {
		t.Fatal("overlay removed before fade completed")
	}

	clk.Advance(time.Millisecond)
	if got := len(b.Snapshot().Overlays); got != 0 {
		t.Errorf("overlays after fade = %d, want 0", got)
	}
}

func TestBoard_Dismiss(t *testing.T) {
	clk := testutil.NewFakeClock(boardNow)
	b := New(clk)

	keep := b.ShowBanner(testBanner("1", domain.TierNormal, 10*time.Second))
	gone := b.ShowBanner(testBanner("2", domain.TierNormal, 10*time.Second))

	if !b.Dismiss(gone) {
		t.Fatal("Dismiss() = false for a visible banner")
	}
	if b.Dismiss(gone) {
		t.Error("second Dismiss() should report false")
	}
	if b.Dismiss("unknown") {
		t.Error("Dismiss() of unknown id should report false")
	}

	snap := b.Snapshot()
	if len(snap.Banners) != 1 || snap.Banners[0].ID != keep {
		t.Fatalf("remaining banners = %+v, want only %s", snap.Banners, keep)
	}
	if clk.PendingTimers() != 1 {
		t.Errorf("pending timers = %d, want 1 after dismiss cancelled its timer", clk.PendingTimers())
	}
}

func TestBoard_BannersStackIndependently(t *testing.T) {
	clk := testutil.NewFakeClock(boardNow)
	b := New(clk)

	b.ShowBanner(testBanner("1", domain.TierWarning, 10*time.Second))
	clk.Advance(time.Second)
	b.ShowBanner(testBanner("2", domain.TierOverdue, 30*time.Second))

	clk.Advance(9*time.Second + SlideOutDuration)

	snap := b.Snapshot()
	if len(snap.Banners) != 1 || snap.Banners[0].TaskID != "2" {
		t.Fatalf("banners = %+v, want only task 2", snap.Banners)
	}
}
