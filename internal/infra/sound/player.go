// Package sound triggers the alert cue through an external audio player.
package sound

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

const (
	fileToken   = "{file}"
	volumeToken = "{volume}"

	DefaultVolume = 0.7
)

type Config struct {
	// Command is the player binary followed by its arguments. {file} and
	// {volume} are substituted; the file is appended when {file} is absent.
	Command string
	File    string
	Volume  float64
}

type execPlayer struct {
	name string
	args []string

	mu      sync.Mutex
	current *exec.Cmd
	done    chan struct{}
}

// NewPlayer returns a player for cfg, or a noop player when no command is set.
func NewPlayer(cfg Config) domain.SoundPlayer {
	fields := strings.Fields(cfg.Command)
	if len(fields) == 0 {
		return noopPlayer{}
	}

	return &execPlayer{
		name: fields[0],
		args: expandArgs(fields[1:], cfg.File, cfg.Volume),
	}
}

// Play stops any cue still playing and starts the command again from the
// beginning. It returns once the process has started.
func (p *execPlayer) Play(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	cmd := exec.Command(p.name, p.args...)
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %v", domain.ErrPlaybackUnavailable, err)
		}
		return fmt.Errorf("start sound player: %w", err)
	}

	done := make(chan struct{})
	p.current = cmd
	p.done = done

	go func() {
		defer close(done)
		if err := cmd.Wait(); err != nil {
			slog.DebugContext(ctx, "sound player exited",
				slog.String("command", p.name),
				slog.String("error", err.Error()),
			)
		}
	}()

	return nil
}

// Stop kills the running cue, if any, and waits for it to exit.
func (p *execPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *execPlayer) stopLocked() {
	if p.current == nil {
		return
	}

	select {
	case <-p.done:
	default:
		_ = p.current.Process.Kill()
		<-p.done
	}

	p.current = nil
	p.done = nil
}

func expandArgs(args []string, file string, volume float64) []string {
	if volume <= 0 || volume > 1 {
		volume = DefaultVolume
	}
	volumeText := strconv.FormatFloat(volume, 'f', -1, 64)

	out := make([]string, 0, len(args)+1)
	hasFile := false
	for _, arg := range args {
		if strings.Contains(arg, fileToken) {
			hasFile = true
		}
		arg = strings.ReplaceAll(arg, fileToken, file)
		arg = strings.ReplaceAll(arg, volumeToken, volumeText)
		out = append(out, arg)
	}
	if !hasFile && file != "" {
		out = append(out, file)
	}
	return out
}

type noopPlayer struct{}

func (noopPlayer) Play(context.Context) error {
	return domain.ErrPlaybackUnavailable
}
