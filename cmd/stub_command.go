package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/clock"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/taskstub"
)

func newStubCommand() *cobra.Command {
	var listen string
	var demo bool

	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve a fake upcoming tasks API for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clk := clock.New()
			storage := taskstub.NewStorage(clk)
			if demo {
				seedDemoTasks(storage, clk.Now())
			}
			return runStub(cmd.Context(), listen, taskstub.NewRouter(storage))
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":8000", "Address the stub server listens on")
	cmd.Flags().BoolVar(&demo, "demo", false, "Seed one task per reminder tier")

	return cmd
}

// seedDemoTasks places one task in each tier relative to now.
func seedDemoTasks(storage *taskstub.Storage, now time.Time) {
	storage.Put(domain.TaskID("1"), "Submit expense report", now.Add(-2*time.Minute))
	storage.Put(domain.TaskID("2"), "Essay", now.Add(3*time.Minute))
	storage.Put(domain.TaskID("3"), "Team sync notes", now.Add(12*time.Minute))
	storage.Put(domain.TaskID("4"), "Reading assignment", now.Add(25*time.Minute))
	storage.Put(domain.TaskID("5"), "Quarterly plan", now.Add(3*time.Hour))
}

func runStub(ctx context.Context, listen string, h http.Handler) error {
	srv := &http.Server{
		Addr:              listen,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting stub tasks server", slog.String("addr", listen))
		serverErr <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
