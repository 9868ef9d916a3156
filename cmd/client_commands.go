package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/handler"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/infra/board"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/reminder"
)

func newPreferenceCommand(addr *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preference",
		Short: "Show or change whether reminders are enabled",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show whether reminders are enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newControlClient(*addr).Preference(cmd.Context())
			if err != nil {
				return err
			}
			printPreference(cmd.OutOrStdout(), resp)
			return nil
		},
	})

	cmd.AddCommand(newSetPreferenceCommand(addr, "enable", "Turn reminders on", true))
	cmd.AddCommand(newSetPreferenceCommand(addr, "disable", "Turn reminders off", false))

	return cmd
}

func newSetPreferenceCommand(addr *string, use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newControlClient(*addr).SetPreference(cmd.Context(), enabled)
			if err != nil {
				return err
			}
			printPreference(cmd.OutOrStdout(), resp)
			return nil
		},
	}
}

func newAlertsCommand(addr *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List the alerts currently on screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := newControlClient(*addr).Alerts(cmd.Context())
			if err != nil {
				return err
			}
			printAlerts(cmd.OutOrStdout(), snap, time.Now())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dismiss <id>",
		Short: "Dismiss an alert banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newControlClient(*addr).Dismiss(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dismissed %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func newPollCommand(addr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "poll",
		Short: "Check upcoming tasks now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := newControlClient(*addr).Poll(cmd.Context())
			if err != nil {
				return err
			}
			printPollResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newVisibleCommand(addr *string) *cobra.Command {
	return &cobra.Command{
		Use:   "visible",
		Short: "Tell the daemon the user is back so it checks tasks again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newControlClient(*addr).Visible(cmd.Context())
			if err != nil {
				return err
			}
			if resp.PollScheduled {
				fmt.Fprintln(cmd.OutOrStdout(), "Poll scheduled")
			}
			return nil
		},
	}
}

func newSessionCommand(addr *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the daemon's alert session",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget which tasks were already alerted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newControlClient(*addr).ResetSession(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d alerted task(s)\n", resp.Cleared)
			return nil
		},
	})

	return cmd
}

func printPreference(out io.Writer, resp handler.PreferenceResponse) {
	fmt.Fprintf(out, "Reminders: %s\n", enabledLabel(resp.Enabled))
	if !resp.Persisted {
		fmt.Fprintln(out, "Warning: the preference could not be saved and will reset on restart")
	}
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func printAlerts(out io.Writer, snap board.Snapshot, now time.Time) {
	if len(snap.Banners) == 0 && len(snap.Overlays) == 0 {
		fmt.Fprintln(out, "No active alerts")
		return
	}

	if len(snap.Banners) > 0 {
		rows := make([][]string, 0, len(snap.Banners))
		for _, b := range snap.Banners {
			rows = append(rows, []string{
				b.ID,
				b.TaskName,
				b.Tier,
				b.TimeText,
				string(b.Phase),
				formatRemaining(b.ExpiresAt.Sub(now)),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"ID", "Task", "Tier", "Due", "Phase", "Closes in"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
		))
	}

	if len(snap.Overlays) > 0 {
		fmt.Fprintf(out, "Overlays showing: %d\n", len(snap.Overlays))
	}
}

func printPollResult(out io.Writer, result reminder.PollResult) {
	switch result.Outcome {
	case reminder.OutcomeDisabled:
		fmt.Fprintln(out, "Reminders are disabled; nothing was checked")
		return
	case reminder.OutcomeFetchFailed:
		fmt.Fprintf(out, "Could not fetch upcoming tasks: %s\n", result.Error)
		return
	}

	fmt.Fprintf(out, "Checked %d task(s): %d alerted, %d suppressed\n",
		result.TaskCount, len(result.Dispatched), result.Suppressed)

	if len(result.Dispatched) == 0 {
		return
	}

	rows := make([][]string, 0, len(result.Dispatched))
	for _, a := range result.Dispatched {
		rows = append(rows, []string{
			a.TaskID.String(),
			a.TaskName,
			a.Tier,
			strconv.Itoa(a.MinutesUntil),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Task ID", "Task", "Tier", "Minutes"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
	))
}

func formatRemaining(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	return d.Round(time.Second).String()
}
