package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chorequest/internal/pkg/dates"
	"chorequest/internal/service"
	"chorequest/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var view string
	var ref string
	var shift int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show point history (day, month or year view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			owner := a.owner()

			at := time.Now()
			if ref != "" {
				at, err = dates.ParseDay(ref)
				if err != nil {
					return fmt.Errorf("invalid --ref date (want YYYY-MM-DD): %w", err)
				}
			}
			g := service.Granularity(view)
			switch g {
			case service.GranularityDay, service.GranularityMonth, service.GranularityYear:
			default:
				return errors.New("--view must be day, month or year")
			}
			at = service.Shift(at, g, shift)

			switch g {
			case service.GranularityDay:
				fmt.Fprintln(out, ui.Heading(ui.IconScroll, dates.DayKey(at)))
				entries := a.history.DayEntries(owner, at)
				if len(entries) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("no entries"))
					return nil
				}
				for _, e := range entries {
					fmt.Fprintf(out, "  %s %s %s %s\n", e.Date.Local().Format("15:04"),
						e.ItemTitle, ui.Points(e.PointDiff), ui.Muted.Render(e.ID))
				}
			case service.GranularityMonth:
				fmt.Fprintln(out, ui.Heading(ui.IconScroll, at.Format("2006-01")))
				for _, b := range a.history.MonthBuckets(owner, at.Year(), at.Month()) {
					if b.Points > 0 {
						fmt.Fprintf(out, "  %2d: %s\n", b.Day, ui.Good.Render(fmt.Sprintf("%d", b.Points)))
					}
				}
				sum := a.history.Summary(owner, at)
				fmt.Fprintln(out, ui.LabelValue("Quests", fmt.Sprintf("%d (+%d)", sum.QuestCount, sum.PointsEarned)))
				fmt.Fprintln(out, ui.LabelValue("Rewards", fmt.Sprintf("%d (-%d)", sum.RewardCount, sum.PointsSpent)))
			case service.GranularityYear:
				fmt.Fprintln(out, ui.Heading(ui.IconScroll, at.Format("2006")))
				for _, b := range a.history.YearBuckets(owner, at.Year()) {
					fmt.Fprintf(out, "  %3s: %s\n", b.Month.String()[:3], ui.Good.Render(fmt.Sprintf("%d", b.Points)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&view, "view", "v", "day", "View granularity (day|month|year)")
	cmd.Flags().StringVarP(&ref, "ref", "r", "", "Reference date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVarP(&shift, "shift", "s", 0, "Shift the view by N units (negative for past)")

	cmd.AddCommand(newHistoryRmCmd(), newHistoryRmDateCmd())
	return cmd
}

func newHistoryRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <entry-id>",
		Short: "Delete one history entry and reverse its points (parent)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("entry id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireParent(cmd); err != nil {
				return err
			}
			if err := a.ledger.DeleteEntry(a.owner(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("entry deleted and points reversed"))
			return nil
		},
	}
}

func newHistoryRmDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-date <YYYY-MM-DD>",
		Short: "Delete all history entries on a date (parent)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("date is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireParent(cmd); err != nil {
				return err
			}
			removed, err := a.ledger.DeleteByDate(a.owner(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%d entries deleted and points reversed", removed)))
			return nil
		},
	}
}
