package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chorequest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active profile's points and level",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			owner := a.owner()

			name := "ゆうしゃ"
			icon := ""
			if p, ok := a.profiles.Active(); ok {
				name, icon = p.Name, p.Icon
			}

			current, total, err := a.ledger.Balance(owner)
			if err != nil {
				return err
			}
			monthly, err := a.ledger.MonthlyQuestPoints(owner, time.Now())
			if err != nil {
				return err
			}

			lvl := a.levels.Level(monthly)
			fmt.Fprintln(out, ui.Heading(icon, name))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d / %d", lvl, a.levels.MaxLevel())))
			fmt.Fprintf(out, "%s %s\n", ui.ProgressBar(a.levels.ProgressPercent(monthly), 20),
				ui.Muted.Render(fmt.Sprintf("(%d points to next level)", a.levels.PointsToNextLevel(monthly))))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%s %d", ui.IconCoin, current)))
			fmt.Fprintln(out, ui.LabelValue("Lifetime earned", total))
			fmt.Fprintln(out, ui.LabelValue("This month", monthly))
			if n := a.levels.LevelsToNextMilestone(lvl); n > 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s evolution in %d levels", ui.IconSparkle, n)))
			}
			return nil
		},
	}
	return cmd
}
