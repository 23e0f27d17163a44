package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"chorequest/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "Show today's quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			owner := a.owner()

			quests, err := a.daily.DailyQuests(owner)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "きょうのクエスト (today's quests)"))
			for _, q := range quests {
				mark := "  "
				if a.daily.CompletedToday(owner, q.ID) {
					mark = ui.IconDone + " "
				}
				fmt.Fprintf(out, "%s%s %s %s %s\n", mark, q.Icon, q.Title,
					ui.Gold.Render(fmt.Sprintf("%dpt", q.Points)), ui.Muted.Render(q.ID))
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("reshuffles left today: %d", a.daily.RemainingResets(owner))))
			return nil
		},
	}

	cmd.AddCommand(newReshuffleCmd())
	return cmd
}

func newReshuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reshuffle",
		Short: "Draw a fresh random quest selection for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			owner := a.owner()

			ok, err := a.daily.Reshuffle(owner)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" no reshuffles left today"))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(ui.IconShuffle+" quests reshuffled"))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("reshuffles left today: %d", a.daily.RemainingResets(owner))))
			return nil
		},
	}
}
