package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"chorequest/internal/ui"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <quest-id>",
		Short: "Complete a quest and earn its points",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			res, err := a.play.CompleteQuest(a.owner(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s %s %s\n", ui.Good.Render(ui.IconDone+" Done!"), res.Quest.Icon,
				res.Quest.Title, ui.Points(res.Entry.PointDiff))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%s %d", ui.IconCoin, res.Balance)))
			if res.Level != res.PrevLevel {
				fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s Level %d → %d", ui.IconTrophy, res.PrevLevel, res.Level)))
			}
			if res.Evolved {
				fmt.Fprintln(out, ui.BadgeEvolved+" "+ui.Gold.Render("アバターがしんかした！"))
			}
			return nil
		},
	}
}
