package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"chorequest/internal/ui"
)

func newRedeemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redeem [reward-id]",
		Short: "Spend points on a reward (no argument lists rewards)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one reward id")
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

			if len(args) == 0 {
				fmt.Fprintln(out, ui.Heading(ui.IconGift, "ごほうび (rewards)"))
				for _, r := range a.catalog.Rewards() {
					fmt.Fprintf(out, "  %s %s %s %s\n", r.Icon, r.Title,
						ui.Gold.Render(fmt.Sprintf("%dpt", r.Cost)), ui.Muted.Render(r.ID))
				}
				return nil
			}

			res, err := a.play.RedeemReward(a.owner(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s %s %s\n", ui.Good.Render(ui.IconGift+" Redeemed"), res.Reward.Icon,
				res.Reward.Title, ui.Points(res.Entry.PointDiff))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%s %d", ui.IconCoin, res.Balance)))
			if res.Clamped {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" cost exceeded the balance; points bottomed out at 0"))
			}
			return nil
		},
	}
	return cmd
}
