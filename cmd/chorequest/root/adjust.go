package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chorequest/internal/ui"
)

func newAdjustCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <amount> [note...]",
		Short: "Manually add or subtract points (parent)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("amount is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("amount must be an integer")
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

			amount, _ := strconv.Atoi(args[0])
			note := strings.Join(args[1:], " ")
			entry, err := a.play.Adjust(a.owner(), amount, note)
			if err != nil {
				return err
			}

			current, _, err := a.ledger.Balance(a.owner())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("adjusted"), ui.Points(entry.PointDiff))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Points", fmt.Sprintf("%s %d", ui.IconCoin, current)))
			return nil
		},
	}
}
