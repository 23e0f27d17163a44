package root

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chorequest/internal/ui"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Erase all data and restore the defaults (parent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := requireParent(cmd); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" this erases all profiles, points and history"))
			fmt.Fprint(out, "type 'reset' to confirm: ")
			in := bufio.NewScanner(cmd.InOrStdin())
			if !in.Scan() || strings.TrimSpace(in.Text()) != "reset" {
				fmt.Fprintln(out, ui.Muted.Render("aborted"))
				return nil
			}

			if err := a.backup.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Good.Render("all data reset to defaults"))
			return nil
		},
	}
}
