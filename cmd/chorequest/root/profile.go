package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chorequest/internal/model"
	"chorequest/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage child profiles",
	}
	cmd.AddCommand(
		newProfileAddCmd(),
		newProfileListCmd(),
		newProfileUseCmd(),
		newProfileRenameCmd(),
		newProfileRmCmd(),
	)
	return cmd
}

func newProfileAddCmd() *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a profile (parent)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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
			p, err := a.profiles.Create(args[0], icon)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.Good.Render("profile created:"),
				p.Icon, p.Name, ui.Muted.Render(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "",
		"Avatar emoji (one of "+strings.Join(model.AvatarEmojis, " ")+", default "+model.DefaultProfileIcon+")")
	return cmd
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			active, _ := a.profiles.Active()
			for _, p := range a.profiles.List() {
				mark := "  "
				if p.ID == active.ID {
					mark = ui.Good.Render("* ")
				}
				fmt.Fprintf(out, "%s%s %s %s %s\n", mark, p.Icon, p.Name,
					ui.Gold.Render(fmt.Sprintf("%dpt", p.CurrentPoints)), ui.Muted.Render(p.ID))
			}
			return nil
		},
	}
}

func newProfileUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Switch the active profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("profile id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.profiles.SetActive(args[0]); err != nil {
				return err
			}
			p, _ := a.profiles.Active()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render("active profile:"), p.Icon, p.Name)
			return nil
		},
	}
}

func newProfileRenameCmd() *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a profile (parent)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("profile id and name are required")
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
			if icon == "" {
				for _, p := range a.profiles.List() {
					if p.ID == args[0] {
						icon = p.Icon
						break
					}
				}
			}
			if err := a.profiles.Rename(args[0], args[1], icon); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("profile updated"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "", "New avatar emoji (default keep)")
	return cmd
}

func newProfileRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a profile and its history permanently (parent)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("profile id is required")
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
			if err := a.profiles.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("profile deleted"))
			return nil
		},
	}
}
