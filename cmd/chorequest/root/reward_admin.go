package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"chorequest/internal/model"
	"chorequest/internal/ui"
)

func newRewardAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Manage the reward catalog (parent)",
	}
	cmd.AddCommand(
		newRewardAddCmd(),
		newRewardUpdateCmd(),
		newRewardRmCmd(),
	)
	return cmd
}

func newRewardAddCmd() *cobra.Command {
	var cost int
	var icon, titleEn string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reward to the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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
			r, err := a.catalog.AddReward(model.Reward{
				Title:   args[0],
				TitleEn: titleEn,
				Cost:    cost,
				Icon:    icon,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.Good.Render("reward added:"),
				r.Icon, r.Title, ui.Muted.Render(r.ID))
			return nil
		},
	}

	cmd.Flags().IntVarP(&cost, "cost", "c", 50, "Point cost")
	cmd.Flags().StringVarP(&icon, "icon", "i", "🎁", "Reward emoji")
	cmd.Flags().StringVar(&titleEn, "title-en", "", "English title")
	return cmd
}

func newRewardUpdateCmd() *cobra.Command {
	var title, titleEn, icon string
	var cost int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a catalog reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reward id is required")
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
			r, ok := a.catalog.RewardByID(args[0])
			if !ok {
				return fmt.Errorf("reward not found: %s", args[0])
			}
			if cmd.Flags().Changed("title") {
				r.Title = title
			}
			if cmd.Flags().Changed("title-en") {
				r.TitleEn = titleEn
			}
			if cmd.Flags().Changed("icon") {
				r.Icon = icon
			}
			if cmd.Flags().Changed("cost") {
				r.Cost = cost
			}
			if err := a.catalog.UpdateReward(r); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("reward updated"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVar(&titleEn, "title-en", "", "New English title")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "New emoji")
	cmd.Flags().IntVarP(&cost, "cost", "c", 0, "New point cost")
	return cmd
}

func newRewardRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a reward from the catalog",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reward id is required")
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
			if err := a.catalog.DeleteReward(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("reward removed"))
			return nil
		},
	}
}
