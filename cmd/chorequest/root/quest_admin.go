package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"chorequest/internal/model"
	"chorequest/internal/ui"
)

func newQuestAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage the quest catalog (parent)",
	}
	cmd.AddCommand(
		newQuestAddCmd(),
		newQuestUpdateCmd(),
		newQuestRmCmd(),
		newQuestListCmd(),
	)
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var points int
	var icon, titleEn string
	var oncePerDay, alwaysShow bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest to the catalog",
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
			q, err := a.catalog.AddQuest(model.Quest{
				Title:      args[0],
				TitleEn:    titleEn,
				Points:     points,
				Icon:       icon,
				OncePerDay: oncePerDay,
				AlwaysShow: alwaysShow,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.Good.Render("quest added:"),
				q.Icon, q.Title, ui.Muted.Render(q.ID))
			return nil
		},
	}

	cmd.Flags().IntVarP(&points, "points", "p", 10, "Points awarded on completion")
	cmd.Flags().StringVarP(&icon, "icon", "i", "⭐", "Quest emoji")
	cmd.Flags().StringVar(&titleEn, "title-en", "", "English title")
	cmd.Flags().BoolVar(&oncePerDay, "once-per-day", false, "Allow only one completion per day")
	cmd.Flags().BoolVar(&alwaysShow, "always-show", false, "Pin into every daily selection")
	return cmd
}

func newQuestUpdateCmd() *cobra.Command {
	var title, titleEn, icon string
	var points int
	var oncePerDay, alwaysShow bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a catalog quest",
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

			if err := requireParent(cmd); err != nil {
				return err
			}
			q, ok := a.catalog.QuestByID(args[0])
			if !ok {
				return fmt.Errorf("quest not found: %s", args[0])
			}
			if cmd.Flags().Changed("title") {
				q.Title = title
			}
			if cmd.Flags().Changed("title-en") {
				q.TitleEn = titleEn
			}
			if cmd.Flags().Changed("icon") {
				q.Icon = icon
			}
			if cmd.Flags().Changed("points") {
				q.Points = points
			}
			if cmd.Flags().Changed("once-per-day") {
				q.OncePerDay = oncePerDay
			}
			if cmd.Flags().Changed("always-show") {
				q.AlwaysShow = alwaysShow
			}
			if err := a.catalog.UpdateQuest(q); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("quest updated"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVar(&titleEn, "title-en", "", "New English title")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "New emoji")
	cmd.Flags().IntVarP(&points, "points", "p", 0, "New point value")
	cmd.Flags().BoolVar(&oncePerDay, "once-per-day", false, "Allow only one completion per day")
	cmd.Flags().BoolVar(&alwaysShow, "always-show", false, "Pin into every daily selection")
	return cmd
}

func newQuestRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a quest from the catalog (history keeps its entries)",
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

			if err := requireParent(cmd); err != nil {
				return err
			}
			if err := a.catalog.DeleteQuest(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("quest removed"))
			return nil
		},
	}
}

func newQuestListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the quest catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			for _, q := range a.catalog.Quests() {
				flags := ""
				if q.OncePerDay {
					flags += " once/day"
				}
				if q.AlwaysShow {
					flags += " pinned"
				}
				fmt.Fprintf(out, "  %s %s %s%s %s\n", q.Icon, q.Title,
					ui.Gold.Render(fmt.Sprintf("%dpt", q.Points)), ui.Muted.Render(flags), ui.Muted.Render(q.ID))
			}
			return nil
		},
	}
}
