package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chorequest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "chorequest",
	Short:         "ChoreQuest — gamified household chore tracker",
	Long:          "ChoreQuest is a local-first chore tracker for kids: complete quests, earn points, level up and spend points on rewards.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().String("config", "", "Config directory (holds config.yaml)")

	rootCmd.AddCommand(
		newStatusCmd(),
		newQuestsCmd(),
		newCompleteCmd(),
		newRedeemCmd(),
		newHistoryCmd(),
		newProfileCmd(),
		newQuestAdminCmd(),
		newRewardAdminCmd(),
		newAdjustCmd(),
		newBackupCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
