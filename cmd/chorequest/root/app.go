package root

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"chorequest/internal/config"
	"chorequest/internal/gate"
	"chorequest/internal/level"
	"chorequest/internal/model"
	"chorequest/internal/pkg/lock"
	"chorequest/internal/service"
	"chorequest/internal/store"
	"chorequest/internal/ui"
)

// ErrGateAborted is returned when the parental gate prompt hits EOF before a
// correct answer.
var ErrGateAborted = errors.New("parental gate aborted")

// app bundles the opened store and the services wired on top of it.
type app struct {
	cfg      *config.Config
	store    *store.Store
	levels   *level.Calculator
	ledger   *service.LedgerService
	daily    *service.DailyQuestService
	history  *service.HistoryService
	profiles *service.ProfileService
	catalog  *service.CatalogService
	play     *service.PlayService
	backup   *service.BackupService
}

// openApp loads configuration, opens the state store and wires all services.
// The returned cleanup closes the store.
func openApp(cmd *cobra.Command) (*app, func(), error) {
	configDir, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, nil, err
	}

	path, err := cfg.StatePath()
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}

	locks := lock.NewOwnerLock()
	levels := level.New(&level.Config{
		MaxLevel:     cfg.Level.MaxLevel,
		PointsForMax: cfg.Level.PointsForMax,
	})
	ledger := service.NewLedgerService(st, locks)
	daily := service.NewDailyQuestService(st, cfg.Daily.QuestCount, cfg.Daily.MaxResets)
	catalog := service.NewCatalogService(st)

	a := &app{
		cfg:      cfg,
		store:    st,
		levels:   levels,
		ledger:   ledger,
		daily:    daily,
		history:  service.NewHistoryService(st),
		profiles: service.NewProfileService(st, cfg.Profiles.Max),
		catalog:  catalog,
		play:     service.NewPlayService(catalog, ledger, daily, levels),
		backup:   service.NewBackupService(st, cfg.App.Name),
	}
	cleanup := func() {
		_ = st.Close()
	}
	return a, cleanup, nil
}

// owner resolves the ledger owner for the active profile, falling back to the
// legacy profile-less ledger.
func (a *app) owner() model.Owner {
	return a.profiles.ActiveOwner()
}

// requireParent runs the arithmetic gate on the command's input stream.
// Wrong answers re-prompt with a fresh problem; EOF aborts.
func requireParent(cmd *cobra.Command) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		challenge := gate.NewChallenge()
		fmt.Fprintf(out, "%s %s = ? ", ui.IconLock, challenge.Question)
		if !in.Scan() {
			fmt.Fprintln(out)
			return ErrGateAborted
		}
		if challenge.Verify(in.Text()) {
			return nil
		}
		fmt.Fprintln(out, ui.Warn.Render("ちがうよ、もういちど！ (try again)"))
	}
}
