package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mathadv/mathadv/internal/app"
	"github.com/mathadv/mathadv/internal/puzzle"
	"github.com/mathadv/mathadv/internal/recommend"
	"github.com/mathadv/mathadv/internal/session"
	"github.com/mathadv/mathadv/internal/store"
)

// deps holds everything a command needs to drive a session.
type deps struct {
	store  *store.Store
	logger *zap.Logger
	engine *session.Engine
}

func (d *deps) Close() {
	if d.store != nil {
		d.store.Close()
	}
	if d.logger != nil {
		_ = d.logger.Sync()
	}
}

// openStore opens the store and a logger for commands that only read or
// prune the attempt log.
func openStore(cmd *cobra.Command) (*deps, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	logger, err := newLogger(cmd, false, dbPath)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &deps{store: st, logger: logger}, nil
}

// openDeps opens the store, builds the logger and loads the recommender
// model. A missing or corrupt model is fatal.
func openDeps(cmd *cobra.Command, tui bool) (*deps, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logger, err := newLogger(cmd, tui, dbPath)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	d := &deps{store: st, logger: logger}

	rec, err := recommend.NewFromFile(resolveModelPath(cmd), logger)
	if err != nil {
		d.Close()
		return nil, err
	}

	d.engine = &session.Engine{
		Generator:   puzzle.New(puzzle.DefaultConfig()),
		Recommender: rec,
		Repo:        st.ProgressRepo(),
		Logger:      logger,
	}
	return d, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	state := session.NewState()
	if id, _ := cmd.Flags().GetString("session"); id != "" {
		state, err = d.engine.Resume(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("resume session: %w", err)
		}
	}

	d.logger.Info("session started",
		zap.String("session_id", state.SessionID),
		zap.String("level", string(state.Level)),
	)
	return app.Run(app.Options{Engine: d.engine, State: state})
}
