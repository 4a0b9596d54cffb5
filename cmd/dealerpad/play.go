package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/tablefelt/dealerpad/internal/config"
	"github.com/tablefelt/dealerpad/internal/game"
	"github.com/tablefelt/dealerpad/internal/server"
	"github.com/tablefelt/dealerpad/internal/store"
	"github.com/tablefelt/dealerpad/internal/tui"
)

// PlayCmd runs the dealer screen for one table.
type PlayCmd struct {
	Setup   string `kong:"arg,optional,type='existingfile',help='Table setup file (HCL)'"`
	Save    string `kong:"default='dealerpad.json',help='Session save file'"`
	Fresh   bool   `kong:"help='Discard any existing save and start over'"`
	Serve   string `kong:"help='Also serve spectators on this address, e.g. :8080'"`
	LogFile string `kong:"default='dealerpad.log',help='Debug log destination'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	// The dealer screen owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger := log.NewWithOptions(logFile, log.Options{ReportTimestamp: true})
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	saves := store.New(c.Save)

	if c.Fresh {
		if err := saves.Clear(); err != nil {
			return fmt.Errorf("failed to clear save: %w", err)
		}
	}

	session, err := c.openSession(saves, logger)
	if err != nil {
		return err
	}

	var publisher tui.Publisher
	ctx, cancel := signalContext()
	defer cancel()

	if c.Serve != "" {
		spectators := server.NewServer(c.Serve, logger)
		go func() {
			if err := spectators.Run(ctx); err != nil {
				logger.Error("Spectator server stopped", "error", err)
			}
		}()
		spectators.Publish(game.Summarize(session.Game))
		publisher = spectators
	}

	return tui.Run(tui.New(session, saves, publisher, logger))
}

// openSession resumes the saved session when one is compatible, otherwise
// deals a fresh table from the setup file.
func (c *PlayCmd) openSession(saves *store.Store, logger *log.Logger) (*tui.Session, error) {
	result := saves.Load()
	switch result.Status {
	case store.StatusOK:
		logger.Info("Resuming saved session", "file", c.Save, "savedAt", result.SavedAt)
		return tui.RestoreSession(result.State), nil

	case store.StatusMismatch:
		return nil, fmt.Errorf(
			"save %s was written by schema version %d (this build writes %d); rerun with --fresh to discard it",
			c.Save, result.StoredVersion, store.SchemaVersion)

	case store.StatusInvalid:
		logger.Info("Discarded unreadable save", "file", c.Save)
	}

	if c.Setup == "" {
		return nil, fmt.Errorf("no saved session to resume; pass a setup file to start one")
	}

	setup, err := config.Load(c.Setup)
	if err != nil {
		return nil, err
	}

	g, err := game.StartHand(game.NewGame(setup))
	if err != nil {
		return nil, fmt.Errorf("failed to deal the first hand: %w", err)
	}

	logger.Info("Dealt a new table", "table", g.TableName, "players", len(g.Players))
	return tui.NewSession(g), nil
}

// signalContext is cancelled on interrupt so the spectator server shuts
// down with the screen.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	return ctx, cancel
}
