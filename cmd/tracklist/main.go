package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"

	"tracklist/internal/adapters/desktop"
	"tracklist/internal/adapters/editor"
	"tracklist/internal/adapters/state"
	"tracklist/internal/adapters/tui"
	"tracklist/internal/app"
	"tracklist/internal/application/designlist"
	"tracklist/internal/config"
	"tracklist/internal/domain"
	"tracklist/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ride := flag.Int("ride", 52, "ride type number (0-255)")
	vehicle := flag.String("vehicle", "", "vehicle entry name")
	manager := flag.Bool("manager", false, "open in manager mode")
	noScenery := flag.Bool("no-scenery", false, "build without scenery")
	flag.Parse()

	if *ride < 0 || *ride > 0xFF {
		return fmt.Errorf("ride type must be between 0 and 255, got %d", *ride)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if *manager {
		cfg.Manager = true
	}

	// The terminal belongs to the TUI; only a configured log file is written.
	log, closeLog, err := logging.New(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stack, err := app.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stack.Close()

	ctl := designlist.New(stack.Repo, state.NewSceneryToggle(false),
		designlist.WithManagerMode(cfg.Manager),
		designlist.WithoutScenery(*noScenery),
		designlist.WithRideTypes(stack.Rides),
		designlist.WithMeasurementFormat(stack.Format),
		designlist.WithLogger(log),
	)
	sel := domain.RideSelection{Type: domain.RideType(*ride), Vehicle: *vehicle}
	if err := ctl.Open(sel); err != nil {
		return err
	}
	defer ctl.Close()

	changes := make(chan []string, 1)
	go func() {
		err := stack.Watch(ctx, func(paths []string) {
			select {
			case changes <- paths:
			case <-ctx.Done():
			}
		})
		if err != nil {
			log.WithError(err).Warn("file watcher stopped")
		}
	}()

	deps := tui.Deps{
		Controller: ctl,
		Editor:     editor.NewOpener(),
		Revealer:   desktop.NewOpener(),
		Index:      stack.DesignIndex(),
		Changes:    changes,
		Log:        log,
	}
	if cfg.Manager {
		deps.Manager = stack.Repo
	}
	model := tui.NewApp(deps)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	action, ok := model.Chosen()
	if !ok {
		return nil
	}
	switch action.Kind {
	case designlist.ActionBuildCustom:
		fmt.Printf("build custom %s\n", ctl.RideName())
	case designlist.ActionPlace:
		fmt.Println(action.Ref.Path)
		if action.AlternativeVehicle {
			fmt.Fprintln(os.Stderr, "note: vehicle not available, an alternative will be used")
		}
	}
	return nil
}
