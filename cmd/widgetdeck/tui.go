package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/widgetdeck/internal/tui"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

// runTUI runs the interactive deck until the user quits.
func runTUI(ctx context.Context, cfg appConfig) error {
	svc, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	bm, err := svc.backupManager()
	if err != nil {
		return err
	}
	if bm != nil {
		bm.Start()
		defer bm.Stop()
	}

	app, err := tui.New(widget.Default(), widget.Deps{
		KV:           svc.store,
		Logger:       svc.logger,
		TickInterval: cfg.TickInterval,
	}, tui.Options{ReverseScrollWheel: cfg.ReverseScrollWheel})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
