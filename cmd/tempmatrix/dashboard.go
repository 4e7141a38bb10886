package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/salomonkoivisto/CSCE-679/internal/config"
	"github.com/salomonkoivisto/CSCE-679/internal/core"
	"github.com/salomonkoivisto/CSCE-679/internal/dataset"
	"github.com/salomonkoivisto/CSCE-679/internal/tui"
)

func runDashboard(cfg config.Config) error {
	view, err := buildView(cfg)
	if err != nil {
		return err
	}

	model := tui.NewModel(view, cfg.UI.ShowLegend)
	program := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Rebuild the whole view when the dataset file changes. The matrix is
	// immutable once built, so a reload swaps it atomically via a message.
	go func() {
		err := dataset.Watch(ctx, cfg.Dataset.Path, func() {
			fresh, err := buildView(cfg)
			if err != nil {
				log.Printf("reload: %v", err)
				return
			}
			program.Send(tui.ViewMsg(fresh))
		})
		if err != nil {
			log.Printf("watch: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func buildView(cfg config.Config) (*core.View, error) {
	rows, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	return core.Build(rows, cfg.Dataset.WindowYears)
}
