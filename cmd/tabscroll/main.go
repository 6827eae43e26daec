// Command tabscroll runs a tab scroll view in the terminal.
//
// It looks for the enclosing Go module to name the app and to load
// tabscroll.yaml, then shows a strip of section tabs over swipeable pages.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-drift/tabscroll/cmd/tabscroll/internal/project"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
	"github.com/go-drift/tabscroll/pkg/termhost"
)

var sections = []string{
	"Top", "World", "Business", "Technology", "Science", "Health",
	"Sports", "Travel", "Food", "Style", "Culture", "Opinion",
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("tabscroll", flag.ContinueOnError)
	pages := fs.Int("pages", len(sections), "number of pages to show")
	logPath := fs.String("log", "", "write debug logs to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pages < 0 {
		return fmt.Errorf("-pages must not be negative (got %d)", *pages)
	}

	logger, closeLog, err := openLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	appName, cfg := resolveProject(logger)

	reg := prometheus.NewRegistry()
	metrics, err := tabscroll.NewMetrics(reg, appName)
	if err != nil {
		return err
	}

	view := tabscroll.New(cfg,
		tabscroll.WithDataSource(termhost.NewTextSource(samplePages(appName, *pages)...)),
		tabscroll.WithCallbacks(tabscroll.Callbacks{
			OnPageChanged: func(index int) { logger.Info("page changed", "index", index) },
		}),
		tabscroll.WithMetrics(metrics),
		tabscroll.WithLogger(logger),
	)
	defer view.Dispose()

	program := tea.NewProgram(termhost.NewModel(view), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return err
	}

	logMetrics(logger, reg)
	return nil
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

// resolveProject falls back to defaults outside a Go module.
func resolveProject(logger *slog.Logger) (string, tabscroll.Config) {
	root, err := project.FindProjectRoot()
	if err != nil {
		logger.Warn("using default config", "error", err)
		return project.DefaultAppName, tabscroll.DefaultConfig()
	}
	resolved, err := project.Resolve(root)
	if err != nil {
		logger.Warn("using default config", "root", root, "error", err)
		return project.DefaultAppName, tabscroll.DefaultConfig()
	}
	logger.Debug("project resolved", "root", resolved.Root, "module", resolved.ModulePath)
	return resolved.AppName, resolved.Config
}

func samplePages(appName string, n int) []termhost.Page {
	pages := make([]termhost.Page, n)
	for i := range pages {
		title := fmt.Sprintf("Section %d", i+1)
		if i < len(sections) {
			title = sections[i]
		}
		pages[i] = termhost.Page{
			Title: title,
			Body: fmt.Sprintf("%s\n\n%s, page %d of %d\n\n←/→ change page · 1-9 tap a tab · wheel to swipe · q to quit",
				title, appName, i+1, n),
		}
	}
	return pages
}

func logMetrics(logger *slog.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				logger.Info("metric", "name", mf.GetName(), "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				logger.Info("metric", "name", mf.GetName(), "value", m.GetGauge().GetValue())
			}
		}
	}
}
