package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcobzarenco/zentui/internal/credentials"
	"github.com/mcobzarenco/zentui/internal/github"
	"github.com/mcobzarenco/zentui/internal/settings"
	"github.com/mcobzarenco/zentui/internal/tui"
	"github.com/mcobzarenco/zentui/internal/zenhub"
)

const logFile = "zentui.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	githubToken := flag.String("github-token", "", "Github personal access token (needs the `repo` scope)")
	zenhubToken := flag.String("zenhub-token", "", "Zenhub API token")
	settingsPath := flag.String("settings-path", "", "path to the settings file")
	createSettings := flag.Bool("create-settings", false, "write the default settings file if it doesn't exist")
	enableLog := flag.Bool("log", false, "enable debug logging to "+logFile)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: zentui [options] owner/repository\n\nOpens the repository's oldest Zenhub board.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, closeLog, err := newLogger(*enableLog)
	if err != nil {
		return err
	}
	defer closeLog()

	path := *settingsPath
	if path == "" {
		if path, err = settings.Path(); err != nil {
			logger.Warn("no settings path", "err", err)
		}
	}
	if *createSettings && path != "" {
		if err := settings.WriteDefault(path); err != nil {
			logger.Warn("could not create settings file", "err", err)
		}
	}
	// Unreadable settings must not stop the dashboard from opening.
	config, err := settings.Load(path)
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one repository argument")
	}
	repoFullName := flag.Arg(0)

	ghToken, err := credentials.Resolve(credentials.GitHub, *githubToken, logger)
	if err != nil {
		return err
	}
	zhToken, err := credentials.Resolve(credentials.Zenhub, *zenhubToken, logger)
	if err != nil {
		return err
	}

	githubClient, err := github.NewClient(github.Config{Token: ghToken, Logger: logger})
	if err != nil {
		return err
	}
	zenhubClient, err := zenhub.NewClient(zenhub.Config{Token: zhToken, Logger: logger})
	if err != nil {
		return err
	}

	repo, err := githubClient.GetRepo(context.Background(), repoFullName)
	if err != nil {
		return fmt.Errorf("resolve repository %q: %w", repoFullName, err)
	}

	fetcher := tui.NewFetcher(githubClient, zenhubClient, repo,
		config.IssuesPerPipeline, config.MaxConcurrentFetches, logger)
	m := tui.New(tui.Config{
		Fetcher:        fetcher,
		Repo:           repo,
		Theme:          tui.NewTheme(tui.PaletteByName(config.Theme)),
		EditorOverride: config.Editor,
		Logger:         logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("zentui exited", "err", err)
		return err
	}
	return nil
}

// newLogger returns a debug file logger when enabled, otherwise one
// that discards everything. TUI programs cannot log to the terminal
// they are painting.
func newLogger(enabled bool) (*slog.Logger, func(), error) {
	if !enabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { file.Close() }, nil
}
