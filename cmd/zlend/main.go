package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zlend/internal/audit"
	"github.com/zarlcorp/zlend/internal/cli"
	"github.com/zarlcorp/zlend/internal/config"
	"github.com/zarlcorp/zlend/internal/store"
	"github.com/zarlcorp/zlend/internal/tui"
	"github.com/zarlcorp/zlend/internal/userdata"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zlend"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	users, err := userdata.New().Generate(cfg.Count, cfg.Seed)
	if err != nil {
		slog.Error("generate users", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		code := runCLI(ctx, cfg, users, os.Args[1], os.Args[2:])
		_ = app.Close()
		os.Exit(code)
	}

	if err := runTUI(cfg, users); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cfg config.Config, users []userdata.User, cmd string, args []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	var err error
	switch cmd {
	case "version":
		fmt.Printf("zlend %s\n", version)
	case "users":
		err = cli.CmdUsers(os.Stdout, users, cfg.PageSize, args)
	case "user":
		err = cli.CmdUser(os.Stdout, users, args)
	case "orgs":
		cli.CmdOrgs(os.Stdout, users)
	case "stats":
		cli.CmdStats(os.Stdout, users)
	case "audit", "blacklist", "activate":
		err = withAudit(cfg, logger, func(log *audit.Log) error {
			if cmd == "audit" {
				return cli.CmdAudit(os.Stdout, log, args)
			}
			return cli.CmdAction(os.Stdout, users, log, audit.Action(cmd), args)
		})
	default:
		fmt.Fprintf(os.Stderr, "zlend: unknown command %q\n", cmd)
		return 1
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "zlend %s: %v\n", cmd, err)
		return 1
	}
	return 0
}

// withAudit unlocks the operator store for the duration of fn.
func withAudit(cfg config.Config, logger *slog.Logger, fn func(*audit.Log) error) error {
	s, err := cli.OpenStore(cfg.DataDir)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(audit.New(s.Audit(), logger))
}

func runTUI(cfg config.Config, users []userdata.User) error {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// the terminal belongs to the TUI, so logs go to a file
	f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	logger := slog.New(slog.NewJSONHandler(f, nil))
	logger.Info("starting", "version", version, "seed", cfg.Seed, "users", len(users))

	firstRun := store.IsFirstRun(cfg.DataDir)

	m := tui.New(version, cfg.DataDir, users, cfg.PageSize, firstRun, logger)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}
