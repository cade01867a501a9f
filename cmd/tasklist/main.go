package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jorge-barreto/tasklist/internal/config"
	"github.com/jorge-barreto/tasklist/internal/console"
	"github.com/jorge-barreto/tasklist/internal/docs"
	"github.com/jorge-barreto/tasklist/internal/logging"
	"github.com/jorge-barreto/tasklist/internal/scaffold"
	"github.com/jorge-barreto/tasklist/internal/task"
	"github.com/jorge-barreto/tasklist/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "tasklist",
		Usage:       "Interactive terminal task list",
		Description: "Run with no arguments to start a session. Run 'tasklist docs' for documentation.",
		Reader:      stdin,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Config file (default: .tasklist.yaml, .tasklist.yml or .tasklist.toml if present)"},
			&cli.StringFlag{Name: "file", Usage: "Task file, overrides data-file"},
			&cli.StringFlag{Name: "log-level", Usage: "Log level: debug, info, warn, or error"},
		},
		Action: sessionAction,
		Commands: []*cli.Command{
			initCmd(),
			docsCmd(),
		},
	}
}

func sessionAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return fmt.Errorf("unexpected argument %q (see 'tasklist --help')", cmd.Args().First())
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	root := cmd.Root()
	logger, err := logging.New(root.ErrWriter, cfg.LogLevel)
	if err != nil {
		return err
	}

	store := task.NewStore(time.Now, cfg.Zone())
	s := console.NewSession(store, cfg.DataFile, root.Reader, root.Writer, logger)
	s.Load()

	// Set up signal handling
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := s.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted, tasks not saved")
		}
		return err
	}
	return nil
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(cmd.String("config"), dir)
	if err != nil {
		return nil, err
	}
	if f := cmd.String("file"); f != "" {
		cfg.DataFile = f
	}
	if l := cmd.String("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter " + scaffold.ConfigName + " in the current directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(cmd.Root().Writer, dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			name := cmd.Args().First()
			if name == "" {
				fmt.Fprint(w, "\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Fprintf(w, "  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Fprintln(w, "\nRun 'tasklist docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprint(w, t.Content)
			return nil
		},
	}
}
