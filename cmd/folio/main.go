// Command folio is a keyboard-driven PDF viewer: a multi-page grid
// layout with vim-style navigation, text motions, selections, and
// highlight annotations.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/dshills/folio/internal/config"
	"github.com/dshills/folio/internal/doc/ledongpdf"
	"github.com/dshills/folio/internal/script"
	"github.com/dshills/folio/internal/session"
	"github.com/dshills/folio/internal/term"
)

func main() {
	cmd := &cli.Command{
		Name:      "folio",
		Usage:     "Modal PDF viewer for the terminal",
		ArgsUsage: "<document.pdf>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("FOLIO_CONFIG"),
				Value:   defaultConfigPath(),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("FOLIO_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "log destination (defaults to stderr)",
				Sources: cli.EnvVars("FOLIO_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "script",
				Usage:   "Lua rc script run at startup",
				Sources: cli.EnvVars("FOLIO_SCRIPT"),
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "folio:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one document path, got %d", c.Args().Len())
	}
	docPath := c.Args().First()

	cfgPath := c.String("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if v := c.String("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := c.String("log-file"); v != "" {
		cfg.Logging.File = v
	}
	if v := c.String("script"); v != "" {
		cfg.Script.Path = v
	}

	logger, closeLog, err := newLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer closeLog()

	ui, err := term.New(logger)
	if err != nil {
		return err
	}

	sess, err := session.New(ledongpdf.New(), docPath, cfg, ui.Hooks(), logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	if cfg.Script.Path != "" {
		env := script.Env{Map: sess.Remap, Set: sess.SetOption}
		if err := script.Run(cfg.Script.Path, env); err != nil {
			logger.Warn().Err(err).Msg("rc script failed")
		}
	}

	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err == nil {
			watcher, err := config.Watch(cfgPath, func(next config.Config) {
				ui.Post(func() { sess.ApplyRemap(next.Remap) })
			}, logger)
			if err != nil {
				logger.Warn().Err(err).Str("path", cfgPath).Msg("config watch failed")
			} else {
				defer watcher.Close()
			}
		}
	}

	logger.Info().Str("document", docPath).Uint32("pages", sess.PageCount()).Msg("session open")
	return ui.Run(sess)
}

// newLogger builds the session logger. With no file it writes to
// stderr; stdout belongs to the screen.
func newLogger(level, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}

	writer := os.Stderr
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.Create(file)
		if err != nil {
			return zerolog.Logger{}, closer, err
		}
		closer = func() { _ = f.Close() }
		writer = f
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "folio", "config.toml")
}
