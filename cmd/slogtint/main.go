package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apperia-de/slogtint"
	"github.com/urfave/cli/v3"
)

var appVersion = "0.1.0"

func main() {
	rootCmd := &cli.Command{
		Name:                   "slogtint",
		Usage:                  "preview and try out slogtint color profiles",
		Version:                appVersion,
		EnableShellCompletion:  true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Aliases: []string{"l"},
				Name:    "log-level",
				Value:   slogtint.LogLevelInfo,
				Usage:   "set the log level (e.g. DEBUG, INFO, WARNING+2)",
			},
			&cli.StringFlag{
				Aliases: []string{"c"},
				Name:    "config",
				Usage:   "load additional profiles from a YAML or TOML config file",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := slogtint.ParseLevel(cmd.String("log-level"))
			if err != nil {
				return nil, cli.Exit(err.Error(), 1)
			}
			slog.SetDefault(slog.New(slogtint.NewConsoleHandler(os.Stderr, &slogtint.HandlerOptions{Level: level})))
			slog.Debug("set log level", slog.String("log_level", slogtint.LevelName(level)))

			return ctx, nil
		},
		Commands: []*cli.Command{listCmd, previewCmd, demoCmd},
	}
	if err := rootCmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("run application", slog.Any("error", err))
		os.Exit(1)
	}
}

var listCmd = &cli.Command{
	Aliases: []string{"ls"},
	Name:    "list",
	Usage:   "list the available profiles",
	Action: func(_ context.Context, cmd *cli.Command) error {
		profiles, err := loadProfiles(cmd.String("config"))
		if err != nil {
			return err
		}
		for _, name := range profiles.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

var previewCmd = &cli.Command{
	Name:  "preview",
	Usage: "log one message per threshold of each profile",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Aliases: []string{"p"},
			Name:    "profile",
			Usage:   "preview only the given profiles",
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		profiles, err := loadProfiles(cmd.String("config"))
		if err != nil {
			return err
		}
		names := cmd.StringSlice("profile")
		if len(names) == 0 {
			names = profiles.Names()
		}

		out := slogtint.NewConsoleWriter(os.Stdout)
		fmt.Fprintln(out, "*** TESTING COLOR PROFILES ***")
		for _, name := range names {
			p, ok := profiles[name]
			if !ok {
				return cli.Exit(fmt.Sprintf("unknown profile %q", name), 1)
			}
			if err := slogtint.Preview(out, name, p); err != nil {
				return err
			}
		}
		return nil
	},
}

var demoCmd = &cli.Command{
	Name:  "demo",
	Usage: "log a message on every standard level in an interval",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Aliases: []string{"p"},
			Name:    "profile",
			Value:   slogtint.ProfileDefault,
			Usage:   "set the profile to use",
		},
		&cli.DurationFlag{
			Aliases: []string{"n", "d"},
			Name:    "interval",
			Value:   time.Second,
			Usage:   "set the interval between two rounds of messages",
		},
		&cli.BoolFlag{
			Aliases: []string{"w"},
			Name:    "watch",
			Usage:   "reload the config file when it changes",
		},
		&cli.StringFlag{
			Aliases: []string{"f"},
			Name:    "format",
			Value:   formatStream,
			Usage:   "set the output format (stream, charm)",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		opts := &slogtint.HandlerOptions{
			Profile: cmd.String("profile"),
			Level:   slogtint.LevelNotSet,
		}
		if cfgFile := cmd.String("config"); cfgFile != "" {
			opts.ConfigFile = &cfgFile
			opts.EnableFileWatcher = cmd.Bool("watch")
		}
		h, err := newDemoHandler(cmd.String("format"), os.Stdout, opts)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer h.Close()
		logger := slog.New(h)

		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		ticker := time.NewTicker(cmd.Duration("interval"))
		defer ticker.Stop()

		levels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError, slogtint.LevelCritical}
		for round := 1; ; round++ {
			for _, lvl := range levels {
				logger.Log(ctx, lvl, "demo message", slog.Int("round", round), slog.String("profile", h.ProfileName()))
			}
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	},
}

func loadProfiles(cfgFile string) (slogtint.Profiles, error) {
	if cfgFile == "" {
		return slogtint.BuiltinProfiles(), nil
	}
	cfg, err := slogtint.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	return cfg.LoadProfiles(slogtint.BuiltinProfiles())
}
