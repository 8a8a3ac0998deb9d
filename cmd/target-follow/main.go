// Package main is the target-follow command: it locates the coloured marker
// in camera frames from the shell, keeps following a file a camera rewrites,
// or serves the same analysis to MCP clients over stdio.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/target-follow/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const (
	flagConfig  = "config"
	flagDebug   = "debug"
	flagMask    = "mask"
	flagOverlay = "overlay"
	flagOut     = "out"

	logLevelEnv = "TARGET_FOLLOW_LOG_LEVEL"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "target-follow: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "target-follow",
		Usage:           "locate a colour-coded target in camera frames",
		Version:         Version,
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load tunables from `FILE`",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "locate",
				Usage:     "report the target sector and size in each frame",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  flagMask,
						Usage: "print the cleaned membership grid of each frame",
					},
					&cli.StringFlag{
						Name:  flagOverlay,
						Usage: "write an annotated PNG per frame into `DIR`",
					},
				},
				Action: locateAction,
			},
			{
				Name:      "watch",
				Usage:     "re-analyse a frame file every interval and print changes",
				ArgsUsage: "FILE",
				Action:    watchAction,
			},
			{
				Name:   "serve",
				Usage:  "serve the analysis tools over MCP on stdin/stdout",
				Action: serveAction,
			},
			{
				Name:  "config",
				Usage: "print the effective tunables as YAML",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagOut,
						Usage: "write the tunables to `FILE` instead",
					},
				},
				Action: configAction,
			},
			{
				Name:  "version",
				Usage: "print version information",
				Action: func(c *cli.Context) error {
					fmt.Fprintf(c.App.Writer, "target-follow %s\n", Version)
					fmt.Fprintf(c.App.Writer, "  Build time: %s\n", BuildTime)
					fmt.Fprintf(c.App.Writer, "  Git commit: %s\n", GitCommit)
					return nil
				},
			},
		},
	}
}

// newLogger builds the console logger. Output goes to stderr because stdout
// carries results, or the JSON-RPC stream when serving.
func newLogger(debug bool) (*zap.SugaredLogger, error) {
	level := zap.InfoLevel
	if debug || strings.EqualFold(os.Getenv(logLevelEnv), "debug") {
		level = zap.DebugLevel
	}

	cfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// setup loads the configuration and logger every command shares.
func setup(c *cli.Context) (*config.Config, *zap.SugaredLogger, error) {
	logger, err := newLogger(c.Bool(flagDebug))
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(c.String(flagConfig))
	if err != nil {
		return nil, nil, err
	}
	logger.Debugw("configuration loaded", "path", c.String(flagConfig), "config", cfg)
	return cfg, logger, nil
}
