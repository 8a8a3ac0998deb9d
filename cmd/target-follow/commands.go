package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/target-follow/internal/config"
	"github.com/ironsheep/target-follow/internal/follow"
	"github.com/ironsheep/target-follow/internal/imaging"
	"github.com/ironsheep/target-follow/internal/server"
)

func locateAction(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return errors.New("locate needs at least one FILE")
	}
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	overlayDir := c.String(flagOverlay)
	if overlayDir != "" {
		if err := os.MkdirAll(overlayDir, 0o755); err != nil {
			return errors.Wrap(err, "creating overlay directory")
		}
	}
	showMask := c.Bool(flagMask)

	var (
		mu    sync.Mutex
		masks = map[string]string{}
	)
	hook := func(o follow.Outcome) {
		if o.Analysis == nil {
			return
		}
		if showMask {
			mu.Lock()
			masks[o.Path] = o.Analysis.Cleaned.String()
			mu.Unlock()
		}
		if overlayDir != "" {
			if err := saveOverlay(overlayDir, o); err != nil {
				logger.Warnw("cannot write overlay", "path", o.Path, "error", err)
			}
		}
	}

	runner := follow.NewRunner(cfg.Analyzer(), follow.FileLoader(imaging.NewImageCache(), cfg.WorkingSize(), false), logger)
	outcomes, err := runner.Batch(c.Context, paths, cfg.Workers, hook)

	w := c.App.Writer
	for _, o := range outcomes {
		if o.Path == "" {
			continue // not started before cancellation
		}
		if o.Err != nil {
			fmt.Fprintf(w, "%s: %v\n", o.Path, o.Err)
			continue
		}
		fmt.Fprintf(w, "%s: %s %d\n", o.Path, o.Result.Sector, o.Result.Size)
		if m, ok := masks[o.Path]; ok {
			fmt.Fprint(w, m)
		}
	}
	return err
}

func saveOverlay(dir string, o follow.Outcome) error {
	img, err := imaging.RenderOverlay(o.Image, o.Analysis, imaging.OverlayOptions{ShowLabel: true})
	if err != nil {
		return err
	}
	base := filepath.Base(o.Path)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + "-overlay.png"
	return imaging.SavePNG(filepath.Join(dir, name), img)
}

func watchAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("watch needs exactly one FILE")
	}
	path := c.Args().First()

	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := follow.NewRunner(cfg.Analyzer(), follow.FileLoader(imaging.NewImageCache(), cfg.WorkingSize(), true), logger)
	w := c.App.Writer
	return runner.Watch(ctx, path, cfg.WatchInterval, func(u follow.Update) {
		if !u.Changed {
			return
		}
		fmt.Fprintf(w, "%d %s: %s %d", u.Seq, u.Path, u.Result.Sector, u.Result.Size)
		if u.Result.Found {
			fmt.Fprintf(w, " (%+d,%+d)", u.Offset.DeltaX, u.Offset.DeltaY)
		}
		fmt.Fprintln(w)
	})
}

func serveAction(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	logger.Infow("serving MCP on stdio", "version", Version, "commit", GitCommit)
	return server.New(cfg, logger, Version).Run()
}

func configAction(c *cli.Context) error {
	cfg, err := config.Load(c.String(flagConfig))
	if err != nil {
		return err
	}
	if out := c.String(flagOut); out != "" {
		return config.Write(cfg, out)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	_, err = c.App.Writer.Write(data)
	return err
}
