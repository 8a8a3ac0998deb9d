// Package follow runs the target analysis over files: once per frame for a
// batch of stills, or repeatedly on one file that a camera keeps rewriting.
//
// Every frame is analysed independently. A Runner holds no state between
// frames except what Watch keeps to report changes.
package follow

import (
	"context"
	"image"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/target-follow/internal/imaging"
	"github.com/ironsheep/target-follow/internal/target"
)

// Loader produces the frame for a path together with the image it was
// packed from.
type Loader func(path string) (image.Image, target.Frame, error)

// FileLoader loads frames through cache, fitted into size. When fresh is set
// every call re-reads the file, which is what a watch loop needs.
func FileLoader(cache *imaging.ImageCache, size imaging.WorkingSize, fresh bool) Loader {
	return func(path string) (image.Image, target.Frame, error) {
		if fresh {
			cache.Evict(path)
		}
		return imaging.LoadFrame(cache, path, size)
	}
}

// Outcome is the analysis of one frame file.
type Outcome struct {
	Path   string               `json:"path"`
	Result target.Result        `json:"result"`
	Offset imaging.OffsetResult `json:"offset"`
	Err    error                `json:"-"`

	// Image and Analysis are only set on the value passed to a frame hook.
	Image    image.Image      `json:"-"`
	Analysis *target.Analysis `json:"-"`
}

// Runner loads and analyses frames.
type Runner struct {
	analyzer *target.Analyzer
	load     Loader
	logger   *zap.SugaredLogger
}

// NewRunner returns a Runner. A nil logger discards log output.
func NewRunner(a *target.Analyzer, load Loader, logger *zap.SugaredLogger) *Runner {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Runner{analyzer: a, load: load, logger: logger}
}

// Analyze loads and analyses one frame. Load and decode failures are
// returned in Outcome.Err; no target is not a failure.
func (r *Runner) Analyze(path string) Outcome {
	out := Outcome{Path: path}

	img, frame, err := r.load(path)
	if err != nil {
		out.Err = err
		r.logger.Warnw("cannot load frame", "path", path, "error", err)
		return out
	}

	an, err := r.analyzer.Inspect(frame)
	if err != nil {
		out.Err = errors.Wrapf(err, "analysing %s", path)
		if target.IsDecodeError(err) {
			r.logger.Warnw("skipping undecodable frame", "path", path, "error", err)
		} else {
			r.logger.Errorw("analysis failed", "path", path, "error", err)
		}
		return out
	}

	out.Result = an.Result
	out.Image = img
	out.Analysis = an
	if an.Found {
		out.Offset = imaging.CentreOffset(an.Width, an.Height, an.Centroid)
	}
	r.logger.Debugw("frame analysed",
		"path", path,
		"sector", an.Sector,
		"size", an.Size,
		"centroid", an.Centroid,
		"samples", an.Samples,
	)
	return out
}

// Batch analyses paths with at most workers frames in flight and returns the
// outcomes in input order. Per-frame failures do not stop the batch; they
// are combined into the returned error. If hook is not nil it is called with
// each complete outcome, from the worker goroutine, before the image and
// analysis are dropped.
func (r *Runner) Batch(ctx context.Context, paths []string, workers int, hook func(Outcome)) ([]Outcome, error) {
	if workers <= 0 {
		workers = 1
	}
	outcomes := make([]Outcome, len(paths))

	var (
		mu   sync.Mutex
		errs error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out := r.Analyze(path)
			if hook != nil {
				hook(out)
			}
			out.Image, out.Analysis = nil, nil
			outcomes[i] = out

			if out.Err != nil {
				mu.Lock()
				errs = multierr.Append(errs, out.Err)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	if err := ctx.Err(); err != nil {
		return outcomes, err
	}
	return outcomes, errs
}
