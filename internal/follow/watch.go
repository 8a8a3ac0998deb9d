package follow

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/ironsheep/target-follow/internal/target"
)

// Update is one pass of a watch loop.
type Update struct {
	Outcome

	// Seq counts passes from 1.
	Seq int

	// Changed is set when the sector or size differs from the previous
	// successful pass, and on the first successful pass.
	Changed bool
}

// Watch analyses path at once and then every interval until ctx is done,
// calling fn with each update. A pass that is still running when the next
// tick arrives absorbs that tick, so at most one analysis runs at a time and
// slow frames never queue up.
//
// fn is called from a worker goroutine, one call at a time. Watch returns
// nil when ctx is cancelled, after the running pass has finished.
func (r *Runner) Watch(ctx context.Context, path string, interval time.Duration, fn func(Update)) error {
	if interval <= 0 {
		return errors.Errorf("watch interval %s must be positive", interval)
	}

	var (
		wg      sync.WaitGroup
		busy    = make(chan struct{}, 1)
		seq     int
		dropped int
		last    *target.Result
	)

	pass := func() {
		defer wg.Done()
		defer func() { <-busy }()

		seq++
		out := r.Analyze(path)
		u := Update{Outcome: out, Seq: seq}
		if out.Err == nil {
			u.Changed = last == nil || last.Sector != out.Result.Sector || last.Size != out.Result.Size
			res := out.Result
			last = &res
		}
		u.Image, u.Analysis = nil, nil
		fn(u)
	}

	dispatch := func() {
		select {
		case busy <- struct{}{}:
			wg.Add(1)
			go pass()
		default:
			dropped++
			r.logger.Debugw("previous pass still running, tick dropped", "path", path, "dropped", dropped)
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Infow("watching", "path", path, "interval", interval)
	dispatch()
	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			r.logger.Infow("watch stopped", "path", path, "passes", seq, "dropped", dropped)
			return nil
		case <-ticker.C:
			dispatch()
		}
	}
}
