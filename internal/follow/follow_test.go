package follow

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	"github.com/ironsheep/target-follow/internal/imaging"
	"github.com/ironsheep/target-follow/internal/target"
)

var (
	green = target.PackARGB(255, 0, 240, 40)
	grey  = target.PackARGB(255, 128, 128, 128)
)

// squareFrame is a grey w x h frame with a green square at r.
func squareFrame(w, h int, r image.Rectangle) target.Frame {
	pix := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = grey
			if image.Pt(x, y).In(r) {
				pix[y*w+x] = green
			}
		}
	}
	return target.Frame{Width: w, Height: h, Pix: pix}
}

// mapLoader serves frames from memory; unknown paths fail to load.
func mapLoader(frames map[string]target.Frame) Loader {
	return func(path string) (image.Image, target.Frame, error) {
		f, ok := frames[path]
		if !ok {
			return nil, target.Frame{}, fmt.Errorf("no such frame %s", path)
		}
		return nil, f, nil
	}
}

func newRunner(t *testing.T, load Loader) *Runner {
	return NewRunner(target.NewAnalyzer(), load, zaptest.NewLogger(t).Sugar())
}

func TestAnalyze(t *testing.T) {
	r := newRunner(t, mapLoader(map[string]target.Frame{
		"left.png":  squareFrame(100, 100, image.Rect(2, 45, 12, 55)),
		"empty.png": squareFrame(100, 100, image.Rectangle{}),
		"bad.png":   {Width: 10, Height: 10, Pix: make([]uint32, 3)},
	}))

	out := r.Analyze("left.png")
	require.NoError(t, out.Err)
	assert.Equal(t, target.SectorLeft, out.Result.Sector)
	assert.NotNil(t, out.Analysis)
	assert.Equal(t, out.Result.Centroid.X-50, out.Offset.DeltaX)
	assert.Equal(t, out.Result.Centroid.Y-50, out.Offset.DeltaY)

	out = r.Analyze("empty.png")
	require.NoError(t, out.Err)
	assert.Equal(t, target.SectorError, out.Result.Sector)
	assert.Equal(t, imaging.OffsetResult{}, out.Offset)

	out = r.Analyze("bad.png")
	require.Error(t, out.Err)
	assert.True(t, target.IsDecodeError(out.Err))

	out = r.Analyze("missing.png")
	assert.Error(t, out.Err)
}

func TestBatch(t *testing.T) {
	frames := map[string]target.Frame{}
	var paths []string
	for i := 0; i < 12; i++ {
		p := fmt.Sprintf("frame-%02d.png", i)
		paths = append(paths, p)
		if i%2 == 0 {
			frames[p] = squareFrame(100, 100, image.Rect(85, 80, 95, 90))
		} else {
			frames[p] = squareFrame(100, 100, image.Rect(2, 2, 12, 12))
		}
	}

	var hooked int32
	outcomes, err := newRunner(t, mapLoader(frames)).Batch(context.Background(), paths, 3, func(o Outcome) {
		atomic.AddInt32(&hooked, 1)
		assert.NotNil(t, o.Analysis)
	})
	require.NoError(t, err)
	require.Len(t, outcomes, len(paths))
	assert.EqualValues(t, len(paths), atomic.LoadInt32(&hooked))

	for i, o := range outcomes {
		assert.Equal(t, paths[i], o.Path, "outcomes keep input order")
		assert.Nil(t, o.Analysis)
		if i%2 == 0 {
			assert.Equal(t, target.SectorBelowRight, o.Result.Sector)
		} else {
			assert.Equal(t, target.SectorAboveLeft, o.Result.Sector)
		}
	}
}

func TestBatch_CollectsFailures(t *testing.T) {
	frames := map[string]target.Frame{
		"ok.png":  squareFrame(50, 50, image.Rect(20, 20, 30, 30)),
		"bad.png": {Width: 5, Height: 5, Pix: make([]uint32, 24)},
	}
	paths := []string{"ok.png", "bad.png", "missing.png", "ok.png"}

	outcomes, err := newRunner(t, mapLoader(frames)).Batch(context.Background(), paths, 2, nil)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)

	assert.NoError(t, outcomes[0].Err)
	assert.True(t, target.IsDecodeError(outcomes[1].Err))
	assert.Error(t, outcomes[2].Err)
	assert.Equal(t, outcomes[0].Result, outcomes[3].Result)
}

func TestBatch_BoundedWorkers(t *testing.T) {
	var inFlight, peak int32
	var mu sync.Mutex
	load := func(path string) (image.Image, target.Frame, error) {
		n := atomic.AddInt32(&inFlight, 1)
		mu.Lock()
		if n > peak {
			peak = n
		}
		mu.Unlock()
		defer atomic.AddInt32(&inFlight, -1)
		return nil, squareFrame(40, 40, image.Rect(10, 10, 20, 20)), nil
	}

	paths := make([]string, 20)
	for i := range paths {
		paths[i] = fmt.Sprintf("%d.png", i)
	}
	_, err := newRunner(t, load).Batch(context.Background(), paths, 2, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak, int32(2))
}

func TestBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(t, mapLoader(nil)).Batch(ctx, []string{"a.png", "b.png"}, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	writePNG := func(c color.Color) {
		img := image.NewRGBA(image.Rect(0, 0, 40, 40))
		for y := 0; y < 40; y++ {
			for x := 0; x < 40; x++ {
				img.Set(x, y, c)
			}
		}
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
	}

	cache := imaging.NewImageCache()
	cached := FileLoader(cache, imaging.WorkingSize{}, false)
	fresh := FileLoader(cache, imaging.WorkingSize{Width: 20, Height: 20}, true)

	writePNG(color.RGBA{0, 240, 40, 255})
	_, f, err := cached(path)
	require.NoError(t, err)
	assert.Equal(t, green, f.At(0, 0))

	writePNG(color.RGBA{128, 128, 128, 255})
	_, f, err = cached(path)
	require.NoError(t, err)
	assert.Equal(t, green, f.At(0, 0), "cached loader keeps the first read")

	img, f, err := fresh(path)
	require.NoError(t, err)
	assert.Equal(t, grey, f.At(0, 0))
	assert.Equal(t, 20, f.Width)
	assert.Equal(t, 20, img.Bounds().Dx())
}
