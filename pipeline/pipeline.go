package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bitglyph/glyph"
	"github.com/katalvlaran/bitglyph/outline"
)

// Options configures Run.
//   - Workers: parallel vectorizations; <= 0 means GOMAXPROCS.
//   - BlankOnError: commit a blank glyph in place of a failed tile.
type Options struct {
	Workers      int
	BlankOnError bool
}

// DefaultOptions returns one worker per CPU and no fallback glyphs.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// result is the outcome of one tile.
type result struct {
	rec      *glyph.Record
	err      *GlyphError
	fallback bool
}

// Run vectorizes tiles with cfg and adds the records to store in tile order.
// Per-tile failures go to the Report; the returned error is reserved for
// cancellation of ctx and store errors (such as glyph.ErrFrozen). When ctx
// is cancelled nothing is added to the store.
func Run(ctx context.Context, tiles []glyph.Tile, store *glyph.Store, cfg outline.Config, opts Options) (*Report, error) {
	if store == nil {
		return nil, errors.New("pipeline: nil store")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := Logger()

	results := make([]result, len(tiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, t := range tiles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = vectorize(i, t, cfg, opts.BlankOnError)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	rep := &Report{}
	for _, res := range results {
		if res.err != nil {
			rep.Failed = append(rep.Failed, res.err)
			log.Warn("glyph failed", "tile", res.err.Index, "glyph", res.err.Name, "err", res.err.Err)
		}
		if res.rec == nil {
			continue
		}
		if err := store.Add(res.rec); err != nil {
			return rep, fmt.Errorf("pipeline: %w", err)
		}
		rep.Added++
		if res.rec.Blank {
			rep.Blank++
		}
		if res.fallback {
			rep.Fallbacks++
		}
		log.Debug("glyph added", "glyph", res.rec.Name, "contours", len(res.rec.Outer)+len(res.rec.Holes), "advance", res.rec.Advance)
	}
	log.Info("batch vectorized", "tiles", len(tiles), "added", rep.Added, "blank", rep.Blank, "failed", len(rep.Failed))
	return rep, nil
}

func vectorize(i int, t glyph.Tile, cfg outline.Config, blankOnError bool) result {
	rec, err := glyph.Vectorize(t, cfg)
	if err == nil {
		return result{rec: rec}
	}

	ge := &GlyphError{Index: i, Codepoint: t.Codepoint, Err: err}
	if errors.Is(err, glyph.ErrNoCodepoint) {
		return result{err: ge}
	}
	ge.Name = glyph.Name(t.Codepoint)
	if !blankOnError {
		return result{err: ge}
	}
	blank := &glyph.Record{
		Codepoint: t.Codepoint,
		Name:      ge.Name,
		Outline:   *outline.Assemble(nil, nil, cfg),
	}
	return result{rec: blank, err: ge, fallback: true}
}
