// Command bitglyph converts bitmap font sheets into a TrueType font.
//
// Usage:
//
//	bitglyph [-config font.yaml] [-definition default.json] [-textures dir] [-o out.ttf] [-v]
//
// Flags override the values of the configuration file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"seehuhn.de/go/sfnt"

	"github.com/katalvlaran/bitglyph/fontconfig"
	"github.com/katalvlaran/bitglyph/glyph"
	"github.com/katalvlaran/bitglyph/pipeline"
	"github.com/katalvlaran/bitglyph/sheet"
	"github.com/katalvlaran/bitglyph/ttf"
)

// errGlyphs is returned when glyphs failed and no fallback was requested.
var errGlyphs = errors.New("some glyphs failed to vectorize")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bitglyph:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("bitglyph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "YAML configuration `file`")
	definition := fs.String("definition", "", "font definition JSON")
	textures := fs.String("textures", "", "directory holding the sheets")
	output := fs.String("o", "", "output TrueType `file`")
	family := fs.String("family", "", "font family name")
	workers := fs.Int("workers", 0, "parallel workers (0 = one per CPU)")
	strict := fs.Bool("strict", false, "fail instead of substituting blank glyphs")
	verbose := fs.Bool("v", false, "log every glyph")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	pipeline.SetLogger(log)
	defer pipeline.SetLogger(nil)

	cfg := fontconfig.Default()
	if *configFile != "" {
		var err error
		if cfg, err = fontconfig.LoadFile(*configFile); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "definition":
			cfg.Definition = *definition
		case "textures":
			cfg.Textures = *textures
		case "o":
			cfg.Output = *output
		case "family":
			cfg.Family = *family
		case "workers":
			cfg.Workers = *workers
		case "strict":
			cfg.BlankOnError = !*strict
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	tiles, err := loadTiles(cfg, log)
	if err != nil {
		return err
	}

	ocfg := cfg.Outline()
	store := glyph.NewStore(ocfg)
	rep, err := pipeline.Run(ctx, tiles, store, ocfg, cfg.Pipeline())
	if err != nil {
		return err
	}
	if !rep.OK() && !cfg.BlankOnError {
		return fmt.Errorf("%w: %v", errGlyphs, rep.Err())
	}

	records := store.Finalize()
	if lo, hi, ok := store.CodepointRange(); ok {
		log.Info("glyphs", "count", len(records), "first", fmt.Sprintf("U+%04X", lo), "last", fmt.Sprintf("U+%04X", hi))
	}

	font, err := ttf.Build(records, cfg.Info())
	if err != nil {
		return err
	}
	return writeFont(cfg.Output, font, log)
}

func loadTiles(cfg fontconfig.File, log *slog.Logger) ([]glyph.Tile, error) {
	def, err := os.Open(cfg.Definition)
	if err != nil {
		return nil, err
	}
	defer def.Close()
	providers, err := sheet.ParseProviders(def)
	if err != nil {
		return nil, err
	}

	textures := os.DirFS(cfg.Textures)
	var tiles []glyph.Tile
	for _, p := range providers {
		img, err := sheet.Load(textures, p)
		if err != nil {
			return nil, err
		}
		pt, err := sheet.Slice(img, p, cfg.ImageOptions()...)
		if err != nil {
			return nil, err
		}
		log.Info("sheet sliced", "sheet", p.Name(), "tiles", len(pt))
		tiles = append(tiles, pt...)
	}
	return tiles, nil
}

func writeFont(name string, font *sfnt.Font, log *slog.Logger) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	err = ttf.Write(out, font)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Info("font written", "file", name)
	return nil
}
