// Package pipeline vectorizes a batch of tiles into a glyph.Store.
//
// Run fans the tiles out over a bounded pool of workers. Each tile is
// vectorized independently; a failing tile never aborts the batch. Its
// error is recorded in the Report and, with Options.BlankOnError, a blank
// glyph takes its place. Results are committed to the store in tile order
// once every worker is done, so the same input always yields the same font.
//
// Logging goes through log/slog and is silent until SetLogger is called.
package pipeline
