package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/fdsmon/shiftrep/internal/model"
)

// ErrNoInput is returned when no source file was provided. It is surfaced
// before any I/O happens; the pipeline is never invoked without input.
var ErrNoInput = errors.New("no input file provided")

// Source is one fully-read export, parsed into rows.
type Source struct {
	Path string
	Rows []model.RawRow
}

// ReadSources reads all given files concurrently and returns them parsed,
// in the declared order regardless of read completion order. Dedup is
// first-seen-wins downstream, so the declared order is part of the contract.
// Any read failure aborts the whole batch; there is no partial result.
func ReadSources(ctx context.Context, paths []string) ([]Source, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	sources := make([]Source, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			rows := ParseRows(string(data))
			slog.Debug("source read", "path", path, "rows", len(rows))
			sources[i] = Source{Path: path, Rows: rows}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}
