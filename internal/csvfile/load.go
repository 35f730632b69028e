package csvfile

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/partslist/pkg/types"
)

const defaultConcurrency = 8

// LoadAll imports every path in parallel and returns the lists in the
// order the paths were given.
//
// Paths that fail with ErrImport are logged and skipped unless Strict is
// set. Any other failure, such as a malformed row, aborts the whole load.
func (im *Importer) LoadAll(ctx context.Context, paths []string) ([]*types.PartsList, error) {
	limit := im.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	results := make([]*types.PartsList, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			list, err := im.Import(path)
			if err == nil {
				results[i] = list
				return nil
			}
			if errors.Is(err, types.ErrImport) && !im.Strict {
				im.Logger.Warn().Err(err).Str("path", path).Msg("skipping parts list")
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load parts lists: %w", err)
	}

	loaded := make([]*types.PartsList, 0, len(results))
	for _, l := range results {
		if l != nil {
			loaded = append(loaded, l)
		}
	}
	return loaded, nil
}
