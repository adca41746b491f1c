package marketdata

import (
	"context"
	"sync"

	"fxdesk/internal/logger"
	"fxdesk/types"

	"golang.org/x/sync/errgroup"
)

// FetchAll loads the curves of several pairs concurrently. The first failure
// cancels the remaining requests.
func FetchAll(ctx context.Context, src ForwardPointSource, pairs []string) (map[string][]types.TenorPoint, error) {
	log := logger.FromContext(ctx)

	var mu sync.Mutex
	out := make(map[string][]types.TenorPoint, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	for _, pair := range pairs {
		g.Go(func() error {
			points, err := src.ForwardPoints(gctx, pair)
			if err != nil {
				log.Warnw("forward points fetch failed", "pair", pair, "error", err)
				return err
			}
			mu.Lock()
			out[pair] = points
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
