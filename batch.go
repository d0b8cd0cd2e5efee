package u8scan

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ScanBatch runs Scan over every buffer of srcs concurrently, at most
// GOMAXPROCS at a time. out[i] is the result for srcs[i]. p is called from
// several goroutines and must be safe for that.
//
// When ctx is cancelled, buffers not yet started are skipped and ctx.Err()
// is returned.
func ScanBatch(ctx context.Context, srcs [][]byte, p Processor, opts ...Option) ([][]byte, error) {
	out := make([][]byte, len(srcs))
	err := forEach(ctx, len(srcs), func(i int) {
		out[i] = Scan(srcs[i], p, opts...)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LengthBatch is Length over every buffer of srcs, computed concurrently.
func LengthBatch(ctx context.Context, srcs [][]byte, opts ...Option) ([]int, error) {
	out := make([]int, len(srcs))
	err := forEach(ctx, len(srcs), func(i int) {
		out[i] = Length(srcs[i], opts...)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func forEach(ctx context.Context, n int, fn func(i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// the derived context is always done after Wait
	return ctx.Err()
}
