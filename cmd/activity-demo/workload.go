package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/luxas/deklarative/activity"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var errCopy = errors.New("copy failed")

// syncer copies files of a tenant concurrently.
type syncer struct {
	tenant string
	failAt int
}

func (*syncer) SourceName() string { return "syncer" }

//nolint:gochecknoglobals
var src = activity.For(&syncer{})

// Sync is a transaction of the "request" kind; every file is copied in an
// asynchronous child activity.
func (s *syncer) Sync(ctx context.Context, files int) error {
	opts := activity.OpenActivityOptions{Kind: "request"}
	src.Info().ApplyTransactionRequirements(ctx, &opts)

	return src.Info().Run(ctx, "Sync", func(ctx context.Context, act *activity.Activity) error {
		src.Debug().Writef(ctx, "copying {Count} files", files)

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			errs error
		)
		for i := 0; i < files; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				// Every goroutine tracks its calls on its own stack.
				gctx, _ := activity.WithCallStack(ctx)
				if err := s.copyFile(gctx, i); err != nil {
					mu.Lock()
					errs = multierr.Append(errs, err)
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()
		return errs
	}, activity.WithOpenOptions(opts), activity.WithProperty("tenant", s.tenant, activity.BaggageProperty()))
}

func (s *syncer) copyFile(ctx context.Context, i int) error {
	name := fmt.Sprintf("file-%d.txt", i)
	return src.Debug().RunAsync(ctx, "Copy", func(ctx context.Context, act *activity.Activity) error {
		act.SetWaitDependency("storage")
		return act.Await(ctx, func(ctx context.Context) error {
			time.Sleep(time.Millisecond)
			if i == s.failAt {
				return errors.Wrap(errCopy, name)
			}
			return nil
		})
	}, activity.WithProperty("file", name, activity.RenderedProperty()))
}
