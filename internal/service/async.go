package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/smellerlabs/aromadb/internal/model"
	"github.com/smellerlabs/aromadb/internal/schema"
)

// ErrServiceClosed is returned for calls made after Close.
var ErrServiceClosed = errors.New("service is closed")

// Async funnels every operation through a single dispatch goroutine, so at
// most one operation touches the store at a time. Callers block until their
// operation completes.
//
// Cancellation is cooperative: a canceled context aborts a call only while
// it is still queued. Once the dispatcher picks an operation up it runs to
// completion, so a transaction is never abandoned halfway.
type Async struct {
	ops *ops

	jobs chan func()
	quit chan struct{}
	done chan struct{}

	closeOnce sync.Once
}

var _ Service = (*Async)(nil)

func newAsync(o *ops) *Async {
	a := &Async{
		ops:  o,
		jobs: make(chan func()),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *Async) run() {
	defer close(a.done)
	for {
		select {
		case job := <-a.jobs:
			job()
		case <-a.quit:
			// Finish anything that was queued before the shutdown.
			for {
				select {
				case job := <-a.jobs:
					job()
				default:
					return
				}
			}
		}
	}
}

type result[T any] struct {
	val T
	err error
}

// dispatch hands fn to the dispatch goroutine and waits for its result.
// Before the dispatcher accepts the job the caller's context can cancel the
// wait; afterwards the job always runs to completion.
func dispatch[T any](ctx context.Context, a *Async, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	resCh := make(chan result[T], 1)
	job := func() {
		// Detach from the caller's cancellation so in-flight work is
		// never interrupted mid-transaction.
		v, err := fn(context.WithoutCancel(ctx))
		resCh <- result[T]{val: v, err: err}
	}

	select {
	case a.jobs <- job:
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-a.done:
		return zero, ErrServiceClosed
	}

	r := <-resCh
	return r.val, r.err
}

// dispatchErr is dispatch for operations that return only an error.
func dispatchErr(ctx context.Context, a *Async, fn func(ctx context.Context) error) error {
	_, err := dispatch(ctx, a, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func (a *Async) CreateAromaTrack(ctx context.Context, in schema.AromaTrackCreate) (*model.AromaTrack, error) {
	return dispatch(ctx, a, func(ctx context.Context) (*model.AromaTrack, error) {
		return a.ops.createTrack(ctx, in)
	})
}

func (a *Async) GetAromaTrack(ctx context.Context, id int) (*model.AromaTrack, error) {
	return dispatch(ctx, a, func(ctx context.Context) (*model.AromaTrack, error) {
		return a.ops.getTrack(ctx, id)
	})
}

func (a *Async) ListAromaTracks(ctx context.Context) ([]*model.AromaTrack, error) {
	return dispatch(ctx, a, func(ctx context.Context) ([]*model.AromaTrack, error) {
		return a.ops.listTracks(ctx)
	})
}

func (a *Async) UpdateAromaTrack(ctx context.Context, id int, in schema.AromaTrackCreate) (*model.AromaTrack, error) {
	return dispatch(ctx, a, func(ctx context.Context) (*model.AromaTrack, error) {
		return a.ops.updateTrack(ctx, id, in)
	})
}

func (a *Async) DeleteAromaTrack(ctx context.Context, id int) error {
	return dispatchErr(ctx, a, func(ctx context.Context) error {
		return a.ops.deleteTrack(ctx, id)
	})
}

func (a *Async) CreateAromaBlock(ctx context.Context, in schema.AromaBlockCreate) (*model.AromaBlock, error) {
	return dispatch(ctx, a, func(ctx context.Context) (*model.AromaBlock, error) {
		return a.ops.createBlock(ctx, in)
	})
}

func (a *Async) GetAromaBlock(ctx context.Context, id int) (*model.AromaBlock, error) {
	return dispatch(ctx, a, func(ctx context.Context) (*model.AromaBlock, error) {
		return a.ops.getBlock(ctx, id)
	})
}

func (a *Async) ListAromaBlocks(ctx context.Context, trackID int) ([]*model.AromaBlock, error) {
	return dispatch(ctx, a, func(ctx context.Context) ([]*model.AromaBlock, error) {
		return a.ops.listBlocks(ctx, trackID)
	})
}

func (a *Async) UpdateAromaBlock(ctx context.Context, id int, in schema.AromaBlockCreate) (*model.AromaBlock, error) {
	return dispatch(ctx, a, func(ctx context.Context) (*model.AromaBlock, error) {
		return a.ops.updateBlock(ctx, id, in)
	})
}

func (a *Async) DeleteAromaBlock(ctx context.Context, id int) error {
	return dispatchErr(ctx, a, func(ctx context.Context) error {
		return a.ops.deleteBlock(ctx, id)
	})
}

func (a *Async) GetCartridge(ctx context.Context, id int) (*model.Cartridge, error) {
	return dispatch(ctx, a, func(ctx context.Context) (*model.Cartridge, error) {
		return a.ops.getCartridge(ctx, id)
	})
}

func (a *Async) GetAllCartridges(ctx context.Context) ([]*model.Cartridge, error) {
	return dispatch(ctx, a, func(ctx context.Context) ([]*model.Cartridge, error) {
		return a.ops.listCartridges(ctx)
	})
}

func (a *Async) SetupSchema(ctx context.Context, dropFirst bool) error {
	return dispatchErr(ctx, a, func(ctx context.Context) error {
		return a.ops.setupSchema(ctx, dropFirst)
	})
}

func (a *Async) TableNames(ctx context.Context) ([]string, error) {
	return dispatch(ctx, a, func(ctx context.Context) ([]string, error) {
		return a.ops.tableNames(ctx)
	})
}

func (a *Async) DatabaseOverview(ctx context.Context, w io.Writer, previewRows int, headersOnly bool) error {
	return dispatchErr(ctx, a, func(ctx context.Context) error {
		return a.ops.databaseOverview(ctx, w, previewRows, headersOnly)
	})
}

func (a *Async) CreateReadOnlyUser(ctx context.Context, username, password string) error {
	return dispatchErr(ctx, a, func(ctx context.Context) error {
		return a.ops.createReadOnlyUser(ctx, username, password)
	})
}

// Close stops the dispatch goroutine, waits for queued work to finish, and
// then releases the underlying store and publisher. Calls made after Close
// return ErrServiceClosed.
func (a *Async) Close() error {
	a.closeOnce.Do(func() {
		close(a.quit)
	})
	<-a.done
	return a.ops.close()
}
