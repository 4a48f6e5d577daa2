package geolib

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

const (
	DefaultWorkerPoolSize = 64

	workerPoolExpireTime = time.Minute
)

type BatchResult struct {
	IP       IP       `json:"ip"`
	Location Location `json:"location"`
	Err      error    `json:"-"`
}

func (b BatchResult) OK() bool {
	return b.Err == nil
}

type batchRequest struct {
	ctx     context.Context
	index   int
	results []BatchResult
	wg      *sync.WaitGroup
}

// BatchLocator resolves many IPs at once. Each IP gets its own walk
// through a locator in a worker pool.
type BatchLocator struct {
	locator    Locator
	rwmutex    sync.RWMutex
	closeOnce  sync.Once
	closed     bool
	workerPool *ants.PoolWithFunc
}

// LocateAll returns results in the same order as given ips.
func (b *BatchLocator) LocateAll(ctx context.Context, ips []IP) ([]BatchResult, error) {
	b.rwmutex.RLock()
	defer b.rwmutex.RUnlock()

	if b.closed {
		return nil, ErrBatchLocatorShutdown
	}

	results := make([]BatchResult, len(ips))
	wg := &sync.WaitGroup{}

	for i, v := range ips {
		results[i].IP = v
		results[i].Err = ErrContextIsClosed
	}

	for i := range ips {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)

		req := &batchRequest{
			ctx:     ctx,
			index:   i,
			results: results,
			wg:      wg,
		}

		if err := b.workerPool.Invoke(req); err != nil {
			wg.Done()

			results[i].Err = fmt.Errorf("cannot schedule a task: %w", err)
		}
	}

	wg.Wait()

	return results, nil
}

func (b *BatchLocator) Shutdown() {
	b.rwmutex.Lock()
	defer b.rwmutex.Unlock()

	b.closed = true

	b.closeOnce.Do(func() {
		b.workerPool.Release()
	})
}

func (b *BatchLocator) locate(args interface{}) {
	req := args.(*batchRequest)
	defer req.wg.Done()

	current := &req.results[req.index]
	current.Location, current.Err = b.locator.Locate(req.ctx, current.IP)
}

func NewBatchLocator(locator Locator, workerPoolSize int) (*BatchLocator, error) {
	rv := &BatchLocator{
		locator: locator,
	}

	poolSize := workerPoolSize
	if poolSize <= 0 {
		poolSize = DefaultWorkerPoolSize
	}

	pool, err := ants.NewPoolWithFunc(poolSize, rv.locate,
		ants.WithExpiryDuration(workerPoolExpireTime))
	if err != nil {
		return nil, fmt.Errorf("cannot create a worker pool: %w", err)
	}

	rv.workerPool = pool

	return rv, nil
}
