package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted functions on a fixed number of goroutines. With a
// single worker, Do runs the function inline.
type Pool struct {
	wg    sync.WaitGroup
	work  chan func()
	close func()
}

// Start launches numWorkers goroutines, or GOMAXPROCS when numWorkers < 1.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

// Do submits f. It must not be called after Wait.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting work and blocks until every submitted function ran.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}
