package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsEverything(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		var count atomic.Int64
		pool := Start(workers)
		for i := range 100 {
			pool.Do(func() { count.Add(int64(i)) })
		}
		pool.Wait()
		pool.Wait()

		assert.EqualValues(t, 4950, count.Load(), "workers=%d", workers)
	}
}
