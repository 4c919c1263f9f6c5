package parallel

import "sync"

// CellPool provides reuse of acceleration grid cell buffers via sync.Pool.
//
// Every tile of a parallel run allocates a grid of the same size except for
// the clipped edge tiles, so buffers are pooled per length. A buffer handed
// out by Get is always zeroed.
//
// Thread safety: CellPool is safe for concurrent use.
type CellPool struct {
	// pools holds a *sync.Pool per buffer length.
	pools sync.Map
}

// NewCellPool creates a new cell buffer pool.
func NewCellPool() *CellPool {
	return &CellPool{}
}

// Get returns a zeroed buffer of exactly n cells.
// Returns nil if n is not positive.
func (p *CellPool) Get(n int) []int32 {
	if n <= 0 {
		return nil
	}

	buf := p.getOrCreatePool(n).Get().(*[]int32)
	cells := *buf
	clear(cells)
	return cells
}

// Put returns a buffer to the pool for reuse.
// Empty buffers are ignored.
func (p *CellPool) Put(cells []int32) {
	if len(cells) == 0 {
		return
	}
	if pool, ok := p.pools.Load(len(cells)); ok {
		pool.(*sync.Pool).Put(&cells)
	}
	// If pool doesn't exist, let GC reclaim the buffer
}

// getOrCreatePool gets or creates a sync.Pool for buffers of length n.
func (p *CellPool) getOrCreatePool(n int) *sync.Pool {
	if pool, ok := p.pools.Load(n); ok {
		return pool.(*sync.Pool)
	}

	newPool := &sync.Pool{
		New: func() any {
			cells := make([]int32, n)
			return &cells
		},
	}

	// Try to store; if another goroutine beat us, use theirs
	actual, _ := p.pools.LoadOrStore(n, newPool)
	return actual.(*sync.Pool)
}

// defaultCellPool is the package-level pool shared by all runs.
var defaultCellPool = NewCellPool()

// GetCells retrieves a zeroed buffer from the default pool.
func GetCells(n int) []int32 {
	return defaultCellPool.Get(n)
}

// PutCells returns a buffer to the default pool.
func PutCells(cells []int32) {
	defaultCellPool.Put(cells)
}
