// Package nest is the rank-specialization engine: it turns a rank into a
// concretely-nested loop routine and memoizes the routine so the build cost
// is paid once per rank for the lifetime of the process.
//
// Every routine iterates the 1-based coordinate box [1..bounds[k]] with
// axis 1 innermost (fastest), matching the column-major linear layout
// described in package shape. Clients that need a different template wrap
// their work in the Body they supply; the nesting order itself is fixed.
package nest

import (
	"fmt"
	"sync"

	"github.com/ndkit/ndkit/internal/shape"
)

// Body receives one 1-based coordinate tuple per visit. The slice is reused
// between visits and must not be retained. Returning false stops the walk;
// error paths and short-circuit searches use this.
type Body func(coord []int) bool

// Looper runs a body over the full coordinate box described by bounds.
// A zero-length axis makes the box empty and the body is never called.
type Looper func(bounds []int, body Body)

// Cache memoizes one loop-nest routine per rank. Routines are built lazily
// on first request, under a lock so concurrent first-use builds exactly
// once, and are never evicted: ranks seen at runtime are small and repeat
// constantly, so the map stays tiny for the process lifetime.
type Cache struct {
	mu      sync.Mutex
	byRank  map[int]Looper
	builds  int
	builder func(rank int) Looper
}

// NewCache creates a cache whose routines are produced by build.
// A nil build uses the default loop-nest builder.
func NewCache(build func(rank int) Looper) *Cache {
	if build == nil {
		build = buildLooper
	}
	return &Cache{
		byRank:  make(map[int]Looper),
		builder: build,
	}
}

// For returns the routine specialized to rank, building and caching it on
// first request. Ranks <= 0 have no loop nest.
func (c *Cache) For(rank int) (Looper, error) {
	if rank <= 0 {
		return nil, fmt.Errorf("%w: rank %d", shape.ErrInvalidRank, rank)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.byRank[rank]; ok {
		return l, nil
	}
	l := c.builder(rank)
	c.byRank[rank] = l
	c.builds++
	return l, nil
}

// Builds reports how many routines this cache has constructed.
func (c *Cache) Builds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.builds
}

var defaultCache = NewCache(nil)

// For returns the process-wide routine for rank from the default cache.
func For(rank int) (Looper, error) {
	return defaultCache.For(rank)
}

// buildLooper constructs the loop nest for one rank. Ranks 1 through 4
// get hand-specialized nests with a fixed, known depth; higher ranks get
// an odometer routine whose coordinate buffer is sized to the rank once.
// Either way the caller sees a routine with rank loop levels, axis 1
// fastest.
func buildLooper(rank int) Looper {
	switch rank {
	case 1:
		return loop1
	case 2:
		return loop2
	case 3:
		return loop3
	case 4:
		return loop4
	default:
		return odometer(rank)
	}
}

func loop1(bounds []int, body Body) {
	coord := make([]int, 1)
	for i := 1; i <= bounds[0]; i++ {
		coord[0] = i
		if !body(coord) {
			return
		}
	}
}

func loop2(bounds []int, body Body) {
	coord := make([]int, 2)
	for j := 1; j <= bounds[1]; j++ {
		coord[1] = j
		for i := 1; i <= bounds[0]; i++ {
			coord[0] = i
			if !body(coord) {
				return
			}
		}
	}
}

func loop3(bounds []int, body Body) {
	coord := make([]int, 3)
	for k := 1; k <= bounds[2]; k++ {
		coord[2] = k
		for j := 1; j <= bounds[1]; j++ {
			coord[1] = j
			for i := 1; i <= bounds[0]; i++ {
				coord[0] = i
				if !body(coord) {
					return
				}
			}
		}
	}
}

func loop4(bounds []int, body Body) {
	coord := make([]int, 4)
	for l := 1; l <= bounds[3]; l++ {
		coord[3] = l
		for k := 1; k <= bounds[2]; k++ {
			coord[2] = k
			for j := 1; j <= bounds[1]; j++ {
				coord[1] = j
				for i := 1; i <= bounds[0]; i++ {
					coord[0] = i
					if !body(coord) {
						return
					}
				}
			}
		}
	}
}

// odometer builds the generic routine for one rank above 4. The coordinate
// rolls over like an odometer with axis 1 as the fastest wheel.
func odometer(rank int) Looper {
	return func(bounds []int, body Body) {
		for _, b := range bounds[:rank] {
			if b <= 0 {
				return
			}
		}

		coord := make([]int, rank)
		for k := range coord {
			coord[k] = 1
		}
		for {
			if !body(coord) {
				return
			}
			k := 0
			for {
				coord[k]++
				if coord[k] <= bounds[k] {
					break
				}
				coord[k] = 1
				k++
				if k == rank {
					return
				}
			}
		}
	}
}
