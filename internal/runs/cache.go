// Package runs keeps completed placement runs in memory so that they can be
// rendered and verified by later requests.
package runs

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ironsheep/sphere-projections-mcp/internal/placement"
)

// ErrNotFound is returned for unknown run ids.
var ErrNotFound = errors.New("run not found")

// Run is a cached placement result.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	*placement.Result
}

// Summary describes a cached run without its spheres.
type Summary struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Config    placement.Config `json:"config"`
	Spheres   int              `json:"spheres"`
}

// Cache provides thread-safe storage of runs keyed by a generated UUID.
//
// Cached runs hold their final grids and stay in memory until Evict or
// Clear is called.
type Cache struct {
	mu   sync.RWMutex
	runs map[string]*Run
	now  func() time.Time
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		runs: make(map[string]*Run),
		now:  time.Now,
	}
}

// Generate runs the placement engine with cfg and stores the result.
func (c *Cache) Generate(cfg placement.Config) (*Run, error) {
	res, err := placement.Generate(cfg)
	if err != nil {
		return nil, err
	}
	return c.Put(res), nil
}

// Put stores a result under a new id.
func (c *Cache) Put(res *placement.Result) *Run {
	run := &Run{
		ID:        uuid.NewString(),
		CreatedAt: c.now(),
		Result:    res,
	}
	c.mu.Lock()
	c.runs[run.ID] = run
	c.mu.Unlock()
	return run
}

// Get returns the run stored under id.
func (c *Cache) Get(id string) (*Run, error) {
	c.mu.RLock()
	run, ok := c.runs[id]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return run, nil
}

// List returns summaries of all cached runs, oldest first.
func (c *Cache) List() []Summary {
	c.mu.RLock()
	out := make([]Summary, 0, len(c.runs))
	for _, r := range c.runs {
		out = append(out, Summary{
			ID:        r.ID,
			CreatedAt: r.CreatedAt,
			Config:    r.Config,
			Spheres:   len(r.Spheres),
		})
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Evict removes a run. It reports whether the run was present.
func (c *Cache) Evict(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.runs[id]; !ok {
		return false
	}
	delete(c.runs, id)
	return true
}

// Clear removes every run.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.runs = make(map[string]*Run)
	c.mu.Unlock()
}

// Len returns the number of cached runs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.runs)
}
