package runs

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/sphere-projections-mcp/internal/placement"
)

func testConfig() placement.Config {
	return placement.Config{CubeSize: 24, RMin: 2, RMax: 5, Seed: 5}
}

func TestCache_GenerateGet(t *testing.T) {
	c := NewCache()
	run, err := c.Generate(testConfig())
	require.NoError(t, err)

	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, run.Spheres)
	assert.NotNil(t, run.Grids)

	got, err := c.Get(run.ID)
	require.NoError(t, err)
	assert.Same(t, run, got)
}

func TestCache_GenerateInvalid(t *testing.T) {
	c := NewCache()
	_, err := c.Generate(placement.Config{CubeSize: 4, RMin: 3, RMax: 3})
	assert.ErrorIs(t, err, placement.ErrInvalidConfig)
	assert.Equal(t, 0, c.Len())
}

func TestCache_GetMissing(t *testing.T) {
	c := NewCache()
	_, err := c.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCache_ListOrderAndEvict(t *testing.T) {
	c := NewCache()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	c.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	first := c.Put(&placement.Result{Config: testConfig(), Spheres: []placement.Sphere{{X: 5, Y: 5, Z: 5, Radius: 2}}})
	second := c.Put(&placement.Result{Config: testConfig()})

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, 1, list[0].Spheres)
	assert.Equal(t, second.ID, list[1].ID)

	assert.True(t, c.Evict(first.ID))
	assert.False(t, c.Evict(first.ID))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			run := c.Put(&placement.Result{Config: testConfig()})
			_, _ = c.Get(run.ID)
			_ = c.List()
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, c.Len())
}
