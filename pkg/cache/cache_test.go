package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	s := New()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("list:0-10", "page-one")
	value, ok := s.Get("list:0-10")
	require.True(t, ok)
	assert.Equal(t, "page-one", value)

	// overwrite
	s.Set("list:0-10", "page-one-v2")
	value, _ = s.Get("list:0-10")
	assert.Equal(t, "page-one-v2", value)
}

func TestStore_InvalidateAll(t *testing.T) {
	s := New()
	s.Set("list:0-10", 1)
	s.Set("grouped:0-10", 2)

	s.InvalidateAll()

	_, ok := s.Get("list:0-10")
	assert.False(t, ok)
	_, ok = s.Get("grouped:0-10")
	assert.False(t, ok)

	// usable after eviction
	s.Set("list:0-10", 3)
	value, ok := s.Get("list:0-10")
	require.True(t, ok)
	assert.Equal(t, 3, value)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(n int) {
			defer wg.Done()
			s.Set(fmt.Sprintf("key-%d", n), n)
		}(i)
		go func(n int) {
			defer wg.Done()
			s.Get(fmt.Sprintf("key-%d", n))
		}(i)
		go func() {
			defer wg.Done()
			s.InvalidateAll()
		}()
	}

	wg.Wait()
}
