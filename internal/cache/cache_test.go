// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	prefix := strings.Repeat("x", 100)

	tests := []struct {
		name string
		a, b []string
		same bool
	}{
		{name: "identical inputs", a: []string{"alpha"}, b: []string{"alpha"}, same: true},
		{name: "shared 100-char prefix", a: []string{prefix + "one"}, b: []string{prefix + "two"}},
		{name: "part boundaries", a: []string{"ab", "c"}, b: []string{"a", "bc"}},
		{name: "title differs", a: []string{"body", "Rome"}, b: []string{"body", "Athens"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka := Key("op", tt.a...)
			kb := Key("op", tt.b...)
			if tt.same {
				assert.Equal(t, ka, kb)
			} else {
				assert.NotEqual(t, ka, kb)
			}
		})
	}
}

func TestKeyIncludesOperation(t *testing.T) {
	assert.NotEqual(t, Key("timeline", "text"), Key("figures", "text"))
	assert.True(t, strings.HasPrefix(Key("timeline", "text"), "timeline:"))
}

func TestNewLRURejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		_, err := NewLRU(capacity)
		assert.Error(t, err, "capacity %d", capacity)
	}
}

func TestLRUGetSet(t *testing.T) {
	c, err := NewLRU(4)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", []string{"v"})
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"v"}, v)

	c.Set("k", []string{"w"})
	v, _ = c.Get("k")
	assert.Equal(t, []string{"w"}, v)

	st := c.Stats()
	assert.Equal(t, uint64(2), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
	assert.Equal(t, 1, st.Len)
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c, err := NewLRU(2)
	require.NoError(t, err)

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Stats().Len)
}

func TestLRUPurge(t *testing.T) {
	c, err := NewLRU(2)
	require.NoError(t, err)
	c.Set("a", 1)
	c.Purge()
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestLRUConcurrentUse(t *testing.T) {
	c, err := NewLRU(16)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := Key("op", strings.Repeat("k", i%4))
			for range 100 {
				c.Set(key, i)
				c.Get(key)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Stats().Len, 4)
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	c.Set("k", 1)
	_, ok := c.Get("k")
	assert.False(t, ok)
}
