package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderOptionsLastWriteWins(t *testing.T) {
	opts := NewProviderOptions()
	opts.Set("device_id", "0")
	opts.Set("gpu_mem_limit", "1024")
	opts.Set("device_id", "3")

	assert.Equal(t, 2, opts.Len())

	keys, values := opts.foreignView()
	assert.Equal(t, []string{"device_id", "gpu_mem_limit"}, keys, "overwriting keeps the original key position")
	assert.Equal(t, []string{"3", "1024"}, values)
}

func TestProviderOptionsForeignViewParallel(t *testing.T) {
	opts := NewProviderOptions()
	opts.Set("a", "1")
	opts.Set("b", "2")
	opts.Set("c", "3")

	keys, values := opts.foreignView()
	require.Len(t, keys, opts.Len())
	require.Len(t, values, opts.Len())
	for i, key := range keys {
		assert.Equal(t, opts.values[key], values[i])
	}
}

func TestProviderOptionsEmptyView(t *testing.T) {
	keys, values := NewProviderOptions().foreignView()
	assert.Empty(t, keys)
	assert.Empty(t, values)
}

func TestProviderOptionsNULPanics(t *testing.T) {
	opts := NewProviderOptions()

	assert.Panics(t, func() { opts.Set("device\x00id", "0") })
	assert.Panics(t, func() { opts.Set("device_id", "0\x00") })
	assert.Equal(t, 0, opts.Len(), "a rejected entry leaves the bag unchanged")
}

func TestProviderOptionsZeroValueUsable(t *testing.T) {
	var opts ProviderOptions
	opts.Set("key", "value")
	assert.Equal(t, 1, opts.Len())
}
