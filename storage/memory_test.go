package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAbsentKey(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	value, ok, err := kv.Get(ctx, "employees")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	require.NoError(t, kv.Set(ctx, "employees", []byte(`[]`)))

	value, ok, err := kv.Get(ctx, "employees")
	require.NoError(t, err)
	assert.True(t, ok, "an empty value is still a present key")
	assert.Equal(t, []byte(`[]`), value)
}

func TestMemorySetReplacesWholeValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	require.NoError(t, kv.Set(ctx, "k", []byte(`[1,2,3]`)))
	require.NoError(t, kv.Set(ctx, "k", []byte(`[9]`)))

	value, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[9]`), value)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	require.NoError(t, kv.Set(ctx, "k", []byte("abc")))
	value, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)

	value[0] = 'z'
	again, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
