package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAbsentKey(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFile(t.TempDir())
	require.NoError(t, err)

	_, ok, err := kv.Get(ctx, "employees")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := NewFile(dir)
	require.NoError(t, err)

	payload := []byte(`[{"id":"e1"}]`)
	require.NoError(t, kv.Set(ctx, "employees", payload))

	value, ok, err := kv.Get(ctx, "employees")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, value)

	assert.FileExists(t, filepath.Join(dir, "employees.json"))
}

func TestFileSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	kv, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "leaves", []byte(`[]`)))

	reopened, err := NewFile(dir)
	require.NoError(t, err)
	value, ok, err := reopened.Get(ctx, "leaves")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), value)
}
