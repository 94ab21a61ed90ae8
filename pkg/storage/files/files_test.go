package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/saveslot/pkg/errors"
	"github.com/agentstation/saveslot/pkg/storage"
)

func TestProviderRoundTrip(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	assert.False(t, p.Exists(1))

	require.NoError(t, p.Save(1, []byte("payload")))
	assert.True(t, p.Exists(1))

	data, err := p.Load(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestProviderPaths(t *testing.T) {
	dir := t.TempDir()
	p, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "index.dat"), p.Path(storage.IndexSlot))
	assert.Equal(t, filepath.Join(dir, "save03.dat"), p.Path(3))
	assert.Equal(t, filepath.Join(dir, "save12.dat"), p.Path(12))
}

func TestProviderOptions(t *testing.T) {
	dir := t.TempDir()
	p, err := New(dir, WithExtension(".sav"), WithIndexName("global"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "global.sav"), p.Path(storage.IndexSlot))
	assert.Equal(t, filepath.Join(dir, "save01.sav"), p.Path(1))
}

func TestProviderLoadMissingFile(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = p.Load(7)
	require.Error(t, err)
	assert.True(t, errors.IsSlotEmpty(err))
}

func TestProviderEmptyFileDoesNotExist(t *testing.T) {
	dir := t.TempDir()
	p, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(p.Path(2), nil, 0o644))
	assert.False(t, p.Exists(2))

	_, err = p.Load(2)
	require.Error(t, err)
	assert.True(t, errors.IsSlotEmpty(err))
}

func TestProviderDelete(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, p.Save(1, []byte("x")))
	require.NoError(t, p.Delete(1))
	assert.False(t, p.Exists(1))

	// Deleting an absent slot is not an error.
	require.NoError(t, p.Delete(1))
}

func TestProviderCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "saves")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
