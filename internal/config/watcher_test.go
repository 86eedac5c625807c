package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, NewStore(path).Save(DefaultDocument()))

	var calls atomic.Int32
	w := NewWatcher(path, func() { calls.Add(1) }, nil)
	w.debounce = 20 * time.Millisecond
	require.NoError(t, w.Start())
	defer w.Close()

	doc := DefaultDocument()
	doc.SetAutoCollapseDelay(6000)
	require.NoError(t, NewStore(path).Save(doc))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	var calls atomic.Int32
	w := NewWatcher(path, func() { calls.Add(1) }, nil)
	w.debounce = 10 * time.Millisecond
	require.NoError(t, w.Start())
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcherCloseWithoutStart(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), ConfigFileName), nil, nil)
	assert.NoError(t, w.Close())
}
