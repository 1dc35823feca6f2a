package uploads

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJanitorSweep(t *testing.T) {
	dir := t.TempDir()

	write := func(name string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
		return p
	}

	stale := write("upload.1.tmp")
	fresh := write("upload.2.tmp")
	finished := write("20240101120000-abc.png")

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	j := NewJanitor(dir, time.Hour)
	j.Sweep()

	assert.NoFileExists(t, stale, "stale temp file must be removed")
	assert.FileExists(t, fresh, "fresh temp file must survive")
	assert.FileExists(t, finished, "finished uploads are never touched")
}

func TestJanitorSweep_MissingDir(t *testing.T) {
	j := NewJanitor(filepath.Join(t.TempDir(), "does-not-exist"), time.Hour)

	// Must not panic or create the directory.
	j.Sweep()
}
